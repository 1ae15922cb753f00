package controllers

import (
	"github.com/gin-gonic/gin"

	"tourguide/internal/models/request_models"
	"tourguide/internal/services"
	"tourguide/pkg/utils"
)

type HistoryController struct {
	historyService services.HistoryServiceInterface
}

func NewHistoryController(historyService services.HistoryServiceInterface) *HistoryController {
	return &HistoryController{
		historyService: historyService,
	}
}

// POST /place-details/
func (h *HistoryController) GetPlaceHistory(c *gin.Context) {
	var req request_models.PlaceDetailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.HandleServiceError(c, utils.NewValidationError(err))
		return
	}

	history, err := h.historyService.GeneratePlaceHistory(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, history)
}
