package controllers

import (
	"github.com/gin-gonic/gin"

	"tourguide/internal/models/request_models"
	"tourguide/internal/services"
	"tourguide/pkg/utils"
)

type PlacesController struct {
	placesService services.PlacesServiceInterface
}

func NewPlacesController(placesService services.PlacesServiceInterface) *PlacesController {
	return &PlacesController{
		placesService: placesService,
	}
}

// POST /tourist-locations/
func (p *PlacesController) GetNearbyTouristLocations(c *gin.Context) {
	var req request_models.LocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.HandleServiceError(c, utils.NewValidationError(err))
		return
	}

	locations, err := p.placesService.FindTouristLocations(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, locations)
}
