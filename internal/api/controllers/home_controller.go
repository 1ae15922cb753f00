package controllers

import (
	"github.com/gin-gonic/gin"

	"tourguide/pkg/utils"
)

const WelcomeMessage = "Welcome! The Tourist Locations API is running."

type HomeController struct{}

func NewHomeController() *HomeController {
	return &HomeController{}
}

func (h *HomeController) Root(c *gin.Context) {
	utils.RespondSuccess(c, utils.MessageResponse{Message: WelcomeMessage})
}
