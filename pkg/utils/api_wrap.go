package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// ErrorResponse is the body returned for every failed request.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

func RespondSuccess(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

func RespondError(c *gin.Context, code int, detail string) {
	c.JSON(code, ErrorResponse{Detail: detail})
}

func HandleServiceError(c *gin.Context, err error) {
	log := zerolog.Ctx(c.Request.Context())
	traceID := c.GetString("trace_id")

	var se *ServiceError
	if !errors.As(err, &se) {
		log.Error().Err(err).Str("trace_id", traceID).Msg("Unknown error")
		RespondError(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	switch se.Kind {
	case KindValidation:
		RespondError(c, http.StatusUnprocessableEntity, se.Error())
	case KindPlacesUpstream:
		log.Error().Err(se.Err).Str("trace_id", traceID).Msg("Places upstream error")
		RespondError(c, http.StatusInternalServerError, "Google Places API error: "+se.Error())
	case KindGeneration:
		log.Error().Err(se.Err).Str("trace_id", traceID).Msg("Generation error")
		RespondError(c, http.StatusInternalServerError, "Error generating history: "+se.Error())
	default:
		log.Error().Err(err).Str("trace_id", traceID).Msg("Unknown error")
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
