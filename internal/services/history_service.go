package services

import (
	"context"
	"fmt"
	"strings"

	"tourguide/internal/models/request_models"
	"tourguide/internal/models/response_models"
	"tourguide/pkg/utils"
)

// RegionContext is appended to every history prompt to disambiguate place names.
const RegionContext = "Prayagraj, India"

type HistoryServiceInterface interface {
	GeneratePlaceHistory(ctx context.Context, req request_models.PlaceDetailRequest) (response_models.PlaceDetailResponse, error)
}

type HistoryService struct {
	generator utils.TextGeneratorInterface
}

func NewHistoryService(generator utils.TextGeneratorInterface) HistoryServiceInterface {
	return &HistoryService{generator: generator}
}

func (s *HistoryService) GeneratePlaceHistory(ctx context.Context, req request_models.PlaceDetailRequest) (response_models.PlaceDetailResponse, error) {
	if strings.TrimSpace(req.PlaceName) == "" {
		return response_models.PlaceDetailResponse{}, utils.NewValidationError(utils.ErrPlaceNameRequired)
	}

	text, err := s.generator.GenerateText(ctx, BuildHistoryPrompt(req.PlaceName))
	if err != nil {
		return response_models.PlaceDetailResponse{}, utils.NewGenerationError(err)
	}

	return response_models.PlaceDetailResponse{History: text}, nil
}

func BuildHistoryPrompt(placeName string) string {
	return fmt.Sprintf(
		"Provide a brief, engaging history of the tourist attraction '%s' located in %s. "+
			"Focus on its significance and key historical events. "+
			"Write it as a single, well-written paragraph suitable for a travel app.",
		placeName, RegionContext)
}
