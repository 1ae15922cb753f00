package services

import (
	"context"

	"github.com/rs/zerolog"

	"tourguide/internal/models/request_models"
	"tourguide/internal/models/response_models"
	"tourguide/pkg/utils"
)

type PlacesServiceInterface interface {
	FindTouristLocations(ctx context.Context, req request_models.LocationRequest) ([]response_models.TouristLocation, error)
}

type PlacesService struct {
	places utils.PlacesClientInterface
}

func NewPlacesService(places utils.PlacesClientInterface) PlacesServiceInterface {
	return &PlacesService{places: places}
}

func (s *PlacesService) FindTouristLocations(ctx context.Context, req request_models.LocationRequest) ([]response_models.TouristLocation, error) {
	if req.Latitude == nil || req.Longitude == nil {
		return nil, utils.NewValidationError(utils.ErrCoordinatesRequired)
	}
	radius := req.RadiusOrDefault()
	if radius <= 0 {
		return nil, utils.NewValidationError(utils.ErrInvalidRadius)
	}

	raw, err := s.places.FindNearbyPlaces(ctx, *req.Latitude, *req.Longitude, radius, utils.CategoryTouristPlace)
	if err != nil {
		return nil, utils.NewPlacesError(err)
	}

	log := zerolog.Ctx(ctx)
	locations := make([]response_models.TouristLocation, 0, len(raw))
	for _, place := range raw {
		loc, ok := s.toTouristLocation(place)
		if !ok {
			log.Debug().Str("place_id", place.PlaceID).Str("name", place.Name).Msg("Dropping incomplete place record")
			continue
		}
		locations = append(locations, loc)
	}

	return locations, nil
}

// toTouristLocation reports false when the record lacks a name, a location or a place id.
func (s *PlacesService) toTouristLocation(place utils.RawPlace) (response_models.TouristLocation, bool) {
	if place.Name == "" || place.PlaceID == "" || place.Geometry == nil || place.Geometry.Location == nil {
		return response_models.TouristLocation{}, false
	}

	var imageURL *string
	if len(place.Photos) > 0 && place.Photos[0].PhotoReference != "" {
		u := s.places.PhotoURL(place.Photos[0].PhotoReference)
		imageURL = &u
	}

	return response_models.TouristLocation{
		Name:      place.Name,
		PlaceID:   place.PlaceID,
		Latitude:  place.Geometry.Location.Lat,
		Longitude: place.Geometry.Location.Lng,
		Rating:    place.Rating,
		ImageURL:  imageURL,
	}, true
}
