package request_models

type PlaceDetailRequest struct {
	PlaceID   string `json:"place_id"`
	PlaceName string `json:"place_name"`
}
