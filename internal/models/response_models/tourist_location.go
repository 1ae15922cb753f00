package response_models

type TouristLocation struct {
	Name      string   `json:"name"`
	PlaceID   string   `json:"place_id"`
	Latitude  float64  `json:"latitude"`
	Longitude float64  `json:"longitude"`
	Rating    *float64 `json:"rating"`
	ImageURL  *string  `json:"image_url"`
}
