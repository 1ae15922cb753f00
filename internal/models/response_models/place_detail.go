package response_models

type PlaceDetailResponse struct {
	History string `json:"history"`
}
