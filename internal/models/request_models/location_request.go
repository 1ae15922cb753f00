package request_models

const DefaultRadius = 5000

type LocationRequest struct {
	Latitude  *float64 `json:"latitude" binding:"required"`
	Longitude *float64 `json:"longitude" binding:"required"`
	Radius    *int     `json:"radius"`
}

// RadiusOrDefault returns the requested radius, or DefaultRadius when omitted.
func (r LocationRequest) RadiusOrDefault() int {
	if r.Radius == nil {
		return DefaultRadius
	}
	return *r.Radius
}
