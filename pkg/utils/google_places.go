package utils

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const (
	DefaultPlacesBaseURL   = "https://maps.googleapis.com/maps/api/place"
	CategoryTouristPlace   = "tourist_attraction"
	photoMaxWidth          = 400
	placesStatusOK         = "OK"
	placesStatusZeroResult = "ZERO_RESULTS"
)

// PlacesClientInterface looks up points of interest around a coordinate.
type PlacesClientInterface interface {
	FindNearbyPlaces(ctx context.Context, lat, lng float64, radius int, category string) ([]RawPlace, error)
	PhotoURL(reference string) string
}

// RawPlace is one nearby-search result as the provider returns it.
type RawPlace struct {
	Name     string         `json:"name"`
	PlaceID  string         `json:"place_id"`
	Geometry *PlaceGeometry `json:"geometry,omitempty"`
	Rating   *float64       `json:"rating,omitempty"`
	Photos   []PlacePhoto   `json:"photos,omitempty"`
}

type PlaceGeometry struct {
	Location *LatLng `json:"location,omitempty"`
}

type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type PlacePhoto struct {
	PhotoReference string `json:"photo_reference"`
	Width          int    `json:"width"`
	Height         int    `json:"height"`
}

type nearbySearchResponse struct {
	Results      []RawPlace `json:"results"`
	Status       string     `json:"status"`
	ErrorMessage string     `json:"error_message"`
}

type GooglePlacesClient struct {
	HTTP    *http.Client
	APIKey  string
	BaseURL string
}

func NewGooglePlacesClient(apiKey, baseURL string, timeout time.Duration) *GooglePlacesClient {
	if baseURL == "" {
		baseURL = DefaultPlacesBaseURL
	}
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &GooglePlacesClient{
		HTTP:    &http.Client{Timeout: timeout},
		APIKey:  apiKey,
		BaseURL: strings.TrimRight(baseURL, "/"),
	}
}

// FindNearbyPlaces runs a single nearby search; next_page_token is ignored.
func (c *GooglePlacesClient) FindNearbyPlaces(ctx context.Context, lat, lng float64, radius int, category string) ([]RawPlace, error) {
	q := url.Values{}
	q.Set("location", strconv.FormatFloat(lat, 'f', -1, 64)+","+strconv.FormatFloat(lng, 'f', -1, 64))
	q.Set("radius", strconv.Itoa(radius))
	if category != "" {
		q.Set("type", category)
	}
	q.Set("key", c.APIKey)

	endpoint := c.BaseURL + "/nearbysearch/json?" + q.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("places request: %w", err)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("places http error: %w", scrubKey(err, c.APIKey))
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return nil, fmt.Errorf("places bad status: %s", resp.Status)
	}

	var payload nearbySearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("places decode: %w", err)
	}

	switch payload.Status {
	case placesStatusOK, placesStatusZeroResult:
		return payload.Results, nil
	default:
		if payload.ErrorMessage != "" {
			return nil, fmt.Errorf("%s: %s", payload.Status, payload.ErrorMessage)
		}
		return nil, fmt.Errorf("%s", payload.Status)
	}
}

// PhotoURL builds a fetchable image URL for a photo reference. The image is never fetched here.
func (c *GooglePlacesClient) PhotoURL(reference string) string {
	q := url.Values{}
	q.Set("maxwidth", strconv.Itoa(photoMaxWidth))
	q.Set("photoreference", reference)
	q.Set("key", c.APIKey)
	return c.BaseURL + "/photo?" + q.Encode()
}

// url.Error includes the full request URL, which carries the API key.
func scrubKey(err error, key string) error {
	if key == "" {
		return err
	}
	return errors.New(strings.ReplaceAll(err.Error(), url.QueryEscape(key), "REDACTED"))
}
