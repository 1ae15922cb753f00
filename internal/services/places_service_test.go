package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"tourguide/internal/models/request_models"
	"tourguide/pkg/utils"
)

func located(name, id string, lat, lng float64) utils.RawPlace {
	return utils.RawPlace{
		Name:     name,
		PlaceID:  id,
		Geometry: &utils.PlaceGeometry{Location: &utils.LatLng{Lat: lat, Lng: lng}},
	}
}

func TestFindTouristLocations_Example(t *testing.T) {
	place := located("Akshardham", "p1", 28.6, 77.2)
	place.Rating = float64Ptr(4.6)
	place.Photos = []utils.PlacePhoto{{PhotoReference: "r1"}}
	stub := &placesStub{places: []utils.RawPlace{place}}
	svc := NewPlacesService(stub)

	req := request_models.LocationRequest{Latitude: float64Ptr(28.6129), Longitude: float64Ptr(77.2295), Radius: intPtr(5000)}
	got, err := svc.FindTouristLocations(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 location, got %d", len(got))
	}
	loc := got[0]
	if loc.Name != "Akshardham" || loc.PlaceID != "p1" || loc.Latitude != 28.6 || loc.Longitude != 77.2 {
		t.Fatalf("unexpected location: %+v", loc)
	}
	if loc.Rating == nil || *loc.Rating != 4.6 {
		t.Fatalf("expected rating 4.6, got %v", loc.Rating)
	}
	if loc.ImageURL == nil || !strings.Contains(*loc.ImageURL, "r1") {
		t.Fatalf("expected image url containing r1, got %v", loc.ImageURL)
	}
	if stub.lat != 28.6129 || stub.lng != 77.2295 || stub.category != utils.CategoryTouristPlace {
		t.Fatalf("unexpected collaborator arguments: %+v", stub)
	}
}

func TestFindTouristLocations_DropsIncompleteRecords(t *testing.T) {
	noLocation := located("No Location", "p4", 0, 0)
	noLocation.Geometry.Location = nil

	stub := &placesStub{places: []utils.RawPlace{
		located("", "p1", 1, 1),
		located("No ID", "", 1, 1),
		{Name: "No Geometry", PlaceID: "p3"},
		noLocation,
		located("Keep A", "a", 1, 2),
		located("Keep B", "b", 3, 4),
	}}
	svc := NewPlacesService(stub)

	got, err := svc.FindTouristLocations(context.Background(), request_models.LocationRequest{Latitude: float64Ptr(1), Longitude: float64Ptr(2)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 surviving locations, got %d: %+v", len(got), got)
	}
	if got[0].PlaceID != "a" || got[1].PlaceID != "b" {
		t.Fatalf("expected provider order to be preserved, got %s, %s", got[0].PlaceID, got[1].PlaceID)
	}
	for _, loc := range got {
		if loc.Name == "" || loc.PlaceID == "" {
			t.Fatalf("emitted incomplete location: %+v", loc)
		}
	}
}

func TestFindTouristLocations_NoPhoto(t *testing.T) {
	withEmptyRef := located("Empty Ref", "p2", 1, 1)
	withEmptyRef.Photos = []utils.PlacePhoto{{PhotoReference: ""}}
	stub := &placesStub{places: []utils.RawPlace{located("Plain", "p1", 1, 1), withEmptyRef}}
	svc := NewPlacesService(stub)

	got, err := svc.FindTouristLocations(context.Background(), request_models.LocationRequest{Latitude: float64Ptr(1), Longitude: float64Ptr(1)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, loc := range got {
		if loc.ImageURL != nil {
			t.Fatalf("expected nil image url for %s, got %s", loc.PlaceID, *loc.ImageURL)
		}
		if loc.Rating != nil {
			t.Fatalf("expected nil rating for %s", loc.PlaceID)
		}
	}
}

func TestFindTouristLocations_DefaultRadius(t *testing.T) {
	stub := &placesStub{}
	svc := NewPlacesService(stub)

	got, err := svc.FindTouristLocations(context.Background(), request_models.LocationRequest{Latitude: float64Ptr(1), Longitude: float64Ptr(2)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stub.radius != request_models.DefaultRadius {
		t.Fatalf("expected radius %d, got %d", request_models.DefaultRadius, stub.radius)
	}
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", got)
	}
}

func TestFindTouristLocations_RejectsNonPositiveRadius(t *testing.T) {
	for _, radius := range []int{0, -1} {
		stub := &placesStub{}
		svc := NewPlacesService(stub)

		req := request_models.LocationRequest{Latitude: float64Ptr(1), Longitude: float64Ptr(2), Radius: intPtr(radius)}
		_, err := svc.FindTouristLocations(context.Background(), req)
		if utils.KindOf(err) != utils.KindValidation {
			t.Fatalf("radius %d: expected validation error, got %v", radius, err)
		}
		if stub.calls != 0 {
			t.Fatalf("radius %d: collaborator must not be called", radius)
		}
	}
}

func TestFindTouristLocations_RequiresCoordinates(t *testing.T) {
	stub := &placesStub{}
	svc := NewPlacesService(stub)

	_, err := svc.FindTouristLocations(context.Background(), request_models.LocationRequest{Latitude: float64Ptr(1)})
	if !errors.Is(err, utils.ErrCoordinatesRequired) {
		t.Fatalf("expected ErrCoordinatesRequired, got %v", err)
	}
	if stub.calls != 0 {
		t.Fatalf("collaborator must not be called")
	}
}

func TestFindTouristLocations_UpstreamError(t *testing.T) {
	stub := &placesStub{
		places: []utils.RawPlace{located("Ignored", "x", 1, 1)},
		err:    errors.New("OVER_QUERY_LIMIT: You have exceeded your daily request quota"),
	}
	svc := NewPlacesService(stub)

	got, err := svc.FindTouristLocations(context.Background(), request_models.LocationRequest{Latitude: float64Ptr(1), Longitude: float64Ptr(2)})
	if got != nil {
		t.Fatalf("expected no locations on failure, got %+v", got)
	}
	if utils.KindOf(err) != utils.KindPlacesUpstream {
		t.Fatalf("expected places upstream error, got %v", err)
	}
	if !strings.Contains(err.Error(), "OVER_QUERY_LIMIT") {
		t.Fatalf("expected collaborator message to be kept, got %v", err)
	}
}
