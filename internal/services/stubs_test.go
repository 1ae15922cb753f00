package services

import (
	"context"

	"tourguide/pkg/utils"
)

type placesStub struct {
	places []utils.RawPlace
	err    error

	calls    int
	lat, lng float64
	radius   int
	category string
}

func (s *placesStub) FindNearbyPlaces(ctx context.Context, lat, lng float64, radius int, category string) ([]utils.RawPlace, error) {
	s.calls++
	s.lat, s.lng, s.radius, s.category = lat, lng, radius, category
	return s.places, s.err
}

func (s *placesStub) PhotoURL(reference string) string {
	return "https://photos.example/photo?photoreference=" + reference + "&key=k"
}

type generatorStub struct {
	text string
	err  error

	calls  int
	prompt string
}

func (g *generatorStub) GenerateText(ctx context.Context, prompt string) (string, error) {
	g.calls++
	g.prompt = prompt
	return g.text, g.err
}

func (g *generatorStub) Close() error { return nil }

func float64Ptr(v float64) *float64 { return &v }

func intPtr(v int) *int { return &v }
