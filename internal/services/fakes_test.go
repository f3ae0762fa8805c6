package services

import (
	"context"
	"sync"

	"tripcraft/internal/infra"
	"tripcraft/internal/models/trip_models"
)

type fakeSearch struct {
	mu sync.Mutex

	flights    infra.SearchResult
	hotels     infra.SearchResult
	images     infra.SearchResult
	flightsErr error
	hotelsErr  error
	imagesErr  error

	flightQueries []trip_models.FlightQuery
	hotelQueries  []trip_models.HotelQuery
	imageQueries  []string
}

func (f *fakeSearch) SearchFlights(_ context.Context, q trip_models.FlightQuery) (infra.SearchResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.flightQueries = append(f.flightQueries, q)
	return f.flights, f.flightsErr
}

func (f *fakeSearch) SearchHotels(_ context.Context, q trip_models.HotelQuery) (infra.SearchResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.hotelQueries = append(f.hotelQueries, q)
	return f.hotels, f.hotelsErr
}

func (f *fakeSearch) SearchImages(_ context.Context, query string) (infra.SearchResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.imageQueries = append(f.imageQueries, query)
	return f.images, f.imagesErr
}

type fakeGenerator struct {
	mu sync.Mutex

	text string
	err  error
	// block, when set, makes Generate wait for ctx to end.
	block bool

	prompts     []string
	attachments [][]infra.Attachment
}

func (g *fakeGenerator) Provider() string { return "fake" }

func (g *fakeGenerator) Generate(ctx context.Context, prompt string, attachments ...infra.Attachment) (string, error) {
	g.mu.Lock()
	g.prompts = append(g.prompts, prompt)
	g.attachments = append(g.attachments, attachments)
	block := g.block
	g.mu.Unlock()

	if block {
		<-ctx.Done()
		return "", ctx.Err()
	}
	return g.text, g.err
}

func (g *fakeGenerator) calls() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.prompts)
}

type fakeEntities struct {
	entities []infra.Entity
	err      error
	texts    []string
}

func (e *fakeEntities) Extract(text string) ([]infra.Entity, error) {
	e.texts = append(e.texts, text)
	return e.entities, e.err
}
