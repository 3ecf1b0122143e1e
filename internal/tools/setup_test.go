package tools

import (
	"context"
	"fmt"

	"github.com/oasis-voice/oasis/internal/conversation"
	"github.com/oasis-voice/oasis/internal/estate"
	"github.com/oasis-voice/oasis/internal/grounding"
	"github.com/oasis-voice/oasis/internal/log"
	"github.com/oasis-voice/oasis/internal/state"
	"github.com/oasis-voice/oasis/internal/transport"
)

func testDataset() *estate.Dataset {
	return estate.NewDataset(
		map[string]estate.LatLng{
			"Dubai Hills Estate":  {Lat: 25.1118, Lng: 55.2575},
			"Dubai Creek Harbour": {Lat: 25.2069, Lng: 55.3394},
			"Al Barari":           {Lat: 25.0978, Lng: 55.3582},
		},
		map[string][]estate.Project{
			"Dubai Hills Estate": {
				{
					Name: "Sidra Villas", Type: "Villas", Position: estate.LatLng{Lat: 25.1080, Lng: 55.2630},
					Amenities:           []string{"Private Gardens", "Community Parks", "Golf Club", "Schools Nearby"},
					LocationDescription: "An exclusive community of premium villas.",
					HandoverDate:        "2018-12-31", ProjectType: estate.Ready,
					StartingPrice: 4500000, CurrencyCode: "AED", ServiceCharge: 4, IsFreehold: true,
					ImageURL: "https://example.com/sidra.jpg",
					Specs: &estate.Specs{AvgPricePerSqft: 1450, UnitTypes: []estate.UnitType{
						{UnitType: "4 BR Villa", AvgSizeSqft: 3500},
					}},
				},
				{
					Name: "Park Heights", Type: "Apartments", Position: estate.LatLng{Lat: 25.1150, Lng: 55.2550},
					ProjectType: estate.Ready, StartingPrice: 1200000, CurrencyCode: "AED", IsFreehold: true,
				},
				{
					Name: "Collective 2.0", Type: "Apartments", Position: estate.LatLng{Lat: 25.1165, Lng: 55.2535},
					Amenities:           []string{"Co-working Spaces", "Rooftop Pool"},
					LocationDescription: "Contemporary apartments for a social lifestyle.",
					ProjectType:         estate.ForRent,
					StartingPrice:       90000, CurrencyCode: "AED", IsFreehold: true,
					Specs: &estate.Specs{AvgPricePerSqft: 1500, UnitTypes: []estate.UnitType{
						{UnitType: "1 BR", AvgSizeSqft: 550},
					}},
				},
			},
			"Dubai Creek Harbour": {
				{
					Name: "Creek Waters 2", Type: "Apartments", Position: estate.LatLng{Lat: 25.2075, Lng: 55.3400},
					Amenities:           []string{"Infinity Pool", "Gym", "Creek Beach Access"},
					LocationDescription: "A striking waterfront tower.",
					HandoverDate:        "2027-09-30", ProjectType: estate.OffPlan,
					StartingPrice: 1700000, CurrencyCode: "AED", IsFreehold: true,
					Specs: &estate.Specs{AvgPricePerSqft: 2000, UnitTypes: []estate.UnitType{
						{UnitType: "1 BR", AvgSizeSqft: 800},
						{UnitType: "2 BR", AvgSizeSqft: 1200},
					}},
				},
			},
		},
	)
}

type fakeMaps struct {
	resp *grounding.Response
	err  error
}

func (f *fakeMaps) GroundedAnswer(context.Context, grounding.MapsQuery) (*grounding.Response, error) {
	return f.resp, f.err
}

type fakeSearch struct {
	answer string
	err    error
}

func (f *fakeSearch) GroundedAnswer(context.Context, string) (string, error) {
	return f.answer, f.err
}

type fakePlaces struct {
	places map[string]grounding.Place
}

func (f *fakePlaces) Resolve(_ context.Context, placeID string) (grounding.Place, error) {
	p, ok := f.places[placeID]
	if !ok {
		return grounding.Place{}, fmt.Errorf("place %q not found", placeID)
	}
	return p, nil
}

type fakeResponder struct {
	batches [][]transport.FunctionResponse
	err     error
}

func (f *fakeResponder) SendToolResponse(responses []transport.FunctionResponse) error {
	f.batches = append(f.batches, responses)
	return f.err
}

func newTestContext() *Context {
	return &Context{
		Log:       conversation.NewLog(),
		Map:       state.NewMap(),
		Profile:   state.NewProfile(),
		Favorites: state.NewFavorites(),
		Dataset:   testDataset(),
		Maps:      &fakeMaps{},
		Search:    &fakeSearch{},
		Places:    &fakePlaces{},
		Logger:    log.NewNop(),
	}
}
