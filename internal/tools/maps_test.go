package tools

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oasis-voice/oasis/internal/grounding"
	"github.com/oasis-voice/oasis/internal/state"
)

func TestMapsGroundingProviderFailure(t *testing.T) {
	tc := newTestContext()
	tc.Maps = &fakeMaps{err: assert.AnError}

	result, err := mapsGrounding(context.Background(), tc, map[string]any{"query": "schools nearby"})
	require.NoError(t, err)
	assert.Equal(t, "Failed to get a response from maps grounding.", result)
	assert.Nil(t, tc.TakeGroundedResponse())
}

func TestMapsGroundingNoChunksClearsMarkers(t *testing.T) {
	tc := newTestContext()
	tc.Map.SetMarkers([]state.Marker{{Label: "stale"}})
	tc.Maps = &fakeMaps{resp: &grounding.Response{Text: "No specific places found."}}

	result, err := mapsGrounding(context.Background(), tc, map[string]any{"query": "schools nearby"})
	require.NoError(t, err)
	assert.Equal(t, "No specific places found.", result)
	assert.Empty(t, tc.Map.Markers())

	// The response is still held for display.
	held := tc.TakeGroundedResponse()
	require.NotNil(t, held)
	assert.Equal(t, "No specific places found.", held.Text)
}

func TestMapsGroundingBehaviorNoneClearsMarkers(t *testing.T) {
	tc := newTestContext()
	tc.Map.SetMarkers([]state.Marker{{Label: "stale"}})
	tc.Maps = &fakeMaps{resp: &grounding.Response{
		Text:   "GEMS School is highly rated.",
		Chunks: []grounding.Chunk{{PlaceID: "p1", Title: "GEMS School"}},
	}}

	_, err := mapsGrounding(context.Background(), tc, map[string]any{"query": "schools", "markerBehavior": "none"})
	require.NoError(t, err)

	tc.AwaitMarkerUpdate()
	assert.Empty(t, tc.Map.Markers())
}

func TestMapsGroundingMentionedFiltersByTitle(t *testing.T) {
	tc := newTestContext()
	tc.Maps = &fakeMaps{resp: &grounding.Response{
		Text: "GEMS School is highly rated near the community.",
		Chunks: []grounding.Chunk{
			{PlaceID: "p1", Title: "GEMS School"},
			{PlaceID: "p2", Title: "Unmentioned Clinic"},
		},
	}}
	tc.Places = &fakePlaces{places: map[string]grounding.Place{
		"p1": {Lat: 25.1, Lng: 55.2, DisplayName: "GEMS School"},
		"p2": {Lat: 25.2, Lng: 55.3, DisplayName: "Unmentioned Clinic"},
	}}

	_, err := mapsGrounding(context.Background(), tc, map[string]any{"query": "schools"})
	require.NoError(t, err)
	tc.AwaitMarkerUpdate()

	markers := tc.Map.Markers()
	require.Len(t, markers, 1)
	assert.Equal(t, "GEMS School", markers[0].Label)
	assert.True(t, markers[0].ShowLabel)
	assert.False(t, tc.Map.PreventAutoFrame())
}

func TestMapsGroundingAllKeepsEverythingWithSelectiveLabels(t *testing.T) {
	tc := newTestContext()
	tc.Maps = &fakeMaps{resp: &grounding.Response{
		Text: "GEMS School is highly rated.",
		Chunks: []grounding.Chunk{
			{PlaceID: "p1", Title: "GEMS School"},
			{PlaceID: "p2", Title: "Unmentioned Clinic"},
		},
	}}
	tc.Places = &fakePlaces{places: map[string]grounding.Place{
		"p1": {Lat: 25.1, Lng: 55.2, DisplayName: "GEMS School"},
		"p2": {Lat: 25.2, Lng: 55.3, DisplayName: "Unmentioned Clinic"},
	}}

	_, err := mapsGrounding(context.Background(), tc, map[string]any{"query": "schools", "markerBehavior": "all"})
	require.NoError(t, err)
	tc.AwaitMarkerUpdate()

	markers := tc.Map.Markers()
	require.Len(t, markers, 2)
	assert.Equal(t, "GEMS School", markers[0].Label)
	assert.True(t, markers[0].ShowLabel)
	assert.Equal(t, "Unmentioned Clinic", markers[1].Label)
	assert.False(t, markers[1].ShowLabel)
}

func TestMapsGroundingFailedLookupDropsMarkerOnly(t *testing.T) {
	tc := newTestContext()
	tc.Maps = &fakeMaps{resp: &grounding.Response{
		Text: "GEMS School and Kings School are both nearby.",
		Chunks: []grounding.Chunk{
			{PlaceID: "p1", Title: "GEMS School"},
			{PlaceID: "p2", Title: "Kings School"},
		},
	}}
	tc.Places = &fakePlaces{places: map[string]grounding.Place{
		"p2": {Lat: 25.2, Lng: 55.3, DisplayName: "Kings School"},
	}}

	_, err := mapsGrounding(context.Background(), tc, map[string]any{"query": "schools"})
	require.NoError(t, err)
	tc.AwaitMarkerUpdate()

	markers := tc.Map.Markers()
	require.Len(t, markers, 1)
	assert.Equal(t, "Kings School", markers[0].Label)
}

func TestMapsGroundingCloseUpFraming(t *testing.T) {
	tc := newTestContext()
	tc.Maps = &fakeMaps{resp: &grounding.Response{
		Text:   "Dubai Hills Mall is the main shopping destination.",
		Chunks: []grounding.Chunk{{PlaceID: "p1", Title: "Dubai Hills Mall", PlaceAnswer: true}},
	}}
	tc.Places = &fakePlaces{places: map[string]grounding.Place{
		"p1": {Lat: 25.103, Lng: 55.247, DisplayName: "Dubai Hills Mall"},
	}}

	_, err := mapsGrounding(context.Background(), tc, map[string]any{"query": "Dubai Hills Mall"})
	require.NoError(t, err)
	tc.AwaitMarkerUpdate()

	require.Len(t, tc.Map.Markers(), 1)
	assert.True(t, tc.Map.PreventAutoFrame())

	target := tc.Map.CameraTarget()
	require.NotNil(t, target)
	assert.InDelta(t, 25.103, target.Center.Lat, 0.0001)
	assert.Equal(t, float64(closeUpAltitude), target.Center.Altitude)
	assert.Equal(t, float64(closeUpRange), target.Range)
	assert.Equal(t, float64(closeUpTilt), target.Tilt)
}

func TestMapsGroundingMultipleMarkersNoCloseUp(t *testing.T) {
	tc := newTestContext()
	tc.Maps = &fakeMaps{resp: &grounding.Response{
		Text: "GEMS School and Kings School are both nearby.",
		Chunks: []grounding.Chunk{
			{PlaceID: "p1", Title: "GEMS School", PlaceAnswer: true},
			{PlaceID: "p2", Title: "Kings School"},
		},
	}}
	tc.Places = &fakePlaces{places: map[string]grounding.Place{
		"p1": {Lat: 25.1, Lng: 55.2, DisplayName: "GEMS School"},
		"p2": {Lat: 25.2, Lng: 55.3, DisplayName: "Kings School"},
	}}

	_, err := mapsGrounding(context.Background(), tc, map[string]any{"query": "schools"})
	require.NoError(t, err)
	tc.AwaitMarkerUpdate()

	assert.Len(t, tc.Map.Markers(), 2)
	assert.False(t, tc.Map.PreventAutoFrame())
	assert.Nil(t, tc.Map.CameraTarget())
}
