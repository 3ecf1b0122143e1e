package tools

import (
	"context"
	"strings"

	"github.com/oasis-voice/oasis/internal/grounding"
	"github.com/oasis-voice/oasis/internal/state"
)

// Marker behaviors for mapsGrounding.
const (
	markersNone      = "none"
	markersMentioned = "mentioned"
	markersAll       = "all"
)

func mapsGrounding(ctx context.Context, tc *Context, args map[string]any) (any, error) {
	query, ok := stringArg(args, "query")
	if !ok || query == "" {
		return "Invalid query provided for maps grounding.", nil
	}
	behavior, ok := stringArg(args, "markerBehavior")
	if !ok || behavior == "" {
		behavior = markersMentioned
	}
	systemInstruction, _ := stringArg(args, "systemInstruction")
	enableWidget, _ := args["enableWidget"].(bool)

	resp, err := tc.Maps.GroundedAnswer(ctx, grounding.MapsQuery{
		Prompt:            query,
		SystemInstruction: systemInstruction,
		EnableWidget:      enableWidget,
	})
	if err != nil {
		tc.Logger.Error("maps grounding failed", "query", query, "error", err)
		return "Failed to get a response from maps grounding.", nil
	}

	// Hold the response so the next agent turn can carry the grounding
	// references for display.
	tc.HoldGroundedResponse(resp)

	if len(resp.Chunks) == 0 || behavior == markersNone {
		tc.Map.SetMarkers(nil)
		return resp.Text, nil
	}

	// Resolve place details and update the map without blocking the tool
	// response. The task may outlive the session; stale updates after a
	// disconnect are a benign race.
	tc.markerTasks.Add(1)
	go func(ctx context.Context) {
		defer tc.markerTasks.Done()
		markers := buildMarkers(ctx, tc, resp, behavior)
		applyMarkers(tc.Map, markers, resp.Chunks)
	}(context.WithoutCancel(ctx))

	return resp.Text, nil
}

// buildMarkers resolves grounding references into map markers. Place
// lookups have all-settled semantics: a failed lookup drops that marker
// only.
func buildMarkers(ctx context.Context, tc *Context, resp *grounding.Response, behavior string) []state.Marker {
	chunks := make([]grounding.Chunk, 0, len(resp.Chunks))
	for _, c := range resp.Chunks {
		if c.PlaceID == "" {
			continue
		}
		if behavior == markersMentioned && (c.Title == "" || !strings.Contains(resp.Text, c.Title)) {
			continue
		}
		chunks = append(chunks, c)
	}
	if len(chunks) == 0 {
		return nil
	}

	ids := make([]string, len(chunks))
	for i, c := range chunks {
		ids[i] = c.PlaceID
	}
	places := grounding.ResolveAll(ctx, tc.Places, ids, tc.Logger)

	var markers []state.Marker
	for i, place := range places {
		if place == nil {
			continue
		}
		showLabel := true
		if behavior == markersAll {
			showLabel = chunks[i].Title != "" && strings.Contains(resp.Text, chunks[i].Title)
		}
		markers = append(markers, state.Marker{
			Position:  state.Position{Lat: place.Lat, Lng: place.Lng, Altitude: markerAltitude},
			Label:     place.DisplayName,
			ShowLabel: showLabel,
		})
	}
	return markers
}

// applyMarkers sets the markers and picks the camera mode: a close-up when
// grounding answered about one specific place, default auto-framing
// otherwise.
func applyMarkers(m *state.Map, markers []state.Marker, chunks []grounding.Chunk) {
	placeAnswer := false
	for _, c := range chunks {
		if c.PlaceAnswer {
			placeAnswer = true
			break
		}
	}

	if placeAnswer && len(markers) == 1 {
		m.SetPreventAutoFrame(true)
		m.SetMarkers(markers)
		m.SetCameraTarget(&state.CameraTarget{
			Center: state.Position{
				Lat:      markers[0].Position.Lat,
				Lng:      markers[0].Position.Lng,
				Altitude: closeUpAltitude,
			},
			Range: closeUpRange,
			Tilt:  closeUpTilt,
		})
		return
	}

	m.SetPreventAutoFrame(false)
	m.SetMarkers(markers)
}
