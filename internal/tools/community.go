package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/oasis-voice/oasis/internal/conversation"
	"github.com/oasis-voice/oasis/internal/state"
)

// Camera poses for the two framing modes: a wide establishing shot when a
// community is located, and a tight close-up when grounding answered about
// a single specific place.
const (
	communityShotAltitude = 2000
	communityShotRange    = 10000
	communityShotTilt     = 30

	closeUpAltitude = 200
	closeUpRange    = 500
	closeUpTilt     = 60

	markerAltitude = 1
)

func locateCommunity(_ context.Context, tc *Context, args map[string]any) (any, error) {
	name, ok := stringArg(args, "communityName")
	if !ok {
		return "Invalid community name provided.", nil
	}

	pos, found := tc.Dataset.Community(name)
	if !found {
		examples := tc.Dataset.ExampleCommunities()
		msg := fmt.Sprintf("Sorry, I couldn't find the community %q. Please try another, like %q or %q.",
			name, examples[0], examples[1])
		tc.Log.AddTurn(conversation.Turn{Role: conversation.RoleSystem, Text: msg, IsFinal: true})
		return msg, nil
	}

	tc.Map.ClearMarkers()
	tc.Map.SetCameraTarget(&state.CameraTarget{
		Center: state.Position{Lat: pos.Lat, Lng: pos.Lng, Altitude: communityShotAltitude},
		Range:  communityShotRange,
		Tilt:   communityShotTilt,
	})

	return fmt.Sprintf("Located %s on the map.", name), nil
}

func findProjects(_ context.Context, tc *Context, args map[string]any) (any, error) {
	community, okC := stringArg(args, "communityName")
	projectType, okT := stringArg(args, "projectType")
	if !okC || !okT {
		return "Invalid community name or project type provided.", nil
	}

	projects, found := tc.Dataset.Projects(community)
	if !found {
		return fmt.Sprintf("I don't have project data for %q right now.", community), nil
	}

	// The requested type is the broader phrase: "Luxury Villas" matches a
	// project typed "Villas".
	markers := make([]state.Marker, 0, len(projects))
	for _, p := range projects {
		if !strings.Contains(strings.ToLower(projectType), strings.ToLower(p.Type)) {
			continue
		}
		markers = append(markers, state.Marker{
			Position:  state.Position{Lat: p.Position.Lat, Lng: p.Position.Lng, Altitude: markerAltitude},
			Label:     p.Name,
			ShowLabel: true,
		})
	}

	if len(markers) == 0 {
		return fmt.Sprintf("I couldn't find any %q projects in %s. You could try another type.", projectType, community), nil
	}

	tc.Map.SetPreventAutoFrame(false)
	tc.Map.SetMarkers(markers)

	return fmt.Sprintf("Found and marked %d %s projects in %s.", len(markers), projectType, community), nil
}
