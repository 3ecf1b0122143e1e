// Package grounding provides the external answer providers the assistant
// leans on when the local dataset cannot answer: Google-Search grounded
// generation, Google-Maps grounded generation, and place resolution.
//
// All providers are defined as interfaces so tool implementations and tests
// depend on behaviour, not on the Gemini SDK or REST endpoints.
package grounding

import "context"

// Chunk is one grounding reference returned alongside a generated answer,
// tied to a physical place.
type Chunk struct {
	// PlaceID identifies the place, possibly prefixed "places/".
	PlaceID string

	// Title is the display title of the referenced place.
	Title string

	// PlaceAnswer is set when the chunk carries place-answer sources,
	// i.e. the model answered about this specific place rather than
	// merely citing it.
	PlaceAnswer bool
}

// Response is a grounded answer: generated text plus the grounding
// references backing it.
type Response struct {
	Text   string
	Chunks []Chunk
}

// MapsQuery parameterises one maps-grounded request.
type MapsQuery struct {
	Prompt            string
	SystemInstruction string
	EnableWidget      bool
}

// MapsProvider answers queries grounded in Google Maps data.
type MapsProvider interface {
	GroundedAnswer(ctx context.Context, q MapsQuery) (*Response, error)
}

// SearchProvider answers free-text prompts grounded in web search.
type SearchProvider interface {
	GroundedAnswer(ctx context.Context, prompt string) (string, error)
}

// Place is a resolved place location.
type Place struct {
	Lat         float64
	Lng         float64
	DisplayName string
}

// Places resolves place identifiers to locations. Implementations report
// per-item failures through the error return; batch helpers drop failed
// items instead of aborting.
type Places interface {
	Resolve(ctx context.Context, placeID string) (Place, error)
}
