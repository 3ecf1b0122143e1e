// Package tools implements the model-callable function tools and the
// dispatcher that executes tool-call batches from the realtime session.
//
// Implementations never return transport-level errors to the model: invalid
// arguments and lookup misses become descriptive string results, and
// provider failures are converted to failure strings at the call site.
package tools

import (
	"sync"

	"github.com/oasis-voice/oasis/internal/conversation"
	"github.com/oasis-voice/oasis/internal/estate"
	"github.com/oasis-voice/oasis/internal/grounding"
	"github.com/oasis-voice/oasis/internal/log"
	"github.com/oasis-voice/oasis/internal/state"
)

// Context is the shared dependency bundle passed to every tool
// implementation. All stores are process-wide singletons owned by the
// controller wiring.
type Context struct {
	Log       *conversation.Log
	Map       *state.Map
	Profile   *state.Profile
	Favorites *state.Favorites
	Dataset   *estate.Dataset

	Maps   grounding.MapsProvider
	Search grounding.SearchProvider
	Places grounding.Places

	// MapPadding is the camera padding in pixels (top, right, bottom,
	// left) the embedding UI reserves around framed markers.
	MapPadding [4]int

	Logger log.Logger

	mu          sync.Mutex
	held        *grounding.Response
	markerTasks sync.WaitGroup
}

// HoldGroundedResponse stashes the latest maps-grounded response for the
// next agent-turn merge.
func (c *Context) HoldGroundedResponse(resp *grounding.Response) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.held = resp
}

// TakeGroundedResponse returns and clears the held grounded response.
func (c *Context) TakeGroundedResponse() *grounding.Response {
	c.mu.Lock()
	defer c.mu.Unlock()
	resp := c.held
	c.held = nil
	return resp
}

// AwaitMarkerUpdate blocks until all detached marker-update tasks spawned
// so far have finished. Tests use this to make the fire-and-forget map
// update deterministic.
func (c *Context) AwaitMarkerUpdate() {
	c.markerTasks.Wait()
}

func stringArg(args map[string]any, key string) (string, bool) {
	v, ok := args[key].(string)
	return v, ok
}
