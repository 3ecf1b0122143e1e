package tools

import "context"

// Handler executes one tool call. The result is either a plain string or a
// structured payload; a returned error is converted by the dispatcher into
// a failure string, never propagated.
type Handler func(ctx context.Context, tc *Context, args map[string]any) (any, error)

// Registry maps tool names to their implementations.
type Registry map[string]Handler

// DefaultRegistry returns the full tool set the assistant exposes to the
// model.
func DefaultRegistry() Registry {
	return Registry{
		"mapsGrounding":         mapsGrounding,
		"locateCommunity":       locateCommunity,
		"findProjects":          findProjects,
		"updateClientProfile":   updateClientProfile,
		"addProjectToFavorites": addProjectToFavorites,
		"getProjectDetails":     getProjectDetails,
	}
}
