package tools

import (
	"google.golang.org/genai"

	"github.com/oasis-voice/oasis/internal/state"
)

// Declarations returns the function declarations advertised to the model
// at session setup. Names must match the DefaultRegistry keys.
func Declarations() []*genai.FunctionDeclaration {
	profileFieldEnum := make([]string, len(state.ProfileFields))
	for i, f := range state.ProfileFields {
		profileFieldEnum[i] = string(f)
	}

	return []*genai.FunctionDeclaration{
		{
			Name:        "mapsGrounding",
			Description: "A tool that uses Google Maps data to find nearby points of interest (amenities) like schools, hospitals, malls, or restaurants.",
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"query": {
						Type:        genai.TypeString,
						Description: `A search query, like "schools near Dubai Hills Estate" or "restaurants in Downtown Dubai". You MUST be as precise as possible.`,
					},
					"markerBehavior": {
						Type:        genai.TypeString,
						Description: `Controls which results get markers. "mentioned" for places in the text response, "all" for all search results, or "none" for no markers.`,
						Enum:        []string{markersMentioned, markersAll, markersNone},
					},
				},
				Required: []string{"query"},
			},
		},
		{
			Name:        "locateCommunity",
			Description: "Call this function to display a specific Dubai community on the map. This provides a wide, establishing shot of the area.",
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"communityName": {
						Type:        genai.TypeString,
						Description: `The name of the Dubai community to locate (e.g., "Dubai Hills Estate", "Palm Jumeirah").`,
					},
				},
				Required: []string{"communityName"},
			},
		},
		{
			Name:        "findProjects",
			Description: "Finds and displays real estate projects on the map within a specific community. It adds markers for each project found.",
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"communityName": {
						Type:        genai.TypeString,
						Description: "The name of the community where to search for projects.",
					},
					"projectType": {
						Type:        genai.TypeString,
						Description: `The type of project to search for (e.g., "Villas", "Apartments", "Off-plan").`,
					},
				},
				Required: []string{"communityName", "projectType"},
			},
		},
		{
			Name:        "updateClientProfile",
			Description: "Updates a specific field in the client's profile with an extracted value. This should be called discreetly in the background whenever a piece of client information is identified.",
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"fieldName": {
						Type:        genai.TypeString,
						Description: "The name of the profile field to update.",
						Enum:        profileFieldEnum,
					},
					"fieldValue": {
						Type:        genai.TypeString,
						Description: `The value extracted from the conversation to store in the profile field. For boolean fields, use "true" or "false".`,
					},
				},
				Required: []string{"fieldName", "fieldValue"},
			},
		},
		{
			Name:        "addProjectToFavorites",
			Description: "Saves a real estate project to the user's personal favorites list for later review. It finds an image and extracts key features from the conversation.",
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"projectName": {
						Type:        genai.TypeString,
						Description: `The full name of the project to save (e.g., "Maple at Dubai Hills").`,
					},
					"communityName": {
						Type:        genai.TypeString,
						Description: `The name of the community the project is in (e.g., "Dubai Hills Estate").`,
					},
				},
				Required: []string{"projectName", "communityName"},
			},
		},
		{
			Name:        "getProjectDetails",
			Description: "Retrieves and lists the amenities for a specific real estate project.",
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"projectName": {
						Type:        genai.TypeString,
						Description: `The name of the project to get details for (e.g., "Maple at Dubai Hills").`,
					},
				},
				Required: []string{"projectName"},
			},
		},
	}
}
