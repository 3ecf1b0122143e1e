// Package estate is the queryable real-estate data provider: a community
// gazetteer and per-community project listings. The built-in dataset
// simulates the listings API the assistant would normally query.
package estate

import "strings"

// ProjectType classifies a listing's sales status.
type ProjectType string

const (
	OffPlan ProjectType = "Off-plan"
	Ready   ProjectType = "Ready"
	ForRent ProjectType = "For Rent"
)

// LatLng is a plain coordinate pair.
type LatLng struct {
	Lat float64
	Lng float64
}

// UnitType is one unit configuration within a project.
type UnitType struct {
	UnitType    string `json:"unit_type"`
	AvgSizeSqft int    `json:"avg_size_sqft"`
}

// Specs carries pricing breakdown for sale listings. Rentals have none.
type Specs struct {
	AvgPricePerSqft int        `json:"avg_price_per_sqft"`
	UnitTypes       []UnitType `json:"unit_types"`
}

// Project is one real-estate development.
type Project struct {
	Name                string
	Type                string // Apartments, Villas, Townhouse
	Position            LatLng
	Amenities           []string
	LocationDescription string
	LaunchDate          string
	HandoverDate        string
	ProjectType         ProjectType
	StartingPrice       int
	CurrencyCode        string
	ServiceCharge       float64
	IsFreehold          bool
	ImageURL            string
	Specs               *Specs
}

// Dataset is a community gazetteer plus project listings. Construct test
// fixtures directly; production code uses Default().
type Dataset struct {
	communities  map[string]LatLng
	projects     map[string][]Project
	displayNames map[string]string
}

// NewDataset builds a dataset from explicit community and project tables.
// Keys are community names; lookups are case-insensitive.
func NewDataset(communities map[string]LatLng, projects map[string][]Project) *Dataset {
	c := make(map[string]LatLng, len(communities))
	names := make(map[string]string, len(communities))
	for name, pos := range communities {
		c[strings.ToLower(name)] = pos
		names[strings.ToLower(name)] = name
	}
	p := make(map[string][]Project, len(projects))
	for name, list := range projects {
		p[strings.ToLower(name)] = list
		if _, ok := names[strings.ToLower(name)]; !ok {
			names[strings.ToLower(name)] = name
		}
	}
	return &Dataset{communities: c, projects: p, displayNames: names}
}

// Community looks up a community center by name, case-insensitively.
func (d *Dataset) Community(name string) (LatLng, bool) {
	pos, ok := d.communities[strings.ToLower(name)]
	return pos, ok
}

// Projects returns the project list for a community, case-insensitively.
// The second return is false when the community has no data at all.
func (d *Dataset) Projects(community string) ([]Project, bool) {
	list, ok := d.projects[strings.ToLower(community)]
	return list, ok
}

// FindProject searches all communities for the first project whose name
// contains the query, case-insensitively. The second return is the
// community the project belongs to.
func (d *Dataset) FindProject(query string) (Project, string, bool) {
	q := strings.ToLower(query)
	for community, list := range d.projects {
		for _, p := range list {
			if strings.Contains(strings.ToLower(p.Name), q) {
				return p, d.displayNames[community], true
			}
		}
	}
	return Project{}, "", false
}

// ExampleCommunities returns a couple of known community names, used in
// miss messages to steer the user back to valid input.
func (d *Dataset) ExampleCommunities() []string {
	return []string{"Dubai Hills Estate", "Downtown Dubai"}
}
