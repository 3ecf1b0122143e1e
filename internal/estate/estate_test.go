package estate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommunityLookupIsCaseInsensitive(t *testing.T) {
	d := Default()

	pos, ok := d.Community("dubai hills estate")
	require.True(t, ok)
	assert.InDelta(t, 25.1118, pos.Lat, 0.0001)
	assert.InDelta(t, 55.2575, pos.Lng, 0.0001)

	_, ok = d.Community("Atlantis")
	assert.False(t, ok)
}

func TestProjectsLookup(t *testing.T) {
	d := Default()

	projects, ok := d.Projects("Dubai Hills Estate")
	require.True(t, ok)
	assert.NotEmpty(t, projects)

	// Communities in the gazetteer without listings report no data.
	_, ok = d.Projects("Al Barari")
	assert.False(t, ok)
}

func TestFindProject(t *testing.T) {
	d := Default()

	p, community, ok := d.FindProject("sidra")
	require.True(t, ok)
	assert.Equal(t, "Sidra Villas", p.Name)
	assert.Equal(t, "Dubai Hills Estate", community)

	_, _, ok = d.FindProject("Nonexistent Towers")
	assert.False(t, ok)
}

func TestDefaultDatasetShape(t *testing.T) {
	d := Default()

	// Every listed community resolves to a position.
	for name := range defaultProjects {
		_, ok := d.Community(name)
		assert.True(t, ok, "community %q has listings but no position", name)
	}

	for name, list := range defaultProjects {
		for _, p := range list {
			assert.NotEmpty(t, p.Name, "project in %q missing name", name)
			assert.NotZero(t, p.StartingPrice, "project %q missing price", p.Name)
			assert.NotEmpty(t, p.ProjectType, "project %q missing type", p.Name)
		}
	}
}

func TestExampleCommunities(t *testing.T) {
	d := Default()
	assert.Equal(t, []string{"Dubai Hills Estate", "Downtown Dubai"}, d.ExampleCommunities())
}
