package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapSetMarkersReplaces(t *testing.T) {
	m := NewMap()

	m.SetMarkers([]Marker{
		{Position: Position{Lat: 25.1, Lng: 55.2, Altitude: 150}, Label: "Maple"},
		{Position: Position{Lat: 25.2, Lng: 55.3, Altitude: 150}, Label: "Sidra"},
	})
	assert.Len(t, m.Markers(), 2)

	m.SetMarkers([]Marker{
		{Position: Position{Lat: 24.9, Lng: 55.3, Altitude: 150}, Label: "Palmiera", ShowLabel: true},
	})

	markers := m.Markers()
	assert.Len(t, markers, 1)
	assert.Equal(t, "Palmiera", markers[0].Label)
	assert.True(t, markers[0].ShowLabel)
}

func TestMapMarkersSnapshot(t *testing.T) {
	m := NewMap()
	m.SetMarkers([]Marker{{Label: "Maple"}})

	snap := m.Markers()
	snap[0].Label = "mutated"

	assert.Equal(t, "Maple", m.Markers()[0].Label)
}

func TestMapClearMarkers(t *testing.T) {
	m := NewMap()
	m.SetMarkers([]Marker{{Label: "Maple"}})

	m.ClearMarkers()

	assert.Empty(t, m.Markers())
}

func TestMapCameraTarget(t *testing.T) {
	m := NewMap()
	assert.Nil(t, m.CameraTarget())

	m.SetCameraTarget(&CameraTarget{
		Center: Position{Lat: 25.1, Lng: 55.2, Altitude: 200},
		Range:  500,
		Tilt:   60,
	})

	target := m.CameraTarget()
	assert.NotNil(t, target)
	assert.Equal(t, float64(500), target.Range)

	m.SetCameraTarget(nil)
	assert.Nil(t, m.CameraTarget())
}

func TestMapPreventAutoFrame(t *testing.T) {
	m := NewMap()
	assert.False(t, m.PreventAutoFrame())

	m.SetPreventAutoFrame(true)
	assert.True(t, m.PreventAutoFrame())
}
