// Package state provides the owned mutable state containers read and
// written by tool implementations and consumed by the UI: map state, the
// client profile and the favorites list.
//
// Containers are injected into the controller and dispatcher at
// construction time; there are no package-level singletons.
package state

import "sync"

// Position is a geographic point with display altitude.
type Position struct {
	Lat      float64 `json:"lat"`
	Lng      float64 `json:"lng"`
	Altitude float64 `json:"altitude"`
}

// Marker is one map pin.
type Marker struct {
	Position  Position `json:"position"`
	Label     string   `json:"label"`
	ShowLabel bool     `json:"showLabel"`
}

// CameraTarget is an explicit camera pose for the 3D map.
type CameraTarget struct {
	Center  Position `json:"center"`
	Range   float64  `json:"range"`
	Tilt    float64  `json:"tilt"`
	Heading float64  `json:"heading"`
	Roll    float64  `json:"roll"`
}

// Map holds the marker collection and camera intent. Each tool call that
// produces markers replaces the whole collection; there is no merge.
type Map struct {
	mu               sync.RWMutex
	markers          []Marker
	cameraTarget     *CameraTarget
	preventAutoFrame bool
}

// NewMap creates an empty map state.
func NewMap() *Map {
	return &Map{}
}

// SetMarkers replaces all markers.
func (m *Map) SetMarkers(markers []Marker) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.markers = make([]Marker, len(markers))
	copy(m.markers, markers)
}

// ClearMarkers removes all markers.
func (m *Map) ClearMarkers() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.markers = nil
}

// Markers returns a snapshot of the marker collection.
func (m *Map) Markers() []Marker {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]Marker, len(m.markers))
	copy(out, m.markers)
	return out
}

// SetCameraTarget sets an explicit camera pose; nil clears it.
func (m *Map) SetCameraTarget(target *CameraTarget) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cameraTarget = target
}

// CameraTarget returns the current explicit camera pose, or nil.
func (m *Map) CameraTarget() *CameraTarget {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.cameraTarget
}

// SetPreventAutoFrame toggles UI auto-framing suppression. Used by the
// close-up framing path so the map does not immediately re-frame.
func (m *Map) SetPreventAutoFrame(prevent bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.preventAutoFrame = prevent
}

// PreventAutoFrame reports whether auto-framing is suppressed.
func (m *Map) PreventAutoFrame() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.preventAutoFrame
}
