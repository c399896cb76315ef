// Package keytracker detects key press edges on top of Ebiten's polled
// keyboard state.
package keytracker

import "github.com/hajimehoshi/ebiten/v2"

// Tracker remembers the previous frame's state per key so that a held key
// fires only once.
type Tracker struct {
	prev map[ebiten.Key]bool
}

// New creates an empty tracker.
func New() *Tracker {
	return &Tracker{prev: make(map[ebiten.Key]bool)}
}

// JustPressed reports whether the key went down this frame. Call it at most
// once per key per frame; each call consumes the edge.
func (t *Tracker) JustPressed(key ebiten.Key) bool {
	pressed := ebiten.IsKeyPressed(key)
	was := t.prev[key]
	t.prev[key] = pressed
	return pressed && !was
}
