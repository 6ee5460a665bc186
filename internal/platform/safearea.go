package platform

import (
	"fyne.io/fyne/v2"

	"github.com/ytget/swipeactions/internal/model"
)

// SafeAreaProvider exposes the unsafe margins of the host
type SafeAreaProvider interface {
	SafeAreaInsets() model.SafeArea
}

// StaticSafeArea is a fixed set of margins
type StaticSafeArea model.SafeArea

// SafeAreaInsets returns the fixed margins
func (s StaticSafeArea) SafeAreaInsets() model.SafeArea {
	return model.SafeArea(s)
}

// WindowRegistry resolves window handles without holding them
type WindowRegistry struct {
	windows map[string]fyne.Window
}

// NewWindowRegistry creates an empty registry
func NewWindowRegistry() *WindowRegistry {
	return &WindowRegistry{windows: make(map[string]fyne.Window)}
}

// Register stores w under id
func (r *WindowRegistry) Register(id string, w fyne.Window) {
	r.windows[id] = w
}

// Unregister forgets id; providers holding the id then report zero margins
func (r *WindowRegistry) Unregister(id string) {
	delete(r.windows, id)
}

// Lookup returns the window registered under id
func (r *WindowRegistry) Lookup(id string) (fyne.Window, bool) {
	w, ok := r.windows[id]
	return w, ok
}

// WindowSafeArea reads margins from a window's canvas. It keeps only the
// window's id, so an actions view never keeps its host window alive.
type WindowSafeArea struct {
	Registry *WindowRegistry
	WindowID string
}

// SafeAreaInsets returns the horizontal margins between the canvas and its
// safe area, or zero once the window is gone
func (s WindowSafeArea) SafeAreaInsets() model.SafeArea {
	if s.Registry == nil {
		return model.SafeArea{}
	}
	w, ok := s.Registry.Lookup(s.WindowID)
	if !ok || w.Canvas() == nil {
		return model.SafeArea{}
	}
	c := w.Canvas()
	pos, size := c.InteractiveArea()
	return model.SafeArea{
		Left:  max(0, pos.X),
		Right: max(0, c.Size().Width-pos.X-size.Width),
	}
}
