package model

import (
	"fmt"
	"image/color"
	"time"

	"fyne.io/fyne/v2"
	"github.com/google/uuid"
)

// ActionIDPrefix prefixes generated action identifiers
const ActionIDPrefix = "action-"

// TransitionDelegate observes how much of an action's view is visible
type TransitionDelegate interface {
	DidTransition(ctx TransitioningContext)
}

// TransitionDelegateFunc adapts a function to TransitionDelegate
type TransitionDelegateFunc func(ctx TransitioningContext)

// DidTransition calls f(ctx)
func (f TransitionDelegateFunc) DidTransition(ctx TransitioningContext) {
	f(ctx)
}

// TransitioningContext describes a change in an action's visible fraction
type TransitioningContext struct {
	ActionID          string
	View              fyne.CanvasObject // the action's content view
	WrapperView       fyne.CanvasObject // the wrapper painting the action background
	OldPercentVisible float32
	NewPercentVisible float32
}

// BackgroundEffect stands in for a platform blur behind the action.
// The wrapper paints Tint behind the content before the action background.
type BackgroundEffect struct {
	Tint color.Color
}

// Action represents a single swipe action button
type Action struct {
	ID    string
	Style ActionStyle
	Title string
	Image fyne.Resource

	// BackgroundColor overrides the palette color derived from Style
	BackgroundColor color.Color
	// NoBackground leaves the wrapper fully transparent
	NoBackground     bool
	BackgroundEffect *BackgroundEffect

	// CustomView replaces the generated button
	CustomView fyne.CanvasObject

	Transition TransitionDelegate
	Handler    func(action *Action)
}

// NewAction creates an action with a generated identifier
func NewAction(style ActionStyle, title string, handler func(action *Action)) *Action {
	return &Action{
		ID:      generateActionID(),
		Style:   style,
		Title:   title,
		Handler: handler,
	}
}

// HasBackgroundColor reports whether the wrapper paints a solid background for
// the action. Actions drawn over a background effect never do.
func (a *Action) HasBackgroundColor() bool {
	return !a.NoBackground && a.BackgroundEffect == nil
}

// HasExplicitBackgroundColor reports whether the action overrides the palette
func (a *Action) HasExplicitBackgroundColor() bool {
	return a.BackgroundColor != nil
}

// generateActionID generates a unique, time ordered action ID
func generateActionID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return fmt.Sprintf(ActionIDPrefix+"%d", time.Now().UnixNano())
	}
	return ActionIDPrefix + id.String()
}
