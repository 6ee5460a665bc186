// Package expansion decides how an actions view animates when its last
// action expands to fill the cell, and applies the visual effect to the
// other action views.
package expansion

import (
	"time"

	"fyne.io/fyne/v2"

	"github.com/ytget/swipeactions/internal/model"
)

// TimingParameters configures the container's expansion animation
type TimingParameters struct {
	Duration time.Duration
	Delay    time.Duration
}

// DefaultTimingParameters is used when no delegate is configured
var DefaultTimingParameters = TimingParameters{
	Duration: 600 * time.Millisecond,
	Delay:    0,
}

// Delegate customizes the expansion of the last action
type Delegate interface {
	// TimingParameters returns the duration and delay for the container animation
	TimingParameters(views []fyne.CanvasObject, expanding bool) TimingParameters
	// ActionButtonDidChange applies the visual effect. Calling it twice with
	// the same arguments must leave the views as after the first call.
	ActionButtonDidChange(expanding fyne.CanvasObject, expanded bool, others []fyne.CanvasObject)
}

// Transformable is a view the expansion effect can scale and fade
type Transformable interface {
	Scale() float32
	SetScale(scale float32)
	Alpha() float32
	SetAlpha(alpha float32)
}

// Resolve picks the delegate for a container. An explicit override wins;
// otherwise the default ScaleAndAlpha effect is used when the expandable
// action paints no solid background, since the generated fill would hide
// the effect. Without an expandable action there is no delegate.
func Resolve(override Delegate, expandable *model.Action) Delegate {
	if override != nil {
		return override
	}
	if expandable == nil || expandable.HasBackgroundColor() {
		return nil
	}
	return DefaultScaleAndAlpha()
}

// TimingOrDefault returns d's timing parameters, or the defaults when d is nil
func TimingOrDefault(d Delegate, views []fyne.CanvasObject, expanding bool) TimingParameters {
	if d == nil {
		return DefaultTimingParameters
	}
	return d.TimingParameters(views, expanding)
}
