package expansion

import (
	"slices"
	"time"

	"fyne.io/fyne/v2"

	"github.com/ytget/swipeactions/internal/animator"
)

// ScaleAndAlpha shrinks and fades the other action views while the last one
// expands, one after another, and restores them in reverse order.
type ScaleAndAlpha struct {
	Duration         time.Duration
	Scale            float32
	InterButtonDelay time.Duration

	// Animate creates the per-view animators; nil applies the change at once
	Animate animator.Factory

	pending map[Transformable]*target
}

type target struct {
	scale, alpha float32
}

// DefaultScaleAndAlpha returns the effect used when no delegate is configured
func DefaultScaleAndAlpha() *ScaleAndAlpha {
	return &ScaleAndAlpha{
		Duration:         150 * time.Millisecond,
		Scale:            0.8,
		InterButtonDelay: 100 * time.Millisecond,
		Animate:          animator.NewFyne,
	}
}

// TimingParameters delays the container animation by one step when expanding
func (e *ScaleAndAlpha) TimingParameters(_ []fyne.CanvasObject, expanding bool) TimingParameters {
	timing := DefaultTimingParameters
	if expanding {
		timing.Delay = e.InterButtonDelay
	}
	return timing
}

// ActionButtonDidChange scales and fades every other view towards its target
func (e *ScaleAndAlpha) ActionButtonDidChange(_ fyne.CanvasObject, expanded bool, others []fyne.CanvasObject) {
	views := others
	if !expanded {
		views = slices.Clone(others)
		slices.Reverse(views)
	}

	targetScale, targetAlpha := float32(1), float32(1)
	if expanded {
		targetScale, targetAlpha = e.Scale, 0
	}

	for i, view := range views {
		t, ok := view.(Transformable)
		if !ok || e.settledAt(t, target{targetScale, targetAlpha}) {
			continue
		}

		step := i
		if !expanded {
			step = i + 1
		}
		e.animate(t, targetScale, targetAlpha, e.InterButtonDelay*time.Duration(step))
	}
}

// settledAt reports whether t is at, or already animating towards, to
func (e *ScaleAndAlpha) settledAt(t Transformable, to target) bool {
	if pending, ok := e.pending[t]; ok {
		return *pending == to
	}
	return t.Scale() == to.scale && t.Alpha() == to.alpha
}

func (e *ScaleAndAlpha) animate(t Transformable, scale, alpha float32, delay time.Duration) {
	if e.Animate == nil {
		t.SetScale(scale)
		t.SetAlpha(alpha)
		return
	}
	if e.pending == nil {
		e.pending = make(map[Transformable]*target)
	}
	to := &target{scale, alpha}
	e.pending[t] = to

	fromScale, fromAlpha := t.Scale(), t.Alpha()
	a := e.Animate(e.Duration, animator.CriticalDamping)
	a.AddAnimations(func(f float32) {
		if e.pending[t] != to {
			// superseded by a later change
			return
		}
		t.SetScale(fromScale + (scale-fromScale)*f)
		t.SetAlpha(fromAlpha + (alpha-fromAlpha)*f)
		if f >= 1 {
			delete(e.pending, t)
		}
	})
	a.Start(delay)
}
