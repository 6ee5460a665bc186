package animator

import (
	"time"

	"fyne.io/fyne/v2"
)

// Fyne drives its animations with a fyne.Animation following a spring curve.
// All methods must be called on the Fyne main goroutine; the delay timer
// hands back to it with fyne.Do.
type Fyne struct {
	duration time.Duration
	curve    fyne.AnimationCurve

	animations []func(float32)
	anim       *fyne.Animation
	timer      *time.Timer

	running  bool
	finished bool
}

// NewFyne is a Factory producing Fyne animators
func NewFyne(duration time.Duration, dampingRatio float32) Animator {
	return &Fyne{
		duration: duration,
		curve:    SpringCurve(dampingRatio),
	}
}

// AddAnimations registers fn
func (a *Fyne) AddAnimations(fn func(fraction float32)) {
	a.animations = append(a.animations, fn)
}

// Start begins the animation, after delay when positive
func (a *Fyne) Start(delay time.Duration) {
	if a.running || a.finished {
		return
	}
	a.running = true
	if delay <= 0 {
		a.begin()
		return
	}
	a.timer = time.AfterFunc(delay, func() {
		fyne.Do(a.begin)
	})
}

func (a *Fyne) begin() {
	if !a.running {
		// stopped while waiting for the delay
		return
	}
	a.timer = nil
	a.anim = fyne.NewAnimation(a.duration, a.tick)
	a.anim.Curve = a.curve
	a.anim.Start()
}

func (a *Fyne) tick(fraction float32) {
	if !a.running {
		return
	}
	run(a.animations, fraction)
	if fraction >= 1 {
		a.running = false
		a.finished = true
	}
}

// Stop ends the animation, running it at progress 1 when jumpToEnd is set
func (a *Fyne) Stop(jumpToEnd bool) {
	if a.finished {
		return
	}
	wasRunning := a.running
	a.running = false
	a.finished = true
	if a.timer != nil {
		a.timer.Stop()
		a.timer = nil
	}
	if a.anim != nil {
		a.anim.Stop()
	}
	if jumpToEnd && wasRunning {
		run(a.animations, 1)
	}
}

// IsRunning reports whether the animation is pending or in progress
func (a *Fyne) IsRunning() bool {
	return a.running
}
