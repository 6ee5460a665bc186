// Package animator provides the interruptible property animation used by
// the actions view. Animations are driven by closures receiving the eased
// progress in [0, 1]; an animator can be stopped at any time, optionally
// jumping to its end state.
package animator

import "time"

// CriticalDamping is the damping ratio that settles without overshoot
const CriticalDamping float32 = 1.0

// Animator is a one-shot, interruptible animation
type Animator interface {
	// AddAnimations registers fn to be called with the eased progress on every tick
	AddAnimations(fn func(fraction float32))
	// Start begins the animation after delay
	Start(delay time.Duration)
	// Stop ends the animation immediately. When jumpToEnd is set the
	// animations are run once more with progress 1. Stop is synchronous and
	// calling it again has no effect.
	Stop(jumpToEnd bool)
	// IsRunning reports whether the animation has started (or is waiting for
	// its delay) and not yet finished or been stopped
	IsRunning() bool
}

// Factory creates an animator of the given duration and spring damping ratio
type Factory func(duration time.Duration, dampingRatio float32) Animator

// Immediate is an animator that completes synchronously inside Start. It
// serves hosts that disable motion.
type Immediate struct {
	animations []func(float32)
	done       bool
}

// NewImmediate is a Factory producing Immediate animators
func NewImmediate(time.Duration, float32) Animator {
	return &Immediate{}
}

// AddAnimations registers fn
func (a *Immediate) AddAnimations(fn func(fraction float32)) {
	a.animations = append(a.animations, fn)
}

// Start runs every animation at progress 1, ignoring the delay
func (a *Immediate) Start(time.Duration) {
	if a.done {
		return
	}
	a.done = true
	run(a.animations, 1)
}

// Stop marks the animator finished; it never runs in the background
func (a *Immediate) Stop(jumpToEnd bool) {
	if a.done {
		return
	}
	a.done = true
	if jumpToEnd {
		run(a.animations, 1)
	}
}

// IsRunning is always false: the animation completes inside Start
func (a *Immediate) IsRunning() bool {
	return false
}

func run(animations []func(float32), fraction float32) {
	for _, fn := range animations {
		fn(fraction)
	}
}
