package ui

import "fyne.io/fyne/v2"

// SwipeDirection is the horizontal direction of a swipe
type SwipeDirection int

const (
	SwipeNone SwipeDirection = iota
	SwipeLeft
	SwipeRight
)

// String returns the direction name
func (d SwipeDirection) String() string {
	switch d {
	case SwipeLeft:
		return "left"
	case SwipeRight:
		return "right"
	default:
		return "none"
	}
}

// Gesture thresholds constants
const (
	// DefaultSwipeThreshold is the travel before a drag is locked to an axis
	DefaultSwipeThreshold float32 = 10.0
)

// SwipeTracker locks a drag to one axis once it has travelled past the
// threshold. Horizontal drags are reported, vertical ones are left to the
// list scrolling underneath.
type SwipeTracker struct {
	threshold float32

	// Touch tracking
	total      fyne.Delta
	locked     bool
	horizontal bool
	direction  SwipeDirection
}

// NewSwipeTracker creates a tracker with the default threshold
func NewSwipeTracker() *SwipeTracker {
	return &SwipeTracker{threshold: DefaultSwipeThreshold}
}

// SetThreshold sets the travel needed to lock the axis
func (st *SwipeTracker) SetThreshold(threshold float32) {
	st.threshold = max(0, threshold)
}

// Track feeds one drag delta. It returns the horizontal movement to apply
// and whether the drag is horizontal. The movement accumulated before the
// axis locked is returned on the locking delta.
func (st *SwipeTracker) Track(d fyne.Delta) (float32, bool) {
	if st.locked {
		if !st.horizontal {
			return 0, false
		}
		st.updateDirection(d.DX)
		return d.DX, true
	}

	st.total.DX += d.DX
	st.total.DY += d.DY
	absDx, absDy := abs32(st.total.DX), abs32(st.total.DY)
	if max(absDx, absDy) < st.threshold {
		return 0, false
	}

	st.locked = true
	st.horizontal = absDx > absDy
	if !st.horizontal {
		return 0, false
	}
	st.updateDirection(st.total.DX)
	return st.total.DX, true
}

func (st *SwipeTracker) updateDirection(dx float32) {
	switch {
	case dx > 0:
		st.direction = SwipeRight
	case dx < 0:
		st.direction = SwipeLeft
	}
}

// Locked reports whether the axis has been decided
func (st *SwipeTracker) Locked() bool {
	return st.locked
}

// Horizontal reports whether the drag was locked horizontally
func (st *SwipeTracker) Horizontal() bool {
	return st.locked && st.horizontal
}

// Direction returns the direction of the latest horizontal movement
func (st *SwipeTracker) Direction() SwipeDirection {
	return st.direction
}

// Reset forgets the current drag
func (st *SwipeTracker) Reset() {
	st.total = fyne.Delta{}
	st.locked = false
	st.horizontal = false
	st.direction = SwipeNone
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
