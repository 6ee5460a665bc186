package model

// ActionStyle represents the display style of a swipe action
type ActionStyle string

const (
	// ActionStyleDefault is a regular action painted with the neutral background
	ActionStyleDefault ActionStyle = "default"

	// ActionStyleDestructive is an action painted with the warning background
	ActionStyleDestructive ActionStyle = "destructive"
)

// String returns the string representation of ActionStyle
func (s ActionStyle) String() string {
	return string(s)
}

// IsDestructive returns true if the style marks a destructive action
func (s ActionStyle) IsDestructive() bool {
	return s == ActionStyleDestructive
}

// Orientation is the edge of the cell the actions are anchored to
type Orientation int

const (
	// OrientationRight anchors the actions to the right edge (swipe left to reveal)
	OrientationRight Orientation = iota

	// OrientationLeft anchors the actions to the left edge (swipe right to reveal)
	OrientationLeft
)

// String returns the string representation of Orientation
func (o Orientation) String() string {
	switch o {
	case OrientationLeft:
		return "left"
	case OrientationRight:
		return "right"
	default:
		return "unknown"
	}
}

// ParseOrientation converts a name into an Orientation. Unknown names map to right.
func ParseOrientation(name string) Orientation {
	if name == "left" {
		return OrientationLeft
	}
	return OrientationRight
}

// TransitionStyle selects the layout used while the actions are revealed
type TransitionStyle string

const (
	// TransitionBorder keeps every button at its rest position and shrinks the stack proportionally
	TransitionBorder TransitionStyle = "border"

	// TransitionReveal uncovers fully sized buttons starting at the anchored edge
	TransitionReveal TransitionStyle = "reveal"

	// TransitionDrag slides the buttons in with the cell content
	TransitionDrag TransitionStyle = "drag"
)

// String returns the string representation of TransitionStyle
func (t TransitionStyle) String() string {
	return string(t)
}

// VerticalAlignment controls how title and image are aligned inside a generated button
type VerticalAlignment string

const (
	// AlignCenter centers the button content vertically
	AlignCenter VerticalAlignment = "center"

	// AlignCenterFirstBaseline aligns images of every button on the same line,
	// using the tallest image across all actions
	AlignCenterFirstBaseline VerticalAlignment = "centerFirstBaseline"
)
