package model

import (
	"image/color"

	"fyne.io/fyne/v2"
)

// Default values for Options
const (
	DefaultButtonSpacing  float32 = 8
	DefaultButtonPadding  float32 = 8
	DefaultMinButtonWidth float32 = 74
	// MaxSizeInset is subtracted from the cell width before it is shared between buttons
	MaxSizeInset float32 = 30
	// ElasticOverscrollRatio damps the drag once all buttons are revealed
	ElasticOverscrollRatio float32 = 0.25
)

// Options configures an actions view. Zero values mean "use the default".
type Options struct {
	TransitionStyle TransitionStyle
	ExpansionStyle  *ExpansionStyle

	MinimumButtonWidth float32
	MaximumButtonWidth float32
	ButtonSpacing      float32
	ButtonPadding      float32

	ButtonVerticalAlignment VerticalAlignment
	BackgroundColor         color.Color

	// ExpansionDelegate overrides the default expansion effect. It must
	// implement expansion.Delegate; it is kept untyped here to avoid an
	// import cycle between model and expansion.
	ExpansionDelegate any
}

// WithDefaults returns a copy of o with documented defaults filled in.
// Button widths are left at zero: their defaults depend on the cell size.
func (o Options) WithDefaults() Options {
	switch o.TransitionStyle {
	case TransitionBorder, TransitionReveal, TransitionDrag:
	default:
		o.TransitionStyle = TransitionDrag
	}
	if o.ButtonSpacing <= 0 {
		o.ButtonSpacing = DefaultButtonSpacing
	}
	if o.ButtonPadding <= 0 {
		o.ButtonPadding = DefaultButtonPadding
	}
	if o.ButtonVerticalAlignment == "" {
		o.ButtonVerticalAlignment = AlignCenter
	}
	if o.MinimumButtonWidth < 0 {
		o.MinimumButtonWidth = 0
	}
	if o.MaximumButtonWidth < 0 {
		o.MaximumButtonWidth = 0
	}
	return o
}

// ButtonWidthBounds returns the [minimum, maximum] width for generated buttons
// when count actions share a cell of maxSize.
func (o Options) ButtonWidthBounds(maxSize fyne.Size, count int) (minimum, maximum float32) {
	if count < 1 {
		count = 1
	}
	maximum = o.MaximumButtonWidth
	if maximum <= 0 {
		maximum = (maxSize.Width - MaxSizeInset) / float32(count)
	}
	if maximum < 0 {
		maximum = 0
	}
	minimum = o.MinimumButtonWidth
	if minimum <= 0 {
		minimum = min(maximum, DefaultMinButtonWidth)
	}
	return minimum, maximum
}

// EdgeInsets is the padding applied around the action wrappers
type EdgeInsets struct {
	Top, Left, Bottom, Right float32
}

// IsZero reports whether all insets are zero
func (e EdgeInsets) IsZero() bool {
	return e == EdgeInsets{}
}

// Uniform returns insets with every edge set to v
func Uniform(v float32) EdgeInsets {
	return EdgeInsets{Top: v, Left: v, Bottom: v, Right: v}
}

// SafeArea holds the unsafe margins of the host window
type SafeArea struct {
	Left, Right float32
}

// Margin returns the inset on the edge the actions are anchored to
func (s SafeArea) Margin(o Orientation) float32 {
	if o == OrientationLeft {
		return max(0, s.Left)
	}
	return max(0, s.Right)
}
