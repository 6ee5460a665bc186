package ui

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/ytget/swipeactions/internal/model"
)

// Palette is the default theme table for action backgrounds. It is resolved
// once when a view is built; nothing reads platform state per draw.
type Palette struct {
	Destructive         color.Color
	Normal              color.Color
	ContainerBackground color.Color
	Foreground          color.Color
	EffectTint          color.Color
}

// DefaultPalette returns the stock colors
func DefaultPalette() Palette {
	return Palette{
		Destructive:         color.NRGBA{R: 255, G: 60, B: 48, A: 255},   // system red
		Normal:              color.NRGBA{R: 199, G: 198, B: 203, A: 255}, // neutral gray
		ContainerBackground: color.NRGBA{R: 229, G: 229, B: 234, A: 255},
		Foreground:          color.White,
		EffectTint:          color.NRGBA{R: 255, G: 255, B: 255, A: 153},
	}
}

// Background resolves the wrapper fill for an action. ok is false when the
// action paints no background at all.
func (p Palette) Background(a *model.Action) (c color.Color, ok bool) {
	if a == nil || !a.HasBackgroundColor() {
		return nil, false
	}
	if a.HasExplicitBackgroundColor() {
		return a.BackgroundColor, true
	}
	if a.Style.IsDestructive() {
		return p.Destructive, true
	}
	return p.Normal, true
}

// Container returns the container fill, preferring the configured color
func (p Palette) Container(o model.Options) color.Color {
	if o.BackgroundColor != nil {
		return o.BackgroundColor
	}
	return p.ContainerBackground
}

// Highlight darkens c the way a pressed button is drawn
func (p Palette) Highlight(c color.Color) color.Color {
	base, ok := colorful.MakeColor(c)
	if !ok {
		return withAlpha(color.Black, HighlightAlpha)
	}
	_, _, _, a := c.RGBA()
	r, g, b := base.BlendRgb(colorful.Color{}, HighlightAlpha).Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: uint8(a >> 8)}
}

// withAlpha scales the alpha channel of c by alpha
func withAlpha(c color.Color, alpha float32) color.Color {
	if c == nil {
		return nil
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	n.A = uint8(float32(n.A)*max(0, min(1, alpha)) + 0.5)
	return n
}
