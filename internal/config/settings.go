package config

import (
	"fyne.io/fyne/v2"

	"github.com/ytget/swipeactions/internal/model"
)

// Settings keys for Fyne preferences
const (
	KeyTransitionStyle   = "transition_style"
	KeyExpansionStyle    = "expansion_style"
	KeyOrientation       = "orientation"
	KeyMinButtonWidth    = "minimum_button_width"
	KeyMaxButtonWidth    = "maximum_button_width"
	KeyButtonSpacing     = "button_spacing"
	KeyButtonPadding     = "button_padding"
	KeyVerticalAlignment = "button_vertical_alignment"
	KeyBackgroundColor   = "background_color"
)

// Default values
const (
	DefaultTransitionStyle   = model.TransitionDrag
	DefaultExpansionStyle    = "selection"
	DefaultOrientation       = model.OrientationRight
	DefaultVerticalAlignment = model.AlignCenter

	// ExpansionNone disables expansion
	ExpansionNone = "none"

	// MaxButtonWidthLimit bounds the configurable button widths
	MaxButtonWidthLimit float32 = 400
	// MaxButtonGapLimit bounds spacing and padding
	MaxButtonGapLimit float32 = 64
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetTransitionStyle returns the configured transition style
func (s *Settings) GetTransitionStyle() model.TransitionStyle {
	style := model.TransitionStyle(s.app.Preferences().String(KeyTransitionStyle))
	if !isTransitionStyle(style) {
		s.SetTransitionStyle(DefaultTransitionStyle)
		return DefaultTransitionStyle
	}
	return style
}

// SetTransitionStyle sets the transition style; unknown styles store the default
func (s *Settings) SetTransitionStyle(style model.TransitionStyle) {
	if !isTransitionStyle(style) {
		style = DefaultTransitionStyle
	}
	s.app.Preferences().SetString(KeyTransitionStyle, string(style))
}

// GetTransitionStyleOptions returns available transition styles
func (s *Settings) GetTransitionStyleOptions() []model.TransitionStyle {
	return []model.TransitionStyle{model.TransitionDrag, model.TransitionReveal, model.TransitionBorder}
}

// GetExpansionStyleName returns the configured expansion preset name
func (s *Settings) GetExpansionStyleName() string {
	name := s.app.Preferences().String(KeyExpansionStyle)
	if !isExpansionStyleName(name) {
		s.SetExpansionStyleName(DefaultExpansionStyle)
		return DefaultExpansionStyle
	}
	return name
}

// SetExpansionStyleName sets the expansion preset; unknown names store the default
func (s *Settings) SetExpansionStyleName(name string) {
	if !isExpansionStyleName(name) {
		name = DefaultExpansionStyle
	}
	s.app.Preferences().SetString(KeyExpansionStyle, name)
}

// GetExpansionStyleOptions returns available expansion preset names
func (s *Settings) GetExpansionStyleOptions() []string {
	return []string{
		ExpansionNone,
		model.ExpansionSelection.Name,
		model.ExpansionDestructive.Name,
		model.ExpansionFill.Name,
	}
}

// GetOrientation returns the edge the primary actions are anchored to
func (s *Settings) GetOrientation() model.Orientation {
	name := s.app.Preferences().String(KeyOrientation)
	if name == "" {
		s.SetOrientation(DefaultOrientation)
		return DefaultOrientation
	}
	return model.ParseOrientation(name)
}

// SetOrientation sets the primary actions edge
func (s *Settings) SetOrientation(o model.Orientation) {
	if o != model.OrientationLeft {
		o = model.OrientationRight
	}
	s.app.Preferences().SetString(KeyOrientation, o.String())
}

// GetMinimumButtonWidth returns the minimum button width, 0 meaning automatic
func (s *Settings) GetMinimumButtonWidth() float32 {
	return float32(s.app.Preferences().Float(KeyMinButtonWidth))
}

// SetMinimumButtonWidth sets the minimum button width
func (s *Settings) SetMinimumButtonWidth(width float32) {
	s.app.Preferences().SetFloat(KeyMinButtonWidth, float64(clampFloat(width, MaxButtonWidthLimit)))
}

// GetMaximumButtonWidth returns the maximum button width, 0 meaning automatic
func (s *Settings) GetMaximumButtonWidth() float32 {
	return float32(s.app.Preferences().Float(KeyMaxButtonWidth))
}

// SetMaximumButtonWidth sets the maximum button width
func (s *Settings) SetMaximumButtonWidth(width float32) {
	s.app.Preferences().SetFloat(KeyMaxButtonWidth, float64(clampFloat(width, MaxButtonWidthLimit)))
}

// GetButtonSpacing returns the gap between image and title
func (s *Settings) GetButtonSpacing() float32 {
	return float32(s.app.Preferences().FloatWithFallback(KeyButtonSpacing, float64(model.DefaultButtonSpacing)))
}

// SetButtonSpacing sets the gap between image and title
func (s *Settings) SetButtonSpacing(spacing float32) {
	s.app.Preferences().SetFloat(KeyButtonSpacing, float64(clampFloat(spacing, MaxButtonGapLimit)))
}

// GetButtonPadding returns the padding around generated button content
func (s *Settings) GetButtonPadding() float32 {
	return float32(s.app.Preferences().FloatWithFallback(KeyButtonPadding, float64(model.DefaultButtonPadding)))
}

// SetButtonPadding sets the padding around generated button content
func (s *Settings) SetButtonPadding(padding float32) {
	s.app.Preferences().SetFloat(KeyButtonPadding, float64(clampFloat(padding, MaxButtonGapLimit)))
}

// GetVerticalAlignment returns the generated button alignment
func (s *Settings) GetVerticalAlignment() model.VerticalAlignment {
	switch a := model.VerticalAlignment(s.app.Preferences().String(KeyVerticalAlignment)); a {
	case model.AlignCenter, model.AlignCenterFirstBaseline:
		return a
	default:
		return DefaultVerticalAlignment
	}
}

// SetVerticalAlignment sets the generated button alignment
func (s *Settings) SetVerticalAlignment(a model.VerticalAlignment) {
	if a != model.AlignCenterFirstBaseline {
		a = model.AlignCenter
	}
	s.app.Preferences().SetString(KeyVerticalAlignment, string(a))
}

// GetBackgroundColor returns the container color as a hex string, empty for the palette default
func (s *Settings) GetBackgroundColor() string {
	return s.app.Preferences().String(KeyBackgroundColor)
}

// SetBackgroundColor stores a hex color. Invalid colors are rejected.
func (s *Settings) SetBackgroundColor(hex string) error {
	if hex != "" {
		if _, err := ParseColor(hex); err != nil {
			return err
		}
	}
	s.app.Preferences().SetString(KeyBackgroundColor, hex)
	return nil
}

// Apply stores every value of layout
func (s *Settings) Apply(layout Layout) {
	o := layout.Options
	s.SetTransitionStyle(o.TransitionStyle)
	if o.ExpansionStyle == nil {
		s.SetExpansionStyleName(ExpansionNone)
	} else {
		s.SetExpansionStyleName(o.ExpansionStyle.Name)
	}
	s.SetOrientation(layout.Orientation)
	s.SetMinimumButtonWidth(o.MinimumButtonWidth)
	s.SetMaximumButtonWidth(o.MaximumButtonWidth)
	if o.ButtonSpacing > 0 {
		s.SetButtonSpacing(o.ButtonSpacing)
	}
	if o.ButtonPadding > 0 {
		s.SetButtonPadding(o.ButtonPadding)
	}
	if o.ButtonVerticalAlignment != "" {
		s.SetVerticalAlignment(o.ButtonVerticalAlignment)
	}
	if layout.BackgroundColor != "" {
		_ = s.SetBackgroundColor(layout.BackgroundColor)
	}
}

// Options assembles the layout options from the stored settings
func (s *Settings) Options() model.Options {
	o := model.Options{
		TransitionStyle:         s.GetTransitionStyle(),
		MinimumButtonWidth:      s.GetMinimumButtonWidth(),
		MaximumButtonWidth:      s.GetMaximumButtonWidth(),
		ButtonSpacing:           s.GetButtonSpacing(),
		ButtonPadding:           s.GetButtonPadding(),
		ButtonVerticalAlignment: s.GetVerticalAlignment(),
	}
	if style, ok := model.ExpansionStyleByName(s.GetExpansionStyleName()); ok {
		o.ExpansionStyle = style
	}
	if hex := s.GetBackgroundColor(); hex != "" {
		if c, err := ParseColor(hex); err == nil {
			o.BackgroundColor = c
		}
	}
	return o
}

func isTransitionStyle(style model.TransitionStyle) bool {
	switch style {
	case model.TransitionDrag, model.TransitionReveal, model.TransitionBorder:
		return true
	}
	return false
}

func isExpansionStyleName(name string) bool {
	if name == ExpansionNone {
		return true
	}
	_, ok := model.ExpansionStyleByName(name)
	return ok
}

func clampFloat(v, hi float32) float32 {
	return max(0, min(v, hi))
}
