package config

import (
	"image/color"
	"testing"

	"fyne.io/fyne/v2/test"

	"github.com/ytget/swipeactions/internal/model"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
}

func TestTransitionStyle(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	if style := settings.GetTransitionStyle(); style != DefaultTransitionStyle {
		t.Errorf("Expected default transition %s, got %s", DefaultTransitionStyle, style)
	}

	// Test setting custom value
	settings.SetTransitionStyle(model.TransitionReveal)
	if style := settings.GetTransitionStyle(); style != model.TransitionReveal {
		t.Errorf("Expected transition reveal, got %s", style)
	}

	// Unknown styles fall back to the default
	settings.SetTransitionStyle("spin")
	if style := settings.GetTransitionStyle(); style != DefaultTransitionStyle {
		t.Errorf("Expected unknown transition to store default, got %s", style)
	}
}

func TestExpansionStyle(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if name := settings.GetExpansionStyleName(); name != DefaultExpansionStyle {
		t.Errorf("Expected default expansion %s, got %s", DefaultExpansionStyle, name)
	}

	settings.SetExpansionStyleName(ExpansionNone)
	if settings.Options().ExpansionStyle != nil {
		t.Error("Expansion none should disable expansion")
	}

	settings.SetExpansionStyleName("destructive")
	style := settings.Options().ExpansionStyle
	if style == nil || !style.FillOnTrigger {
		t.Errorf("Expected destructive preset, got %+v", style)
	}

	settings.SetExpansionStyleName("bogus")
	if name := settings.GetExpansionStyleName(); name != DefaultExpansionStyle {
		t.Errorf("Expected unknown expansion to store default, got %s", name)
	}

	if len(settings.GetExpansionStyleOptions()) != 4 {
		t.Error("Expected four expansion options")
	}
}

func TestOrientation(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if o := settings.GetOrientation(); o != model.OrientationRight {
		t.Errorf("Expected default orientation right, got %s", o)
	}

	settings.SetOrientation(model.OrientationLeft)
	if o := settings.GetOrientation(); o != model.OrientationLeft {
		t.Errorf("Expected orientation left, got %s", o)
	}
}

func TestButtonWidths(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Zero means automatic
	if settings.GetMinimumButtonWidth() != 0 || settings.GetMaximumButtonWidth() != 0 {
		t.Error("Button widths should default to automatic")
	}

	settings.SetMinimumButtonWidth(60)
	settings.SetMaximumButtonWidth(120)
	o := settings.Options()
	if o.MinimumButtonWidth != 60 || o.MaximumButtonWidth != 120 {
		t.Errorf("Expected widths 60/120, got %v/%v", o.MinimumButtonWidth, o.MaximumButtonWidth)
	}

	// Test boundary values
	settings.SetMinimumButtonWidth(-5)
	if settings.GetMinimumButtonWidth() != 0 {
		t.Error("Minimum width should be clamped to 0")
	}
	settings.SetMaximumButtonWidth(1000)
	if settings.GetMaximumButtonWidth() != MaxButtonWidthLimit {
		t.Errorf("Maximum width should be clamped to %v", MaxButtonWidthLimit)
	}
}

func TestButtonSpacingAndPadding(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.GetButtonSpacing() != model.DefaultButtonSpacing {
		t.Errorf("Expected default spacing %v, got %v", model.DefaultButtonSpacing, settings.GetButtonSpacing())
	}
	if settings.GetButtonPadding() != model.DefaultButtonPadding {
		t.Errorf("Expected default padding %v, got %v", model.DefaultButtonPadding, settings.GetButtonPadding())
	}

	settings.SetButtonSpacing(12)
	settings.SetButtonPadding(100)
	if settings.GetButtonSpacing() != 12 {
		t.Errorf("Expected spacing 12, got %v", settings.GetButtonSpacing())
	}
	if settings.GetButtonPadding() != MaxButtonGapLimit {
		t.Errorf("Padding should be clamped to %v", MaxButtonGapLimit)
	}
}

func TestVerticalAlignment(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.GetVerticalAlignment() != model.AlignCenter {
		t.Error("Expected center alignment by default")
	}
	settings.SetVerticalAlignment(model.AlignCenterFirstBaseline)
	if settings.Options().ButtonVerticalAlignment != model.AlignCenterFirstBaseline {
		t.Error("Expected first baseline alignment")
	}
}

func TestBackgroundColor(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.Options().BackgroundColor != nil {
		t.Error("Background color should default to the palette")
	}

	if err := settings.SetBackgroundColor("not-a-color"); err == nil {
		t.Error("Expected invalid color to be rejected")
	}

	if err := settings.SetBackgroundColor("#ff0000"); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	want := color.NRGBA{R: 255, A: 255}
	if got := settings.Options().BackgroundColor; got != want {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestApply(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	settings.Apply(Layout{
		Options: model.Options{
			TransitionStyle:    model.TransitionBorder,
			MinimumButtonWidth: 70,
			ButtonPadding:      4,
		},
		Orientation: model.OrientationLeft,
	})

	o := settings.Options()
	if o.TransitionStyle != model.TransitionBorder {
		t.Errorf("Expected border transition, got %s", o.TransitionStyle)
	}
	if o.ExpansionStyle != nil {
		t.Error("Layout without expansion should store none")
	}
	if o.MinimumButtonWidth != 70 || o.ButtonPadding != 4 {
		t.Errorf("Unexpected widths %+v", o)
	}
	if settings.GetOrientation() != model.OrientationLeft {
		t.Error("Expected left orientation")
	}
}
