package ui

import (
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/swipeactions/internal/config"
	"github.com/ytget/swipeactions/internal/model"
)

// Settings dialog size
const (
	SettingsDialogWidth  = 420
	SettingsDialogHeight = 480
)

// SettingsDialog represents the layout settings dialog
type SettingsDialog struct {
	settings *config.Settings
	window   fyne.Window
	dialog   *dialog.ConfirmDialog

	// UI components
	transitionSelect  *widget.Select
	expansionSelect   *widget.Select
	orientationSelect *widget.Select
	alignmentSelect   *widget.Select
	minWidthEntry     *widget.Entry
	maxWidthEntry     *widget.Entry
	colorEntry        *widget.Entry

	// OnSaved is called after the settings were stored
	OnSaved func()
}

// NewSettingsDialog creates a new settings dialog
func NewSettingsDialog(settings *config.Settings, window fyne.Window) *SettingsDialog {
	sd := &SettingsDialog{
		settings: settings,
		window:   window,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	transitionOptions := []string{}
	for _, style := range sd.settings.GetTransitionStyleOptions() {
		transitionOptions = append(transitionOptions, string(style))
	}
	sd.transitionSelect = widget.NewSelect(transitionOptions, nil)
	sd.expansionSelect = widget.NewSelect(sd.settings.GetExpansionStyleOptions(), nil)
	sd.orientationSelect = widget.NewSelect([]string{
		model.OrientationRight.String(),
		model.OrientationLeft.String(),
	}, nil)
	sd.alignmentSelect = widget.NewSelect([]string{
		string(model.AlignCenter),
		string(model.AlignCenterFirstBaseline),
	}, nil)

	sd.minWidthEntry = widget.NewEntry()
	sd.minWidthEntry.SetPlaceHolder("auto")
	sd.minWidthEntry.Validator = validateWidth
	sd.maxWidthEntry = widget.NewEntry()
	sd.maxWidthEntry.SetPlaceHolder("auto")
	sd.maxWidthEntry.Validator = validateWidth

	sd.colorEntry = widget.NewEntry()
	sd.colorEntry.SetPlaceHolder("#e5e5ea")
	sd.colorEntry.Validator = func(s string) error {
		if s == "" {
			return nil
		}
		_, err := config.ParseColor(s)
		return err
	}

	// Create form
	form := container.NewVBox(
		widget.NewLabel("Swipe Settings"),
		widget.NewSeparator(),

		widget.NewLabel("Transition:"),
		sd.transitionSelect,

		widget.NewLabel("Expansion:"),
		sd.expansionSelect,

		widget.NewLabel("Primary Actions Edge:"),
		sd.orientationSelect,

		widget.NewSeparator(),
		widget.NewLabel("Button Settings"),
		widget.NewSeparator(),

		widget.NewLabel("Minimum Width:"),
		sd.minWidthEntry,

		widget.NewLabel("Maximum Width:"),
		sd.maxWidthEntry,

		widget.NewLabel("Vertical Alignment:"),
		sd.alignmentSelect,

		widget.NewLabel("Container Color:"),
		sd.colorEntry,
	)

	// Create dialog with buttons
	sd.dialog = dialog.NewCustomConfirm(
		"Settings",
		"Save",
		"Cancel",
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.transitionSelect.SetSelected(string(sd.settings.GetTransitionStyle()))
	sd.expansionSelect.SetSelected(sd.settings.GetExpansionStyleName())
	sd.orientationSelect.SetSelected(sd.settings.GetOrientation().String())
	sd.alignmentSelect.SetSelected(string(sd.settings.GetVerticalAlignment()))
	sd.minWidthEntry.SetText(formatWidth(sd.settings.GetMinimumButtonWidth()))
	sd.maxWidthEntry.SetText(formatWidth(sd.settings.GetMaximumButtonWidth()))
	sd.colorEntry.SetText(sd.settings.GetBackgroundColor())
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}
	sd.save()

	// Show confirmation
	dialog.ShowInformation("Settings", "Settings saved successfully!", sd.window)
}

// save stores the dialog values and notifies OnSaved
func (sd *SettingsDialog) save() {
	if sd.transitionSelect.Selected != "" {
		sd.settings.SetTransitionStyle(model.TransitionStyle(sd.transitionSelect.Selected))
	}
	if sd.expansionSelect.Selected != "" {
		sd.settings.SetExpansionStyleName(sd.expansionSelect.Selected)
	}
	if sd.orientationSelect.Selected != "" {
		sd.settings.SetOrientation(model.ParseOrientation(sd.orientationSelect.Selected))
	}
	if sd.alignmentSelect.Selected != "" {
		sd.settings.SetVerticalAlignment(model.VerticalAlignment(sd.alignmentSelect.Selected))
	}

	// Validate and save widths, empty meaning automatic
	if width, err := parseWidth(sd.minWidthEntry.Text); err == nil {
		sd.settings.SetMinimumButtonWidth(width)
	}
	if width, err := parseWidth(sd.maxWidthEntry.Text); err == nil {
		sd.settings.SetMaximumButtonWidth(width)
	}

	// Invalid colors keep the stored one
	_ = sd.settings.SetBackgroundColor(sd.colorEntry.Text)

	if sd.OnSaved != nil {
		sd.OnSaved()
	}
}

func parseWidth(s string) (float32, error) {
	if s == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(s, 32)
	if err != nil {
		return 0, err
	}
	return float32(v), nil
}

func validateWidth(s string) error {
	_, err := parseWidth(s)
	return err
}

func formatWidth(w float32) string {
	if w <= 0 {
		return ""
	}
	return strconv.FormatFloat(float64(w), 'f', -1, 32)
}
