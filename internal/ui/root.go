package ui

import (
	"fmt"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/charmbracelet/log"

	"github.com/ytget/swipeactions/internal/config"
	"github.com/ytget/swipeactions/internal/logging"
	"github.com/ytget/swipeactions/internal/model"
	"github.com/ytget/swipeactions/internal/platform"
)

// Demo action colors
var (
	flagColor = color.NRGBA{R: 255, G: 149, B: 0, A: 255}
	readColor = color.NRGBA{R: 0, G: 122, B: 255, A: 255}
)

// Message is one row of the demo inbox
type Message struct {
	ID      int
	From    string
	Subject string
	Unread  bool
	Flagged bool
}

// SampleMessages returns the inbox the demo starts with
func SampleMessages() []*Message {
	return []*Message{
		{ID: 1, From: "Ada", Subject: "Quarterly numbers", Unread: true},
		{ID: 2, From: "Grace", Subject: "Compiler meeting moved to Friday"},
		{ID: 3, From: "Linus", Subject: "Re: patch review", Unread: true},
		{ID: 4, From: "Barbara", Subject: "Lunch?"},
		{ID: 5, From: "Ken", Subject: "Build is green again", Flagged: true},
	}
}

// DemoUI is the demo window: an inbox whose rows reveal swipe actions
type DemoUI struct {
	window   fyne.Window
	settings *config.Settings
	logger   *log.Logger
	safeArea platform.SafeAreaProvider
	feedback platform.Feedback
	palette  Palette
	viewOpts []ViewOption

	messages    []*Message
	rows        []*SwipeRow
	list        *fyne.Container
	statusLabel *widget.Label
}

// NewDemoUI creates and initializes the demo UI. Extra view options are
// passed to every actions view after the defaults.
func NewDemoUI(window fyne.Window, settings *config.Settings, logger *log.Logger, safeArea platform.SafeAreaProvider, feedback platform.Feedback, opts ...ViewOption) *DemoUI {
	if logger == nil {
		logger = logging.Nop()
	}
	if feedback == nil {
		feedback = platform.NopFeedback{}
	}
	ui := &DemoUI{
		window:   window,
		settings: settings,
		logger:   logger,
		safeArea: safeArea,
		feedback: feedback,
		palette:  DefaultPalette(),
		viewOpts: opts,
		messages: SampleMessages(),
	}

	window.SetTitle("Swipe Actions")
	ui.setupUI()
	return ui
}

// setupUI creates and arranges all UI components
func (ui *DemoUI) setupUI() {
	ui.createMenu()

	settingsBtn := widget.NewButtonWithIcon("", theme.SettingsIcon(), ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance
	resetBtn := widget.NewButtonWithIcon("Reset", theme.ViewRefreshIcon(), ui.onReset)
	resetBtn.Importance = widget.LowImportance

	ui.statusLabel = widget.NewLabel("Swipe a message")
	ui.statusLabel.Truncation = fyne.TextTruncateEllipsis

	topPanel := container.NewBorder(nil, nil, settingsBtn, resetBtn, ui.statusLabel)

	ui.list = container.NewVBox()
	ui.Rebuild()

	ui.window.SetContent(container.NewBorder(topPanel, nil, nil, nil, container.NewVScroll(ui.list)))
}

// createMenu builds the main menu with a transition submenu
func (ui *DemoUI) createMenu() {
	settingsItem := fyne.NewMenuItem("Settings", ui.onShowSettings)
	resetItem := fyne.NewMenuItem("Reset Messages", ui.onReset)

	transitionMenu := fyne.NewMenu("Transition")
	current := ui.settings.GetTransitionStyle()
	for _, style := range ui.settings.GetTransitionStyleOptions() {
		style := style
		item := fyne.NewMenuItem(style.String(), func() {
			ui.onTransitionChange(style)
		})
		// Mark current transition
		item.Checked = style == current
		transitionMenu.Items = append(transitionMenu.Items, item)
	}

	ui.window.SetMainMenu(fyne.NewMainMenu(
		fyne.NewMenu("File", settingsItem, resetItem),
		transitionMenu,
	))
}

func (ui *DemoUI) onTransitionChange(style model.TransitionStyle) {
	ui.settings.SetTransitionStyle(style)
	ui.Rebuild()
	// Recreate menu to update checkmarks
	ui.createMenu()
}

func (ui *DemoUI) onShowSettings() {
	sd := NewSettingsDialog(ui.settings, ui.window)
	sd.OnSaved = func() {
		ui.Rebuild()
		ui.createMenu()
	}
	sd.Show()
}

func (ui *DemoUI) onReset() {
	ui.messages = SampleMessages()
	ui.Rebuild()
	ui.setStatus("Messages restored")
}

// Rows returns the current rows, one per message
func (ui *DemoUI) Rows() []*SwipeRow {
	return ui.rows
}

// Messages returns the messages still in the inbox
func (ui *DemoUI) Messages() []*Message {
	return ui.messages
}

// Status returns the status line text
func (ui *DemoUI) Status() string {
	return ui.statusLabel.Text
}

// Rebuild recreates every row from the stored settings
func (ui *DemoUI) Rebuild() {
	options := ui.settings.Options()
	primary := ui.settings.GetOrientation()
	secondary := model.OrientationLeft
	if primary == model.OrientationLeft {
		secondary = model.OrientationRight
	}

	opts := append([]ViewOption{
		WithLogger(ui.logger),
		WithFeedback(ui.feedback),
		WithPalette(ui.palette),
	}, ui.viewOpts...)

	ui.rows = make([]*SwipeRow, 0, len(ui.messages))
	objects := make([]fyne.CanvasObject, 0, 2*len(ui.messages))
	for _, msg := range ui.messages {
		row := NewSwipeRow(ui.messageContent(msg), options, ui.safeArea, opts...)
		row.SetActions(primary, ui.primaryActions(msg))
		row.SetActions(secondary, ui.secondaryActions(msg))
		msg := msg
		row.OnDeleted = func() {
			ui.removeMessage(msg.ID)
		}
		ui.rows = append(ui.rows, row)
		objects = append(objects, row, widget.NewSeparator())
	}
	ui.list.Objects = objects
	ui.list.Refresh()

	ui.logger.Debug("rows rebuilt", "rows", len(ui.rows),
		"transition", options.TransitionStyle, "orientation", primary)
}

func (ui *DemoUI) messageContent(msg *Message) fyne.CanvasObject {
	from := widget.NewLabelWithStyle(msg.From, fyne.TextAlignLeading, fyne.TextStyle{Bold: msg.Unread})
	subject := widget.NewLabel(msg.Subject)
	subject.Truncation = fyne.TextTruncateEllipsis
	var marker fyne.CanvasObject = widget.NewLabel("")
	if msg.Flagged {
		marker = widget.NewIcon(theme.ConfirmIcon())
	}
	return container.NewBorder(nil, nil, nil, marker, container.NewVBox(from, subject))
}

// primaryActions puts delete first so it is the expandable action
func (ui *DemoUI) primaryActions(msg *Message) []*model.Action {
	remove := model.NewAction(model.ActionStyleDestructive, "Delete", func(*model.Action) {
		ui.setStatus(fmt.Sprintf("Deleted %q", msg.Subject))
	})
	remove.Image = theme.DeleteIcon()

	flagTitle := "Flag"
	if msg.Flagged {
		flagTitle = "Unflag"
	}
	flag := model.NewAction(model.ActionStyleDefault, flagTitle, func(*model.Action) {
		msg.Flagged = !msg.Flagged
		ui.setStatus(fmt.Sprintf("%s %q", flagTitle, msg.Subject))
		ui.Rebuild()
	})
	flag.Image = theme.ConfirmIcon()
	flag.BackgroundColor = flagColor

	more := model.NewAction(model.ActionStyleDefault, "More", func(*model.Action) {
		ui.setStatus(fmt.Sprintf("More for %q", msg.Subject))
	})
	more.Image = theme.MoreHorizontalIcon()

	return []*model.Action{remove, flag, more}
}

func (ui *DemoUI) secondaryActions(msg *Message) []*model.Action {
	title := "Read"
	if !msg.Unread {
		title = "Unread"
	}
	read := model.NewAction(model.ActionStyleDefault, title, func(*model.Action) {
		msg.Unread = !msg.Unread
		ui.setStatus(fmt.Sprintf("Marked %q as %s", msg.Subject, title))
		ui.Rebuild()
	})
	read.Image = theme.MailComposeIcon()
	read.BackgroundColor = readColor
	return []*model.Action{read}
}

func (ui *DemoUI) removeMessage(id int) {
	for i, msg := range ui.messages {
		if msg.ID == id {
			ui.messages = append(ui.messages[:i], ui.messages[i+1:]...)
			break
		}
	}
	ui.logger.Info("message removed", "id", id, "remaining", len(ui.messages))
	ui.Rebuild()
}

func (ui *DemoUI) setStatus(text string) {
	ui.statusLabel.SetText(text)
}
