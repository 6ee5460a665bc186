package ui

import (
	"image/color"
	"math"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/swipeactions/internal/model"
)

// ActionButton is the button generated for an action without a custom view.
// It draws the action image above its title and reports taps to OnTapped.
type ActionButton struct {
	widget.BaseWidget

	action *model.Action

	Spacing            float32
	Padding            float32
	VerticalAlignment  model.VerticalAlignment
	MaximumImageHeight float32
	ShouldHighlight    bool
	Foreground         color.Color
	HighlightColor     color.Color

	OnTapped func()

	alpha       float32
	highlighted bool
}

// NewActionButton creates a button for action
func NewActionButton(action *model.Action) *ActionButton {
	b := &ActionButton{
		action:            action,
		Spacing:           model.DefaultButtonSpacing,
		Padding:           model.DefaultButtonPadding,
		VerticalAlignment: model.AlignCenter,
		Foreground:        color.White,
		HighlightColor:    withAlpha(color.Black, HighlightAlpha),
		alpha:             1,
	}
	b.ExtendBaseWidget(b)
	return b
}

// Action returns the action the button triggers
func (b *ActionButton) Action() *model.Action {
	return b.action
}

// PreferredWidth returns the width the title and image need, plus padding on
// both sides, capped at maximum. A maximum <= 0 means uncapped.
func (b *ActionButton) PreferredWidth(maximum float32) float32 {
	limit := maximum
	if limit <= 0 {
		limit = math.MaxFloat32
	}
	var textWidth float32
	if b.action.Title != "" {
		textWidth = fyne.MeasureText(b.action.Title, ButtonTitleSize, fyne.TextStyle{}).Width
	}
	var imageWidth float32
	if b.action.Image != nil {
		imageWidth = ButtonImageSize
	}
	return min(limit, max(textWidth, imageWidth)+2*b.Padding)
}

// Tapped forwards the tap to OnTapped
func (b *ActionButton) Tapped(*fyne.PointEvent) {
	b.setHighlighted(false)
	if b.OnTapped != nil {
		b.OnTapped()
	}
}

// MouseDown shows the pressed state
func (b *ActionButton) MouseDown(*desktop.MouseEvent) {
	b.setHighlighted(true)
}

// MouseUp clears the pressed state
func (b *ActionButton) MouseUp(*desktop.MouseEvent) {
	b.setHighlighted(false)
}

// Highlighted reports whether the button is drawn pressed
func (b *ActionButton) Highlighted() bool {
	return b.highlighted
}

func (b *ActionButton) setHighlighted(on bool) {
	if !b.ShouldHighlight {
		on = false
	}
	if b.highlighted == on {
		return
	}
	b.highlighted = on
	b.Refresh()
}

// Alpha returns the content opacity
func (b *ActionButton) Alpha() float32 {
	return b.alpha
}

// SetAlpha fades the title and image
func (b *ActionButton) SetAlpha(alpha float32) {
	alpha = max(0, min(1, alpha))
	if b.alpha == alpha {
		return
	}
	b.alpha = alpha
	b.Refresh()
}

// CreateRenderer creates the widget renderer
func (b *ActionButton) CreateRenderer() fyne.WidgetRenderer {
	r := &actionButtonRenderer{
		button:  b,
		overlay: canvas.NewRectangle(color.Transparent),
		title:   canvas.NewText(b.action.Title, b.Foreground),
	}
	r.title.TextSize = ButtonTitleSize
	r.title.Alignment = fyne.TextAlignCenter
	if b.action.Image != nil {
		r.icon = canvas.NewImageFromResource(b.action.Image)
		r.icon.FillMode = canvas.ImageFillContain
	}
	r.Refresh()
	return r
}

// actionButtonRenderer renders the action button
type actionButtonRenderer struct {
	button  *ActionButton
	overlay *canvas.Rectangle
	icon    *canvas.Image
	title   *canvas.Text
}

// Layout stacks the image above the title inside the padded area
func (r *actionButtonRenderer) Layout(size fyne.Size) {
	b := r.button
	r.overlay.Resize(size)
	r.overlay.Move(fyne.NewPos(0, 0))

	var titleHeight float32
	if b.action.Title != "" {
		titleHeight = r.title.MinSize().Height
	}
	imageHeight := max(b.MaximumImageHeight, 0)
	if r.icon != nil {
		imageHeight = max(imageHeight, ButtonImageSize)
	} else if b.action.Title == "" {
		imageHeight = 0
	}
	gap := float32(0)
	if imageHeight > 0 && titleHeight > 0 {
		gap = b.Spacing
	}

	innerWidth := max(0, size.Width-2*b.Padding)
	centerY := size.Height / 2

	var top float32
	switch b.VerticalAlignment {
	case model.AlignCenterFirstBaseline:
		// titles start on the centre line whatever their images
		top = centerY - imageHeight - gap
		if titleHeight == 0 {
			top = centerY - imageHeight/2
		}
	default:
		top = centerY - (imageHeight+gap+titleHeight)/2
	}

	if r.icon != nil {
		side := min(ButtonImageSize, innerWidth)
		// images sit at the bottom of the shared image area so they line up
		r.icon.Resize(fyne.NewSize(side, side))
		r.icon.Move(fyne.NewPos((size.Width-side)/2, top+imageHeight-side))
	}
	r.title.Resize(fyne.NewSize(innerWidth, titleHeight))
	r.title.Move(fyne.NewPos(b.Padding, top+imageHeight+gap))
}

// MinSize returns the minimum size
func (r *actionButtonRenderer) MinSize() fyne.Size {
	b := r.button
	height := 2 * b.Padding
	if r.icon != nil {
		height += max(b.MaximumImageHeight, ButtonImageSize)
	}
	if b.action.Title != "" {
		height += r.title.MinSize().Height
		if r.icon != nil {
			height += b.Spacing
		}
	}
	return fyne.NewSize(2*b.Padding, height)
}

// Refresh applies alpha and highlight state
func (r *actionButtonRenderer) Refresh() {
	b := r.button
	r.title.Text = b.action.Title
	r.title.Color = withAlpha(b.Foreground, b.alpha)
	if r.icon != nil {
		r.icon.Translucency = float64(1 - b.alpha)
		r.icon.Refresh()
	}
	if b.highlighted {
		r.overlay.FillColor = b.HighlightColor
	} else {
		r.overlay.FillColor = color.Transparent
	}
	r.overlay.Refresh()
	r.title.Refresh()
	r.Layout(b.Size())
}

// Objects returns the drawn objects
func (r *actionButtonRenderer) Objects() []fyne.CanvasObject {
	if r.icon != nil {
		return []fyne.CanvasObject{r.overlay, r.icon, r.title}
	}
	return []fyne.CanvasObject{r.overlay, r.title}
}

// Destroy cleans up the renderer
func (r *actionButtonRenderer) Destroy() {}
