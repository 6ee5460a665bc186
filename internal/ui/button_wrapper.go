package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/swipeactions/internal/model"
)

// fader is content that can fade itself
type fader interface {
	SetAlpha(alpha float32)
}

// ButtonWrapper holds one action view. It paints the action background over
// its whole frame and pins the content to the edge facing the cell content.
type ButtonWrapper struct {
	widget.BaseWidget

	action       *model.Action
	content      fyne.CanvasObject
	orientation  model.Orientation
	contentWidth float32

	fill   color.Color
	effect color.Color

	scale float32
	alpha float32
}

// NewButtonWrapper wraps content for action. contentWidth is the width the
// content is laid out at; the wrapper itself may be wider.
func NewButtonWrapper(action *model.Action, content fyne.CanvasObject, orientation model.Orientation, contentWidth float32, palette Palette) *ButtonWrapper {
	w := &ButtonWrapper{
		action:       action,
		content:      content,
		orientation:  orientation,
		contentWidth: max(0, contentWidth),
		scale:        1,
		alpha:        1,
	}
	if fill, ok := palette.Background(action); ok {
		w.fill = fill
	}
	if action.BackgroundEffect != nil {
		w.effect = action.BackgroundEffect.Tint
		if w.effect == nil {
			w.effect = palette.EffectTint
		}
	}
	w.ExtendBaseWidget(w)
	return w
}

// Action returns the wrapped action
func (w *ButtonWrapper) Action() *model.Action {
	return w.action
}

// Content returns the wrapped view
func (w *ButtonWrapper) Content() fyne.CanvasObject {
	return w.content
}

// ContentWidth returns the natural width of the content
func (w *ButtonWrapper) ContentWidth() float32 {
	return w.contentWidth
}

// BackgroundColor returns the resolved fill, nil when transparent
func (w *ButtonWrapper) BackgroundColor() color.Color {
	return w.fill
}

// Scale returns the content scale
func (w *ButtonWrapper) Scale() float32 {
	return w.scale
}

// SetScale shrinks or grows the content around its centre
func (w *ButtonWrapper) SetScale(scale float32) {
	scale = max(0, scale)
	if w.scale == scale {
		return
	}
	w.scale = scale
	w.Refresh()
}

// Alpha returns the content opacity
func (w *ButtonWrapper) Alpha() float32 {
	return w.alpha
}

// SetAlpha fades the content. The background is left alone.
func (w *ButtonWrapper) SetAlpha(alpha float32) {
	alpha = max(0, min(1, alpha))
	if w.alpha == alpha {
		return
	}
	w.alpha = alpha
	if f, ok := w.content.(fader); ok {
		f.SetAlpha(alpha)
	} else if alpha < hiddenAlpha {
		w.content.Hide()
	} else {
		w.content.Show()
	}
	w.Refresh()
}

// contentFrame returns the content position and size for a wrapper of size
func (w *ButtonWrapper) contentFrame(size fyne.Size) (fyne.Position, fyne.Size) {
	x := float32(0)
	if w.orientation == model.OrientationLeft {
		x = size.Width - w.contentWidth
	}
	scaled := fyne.NewSize(w.contentWidth*w.scale, size.Height*w.scale)
	return fyne.NewPos(x+(w.contentWidth-scaled.Width)/2, (size.Height-scaled.Height)/2), scaled
}

// CreateRenderer creates the widget renderer
func (w *ButtonWrapper) CreateRenderer() fyne.WidgetRenderer {
	r := &buttonWrapperRenderer{wrapper: w}
	if w.effect != nil {
		r.effect = canvas.NewRectangle(w.effect)
	}
	if w.fill != nil {
		r.background = canvas.NewRectangle(w.fill)
	}
	return r
}

// buttonWrapperRenderer renders the wrapper
type buttonWrapperRenderer struct {
	wrapper    *ButtonWrapper
	effect     *canvas.Rectangle
	background *canvas.Rectangle
}

// Layout fills the background and pins the content
func (r *buttonWrapperRenderer) Layout(size fyne.Size) {
	if r.effect != nil {
		r.effect.Resize(size)
	}
	if r.background != nil {
		r.background.Resize(size)
	}
	pos, contentSize := r.wrapper.contentFrame(size)
	r.wrapper.content.Move(pos)
	r.wrapper.content.Resize(contentSize)
}

// MinSize returns the minimum size
func (r *buttonWrapperRenderer) MinSize() fyne.Size {
	return fyne.NewSize(r.wrapper.contentWidth, r.wrapper.content.MinSize().Height)
}

// Refresh re-lays out the content for the current scale
func (r *buttonWrapperRenderer) Refresh() {
	r.Layout(r.wrapper.Size())
	canvas.Refresh(r.wrapper.content)
}

// Objects returns the drawn objects, background first
func (r *buttonWrapperRenderer) Objects() []fyne.CanvasObject {
	objects := make([]fyne.CanvasObject, 0, 3)
	if r.effect != nil {
		objects = append(objects, r.effect)
	}
	if r.background != nil {
		objects = append(objects, r.background)
	}
	return append(objects, r.wrapper.content)
}

// Destroy cleans up the renderer
func (r *buttonWrapperRenderer) Destroy() {}
