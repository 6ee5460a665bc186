package transition

import "fyne.io/fyne/v2"

// Reveal keeps fully sized buttons fixed against the anchored cell edge and
// uncovers them as the content slides away; the buttons nearest the edge
// show first.
type Reveal struct{}

// ContainerDidChangeVisibleWidth shifts the stack so its far end stays on the anchored edge
func (Reveal) ContainerDidChangeVisibleWidth(c Container, ctx Context) {
	c.SetContentOffset((ctx.TotalWidth() - ctx.containerWidth()) * ctx.scale())
}

// Layout places view index at its rest position in the fully open stack
func (Reveal) Layout(view fyne.CanvasObject, index int, ctx Context) {
	place(view, ctx.widthBefore(index), ctx)
}

// VisibleWidths fills the views from the anchored edge inwards
func (Reveal) VisibleWidths(ctx Context) []float32 {
	widths := make([]float32, ctx.NumberOfActions)
	for i := range widths {
		widths[i] = clamp(ctx.VisibleWidth-ctx.widthAfter(i), ctx.width(i))
	}
	return widths
}
