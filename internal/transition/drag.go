package transition

import "fyne.io/fyne/v2"

// Drag attaches the button stack to the cell content: the buttons slide in
// behind the content edge and the ones nearest the content show first.
type Drag struct{}

// ContainerDidChangeVisibleWidth keeps the stack against the content edge
func (Drag) ContainerDidChangeVisibleWidth(c Container, _ Context) {
	c.SetContentOffset(0)
}

// Layout places view index right after the views in front of it
func (Drag) Layout(view fyne.CanvasObject, index int, ctx Context) {
	place(view, ctx.widthBefore(index), ctx)
}

// VisibleWidths returns max(0, width - overflow) for every view
func (Drag) VisibleWidths(ctx Context) []float32 {
	widths := make([]float32, ctx.NumberOfActions)
	for i := range widths {
		widths[i] = clamp(ctx.VisibleWidth-ctx.widthBefore(i), ctx.width(i))
	}
	return widths
}
