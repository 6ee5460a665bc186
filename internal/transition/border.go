package transition

import "fyne.io/fyne/v2"

// Border keeps every button at its rest position in the stack, scaled by the
// open fraction, so all buttons grow together like a border around the cell.
type Border struct{}

// ContainerDidChangeVisibleWidth is a no-op beyond resetting the offset
func (Border) ContainerDidChangeVisibleWidth(c Container, _ Context) {
	c.SetContentOffset(0)
}

// Layout places view index at its rest position scaled by the open fraction
func (Border) Layout(view fyne.CanvasObject, index int, ctx Context) {
	place(view, ctx.widthBefore(index)*openFraction(ctx), ctx)
}

// VisibleWidths gives every view the same fraction of its full width
func (Border) VisibleWidths(ctx Context) []float32 {
	ratio := openFraction(ctx)
	widths := make([]float32, ctx.NumberOfActions)
	for i := range widths {
		widths[i] = clamp(ctx.width(i)*ratio, ctx.width(i))
	}
	return widths
}

// openFraction is visible/total clamped to [0, 1]
func openFraction(ctx Context) float32 {
	total := ctx.TotalWidth()
	if total <= 0 {
		return 0
	}
	return clamp(ctx.VisibleWidth/total, 1)
}
