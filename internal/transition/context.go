package transition

import (
	"fyne.io/fyne/v2"

	"github.com/ytget/swipeactions/internal/model"
)

// Context is an immutable snapshot of the actions view taken after each
// visible width change. Widths are in display order: index 0 is the view
// nearest the cell content, the last index is the expandable view.
type Context struct {
	NumberOfActions int
	Orientation     model.Orientation
	Widths          []float32
	VisibleWidth    float32
	ContentSize     fyne.Size
}

// NewContext builds a context, copying widths so later edits by the caller
// cannot leak into the snapshot.
func NewContext(orientation model.Orientation, widths []float32, visibleWidth float32, contentSize fyne.Size) Context {
	w := make([]float32, len(widths))
	copy(w, widths)
	return Context{
		NumberOfActions: len(w),
		Orientation:     orientation,
		Widths:          w,
		VisibleWidth:    max(0, visibleWidth),
		ContentSize:     contentSize,
	}
}

// TotalWidth returns the sum of all view widths
func (c Context) TotalWidth() float32 {
	var total float32
	for _, w := range c.Widths {
		total += w
	}
	return total
}

// containerWidth is the width the views are laid out in
func (c Context) containerWidth() float32 {
	if c.ContentSize.Width > 0 {
		return c.ContentSize.Width
	}
	return c.VisibleWidth
}

// scale is +1 when actions sit on the right edge and -1 on the left edge
func (c Context) scale() float32 {
	if c.Orientation == model.OrientationLeft {
		return -1
	}
	return 1
}

// widthBefore returns the total width of the views in front of index,
// counted from the content side.
func (c Context) widthBefore(index int) float32 {
	var total float32
	for i := 0; i < index && i < len(c.Widths); i++ {
		total += c.Widths[i]
	}
	return total
}

// widthAfter returns the total width of the views between index and the anchored edge
func (c Context) widthAfter(index int) float32 {
	var total float32
	for i := index + 1; i < len(c.Widths); i++ {
		total += c.Widths[i]
	}
	return total
}

// width returns the width of the view at index, or 0 when out of range
func (c Context) width(index int) float32 {
	if index < 0 || index >= len(c.Widths) {
		return 0
	}
	return c.Widths[index]
}

// clamp limits v to [0, hi]
func clamp(v, hi float32) float32 {
	return max(0, min(v, hi))
}
