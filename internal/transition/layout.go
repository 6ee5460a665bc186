// Package transition positions the action views of a swipe actions view as
// its visible width changes. Each Layout is stateless: every call derives
// frames and visible widths from the Context alone.
package transition

import (
	"fyne.io/fyne/v2"

	"github.com/ytget/swipeactions/internal/model"
)

// Container is the part of the actions view a Layout may adjust when the
// visible width changes. The content offset is subtracted from every view's
// x position after the layout pass.
type Container interface {
	SetContentOffset(x float32)
}

// Layout computes per-view frames and visible widths
type Layout interface {
	// VisibleWidths returns how much of each view is visible, in display order
	VisibleWidths(ctx Context) []float32
	// Layout moves and resizes view, the wrapper at index
	Layout(view fyne.CanvasObject, index int, ctx Context)
	// ContainerDidChangeVisibleWidth applies container level side effects
	ContainerDidChangeVisibleWidth(c Container, ctx Context)
}

// New returns the layout for style. Unknown styles fall back to drag.
func New(style model.TransitionStyle) Layout {
	switch style {
	case model.TransitionBorder:
		return Border{}
	case model.TransitionReveal:
		return Reveal{}
	default:
		return Drag{}
	}
}

// place positions a wrapper whose content starts at x (measured from the
// container's left edge for right-anchored actions). The wrapper is as wide
// as the container and extends towards the anchored edge, so the views in
// front hide the overflow of the ones behind them.
//
// For left-anchored actions the picture is mirrored: the content ends at
// width-x and the wrapper, pinned by its right edge, starts at -x.
func place(view fyne.CanvasObject, x float32, ctx Context) {
	view.Move(fyne.NewPos(x*ctx.scale(), 0))
	view.Resize(fyne.NewSize(ctx.containerWidth(), ctx.ContentSize.Height))
}
