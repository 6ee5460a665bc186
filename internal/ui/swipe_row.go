package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/charmbracelet/log"

	"github.com/ytget/swipeactions/internal/animator"
	"github.com/ytget/swipeactions/internal/logging"
	"github.com/ytget/swipeactions/internal/model"
	"github.com/ytget/swipeactions/internal/platform"
)

// SwipeRow is a list row that reveals actions when its content is dragged
// sideways. Dragging left reveals the right actions, dragging right the left
// ones. The row is the drag controller: it feeds the visible width to the
// actions view and decides on release whether to open, close or perform the
// expanded action.
type SwipeRow struct {
	widget.BaseWidget

	content  fyne.CanvasObject
	options  model.Options
	safeArea platform.SafeAreaProvider
	viewOpts []ViewOption

	left  *ActionsView
	right *ActionsView

	tracker *SwipeTracker
	offset  float32
	snap    animator.Animator

	mask    fyne.CanvasObject
	deleted bool

	// OnActionPerformed is called after an action handler ran
	OnActionPerformed func(action *model.Action)
	// OnDeleted is called once a destructive fill has wiped the row
	OnDeleted func()
}

// NewSwipeRow creates a row around content. The view options are passed to
// every actions view the row builds.
func NewSwipeRow(content fyne.CanvasObject, options model.Options, safeArea platform.SafeAreaProvider, opts ...ViewOption) *SwipeRow {
	r := &SwipeRow{
		content:  content,
		options:  options,
		safeArea: safeArea,
		viewOpts: opts,
		tracker:  NewSwipeTracker(),
	}
	r.ExtendBaseWidget(r)
	return r
}

// SetActions installs the actions revealed on the orientation edge. Empty
// actions disable swiping towards that edge.
func (r *SwipeRow) SetActions(orientation model.Orientation, actions []*model.Action) {
	var view *ActionsView
	if len(actions) > 0 {
		view = NewActionsView(model.EdgeInsets{}, fyne.NewSize(r.cellWidth(), RowHeight), r.safeArea, r.options, orientation, actions, r.viewOpts...)
		view.SetOnActionSelected(func(action *model.Action) {
			r.perform(view, action)
		})
	}
	if orientation == model.OrientationLeft {
		r.left = view
	} else {
		r.right = view
	}
	r.setOffset(0, false)
}

// ActionsView returns the view for the orientation edge, nil when it has no actions
func (r *SwipeRow) ActionsView(orientation model.Orientation) *ActionsView {
	if orientation == model.OrientationLeft {
		return r.left
	}
	return r.right
}

// Offset returns the horizontal drag offset of the content
func (r *SwipeRow) Offset() float32 {
	return r.offset
}

// Deleted reports whether a destructive action has removed the row
func (r *SwipeRow) Deleted() bool {
	return r.deleted
}

// Mask returns the deletion mask, nil until the row is deleted
func (r *SwipeRow) Mask() fyne.CanvasObject {
	return r.mask
}

func (r *SwipeRow) logger() *log.Logger {
	if v := r.anyView(); v != nil {
		return v.logger
	}
	return logging.Nop()
}

func (r *SwipeRow) anyView() *ActionsView {
	if r.right != nil {
		return r.right
	}
	return r.left
}

// active returns the view revealed by the current offset and the other one
func (r *SwipeRow) active() (*ActionsView, *ActionsView) {
	switch {
	case r.offset < 0:
		return r.right, r.left
	case r.offset > 0:
		return r.left, r.right
	default:
		return nil, nil
	}
}

func (r *SwipeRow) cellWidth() float32 {
	if w := r.Size().Width; w > 0 {
		return w
	}
	return RowMinWidth
}

// Dragged moves the content with a horizontal drag
func (r *SwipeRow) Dragged(ev *fyne.DragEvent) {
	if r.deleted {
		return
	}
	dx, ok := r.tracker.Track(ev.Dragged)
	if !ok {
		return
	}
	if r.snap != nil && r.snap.IsRunning() {
		r.snap.Stop(false)
	}
	r.setOffset(r.clampOffset(r.offset+dx), true)
}

// DragEnd settles the row: it performs the expanded action, snaps the
// actions open when more than half of them are showing, or closes.
func (r *SwipeRow) DragEnd() {
	horizontal := r.tracker.Horizontal()
	r.tracker.Reset()
	if !horizontal || r.deleted {
		return
	}

	view, _ := r.active()
	if view == nil {
		r.snapTo(0, nil)
		return
	}
	if view.Expanded() {
		r.perform(view, view.ExpandableAction())
		return
	}
	preferred := view.PreferredWidth()
	if abs32(r.offset) >= preferred*OpenThresholdRatio {
		r.snapTo(r.edge(view)*preferred, nil)
		return
	}
	r.snapTo(0, nil)
}

// Tapped closes open actions
func (r *SwipeRow) Tapped(*fyne.PointEvent) {
	if r.offset != 0 && !r.deleted {
		r.Close()
	}
}

// Open reveals every action on the orientation edge
func (r *SwipeRow) Open(orientation model.Orientation) {
	view := r.ActionsView(orientation)
	if view == nil || r.deleted {
		return
	}
	r.snapTo(r.edge(view)*view.PreferredWidth(), nil)
}

// Close hides the actions
func (r *SwipeRow) Close() {
	r.snapTo(0, nil)
}

// edge returns the offset sign that reveals view
func (r *SwipeRow) edge(view *ActionsView) float32 {
	if view.Orientation() == model.OrientationLeft {
		return 1
	}
	return -1
}

func (r *SwipeRow) clampOffset(x float32) float32 {
	if (x < 0 && r.right == nil) || (x > 0 && r.left == nil) {
		return 0
	}
	w := r.cellWidth()
	return max(-w, min(w, x))
}

// setOffset pushes the offset into the actions views. feedback is set for
// user drags so crossing the expansion threshold is felt.
func (r *SwipeRow) setOffset(x float32, feedback bool) {
	r.offset = x
	view, other := r.active()
	if view == nil {
		r.reset(r.left)
		r.reset(r.right)
	} else {
		r.reset(other)
		visible := abs32(x)
		view.SetVisibleWidth(visible)
		if style := view.Options().ExpansionStyle; style != nil {
			view.SetExpanded(style.ShouldExpand(visible, view.PreferredWidth(), r.cellWidth()), feedback)
		}
	}
	r.Refresh()
}

func (r *SwipeRow) reset(view *ActionsView) {
	if view == nil {
		return
	}
	if view.VisibleWidth() > 0 {
		view.SetVisibleWidth(0)
	}
	view.SetExpanded(false, false)
}

// snapTo animates the offset to target. completion runs on the next turn
// of the event loop after the animation ends.
func (r *SwipeRow) snapTo(target float32, completion func()) {
	view := r.anyView()
	if view == nil {
		r.setOffset(0, false)
		return
	}
	if r.snap != nil && r.snap.IsRunning() {
		r.snap.Stop(false)
	}

	from := r.offset
	done := false
	r.snap = view.animate(SnapDuration, animator.CriticalDamping)
	r.snap.AddAnimations(func(f float32) {
		r.setOffset(from+(target-from)*f, false)
		if f >= 1 && !done {
			done = true
			if completion != nil {
				view.queue.Post(completion)
			}
		}
	})
	r.snap.Start(0)
}

// perform runs action. The expandable action of a filling style first
// fills the row; destructive ones then delete it, others close it.
func (r *SwipeRow) perform(view *ActionsView, action *model.Action) {
	if action == nil || r.deleted {
		return
	}
	style := view.Options().ExpansionStyle
	fill := style != nil && style.FillOnTrigger && action == view.ExpandableAction()
	r.logger().Info("perform action", "id", action.ID, "title", action.Title, "fill", fill)

	if !fill {
		r.invoke(action)
		r.Close()
		return
	}
	r.snapTo(r.edge(view)*r.cellWidth(), func() {
		if action.Style.IsDestructive() {
			r.delete(view, action)
			return
		}
		r.invoke(action)
		r.Close()
	})
}

func (r *SwipeRow) invoke(action *model.Action) {
	if action.Handler != nil {
		action.Handler(action)
	}
	if r.OnActionPerformed != nil {
		r.OnActionPerformed(action)
	}
}

func (r *SwipeRow) delete(view *ActionsView, action *model.Action) {
	r.deleted = true
	r.mask = view.CreateDeletionMask()
	r.mask.Move(r.mask.Position().Add(view.Position()))
	r.invoke(action)
	r.logger().Debug("row deleted", "action", action.ID)
	r.Refresh()
	if r.OnDeleted != nil {
		r.OnDeleted()
	}
}

// CreateRenderer creates the widget renderer
func (r *SwipeRow) CreateRenderer() fyne.WidgetRenderer {
	return &swipeRowRenderer{
		row:        r,
		background: canvas.NewRectangle(theme.Color(theme.ColorNameBackground)),
	}
}

// swipeRowRenderer draws the actions under the content
type swipeRowRenderer struct {
	row        *SwipeRow
	background *canvas.Rectangle
}

// Layout pins each actions view to its edge and shifts the content by the
// width the actions take
func (sr *swipeRowRenderer) Layout(size fyne.Size) {
	r := sr.row
	var shift float32
	if view, _ := sr.row.active(); view != nil {
		shift = r.edge(view) * view.ContentSize().Width
	}
	if r.left != nil {
		w := r.left.ContentSize().Width
		r.left.Move(fyne.NewPos(0, 0))
		r.left.Resize(fyne.NewSize(w, size.Height))
		setVisible(r.left, w > 0)
	}
	if r.right != nil {
		w := r.right.ContentSize().Width
		r.right.Move(fyne.NewPos(size.Width-w, 0))
		r.right.Resize(fyne.NewSize(w, size.Height))
		setVisible(r.right, w > 0)
	}
	sr.background.Move(fyne.NewPos(shift, 0))
	sr.background.Resize(size)
	r.content.Move(fyne.NewPos(shift, 0))
	r.content.Resize(size)
}

func setVisible(o fyne.CanvasObject, visible bool) {
	if visible {
		o.Show()
	} else {
		o.Hide()
	}
}

// MinSize returns the minimum size
func (sr *swipeRowRenderer) MinSize() fyne.Size {
	m := sr.row.content.MinSize()
	return fyne.NewSize(m.Width, max(m.Height, RowHeight))
}

// Refresh re-lays out for the current offset
func (sr *swipeRowRenderer) Refresh() {
	sr.background.FillColor = theme.Color(theme.ColorNameBackground)
	if sr.row.deleted {
		sr.background.FillColor = color.Transparent
	}
	sr.background.Refresh()
	sr.Layout(sr.row.Size())
}

// Objects returns the drawn objects, content above the actions
func (sr *swipeRowRenderer) Objects() []fyne.CanvasObject {
	r := sr.row
	objects := make([]fyne.CanvasObject, 0, 5)
	if r.left != nil {
		objects = append(objects, r.left)
	}
	if r.right != nil {
		objects = append(objects, r.right)
	}
	objects = append(objects, sr.background, r.content)
	if r.mask != nil {
		objects = append(objects, r.mask)
	}
	return objects
}

// Destroy cleans up the renderer
func (sr *swipeRowRenderer) Destroy() {}
