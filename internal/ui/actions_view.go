package ui

import (
	"fmt"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/charmbracelet/log"

	"github.com/ytget/swipeactions/internal/animator"
	"github.com/ytget/swipeactions/internal/expansion"
	"github.com/ytget/swipeactions/internal/logging"
	"github.com/ytget/swipeactions/internal/model"
	"github.com/ytget/swipeactions/internal/platform"
	"github.com/ytget/swipeactions/internal/transition"
)

// ViewOption configures the collaborators of an ActionsView
type ViewOption func(*ActionsView)

// WithLogger sets the logger; nil keeps the discarding default
func WithLogger(l *log.Logger) ViewOption {
	return func(a *ActionsView) {
		if l != nil {
			a.logger = l
		}
	}
}

// WithFeedback sets the haptic feedback device
func WithFeedback(f platform.Feedback) ViewOption {
	return func(a *ActionsView) {
		if f != nil {
			a.feedback = f
		}
	}
}

// WithQueue sets the queue deferred notifications are posted to
func WithQueue(q platform.Queue) ViewOption {
	return func(a *ActionsView) {
		if q != nil {
			a.queue = q
		}
	}
}

// WithAnimator sets the factory for expansion animators
func WithAnimator(f animator.Factory) ViewOption {
	return func(a *ActionsView) {
		if f != nil {
			a.animate = f
		}
	}
}

// WithPalette sets the default colors
func WithPalette(p Palette) ViewOption {
	return func(a *ActionsView) {
		a.palette = p
	}
}

// frame is a wrapper position and size
type frame struct {
	pos  fyne.Position
	size fyne.Size
}

// ActionsView lays out the action buttons behind a swipeable cell. The host
// drag controller pushes the visible width in; the view recomputes every
// action frame through its transition layout and animates the last action
// when it expands.
//
// Actions are kept in display order, the reverse of the order they were
// given in: index 0 sits next to the cell content, the last index is the
// expandable action against the cell edge, drawn in front of the others.
type ActionsView struct {
	widget.BaseWidget

	logger   *log.Logger
	feedback platform.Feedback
	queue    platform.Queue
	animate  animator.Factory
	palette  Palette

	orientation model.Orientation
	options     model.Options
	safeArea    platform.SafeAreaProvider
	edgeInsets  model.EdgeInsets
	maxSize     fyne.Size
	layout      transition.Layout
	delegate    expansion.Delegate

	actions  []*model.Action
	views    []fyne.CanvasObject
	wrappers []*ButtonWrapper
	widths   []float32

	ctx           transition.Context
	visibleWidth  float32
	visibleWidths []float32
	contentOffset float32
	expanded      bool
	animator      animator.Animator

	onActionSelected   func(action *model.Action)
	onExpansionChanged func(expanding fyne.CanvasObject, expanded bool, others []fyne.CanvasObject)

	background *canvas.Rectangle
}

// NewActionsView builds the view for actions. The safe-area provider may be
// nil, meaning no margin.
func NewActionsView(edgeInsets model.EdgeInsets, maxSize fyne.Size, safeArea platform.SafeAreaProvider, options model.Options, orientation model.Orientation, actions []*model.Action, opts ...ViewOption) *ActionsView {
	options = options.WithDefaults()
	a := &ActionsView{
		logger:      logging.Nop(),
		feedback:    platform.NopFeedback{},
		queue:       platform.NewFyneQueue(),
		animate:     animator.NewFyne,
		palette:     DefaultPalette(),
		orientation: orientation,
		options:     options,
		safeArea:    safeArea,
		edgeInsets:  edgeInsets,
		maxSize:     maxSize,
		layout:      transition.New(options.TransitionStyle),
	}
	for _, opt := range opts {
		opt(a)
	}

	a.actions = make([]*model.Action, 0, len(actions))
	for i := len(actions) - 1; i >= 0; i-- {
		if actions[i] != nil {
			a.actions = append(a.actions, actions[i])
		}
	}
	a.buildViews()
	a.delegate = a.resolveDelegate()

	a.feedback.Prepare()
	a.background = canvas.NewRectangle(a.palette.Container(options))
	a.ctx = a.newContext()
	a.visibleWidths = a.layout.VisibleWidths(a.ctx)

	a.ExtendBaseWidget(a)
	a.logger.Debug("actions view built",
		"actions", len(a.actions), "transition", options.TransitionStyle, "orientation", orientation)
	return a
}

// buildViews creates one view and wrapper per action. Generated buttons
// share one width: the largest preferred width, capped at the maximum and
// never below the minimum. Custom views keep their own minimum width and are
// covered by a tap catcher so taps on them select the action.
func (a *ActionsView) buildViews() {
	n := len(a.actions)
	a.views = make([]fyne.CanvasObject, n)
	a.wrappers = make([]*ButtonWrapper, n)
	a.widths = make([]float32, n)

	minimum, maximum := a.options.ButtonWidthBounds(a.maxSize, n)
	imageHeight := a.maximumImageHeight()

	shared := minimum
	generated := make([]bool, n)
	contents := make([]fyne.CanvasObject, n)
	for i, action := range a.actions {
		index := i
		if action.CustomView != nil {
			a.views[i] = action.CustomView
			contents[i] = container.NewStack(action.CustomView, newTapCatcher(func() { a.actionTapped(index) }))
			continue
		}
		b := NewActionButton(action)
		b.Spacing = a.options.ButtonSpacing
		b.Padding = a.options.ButtonPadding
		b.VerticalAlignment = a.options.ButtonVerticalAlignment
		b.MaximumImageHeight = imageHeight
		b.ShouldHighlight = action.HasBackgroundColor()
		b.Foreground = a.palette.Foreground
		if fill, ok := a.palette.Background(action); ok {
			b.HighlightColor = a.palette.Highlight(fill)
		}
		b.OnTapped = func() { a.actionTapped(index) }

		a.views[i] = b
		contents[i] = b
		generated[i] = true
		shared = max(shared, b.PreferredWidth(maximum))
	}

	for i, view := range a.views {
		width := shared
		if !generated[i] {
			if w := view.MinSize().Width; w > 0 {
				width = w
			}
		}
		a.widths[i] = width
		a.wrappers[i] = NewButtonWrapper(a.actions[i], contents[i], a.orientation, width, a.palette)
	}
}

// maximumImageHeight returns the image height shared by all generated buttons
func (a *ActionsView) maximumImageHeight() float32 {
	for _, action := range a.actions {
		if action.Image != nil {
			return ButtonImageSize
		}
	}
	return 0
}

// resolveDelegate picks the expansion delegate. The default effect runs on
// the view's own animator factory.
func (a *ActionsView) resolveDelegate() expansion.Delegate {
	var override expansion.Delegate
	if a.options.ExpansionDelegate != nil {
		d, ok := a.options.ExpansionDelegate.(expansion.Delegate)
		if ok {
			override = d
		} else {
			a.logger.Warn("ignoring expansion delegate", "type", fmt.Sprintf("%T", a.options.ExpansionDelegate))
		}
	}
	d := expansion.Resolve(override, a.ExpandableAction())
	if s, ok := d.(*expansion.ScaleAndAlpha); ok && override == nil {
		s.Animate = a.animate
	}
	return d
}

// SetOnActionSelected sets the callback fired once per completed tap
func (a *ActionsView) SetOnActionSelected(fn func(action *model.Action)) {
	a.onActionSelected = fn
}

// SetOnExpansionChanged sets the callback fired synchronously by SetExpanded
func (a *ActionsView) SetOnExpansionChanged(fn func(expanding fyne.CanvasObject, expanded bool, others []fyne.CanvasObject)) {
	a.onExpansionChanged = fn
}

// Orientation returns the edge the actions are anchored to
func (a *ActionsView) Orientation() model.Orientation {
	return a.orientation
}

// Options returns the options with defaults applied
func (a *ActionsView) Options() model.Options {
	return a.options
}

// Actions returns the actions in display order
func (a *ActionsView) Actions() []*model.Action {
	return append([]*model.Action(nil), a.actions...)
}

// Views returns the action views (custom views or generated buttons) in display order
func (a *ActionsView) Views() []fyne.CanvasObject {
	return append([]fyne.CanvasObject(nil), a.views...)
}

// Wrappers returns the wrappers in display order
func (a *ActionsView) Wrappers() []*ButtonWrapper {
	return append([]*ButtonWrapper(nil), a.wrappers...)
}

// ButtonWidths returns the natural width of each view in display order
func (a *ActionsView) ButtonWidths() []float32 {
	return append([]float32(nil), a.widths...)
}

// ExpandableAction returns the action that expands, or nil when the options
// configure no expansion style
func (a *ActionsView) ExpandableAction() *model.Action {
	if a.options.ExpansionStyle == nil || len(a.actions) == 0 {
		return nil
	}
	return a.actions[len(a.actions)-1]
}

// ExpansionDelegate returns the resolved delegate, nil when there is none
func (a *ActionsView) ExpansionDelegate() expansion.Delegate {
	return a.delegate
}

// safeAreaMargin returns the inset on the anchored edge
func (a *ActionsView) safeAreaMargin() float32 {
	if a.safeArea == nil {
		return 0
	}
	return a.safeArea.SafeAreaInsets().Margin(a.orientation)
}

// VisibleWidth returns the visible width after the safe-area margin
func (a *ActionsView) VisibleWidth() float32 {
	return a.visibleWidth
}

// VisibleWidths returns how much of each view is visible, in display order
func (a *ActionsView) VisibleWidths() []float32 {
	return append([]float32(nil), a.visibleWidths...)
}

// SetVisibleWidth moves the actions to show w points of the cell. The
// safe-area margin is taken off first and the result is clamped at 0. Layout
// happens before returning; transition observers are notified on a later
// turn of the event loop.
func (a *ActionsView) SetVisibleWidth(w float32) {
	a.visibleWidth = max(0, w-a.safeAreaMargin())

	old := a.layout.VisibleWidths(a.ctx)
	a.ctx = a.newContext()
	a.layout.ContainerDidChangeVisibleWidth(a, a.ctx)
	a.layoutViews()

	updated := a.layout.VisibleWidths(a.ctx)
	a.visibleWidths = updated
	a.queue.Post(func() {
		a.notifyVisibleWidthChanged(old, updated)
	})
}

// PreferredWidth returns the width that shows every action fully
func (a *ActionsView) PreferredWidth() float32 {
	var total float32
	for _, w := range a.widths {
		total += w
	}
	return total + a.safeAreaMargin()
}

// ContentSize returns the size the host should give the view. Past the
// preferred width an elastic expansion style damps the growth.
func (a *ActionsView) ContentSize() fyne.Size {
	height := a.height()
	style := a.options.ExpansionStyle
	preferred := a.PreferredWidth()
	if style == nil || !style.ElasticOverscroll || a.visibleWidth < preferred {
		return fyne.NewSize(a.visibleWidth, height)
	}
	overscroll := max(0, a.visibleWidth-preferred)
	return fyne.NewSize(preferred+overscroll*model.ElasticOverscrollRatio, height)
}

// height is the laid out height, or the maximum size before the first layout
func (a *ActionsView) height() float32 {
	if h := a.Size().Height; h > 0 {
		return h
	}
	return a.maxSize.Height
}

// SetContentOffset implements transition.Container
func (a *ActionsView) SetContentOffset(x float32) {
	a.contentOffset = x
}

// ContentOffset returns the offset subtracted from every view's x
func (a *ActionsView) ContentOffset() float32 {
	return a.contentOffset
}

func (a *ActionsView) newContext() transition.Context {
	return transition.NewContext(a.orientation, a.widths, a.visibleWidth, a.ContentSize())
}

// Expanded reports whether the expandable action fills the view
func (a *ActionsView) Expanded() bool {
	return a.expanded
}

// SetExpanded expands or collapses the last action. Setting the current
// state does nothing. A running animation is completed before the new one
// starts, so there is only ever one in flight.
func (a *ActionsView) SetExpanded(expanded, feedback bool) {
	if a.expanded == expanded {
		return
	}
	a.expanded = expanded

	if feedback {
		a.feedback.ImpactOccurred()
		a.feedback.Prepare()
	}

	timing := expansion.TimingOrDefault(a.delegate, a.frontToBack(), expanded)

	if a.animator != nil && a.animator.IsRunning() {
		a.animator.Stop(true)
	}
	a.animator = a.animate(timing.Duration, animator.CriticalDamping)
	a.animator.AddAnimations(a.animateLayout(a.currentFrames(), expanded))
	a.animator.Start(timing.Delay)

	a.logger.Debug("expansion changed", "expanded", expanded, "duration", timing.Duration, "delay", timing.Delay)
	a.notifyExpansion(expanded)
}

// frontToBack returns the wrappers starting with the expandable one
func (a *ActionsView) frontToBack() []fyne.CanvasObject {
	views := make([]fyne.CanvasObject, 0, len(a.wrappers))
	for i := len(a.wrappers) - 1; i >= 0; i-- {
		views = append(views, a.wrappers[i])
	}
	return views
}

func (a *ActionsView) notifyExpansion(expanded bool) {
	views := a.frontToBack()
	if len(views) == 0 {
		return
	}
	expanding, others := views[0], views[1:]
	if a.delegate != nil {
		a.delegate.ActionButtonDidChange(expanding, expanded, others)
	}
	if a.onExpansionChanged != nil {
		a.onExpansionChanged(expanding, expanded, others)
	}
}

func (a *ActionsView) notifyVisibleWidthChanged(old, updated []float32) {
	for i, before := range old {
		if i >= len(updated) || i >= len(a.actions) || before == updated[i] {
			continue
		}
		action := a.actions[i]
		if action.Transition == nil {
			continue
		}
		action.Transition.DidTransition(model.TransitioningContext{
			ActionID:          action.ID,
			View:              a.views[i],
			WrapperView:       a.wrappers[i],
			OldPercentVisible: fraction(before, a.widths[i]),
			NewPercentVisible: fraction(updated[i], a.widths[i]),
		})
	}
}

func fraction(visible, full float32) float32 {
	if full <= 0 {
		return 0
	}
	return visible / full
}

// layoutViews places every wrapper for the current state. While an
// expansion animation runs its ticks own the frames.
func (a *ActionsView) layoutViews() {
	if a.animator != nil && a.animator.IsRunning() {
		return
	}
	a.applyFrames(a.targetFrames(a.expanded))
}

// targetFrames runs the transition layout and returns where each wrapper
// belongs. When expanded the frontmost wrapper is pinned to the leading edge
// on every pass, without interpolation.
func (a *ActionsView) targetFrames(expanded bool) []frame {
	frames := make([]frame, len(a.wrappers))
	for i, w := range a.wrappers {
		a.layout.Layout(w, i, a.ctx)
		pos, size := w.Position(), w.Size()
		pos.X -= a.contentOffset
		pos.Y = a.edgeInsets.Top
		size.Height = max(0, size.Height-a.edgeInsets.Top-a.edgeInsets.Bottom)
		frames[i] = frame{pos: pos, size: size}
	}
	if expanded && len(frames) > 0 {
		frames[len(frames)-1].pos.X = 0
	}
	return frames
}

func (a *ActionsView) currentFrames() []frame {
	frames := make([]frame, len(a.wrappers))
	for i, w := range a.wrappers {
		frames[i] = frame{pos: w.Position(), size: w.Size()}
	}
	return frames
}

func (a *ActionsView) applyFrames(frames []frame) {
	for i, f := range frames {
		a.wrappers[i].Move(f.pos)
		a.wrappers[i].Resize(f.size)
	}
}

// animateLayout returns an animation moving the wrappers from their frames
// at start to the frames of the expanded state. Targets are recomputed each
// tick so a drag during the animation is followed.
func (a *ActionsView) animateLayout(from []frame, expanded bool) func(float32) {
	return func(f float32) {
		to := a.targetFrames(expanded)
		if f < 1 && len(from) == len(to) {
			for i := range to {
				to[i] = lerpFrame(from[i], to[i], f)
			}
		}
		a.applyFrames(to)
	}
}

func lerpFrame(from, to frame, f float32) frame {
	lerp := func(x, y float32) float32 { return x + (y-x)*f }
	return frame{
		pos:  fyne.NewPos(lerp(from.pos.X, to.pos.X), lerp(from.pos.Y, to.pos.Y)),
		size: fyne.NewSize(lerp(from.size.Width, to.size.Width), lerp(from.size.Height, to.size.Height)),
	}
}

// ActionAt returns the action whose wrapper is under pos, searching from the
// front. Points outside the content size and views with nothing visible
// never match.
func (a *ActionsView) ActionAt(pos fyne.Position) *model.Action {
	size := a.ContentSize()
	if pos.X < 0 || pos.X > size.Width || pos.Y < 0 || pos.Y > size.Height {
		return nil
	}
	for i := len(a.wrappers) - 1; i >= 0; i-- {
		if !a.isVisible(i) {
			continue
		}
		p, s := a.wrappers[i].Position(), a.wrappers[i].Size()
		if pos.X >= p.X && pos.X < p.X+s.Width && pos.Y >= p.Y && pos.Y < p.Y+s.Height {
			return a.actions[i]
		}
	}
	return nil
}

func (a *ActionsView) isVisible(index int) bool {
	if a.expanded && index == len(a.wrappers)-1 {
		return true
	}
	return index < len(a.visibleWidths) && a.visibleWidths[index] > 0
}

// Tapped resolves taps that land on wrapper backgrounds. Generated buttons
// and the catchers over custom views receive their own taps.
func (a *ActionsView) Tapped(ev *fyne.PointEvent) {
	action := a.ActionAt(ev.Position)
	if action == nil {
		a.logger.Debug("tap outside actions", "x", ev.Position.X, "y", ev.Position.Y)
		return
	}
	a.selectAction(action)
}

// actionTapped handles a direct hit on a generated button or custom view
func (a *ActionsView) actionTapped(index int) {
	if index < 0 || index >= len(a.actions) || !a.isVisible(index) {
		a.logger.Debug("tap on hidden action", "index", index)
		return
	}
	a.selectAction(a.actions[index])
}

func (a *ActionsView) selectAction(action *model.Action) {
	a.logger.Debug("action selected", "id", action.ID, "title", action.Title)
	if a.onActionSelected != nil {
		a.onActionSelected(action)
	}
}

// Scrolled makes the view a fyne.Scrollable, the type drivers clip children
// to, so wrappers reaching past the view are cut at its bounds. Scroll
// events are ignored.
func (a *ActionsView) Scrolled(*fyne.ScrollEvent) {}

// CreateDeletionMask returns a white mask twice as wide as the view, used by
// hosts to wipe the cell away after a destructive action.
func (a *ActionsView) CreateDeletionMask() fyne.CanvasObject {
	size := a.Size()
	if size.IsZero() {
		size = a.ContentSize()
	}
	mask := canvas.NewRectangle(color.White)
	mask.Move(fyne.NewPos(min(0, a.Position().X), 0))
	mask.Resize(fyne.NewSize(size.Width*2, size.Height))
	return mask
}

// UnmarshalJSON always panics: an actions view is only ever built in code
func (a *ActionsView) UnmarshalJSON([]byte) error {
	panic("ui: ActionsView cannot be decoded, build it with NewActionsView")
}

// CreateRenderer creates the widget renderer
func (a *ActionsView) CreateRenderer() fyne.WidgetRenderer {
	objects := make([]fyne.CanvasObject, 0, len(a.wrappers)+1)
	objects = append(objects, a.background)
	for _, w := range a.wrappers {
		objects = append(objects, w)
	}
	return &actionsViewRenderer{view: a, objects: objects}
}

// actionsViewRenderer renders the background and the wrappers, the
// expandable wrapper last so it is drawn in front
type actionsViewRenderer struct {
	view    *ActionsView
	objects []fyne.CanvasObject
}

// Layout refreshes the context for the new size and places the wrappers
func (r *actionsViewRenderer) Layout(size fyne.Size) {
	a := r.view
	a.background.Resize(size)
	a.ctx = a.newContext()
	a.layout.ContainerDidChangeVisibleWidth(a, a.ctx)
	a.layoutViews()
}

// MinSize returns the minimum size
func (r *actionsViewRenderer) MinSize() fyne.Size {
	return fyne.NewSize(0, 0)
}

// Refresh redraws the background
func (r *actionsViewRenderer) Refresh() {
	r.view.background.FillColor = r.view.palette.Container(r.view.options)
	r.view.background.Refresh()
}

// Objects returns the drawn objects
func (r *actionsViewRenderer) Objects() []fyne.CanvasObject {
	return r.objects
}

// Destroy cleans up the renderer
func (r *actionsViewRenderer) Destroy() {}

// tapCatcher lies over a custom action view and takes its taps, so the
// action is selected even when the view handles taps itself
type tapCatcher struct {
	widget.BaseWidget
	onTapped func()
}

func newTapCatcher(onTapped func()) *tapCatcher {
	c := &tapCatcher{onTapped: onTapped}
	c.ExtendBaseWidget(c)
	return c
}

// Tapped forwards the tap
func (c *tapCatcher) Tapped(*fyne.PointEvent) {
	if c.onTapped != nil {
		c.onTapped()
	}
}

// CreateRenderer creates a transparent renderer
func (c *tapCatcher) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(canvas.NewRectangle(color.Transparent))
}
