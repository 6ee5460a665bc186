package ui

import (
	"image/color"
	"testing"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/swipeactions/internal/animator"
	"github.com/ytget/swipeactions/internal/expansion"
	"github.com/ytget/swipeactions/internal/model"
	"github.com/ytget/swipeactions/internal/platform"
)

// fakeAnimator runs its animations only when finished or stopped with a jump
type fakeAnimator struct {
	duration   time.Duration
	animations []func(float32)
	running    bool
	stopped    bool
	jumped     bool
}

func (f *fakeAnimator) AddAnimations(fn func(float32)) { f.animations = append(f.animations, fn) }
func (f *fakeAnimator) Start(time.Duration)            { f.running = true }
func (f *fakeAnimator) IsRunning() bool                { return f.running }

func (f *fakeAnimator) Stop(jumpToEnd bool) {
	if !f.running {
		return
	}
	f.running, f.stopped, f.jumped = false, true, jumpToEnd
	if jumpToEnd {
		f.run(1)
	}
}

func (f *fakeAnimator) finish() {
	f.running = false
	f.run(1)
}

func (f *fakeAnimator) run(fraction float32) {
	for _, fn := range f.animations {
		fn(fraction)
	}
}

type fakeAnimators struct {
	created []*fakeAnimator
}

func (l *fakeAnimators) factory(d time.Duration, _ float32) animator.Animator {
	a := &fakeAnimator{duration: d}
	l.created = append(l.created, a)
	return a
}

// fixedOptions makes every generated button exactly width wide
func fixedOptions(style model.TransitionStyle, width float32) model.Options {
	return model.Options{
		TransitionStyle:    style,
		MinimumButtonWidth: width,
		MaximumButtonWidth: width,
	}
}

func titledActions(titles ...string) []*model.Action {
	actions := make([]*model.Action, len(titles))
	for i, title := range titles {
		actions[i] = model.NewAction(model.ActionStyleDefault, title, nil)
	}
	return actions
}

type viewFixture struct {
	view      *ActionsView
	queue     *platform.TaskQueue
	animators *fakeAnimators
	feedback  *platform.LogFeedback
}

func newFixture(t *testing.T, options model.Options, orientation model.Orientation, safeArea platform.SafeAreaProvider, actions []*model.Action) viewFixture {
	t.Helper()
	test.NewTempApp(t)

	f := viewFixture{
		queue:     platform.NewManualQueue(),
		animators: &fakeAnimators{},
		feedback:  platform.NewLogFeedback(nil),
	}
	f.view = NewActionsView(model.EdgeInsets{}, fyne.NewSize(400, 60), safeArea, options, orientation, actions,
		WithQueue(f.queue),
		WithAnimator(f.animators.factory),
		WithFeedback(f.feedback),
	)
	return f
}

func TestActionsView_DisplayOrder(t *testing.T) {
	actions := titledActions("archive", "flag", "delete")
	f := newFixture(t, fixedOptions(model.TransitionDrag, 60), model.OrientationRight, nil, actions)

	got := f.view.Actions()
	require.Len(t, got, 3)
	assert.Same(t, actions[2], got[0])
	assert.Same(t, actions[0], got[2])
	assert.Len(t, f.view.Views(), 3)
	assert.Len(t, f.view.Wrappers(), 3)

	assert.Nil(t, f.view.ExpandableAction(), "no expansion style")

	options := fixedOptions(model.TransitionDrag, 60)
	options.ExpansionStyle = &model.ExpansionSelection
	f = newFixture(t, options, model.OrientationRight, nil, actions)
	assert.Same(t, actions[0], f.view.ExpandableAction())
}

func TestActionsView_NegativeWidthClamps(t *testing.T) {
	f := newFixture(t, fixedOptions(model.TransitionDrag, 60), model.OrientationRight, nil, titledActions("a", "b"))

	for _, w := range []float32{-1, -50, -1000} {
		f.view.SetVisibleWidth(w)
		assert.Zero(t, f.view.VisibleWidth())
		assert.Equal(t, []float32{0, 0}, f.view.VisibleWidths())
	}
}

func TestActionsView_SafeAreaMargin(t *testing.T) {
	right := platform.StaticSafeArea{Left: 5, Right: 20}

	f := newFixture(t, fixedOptions(model.TransitionDrag, 60), model.OrientationRight, right, titledActions("a", "b", "c"))
	assert.Equal(t, float32(200), f.view.PreferredWidth())
	f.view.SetVisibleWidth(50)
	assert.Equal(t, float32(30), f.view.VisibleWidth())
	f.view.SetVisibleWidth(10)
	assert.Zero(t, f.view.VisibleWidth())

	f = newFixture(t, fixedOptions(model.TransitionDrag, 60), model.OrientationLeft, right, titledActions("a", "b", "c"))
	assert.Equal(t, float32(185), f.view.PreferredWidth())
}

func TestActionsView_PreferredWidth(t *testing.T) {
	f := newFixture(t, fixedOptions(model.TransitionReveal, 70), model.OrientationRight, nil, titledActions("a", "b"))
	assert.Equal(t, []float32{70, 70}, f.view.ButtonWidths())
	assert.Equal(t, float32(140), f.view.PreferredWidth())
}

func TestActionsView_SharedButtonWidth(t *testing.T) {
	custom := canvas.NewRectangle(color.Black)
	custom.SetMinSize(fyne.NewSize(90, 40))
	actions := titledActions("a", "b")
	actions[0].CustomView = custom

	options := model.Options{MinimumButtonWidth: 50, MaximumButtonWidth: 50}
	f := newFixture(t, options, model.OrientationRight, nil, actions)

	// display order: b (generated), a (custom)
	assert.Equal(t, []float32{50, 90}, f.view.ButtonWidths())
	assert.Same(t, custom, f.view.Views()[1])
	assert.IsType(t, &ActionButton{}, f.view.Views()[0])
}

func TestActionsView_SetExpandedIdempotent(t *testing.T) {
	options := fixedOptions(model.TransitionDrag, 60)
	options.ExpansionStyle = &model.ExpansionDestructive
	f := newFixture(t, options, model.OrientationRight, nil, titledActions("a", "b", "c"))

	notifications := 0
	f.view.SetOnExpansionChanged(func(fyne.CanvasObject, bool, []fyne.CanvasObject) { notifications++ })

	f.view.SetExpanded(true, true)
	f.view.SetExpanded(true, true)

	assert.True(t, f.view.Expanded())
	assert.Len(t, f.animators.created, 1)
	assert.Equal(t, 1, notifications)
	assert.Equal(t, 1, f.feedback.Impacts())
	// prepared once at build and once after the impact
	assert.Equal(t, 2, f.feedback.Prepared())
	assert.Equal(t, expansion.DefaultTimingParameters.Duration, f.animators.created[0].duration)
}

func TestActionsView_ExpansionNotification(t *testing.T) {
	options := fixedOptions(model.TransitionDrag, 60)
	options.ExpansionStyle = &model.ExpansionSelection
	f := newFixture(t, options, model.OrientationRight, nil, titledActions("a", "b", "c"))

	var gotExpanding fyne.CanvasObject
	var gotOthers []fyne.CanvasObject
	f.view.SetOnExpansionChanged(func(expanding fyne.CanvasObject, expanded bool, others []fyne.CanvasObject) {
		assert.True(t, expanded)
		gotExpanding, gotOthers = expanding, others
	})
	f.view.SetExpanded(true, false)

	wrappers := f.view.Wrappers()
	assert.Same(t, wrappers[2], gotExpanding)
	require.Len(t, gotOthers, 2)
	assert.Same(t, wrappers[1], gotOthers[0])
	assert.Same(t, wrappers[0], gotOthers[1])
	assert.Zero(t, f.feedback.Impacts())
}

func TestActionsView_CollapseToLatest(t *testing.T) {
	options := fixedOptions(model.TransitionDrag, 60)
	options.ExpansionStyle = &model.ExpansionDestructive
	f := newFixture(t, options, model.OrientationRight, nil, titledActions("a", "b", "c"))
	f.view.Resize(fyne.NewSize(180, 60))
	f.view.SetVisibleWidth(180)

	f.view.SetExpanded(true, false)
	f.animators.created[0].finish()

	f.view.SetExpanded(false, false)
	collapse := f.animators.created[1]
	require.True(t, collapse.IsRunning())

	f.view.SetExpanded(true, false)
	require.Len(t, f.animators.created, 3)
	assert.True(t, collapse.stopped, "running animator is stopped")
	assert.True(t, collapse.jumped, "and jumps to its end state")
	assert.False(t, collapse.IsRunning())

	latest := f.animators.created[2]
	assert.True(t, latest.IsRunning())
	latest.finish()

	assert.True(t, f.view.Expanded())
	assert.Zero(t, f.view.Wrappers()[2].Position().X)
}

func TestActionsView_ExpandedPinsFrontmost(t *testing.T) {
	options := fixedOptions(model.TransitionDrag, 60)
	options.ExpansionStyle = &model.ExpansionSelection
	test.NewTempApp(t)
	view := NewActionsView(model.EdgeInsets{}, fyne.NewSize(400, 60), nil, options, model.OrientationRight,
		titledActions("a", "b", "c"),
		WithQueue(platform.NewManualQueue()),
		WithAnimator(animator.NewImmediate),
	)

	view.SetVisibleWidth(90)
	assert.Equal(t, float32(120), view.Wrappers()[2].Position().X)

	view.SetExpanded(true, false)
	assert.Zero(t, view.Wrappers()[2].Position().X)

	// later passes keep the pin
	view.SetVisibleWidth(100)
	assert.Zero(t, view.Wrappers()[2].Position().X)
	assert.Equal(t, float32(60), view.Wrappers()[1].Position().X)

	view.SetExpanded(false, false)
	assert.Equal(t, float32(120), view.Wrappers()[2].Position().X)
}

func TestActionsView_ElasticOverscroll(t *testing.T) {
	tests := map[string]struct {
		style *model.ExpansionStyle
		want  float32
	}{
		"elastic":            {style: &model.ExpansionSelection, want: 210},
		"style without it":   {style: &model.ExpansionFill, want: 240},
		"no expansion style": {style: nil, want: 240},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			options := fixedOptions(model.TransitionDrag, 100)
			options.ExpansionStyle = tt.style
			f := newFixture(t, options, model.OrientationRight, nil, titledActions("a", "b"))
			require.Equal(t, float32(200), f.view.PreferredWidth())

			f.view.SetVisibleWidth(240)
			assert.Equal(t, tt.want, f.view.ContentSize().Width)

			f.view.SetVisibleWidth(150)
			assert.Equal(t, float32(150), f.view.ContentSize().Width)
		})
	}
}

func TestActionsView_TapScenario(t *testing.T) {
	f := newFixture(t, fixedOptions(model.TransitionDrag, 60), model.OrientationRight, nil, titledActions("a", "b", "c"))
	f.view.Resize(fyne.NewSize(90, 60))
	f.view.SetVisibleWidth(90)
	require.Equal(t, []float32{60, 30, 0}, f.view.VisibleWidths())

	var selected []*model.Action
	f.view.SetOnActionSelected(func(a *model.Action) { selected = append(selected, a) })
	actions := f.view.Actions()

	assert.Same(t, actions[0], f.view.ActionAt(fyne.NewPos(30, 30)))
	assert.Same(t, actions[1], f.view.ActionAt(fyne.NewPos(75, 30)))
	assert.Nil(t, f.view.ActionAt(fyne.NewPos(130, 30)), "third action is off screen")
	assert.Nil(t, f.view.ActionAt(fyne.NewPos(-5, 30)))

	views := f.view.Views()
	for _, v := range views {
		test.Tap(v.(*ActionButton))
	}
	require.Len(t, selected, 2)
	assert.Same(t, actions[0], selected[0])
	assert.Same(t, actions[1], selected[1])

	selected = nil
	f.view.Tapped(&fyne.PointEvent{Position: fyne.NewPos(130, 30)})
	assert.Empty(t, selected)
	f.view.Tapped(&fyne.PointEvent{Position: fyne.NewPos(75, 30)})
	assert.Len(t, selected, 1)
}

func TestActionsView_TapCustomView(t *testing.T) {
	custom := widget.NewButton("custom", nil)
	action := model.NewAction(model.ActionStyleDefault, "", nil)
	action.CustomView = custom
	f := newFixture(t, model.Options{}, model.OrientationRight, nil, []*model.Action{action})

	var selected []*model.Action
	f.view.SetOnActionSelected(func(a *model.Action) { selected = append(selected, a) })

	w := test.NewWindow(f.view)
	defer w.Close()
	w.SetPadded(false)
	w.Resize(fyne.NewSize(200, 60))
	f.view.SetVisibleWidth(200)
	assert.Same(t, custom, f.view.Views()[0])

	pos := fyne.CurrentApp().Driver().AbsolutePositionForObject(custom)
	test.TapCanvas(w.Canvas(), pos.Add(fyne.NewPos(5, 5)))
	require.Len(t, selected, 1)
	assert.Same(t, action, selected[0])
}

func TestActionsView_ClipsOverflow(t *testing.T) {
	f := newFixture(t, fixedOptions(model.TransitionDrag, 60), model.OrientationRight, nil, titledActions("a", "b", "c"))
	assert.Implements(t, (*fyne.Scrollable)(nil), f.view)

	var selected []*model.Action
	f.view.SetOnActionSelected(func(a *model.Action) { selected = append(selected, a) })

	w := test.NewWindow(container.NewWithoutLayout(f.view))
	defer w.Close()
	w.SetPadded(false)
	w.Resize(fyne.NewSize(300, 60))
	f.view.Resize(fyne.NewSize(90, 60))
	f.view.SetVisibleWidth(90)
	require.Equal(t, []float32{60, 30, 0}, f.view.VisibleWidths())

	test.TapCanvas(w.Canvas(), fyne.NewPos(100, 30))
	assert.Empty(t, selected, "second button is cut at the view edge")

	test.TapCanvas(w.Canvas(), fyne.NewPos(70, 30))
	require.Len(t, selected, 1)
	assert.Same(t, f.view.Actions()[1], selected[0])
}

func TestActionsView_TapLeftOrientation(t *testing.T) {
	f := newFixture(t, fixedOptions(model.TransitionDrag, 60), model.OrientationLeft, nil, titledActions("a", "b", "c"))
	f.view.Resize(fyne.NewSize(90, 60))
	f.view.SetVisibleWidth(90)

	actions := f.view.Actions()
	assert.Same(t, actions[0], f.view.ActionAt(fyne.NewPos(60, 30)))
	assert.Same(t, actions[1], f.view.ActionAt(fyne.NewPos(10, 30)))
}

func TestActionsView_WidthChangeNotification(t *testing.T) {
	actions := titledActions("only")
	var calls []model.TransitioningContext
	actions[0].Transition = model.TransitionDelegateFunc(func(ctx model.TransitioningContext) {
		calls = append(calls, ctx)
	})
	f := newFixture(t, fixedOptions(model.TransitionDrag, 60), model.OrientationRight, nil, actions)

	f.view.SetVisibleWidth(60)
	assert.Empty(t, calls, "observers are notified asynchronously")
	assert.Equal(t, 1, f.queue.Len())

	f.queue.Flush()
	require.Len(t, calls, 1)
	assert.Equal(t, actions[0].ID, calls[0].ActionID)
	assert.Zero(t, calls[0].OldPercentVisible)
	assert.Equal(t, float32(1), calls[0].NewPercentVisible)
	assert.Same(t, f.view.Wrappers()[0], calls[0].WrapperView)
	assert.Same(t, f.view.Views()[0], calls[0].View)

	f.queue.Flush()
	f.view.SetVisibleWidth(60)
	f.queue.Flush()
	assert.Len(t, calls, 1, "unchanged fractions are not reported")
}

func TestActionsView_RevealOffset(t *testing.T) {
	f := newFixture(t, fixedOptions(model.TransitionReveal, 60), model.OrientationRight, nil, titledActions("a", "b", "c"))
	f.view.SetVisibleWidth(90)

	assert.Equal(t, float32(90), f.view.ContentOffset())
	assert.Equal(t, []float32{0, 30, 60}, f.view.VisibleWidths())
	// the expandable view ends on the anchored edge
	assert.Equal(t, float32(30), f.view.Wrappers()[2].Position().X)

	f.view.SetVisibleWidth(180)
	assert.Zero(t, f.view.ContentOffset())
}

func TestActionsView_EdgeInsets(t *testing.T) {
	test.NewTempApp(t)
	view := NewActionsView(model.EdgeInsets{Top: 4, Bottom: 6}, fyne.NewSize(400, 60), nil,
		fixedOptions(model.TransitionBorder, 60), model.OrientationRight, titledActions("a"),
		WithQueue(platform.NewManualQueue()))

	view.SetVisibleWidth(60)
	w := view.Wrappers()[0]
	assert.Equal(t, float32(4), w.Position().Y)
	assert.Equal(t, float32(50), w.Size().Height)
}

func TestActionsView_DefaultDelegate(t *testing.T) {
	actions := titledActions("a", "b", "c")
	actions[0].NoBackground = true

	test.NewTempApp(t)
	options := fixedOptions(model.TransitionDrag, 60)
	options.ExpansionStyle = &model.ExpansionSelection
	view := NewActionsView(model.EdgeInsets{}, fyne.NewSize(400, 60), nil, options, model.OrientationRight, actions,
		WithQueue(platform.NewManualQueue()),
		WithAnimator(animator.NewImmediate),
	)
	require.IsType(t, &expansion.ScaleAndAlpha{}, view.ExpansionDelegate())

	view.SetExpanded(true, false)
	others := view.Wrappers()[:2]
	for _, w := range others {
		assert.Equal(t, float32(0.8), w.Scale())
		assert.Zero(t, w.Alpha())
	}
	view.SetExpanded(false, false)
	for _, w := range others {
		assert.Equal(t, float32(1), w.Scale())
		assert.Equal(t, float32(1), w.Alpha())
	}
}

func TestActionsView_DelegateOverride(t *testing.T) {
	override := expansion.DefaultScaleAndAlpha()
	options := fixedOptions(model.TransitionDrag, 60)
	options.ExpansionStyle = &model.ExpansionSelection
	options.ExpansionDelegate = override
	f := newFixture(t, options, model.OrientationRight, nil, titledActions("a"))
	assert.Same(t, override, f.view.ExpansionDelegate())

	options.ExpansionDelegate = "not a delegate"
	f = newFixture(t, options, model.OrientationRight, nil, titledActions("a"))
	assert.Nil(t, f.view.ExpansionDelegate(), "solid background, no usable override")
}

func TestActionsView_DeletionMask(t *testing.T) {
	f := newFixture(t, fixedOptions(model.TransitionDrag, 60), model.OrientationRight, nil, titledActions("a"))
	f.view.Resize(fyne.NewSize(120, 60))
	f.view.Move(fyne.NewPos(-40, 0))

	mask := f.view.CreateDeletionMask()
	assert.Equal(t, fyne.NewPos(-40, 0), mask.Position())
	assert.Equal(t, fyne.NewSize(240, 60), mask.Size())
	assert.Equal(t, color.White, mask.(*canvas.Rectangle).FillColor)
}

func TestActionsView_UnmarshalPanics(t *testing.T) {
	f := newFixture(t, model.Options{}, model.OrientationRight, nil, titledActions("a"))
	assert.Panics(t, func() {
		_ = f.view.UnmarshalJSON([]byte(`{}`))
	})
}

func TestActionsView_Renders(t *testing.T) {
	f := newFixture(t, fixedOptions(model.TransitionBorder, 60), model.OrientationRight, nil, titledActions("a", "b"))
	w := test.NewWindow(f.view)
	defer w.Close()
	w.Resize(fyne.NewSize(120, 60))
	f.view.SetVisibleWidth(120)

	assert.Equal(t, []float32{60, 60}, f.view.VisibleWidths())
}
