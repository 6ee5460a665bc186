package model

// ExpansionTargetKind selects how the expansion threshold is measured
type ExpansionTargetKind int

const (
	// TargetPercentage measures the threshold as a fraction of the cell width
	TargetPercentage ExpansionTargetKind = iota
	// TargetEdgeInset measures the threshold as a distance from the opposite cell edge
	TargetEdgeInset
)

// ExpansionTarget is the point past which dragging expands the last action
type ExpansionTarget struct {
	Kind  ExpansionTargetKind
	Value float32
}

// Offset returns the visible width at which the target is reached for a cell of cellWidth
func (t ExpansionTarget) Offset(cellWidth float32) float32 {
	switch t.Kind {
	case TargetEdgeInset:
		return max(0, cellWidth-t.Value)
	default:
		return max(0, cellWidth*t.Value)
	}
}

// ExpansionStyle enables the "last action expands" behaviour
type ExpansionStyle struct {
	Name              string
	Target            ExpansionTarget
	ElasticOverscroll bool
	// FillOnTrigger keeps the expanded action filling the cell after release
	FillOnTrigger bool
}

// Expansion style presets
var (
	// ExpansionSelection expands at half the cell width and selects the action on release
	ExpansionSelection = ExpansionStyle{
		Name:              "selection",
		Target:            ExpansionTarget{Kind: TargetPercentage, Value: 0.5},
		ElasticOverscroll: true,
	}

	// ExpansionDestructive expands at half the cell width and fills the cell on release
	ExpansionDestructive = ExpansionStyle{
		Name:              "destructive",
		Target:            ExpansionTarget{Kind: TargetPercentage, Value: 0.5},
		ElasticOverscroll: true,
		FillOnTrigger:     true,
	}

	// ExpansionFill expands without elastic overscroll
	ExpansionFill = ExpansionStyle{
		Name:          "fill",
		Target:        ExpansionTarget{Kind: TargetPercentage, Value: 0.5},
		FillOnTrigger: true,
	}
)

// ExpansionStyleByName returns a copy of the preset with the given name
func ExpansionStyleByName(name string) (*ExpansionStyle, bool) {
	var style ExpansionStyle
	switch name {
	case ExpansionSelection.Name:
		style = ExpansionSelection
	case ExpansionDestructive.Name:
		style = ExpansionDestructive
	case ExpansionFill.Name:
		style = ExpansionFill
	default:
		return nil, false
	}
	return &style, true
}

// ShouldExpand reports whether a drag that reveals visibleWidth of a cell of
// cellWidth has crossed the expansion threshold. The actions must be fully
// revealed first.
func (s *ExpansionStyle) ShouldExpand(visibleWidth, preferredWidth, cellWidth float32) bool {
	if s == nil || visibleWidth <= preferredWidth {
		return false
	}
	return visibleWidth > s.Target.Offset(cellWidth)
}
