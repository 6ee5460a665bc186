package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpansionTarget_Offset(t *testing.T) {
	assert.Equal(t, float32(150), ExpansionTarget{Kind: TargetPercentage, Value: 0.5}.Offset(300))
	assert.Equal(t, float32(260), ExpansionTarget{Kind: TargetEdgeInset, Value: 40}.Offset(300))
	assert.Zero(t, ExpansionTarget{Kind: TargetEdgeInset, Value: 400}.Offset(300))
}

func TestExpansionStyle_ShouldExpand(t *testing.T) {
	style := ExpansionSelection

	tests := map[string]struct {
		visible  float32
		expected bool
	}{
		"not fully revealed":     {visible: 100, expected: false},
		"revealed below target":  {visible: 140, expected: false},
		"past target":            {visible: 151, expected: true},
		"exactly preferred size": {visible: 120, expected: false},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.expected, style.ShouldExpand(tt.visible, 120, 300))
		})
	}
}

func TestExpansionStyle_ShouldExpandNil(t *testing.T) {
	var style *ExpansionStyle
	assert.False(t, style.ShouldExpand(1000, 10, 100))
}

func TestExpansionStyleByName(t *testing.T) {
	for _, name := range []string{"selection", "destructive", "fill"} {
		style, ok := ExpansionStyleByName(name)
		require.True(t, ok, name)
		assert.Equal(t, name, style.Name)
	}

	style, _ := ExpansionStyleByName("selection")
	style.ElasticOverscroll = false
	assert.True(t, ExpansionSelection.ElasticOverscroll, "presets must not be shared")

	_, ok := ExpansionStyleByName("nope")
	assert.False(t, ok)
}
