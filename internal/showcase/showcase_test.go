package showcase

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelection(t *testing.T) {
	var got []ModelInfo
	s := &Selection{OnSelect: func(m ModelInfo) { got = append(got, m) }}

	_, ok := s.Current()
	assert.False(t, ok)

	s.Select(Model)
	info, ok := s.Current()
	assert.True(t, ok)
	assert.Equal(t, Model, info)
	assert.Equal(t, "Model 1: Parametric Design 2024", info.Title())

	s.Dismiss()
	info, ok = s.Current()
	assert.False(t, ok)
	assert.Equal(t, ModelInfo{}, info)
	assert.Equal(t, []ModelInfo{Model}, got)
}

func TestSelectionWithoutCallback(t *testing.T) {
	var s Selection
	s.Select(Model)
	s.Select(Model)
	_, ok := s.Current()
	assert.True(t, ok)
}

func TestFigureBounds(t *testing.T) {
	center, size := FigureBounds()
	assert.InDelta(t, -0.025, center[1], 1e-6)
	assert.InDelta(t, 1.85, size[1], 1e-6)
	assert.InDelta(t, 0.4, size[0], 1e-6)
	assert.Equal(t, size[0], size[2])
	assert.Zero(t, center[0])
}

func TestLegRotation(t *testing.T) {
	for _, p := range Figure {
		switch p.Name {
		case "left-leg":
			assert.Equal(t, float32(0.2), p.LegRotation(0.2, -0.2))
		case "right-leg":
			assert.Equal(t, float32(-0.2), p.LegRotation(0.2, -0.2))
		default:
			assert.Zero(t, p.LegRotation(0.2, -0.2))
		}
	}
}
