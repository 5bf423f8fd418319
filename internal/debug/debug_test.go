package debug

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatMem(t *testing.T) {
	assert.Equal(t, "Mem: 1.50 MiB", FormatMem(3*512*1024))
	assert.Equal(t, "Mem: 0.00 MiB", FormatMem(0))
}

func TestToggles(t *testing.T) {
	d := New()
	assert.False(t, d.ShowFPS || d.ShowMemAlloc)
	d.SetShowFPS(true)
	d.SetShowMemAlloc(true)
	assert.True(t, d.ShowFPS && d.ShowMemAlloc)
}
