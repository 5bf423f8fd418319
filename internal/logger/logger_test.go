package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "runway.txt")
	l := NewAt(path)
	l.Log("hello")
	l.Logf("preset %s seed %d", "balanced", 42)

	lines := l.Lines()
	require.Len(t, lines, 2)
	assert.Regexp(t, `^\[\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}\] hello$`, lines[0])
	assert.True(t, strings.HasSuffix(lines[1], "preset balanced seed 42"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, lines[0]+"\n"+lines[1]+"\n", string(data))
}

func TestDefaultPath(t *testing.T) {
	t.Chdir(t.TempDir())
	New().Log("x")
	_, err := os.Stat(LogFilePath)
	assert.NoError(t, err)
}

func TestHistoryBounded(t *testing.T) {
	l := NewAt("")
	for i := 0; i < maxLines+10; i++ {
		l.Logf("%d", i)
	}
	lines := l.Lines()
	assert.Len(t, lines, maxLines)
	assert.True(t, strings.HasSuffix(lines[0], "] 10"))
}

func TestLinesIsCopy(t *testing.T) {
	l := NewAt("")
	l.Log("a")
	lines := l.Lines()
	lines[0] = "changed"
	assert.NotEqual(t, "changed", l.Lines()[0])
}
