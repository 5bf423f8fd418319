package env

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte(`# runway overrides
RUNWAY_PRESET = "gallery"
RUNWAY_SEED='7'

not-a-pair
=orphan
`), 0644))
	t.Setenv("RUNWAY_PRESET", "")
	t.Setenv("RUNWAY_SEED", "")

	require.NoError(t, Load(path))
	assert.Equal(t, "gallery", os.Getenv("RUNWAY_PRESET"))
	assert.Equal(t, "7", os.Getenv("RUNWAY_SEED"))
}

func TestLoadMissing(t *testing.T) {
	assert.NoError(t, Load(filepath.Join(t.TempDir(), ".env")))
}
