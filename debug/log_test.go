package debug

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogDisabledWritesNothing(t *testing.T) {
	Disable()
	var buf bytes.Buffer
	logger.SetOutput(&buf)
	defer Disable()

	Log("out", "block %d", 1)
	assert.Empty(t, buf.String())
}

func TestLogWriterHasCategory(t *testing.T) {
	var buf bytes.Buffer
	EnableWriter(&buf)
	defer Disable()

	Log("out", "sent %d bytes", 3)
	line := buf.String()
	assert.Contains(t, line, "category=out")
	assert.Contains(t, line, "sent 3 bytes")
	assert.Contains(t, line, "level=debug")
}

func TestLogEvery(t *testing.T) {
	var buf bytes.Buffer
	EnableWriter(&buf)
	defer Disable()

	for i := 0; i < 6; i++ {
		LogEvery(3, "clock", "tick")
	}
	assert.Equal(t, 2, strings.Count(buf.String(), "tick (every 3"))
}

func TestEnableFile(t *testing.T) {
	Disable()
	path := filepath.Join(t.TempDir(), "nested", "debug.log")
	require.NoError(t, EnableFile(path))
	assert.True(t, Enabled())

	Log("config", "loaded %s", "x.json")
	Disable()
	assert.False(t, Enabled())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Debug logging started")
	assert.Contains(t, string(data), "loaded x.json")
}
