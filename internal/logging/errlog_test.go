package logging

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorLine(t *testing.T) {
	now := time.Date(2015, time.January, 5, 13, 4, 5, 123456000, time.UTC)
	line := ErrorLine(now, `no matching column for header "MYSTERY"`)
	assert.Equal(t, `2015-01-05 13:04:05.123456 - Error message: no matching column for header "MYSTERY"`, line)
}

func TestErrorLogAppend(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "errors.log")
	l := NewErrorLog(path)

	require.NoError(t, l.Append("first"))
	require.NoError(t, l.Append("second"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "first\nsecond\n", string(data))
}

func TestErrorLogCreatesNothingUntilAppend(t *testing.T) {
	path := filepath.Join(t.TempDir(), "errors.log")
	_ = NewErrorLog(path)

	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}
