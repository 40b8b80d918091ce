package common

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteCrashFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "crash")
	InstallCrashHandler(dir)
	t.Cleanup(func() { crashDir = "./logs" })

	path := WriteCrashFile("boom", "main.main()\n")
	require.NotEmpty(t, path)
	assert.Equal(t, dir, filepath.Dir(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	report := string(data)
	assert.Contains(t, report, "PLACESBRIDGE CRASH REPORT")
	assert.Contains(t, report, "boom")
	assert.Contains(t, report, "main.main()")
	assert.Contains(t, report, "=== ALL GOROUTINES")
}
