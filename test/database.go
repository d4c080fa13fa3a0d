package test

import (
	"path/filepath"
	"testing"
)

// TmpDB returns the path of a fresh SQLite database file. The file is
// removed when the test finishes.
func TmpDB(t *testing.T) string {
	return filepath.Join(t.TempDir(), "tracker.db")
}
