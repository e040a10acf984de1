// Package test holds helpers shared by the test suites.
package test

import (
	"path/filepath"
	"testing"

	"github.com/google/uuid"
)

// TmpFile returns the path for a fresh sqlite database file, unique per
// call so that tests never share state. The file is cleaned up with the
// test's temporary directory.
func TmpFile(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), uuid.NewString()+".db")
}
