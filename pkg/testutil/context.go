// Package testutil holds small helpers shared by tests.
package testutil

import (
	"context"
	"testing"
	"time"
)

// Context returns a context that is cancelled when the test finishes, with a
// deadline well inside the default test timeout.
func Context(t *testing.T) context.Context {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	t.Cleanup(cancel)
	return ctx
}
