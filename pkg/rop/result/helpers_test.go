package result

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// assertPanicsIs runs f and checks that it panics with an error matching target.
func assertPanicsIs(t *testing.T, target error, f func()) {
	t.Helper()

	defer func() {
		r := recover()
		require.NotNil(t, r, "expected a panic")
		err, ok := r.(error)
		require.Truef(t, ok, "panic value %v is not an error", r)
		assert.ErrorIs(t, err, target)
	}()

	f()
}

func identity[T any](v T) T { return v }
