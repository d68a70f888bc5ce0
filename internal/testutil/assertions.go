package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// AssertVar checks that the run finished with name bound to want.
func AssertVar(t *testing.T, result *HarnessResult, name, want string) {
	t.Helper()
	got, ok := result.Vars[name]
	require.True(t, ok, "expected variable %q to be set", name)
	require.Equal(t, want, got, "variable %q", name)
}

// AssertUnset checks that the run finished without name bound.
func AssertUnset(t *testing.T, result *HarnessResult, name string) {
	t.Helper()
	_, ok := result.Vars[name]
	require.False(t, ok, "expected variable %q to be unset", name)
}
