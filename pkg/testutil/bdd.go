package testutil

import "testing"

// Given, When, and Then wrap t.Run so multi-step audit flow tests read
// as scenarios without pulling in a BDD framework. Steps share state
// through the enclosing test's closure and run in declaration order.
func Given(t *testing.T, desc string, fn func(t *testing.T)) {
	t.Helper()
	t.Run("Given "+desc, fn)
}

func When(t *testing.T, desc string, fn func(t *testing.T)) {
	t.Helper()
	t.Run("When "+desc, fn)
}

func Then(t *testing.T, desc string, fn func(t *testing.T)) {
	t.Helper()
	t.Run("Then "+desc, fn)
}
