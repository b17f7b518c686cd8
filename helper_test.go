package tranche

import (
	"math"
	"testing"
	"time"

	"github.com/etnz/tranche/date"
)

// tolerance for floating comparisons over full pools.
const epsilon = 1e-6

// USD is a helper for tests to create dollar money from const.
func USD(v float64) Money { return M(v, "USD") }

// almost fails the test when got is not within tol of want.
func almost(t *testing.T, name string, got, want, tol float64) {
	t.Helper()
	if math.Abs(got-want) > tol {
		t.Errorf("%s = %v, want %v (±%v)", name, got, want, tol)
	}
}

// standardPool generates the default 100-loan pool used across tests.
func standardPool(t *testing.T) Pool {
	t.Helper()
	g := NewGenerator(DefaultSeed)
	return NewPool(g.Generate(), date.New(2026, time.January, 1))
}
