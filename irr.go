package tranche

import (
	"errors"
	"fmt"
	"math"
)

// ErrNoSolution reports that a cash-flow series has no internal rate of
// return within the searched rate domain. Callers should surface this
// explicitly (e.g. "N/A") rather than render a zero rate.
var ErrNoSolution = errors.New("irr: no real solution found")

// Search domain and iteration caps for the solver. The domain bound
// guarantees termination of the bisection fallback.
const (
	irrMaxIter   = 100
	irrRateFloor = -0.99
	irrRateCeil  = 10.0
)

// IRR returns the periodic rate r at which the net present value of the
// signed series [-investment, flows[0], ..., flows[n-1]] is zero, with
// flows[t] discounted by (1+r)^(t+1).
//
// Newton-Raphson with the analytic derivative is tried first; if it
// leaves the domain or fails to converge, a bisection over
// [irrRateFloor, irrRateCeil] takes over. ErrNoSolution is returned
// when no sign change exists in the domain.
func IRR(investment float64, flows []float64) (float64, error) {
	if investment <= 0 {
		return 0, fmt.Errorf("irr: investment must be positive, got %g", investment)
	}
	if len(flows) == 0 {
		return 0, errors.New("irr: empty cash-flow series")
	}

	npv := func(r float64) (v, deriv float64) {
		v = -investment
		for t, cf := range flows {
			p := float64(t + 1)
			v += cf / math.Pow(1+r, p)
			deriv -= p * cf / math.Pow(1+r, p+1)
		}
		return v, deriv
	}
	// Absolute NPV tolerance, scaled to the investment size.
	tol := 1e-9 * math.Max(1, investment)

	r := 0.05
	for i := 0; i < irrMaxIter; i++ {
		v, d := npv(r)
		if math.Abs(v) < tol {
			return r, nil
		}
		if d == 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			break
		}
		next := r - v/d
		if next <= irrRateFloor || next >= irrRateCeil || math.IsNaN(next) {
			break
		}
		r = next
	}

	return bisectIRR(npv, tol)
}

// bisectIRR finds a zero of npv over the bounded rate domain. It
// requires a sign change between the domain edges.
func bisectIRR(npv func(float64) (float64, float64), tol float64) (float64, error) {
	lo, hi := irrRateFloor, irrRateCeil
	flo, _ := npv(lo)
	fhi, _ := npv(hi)
	if flo == 0 {
		return lo, nil
	}
	if fhi == 0 {
		return hi, nil
	}
	if (flo > 0) == (fhi > 0) {
		return 0, ErrNoSolution
	}

	for i := 0; i < 200; i++ {
		mid := (lo + hi) / 2
		fmid, _ := npv(mid)
		if math.Abs(fmid) < tol || hi-lo < 1e-12 {
			return mid, nil
		}
		if (fmid > 0) == (flo > 0) {
			lo, flo = mid, fmid
		} else {
			hi = mid
		}
	}
	return 0, ErrNoSolution
}

// Annualize converts a monthly rate to its compounded annual
// equivalent.
func Annualize(monthly float64) float64 {
	return math.Pow(1+monthly, 12) - 1
}
