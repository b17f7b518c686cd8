package tranche

import (
	"errors"
	"testing"
)

func TestStandardAllocations(t *testing.T) {
	allocs := StandardAllocations()
	if err := validateAllocations(allocs); err != nil {
		t.Fatalf("standard allocations rejected: %v", err)
	}
	want := []struct {
		class    Class
		fraction float64
	}{
		{Senior, 0.70},
		{Mezzanine, 0.20},
		{Equity, 0.10},
	}
	for i, w := range want {
		if allocs[i].Class != w.class || allocs[i].Fraction != w.fraction {
			t.Errorf("allocation %d = %+v, want %v %v", i, allocs[i], w.class, w.fraction)
		}
	}
}

func TestValidateAllocations(t *testing.T) {
	testCases := []struct {
		name    string
		allocs  []Allocation
		wantErr bool
	}{
		{"standard", StandardAllocations(), false},
		{"empty", nil, true},
		{"short", []Allocation{{Senior, 0.70}, {Mezzanine, 0.20}}, true},
		{"over", []Allocation{{Senior, 0.80}, {Mezzanine, 0.20}, {Equity, 0.10}}, true},
		{"single full", []Allocation{{Senior, 1.0}}, false},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := validateAllocations(tc.allocs)
			if tc.wantErr && !errors.Is(err, ErrBadAllocation) {
				t.Errorf("want ErrBadAllocation, got %v", err)
			}
			if !tc.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestSliceProRata(t *testing.T) {
	pool := standardPool(t)
	tranches, err := SliceProRata(pool, StandardAllocations())
	if err != nil {
		t.Fatalf("SliceProRata() failed: %v", err)
	}
	if len(tranches) != 3 {
		t.Fatalf("got %d tranches, want 3", len(tranches))
	}

	var investments, cash float64
	for _, tr := range tranches {
		if len(tr.CashFlows) != pool.Term() {
			t.Errorf("%s: series length %d, want %d", tr.Class, len(tr.CashFlows), pool.Term())
		}
		// flat distribution: every entry is the same.
		for _, cf := range tr.CashFlows {
			almost(t, "flat cash flow", cf, tr.CashFlows[0], epsilon)
		}
		investments += tr.Investment
		cash += tr.TotalCash()
	}
	almost(t, "sum of investments", investments, pool.TotalPrincipal(), 1e-4)
	almost(t, "sum of tranche cash", cash, pool.TotalCash(), 1e-4)
}

func TestSliceProRataRejectsBadAllocations(t *testing.T) {
	pool := standardPool(t)
	_, err := SliceProRata(pool, []Allocation{{Senior, 0.5}})
	if !errors.Is(err, ErrBadAllocation) {
		t.Fatalf("want ErrBadAllocation, got %v", err)
	}
}

// The flat pro-rata split gives every tranche the same IRR: allocation
// fractions cancel out of the NPV equation.
func TestProRataIRRIsIdenticalAcrossTranches(t *testing.T) {
	pool := standardPool(t)
	tranches, err := SliceProRata(pool, StandardAllocations())
	if err != nil {
		t.Fatal(err)
	}

	var rates []float64
	for _, tr := range tranches {
		r, err := IRR(tr.Investment, tr.CashFlows)
		if err != nil {
			t.Fatalf("%s: IRR failed: %v", tr.Class, err)
		}
		rates = append(rates, r)
	}
	almost(t, "senior vs mezzanine IRR", rates[0], rates[1], 1e-6)
	almost(t, "senior vs equity IRR", rates[0], rates[2], 1e-6)
}
