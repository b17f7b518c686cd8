package date

import (
	"testing"
	"time"
)

func TestAddMonths(t *testing.T) {
	testCases := []struct {
		name string
		from Date
		n    int
		want Date
	}{
		{"same year", New(2026, time.January, 1), 3, New(2026, time.April, 1)},
		{"year rollover", New(2026, time.November, 1), 3, New(2027, time.February, 1)},
		{"many years", New(2026, time.January, 1), 36, New(2029, time.January, 1)},
		{"zero", New(2026, time.June, 15), 0, New(2026, time.June, 15)},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.from.AddMonths(tc.n); got != tc.want {
				t.Errorf("AddMonths(%d) = %s, want %s", tc.n, got, tc.want)
			}
		})
	}
}

func TestParse(t *testing.T) {
	d, err := Parse("2026-01-31")
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if d != New(2026, time.January, 31) {
		t.Errorf("Parse() = %s", d)
	}
	if _, err := Parse("31/01/2026"); err == nil {
		t.Error("Parse() accepted a non ISO-8601 date")
	}
}

func TestString(t *testing.T) {
	if got := New(2026, time.March, 5).String(); got != "2026-03-05" {
		t.Errorf("String() = %q", got)
	}
}

func TestOrdering(t *testing.T) {
	a, b := New(2026, time.January, 1), New(2026, time.February, 1)
	if !a.Before(b) || b.Before(a) || !b.After(a) {
		t.Error("date ordering is inconsistent")
	}
}
