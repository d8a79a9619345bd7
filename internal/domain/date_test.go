package domain_test

import (
	"testing"
	"time"

	"weightlog/internal/domain"
)

func TestShift(t *testing.T) {
	tests := []struct {
		name string
		from domain.Date
		n    int
		want domain.Date
	}{
		{"forward one", domain.Date{2026, time.March, 15}, 1, domain.Date{2026, time.March, 16}},
		{"back one", domain.Date{2026, time.March, 15}, -1, domain.Date{2026, time.March, 14}},
		{"month boundary", domain.Date{2026, time.January, 31}, 1, domain.Date{2026, time.February, 1}},
		{"year boundary", domain.Date{2025, time.December, 31}, 1, domain.Date{2026, time.January, 1}},
		{"leap day", domain.Date{2024, time.February, 28}, 1, domain.Date{2024, time.February, 29}},
		{"non-leap skips 29th", domain.Date{2025, time.February, 28}, 1, domain.Date{2025, time.March, 1}},
		{"back across year", domain.Date{2026, time.January, 3}, -5, domain.Date{2025, time.December, 29}},
		{"full year", domain.Date{2025, time.June, 1}, 365, domain.Date{2026, time.June, 1}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.from.Shift(tc.n); got != tc.want {
				t.Errorf("Shift(%v, %d) = %v; want %v", tc.from, tc.n, got, tc.want)
			}
		})
	}
}

func TestShiftRoundTrip(t *testing.T) {
	d := domain.Date{2026, time.February, 28}
	for _, n := range []int{0, 1, 7, 30, 365, 366, 1000, -1, -29, -400} {
		if got := d.Shift(n).Shift(-n); got != d {
			t.Errorf("Shift(Shift(%v, %d), %d) = %v; want %v", d, n, -n, got, d)
		}
	}
}

func TestCompare(t *testing.T) {
	a := domain.Date{2026, time.March, 15}
	tests := []struct {
		name  string
		other domain.Date
		want  int
	}{
		{"equal", domain.Date{2026, time.March, 15}, 0},
		{"earlier day", domain.Date{2026, time.March, 16}, -1},
		{"earlier month", domain.Date{2026, time.April, 1}, -1},
		{"later year", domain.Date{2025, time.December, 31}, 1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := a.Compare(tc.other); got != tc.want {
				t.Errorf("Compare(%v, %v) = %d; want %d", a, tc.other, got, tc.want)
			}
		})
	}
}

func TestIsFuture(t *testing.T) {
	today := domain.Today()
	if today.IsFuture() {
		t.Error("today must not be future")
	}
	if !today.Shift(1).IsFuture() {
		t.Error("tomorrow must be future")
	}
	if today.Shift(-1).IsFuture() {
		t.Error("yesterday must not be future")
	}
}

func TestParseDate(t *testing.T) {
	d, err := domain.ParseDate("2026-03-05")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := (domain.Date{2026, time.March, 5}); d != want {
		t.Errorf("got %v; want %v", d, want)
	}

	for _, bad := range []string{"", "2026-13-01", "2026-02-30", "03/05/2026", "garbage"} {
		if _, err := domain.ParseDate(bad); err == nil {
			t.Errorf("ParseDate(%q) should fail", bad)
		}
	}
}

func TestStringAndLabel(t *testing.T) {
	d := domain.Date{2026, time.March, 5}
	if got := d.String(); got != "2026-03-05" {
		t.Errorf("String() = %q; want %q", got, "2026-03-05")
	}
	if got := d.Label(); got != "03.05.26" {
		t.Errorf("Label() = %q; want %q", got, "03.05.26")
	}
}

func TestDateTextRoundTrip(t *testing.T) {
	d := domain.Date{2026, time.November, 9}
	b, err := d.MarshalText()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var back domain.Date
	if err := back.UnmarshalText(b); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if back != d {
		t.Errorf("round trip = %v; want %v", back, d)
	}
}
