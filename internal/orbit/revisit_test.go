package orbit

import (
	"errors"
	"testing"
)

func TestRevisitMonotonicInSatellites(t *testing.T) {
	for _, alt := range []float64{400, 550, 1200} {
		prev := 0.0
		for i, n := range []int{8, 4, 2, 1} {
			m, err := RevisitMinutes(alt, 97, n, 20)
			if err != nil {
				t.Fatalf("RevisitMinutes: %v", err)
			}
			if i > 0 && m <= prev {
				t.Fatalf("alt %v: %d sats gives %v, not above %v", alt, n, m, prev)
			}
			prev = m
		}
	}
}

func TestRevisitIgnoresInclinationAndTarget(t *testing.T) {
	a, _ := RevisitMinutes(550, 0, 3, 0)
	b, _ := RevisitMinutes(550, 97, 3, 60)
	if a != b {
		t.Fatalf("revisit changed with inclination/target: %v vs %v", a, b)
	}
}

func TestRevisitTimeFormatting(t *testing.T) {
	cases := []struct {
		alt  float64
		sats int
		want string
	}{
		{550, 1, "23.9 hours"},
		{550, 4, "6.0 hours"},
		{550, 30, "48 minutes"},
		{20000, 1, "1.5 days"},
	}
	for _, tc := range cases {
		got, err := RevisitTime(tc.alt, 45, tc.sats, 0)
		if err != nil {
			t.Fatalf("RevisitTime: %v", err)
		}
		if got != tc.want {
			t.Errorf("RevisitTime(%v, %d) = %q, want %q", tc.alt, tc.sats, got, tc.want)
		}
	}
}

func TestRevisitErrors(t *testing.T) {
	if _, err := RevisitTime(550, 45, 0, 0); !errors.Is(err, ErrInvalidSatelliteCount) {
		t.Fatalf("err = %v, want ErrInvalidSatelliteCount", err)
	}
	if _, err := RevisitTime(-8000, 45, 1, 0); !errors.Is(err, ErrInvalidAltitude) {
		t.Fatalf("err = %v, want ErrInvalidAltitude", err)
	}
}

func TestFormatRevisitBoundaries(t *testing.T) {
	if got := FormatRevisit(59); got != "59 minutes" {
		t.Fatalf("got %q", got)
	}
	if got := FormatRevisit(60); got != "1.0 hours" {
		t.Fatalf("got %q", got)
	}
	if got := FormatRevisit(24 * 60); got != "1.0 days" {
		t.Fatalf("got %q", got)
	}
}
