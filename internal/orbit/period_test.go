package orbit

import (
	"errors"
	"math"
	"testing"
)

func TestPeriodMinutesKepler(t *testing.T) {
	p, err := PeriodMinutes(550)
	if err != nil {
		t.Fatalf("PeriodMinutes: %v", err)
	}
	if math.Abs(p-95.6) > 0.5 {
		t.Fatalf("period = %.3f, want ~95.6", p)
	}
}

func TestPeriodMinutesIncreasesWithAltitude(t *testing.T) {
	prev := 0.0
	for _, h := range []float64{200, 550, 1200, 20200, 35786} {
		p, err := PeriodMinutes(h)
		if err != nil {
			t.Fatalf("PeriodMinutes(%v): %v", h, err)
		}
		if p <= prev {
			t.Fatalf("period at %v km = %v, not above %v", h, p, prev)
		}
		prev = p
	}
}

func TestPeriodMinutesInvalidAltitude(t *testing.T) {
	for _, h := range []float64{-EarthRadiusKm, -7000, math.NaN(), math.Inf(1)} {
		_, err := PeriodMinutes(h)
		if !errors.Is(err, ErrInvalidAltitude) {
			t.Fatalf("PeriodMinutes(%v) err = %v, want ErrInvalidAltitude", h, err)
		}
		var de *DomainError
		if !errors.As(err, &de) || de.Kind != InvalidAltitude {
			t.Fatalf("expected DomainError with InvalidAltitude, got %#v", err)
		}
	}
}

func TestPeriodMinutesBelowSurfaceIsStillPhysical(t *testing.T) {
	// Negative altitudes above -R keep a positive semi-major axis.
	if _, err := PeriodMinutes(-100); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
