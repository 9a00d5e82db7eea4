package geo

import "testing"

func TestDetectRegion(t *testing.T) {
	d := NewRegionDetector(DefaultRegions())
	cases := []struct {
		locations []string
		want      string
	}{
		{[]string{"Bangalore"}, "India"},
		{nil, GlobalName},
		{[]string{}, GlobalName},
		{[]string{"Atlantis"}, GlobalName},
		{[]string{"Paris ground station"}, "Europe"},
		{[]string{"Tokyo"}, GlobalName},
		{[]string{"Japan"}, "Asia-Pacific"},
		{[]string{"Austin, Texas"}, "Americas"},
		// Case-sensitive containment.
		{[]string{"bangalore"}, GlobalName},
	}
	for _, tc := range cases {
		if got := d.Detect(tc.locations); got.Name != tc.want {
			t.Errorf("Detect(%v) = %s, want %s", tc.locations, got.Name, tc.want)
		}
	}
}

func TestDetectRegionOrderWins(t *testing.T) {
	d := NewRegionDetector(DefaultRegions())
	// Europe comes before Americas in the registry even though Texas is listed first.
	if got := d.Detect([]string{"Texas", "London"}); got.Name != "Europe" {
		t.Fatalf("got %s, want Europe", got.Name)
	}
	if got := d.Detect([]string{"Singapore", "Mumbai"}); got.Name != "India" {
		t.Fatalf("got %s, want India", got.Name)
	}
}

func TestGlobalRegion(t *testing.T) {
	g := NewRegionDetector(nil).Detect([]string{"Bangalore"})
	if g.Name != GlobalName {
		t.Fatalf("got %s", g.Name)
	}
	if g.Bounds != (Bounds{{-90, -180}, {90, 180}}) || g.Center != (Coordinates{0, 0}) {
		t.Fatalf("unexpected global region %+v", g)
	}
}

func TestRegionDetectorIsImmutable(t *testing.T) {
	regions := DefaultRegions()
	d := NewRegionDetector(regions)
	regions[0].MatchTokens[0] = "Nowhere"
	regions[0].Name = "Changed"

	got := d.Detect([]string{"India"})
	if got.Name != "India" {
		t.Fatalf("detector affected by caller mutation: %s", got.Name)
	}
	got.MatchTokens[0] = "Nowhere"
	if d.Detect([]string{"India"}).Name != "India" {
		t.Fatalf("detector affected by result mutation")
	}
	if n := len(d.Regions()); n != 4 {
		t.Fatalf("got %d regions", n)
	}
}

func TestBoundsContains(t *testing.T) {
	india := DefaultRegions()[0]
	if !india.Bounds.Contains(india.Center) {
		t.Fatalf("centre outside bounds")
	}
	if india.Bounds.Contains(Coordinates{50, 10}) {
		t.Fatalf("Europe centre inside India bounds")
	}
}
