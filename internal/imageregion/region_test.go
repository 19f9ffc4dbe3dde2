package imageregion

import "testing"

func TestFilterAndSuppressDropsUndersizedRegions(t *testing.T) {
	raster := []rawRegion{
		{top: 0, bottom: 10, x0: 0, x1: 10}, // 10x10, too small
		{top: 0, bottom: 50, x0: 0, x1: 50}, // 50x50, accepted
	}
	got := filterAndSuppress(raster, nil)
	if len(got) != 1 {
		t.Fatalf("got %d regions, want 1", len(got))
	}
	if got[0].bottom != 50 {
		t.Errorf("unexpected surviving region: %+v", got[0])
	}
}

func TestFilterAndSuppressDropsVectorNearAcceptedRaster(t *testing.T) {
	raster := []rawRegion{
		{top: 100, bottom: 160, x0: 0, x1: 60}, // centre 130
	}
	vector := []rawRegion{
		{top: 105, bottom: 155, x0: 0, x1: 60, vector: true}, // centre 130, within 30pt -> suppressed
		{top: 400, bottom: 460, x0: 0, x1: 60, vector: true}, // centre 430, far away -> kept
	}
	got := filterAndSuppress(raster, vector)
	if len(got) != 2 {
		t.Fatalf("got %d regions, want 2 (1 raster + 1 surviving vector)", len(got))
	}
	foundFar := false
	for _, r := range got {
		if r.vector && r.top == 400 {
			foundFar = true
		}
		if r.vector && r.top == 105 {
			t.Errorf("vector region near the raster region should have been suppressed")
		}
	}
	if !foundFar {
		t.Errorf("expected the far vector region to survive")
	}
}

func TestFilterAndSuppressKeepsIsolatedVectorFigure(t *testing.T) {
	vector := []rawRegion{
		{top: 0, bottom: 50, x0: 0, x1: 50, vector: true},
	}
	got := filterAndSuppress(nil, vector)
	if len(got) != 1 {
		t.Fatalf("got %d regions, want 1", len(got))
	}
}
