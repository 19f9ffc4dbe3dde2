// Package imageregion collects a page's embedded raster images and
// vector-drawn figures, filters out anything too small to be a real
// diagram, suppresses vector boxes that just duplicate an already
// accepted raster region, and persists what survives to an asset
// store under a stable opaque path — all in the document's global Y
// coordinate system so internal/attach never needs to know which page
// a region came from.
package imageregion

// minDimension is the smallest width or height, in points, a region
// may have and still be treated as a diagram rather than a stray rule
// or bullet glyph.
const minDimension = 40.0

// vectorSuppressTol is the maximum distance between a vector figure's
// Y-centre and an already-accepted raster region's Y-centre, on the
// same page, for the vector figure to be dropped as a duplicate (e.g.
// a vector border drawn around an embedded bitmap).
const vectorSuppressTol = 30.0

// Region is one accepted image, already rendered and stored, with its
// bounds in the global (document-wide) Y coordinate system.
type Region struct {
	Path        string
	Top, Bottom float64
	X0, X1      float64
}

// rawRegion is a candidate region still in page-local coordinates,
// before filtering, rendering, and the global Y offset.
type rawRegion struct {
	top, bottom float64
	x0, x1      float64
	vector      bool
}

func (r rawRegion) width() float64  { return r.x1 - r.x0 }
func (r rawRegion) height() float64 { return r.bottom - r.top }
func (r rawRegion) centre() float64 { return (r.top + r.bottom) / 2 }

// filterAndSuppress drops undersized regions, then drops any vector
// region whose Y-centre lands within vectorSuppressTol of an accepted
// raster region's Y-centre — a vector frame drawn around a bitmap must
// not also be collected as its own figure.
func filterAndSuppress(raster, vector []rawRegion) []rawRegion {
	var accepted []rawRegion
	for _, r := range raster {
		if r.width() >= minDimension && r.height() >= minDimension {
			accepted = append(accepted, r)
		}
	}
	for _, v := range vector {
		if v.width() < minDimension || v.height() < minDimension {
			continue
		}
		suppressed := false
		for _, r := range accepted {
			if r.vector {
				continue
			}
			if absFloat(r.centre()-v.centre()) <= vectorSuppressTol {
				suppressed = true
				break
			}
		}
		if !suppressed {
			accepted = append(accepted, v)
		}
	}
	return accepted
}

func absFloat(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}
