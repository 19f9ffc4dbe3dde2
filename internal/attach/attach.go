// Package attach binds collected image regions to the question (and,
// where possible, the specific option) they illustrate, purely by
// vertical position in the document's global Y stream.
package attach

import (
	"math"
	"sort"
	"strings"

	"github.com/jeemock/mcqextract/internal/imageregion"
	"github.com/jeemock/mcqextract/internal/mcqparse"
)

// rangeTol extends a question's [_y_start, _y_end] block on both ends
// when testing whether an image region belongs to it — a diagram often
// sits just above or below the text that references it.
const rangeTol = 150.0

// optionLeadTol lets an option's image sit slightly above the option
// label's own Y anchor (the picture is frequently a little higher than
// the text beside it).
const optionLeadTol = 20.0

// Attach assigns every region to its best-matching question and then
// promotes question-level images into the specific option slot they
// belong to, returning an updated copy of records.
func Attach(records []mcqparse.Record, regions []imageregion.Region) []mcqparse.Record {
	out := make([]mcqparse.Record, len(records))
	copy(out, records)
	if len(out) == 0 {
		return out
	}

	coords := make(map[string][2]float64, len(regions))
	for _, r := range regions {
		coords[r.Path] = [2]float64{r.Top, r.Bottom}
	}

	for _, r := range regions {
		cy := (r.Top + r.Bottom) / 2
		idx := bestQuestion(out, cy)
		if idx < 0 {
			continue
		}
		out[idx].HasDiagram = true
		if out[idx].ImagePath == "" {
			out[idx].ImagePath = r.Path
		} else {
			out[idx].ImagePath += "," + r.Path
		}
	}

	for i := range out {
		promoteOptions(&out[i], coords)
	}

	return out
}

// bestQuestion finds the question whose extended range contains cy
// with the smallest distance, falling back to the globally nearest
// question by endpoint distance when no range contains cy. Ties keep
// the earliest question (records are in ascending Y order already).
func bestQuestion(records []mcqparse.Record, cy float64) int {
	bestIdx, bestDist := -1, math.Inf(1)
	for i, q := range records {
		lo, hi := q.YStart-rangeTol, q.YEnd+rangeTol
		if cy < lo || cy > hi {
			continue
		}
		d := 0.0
		if cy < q.YStart || cy > q.YEnd {
			d = math.Min(math.Abs(cy-q.YStart), math.Abs(cy-q.YEnd))
		}
		if d < bestDist {
			bestDist, bestIdx = d, i
		}
	}
	if bestIdx >= 0 {
		return bestIdx
	}

	for i, q := range records {
		d := math.Min(math.Abs(cy-q.YStart), math.Abs(cy-q.YEnd))
		if d < bestDist {
			bestDist, bestIdx = d, i
		}
	}
	return bestIdx
}

// promoteOptions claims question-level image paths into option_<letter>_image
// slots when the image's Y centre falls inside that option's Y range.
func promoteOptions(r *mcqparse.Record, coords map[string][2]float64) {
	if len(r.OptY) == 0 || r.ImagePath == "" {
		return
	}

	type anchor struct {
		letter string
		y      float64
	}
	anchors := make([]anchor, 0, len(r.OptY))
	for letter, y := range r.OptY {
		anchors = append(anchors, anchor{letter, y})
	}
	sort.Slice(anchors, func(i, j int) bool { return anchors[i].y < anchors[j].y })

	ranges := make(map[string][2]float64, len(anchors))
	for i, a := range anchors {
		hi := r.YEnd + rangeTol
		if i+1 < len(anchors) {
			hi = anchors[i+1].y
		}
		ranges[a.letter] = [2]float64{a.y, hi}
	}

	paths := strings.Split(r.ImagePath, ",")
	remaining := make([]string, 0, len(paths))
	for _, path := range paths {
		xy, ok := coords[path]
		if !ok {
			remaining = append(remaining, path)
			continue
		}
		cy := (xy[0] + xy[1]) / 2
		claimed := false
		for _, a := range anchors {
			rg := ranges[a.letter]
			if cy < rg[0]-optionLeadTol || cy > rg[1] {
				continue
			}
			slot := r.OptionImageSlot(a.letter)
			if slot != nil && *slot == "" {
				*slot = path
				claimed = true
			}
			break
		}
		if !claimed {
			remaining = append(remaining, path)
		}
	}

	if len(remaining) == 0 {
		r.ImagePath = ""
	} else {
		r.ImagePath = strings.Join(remaining, ",")
	}
}
