package pdfsource

import (
	"image"

	"github.com/unidoc/unipdf/v3/contentstream"
	"github.com/unidoc/unipdf/v3/core"
)

// clusterGap is the maximum gap, in points, between two path points for
// them to be considered part of the same vector figure. Figures in
// these exam PDFs (free-body diagrams, graphs) are drawn as one
// contiguous run of path operators, so a generous gap still keeps
// unrelated page furniture (table rules, underlines) from merging into
// one giant box.
const clusterGap = 12.0

type point struct{ x, y float64 }

// scanPathClusters extracts every point touched by a path-construction
// operator (moveto, lineto, curveto, rectangle) from content, converts
// it to top-down coordinates, and greedily clusters nearby points into
// bounding boxes.
func scanPathClusters(content string, pageHeight float64) []VectorBox {
	parser := contentstream.NewContentStreamParser(content)
	ops, err := parser.Parse()
	if err != nil || ops == nil {
		return nil
	}

	var cx, cy float64
	var pts []point
	record := func(x, y float64) {
		pts = append(pts, point{x: x, y: pageHeight - y})
	}

	for _, op := range *ops {
		switch op.Operand {
		case "m", "l":
			if len(op.Params) < 2 {
				continue
			}
			cx, cy = numOp(op.Params[0]), numOp(op.Params[1])
			record(cx, cy)
		case "c":
			if len(op.Params) < 6 {
				continue
			}
			cx, cy = numOp(op.Params[4]), numOp(op.Params[5])
			record(cx, cy)
		case "re":
			if len(op.Params) < 4 {
				continue
			}
			x, y := numOp(op.Params[0]), numOp(op.Params[1])
			w, h := numOp(op.Params[2]), numOp(op.Params[3])
			record(x, y)
			record(x+w, y+h)
		}
	}

	return clusterPoints(pts)
}

func clusterPoints(pts []point) []VectorBox {
	type box struct {
		minX, minY, maxX, maxY float64
	}
	var boxes []box

	overlaps := func(b box, p point) bool {
		return p.x >= b.minX-clusterGap && p.x <= b.maxX+clusterGap &&
			p.y >= b.minY-clusterGap && p.y <= b.maxY+clusterGap
	}

	for _, p := range pts {
		merged := false
		for i := range boxes {
			if overlaps(boxes[i], p) {
				if p.x < boxes[i].minX {
					boxes[i].minX = p.x
				}
				if p.x > boxes[i].maxX {
					boxes[i].maxX = p.x
				}
				if p.y < boxes[i].minY {
					boxes[i].minY = p.y
				}
				if p.y > boxes[i].maxY {
					boxes[i].maxY = p.y
				}
				merged = true
				break
			}
		}
		if !merged {
			boxes = append(boxes, box{minX: p.x, maxX: p.x, minY: p.y, maxY: p.y})
		}
	}

	out := make([]VectorBox, 0, len(boxes))
	for _, b := range boxes {
		out = append(out, VectorBox{X0: b.minX, X1: b.maxX, Top: b.minY, Bottom: b.maxY})
	}
	return out
}

func numOp(obj core.PdfObject) float64 {
	n, ok := core.GetNumberAsFloat(obj)
	if !ok {
		return 0
	}
	return n
}

func copyRGBA(buf []byte, img image.Image) {
	bounds := img.Bounds()
	i := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, a := img.At(x, y).RGBA()
			buf[i] = byte(r >> 8)
			buf[i+1] = byte(g >> 8)
			buf[i+2] = byte(b >> 8)
			buf[i+3] = byte(a >> 8)
			i += 4
		}
	}
}
