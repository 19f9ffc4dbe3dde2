// Package screenshot crops each question's vertical span out of the
// pages it spans and stitches the slices into one PNG, so a question
// that straddles a page break still gets a single coherent image.
package screenshot

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"

	"go.uber.org/zap"

	"github.com/jeemock/mcqextract/internal/mcqparse"
	"github.com/jeemock/mcqextract/internal/pdfsource"
)

// padTop is the padding, in PDF points, added above a question's first
// line so the crop doesn't start mid-glyph.
const padTop = 6.0

// renderDPI matches the resolution used for collected image regions,
// so a question screenshot and its attached diagrams look consistent
// side by side in the UI.
const renderDPI = 150.0

// PageMeta pairs a page frame with its offset into the global Y
// stream, the same bookkeeping internal/glyphline.Offset uses.
type PageMeta struct {
	Frame   *pdfsource.Frame
	YOffset float64
}

// AssetStore persists a rendered PNG and returns its opaque path.
type AssetStore interface {
	Put(png []byte) (string, error)
}

// Cropper produces one screenshot per question.
type Cropper struct {
	Source *pdfsource.Source
	Assets AssetStore
	Pages  []PageMeta
	Log    *zap.SugaredLogger
}

// New builds a Cropper. pages must be in document order and cover
// every frame in src. log may be nil, in which case skipped questions
// simply go unreported.
func New(src *pdfsource.Source, assets AssetStore, pages []PageMeta, log *zap.SugaredLogger) *Cropper {
	return &Cropper{Source: src, Assets: assets, Pages: pages, Log: log}
}

// CropAll crops one screenshot per record and returns their asset
// paths index-for-index with records (an empty string where a question
// got no screenshot); records itself is not modified. A question's span is clamped at
// the next question's start so a screenshot never bleeds across a
// header. A page-render or asset-save failure degrades gracefully: it
// is logged and that question simply gets no screenshot, rather than
// aborting the whole batch.
func (c *Cropper) CropAll(records []mcqparse.Record) []string {
	shots := make([]string, len(records))
	for i := range records {
		yStart, yEnd := effectiveSpan(records, i)
		path, err := c.cropOne(yStart, yEnd)
		if err != nil {
			c.warnf("save failed for question index %d: %v", i, err)
			continue
		}
		shots[i] = path
	}
	return shots
}

func (c *Cropper) warnf(format string, args ...interface{}) {
	if c.Log == nil {
		return
	}
	c.Log.Warnf(format, args...)
}

// effectiveSpan returns the padded, next-header-clamped vertical span
// for records[i].
func effectiveSpan(records []mcqparse.Record, i int) (float64, float64) {
	r := records[i]
	yEnd := r.YEnd
	if i+1 < len(records) && records[i+1].YStart < yEnd {
		yEnd = records[i+1].YStart
	}
	return r.YStart - padTop, yEnd
}

func (c *Cropper) cropOne(yStartGlobal, yEndGlobal float64) (string, error) {
	var slices []image.Image

	for _, pm := range c.Pages {
		pageGlobalStart := pm.YOffset
		pageGlobalEnd := pm.YOffset + pm.Frame.Height

		overlapStart := maxFloat(yStartGlobal, pageGlobalStart)
		overlapEnd := minFloat(yEndGlobal, pageGlobalEnd)
		if overlapEnd <= overlapStart {
			continue
		}

		localStart := maxFloat(0, overlapStart-pageGlobalStart)
		localEnd := minFloat(pm.Frame.Height, overlapEnd-pageGlobalStart)
		if localEnd <= localStart {
			continue
		}

		img, err := c.Source.RenderBand(pm.Frame, localStart, localEnd, renderDPI)
		if err != nil {
			c.warnf("could not render page %d band for a question screenshot: %v", pm.Frame.Index, err)
			continue
		}
		slices = append(slices, img)
	}

	if len(slices) == 0 {
		return "", fmt.Errorf("screenshot: no renderable page overlap")
	}

	final := slices[0]
	if len(slices) > 1 {
		final = stitchVertical(slices)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, final); err != nil {
		return "", fmt.Errorf("screenshot: encode png: %w", err)
	}
	return c.Assets.Put(buf.Bytes())
}

// stitchVertical pastes slices top-to-bottom onto a white canvas sized
// to the widest slice and the sum of all slice heights.
func stitchVertical(slices []image.Image) image.Image {
	maxW, totalH := 0, 0
	for _, s := range slices {
		if w := s.Bounds().Dx(); w > maxW {
			maxW = w
		}
		totalH += s.Bounds().Dy()
	}

	canvas := image.NewRGBA(image.Rect(0, 0, maxW, totalH))
	draw.Draw(canvas, canvas.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	y := 0
	for _, s := range slices {
		b := s.Bounds()
		draw.Draw(canvas, image.Rect(0, y, b.Dx(), y+b.Dy()), s, b.Min, draw.Src)
		y += b.Dy()
	}
	return canvas
}

func maxFloat(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

func minFloat(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
