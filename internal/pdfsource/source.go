// Package pdfsource is the only place in this module that imports
// unipdf directly. It turns unipdf's page/glyph/image/content-stream
// API into the plain shapes internal/glyphline, internal/imageregion
// and internal/screenshot expect, so the rest of the extractor never
// has to know unipdf's coordinate system (bottom-left origin, Y
// increasing upward) or object model at all.
package pdfsource

import (
	"fmt"
	"image"
	"image/draw"
	"io"
	"strings"

	xdraw "golang.org/x/image/draw"

	"github.com/unidoc/unipdf/v3/extractor"
	"github.com/unidoc/unipdf/v3/model"
	"github.com/unidoc/unipdf/v3/render"

	"github.com/jeemock/mcqextract/internal/glyphline"
)

// Frame is one page opened for the duration of an upload. The extractor
// keeps every Frame for a document alive until screenshot cropping
// completes, since crops may need to reach back into earlier pages.
type Frame struct {
	Index  int
	Width  float64
	Height float64

	page     *model.PdfPage
	rendered image.Image // cached full-page render at nativeDPI, filled lazily
}

// nativeDPI is the resolution unipdf's image device renders a page at
// (one point of PDF user space per pixel) before any region crop or
// DPI rescale.
const nativeDPI = 72.0

// Source adapts a single PDF document.
type Source struct {
	reader *model.PdfReader
	frames []*Frame
}

// Open parses a PDF document and eagerly resolves every page's frame
// (dimensions only — glyphs and images are extracted lazily per page).
func Open(r io.ReadSeeker) (*Source, error) {
	reader, err := model.NewPdfReader(r)
	if err != nil {
		return nil, fmt.Errorf("pdfsource: open reader: %w", err)
	}
	n, err := reader.GetNumPages()
	if err != nil {
		return nil, fmt.Errorf("pdfsource: read page count: %w", err)
	}

	frames := make([]*Frame, 0, n)
	for i := 1; i <= n; i++ {
		page, err := reader.GetPage(i)
		if err != nil {
			return nil, fmt.Errorf("pdfsource: get page %d: %w", i, err)
		}
		box, err := page.GetMediaBox()
		if err != nil {
			return nil, fmt.Errorf("pdfsource: media box for page %d: %w", i, err)
		}
		frames = append(frames, &Frame{
			Index:  i - 1,
			Width:  box.Urx - box.Llx,
			Height: box.Ury - box.Lly,
			page:   page,
		})
	}
	return &Source{reader: reader, frames: frames}, nil
}

// Frames returns every page frame in document order.
func (s *Source) Frames() []*Frame { return s.frames }

// Glyphs extracts per-character glyph boxes for a page and converts
// them from unipdf's bottom-left PDF space into the top-down
// (Top < Bottom, Top == 0 at the page's visual top) convention
// internal/glyphline operates on.
func (s *Source) Glyphs(f *Frame) ([]glyphline.Glyph, error) {
	ex, err := extractor.New(f.page)
	if err != nil {
		return nil, fmt.Errorf("pdfsource: new extractor: %w", err)
	}
	pageText, _, _, err := ex.ExtractPageText()
	if err != nil {
		return nil, fmt.Errorf("pdfsource: extract page text: %w", err)
	}

	marks := pageText.Marks().Elements()
	glyphs := make([]glyphline.Glyph, 0, len(marks))
	for _, m := range marks {
		if m.Text == "" {
			continue
		}
		glyphs = append(glyphs, glyphline.Glyph{
			Text:   m.Text,
			X0:     m.BBox.Llx,
			X1:     m.BBox.Urx,
			Top:    f.Height - m.BBox.Ury,
			Bottom: f.Height - m.BBox.Lly,
			Size:   m.FontSize,
		})
	}
	return glyphs, nil
}

// RasterImage is one embedded bitmap on a page, in the same top-down
// coordinate convention as Glyph.
type RasterImage struct {
	X0, X1         float64
	Top, Bottom    float64
	Pix            []byte
	PixWidth       int
	PixHeight      int
}

// RasterImages extracts every embedded raster image on a page.
func (s *Source) RasterImages(f *Frame) ([]RasterImage, error) {
	ex, err := extractor.New(f.page)
	if err != nil {
		return nil, fmt.Errorf("pdfsource: new extractor: %w", err)
	}
	pageImages, err := ex.ExtractPageImages(nil)
	if err != nil {
		return nil, fmt.Errorf("pdfsource: extract page images: %w", err)
	}

	out := make([]RasterImage, 0, len(pageImages.Images))
	for _, im := range pageImages.Images {
		goImg, err := im.Image.ToGoImage()
		if err != nil {
			continue
		}
		bounds := goImg.Bounds()
		buf := make([]byte, bounds.Dx()*bounds.Dy()*4)
		copyRGBA(buf, goImg)

		top := f.Height - (im.Y + im.Height)
		out = append(out, RasterImage{
			X0:        im.X,
			X1:        im.X + im.Width,
			Top:       top,
			Bottom:    top + im.Height,
			Pix:       buf,
			PixWidth:  bounds.Dx(),
			PixHeight: bounds.Dy(),
		})
	}
	return out, nil
}

// VectorBox is the bounding box of a cluster of drawn paths (lines,
// curves, filled shapes) that make up a vector figure, not backed by
// any embedded raster image.
type VectorBox struct {
	X0, X1      float64
	Top, Bottom float64
}

// VectorFigures walks the page's content stream for path-construction
// operators and clusters nearby path segments into bounding boxes —
// the geometry ledongthuc/pdf has no access to, and the reason this
// module needs unipdf's lower-level content-stream access rather than
// a text-only PDF library.
func (s *Source) VectorFigures(f *Frame) ([]VectorBox, error) {
	streams, err := f.page.GetContentStreams()
	if err != nil {
		return nil, fmt.Errorf("pdfsource: content streams for page %d: %w", f.Index, err)
	}
	boxes := scanPathClusters(strings.Join(streams, "\n"), f.Height)
	return boxes, nil
}

// pageImage renders f's full page once, at nativeDPI (one pixel per
// PDF point), and caches the result — RenderRegion/RenderBand crop and
// rescale a shared render rather than re-rasterising the page per call.
//
// unipdf's render.ImageDevice exposes only a whole-page Render(page);
// there is no region-rectangle or DPI parameter on the device itself
// (the retrieval pack carries no example of this package to confirm
// an alternative — see DESIGN.md), so region/DPI handling is done here
// in Go against the already-wired golang.org/x/image/draw.
func (s *Source) pageImage(f *Frame) (image.Image, error) {
	if f.rendered != nil {
		return f.rendered, nil
	}
	device := render.NewImageDevice()
	img, err := device.Render(f.page)
	if err != nil {
		return nil, fmt.Errorf("pdfsource: render page %d: %w", f.Index, err)
	}
	f.rendered = img
	return img, nil
}

// RenderRegion rasterizes the page-local rectangle [x0,x1] x [top,bottom]
// (top-down coordinates) at the given DPI.
func (s *Source) RenderRegion(f *Frame, x0, x1, top, bottom, dpi float64) (image.Image, error) {
	full, err := s.pageImage(f)
	if err != nil {
		return nil, err
	}

	b := full.Bounds()
	crop := image.Rect(
		clampInt(int(x0), 0, b.Dx()),
		clampInt(int(top), 0, b.Dy()),
		clampInt(int(x1), 0, b.Dx()),
		clampInt(int(bottom), 0, b.Dy()),
	).Add(b.Min)
	if crop.Dx() <= 0 || crop.Dy() <= 0 {
		return nil, fmt.Errorf("pdfsource: empty render region on page %d", f.Index)
	}
	cropped := cropToRGBA(full, crop)

	scale := dpi / nativeDPI
	if scale == 1.0 {
		return cropped, nil
	}
	dstW, dstH := int(float64(crop.Dx())*scale), int(float64(crop.Dy())*scale)
	if dstW <= 0 || dstH <= 0 {
		return cropped, nil
	}
	dst := image.NewRGBA(image.Rect(0, 0, dstW, dstH))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), cropped, cropped.Bounds(), xdraw.Over, nil)
	return dst, nil
}

// RenderBand rasterizes the full page width over the page-local Y
// range [top, bottom] at the given DPI — the shape internal/screenshot
// needs for a question's vertical slice of a page.
func (s *Source) RenderBand(f *Frame, top, bottom, dpi float64) (image.Image, error) {
	return s.RenderRegion(f, 0, f.Width, top, bottom, dpi)
}

// cropToRGBA copies the sub-rectangle r of img into a fresh *image.RGBA
// with a zeroed origin, regardless of whether img implements SubImage.
func cropToRGBA(img image.Image, r image.Rectangle) *image.RGBA {
	out := image.NewRGBA(image.Rect(0, 0, r.Dx(), r.Dy()))
	draw.Draw(out, out.Bounds(), img, r.Min, draw.Src)
	return out
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
