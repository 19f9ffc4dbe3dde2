package imageregion

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	"image/png"

	xdraw "golang.org/x/image/draw"
	"go.uber.org/zap"

	"github.com/jeemock/mcqextract/internal/pdfsource"
)

// renderDPI is the resolution every accepted region is normalised to
// before it is handed to the asset store.
const renderDPI = 150.0

// nativeDPI is the assumed resolution of PDF user space (72 points per
// inch), used to scale an embedded raster image up or down to renderDPI.
const nativeDPI = 72.0

// AssetStore persists a rendered PNG and returns its opaque path. It is
// satisfied by internal/assets.Store; declared here, not imported from
// there, so imageregion has no dependency on how assets are kept.
type AssetStore interface {
	Put(png []byte) (string, error)
}

// Collector walks every page of a document and produces the accepted,
// stored, globally-positioned image regions for it.
type Collector struct {
	Source *pdfsource.Source
	Assets AssetStore
	Log    *zap.SugaredLogger
}

// New builds a Collector over an already-opened document. log may be
// nil, in which case skipped pages/assets simply go unreported.
func New(src *pdfsource.Source, assets AssetStore, log *zap.SugaredLogger) *Collector {
	return &Collector{Source: src, Assets: assets, Log: log}
}

// Collect gathers raster and vector-figure regions from every page,
// filters and suppresses them, renders and stores the survivors, and
// returns them shifted into the global Y stream via yOffset (the same
// per-page offsets internal/glyphline.Offset used for visual lines).
//
// A page whose image/figure extraction fails, or a single region whose
// render or asset save fails, is logged and skipped — never aborts the
// rest of the document, matching the original implementation's
// per-page and per-image try/except isolation.
func (c *Collector) Collect(yOffset func(pageIndex int) float64) []Region {
	var out []Region

	for _, f := range c.Source.Frames() {
		rasterImgs, err := c.Source.RasterImages(f)
		if err != nil {
			c.warnf("image extraction failed on page %d: %v", f.Index, err)
			continue
		}
		vectorBoxes, err := c.Source.VectorFigures(f)
		if err != nil {
			c.warnf("figure extraction failed on page %d: %v", f.Index, err)
			vectorBoxes = nil
		}

		rawRaster := make([]rawRegion, len(rasterImgs))
		for i, im := range rasterImgs {
			rawRaster[i] = rawRegion{top: im.Top, bottom: im.Bottom, x0: im.X0, x1: im.X1}
		}
		rawVector := make([]rawRegion, len(vectorBoxes))
		for i, v := range vectorBoxes {
			rawVector[i] = rawRegion{top: v.Top, bottom: v.Bottom, x0: v.X0, x1: v.X1, vector: true}
		}

		accepted := filterAndSuppress(rawRaster, rawVector)
		offset := yOffset(f.Index)

		for idx, a := range accepted {
			var png []byte
			var err error
			if a.vector {
				png, err = c.renderVector(f, a)
			} else {
				png, err = c.renderRaster(rasterImgs, rawRaster, a)
			}
			if err != nil {
				c.warnf("could not render region %d on page %d: %v", idx, f.Index, err)
				continue
			}
			if png == nil {
				continue
			}
			path, err := c.Assets.Put(png)
			if err != nil {
				c.warnf("could not save region %d on page %d: %v", idx, f.Index, err)
				continue
			}
			out = append(out, Region{
				Path:   path,
				Top:    a.top + offset,
				Bottom: a.bottom + offset,
				X0:     a.x0,
				X1:     a.x1,
			})
		}
	}

	return out
}

func (c *Collector) warnf(format string, args ...interface{}) {
	if c.Log == nil {
		return
	}
	c.Log.Warnf(format, args...)
}

func (c *Collector) renderVector(f *pdfsource.Frame, a rawRegion) ([]byte, error) {
	img, err := c.Source.RenderRegion(f, a.x0, a.x1, a.top, a.bottom, renderDPI)
	if err != nil {
		return nil, err
	}
	return encodePNG(img)
}

// renderRaster resamples an already-decoded embedded bitmap up or down
// to renderDPI — unlike a vector figure it never needs a fresh page
// render, since the PDF already carries its pixels.
func (c *Collector) renderRaster(imgs []pdfsource.RasterImage, raw []rawRegion, a rawRegion) ([]byte, error) {
	idx := -1
	for i, r := range raw {
		if r == a {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, fmt.Errorf("imageregion: raster region not found among candidates")
	}
	im := imgs[idx]

	src := &image.RGBA{
		Pix:    im.Pix,
		Stride: im.PixWidth * 4,
		Rect:   image.Rect(0, 0, im.PixWidth, im.PixHeight),
	}

	scale := renderDPI / nativeDPI
	dstW := int(a.width() * scale)
	dstH := int(a.height() * scale)
	if dstW <= 0 || dstH <= 0 || (dstW == im.PixWidth && dstH == im.PixHeight) {
		return encodePNG(src)
	}

	dst := image.NewRGBA(image.Rect(0, 0, dstW, dstH))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Over, nil)
	return encodePNG(dst)
}

func encodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("imageregion: encode png: %w", err)
	}
	return buf.Bytes(), nil
}
