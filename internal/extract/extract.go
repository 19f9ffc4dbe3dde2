// Package extract wires the per-upload pipeline end to end: open the
// PDF, reconstruct visual lines per page, classify them into question
// records, collect diagram regions, attach those regions to the
// records they illustrate, and crop a screenshot per question. One
// call to Run handles one document, start to finish, with no shared
// state surviving past the call — each upload gets its own pipeline
// run so two uploads can never bleed into each other.
package extract

import (
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/jeemock/mcqextract/internal/attach"
	"github.com/jeemock/mcqextract/internal/glyphline"
	"github.com/jeemock/mcqextract/internal/imageregion"
	"github.com/jeemock/mcqextract/internal/mcqparse"
	"github.com/jeemock/mcqextract/internal/pdfsource"
	"github.com/jeemock/mcqextract/internal/screenshot"
)

// interPageGap is the fixed vertical padding inserted between pages in
// the document's global Y stream, so adjacent pages' Y ranges never
// touch or overlap.
const interPageGap = 20.0

// AssetStore persists a rendered PNG and returns its opaque path. Both
// diagram regions and question screenshots share the same store.
type AssetStore interface {
	Put(png []byte) (string, error)
}

// Result is one upload's full extraction output: the records ready for
// persistence, paired index-for-index with their question screenshots.
type Result struct {
	Records     []mcqparse.Record
	Screenshots []string
}

// Run executes the full pipeline against r, writing every rendered PNG
// (diagrams and screenshots alike) through assets. log may be nil, in
// which case skipped pages and assets simply go unreported.
//
// A single page whose glyph extraction fails is logged and skipped —
// it never aborts the rest of the document, matching the original
// implementation's per-page try/except around text extraction.
func Run(r io.ReadSeeker, assets AssetStore, log *zap.SugaredLogger) (Result, error) {
	src, err := pdfsource.Open(r)
	if err != nil {
		return Result{}, fmt.Errorf("extract: open pdf: %w", err)
	}

	frames := src.Frames()
	offsets := make([]float64, len(frames))
	running := 0.0
	for i, f := range frames {
		offsets[i] = running
		running += f.Height + interPageGap
	}

	var allLines []glyphline.VisualLine
	for i, f := range frames {
		glyphs, err := src.Glyphs(f)
		if err != nil {
			logWarn(log, "skipping text on page %d: %v", f.Index, err)
			continue
		}
		lines := glyphline.Reconstruct(glyphs)
		allLines = append(allLines, glyphline.Offset(lines, offsets[i])...)
	}

	records := mcqparse.Parse(allLines)
	if len(records) == 0 {
		return Result{Records: nil, Screenshots: nil}, nil
	}

	collector := imageregion.New(src, assets, log)
	regions := collector.Collect(func(pageIndex int) float64 {
		if pageIndex < 0 || pageIndex >= len(offsets) {
			return 0
		}
		return offsets[pageIndex]
	})

	records = attach.Attach(records, regions)

	pages := make([]screenshot.PageMeta, len(frames))
	for i, f := range frames {
		pages[i] = screenshot.PageMeta{Frame: f, YOffset: offsets[i]}
	}
	cropper := screenshot.New(src, assets, pages, log)
	shots := cropper.CropAll(records)

	return Result{Records: records, Screenshots: shots}, nil
}

func logWarn(log *zap.SugaredLogger, format string, args ...interface{}) {
	if log == nil {
		return
	}
	log.Warnf(format, args...)
}
