package attach

import (
	"testing"

	"github.com/jeemock/mcqextract/internal/imageregion"
	"github.com/jeemock/mcqextract/internal/mcqparse"
)

func TestAttachToQuestionWithinRange(t *testing.T) {
	records := []mcqparse.Record{
		{Num: "1", YStart: 0, YEnd: 100, OptY: map[string]float64{}},
		{Num: "2", YStart: 500, YEnd: 600, OptY: map[string]float64{}},
	}
	regions := []imageregion.Region{
		{Path: "img1.png", Top: 40, Bottom: 80, X0: 0, X1: 50},
	}
	got := Attach(records, regions)
	if !got[0].HasDiagram || got[0].ImagePath != "img1.png" {
		t.Errorf("expected region to attach to question 1: %+v", got[0])
	}
	if got[1].HasDiagram {
		t.Errorf("question 2 should not have received the image")
	}
}

func TestAttachFallsBackToNearestQuestion(t *testing.T) {
	records := []mcqparse.Record{
		{Num: "1", YStart: 0, YEnd: 50, OptY: map[string]float64{}},
		{Num: "2", YStart: 1000, YEnd: 1050, OptY: map[string]float64{}},
	}
	regions := []imageregion.Region{
		// Centre at 400 — outside both extended ranges ([-150,200] and
		// [850,1200]) but closer to question 1's end (distance 350 vs 600).
		{Path: "img1.png", Top: 380, Bottom: 420, X0: 0, X1: 50},
	}
	got := Attach(records, regions)
	if !got[0].HasDiagram || got[0].ImagePath != "img1.png" {
		t.Errorf("expected fallback nearest-question attach to question 1: %+v", got[0])
	}
}

func TestAttachPromotesPerOptionImage(t *testing.T) {
	records := []mcqparse.Record{
		{
			Num:    "6",
			YStart: 100,
			YEnd:   400,
			OptY:   map[string]float64{"a": 200, "b": 250, "c": 300, "d": 350},
		},
	}
	regions := []imageregion.Region{
		{Path: "fig.png", Top: 245, Bottom: 265, X0: 0, X1: 50}, // centre 255 -> option b
	}
	got := Attach(records, regions)
	r := got[0]
	if r.OptionBImage != "fig.png" {
		t.Errorf("OptionBImage = %q, want fig.png", r.OptionBImage)
	}
	if r.ImagePath != "" {
		t.Errorf("ImagePath should be cleared once the image is claimed by an option, got %q", r.ImagePath)
	}
	if !r.HasDiagram {
		t.Errorf("HasDiagram should be set")
	}
}

func TestAttachNoRegionsIsNoop(t *testing.T) {
	records := []mcqparse.Record{{Num: "1", YStart: 0, YEnd: 100}}
	got := Attach(records, nil)
	if got[0].HasDiagram || got[0].ImagePath != "" {
		t.Errorf("expected no change with zero regions")
	}
}
