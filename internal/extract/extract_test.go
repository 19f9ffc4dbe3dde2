package extract

import (
	"bytes"
	"testing"
)

type nullAssets struct{}

func (nullAssets) Put(png []byte) (string, error) { return "/static/images/x.png", nil }

func TestRunRejectsNonPDFInput(t *testing.T) {
	_, err := Run(bytes.NewReader([]byte("not a pdf")), nullAssets{}, nil)
	if err == nil {
		t.Fatal("expected an error opening non-PDF input, got nil")
	}
}
