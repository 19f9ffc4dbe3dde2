// Package assets is the append-only store for rendered PNGs — diagram
// crops and question screenshots alike. It hands callers back an
// opaque path under a static web root rather than a filesystem detail,
// so internal/imageregion and internal/screenshot never need to know
// where (or how) bytes ultimately land.
package assets

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
)

// Store writes PNGs under Dir and serves them back under URLPrefix.
type Store struct {
	Dir       string
	URLPrefix string
}

// New creates (if necessary) dir and returns a Store that serves files
// from it under urlPrefix, e.g. "/static/images".
func New(dir, urlPrefix string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("assets: create dir %s: %w", dir, err)
	}
	return &Store{Dir: dir, URLPrefix: urlPrefix}, nil
}

// Put writes png under a random opaque name and returns its URL path.
func (s *Store) Put(png []byte) (string, error) {
	name, err := randomName()
	if err != nil {
		return "", fmt.Errorf("assets: generate name: %w", err)
	}
	full := filepath.Join(s.Dir, name+".png")
	if err := os.WriteFile(full, png, 0o644); err != nil {
		return "", fmt.Errorf("assets: write %s: %w", full, err)
	}
	return s.URLPrefix + "/" + name + ".png", nil
}

// randomName returns a 16-byte hex id, collision-safe enough for a
// single upload's worth of images without a lookup table.
func randomName() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
