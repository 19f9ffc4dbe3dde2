// Package config holds the process's tunable settings as a plain
// struct with a defaults constructor, in place of a config-file
// parser this service's scope doesn't warrant.
package config

// Config is the full set of settings cmd/mcqserver needs to start the
// server. There is no config-file layer: values are set on the struct
// by the caller; cmd/mcqserver overrides Addr and DBPath from the
// MCQEXTRACT_ADDR and MCQEXTRACT_DB environment variables.
type Config struct {
	// Addr is the address the HTTP server listens on, e.g. ":8080".
	Addr string

	// DBPath is the SQLite file backing the questions store.
	DBPath string

	// StaticDir holds the two served HTML pages (index and test).
	StaticDir string

	// ImagesDir holds rendered PNGs (diagrams and screenshots),
	// served back under /static/images.
	ImagesDir string

	// ImagesURLPrefix is the URL path ImagesDir is mounted at.
	ImagesURLPrefix string
}

// DefaultConfig returns sane defaults for running the service out of
// the current working directory.
func DefaultConfig() Config {
	return Config{
		Addr:            ":8080",
		DBPath:          "mcqextract.db",
		StaticDir:       "web/static",
		ImagesDir:       "web/images",
		ImagesURLPrefix: "/static/images",
	}
}

// WithAddr returns a copy of c listening on addr.
func (c Config) WithAddr(addr string) Config {
	c.Addr = addr
	return c
}

// WithDBPath returns a copy of c backed by the sqlite file at path.
func (c Config) WithDBPath(path string) Config {
	c.DBPath = path
	return c
}
