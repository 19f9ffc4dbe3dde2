// Package httpapi exposes the upload, read-back, and static-asset
// surface over the extraction pipeline, following spec.md's upload
// contract: reject non-PDF filenames, always clean up the temp file,
// surface extractor failures as a 500, and treat zero extracted
// questions as a 422 rather than a silent empty success.
package httpapi

import (
	"io"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/jeemock/mcqextract/internal/extract"
	"github.com/jeemock/mcqextract/internal/store"
)

// Assets persists a rendered PNG and returns its opaque path.
type Assets interface {
	Put(png []byte) (string, error)
}

// Server bundles the collaborators the handlers need. It carries no
// package-level state — every request is served off this value,
// threaded in explicitly from cmd/mcqserver.
type Server struct {
	Store     *store.Store
	Assets    Assets
	Log       *zap.SugaredLogger
	StaticDir string // serves index.html and test.html
	ImagesDir string // backs /static/images
}

// Router builds the gin engine wiring every route this service
// exposes: the two verbatim HTML pages, the upload endpoint, the
// read-back endpoint, and the image asset static file server.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/", s.serveStatic("index.html"))
	r.GET("/test", s.serveStatic("test.html"))
	r.Static("/static/images", s.ImagesDir)

	r.POST("/upload", s.handleUpload)
	r.GET("/api/questions", s.handleReadBack)

	return r
}

func (s *Server) serveStatic(name string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.File(s.StaticDir + "/" + name)
	}
}

// errorResponse is the JSON body returned for every non-2xx response.
type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleUpload(c *gin.Context) {
	header, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "missing uploaded file \"file\""})
		return
	}
	if !hasPDFExtension(header.Filename) {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "uploaded file must have a .pdf extension"})
		return
	}

	tmp, err := os.CreateTemp("", "mcqextract-upload-*.pdf")
	if err != nil {
		c.JSON(http.StatusInternalServerError, errorResponse{Error: "could not allocate a temporary file"})
		return
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	src, err := header.Open()
	if err != nil {
		tmp.Close()
		c.JSON(http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}
	_, copyErr := copyAndClose(tmp, src)
	if copyErr != nil {
		c.JSON(http.StatusInternalServerError, errorResponse{Error: copyErr.Error()})
		return
	}

	f, err := os.Open(tmpPath)
	if err != nil {
		c.JSON(http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}
	defer f.Close()

	result, err := extract.Run(f, s.Assets, s.Log)
	if err != nil {
		s.logf("extraction failed for %q: %v", header.Filename, err)
		c.JSON(http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}

	if len(result.Records) == 0 {
		c.JSON(http.StatusUnprocessableEntity, errorResponse{
			Error: "no questions were recognised in this document; accepted numbering styles are " +
				"\"Q1.\", \"Q.1\", \"Question 1:\", \"1.\", \"1)\", OCR-spaced digits such as \"1 2.\", " +
				"and Roman numerals (\"I.\", \"II.\", ...)",
		})
		return
	}

	ctx := c.Request.Context()
	if err := s.Store.Reset(ctx); err != nil {
		c.JSON(http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}
	if err := s.Store.InsertAll(ctx, result.Records, result.Screenshots); err != nil {
		c.JSON(http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"count":    len(result.Records),
		"redirect": "/test",
	})
}

func (s *Server) handleReadBack(c *gin.Context) {
	rows, err := s.Store.All(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, rows)
}

// copyAndClose drains src into dst, closing both regardless of outcome
// so the upload handler never leaks a file descriptor on error.
func copyAndClose(dst *os.File, src io.ReadCloser) (int64, error) {
	defer src.Close()
	defer dst.Close()
	return io.Copy(dst, src)
}

func (s *Server) logf(format string, args ...interface{}) {
	if s.Log == nil {
		return
	}
	s.Log.Errorf(format, args...)
}

func hasPDFExtension(name string) bool {
	if len(name) < 4 {
		return false
	}
	tail := name[len(name)-4:]
	if tail[0] != '.' {
		return false
	}
	for i, want := range [3]byte{'p', 'd', 'f'} {
		got := tail[i+1]
		if got != want && got != want-32 {
			return false
		}
	}
	return true
}
