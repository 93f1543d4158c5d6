package http

import (
	"bytes"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/3-lines-studio/multipage/internal/core"
	"github.com/3-lines-studio/multipage/internal/htmlref"
	"github.com/3-lines-studio/multipage/internal/usecase"
)

type DocumentHandler struct {
	root    string
	fs      usecase.FileSystem
	isDev   bool
	metrics *Metrics
}

// NewDocumentHandler serves project files from root through fs. An HTML page
// entry that the page middleware rewrote to is served with its references
// re-targeted to the page's canonical location, so relative URLs resolve the
// same way they will after the build.
func NewDocumentHandler(root string, fs usecase.FileSystem, isDev bool, metrics *Metrics) http.Handler {
	return &DocumentHandler{
		root:    core.SlashPath(root),
		fs:      fs,
		isDev:   isDev,
		metrics: metrics,
	}
}

func (h *DocumentHandler) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	rel := path.Clean("/" + req.URL.Path)
	if rel == "/" {
		rel = "/index.html"
	}
	full := core.JoinRoot(h.root, rel)

	if canonical, ok := CanonicalPathFromContext(req.Context()); ok && core.IsHTMLPath(rel) {
		h.serveDocument(w, req, full, rel, "/"+canonical)
		return
	}

	h.serveFile(w, req, full)
}

func (h *DocumentHandler) serveDocument(w http.ResponseWriter, req *http.Request, full, rel, canonical string) {
	data, err := h.fs.ReadFile(full)
	if err != nil {
		http.NotFound(w, req)
		return
	}

	doc, err := htmlref.RewriteReferences(string(data), rel, canonical)
	if err != nil {
		err = &core.TransformError{File: full, Err: err}
		h.metrics.observeError(errorKind(err))
		serveError(w, err, h.isDev)
		return
	}
	serveHTML(w, doc)
}

func (h *DocumentHandler) serveFile(w http.ResponseWriter, req *http.Request, full string) {
	if strings.Contains(req.URL.Path, "..") {
		http.NotFound(w, req)
		return
	}

	data, err := h.fs.ReadFile(full)
	if err != nil {
		http.NotFound(w, req)
		return
	}

	w.Header().Set("Content-Type", core.GetContentType(full))
	http.ServeContent(w, req, path.Base(full), time.Time{}, bytes.NewReader(data))
}
