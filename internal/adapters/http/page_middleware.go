package http

import (
	"net/http"

	"github.com/3-lines-studio/multipage/internal/core"
	"github.com/3-lines-studio/multipage/internal/usecase"
)

type PageMiddleware struct {
	current func() *usecase.DevService
	next    http.Handler
	isDev   bool
	metrics *Metrics
}

// NewPageMiddleware answers requests that match a page route and hands the
// rest to next. HTML entries reach next under their own file path.
func NewPageMiddleware(service *usecase.DevService, next http.Handler, isDev bool, metrics *Metrics) http.Handler {
	return &PageMiddleware{
		current: func() *usecase.DevService { return service },
		next:    next,
		isDev:   isDev,
		metrics: metrics,
	}
}

func (h *PageMiddleware) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	out, err := h.current().HandleRequest(req.URL.Path)
	h.metrics.observeRequest(out.Decision.Action)

	if err != nil {
		h.metrics.observeError(errorKind(err))
		serveError(w, err, h.isDev)
		return
	}

	switch out.Decision.Action {
	case core.DevSynthesize:
		serveHTML(w, out.HTML)

	case core.DevRewrite:
		ctx := WithCanonicalPath(req.Context(), out.Decision.Rule.Output)
		rewritten := req.Clone(ctx)
		rewritten.URL.Path = out.Decision.RewritePath
		rewritten.URL.RawPath = ""
		rewritten.RequestURI = rewritten.URL.RequestURI()
		h.next.ServeHTTP(w, rewritten)

	default:
		h.next.ServeHTTP(w, req)
	}
}
