package http

import (
	"log/slog"
	"net/http"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/3-lines-studio/multipage/internal/usecase"
)

const MetricsPath = "/__multipage/metrics"

type ServerConfig struct {
	Root    string
	FS      usecase.FileSystem
	Service *usecase.DevService
	IsDev   bool
	Logger  *slog.Logger
	Metrics *Metrics
}

// Server is the dev server handler. The page service can be swapped while
// requests are in flight when the configuration is reloaded.
type Server struct {
	service atomic.Pointer[usecase.DevService]
	router  chi.Router
	logger  *slog.Logger
	metrics *Metrics
}

func NewServer(cfg ServerConfig) *Server {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	s := &Server{logger: logger, metrics: cfg.Metrics}
	s.service.Store(cfg.Service)

	documents := NewDocumentHandler(cfg.Root, cfg.FS, cfg.IsDev, cfg.Metrics)
	pages := &PageMiddleware{
		current: s.Service,
		next:    documents,
		isDev:   cfg.IsDev,
		metrics: cfg.Metrics,
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.requestLogger)

	if registry := cfg.Metrics.Registry(); registry != nil {
		r.Handle(MetricsPath, promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	}
	r.Handle("/*", pages)

	s.router = r
	return s
}

func (s *Server) Service() *usecase.DevService {
	return s.service.Load()
}

func (s *Server) SetService(service *usecase.DevService) {
	s.service.Store(service)
	s.metrics.ObserveReload()
}

func (s *Server) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	s.router.ServeHTTP(w, req)
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, req.ProtoMajor)

		next.ServeHTTP(ww, req)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		elapsed := time.Since(start)
		s.metrics.observeDuration(strconv.Itoa(status), elapsed.Seconds())
		s.logger.Debug("request",
			"method", req.Method,
			"path", req.URL.Path,
			"status", status,
			"bytes", ww.BytesWritten(),
			"duration", elapsed,
			"request_id", middleware.GetReqID(req.Context()),
		)
	})
}
