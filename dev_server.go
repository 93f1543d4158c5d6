package multipage

import (
	"log/slog"
	"net/http"
	"sync/atomic"

	"github.com/prometheus/client_golang/prometheus"

	httpadapter "github.com/3-lines-studio/multipage/internal/adapters/http"
)

const MetricsPath = httpadapter.MetricsPath

// DevServer serves a project during development: page routes go through the
// plugin's rewrite rules, everything else is served from the root. Swap
// replaces the plugin without restarting the server.
type DevServer struct {
	plugin atomic.Pointer[Plugin]
	server *httpadapter.Server
}

// NewDevServer serves p. When registry is non-nil the dev metrics are
// registered on it and exposed at MetricsPath.
func NewDevServer(p *Plugin, registry *prometheus.Registry, logger *slog.Logger) *DevServer {
	var metrics *httpadapter.Metrics
	if registry != nil {
		metrics = httpadapter.NewMetrics(httpadapter.WithRegistry(registry))
	}

	s := &DevServer{
		server: httpadapter.NewServer(httpadapter.ServerConfig{
			Root:    p.root,
			FS:      p.fs,
			Service: p.dev,
			IsDev:   p.isDev,
			Logger:  logger,
			Metrics: metrics,
		}),
	}
	s.plugin.Store(p)
	return s
}

func (s *DevServer) Plugin() *Plugin {
	return s.plugin.Load()
}

// Swap starts a new session with next. Requests already in flight finish on
// the previous plugin.
func (s *DevServer) Swap(next *Plugin) {
	s.plugin.Store(next)
	s.server.SetService(next.dev)
}

func (s *DevServer) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	s.server.ServeHTTP(w, req)
}
