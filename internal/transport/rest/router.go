package rest

import (
	"net/http"

	"github.com/Yamaha-Motor-Manufacturing-Corp/ymmcContainerTrackerApi/internal/transport/middleware"
)

// Handlers groups the REST handlers mounted by NewRouter.
type Handlers struct {
	Containers *ContainerHandler
	Audit      *AuditHandler
	Me         *MeHandler
	Health     *HealthHandler
	// Metrics is mounted at MetricsPath when non-nil.
	Metrics     http.Handler
	MetricsPath string
}

// NewRouter mounts the API under /api wrapped in api, and the health checks and
// metrics unwrapped so they stay reachable without an identity.
func NewRouter(h Handlers, api middleware.Middleware) *http.ServeMux {
	mux := http.NewServeMux()

	apiMux := http.NewServeMux()
	apiMux.HandleFunc("GET /api/containers", h.Containers.List)
	apiMux.HandleFunc("POST /api/containers", h.Containers.Create)
	apiMux.HandleFunc("GET /api/containers/{key}", h.Containers.Get)
	apiMux.HandleFunc("PUT /api/containers/{key}", h.Containers.Update)
	apiMux.HandleFunc("DELETE /api/containers/{key}", h.Containers.Delete)
	apiMux.HandleFunc("GET /api/containers/{key}/history", h.Containers.History)
	apiMux.HandleFunc("GET /api/audit", h.Audit.Query)
	apiMux.HandleFunc("GET /api/audit/recent", h.Audit.Recent)
	apiMux.HandleFunc("GET /api/audit/verify", h.Audit.Verify)
	apiMux.HandleFunc("GET /api/me", h.Me.Get)
	mux.Handle("/api/", api(apiMux))

	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)

	if h.Metrics != nil && h.MetricsPath != "" {
		mux.Handle("GET "+h.MetricsPath, h.Metrics)
	}

	return mux
}
