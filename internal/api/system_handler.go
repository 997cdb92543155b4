package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/phrazzld/sarisari-api/internal/api/shared"
	"github.com/phrazzld/sarisari-api/internal/domain"
)

// ServiceName is reported by the index endpoint.
const ServiceName = "sari-sari_store"

// healthCheckTimeout bounds the database ping made by /health.
const healthCheckTimeout = 2 * time.Second

// Pinger is satisfied by *sql.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// SystemHandler serves the index and health endpoints.
type SystemHandler struct {
	db     Pinger
	kinds  []domain.Kind
	logger *slog.Logger
}

// NewSystemHandler creates a SystemHandler. A nil db skips the database
// ping in Health.
func NewSystemHandler(db Pinger, kinds []domain.Kind, logger *slog.Logger) *SystemHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &SystemHandler{
		db:     db,
		kinds:  kinds,
		logger: logger.With(slog.String("component", "system_handler")),
	}
}

// Index handles GET / with a short service overview.
func (h *SystemHandler) Index(w http.ResponseWriter, r *http.Request) {
	endpoints := make(map[string]string, len(h.kinds)+3)
	for _, k := range h.kinds {
		endpoints[k.Table] = k.Path
	}
	endpoints["login"] = "/login"
	endpoints["health"] = "/health"
	endpoints["metrics"] = "/metrics"

	shared.Respond(w, r, http.StatusOK, IndexResponse{
		Service:   ServiceName,
		Status:    "ok",
		Endpoints: endpoints,
	})
}

// Health handles GET /health. It reports 503 when the database cannot be
// reached.
func (h *SystemHandler) Health(w http.ResponseWriter, r *http.Request) {
	if h.db != nil {
		ctx, cancel := context.WithTimeout(r.Context(), healthCheckTimeout)
		defer cancel()

		if err := h.db.PingContext(ctx); err != nil {
			shared.RespondWithErrorAndLog(w, r, http.StatusServiceUnavailable, "Database unavailable", err)
			return
		}
	}

	shared.Respond(w, r, http.StatusOK, StatusResponse{Status: "ok"})
}
