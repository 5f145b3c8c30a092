package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/abdulmoeez1225/Todo-Challenge-With-Docker/internal/common"
	"github.com/rs/zerolog"
)

const healthPingTimeout = 2 * time.Second

// Pinger reports whether a backing store is reachable.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type HealthResponse struct {
	Status    string  `json:"status"`
	Service   string  `json:"service"`
	Timestamp string  `json:"timestamp"`
	Uptime    float64 `json:"uptime"` // seconds
}

type HealthHandler struct {
	service string
	db      Pinger
	started time.Time
	now     func() time.Time
}

func NewHealthHandler(service string, db Pinger) *HealthHandler {
	return &HealthHandler{service: service, db: db, started: time.Now(), now: time.Now}
}

func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	now := h.now()
	resp := HealthResponse{
		Status:    "ok",
		Service:   h.service,
		Timestamp: now.UTC().Format(time.RFC3339Nano),
		Uptime:    now.Sub(h.started).Seconds(),
	}

	if h.db != nil {
		ctx, cancel := context.WithTimeout(r.Context(), healthPingTimeout)
		defer cancel()
		if err := h.db.PingContext(ctx); err != nil {
			zerolog.Ctx(r.Context()).Warn().Err(err).Msg("health check: database unreachable")
			resp.Status = "error"
			common.RespondWithJSON(w, http.StatusServiceUnavailable, resp)
			return
		}
	}
	common.RespondWithJSON(w, http.StatusOK, resp)
}
