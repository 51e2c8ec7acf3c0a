package dashboard

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/de-tools/cloud-sentry/pkg/adapters"
	"github.com/de-tools/cloud-sentry/pkg/services/dashboard"
	"github.com/rs/zerolog"
)

type Handler struct {
	renderer dashboard.Renderer
}

func NewHandler(renderer dashboard.Renderer) *Handler {
	return &Handler{renderer: renderer}
}

// Home serves the landing page, which doubles as the health surface for
// humans. Machine checks use Health.
func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := homeTemplate.Execute(w, nil); err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("failed to render home page")
	}
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// GetDashboard returns the three chart specifications as JSON.
func (h *Handler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	charts, err := h.renderer.Render(ctx)
	if err != nil {
		if errors.Is(err, dashboard.ErrEmptyDataset) {
			http.Error(w, "no cost snapshot available yet", http.StatusServiceUnavailable)
			return
		}
		logger.Error().Err(err).Msg("failed to render dashboard")
		http.Error(w, "failed to render dashboard", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(adapters.MapDashboardDomainToApi(*charts)); err != nil {
		logger.Error().Err(err).Msg("failed to encode dashboard")
	}
}

// DashboardPage serves the read-only chart page.
func (h *Handler) DashboardPage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	charts, err := h.renderer.Render(ctx)
	if err != nil {
		if errors.Is(err, dashboard.ErrEmptyDataset) {
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			w.WriteHeader(http.StatusServiceUnavailable)
			if err := emptyTemplate.Execute(w, nil); err != nil {
				logger.Error().Err(err).Msg("failed to render empty dashboard page")
			}
			return
		}
		logger.Error().Err(err).Msg("failed to render dashboard page")
		http.Error(w, "failed to render dashboard", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := dashboardTemplate.Execute(w, adapters.MapDashboardDomainToApi(*charts)); err != nil {
		logger.Error().Err(err).Msg("failed to render dashboard page")
	}
}
