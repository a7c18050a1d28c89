package dashboard

import (
	"encoding/json"
	"net/http"

	"github.com/de-tools/rental-atlas/pkg/adapters"
	"github.com/de-tools/rental-atlas/pkg/models/domain"
	"github.com/de-tools/rental-atlas/pkg/render"
	dashboardsvc "github.com/de-tools/rental-atlas/pkg/services/dashboard"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

type Handler struct {
	renderer dashboardsvc.Renderer
}

func NewHandler(renderer dashboardsvc.Renderer) *Handler {
	return &Handler{
		renderer: renderer,
	}
}

// render parses the filter controls and renders the dashboard, answering the
// request itself on failure.
func (h *Handler) render(w http.ResponseWriter, r *http.Request) (*domain.Dashboard, bool) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	f, err := ParseFilter(r.URL.Query(), h.renderer.DefaultFilter())
	if err != nil {
		logger.Debug().
			Err(err).
			Msg("rejected filter")
		http.Error(w, err.Error(), http.StatusBadRequest)
		return nil, false
	}

	d, err := h.renderer.Render(ctx, f)
	if err != nil {
		logger.Error().
			Err(err).
			Msg("failed to render dashboard")
		http.Error(w, "failed to render dashboard", http.StatusInternalServerError)
		return nil, false
	}
	return d, true
}

func (h *Handler) GetPage(w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context())

	d, ok := h.render(w, r)
	if !ok {
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := render.WritePage(w, d, h.renderer.DefaultFilter()); err != nil {
		logger.Error().
			Err(err).
			Msg("failed to write dashboard page")
	}
}

func (h *Handler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context())

	d, ok := h.render(w, r)
	if !ok {
		return
	}

	w.Header().Set("Content-Type", "application/json")
	err := json.NewEncoder(w).Encode(adapters.MapDashboardDomainToApi(d))
	if err != nil {
		logger.Error().
			Err(err).
			Msg("failed to encode dashboard")
	}
}

func (h *Handler) GetChart(w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context())
	id := chi.URLParam(r, "chart")

	d, ok := h.render(w, r)
	if !ok {
		return
	}

	for _, c := range d.Charts {
		if c.ID != id {
			continue
		}
		if len(c.Bars) == 0 {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		w.Header().Set("Content-Type", "image/svg+xml")
		if err := render.WriteChartSVG(w, c); err != nil {
			logger.Error().
				Err(err).
				Str("chart", id).
				Msg("failed to write chart")
		}
		return
	}

	http.Error(w, "unknown chart "+id, http.StatusNotFound)
}

func (h *Handler) ListLabels(w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context())

	w.Header().Set("Content-Type", "application/json")
	err := json.NewEncoder(w).Encode(adapters.MapLabelsToApi())
	if err != nil {
		logger.Error().
			Err(err).
			Msg("failed to encode labels")
	}
}
