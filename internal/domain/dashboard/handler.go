package dashboard

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// Handler exposes the dashboard snapshot over HTTP.
type Handler struct {
	svc *Service
	log zerolog.Logger
}

// NewHandler creates the handler.
func NewHandler(svc *Service, log zerolog.Logger) *Handler {
	return &Handler{svc: svc, log: log}
}

// RegisterRoutes mounts the stats endpoint.
func (h *Handler) RegisterRoutes(g *echo.Group) {
	g.GET("/dashboard/stats", h.Stats)
}

func (h *Handler) Stats(c echo.Context) error {
	stats, err := h.svc.ComputeStats(c.Request().Context())
	if err != nil {
		h.log.Error().Err(err).Msg("computing dashboard stats failed")
		return echo.NewHTTPError(http.StatusBadGateway, "storage error")
	}
	return c.JSON(http.StatusOK, stats)
}
