package advice

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Handler exposes the AI text endpoints. A nil service means no API key is
// configured; the endpoints then answer 503.
type Handler struct {
	svc *Service
}

// NewHandler creates the handler. svc may be nil.
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes mounts the AI endpoints on a session-protected group.
func (h *Handler) RegisterRoutes(g *echo.Group) {
	g.POST("/ai/advice", h.HealthAdvice)
	g.POST("/ai/summary", h.SummarizeNotes)
}

type adviceRequest struct {
	Symptoms  string `json:"symptoms"`
	Diagnosis string `json:"diagnosis"`
}

type summaryRequest struct {
	Notes string `json:"notes"`
}

type textResponse struct {
	Text string `json:"text"`
}

// HealthAdvice returns lifestyle recommendations for the given visit facts.
func (h *Handler) HealthAdvice(c echo.Context) error {
	if h.svc == nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "AI assistant is not configured")
	}
	var req adviceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	text := h.svc.HealthAdvice(c.Request().Context(), req.Symptoms, req.Diagnosis)
	return c.JSON(http.StatusOK, textResponse{Text: text})
}

// SummarizeNotes condenses free-text notes.
func (h *Handler) SummarizeNotes(c echo.Context) error {
	if h.svc == nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "AI assistant is not configured")
	}
	var req summaryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	text := h.svc.SummarizeNotes(c.Request().Context(), req.Notes)
	return c.JSON(http.StatusOK, textResponse{Text: text})
}
