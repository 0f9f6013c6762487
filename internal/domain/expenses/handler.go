package expenses

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/homeoclinic/clinic-api/pkg/pagination"
)

// Handler exposes the expense book over HTTP.
type Handler struct {
	svc *Service
}

// NewHandler creates the handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes mounts the expense endpoints.
func (h *Handler) RegisterRoutes(g *echo.Group) {
	g.GET("/expenses", h.List)
	g.POST("/expenses", h.Record)
	g.DELETE("/expenses/:id", h.Delete)
}

func (h *Handler) List(c echo.Context) error {
	items := h.svc.List(c.Request().Context())
	params := pagination.FromContext(c)
	page := pagination.Apply(items, params)
	return c.JSON(http.StatusOK, pagination.NewResponse(page, len(items), params))
}

func (h *Handler) Record(c echo.Context) error {
	var req CreateExpense
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	e, err := h.svc.Record(c.Request().Context(), req)
	if err != nil {
		return writeError(err)
	}
	return c.JSON(http.StatusCreated, e)
}

func (h *Handler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if err := h.svc.Delete(c.Request().Context(), id); err != nil {
		return writeError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func writeError(err error) *echo.HTTPError {
	switch {
	case errors.Is(err, ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, ErrNotFound.Error())
	case errors.Is(err, ErrTitleRequired),
		errors.Is(err, ErrDateRequired),
		errors.Is(err, ErrNegativeAmount):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return echo.NewHTTPError(http.StatusBadGateway, "storage error")
	}
}
