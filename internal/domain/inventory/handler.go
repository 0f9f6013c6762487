package inventory

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/homeoclinic/clinic-api/pkg/pagination"
)

// Handler exposes the remedy stock over HTTP.
type Handler struct {
	svc *Service
}

// NewHandler creates the handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes mounts the inventory endpoints.
func (h *Handler) RegisterRoutes(g *echo.Group) {
	g.GET("/inventory", h.List)
	g.GET("/inventory/:id", h.Get)
	g.POST("/inventory", h.Stock)
	g.PUT("/inventory/:id", h.Update)
	g.DELETE("/inventory/:id", h.Delete)
}

func (h *Handler) List(c echo.Context) error {
	items := h.svc.List(c.Request().Context())
	params := pagination.FromContext(c)
	page := pagination.Apply(items, params)
	return c.JSON(http.StatusOK, pagination.NewResponse(page, len(items), params))
}

func (h *Handler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	item, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		return writeError(err)
	}
	return c.JSON(http.StatusOK, item)
}

func (h *Handler) Stock(c echo.Context) error {
	var req CreateItem
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	item, err := h.svc.Stock(c.Request().Context(), req)
	if err != nil {
		return writeError(err)
	}
	return c.JSON(http.StatusCreated, item)
}

func (h *Handler) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	var patch Patch
	if err := c.Bind(&patch); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := h.svc.Update(c.Request().Context(), id, patch); err != nil {
		return writeError(err)
	}
	return c.NoContent(http.StatusNoContent)
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
	case errors.Is(err, ErrNameRequired),
		errors.Is(err, ErrInvalidKind),
		errors.Is(err, ErrNegativeQuantity):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return echo.NewHTTPError(http.StatusBadGateway, "storage error")
	}
}
