package appointments

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/homeoclinic/clinic-api/pkg/pagination"
)

// Handler exposes the appointment book over HTTP.
type Handler struct {
	svc *Service
}

// NewHandler creates the handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes mounts the staff-facing appointment endpoints.
func (h *Handler) RegisterRoutes(g *echo.Group) {
	g.GET("/appointments", h.List)
	g.GET("/appointments/:id", h.Get)
	g.POST("/appointments", h.Save)
	g.PATCH("/appointments/:id/status", h.SetStatus)
	g.DELETE("/appointments/:id", h.Delete)
}

// RegisterPublicRoutes mounts the unauthenticated booking endpoint used
// by the clinic's public site.
func (h *Handler) RegisterPublicRoutes(g *echo.Group) {
	g.POST("/bookings", h.Book)
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
	a, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		return writeError(err)
	}
	return c.JSON(http.StatusOK, a)
}

func (h *Handler) Save(c echo.Context) error {
	var req Appointment
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	a, err := h.svc.Save(c.Request().Context(), req)
	if err != nil {
		return writeError(err)
	}
	return c.JSON(http.StatusOK, a)
}

func (h *Handler) Book(c echo.Context) error {
	var req Appointment
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	a, err := h.svc.Book(c.Request().Context(), req)
	if err != nil {
		return writeError(err)
	}
	return c.JSON(http.StatusCreated, a)
}

type statusRequest struct {
	Status Status `json:"status"`
}

func (h *Handler) SetStatus(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	var req statusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := h.svc.SetStatus(c.Request().Context(), id, req.Status); err != nil {
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
		errors.Is(err, ErrMobileRequired),
		errors.Is(err, ErrDateRequired),
		errors.Is(err, ErrTimeRequired),
		errors.Is(err, ErrInvalidStatus),
		errors.Is(err, ErrInvalidKind):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return echo.NewHTTPError(http.StatusBadGateway, "storage error")
	}
}
