package visits

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/homeoclinic/clinic-api/pkg/pagination"
)

// Handler exposes the visit history over HTTP.
type Handler struct {
	svc *Service
}

// NewHandler creates the handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes mounts the visit endpoints.
func (h *Handler) RegisterRoutes(g *echo.Group) {
	g.GET("/visits", h.List)
	g.GET("/visits/:id", h.Get)
	g.POST("/visits", h.Record)
}

// List returns visits, filtered to one patient when ?patientId= is set.
func (h *Handler) List(c echo.Context) error {
	var patientID *uuid.UUID
	if raw := c.QueryParam("patientId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid patientId")
		}
		patientID = &id
	}
	items := h.svc.List(c.Request().Context(), patientID)
	params := pagination.FromContext(c)
	page := pagination.Apply(items, params)
	return c.JSON(http.StatusOK, pagination.NewResponse(page, len(items), params))
}

func (h *Handler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	v, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		return writeError(err)
	}
	return c.JSON(http.StatusOK, v)
}

func (h *Handler) Record(c echo.Context) error {
	var req CreateVisit
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	v, err := h.svc.Record(c.Request().Context(), req)
	if err != nil {
		return writeError(err)
	}
	return c.JSON(http.StatusCreated, v)
}

func writeError(err error) *echo.HTTPError {
	switch {
	case errors.Is(err, ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, ErrNotFound.Error())
	case errors.Is(err, ErrPatientRequired),
		errors.Is(err, ErrPatientNotFound),
		errors.Is(err, ErrDateRequired),
		errors.Is(err, ErrNegativeFees):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return echo.NewHTTPError(http.StatusBadGateway, "storage error")
	}
}
