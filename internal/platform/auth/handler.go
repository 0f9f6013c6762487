package auth

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// Handler exposes login/logout over HTTP.
type Handler struct {
	mgr *Manager
}

// NewHandler creates an auth handler.
func NewHandler(mgr *Manager) *Handler {
	return &Handler{mgr: mgr}
}

// RegisterRoutes mounts the session endpoints. login must stay outside the
// session middleware; logout sits behind it.
func (h *Handler) RegisterRoutes(public, protected *echo.Group) {
	public.POST("/auth/login", h.Login)
	protected.POST("/auth/logout", h.Logout)
}

type loginRequest struct {
	PIN string `json:"pin"`
}

type loginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Login exchanges the clinic PIN for a session token.
func (h *Handler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	token, expiresAt, err := h.mgr.Login(req.PIN)
	if err != nil {
		if errors.Is(err, ErrInvalidPIN) {
			return echo.NewHTTPError(http.StatusUnauthorized, "incorrect PIN")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "could not create session")
	}
	return c.JSON(http.StatusOK, loginResponse{Token: token, ExpiresAt: expiresAt})
}

// Logout revokes the calling session's token.
func (h *Handler) Logout(c echo.Context) error {
	h.mgr.Logout(bearerToken(c.Request().Header.Get("Authorization")))
	return c.NoContent(http.StatusNoContent)
}
