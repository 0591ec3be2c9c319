package handler

import (
	"net/http"

	"github.com/Astemirdum/library-portal/portal/internal/model"
	"github.com/labstack/echo/v4"
)

func (h *Handler) Home(c echo.Context) error {
	return c.Render(http.StatusOK, "index.html", nil)
}

func (h *Handler) SignupForm(c echo.Context) error {
	return c.Render(http.StatusOK, "signup.html", model.AuthPage{})
}

func (h *Handler) LoginForm(c echo.Context) error {
	return c.Render(http.StatusOK, "login.html", model.AuthPage{})
}

func (h *Handler) ReturnForm(c echo.Context) error {
	return c.Render(http.StatusOK, "return.html", nil)
}

// Dashboard and Browse take identity from query parameters, not the session,
// and bounce to the login form when either is missing.

func (h *Handler) Dashboard(c echo.Context) error {
	username := c.QueryParam("username")
	userID := c.QueryParam("user_id")
	if username == "" || userID == "" {
		return c.Redirect(http.StatusFound, "/login")
	}
	return c.Render(http.StatusOK, "dashboard.html", model.DashboardPage{
		Username: username,
		UserID:   userID,
	})
}

func (h *Handler) Browse(c echo.Context) error {
	username := c.QueryParam("username")
	userID := c.QueryParam("user_id")
	if username == "" || userID == "" {
		return c.Redirect(http.StatusFound, "/login")
	}
	return c.Render(http.StatusOK, "browse.html", model.BrowsePage{
		Username: username,
		UserID:   userID,
	})
}
