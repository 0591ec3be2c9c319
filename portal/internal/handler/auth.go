package handler

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/Astemirdum/library-portal/portal/internal/errs"
	"github.com/Astemirdum/library-portal/portal/internal/model"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

func (h *Handler) SignUp(c echo.Context) error {
	var req model.SignupRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return c.Render(http.StatusOK, "signup.html", model.AuthPage{Message: "All fields are required."})
	}
	if req.Password != req.ConfirmPassword {
		return c.Render(http.StatusOK, "signup.html", model.AuthPage{Message: "Passwords do not match."})
	}

	err := h.portalSvc.SignUp(c.Request().Context(), model.User{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, errs.ErrUsernameTaken) {
			return c.Render(http.StatusOK, "signup.html", model.AuthPage{Message: "Username already exists."})
		}
		h.log.Error("signup", zap.String("username", req.Username), zap.Error(err))
		return c.Render(http.StatusOK, "signup.html", model.AuthPage{Message: "Signup failed."})
	}
	return c.Redirect(http.StatusFound, "/login")
}

func (h *Handler) Login(c echo.Context) error {
	var req model.LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return c.Render(http.StatusOK, "login.html", model.AuthPage{Message: "All fields are required."})
	}

	user, err := h.portalSvc.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, errs.ErrInvalidCredentials) {
			return c.Render(http.StatusOK, "login.html", model.AuthPage{Message: "Invalid credentials."})
		}
		h.log.Error("login", zap.String("username", req.Username), zap.Error(err))
		return c.Render(http.StatusOK, "login.html", model.AuthPage{Message: "Database error."})
	}

	sess, err := session.Get(sessionName, c)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	sess.Values["user_id"] = user.UserID
	sess.Values["username"] = user.Username
	if err := sess.Save(c.Request(), c.Response()); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	q := url.Values{}
	q.Set("username", user.Username)
	q.Set("user_id", fmt.Sprint(user.UserID))
	return c.Redirect(http.StatusFound, "/dashboard?"+q.Encode())
}

func (h *Handler) Profile(c echo.Context) error {
	sess, err := session.Get(sessionName, c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Not logged in"})
	}
	userID, ok := sess.Values["user_id"].(int)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Not logged in"})
	}

	user, err := h.portalSvc.Profile(c.Request().Context(), userID)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "User not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Database error"})
	}
	return c.JSON(http.StatusOK, user)
}
