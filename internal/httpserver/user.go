package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/avolkov/canteen/internal/logging"
	"github.com/avolkov/canteen/internal/service"
	"github.com/avolkov/canteen/internal/transport"
)

type UserHTTP struct {
	Svc *service.UserService
}

func (h *UserHTTP) CreateUser(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "user.create_user")

	var req transport.CreateUserRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("create_user_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	user, err := h.Svc.CreateUser(ctx, req)
	if err != nil {
		return httpError(l, "create_user", err)
	}

	l.Info("create_user_success", "userID", user.ID)
	return c.JSON(http.StatusCreated, user)
}

func (h *UserHTTP) GetUsers(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "user.get_users")

	users, err := h.Svc.ListUsers(ctx)
	if err != nil {
		return httpError(l, "get_users", err)
	}
	return c.JSON(http.StatusOK, users)
}
