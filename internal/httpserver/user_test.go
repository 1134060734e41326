package httpserver

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/avolkov/canteen/internal/models"
	"github.com/avolkov/canteen/internal/transport"
)

func TestCreateUserHandler(t *testing.T) {
	env := newTestEnv(t)

	body := transport.CreateUserRequest{Name: "Alice", Email: "alice@example.com", Password: "secret"}
	rec, c := env.doJSONRequest(http.MethodPost, "/api/users", body)
	require.NoError(t, env.U.CreateUser(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	var user models.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &user))
	require.Equal(t, "Alice", user.Name)
	require.Equal(t, models.RoleCustomer, user.Role)

	// password must never be serialized
	require.False(t, strings.Contains(rec.Body.String(), "secret"))
}

func TestCreateUserHandler_DuplicateEmail(t *testing.T) {
	env := newTestEnv(t)
	env.seedUser()

	body := transport.CreateUserRequest{Name: "Other", Email: "test_user@example.com", Password: "x"}
	_, c := env.doJSONRequest(http.MethodPost, "/api/users", body)
	requireHTTPError(t, env.U.CreateUser(c), http.StatusConflict)
}

func TestGetUsersHandler(t *testing.T) {
	env := newTestEnv(t)
	env.seedUser()

	rec, c := env.doJSONRequest(http.MethodGet, "/api/users", nil)
	require.NoError(t, env.U.GetUsers(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var users []models.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &users))
	require.Len(t, users, 1)
	require.Equal(t, "test_user", users[0].Name)
}
