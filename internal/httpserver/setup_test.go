package httpserver

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/avolkov/canteen/internal/config"
	"github.com/avolkov/canteen/internal/models"
	"github.com/avolkov/canteen/internal/repo"
	"github.com/avolkov/canteen/internal/service"
)

type testEnv struct {
	T  *testing.T
	E  *echo.Echo
	DB *gorm.DB
	U  *UserHTTP
	F  *FoodHTTP
	O  *OrderHTTP
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect to in-memory db: %v", err)
	}
	if err := config.Migrate(db); err != nil {
		t.Fatalf("failed to migrate tables: %v", err)
	}

	r := repo.New(db)
	return &testEnv{
		T:  t,
		E:  echo.New(),
		DB: db,
		U:  &UserHTTP{Svc: &service.UserService{Repo: r}},
		F:  &FoodHTTP{Svc: &service.FoodService{Repo: r}},
		O:  &OrderHTTP{Svc: &service.OrderService{Repo: r}},
	}
}

func (env *testEnv) doJSONRequest(method, path string, body interface{}) (*httptest.ResponseRecorder, echo.Context) {
	var buf bytes.Buffer
	if body != nil {
		require.NoError(env.T, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := env.E.NewContext(req, rec)
	return rec, c
}

func (env *testEnv) seedUser() *models.User {
	user := models.User{Name: "test_user", Email: "test_user@example.com", Password: "password", Role: models.RoleCustomer}
	require.NoError(env.T, env.DB.Create(&user).Error)
	return &user
}

func (env *testEnv) seedFood(name string, price float64, stock int) *models.FoodItem {
	item := models.FoodItem{Name: name, Price: price, Category: "Drinks", Stock: stock}
	require.NoError(env.T, env.DB.Create(&item).Error)
	return &item
}

func requireHTTPError(t *testing.T, err error, code int) {
	t.Helper()
	require.Error(t, err)
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok, "expected *echo.HTTPError, got %T", err)
	require.Equal(t, code, he.Code)
}
