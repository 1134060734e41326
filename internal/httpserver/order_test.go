package httpserver

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/avolkov/canteen/internal/transport"
)

func TestCreateOrderHandler(t *testing.T) {
	env := newTestEnv(t)
	user := env.seedUser()
	tea := env.seedFood("Tea", 10, 5)

	body := transport.CreateOrderRequest{
		UserID: user.ID,
		Items:  []transport.CreateOrderItem{{FoodItemID: tea.ID, Quantity: 3}},
	}
	rec, c := env.doJSONRequest(http.MethodPost, "/api/orders", body)
	require.NoError(t, env.O.CreateOrder(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	var inv transport.Invoice
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &inv))
	require.Equal(t, user.Name, inv.CustomerName)
	require.Equal(t, float64(30), inv.TotalAmount)
	require.Len(t, inv.Items, 1)
	require.Equal(t, "Tea", inv.Items[0].FoodItem)
}

func TestCreateOrderHandler_EmptyItems(t *testing.T) {
	env := newTestEnv(t)
	user := env.seedUser()

	body := transport.CreateOrderRequest{UserID: user.ID}
	_, c := env.doJSONRequest(http.MethodPost, "/api/orders", body)
	requireHTTPError(t, env.O.CreateOrder(c), http.StatusBadRequest)
}

func TestCreateOrderHandler_UnknownFood(t *testing.T) {
	env := newTestEnv(t)
	user := env.seedUser()

	body := transport.CreateOrderRequest{
		UserID: user.ID,
		Items:  []transport.CreateOrderItem{{FoodItemID: 999, Quantity: 1}},
	}
	_, c := env.doJSONRequest(http.MethodPost, "/api/orders", body)
	requireHTTPError(t, env.O.CreateOrder(c), http.StatusNotFound)
}

func TestCreateOrderHandler_InsufficientStock(t *testing.T) {
	env := newTestEnv(t)
	user := env.seedUser()
	tea := env.seedFood("Tea", 10, 2)

	body := transport.CreateOrderRequest{
		UserID: user.ID,
		Items:  []transport.CreateOrderItem{{FoodItemID: tea.ID, Quantity: 3}},
	}
	_, c := env.doJSONRequest(http.MethodPost, "/api/orders", body)
	requireHTTPError(t, env.O.CreateOrder(c), http.StatusConflict)
}

func TestGetOrderHandler(t *testing.T) {
	env := newTestEnv(t)
	user := env.seedUser()
	tea := env.seedFood("Tea", 10, 5)

	body := transport.CreateOrderRequest{
		UserID: user.ID,
		Items:  []transport.CreateOrderItem{{FoodItemID: tea.ID, Quantity: 1}},
	}
	rec, c := env.doJSONRequest(http.MethodPost, "/api/orders", body)
	require.NoError(t, env.O.CreateOrder(c))

	var created transport.Invoice
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

	rec, c = env.doJSONRequest(http.MethodGet, "/api/orders/1", nil)
	c.SetParamNames("id")
	c.SetParamValues("1")
	require.NoError(t, env.O.GetOrder(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var got transport.Invoice
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, created.OrderID, got.OrderID)
	require.Equal(t, created.TotalAmount, got.TotalAmount)
}

func TestGetOrderHandler_NotFound(t *testing.T) {
	env := newTestEnv(t)

	_, c := env.doJSONRequest(http.MethodGet, "/api/orders/42", nil)
	c.SetParamNames("id")
	c.SetParamValues("42")
	requireHTTPError(t, env.O.GetOrder(c), http.StatusNotFound)
}

func TestGetOrdersHandler(t *testing.T) {
	env := newTestEnv(t)
	user := env.seedUser()
	tea := env.seedFood("Tea", 10, 5)

	body := transport.CreateOrderRequest{
		UserID: user.ID,
		Items:  []transport.CreateOrderItem{{FoodItemID: tea.ID, Quantity: 2}},
	}
	_, c := env.doJSONRequest(http.MethodPost, "/api/orders", body)
	require.NoError(t, env.O.CreateOrder(c))

	rec, c := env.doJSONRequest(http.MethodGet, "/api/orders", nil)
	require.NoError(t, env.O.GetOrders(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var got []transport.Invoice
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 1)
	require.Equal(t, float64(20), got[0].TotalAmount)
}
