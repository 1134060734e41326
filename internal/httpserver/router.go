package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type Deps struct {
	UserHandler   *UserHTTP
	FoodHandler   *FoodHTTP
	OrderHandler  *OrderHTTP
	SearchHandler *SearchHTTP
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	api := e.Group("/api")

	api.POST("/users", d.UserHandler.CreateUser)
	api.GET("/users", d.UserHandler.GetUsers)

	food := api.Group("/food_items")
	food.POST("", d.FoodHandler.CreateFoodItem)
	food.GET("", d.FoodHandler.GetFoodItems)
	if d.SearchHandler != nil && d.SearchHandler.ES != nil {
		food.GET("/search", d.SearchHandler.SearchFoodItems)
	}
	food.GET("/:id", d.FoodHandler.GetFoodItem)
	food.PATCH("/:id", d.FoodHandler.PatchFoodItem)
	food.DELETE("/:id", d.FoodHandler.DeleteFoodItem)
	food.POST("/:id/restock", d.FoodHandler.RestockFoodItem)

	orders := api.Group("/orders")
	orders.POST("", d.OrderHandler.CreateOrder)
	orders.GET("", d.OrderHandler.GetOrders)
	orders.GET("/:id", d.OrderHandler.GetOrder)
}
