package httpserver

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/avolkov/canteen/internal/logging"
	"github.com/avolkov/canteen/internal/service"
	"github.com/avolkov/canteen/internal/transport"
	"github.com/avolkov/canteen/internal/util"
)

type FoodHTTP struct {
	Svc *service.FoodService
}

func parseID(c echo.Context) (uint, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	return uint(id), nil
}

func (h *FoodHTTP) CreateFoodItem(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "food.create_food_item")

	var req transport.CreateFoodItemRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("create_food_item_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	item, err := h.Svc.CreateFoodItem(ctx, req)
	if err != nil {
		return httpError(l, "create_food_item", err)
	}

	c.Response().Header().Set("Location", "/api/food_items/"+strconv.FormatUint(uint64(item.ID), 10))
	l.Info("create_food_item_success", "foodID", item.ID)
	return c.JSON(http.StatusCreated, item)
}

func (h *FoodHTTP) GetFoodItem(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "food.get_food_item")

	id, err := parseID(c)
	if err != nil {
		return err
	}

	item, err := h.Svc.GetFoodItem(ctx, id)
	if err != nil {
		return httpError(l, "get_food_item", err)
	}
	return c.JSON(http.StatusOK, item)
}

func (h *FoodHTTP) GetFoodItems(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "food.get_food_items")

	page := util.ParseIntDefault(c.QueryParam("page"), 1)
	size := util.ParseIntDefault(c.QueryParam("size"), util.DefaultPageSize)
	offset, limit := util.Calculate(page, size)

	total, items, err := h.Svc.ListFoodItems(ctx, offset, limit)
	if err != nil {
		return httpError(l, "get_food_items", err)
	}

	return c.JSON(http.StatusOK, map[string]any{
		"data": items,
		"meta": map[string]any{
			"page":        page,
			"size":        limit,
			"total":       total,
			"total_pages": (total + int64(limit) - 1) / int64(limit),
			"has_prev":    page > 1,
			"has_next":    int64(offset+limit) < total,
		},
	})
}

func (h *FoodHTTP) PatchFoodItem(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "food.patch_food_item")

	id, err := parseID(c)
	if err != nil {
		return err
	}

	var req transport.PatchFoodItemRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("patch_food_item_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	item, err := h.Svc.PatchFoodItem(ctx, id, req)
	if err != nil {
		return httpError(l, "patch_food_item", err)
	}

	l.Info("patch_food_item_success", "foodID", item.ID)
	return c.JSON(http.StatusOK, item)
}

func (h *FoodHTTP) DeleteFoodItem(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "food.delete_food_item")

	id, err := parseID(c)
	if err != nil {
		return err
	}

	if err := h.Svc.DeleteFoodItem(ctx, id); err != nil {
		return httpError(l, "delete_food_item", err)
	}

	l.Info("delete_food_item_success", "foodID", id)
	return c.NoContent(http.StatusNoContent)
}

func (h *FoodHTTP) RestockFoodItem(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "food.restock_food_item")

	id, err := parseID(c)
	if err != nil {
		return err
	}

	var req transport.RestockRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("restock_food_item_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	item, err := h.Svc.Restock(ctx, id, req.Quantity)
	if err != nil {
		return httpError(l, "restock_food_item", err)
	}

	l.Info("restock_food_item_success", "foodID", item.ID, "stock", item.Stock)
	return c.JSON(http.StatusOK, item)
}
