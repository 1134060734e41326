package httpserver

import (
	"net/http"

	"github.com/elastic/go-elasticsearch/v9"
	"github.com/labstack/echo/v4"

	"github.com/avolkov/canteen/internal/logging"
	"github.com/avolkov/canteen/internal/service/search"
	"github.com/avolkov/canteen/internal/util"
)

type SearchHTTP struct {
	ES    *elasticsearch.Client
	Index string
}

func (h *SearchHTTP) SearchFoodItems(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "food.search_food_items")

	q := c.QueryParam("q")
	if q == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "query required")
	}

	page := util.ParseIntDefault(c.QueryParam("page"), 1)
	size := util.ParseIntDefault(c.QueryParam("size"), util.DefaultPageSize)
	from, limit := util.Calculate(page, size)

	total, items, err := search.Search(ctx, h.ES, h.Index, q, from, limit)
	if err != nil {
		l.Error("search_food_items_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "search error")
	}
	return c.JSON(http.StatusOK, echo.Map{"total": total, "food_items": items})
}
