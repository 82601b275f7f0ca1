package handlers

import (
	"net/http"

	"github.com/elastic/go-elasticsearch/v9"
	"github.com/labstack/echo/v4"

	"github.com/abhiburugu8586/StudentMart/internal/logging"
	"github.com/abhiburugu8586/StudentMart/internal/service"
	"github.com/abhiburugu8586/StudentMart/internal/service/search"
	"github.com/abhiburugu8586/StudentMart/internal/util"
)

type SearchHandler struct {
	ES      *elasticsearch.Client
	Index   string
	Catalog *service.CatalogService
}

// Search answers keyword queries from Elasticsearch when a client is
// configured, otherwise from a plain catalog name match.
func (h *SearchHandler) Search(c echo.Context) error {
	ctx := c.Request().Context()

	q := c.QueryParam("q")
	if q == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "query required")
	}

	page := parseIntDefault(c.QueryParam("page"), 1)
	size := parseIntDefault(c.QueryParam("size"), util.DefaultPageSize)
	from, limit := util.Calculate(page, size)

	if h.ES == nil {
		products, err := h.Catalog.SearchProducts(ctx, q, limit)
		if err != nil {
			logging.FromContext(ctx).Error("search_error", "error", err)
			return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
		}
		return c.JSON(http.StatusOK, echo.Map{"total": len(products), "products": products})
	}

	total, products, err := search.Search(ctx, h.ES, h.Index, q, from, limit)
	if err != nil {
		logging.FromContext(ctx).Error("search_error", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}
	return c.JSON(http.StatusOK, echo.Map{"total": total, "products": products})
}
