package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/abhiburugu8586/StudentMart/internal/logging"
	authmw "github.com/abhiburugu8586/StudentMart/internal/middleware/auth"
	"github.com/abhiburugu8586/StudentMart/internal/service"
	"github.com/abhiburugu8586/StudentMart/internal/util"
)

type OrderHandler struct {
	Orders *service.OrderService
}

func (h *OrderHandler) ListOrders(c echo.Context) error {
	ctx := c.Request().Context()

	userID, err := authmw.UserID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	page := parseIntDefault(c.QueryParam("page"), 1)
	size := parseIntDefault(c.QueryParam("size"), util.DefaultPageSize)
	offset, limit := util.Calculate(page, size)

	orders, err := h.Orders.ListOrdersForUser(ctx, userID, limit, offset)
	if err != nil {
		logging.FromContext(ctx).Error("list_orders_error", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	return c.JSON(http.StatusOK, orders)
}

// GetOrder returns the order header plus its line items. A requester who does
// not own the order gets the same not-found answer as for a missing id.
func (h *OrderHandler) GetOrder(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.get")

	userID, err := authmw.UserID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	orderID, err := parseUintParam(c, "id")
	if err != nil {
		return err
	}

	order, err := h.Orders.GetOrder(ctx, orderID)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "order not found")
		}
		l.Error("get_order_error", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}
	if order.UserID != userID {
		return echo.NewHTTPError(http.StatusNotFound, "order not found")
	}

	items, err := h.Orders.GetOrderItems(ctx, orderID)
	if err != nil {
		l.Error("get_order_items_error", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	return c.JSON(http.StatusOK, echo.Map{
		"order": order,
		"items": items,
	})
}
