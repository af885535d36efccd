package order

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/savindushenal/menuvibe-api/internal/pkg/response"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(svc Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("order.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("order.handler")
	}
	return &Handler{service: svc, logger: l}
}

func parsePaging(c *gin.Context) (int32, int32) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	return int32(page), int32(limit)
}

// ==================== STOREFRONT ENDPOINTS ====================

func (h *Handler) Checkout(c *gin.Context) {
	restaurantID, err := uuid.Parse(c.Param("restaurantId"))
	if err != nil {
		response.FromError(c, ErrInvalidRestaurantID)
		return
	}
	sessionID := c.GetString("session_id")

	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.FromError(c, ErrInvalidPayload)
		return
	}

	h.logger.Debug("http checkout request",
		zap.String("restaurant_id", restaurantID.String()),
		zap.String("session_id", sessionID))

	res, err := h.service.Checkout(c.Request.Context(), restaurantID, sessionID, req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, "order placed", res)
}

func (h *Handler) List(c *gin.Context) {
	restaurantID, err := uuid.Parse(c.Param("restaurantId"))
	if err != nil {
		response.FromError(c, ErrInvalidRestaurantID)
		return
	}
	page, limit := parsePaging(c)

	res, err := h.service.ListBySession(c.Request.Context(), restaurantID, c.GetString("session_id"), page, limit)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.SuccessWithPagination(c, http.StatusOK, "orders retrieved", res.Orders, paginationOf(res))
}

func (h *Handler) Detail(c *gin.Context) {
	restaurantID, err := uuid.Parse(c.Param("restaurantId"))
	if err != nil {
		response.FromError(c, ErrInvalidRestaurantID)
		return
	}
	orderID, err := uuid.Parse(c.Param("orderId"))
	if err != nil {
		response.FromError(c, ErrInvalidOrderID)
		return
	}

	res, err := h.service.Detail(c.Request.Context(), restaurantID, orderID, c.GetString("session_id"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "order retrieved", res)
}

func (h *Handler) Cancel(c *gin.Context) {
	restaurantID, err := uuid.Parse(c.Param("restaurantId"))
	if err != nil {
		response.FromError(c, ErrInvalidRestaurantID)
		return
	}
	orderID, err := uuid.Parse(c.Param("orderId"))
	if err != nil {
		response.FromError(c, ErrInvalidOrderID)
		return
	}

	if err := h.service.Cancel(c.Request.Context(), restaurantID, orderID, c.GetString("session_id")); err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "order cancelled", nil)
}

// ==================== DASHBOARD ENDPOINTS ====================

func (h *Handler) ListByRestaurant(c *gin.Context) {
	restaurantID, err := uuid.Parse(c.Param("restaurantId"))
	if err != nil {
		response.FromError(c, ErrInvalidRestaurantID)
		return
	}
	page, limit := parsePaging(c)

	res, err := h.service.ListByRestaurant(c.Request.Context(), restaurantID, c.Query("status"), page, limit)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.SuccessWithPagination(c, http.StatusOK, "orders retrieved", res.Orders, paginationOf(res))
}

func (h *Handler) DashboardDetail(c *gin.Context) {
	restaurantID, err := uuid.Parse(c.Param("restaurantId"))
	if err != nil {
		response.FromError(c, ErrInvalidRestaurantID)
		return
	}
	orderID, err := uuid.Parse(c.Param("orderId"))
	if err != nil {
		response.FromError(c, ErrInvalidOrderID)
		return
	}

	res, err := h.service.Detail(c.Request.Context(), restaurantID, orderID, "")
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "order retrieved", res)
}

func (h *Handler) UpdateStatus(c *gin.Context) {
	restaurantID, err := uuid.Parse(c.Param("restaurantId"))
	if err != nil {
		response.FromError(c, ErrInvalidRestaurantID)
		return
	}
	orderID, err := uuid.Parse(c.Param("orderId"))
	if err != nil {
		response.FromError(c, ErrInvalidOrderID)
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.FromError(c, ErrInvalidPayload)
		return
	}

	res, err := h.service.UpdateStatus(c.Request.Context(), restaurantID, orderID, req.Status)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "order status updated", res)
}

func paginationOf(res ListOrderResponse) response.Pagination {
	totalPages := 0
	if res.Limit > 0 {
		totalPages = int((res.Total + int64(res.Limit) - 1) / int64(res.Limit))
	}
	return response.Pagination{
		Page:            int(res.Page),
		PageSize:        int(res.Limit),
		TotalItems:      res.Total,
		TotalPages:      totalPages,
		HasNextPage:     int(res.Page) < totalPages,
		HasPreviousPage: res.Page > 1,
	}
}
