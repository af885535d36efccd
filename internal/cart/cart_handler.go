package cart

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/savindushenal/menuvibe-api/internal/pkg/response"
)

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

func requestScope(c *gin.Context) (uuid.UUID, string, bool) {
	restaurantID, err := uuid.Parse(c.Param("restaurantId"))
	if err != nil {
		response.FromError(c, ErrInvalidRestaurantID)
		return uuid.Nil, "", false
	}
	return restaurantID, c.GetString("session_id"), true
}

func (h *Handler) Detail(c *gin.Context) {
	restaurantID, sessionID, ok := requestScope(c)
	if !ok {
		return
	}

	res, err := h.service.Detail(c.Request.Context(), restaurantID, sessionID)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "cart retrieved", res)
}

func (h *Handler) Count(c *gin.Context) {
	restaurantID, sessionID, ok := requestScope(c)
	if !ok {
		return
	}

	count, err := h.service.Count(c.Request.Context(), restaurantID, sessionID)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "cart counted", gin.H{"count": count})
}

func (h *Handler) AddItem(c *gin.Context) {
	restaurantID, sessionID, ok := requestScope(c)
	if !ok {
		return
	}

	var req AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.FromError(c, ErrInvalidPayload)
		return
	}

	res, err := h.service.AddItem(c.Request.Context(), restaurantID, sessionID, req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, "item added", res)
}

func (h *Handler) UpdateQuantity(c *gin.Context) {
	restaurantID, sessionID, ok := requestScope(c)
	if !ok {
		return
	}

	var req UpdateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.FromError(c, ErrInvalidPayload)
		return
	}

	res, err := h.service.UpdateQuantity(c.Request.Context(), restaurantID, sessionID, c.Param("lineKey"), req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "quantity updated", res)
}

func (h *Handler) RemoveLine(c *gin.Context) {
	restaurantID, sessionID, ok := requestScope(c)
	if !ok {
		return
	}

	res, err := h.service.RemoveLine(c.Request.Context(), restaurantID, sessionID, c.Param("lineKey"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "line removed", res)
}

func (h *Handler) Clear(c *gin.Context) {
	restaurantID, sessionID, ok := requestScope(c)
	if !ok {
		return
	}

	if err := h.service.Clear(c.Request.Context(), restaurantID, sessionID); err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "cart cleared", nil)
}
