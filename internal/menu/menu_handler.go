package menu

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/savindushenal/menuvibe-api/internal/pkg/response"
)

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

// ListPublic serves the storefront menu with overrides applied.
// GET /restaurants/:restaurantId/menu
func (h *Handler) ListPublic(c *gin.Context) {
	res, err := h.service.ListPublic(c, c.Param("restaurantId"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "", res)
}

func (h *Handler) List(c *gin.Context) {
	res, err := h.service.List(c, c.Param("restaurantId"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "", res)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "BAD_REQUEST", "Invalid menu item payload", err.Error())
		return
	}

	res, err := h.service.Create(c, c.Param("restaurantId"), req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, "Menu item created", res)
}

func (h *Handler) Update(c *gin.Context) {
	var req UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "BAD_REQUEST", "Invalid menu item payload", err.Error())
		return
	}

	res, err := h.service.Update(c, c.Param("itemId"), req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Menu item updated", res)
}

func (h *Handler) SetAvailability(c *gin.Context) {
	var req SetAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.IsAvailable == nil {
		response.Error(c, http.StatusBadRequest, "BAD_REQUEST", "isAvailable is required", nil)
		return
	}

	if err := h.service.SetAvailability(c, c.Param("itemId"), *req.IsAvailable); err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Availability updated", nil)
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c, c.Param("itemId")); err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Menu item deleted", nil)
}
