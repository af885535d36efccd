package restaurant

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/savindushenal/menuvibe-api/internal/pkg/response"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) GetBySlug(c *gin.Context) {
	res, err := h.service.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "restaurant retrieved", res)
}

func (h *Handler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("restaurantId"))
	if err != nil {
		response.FromError(c, ErrInvalidRestaurantID)
		return
	}

	res, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "restaurant retrieved", res)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.FromError(c, ErrInvalidPayload)
		return
	}

	res, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, "restaurant created", res)
}

func (h *Handler) UpdateTheme(c *gin.Context) {
	id, err := uuid.Parse(c.Param("restaurantId"))
	if err != nil {
		response.FromError(c, ErrInvalidRestaurantID)
		return
	}

	var req UpdateThemeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.FromError(c, ErrInvalidPayload)
		return
	}

	res, err := h.service.UpdateTheme(c.Request.Context(), id, req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "theme updated", res)
}
