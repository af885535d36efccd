package override

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

func (h *Handler) List(c *gin.Context) {
	res, err := h.service.List(c, c.Param("restaurantId"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "", res)
}

func (h *Handler) Set(c *gin.Context) {
	var req SetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "BAD_REQUEST", "Invalid override payload", err.Error())
		return
	}

	res, err := h.service.Set(c, c.Param("restaurantId"), c.Param("itemId"), req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Override saved", res)
}

func (h *Handler) Clear(c *gin.Context) {
	if err := h.service.Clear(c, c.Param("restaurantId"), c.Param("itemId")); err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Override cleared", nil)
}
