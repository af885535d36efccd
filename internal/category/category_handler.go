package category

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

func (h *Handler) Create(c *gin.Context) {
	var req CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "BAD_REQUEST", "Invalid category payload", err.Error())
		return
	}

	res, err := h.service.Create(c, c.Param("restaurantId"), req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, "Category created", res)
}

func (h *Handler) Rename(c *gin.Context) {
	var req RenameCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "BAD_REQUEST", "Invalid category payload", err.Error())
		return
	}

	res, err := h.service.Rename(c, c.Param("categoryId"), req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Category renamed", res)
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c, c.Param("categoryId")); err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Category deleted", nil)
}
