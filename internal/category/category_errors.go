package category

import (
	"net/http"

	"github.com/savindushenal/menuvibe-api/internal/pkg/apperror"
)

var (
	ErrInvalidRestaurantID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid restaurant id",
		http.StatusBadRequest,
	)

	ErrInvalidCategoryID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid category id",
		http.StatusBadRequest,
	)

	ErrCategoryNotFound = apperror.New(
		apperror.CodeNotFound,
		"Category not found",
		http.StatusNotFound,
	)
)
