package menu

import (
	"net/http"

	"github.com/savindushenal/menuvibe-api/internal/pkg/apperror"
)

var (
	ErrInvalidItemID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid menu item id",
		http.StatusBadRequest,
	)

	ErrInvalidRestaurantID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid restaurant id",
		http.StatusBadRequest,
	)

	ErrInvalidPayload = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid menu item payload",
		http.StatusBadRequest,
	)

	ErrItemNotFound = apperror.New(
		apperror.CodeNotFound,
		"Menu item not found",
		http.StatusNotFound,
	)

	ErrNegativePrice = apperror.New(
		apperror.CodeInvalidInput,
		"Prices must not be negative",
		http.StatusBadRequest,
	)

	ErrDuplicateVariation = apperror.New(
		apperror.CodeInvalidInput,
		"Variation names must be unique within an item",
		http.StatusBadRequest,
	)

	ErrDuplicateCustomization = apperror.New(
		apperror.CodeInvalidInput,
		"Customization names must be unique within an item",
		http.StatusBadRequest,
	)

	ErrMenuFailed = apperror.New(
		apperror.CodeInternalError,
		"Failed to process menu operation",
		http.StatusInternalServerError,
	)
)
