package override

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

	ErrInvalidItemID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid menu item id",
		http.StatusBadRequest,
	)

	ErrNegativePrice = apperror.New(
		apperror.CodeInvalidInput,
		"Override price must not be negative",
		http.StatusBadRequest,
	)

	ErrOverrideFailed = apperror.New(
		apperror.CodeInternalError,
		"Failed to process override operation",
		http.StatusInternalServerError,
	)
)
