package cart

import (
	"net/http"

	"github.com/savindushenal/menuvibe-api/internal/pkg/apperror"
)

var (
	ErrInvalidRestaurantID = apperror.New(apperror.CodeInvalidInput, "invalid restaurant id", http.StatusBadRequest)
	ErrInvalidPayload      = apperror.New(apperror.CodeInvalidInput, "invalid cart payload", http.StatusBadRequest)
	ErrItemUnavailable     = apperror.New(apperror.CodeConflict, "item is not available", http.StatusConflict)
	ErrUnknownSelection    = apperror.New(apperror.CodeInvalidInput, "selected variation or customization does not exist on this item", http.StatusBadRequest)
	ErrCatalogConflict     = apperror.New(apperror.CodeCatalogMismatch, "cart references an item missing from the menu", http.StatusConflict)
	ErrCartFailed          = apperror.New(apperror.CodeInternalError, "cart operation failed", http.StatusInternalServerError)
)
