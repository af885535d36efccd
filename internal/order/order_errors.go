package order

import (
	"net/http"

	"github.com/savindushenal/menuvibe-api/internal/pkg/apperror"
)

var (
	ErrInvalidOrderID          = apperror.New(apperror.CodeInvalidInput, "invalid order id", http.StatusBadRequest)
	ErrInvalidRestaurantID     = apperror.New(apperror.CodeInvalidInput, "invalid restaurant id", http.StatusBadRequest)
	ErrInvalidPayload          = apperror.New(apperror.CodeInvalidInput, "invalid order payload", http.StatusBadRequest)
	ErrCartEmpty               = apperror.New(apperror.CodeInvalidInput, "cart is empty", http.StatusBadRequest)
	ErrOrderNotFound           = apperror.New(apperror.CodeNotFound, "order not found", http.StatusNotFound)
	ErrNotOrderOwner           = apperror.New(apperror.CodeForbidden, "order belongs to another session", http.StatusForbidden)
	ErrInvalidStatusTransition = apperror.New(apperror.CodeConflict, "order status transition not allowed", http.StatusConflict)
	ErrCannotCancel            = apperror.New(apperror.CodeConflict, "order can no longer be cancelled", http.StatusConflict)
	ErrOrderFailed             = apperror.New(apperror.CodeInternalError, "order operation failed", http.StatusInternalServerError)
)
