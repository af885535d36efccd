package restaurant

import (
	"net/http"

	"github.com/savindushenal/menuvibe-api/internal/pkg/apperror"
)

var (
	ErrInvalidRestaurantID = apperror.New(apperror.CodeInvalidInput, "invalid restaurant id", http.StatusBadRequest)
	ErrInvalidPayload      = apperror.New(apperror.CodeInvalidInput, "invalid restaurant payload", http.StatusBadRequest)
	ErrInvalidTheme        = apperror.New(apperror.CodeInvalidInput, "invalid theme settings", http.StatusBadRequest)
	ErrNotFound            = apperror.New(apperror.CodeNotFound, "restaurant not found", http.StatusNotFound)
	ErrSlugTaken           = apperror.New(apperror.CodeConflict, "slug already in use", http.StatusConflict)
	ErrRestaurantFailed    = apperror.New(apperror.CodeInternalError, "restaurant operation failed", http.StatusInternalServerError)
)
