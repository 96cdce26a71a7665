package api

import (
	"net/http"

	"carrental-storefront/internal/handler/httperr"
	"carrental-storefront/internal/pkg/errs"
	"carrental-storefront/internal/usecase/commands"
	"carrental-storefront/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

// abortWithUseCaseError maps usecase sentinels to statuses.
func abortWithUseCaseError(c *gin.Context, err error) {
	switch {
	case errs.Is(err, queries.ErrCarNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Car not found", nil)
	case errs.Is(err, queries.ErrCarLoadFailed):
		httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Failed to load car", nil)
	case errs.Is(err, commands.ErrCarNotBookable):
		httperr.AbortWithError(c, http.StatusConflict, err, "Car is not available for booking", nil)
	case errs.Is(err, commands.ErrIncompleteRange):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Select pickup and drop-off dates", nil)
	case errs.Is(err, commands.ErrDuplicateConfirmation):
		httperr.AbortWithError(c, http.StatusConflict, err, "Booking confirmation already in progress", nil)
	case errs.Is(err, commands.ErrInvalidCarRecord):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Invalid car record", err.Error())
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
