package api

import (
	"io"
	"net/http"

	reqdto "carrental-storefront/internal/handler/dto/request"
	resdto "carrental-storefront/internal/handler/dto/response"
	"carrental-storefront/internal/handler/httperr"
	"carrental-storefront/internal/handler/middleware"
	"carrental-storefront/internal/pkg/errs"
	"carrental-storefront/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	cmds commands.BookingCommands
}

func NewBookingHandler(cmds commands.BookingCommands) *BookingHandler {
	return &BookingHandler{cmds: cmds}
}

// @Summary Confirm booking
// @Description Hand the current booking selection to checkout. The body is optional; set fields override the query string.
// @Tags booking
// @Accept json
// @Produce json
// @Param id path string true "Car ID"
// @Param Idempotency-Key header string false "Retries with the same key are rejected while the first is in flight"
// @Param request body reqdto.ConfirmBookingRequest false "Booking parameters"
// @Success 201 {object} resdto.ConfirmBookingResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /api/cars/{id}/booking/confirm [post]
func (h *BookingHandler) Confirm(c *gin.Context) {
	var req reqdto.ConfirmBookingRequest
	// ContentLength is -1 for chunked bodies; an empty one decodes to io.EOF.
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil && !errs.Is(err, io.EOF) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
			return
		}
	}

	result, err := h.cmds.Confirm(c.Request.Context(), c.Param("id"), commands.ConfirmBookingInput{
		Query:          req.MergeInto(c.Request.URL.Query()),
		IdempotencyKey: c.GetHeader(middleware.IdempotencyKeyHeader),
	})
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}

	c.Header("Location", result.CheckoutURL)
	c.JSON(http.StatusCreated, resdto.FromConfirm(result))
}
