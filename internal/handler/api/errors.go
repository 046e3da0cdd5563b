package api

import (
	"errors"
	"net/http"

	"commerce-core/internal/handler/httperr"
	"commerce-core/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

// respondDomainError maps usecase error marks to the HTTP boundary codes.
// Unknown errors fall through to 500 so internals never leak to clients.
func respondDomainError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrInvalidQuantity),
		errors.Is(err, errs.ErrInvalidChargeAmount):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "INVALID_ARGUMENT", err.Error())
	case errors.Is(err, errs.ErrInvalidCoupon):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "INVALID_COUPON", "Coupon definition is invalid")
	case errors.Is(err, errs.ErrCouponNotStarted):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "COUPON_NOT_STARTED", "Coupon is not yet issuable")
	case errors.Is(err, errs.ErrCouponExpired):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "COUPON_EXPIRED", "Coupon issuance window has closed")
	case errors.Is(err, errs.ErrStockNotFound),
		errors.Is(err, errs.ErrCouponNotFound),
		errors.Is(err, errs.ErrUserNotFound),
		errors.Is(err, errs.ErrProductNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "RESOURCE_NOT_FOUND", "Resource not found")
	case errors.Is(err, errs.ErrMaxStockExceeded):
		httperr.AbortWithError(c, http.StatusConflict, err, "MAX_STOCK_EXCEEDED", "Stock cap would be exceeded")
	case errors.Is(err, errs.ErrInsufficientStock):
		httperr.AbortWithError(c, http.StatusConflict, err, "INSUFFICIENT_STOCK", "Not enough available stock")
	case errors.Is(err, errs.ErrCouponOutOfStock):
		httperr.AbortWithError(c, http.StatusConflict, err, "OUT_OF_STOCK", "No coupon tickets remaining")
	case errors.Is(err, errs.ErrCouponAlreadyIssued):
		httperr.AbortWithError(c, http.StatusConflict, err, "ALREADY_ISSUED", "Coupon already issued to this user")
	case errors.Is(err, errs.ErrLockContention):
		httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "RETRY_LATER", "Resource is busy, retry later")
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "INTERNAL", "Internal server error")
	}
}
