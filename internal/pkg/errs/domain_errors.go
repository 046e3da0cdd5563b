package errs

import "errors"

// Domain-specific sentinel errors shared across usecase layers
var (
	// Stock errors
	ErrStockNotFound     = errors.New("stock not found")
	ErrInvalidQuantity   = errors.New("quantity must be positive")
	ErrMaxStockExceeded  = errors.New("max stock exceeded")
	ErrInsufficientStock = errors.New("insufficient stock")

	// Coupon errors
	ErrCouponNotFound      = errors.New("coupon not found")
	ErrInvalidCoupon       = errors.New("invalid coupon")
	ErrCouponNotStarted    = errors.New("coupon not started")
	ErrCouponExpired       = errors.New("coupon expired")
	ErrCouponAlreadyIssued = errors.New("coupon already issued to user")
	ErrCouponOutOfStock    = errors.New("coupon out of stock")

	// Balance errors
	ErrInvalidChargeAmount = errors.New("charge amount must be positive")

	// Catalog / user errors
	ErrUserNotFound    = errors.New("user not found")
	ErrProductNotFound = errors.New("product option not found")

	// Concurrency errors
	ErrLockContention = errors.New("lock contention, retry later")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
