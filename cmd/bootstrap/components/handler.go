package components

import (
	"commerce-core/internal/handler"
	"commerce-core/internal/handler/api"
	"commerce-core/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewStockHandler,
		api.NewCouponHandler,
		api.NewBalanceHandler,
		api.NewCartHandler,
		middleware.NewAuthMiddleware,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func NewHandlers(
	auth *api.AuthHandler,
	stock *api.StockHandler,
	coupon *api.CouponHandler,
	balance *api.BalanceHandler,
	cart *api.CartHandler,
) handler.Handlers {
	return handler.Handlers{
		Auth:    auth,
		Stock:   stock,
		Coupon:  coupon,
		Balance: balance,
		Cart:    cart,
	}
}
