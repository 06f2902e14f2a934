package components

import (
	"github.com/yusufKemalPinarci/ticaret-sub000/internal/handler"
	"github.com/yusufKemalPinarci/ticaret-sub000/internal/handler/api"
	"github.com/yusufKemalPinarci/ticaret-sub000/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewCheckoutHandler,
		api.NewOrderHandler,
		api.NewCouponHandler,
		api.NewWebhookHandler,
		api.NewUserHandler,
		middleware.NewAuthMiddleware,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

type handlerParams struct {
	fx.In

	Checkout *api.CheckoutHandler
	Order    *api.OrderHandler
	Coupon   *api.CouponHandler
	Webhook  *api.WebhookHandler
	User     *api.UserHandler
}

func NewHandlers(p handlerParams) handler.Handlers {
	return handler.Handlers{
		Checkout: p.Checkout,
		Order:    p.Order,
		Coupon:   p.Coupon,
		Webhook:  p.Webhook,
		User:     p.User,
	}
}
