package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/yusufKemalPinarci/ticaret-sub000/internal/domain/user"
	"github.com/yusufKemalPinarci/ticaret-sub000/internal/handler/api"
	"github.com/yusufKemalPinarci/ticaret-sub000/internal/handler/middleware"
	"github.com/yusufKemalPinarci/ticaret-sub000/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Checkout *api.CheckoutHandler
	Order    *api.OrderHandler
	Coupon   *api.CouponHandler
	Webhook  *api.WebhookHandler
	User     *api.UserHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, h, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	if cfg.Telemetry.Enabled {
		engine.Use(otelgin.Middleware(cfg.Telemetry.ServiceName))
	}
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	optionalAuth := authMiddleware.OptionalAuth()
	requireAuth := authMiddleware.RequireAuth()
	adminOnly := authMiddleware.RequireRoleAtLeast(user.RoleAdmin)

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup, []route{
			{Method: http.MethodPost, Path: "/checkout", Handler: h.Checkout.Checkout, Mw: []gin.HandlerFunc{optionalAuth}},
			{Method: http.MethodPost, Path: "/coupons/preview", Handler: h.Coupon.Preview},
			{Method: http.MethodPost, Path: "/webhooks/stripe", Handler: h.Webhook.Stripe},
			{Method: http.MethodGet, Path: "/me", Handler: h.User.Me, Mw: []gin.HandlerFunc{requireAuth}},
		})

		orders := apiGroup.Group("/orders")
		{
			// Guests reach their order with the checkout Idempotency-Key.
			addRoutes(orders, []route{
				{Method: http.MethodGet, Path: "/:id", Handler: h.Order.Get, Mw: []gin.HandlerFunc{optionalAuth}},
				{Method: http.MethodPost, Path: "/:id/payment-intent", Handler: h.Order.CreatePaymentIntent, Mw: []gin.HandlerFunc{optionalAuth}},
			})

			authRequired := orders.Group("")
			authRequired.Use(requireAuth)
			addRoutes(authRequired, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Order.List},
				{Method: http.MethodPost, Path: "/:id/coupon", Handler: h.Order.ApplyCoupon},
				{Method: http.MethodDelete, Path: "/:id/coupon/:code", Handler: h.Order.RemoveCoupon},
				{Method: http.MethodPost, Path: "/:id/refund", Handler: h.Order.Refund, Mw: []gin.HandlerFunc{adminOnly}},
				{Method: http.MethodPatch, Path: "/:id/fulfillment", Handler: h.Order.UpdateFulfillment, Mw: []gin.HandlerFunc{adminOnly}},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
