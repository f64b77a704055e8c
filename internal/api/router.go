package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"

	_ "github.com/storefront/commerce-api/docs"
	"github.com/storefront/commerce-api/internal/api/handler"
	"github.com/storefront/commerce-api/internal/api/middleware"
	"github.com/storefront/commerce-api/internal/core/domain"
)

// Handlers groups everything the router mounts.
type Handlers struct {
	Auth      *handler.AuthHandler
	User      *handler.UserHandler
	Product   *handler.ProductHandler
	Review    *handler.ReviewHandler
	Order     *handler.OrderHandler
	Health    *handler.HealthHandler
	Readiness *handler.ReadinessHandler
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(h Handlers, authMW echo.MiddlewareFunc, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("storefront"))

	adminOnly := middleware.RBAC(domain.RoleAdmin)

	// --- Auth ---
	e.POST("/api/v1/auth/register", h.Auth.Register)
	e.POST("/api/v1/auth/login", h.Auth.Login)
	e.POST("/api/v1/auth/logout", h.Auth.Logout, authMW)

	// --- Users ---
	users := e.Group("/api/v1/users", authMW)
	users.GET("", h.User.List, adminOnly)
	users.GET("/me", h.User.Me)
	users.PATCH("/me", h.User.UpdateProfile)
	users.PATCH("/me/password", h.User.RotatePassword)
	users.GET("/:id", h.User.Get)

	// --- Products (reads are public, mutations admin-only) ---
	e.GET("/api/v1/products", h.Product.List)
	e.GET("/api/v1/products/:id", h.Product.Get)
	e.GET("/api/v1/products/:id/reviews", h.Review.ListForProduct)
	e.POST("/api/v1/products", h.Product.Create, authMW, adminOnly)
	e.PATCH("/api/v1/products/:id", h.Product.Update, authMW, adminOnly)
	e.DELETE("/api/v1/products/:id", h.Product.Delete, authMW, adminOnly)

	// --- Reviews (reads are public, mutations ownership-guarded in the service) ---
	e.GET("/api/v1/reviews", h.Review.List)
	e.GET("/api/v1/reviews/:id", h.Review.Get)
	e.POST("/api/v1/reviews", h.Review.Create, authMW)
	e.PATCH("/api/v1/reviews/:id", h.Review.Update, authMW)
	e.DELETE("/api/v1/reviews/:id", h.Review.Delete, authMW)

	// --- Orders ---
	orders := e.Group("/api/v1/orders", authMW)
	orders.POST("", h.Order.Create)
	orders.GET("", h.Order.List, adminOnly)
	orders.GET("/mine", h.Order.ListMine)
	orders.GET("/:id", h.Order.Get)
	orders.PATCH("/:id", h.Order.Pay)

	// --- Operational endpoints ---
	e.GET("/health", h.Health.Liveness)
	e.GET("/health/ready", h.Readiness.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
