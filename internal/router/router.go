// Package router wires the HTTP surface: public catalog reads, the
// rate-limited auth endpoints, and the admin-gated mutations.
package router

import (
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"

	"github.com/dalanakids/shop-api/internal/config"
	"github.com/dalanakids/shop-api/internal/handler"
	"github.com/dalanakids/shop-api/internal/middleware"
	"github.com/dalanakids/shop-api/internal/model"
	"github.com/dalanakids/shop-api/internal/repository"
)

// Deps bundles everything route registration needs.
type Deps struct {
	Auth     *handler.AuthHandler
	Users    *handler.UserHandler
	Products *handler.ProductHandler
	Category *handler.CategoryHandler
	Carousel *handler.CarouselHandler

	UserRepo  *repository.UserRepo
	Revoker   *middleware.Revoker
	JWTSecret string
	RateLimit config.RateLimitConfig
	Redis     *redis.Client
	Origins   []string
}

// Register attaches every route to the Echo instance under /api/v1.
func Register(e *echo.Echo, d Deps) {
	e.Use(echomw.Recover())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins:     d.Origins,
		AllowMethods:     []string{echo.GET, echo.POST, echo.PUT, echo.DELETE, echo.OPTIONS},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAuthorization},
		AllowCredentials: true,
	}))

	e.GET("/healthz", handler.Health)

	api := e.Group("/api/v1")

	jwtAuth := middleware.JWTAuth(d.JWTSecret, d.Revoker)
	adminOnly := middleware.RequireRoles(d.UserRepo, model.RoleAdmin)
	userOrAdmin := middleware.RequireRoles(d.UserRepo, model.RoleUser, model.RoleAdmin)

	// ---- Auth ----
	auth := api.Group("/auth", middleware.RateLimit(d.RateLimit, d.Redis))
	auth.POST("/register", d.Auth.Register)
	auth.POST("/confirm", d.Auth.Confirm)
	auth.POST("/login", d.Auth.Login)
	auth.POST("/forgot_password", d.Auth.ForgotPassword)
	auth.POST("/reset_password", d.Auth.ResetPassword)
	// Logout needs a valid token but no particular role.
	auth.GET("/logout", d.Auth.Logout, jwtAuth)

	// ---- Users ----
	users := api.Group("/users")
	users.GET("", d.Users.List, jwtAuth, adminOnly)
	users.GET("/user_id/:user_id", d.Users.GetByID, jwtAuth, adminOnly)
	users.GET("/check_authorization", d.Users.CheckAuthorization, jwtAuth, adminOnly)
	users.PUT("", d.Users.Update, jwtAuth, userOrAdmin)
	users.DELETE("/:user_id", d.Users.Delete, jwtAuth, userOrAdmin)

	// ---- Products ----
	api.GET("/products", d.Products.List)
	api.GET("/products/image_host", d.Products.ImageHost, jwtAuth, adminOnly)
	api.GET("/products/:product_id", d.Products.GetByID)
	api.POST("/products", d.Products.Create, jwtAuth, adminOnly)
	api.PUT("/products/:product_id", d.Products.Update, jwtAuth, adminOnly)
	api.DELETE("/products/:product_id", d.Products.Delete, jwtAuth, adminOnly)

	// ---- Categories ----
	api.GET("/categories", d.Category.List)
	api.GET("/categories/:category_id", d.Category.GetByID, jwtAuth, adminOnly)
	api.POST("/categories", d.Category.Create, jwtAuth, adminOnly)
	api.PUT("/categories/:category_id", d.Category.Update, jwtAuth, adminOnly)
	api.DELETE("/categories/:category_id", d.Category.Delete, jwtAuth, adminOnly)

	// ---- Carousel ----
	api.GET("/carousel", d.Carousel.List)
	api.GET("/carousel/:image_id", d.Carousel.GetByID, jwtAuth, adminOnly)
	api.POST("/carousel", d.Carousel.Create, jwtAuth, adminOnly)
	api.PUT("/carousel/:image_id", d.Carousel.Update, jwtAuth, adminOnly)
	api.DELETE("/carousel/:image_id", d.Carousel.Delete, jwtAuth, adminOnly)
}
