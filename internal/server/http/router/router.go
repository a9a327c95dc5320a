// Package router assembles the gin engine serving the storefront API.
package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/monisha-uniforms/storefront/internal/server/http/handlers"
	"github.com/monisha-uniforms/storefront/internal/server/http/middleware"
)

// Setup configures the gin router with handlers and middleware.
func Setup(facade handlers.StorefrontFacade, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	catalogHandler := handlers.NewCatalogHandler(facade)
	cartHandler := handlers.NewCartHandler(facade)
	wishlistHandler := handlers.NewWishlistHandler(facade)
	schoolHandler := handlers.NewSchoolHandler(facade)
	orderHandler := handlers.NewOrderHandler(facade)
	registryHandler := handlers.NewRegistryHandler(facade)

	api := engine.Group("/api")

	api.GET("/products", catalogHandler.List)
	api.GET("/products/recent", catalogHandler.Recent)
	api.GET("/products/top-rated", catalogHandler.TopRated)
	api.GET("/products/:id", catalogHandler.Get)

	api.GET("/registry/uniforms", registryHandler.Uniforms)
	api.GET("/registry/levels", registryHandler.Levels)

	api.GET("/cart", cartHandler.List)
	api.POST("/cart", cartHandler.Add)
	api.DELETE("/cart", cartHandler.Clear)
	api.GET("/cart/summary", cartHandler.Summary)
	api.PATCH("/cart/:id", cartHandler.Update)
	api.DELETE("/cart/:id", cartHandler.Remove)

	api.GET("/wishlist", wishlistHandler.List)
	api.POST("/wishlist", wishlistHandler.Add)
	api.DELETE("/wishlist/:id", wishlistHandler.Remove)
	api.POST("/wishlist/:id/move-to-cart", wishlistHandler.MoveToCart)

	api.GET("/schools", schoolHandler.List)
	api.GET("/schools/search", schoolHandler.Search)
	api.POST("/schools", schoolHandler.Add)

	api.POST("/orders/bulk", orderHandler.SubmitBulk)
	api.GET("/orders/bulk", orderHandler.ListBulk)
	api.GET("/orders/bulk/:id", orderHandler.GetBulk)
	api.POST("/orders/bulk/:id/cancel", orderHandler.CancelBulk)
	api.POST("/orders/parent", orderHandler.SubmitParent)
	api.GET("/orders/parent", orderHandler.ListParent)
	api.POST("/orders/parent/:id/cancel", orderHandler.CancelParent)

	return engine
}
