package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gin-shop/config"
	"gin-shop/controllers"
	"gin-shop/infra"
	"gin-shop/metrics"
	"gin-shop/middlewares"
	"gin-shop/repositories"
	"gin-shop/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func setupRouter(db *gorm.DB, cfg *config.Config) *gin.Engine {
	authRepository := repositories.NewAuthRepository(db)
	tokenRepository := repositories.NewTokenRepository(db)
	authService := services.NewAuthService(authRepository, tokenRepository, cfg)
	authController := controllers.NewAuthController(authService)

	productRepository := repositories.NewProductRepository(db)
	productService := services.NewProductService(productRepository)
	productController := controllers.NewProductController(productService)

	cartRepository := repositories.NewCartRepository(db)
	cartService := services.NewCartService(cartRepository, productRepository)
	cartController := controllers.NewCartController(cartService)

	orderRepository := repositories.NewOrderRepository(db)
	orderService := services.NewOrderService(db, orderRepository)
	orderController := controllers.NewOrderController(orderService)

	r := gin.Default()
	r.Use(cors.Default())
	r.Use(middlewares.RequestID())
	r.Use(metrics.Middleware())

	r.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	authRouter := r.Group("/auth")
	authRouter.POST("/register", authController.Register)
	authRouter.POST("/login", authController.Login)
	authRouter.POST("/logout", authController.Logout)

	productRouter := r.Group("/products")
	productRouter.GET("", productController.FindAll)
	productRouterWithAdminAuth := r.Group("/products", middlewares.AuthMiddleware(authService), middlewares.AdminOnly())
	productRouterWithAdminAuth.POST("", productController.Create)

	cartRouter := r.Group("/cart", middlewares.AuthMiddleware(authService))
	cartRouter.GET("", cartController.Index)
	cartRouter.POST("/items", cartController.Create)
	cartRouter.PATCH("/items/:id", cartController.Update)
	cartRouter.DELETE("/items/:id", cartController.Delete)

	orderRouter := r.Group("/orders", middlewares.AuthMiddleware(authService))
	orderRouter.POST("/checkout", orderController.Checkout)
	orderRouter.GET("/me", orderController.FindMine)

	return r
}

func initDB(cfg *config.Config) *gorm.DB {
	db := infra.SetupDB()

	if err := infra.Migrate(db); err != nil {
		panic("Failed to migrate database")
	}
	if err := infra.Seed(db, cfg); err != nil {
		panic("Failed to seed database")
	}

	// Blacklisted tokens past their expiry can never validate again.
	if err := repositories.NewTokenRepository(db).CleanExpiredTokens(); err != nil {
		log.Printf("Failed to clean expired tokens: %v", err)
	}

	return db
}

func main() {
	infra.Initialize()
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	db := initDB(cfg)
	r := setupRouter(db, cfg)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Starting server on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}
	log.Println("Server exited")
}
