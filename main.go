// @title Conexão 011 Store API
// @version 1.0
// @description Storefront and admin API for the Conexão 011 store
// @host localhost:8081
// @BasePath /api/v1
// @schemes http
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/Joaovitor770/cnx-0110/cart"
	"github.com/Joaovitor770/cnx-0110/config"
	"github.com/Joaovitor770/cnx-0110/controllers/cms/auth_controller"
	"github.com/Joaovitor770/cnx-0110/controllers/cms/category_controller"
	"github.com/Joaovitor770/cnx-0110/controllers/cms/client_controller"
	"github.com/Joaovitor770/cnx-0110/controllers/cms/collection_controller"
	"github.com/Joaovitor770/cnx-0110/controllers/cms/order_controller"
	"github.com/Joaovitor770/cnx-0110/controllers/cms/product_controller"
	"github.com/Joaovitor770/cnx-0110/controllers/cms/settings_controller"
	"github.com/Joaovitor770/cnx-0110/controllers/storefront/cart_controller"
	"github.com/Joaovitor770/cnx-0110/controllers/storefront/catalog_controller"
	"github.com/Joaovitor770/cnx-0110/controllers/storefront/checkout_controller"
	_ "github.com/Joaovitor770/cnx-0110/docs"
	"github.com/Joaovitor770/cnx-0110/mirror"
	"github.com/Joaovitor770/cnx-0110/routes/cms_routes"
	"github.com/Joaovitor770/cnx-0110/routes/storefront_routes"
	"github.com/Joaovitor770/cnx-0110/services"
	"github.com/Joaovitor770/cnx-0110/store"
)

func init() {
	_ = godotenv.Load()
}

func main() {
	// Connect to DB
	config.InitDB()
	defer config.CloseDB()
	// Redis connection
	config.ConnectRedis()

	// Backend store with change notification over Redis
	notifier := store.NewRedisNotifier(config.RedisClient)
	catalogStore := store.NewCatalogStore(config.StoreGorm, config.StoreDB, notifier)
	if err := catalogStore.AutoMigrate(); err != nil {
		log.Fatalf("❌ Migration failed: %v", err)
	}
	log.Println("✅ Database migrated")

	// Image ingestion pipeline (Cloudinary + HEIC transcode fallback)
	cloudinaryService, err := services.NewCloudinaryService(
		os.Getenv("CLOUDINARY_CLOUD_NAME"),
		os.Getenv("CLOUDINARY_API_KEY"),
		os.Getenv("CLOUDINARY_API_SECRET"),
	)
	if err != nil {
		log.Fatalf("❌ Failed to initialize Cloudinary: %v", err)
	}
	imageService := services.NewImageService(cloudinaryService, &services.HeifTranscoder{}, "conexao011")
	log.Println("✅ Image pipeline initialized")

	// ✅ Initialize JWT Service for Admin Auth
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("❌ JWT_SECRET environment variable not set")
	}
	jwtService, err := services.NewJWTService(jwtSecret)
	if err != nil {
		log.Fatalf("❌ Failed to initialize JWT service: %v", err)
	}
	authService := services.NewAdminAuthService(
		os.Getenv("ADMIN_EMAIL"),
		os.Getenv("ADMIN_PASSWORD_HASH"),
		jwtService,
	)
	log.Println("✅ JWT Service initialized")

	// Catalog mirrors: one full fetch now, then a re-fetch on every
	// change notification
	ctx := context.Background()
	productMirror := mirror.NewProductMirror(catalogStore, notifier, imageService)
	categoryMirror := mirror.NewCategoryMirror(catalogStore, notifier)
	collectionMirror := mirror.NewCollectionMirror(catalogStore, notifier, imageService)
	if err := productMirror.Start(ctx); err != nil {
		log.Fatalf("❌ Product mirror failed to start: %v", err)
	}
	if err := categoryMirror.Start(ctx); err != nil {
		log.Fatalf("❌ Category mirror failed to start: %v", err)
	}
	if err := collectionMirror.Start(ctx); err != nil {
		log.Fatalf("❌ Collection mirror failed to start: %v", err)
	}
	log.Println("✅ Catalog mirrors started")

	// Session carts persisted in Redis
	cartManager := cart.NewManager(ctx, func(sessionID string) cart.Storage {
		return cart.NewRedisStorage(config.RedisClient, sessionID)
	})

	// Checkout: order persistence → stock decrement → cart clear →
	// payment hand-off
	handoffService := services.NewPaymentHandoffService(
		os.Getenv("WHATSAPP_PHONE"),
		os.Getenv("PIX_KEY"),
	)
	checkoutService := services.NewCheckoutService(catalogStore, productMirror, handoffService)

	// Wire controllers
	auth_controller.Init(authService)
	category_controller.Init(categoryMirror)
	collection_controller.Init(collectionMirror)
	product_controller.Init(productMirror)
	order_controller.Init(catalogStore)
	client_controller.Init(catalogStore)
	settings_controller.Init(catalogStore)
	catalog_controller.Init(productMirror, categoryMirror, collectionMirror, catalogStore)
	cart_controller.Init(cartManager, productMirror)
	checkout_controller.Init(checkoutService, cartManager)

	corsCfg := cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:3001"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With", "X-Cart-Session"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
		ExposeHeaders:    []string{"Content-Disposition", "Content-Length"},
	}

	router := gin.Default()
	router.Use(cors.New(corsCfg))

	// Register API routes
	api := router.Group("/api/v1")
	cms_routes.Setup(api, jwtService)
	log.Println("✅ Admin routes registered")
	storefront_routes.Setup(api)
	log.Println("✅ Storefront routes registered")

	// Swagger docs
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	port := os.Getenv("PORT")
	if port == "" {
		port = "8081"
	}
	fmt.Println("🚀 Server is running on http://localhost:" + port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("❌ Server stopped: %v", err)
	}
}
