package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"kadima-pos/config"
	"kadima-pos/controllers"
	"kadima-pos/handler"
	"kadima-pos/libs"
	"kadima-pos/middleware"
	"kadima-pos/repositories"
	"kadima-pos/services"
)

type Deps struct {
	Config *config.Config
	DB     *pgxpool.Pool
	Redis  *redis.Client
	Logger *zap.Logger
}

// App holds what main needs after routing is set up.
type App struct {
	Carts        *services.CartService
	Transactions *services.TransactionService
}

func SetupRoutes(router *gin.Engine, deps Deps) *App {
	cfg, logger := deps.Config, deps.Logger

	productRepo := repositories.NewProductRepository(deps.DB)
	storeRepo := repositories.NewStoreRepository(deps.DB)
	txRepo := repositories.NewTransactionRepository(deps.DB)
	userRepo := repositories.NewUserRepository(deps.DB)

	var uploader services.ImageUploader
	if u, err := libs.NewCloudinaryUploader(cfg, logger); err == nil {
		uploader = u
	} else {
		logger.Warn("store logo upload disabled", zap.Error(err))
	}

	var mailer services.ReceiptMailer
	if m, err := libs.NewMailer(cfg); err == nil {
		mailer = m
	} else {
		logger.Warn("receipt emails disabled", zap.Error(err))
	}

	var cache services.ProductListCache
	if deps.Redis != nil {
		cache = repositories.NewProductCache(deps.Redis)
	}

	catalogSvc := services.NewCatalogService(productRepo, storeRepo, cache, uploader, logger)
	cartSvc := services.NewCartService(catalogSvc, cfg.CartSessionTTL, logger)
	checkoutSvc := services.NewCheckoutService(cartSvc, catalogSvc, txRepo, cfg.PaymentPollInterval, logger)
	txSvc := services.NewTransactionService(txRepo, catalogSvc, mailer, logger)
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTExpiry, logger)
	userSvc := services.NewUserService(userRepo)

	authCtrl := controllers.NewAuthController(authSvc)
	userCtrl := controllers.NewUserController(userSvc)
	storeCtrl := controllers.NewStoreController(catalogSvc, cfg.MaxUploadSize)
	productCtrl := controllers.NewProductController(catalogSvc)
	cartCtrl := controllers.NewCartController(cartSvc, checkoutSvc)
	txCtrl := controllers.NewTransactionController(txSvc)

	router.GET("/", gin.WrapF(handler.Handler))
	router.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.POST("/auth/login", authCtrl.Login)

	auth := router.Group("/")
	auth.Use(middleware.AuthMiddleware(cfg.JWTSecret))
	{
		auth.GET("/auth/profile", authCtrl.GetProfile)

		merchant := auth.Group("/merchants/:merchant_id/stores/:store_id")
		merchant.Use(middleware.MerchantScope())
		{
			merchant.GET("", storeCtrl.GetStore)
			merchant.GET("/products", productCtrl.GetStoreProducts)
			merchant.GET("/transactions", txCtrl.GetHistory)
		}

		auth.POST("/carts", cartCtrl.CreateCart)
		auth.GET("/carts/:id", cartCtrl.GetCart)
		auth.DELETE("/carts/:id", cartCtrl.DiscardCart)
		auth.POST("/carts/:id/items", cartCtrl.AddItem)
		auth.DELETE("/carts/:id/items/:product_id", cartCtrl.RemoveItem)
		auth.POST("/carts/:id/items/:product_id/increment", cartCtrl.IncrementItem)
		auth.POST("/carts/:id/items/:product_id/decrement", cartCtrl.DecrementItem)
		auth.POST("/carts/:id/checkout", cartCtrl.Checkout)

		auth.GET("/transactions/:id", txCtrl.GetTransaction)
	}

	admin := router.Group("/admin")
	admin.Use(middleware.AuthMiddleware(cfg.JWTSecret), middleware.AdminMiddleware())
	{
		admin.GET("/users", userCtrl.GetAllUsers)
		admin.POST("/users", userCtrl.CreateUser)

		store := admin.Group("/merchants/:merchant_id/stores/:store_id")
		store.Use(middleware.MerchantScope())
		{
			store.POST("/products", productCtrl.CreateProduct)
			store.POST("/logo", storeCtrl.UploadLogo)
		}

		admin.PATCH("/products/:id", productCtrl.UpdateProduct)
		admin.DELETE("/products/:id", productCtrl.DeleteProduct)

		admin.PATCH("/transactions/:id/status", txCtrl.UpdatePaymentStatus)
	}

	return &App{Carts: cartSvc, Transactions: txSvc}
}
