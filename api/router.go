// Package api contains all endpoints available
package api

import (
	"fmt"
	"time"

	"nutristore/catalog-api/aws"
	"nutristore/catalog-api/db"
	"nutristore/catalog-api/middleware"
	"nutristore/catalog-api/security"
	"nutristore/catalog-api/service"

	cache "github.com/chenyahui/gin-cache"
	"github.com/chenyahui/gin-cache/persist"
	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/gorm"
)

const (
	gray  = "\x1b[90m"
	reset = "\x1b[0m"
)

var store = persist.NewMemoryStore(time.Minute)

type API struct {
	DB     *gorm.DB
	Router *gin.Engine
	Argon  *security.ArgonHash
	Mailer service.Mailer
	S3     *aws.S3Client
}

func NewRouter() (*API, error) {
	conn, err := db.New()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database, %w", err)
	}

	makeLogger()

	a := New(conn, service.NewSMTPMailer())

	if viper.GetBool("storage.s3.enabled") {
		s3, err := aws.NewS3()
		if err != nil {
			return nil, fmt.Errorf("failed to initialize S3 client, %w", err)
		}

		a.S3 = s3
	}

	return a, nil
}

// New wires the engine, middleware stack and route table around an
// existing database connection and mailer. Kept separate from NewRouter
// so tests can inject both.
func New(conn *gorm.DB, mailer service.Mailer) *API {
	a := &API{
		DB:     conn,
		Mailer: mailer,
		Argon:  security.New(),
	}

	router := gin.New()
	a.Router = router

	router.Use(
		cors.New(cors.Config{
			AllowOrigins:     []string{"http://localhost:5173"},
			AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
			ExposeHeaders:    []string{"Content-Length"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}),
		gin.Recovery(),
		middleware.NewRequestIDMiddleware(),
		ginzap.GinzapWithConfig(zap.L(), &ginzap.Config{
			TimeFormat: "15:04:05.000",
			UTC:        true,
			Skipper: func(c *gin.Context) bool {
				return c.Request.Method == "HEAD"
			},
			Context: func(c *gin.Context) []zapcore.Field {
				fields := []zapcore.Field{}

				if v := c.GetString("requestID"); v != "" {
					fields = append(fields, zap.String("request_id", v))
				}

				if v, ok := c.Get("userID"); ok {
					fields = append(fields, zap.Any("userID", v))
				}

				return fields
			},
		}),
	)

	router.HandleMethodNotAllowed = true
	router.RedirectFixedPath = true
	router.MaxMultipartMemory = 5 << 20

	jwt := middleware.NewJWTMiddleware(conn)

	// Caps OTP mail dispatch per IP. Verification stays unlimited on
	// purpose, it matches the 5 minute expiry window semantics.
	otpLimiter := middleware.RateLimiterMiddleware(middleware.RateLimiterConfig{
		RequestsPerSecond: 2,
		Burst:             5,
	})

	main := router.Group("/api")
	{
		// HEAD /api/heartbeat		-> Used to check if the server is alive
		main.HEAD("/heartbeat", a.Heartbeat)

		// HEAD /api/validate		-> Validates a bearer token
		main.HEAD("/validate", jwt, a.Validate)

		// POST /api/login		-> Sends a login OTP to a customer's email
		main.POST("/login", otpLimiter, a.AuthLogin)

		// POST /api/verify-otp		-> Exchanges a valid OTP for a bearer token
		main.POST("/verify-otp", a.AuthVerifyOTP)

		// GET /api/user		-> Returns the authenticated customer
		main.GET("/user", jwt, a.UserFetch)
	}

	customers := main.Group("/customers", middleware.BodySizeLimiter(1<<20))
	{
		customers.POST("", a.CustomerCreate)
		customers.GET("", a.CustomerList)
		customers.GET("/:id", a.CustomerFetch)
		customers.PUT("/:id", a.CustomerUpdate)
		customers.DELETE("/:id", a.CustomerDelete)
		customers.PUT("/status/:id", a.CustomerStatus)
	}

	categories := main.Group("/categories", middleware.BodySizeLimiter(1<<20))
	{
		categories.POST("", a.CategoryCreate)
		categories.GET("", a.CategoryList)
		categories.PUT("/:id", a.CategoryUpdate)
		categories.PUT("/status/:id", a.CategoryStatus)
	}

	products := main.Group("/products")
	{
		products.POST("", middleware.BodySizeLimiter(1<<20), a.ProductCreate)
		products.GET("", a.ProductList)
		products.GET("/:id", a.ProductFetch)
		products.PUT("/:id", middleware.BodySizeLimiter(1<<20), a.ProductUpdate)
		products.PUT("/status/:id", a.ProductStatus)

		// POST /api/products/:id/image	-> Uploads a product image to S3
		products.POST("/:id/image", middleware.BodySizeLimiter(10<<20), a.ProductImageUpload)
	}

	reviews := main.Group("/reviews", middleware.BodySizeLimiter(1<<20))
	{
		reviews.POST("", a.ReviewCreate)
		reviews.GET("", a.ReviewList)
	}

	orders := main.Group("/orders")
	{
		orders.GET("", a.OrderList)
		orders.GET("/:id", a.OrderFetch)
	}

	// Public web endpoints, cacheable
	main.GET("/active-categories", cacheFor(30), a.CategoryActiveList)
	main.GET("/productsbycategory/:id", a.ProductsByCategory)
	main.GET("/product-reviews/:productId", a.ReviewsByProduct)
	main.GET("/top-rated-products", cacheFor(30), a.TopRatedProducts)

	return a
}

func makeLogger() {
	cfg := zap.NewDevelopmentConfig()
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	cfg.EncoderConfig.EncodeTime = func(t time.Time, pae zapcore.PrimitiveArrayEncoder) {
		pae.AppendString(gray + t.Format("15:04:05.000") + reset)
	}
	cfg.EncoderConfig.EncodeCaller = func(ec zapcore.EntryCaller, pae zapcore.PrimitiveArrayEncoder) {
		pae.AppendString(gray + ec.TrimmedPath() + reset)
	}

	cfg.DisableStacktrace = true

	if lvl, err := zapcore.ParseLevel(viper.GetString("app.log_level")); err == nil {
		cfg.Level = zap.NewAtomicLevelAt(lvl)
	}

	log, _ := cfg.Build()
	zap.ReplaceGlobals(log)
}

func cacheFor(sec int) gin.HandlerFunc {
	return cache.CacheByRequestURI(store, time.Second*time.Duration(sec))
}
