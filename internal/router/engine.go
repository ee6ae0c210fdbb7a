package router

import (
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"stitchkart.in/storefront/api/internal/session"
	"stitchkart.in/storefront/api/pkg/payment"
)

var Router *gin.Engine

var (
	sessions *session.Registry
	gateway  payment.Gateway
)

// InitState wires the session registry and payment gateway the handlers use.
func InitState(registry *session.Registry, gw payment.Gateway) {
	sessions = registry
	gateway = gw
}

func InitEngine() {
	Router = gin.Default()
	if os.Getenv("ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	Router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:8081", "https://shop.stitchkart.in"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length", "X-Cache"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
}

func InitializeRoutes() {
	api := Router.Group("/api")
	{
		api.GET("/health", HealthCheck)
		api.GET("/search", SearchProducts)

		products := api.Group("/products")
		{
			products.GET("/", GetAllProducts)
			products.POST("/", CreateNewProducts)
			products.GET("/:id", GetProductByID)
			products.PUT("/:id", EditProductByID)
			products.DELETE("/:id", DeleteProductByID)
		}

		categories := api.Group("/categories")
		{
			categories.GET("/", GetAllCategories)
		}

		customers := api.Group("/customers")
		{
			customers.POST("/signup", SignUpCustomer)
			customers.POST("/signin", SignInCustomer)
			customers.GET("/:id", GetCustomerProfile)
		}

		carts := api.Group("/cart/:sessionId")
		carts.Use(SessionMiddleware())
		{
			carts.GET("", GetCart)
			carts.POST("/items", AddToCart)
			carts.PUT("/items/:id", UpdateCartItem)
			carts.DELETE("/items/:id", RemoveFromCart)
			carts.DELETE("/clear", ClearCart)
		}

		checkouts := api.Group("/checkout/:sessionId")
		checkouts.Use(SessionMiddleware())
		{
			checkouts.GET("", GetCheckoutState)
			checkouts.POST("/review", BeginCheckout)
			checkouts.POST("/address", SubmitAddress)
			checkouts.POST("/pay", SubmitPayment)
			checkouts.POST("/cancel", CancelCheckout)
		}

		orders := api.Group("/orders/:sessionId")
		orders.Use(SessionMiddleware())
		{
			orders.GET("", GetOrderHistory)
			orders.GET("/report", GenerateOrderReport)
		}

		wishlist := api.Group("/wishlist/:sessionId")
		wishlist.Use(SessionMiddleware())
		{
			wishlist.GET("", GetWishlist)
			wishlist.POST("/:productId", AddToWishlist)
			wishlist.DELETE("/:productId", RemoveFromWishlist)
		}
	}
}
