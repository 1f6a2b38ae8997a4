package router

import (
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"sellerpulse/pkg/ai"
	"sellerpulse/pkg/global"
	"sellerpulse/pkg/signals"
)

var Router *gin.Engine

// Pipeline is the process-wide insight pipeline. Tests swap it for one built
// on a stub generator.
var Pipeline = ai.NewPipeline(ai.DefaultGenerator(), signals.NewProvider())

func InitEngine() {
	if os.Getenv("ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}
	Router = gin.Default()

	allowedOrigins := strings.Split(global.GetEnvOrDefault("CORS_ORIGINS",
		"http://localhost:3000,http://localhost:5173"), ",")

	Router.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
}

func InitializeRoutes() {
	api := Router.Group("/api")
	{
		api.GET("/health", HealthCheck)

		dashboard := api.Group("/dashboard")
		{
			dashboard.POST("/summary", RequireJSON(), GetDashboardSummary)
			dashboard.GET("/kpis", GetKpis)
			dashboard.GET("/product-details", GetProductDetails)
			dashboard.GET("/top-selling-items", GetTopSellingItems)
			dashboard.GET("/purchase-orders", GetPurchaseOrders)
			dashboard.GET("/sales-orders", GetSalesOrders)
		}

		returns := api.Group("/returns")
		{
			returns.GET("/", GetReturnedItems)
			returns.POST("/analyze", RequireJSON(), AnalyzeReturns)
		}
	}
}
