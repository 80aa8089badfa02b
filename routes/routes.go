package routes

import (
	"net/http"

	"juluka-backend/config"
	"juluka-backend/controllers"
	"juluka-backend/services"
	"juluka-backend/store"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func SetupRouter(st *store.Store, insight *services.InsightService) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(config.PerformanceLogger())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	orderController := controllers.NewOrderController(st)
	clientController := controllers.NewClientController(st)
	membershipController := controllers.NewMembershipController(st)
	dashboardController := controllers.NewDashboardController(st, insight)
	insightController := controllers.NewInsightController(insight)
	shopController := controllers.NewShopController()

	api := r.Group("/api")
	{
		// Order routes
		orders := api.Group("/orders")
		{
			orders.POST("", orderController.CreateOrder)
			orders.GET("", orderController.GetOrders)
			orders.PUT("/:id/status", orderController.UpdateOrderStatus)
		}

		// Client routes
		clients := api.Group("/clients")
		{
			clients.GET("", clientController.GetClients)
			clients.GET("/lookup", clientController.LookupClient)
		}

		// Membership routes
		memberships := api.Group("/memberships")
		{
			memberships.GET("/plans", membershipController.GetPlans)
			memberships.POST("/assign", membershipController.AssignMembership)
		}

		// Dashboard routes
		api.GET("/dashboard", dashboardController.GetOverview)
		api.GET("/dashboard/insight", dashboardController.GetInsight)

		// Insight routes
		api.GET("/insights/care-advice", insightController.GetCareAdvice)

		// Shop reference data
		api.GET("/shop", shopController.GetShopInfo)
	}

	return r
}
