package api

import (
	"log"
	stdhttp "net/http"

	intconfig "slift/internal/config"
	h "slift/internal/http/handlers"
	"slift/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

func NewRouter(env intconfig.Env) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), middleware.CORS(env.CORSOrigins))

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "rota não encontrada",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/db-check", h.DBCheck)
		api.GET("/routes", h.Routes)

		// Staff roster
		staff := api.Group("/staff")
		staff.GET("", h.GetStaff)
		staff.GET("/:id", h.GetStaffByID)
		staff.POST("", h.CreateStaff)
		staff.PUT("/:id", h.UpdateStaff)
		staff.DELETE("/:id", h.DeleteStaff)
		staff.GET("/:id/statement", h.GetStaffStatementPDF)

		// Trips
		trips := api.Group("/trips")
		trips.GET("", h.GetTrips)
		trips.GET("/:id", h.GetTripByID)
		trips.POST("", h.CreateTrip)
		trips.PUT("/:id", h.UpdateTrip)
		trips.DELETE("/:id", h.DeleteTrip)
		trips.POST("/quote", h.PreviewTripQuote)

		// Payments
		payments := api.Group("/payments")
		payments.GET("", h.GetPayments)
		payments.POST("", h.CreatePayment)
		payments.DELETE("/:id", h.DeletePayment)

		// Settings
		api.GET("/settings", h.GetSettings)
		api.PUT("/settings", h.UpdateSettings)

		// Balances
		balances := api.Group("/balances")
		balances.GET("", h.GetBalances)
		balances.GET("/:staffId", h.GetBalanceByStaff)

		// Budget estimator
		api.POST("/budget/quote", h.PostBudgetQuote)
		api.GET("/budget/catalog", h.GetBudgetCatalog)

		// Reports & insights
		api.GET("/reports/summary", h.GetSummaryReport)
		api.GET("/insights", h.GetInsights)
	}

	return r
}
