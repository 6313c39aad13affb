package app

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "spendwise/internal/docs" // swagger spec
	"spendwise/internal/middleware"
)

// NewRouter mounts every route on a fresh engine.
func NewRouter(a *App) *gin.Engine {
	h := a.Handlers

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())
	router.Use(cors())

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "store": a.Config.StoreBackend})
	})

	v1 := router.Group("/api/v1")

	auth := v1.Group("/auth")
	auth.POST("/register", h.Auth.Register)
	auth.POST("/login", h.Auth.Login)

	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware())

	protected.GET("/profile", h.Profile.GetProfile)
	protected.PUT("/profile", h.Profile.UpdateProfile)

	incomes := protected.Group("/incomes")
	incomes.GET("", h.Incomes.ListRecords)
	incomes.POST("", h.Incomes.CreateRecord)
	incomes.PUT("/:id", h.Incomes.UpdateRecord)
	incomes.DELETE("/:id", h.Incomes.DeleteRecord)

	expenses := protected.Group("/expenses")
	expenses.GET("", h.Expenses.ListRecords)
	expenses.POST("", h.Expenses.CreateRecord)
	expenses.PUT("/:id", h.Expenses.UpdateRecord)
	expenses.DELETE("/:id", h.Expenses.DeleteRecord)

	categories := protected.Group("/categories")
	categories.GET("", h.Category.GetCategories)
	categories.POST("", h.Category.AddCategory)

	protected.GET("/budget", h.Budget.GetBudget)
	protected.PUT("/budget", h.Budget.SetBudget)

	protected.GET("/summary", h.Summary.GetSummary)
	protected.GET("/summary/stream", h.Summary.StreamSummary)

	return router
}

func cors() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
