package routes

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/AkshatJain481/1fn-backend/internal/handlers"
	"github.com/AkshatJain481/1fn-backend/internal/metrics"
)

// RegisterRoutes wires the catalog endpoints under /api, plus the health,
// metrics and swagger endpoints around them.
func RegisterRoutes(
	router *gin.Engine,
	products *handlers.ProductHandler,
	variants *handlers.VariantHandler,
	plans *handlers.EmiPlanHandler,
) {
	router.Use(countRequests())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/api/docs/*any", gin.WrapH(httpSwagger.Handler(
		httpSwagger.URL("/api/docs/doc.json"),
	)))

	api := router.Group("/api")

	p := api.Group("/products")
	{
		p.GET("", products.ListProducts)
		p.GET("/search", products.SearchProducts)
		p.GET("/slug/:slug", products.GetProductBySlug)
		p.GET("/category/:category", products.ListProductsByCategory)
		p.GET("/:id", products.GetProduct)
		p.POST("", products.CreateProduct)
		p.PUT("/:id", products.UpdateProduct)
		p.DELETE("/:id", products.DeleteProduct)
	}

	v := api.Group("/variants")
	{
		v.GET("", variants.ListVariants)
		v.GET("/product/:productId", variants.ListVariantsByProduct)
		v.GET("/color/:color", variants.ListVariantsByColor)
		v.GET("/storage/:storage", variants.ListVariantsByStorage)
		v.GET("/:id", variants.GetVariant)
		v.GET("/:id/stock", variants.CheckStock)
		v.POST("", variants.CreateVariant)
		v.PUT("/:id", variants.UpdateVariant)
		v.DELETE("/:id", variants.DeleteVariant)
	}

	e := api.Group("/emi-plans")
	{
		e.GET("", plans.ListEmiPlans)
		e.GET("/zero-interest", plans.ListZeroInterestEmiPlans)
		e.GET("/tenure/:tenure", plans.ListEmiPlansByTenure)
		e.GET("/product/:productId", plans.ListEmiPlansByProduct)
		e.GET("/product/:productId/recommended", plans.ListRecommendedEmiPlans)
		e.GET("/product/:productId/cheapest", plans.GetCheapestEmiPlan)
		e.GET("/product/:productId/sorted", plans.ListEmiPlansSorted)
		e.GET("/:id", plans.GetEmiPlan)
		e.POST("", plans.CreateEmiPlan)
		e.PUT("/:id", plans.UpdateEmiPlan)
		e.DELETE("/:id", plans.DeleteEmiPlan)
	}
}

func countRequests() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		metrics.HTTPRequests.
			WithLabelValues(c.Request.Method, path, strconv.Itoa(c.Writer.Status())).
			Inc()
	}
}
