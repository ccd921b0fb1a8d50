package catalog

import "github.com/gin-gonic/gin"

// RegisterPublicRoutes registers the read-only catalog routes.
func RegisterPublicRoutes(r *gin.RouterGroup, handler *Handler) {
	products := r.Group("/products")
	{
		products.GET("", handler.ListProducts)
		products.GET("/featured", handler.Featured)
		products.GET("/:id", handler.GetProduct)
	}
}

// RegisterAdminRoutes registers the catalog CRUD routes.
func RegisterAdminRoutes(r *gin.RouterGroup, handler *Handler) {
	products := r.Group("/products")
	{
		products.POST("", handler.CreateProduct)
		products.POST("/bulk", handler.BulkEdit)
		products.PUT("/:id", handler.UpdateProduct)
		products.DELETE("/:id", handler.DeleteProduct)
		products.POST("/:id/featured", handler.ToggleFeatured)
	}
}
