package testimonial

import "github.com/gin-gonic/gin"

func RegisterPublicRoutes(r *gin.RouterGroup, handler *Handler) {
	r.GET("/testimonials", handler.Approved)
}

func RegisterAdminRoutes(r *gin.RouterGroup, handler *Handler) {
	items := r.Group("/testimonials")
	{
		items.GET("", handler.List)
		items.POST("", handler.Create)
		items.PUT("/:id", handler.Update)
		items.POST("/:id/approve", handler.Approve)
		items.POST("/:id/reject", handler.Reject)
		items.DELETE("/:id", handler.Delete)
	}
}
