package lead

import "github.com/gin-gonic/gin"

func RegisterPublicRoutes(r *gin.RouterGroup, handler *Handler) {
	contact := r.Group("/contact")
	{
		contact.POST("", handler.Capture)
		contact.GET("/prefill", handler.Prefill)
	}
}

func RegisterAdminRoutes(r *gin.RouterGroup, handler *Handler) {
	leads := r.Group("/leads")
	{
		leads.GET("", handler.List)
		leads.GET("/:id", handler.Get)
		leads.PUT("/:id/status", handler.UpdateStatus)
		leads.POST("/:id/read", handler.MarkRead)
		leads.DELETE("/:id", handler.Delete)
	}
}
