package portfolio

import "github.com/gin-gonic/gin"

func RegisterPublicRoutes(r *gin.RouterGroup, handler *Handler) {
	projects := r.Group("/portfolio")
	{
		projects.GET("", handler.ListProjects)
		projects.GET("/highlighted", handler.Highlighted)
		projects.GET("/:id", handler.GetProject)
	}
}

func RegisterAdminRoutes(r *gin.RouterGroup, handler *Handler) {
	projects := r.Group("/portfolio")
	{
		projects.POST("", handler.CreateProject)
		projects.PUT("/:id", handler.UpdateProject)
		projects.DELETE("/:id", handler.DeleteProject)
	}
}
