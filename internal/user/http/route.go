package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware gin.HandlerFunc) {
	authGroup := g.Group("/auth")
	{
		authGroup.POST("/register", h.Register)
		authGroup.POST("/login", h.Login)
	}

	group := g.Group("/users")
	group.Use(authMiddleware)
	{
		group.GET("/me", h.Me)
		group.GET("", h.List)
		group.GET("/:id", h.Get)
		group.PATCH("/me", h.Update)
		group.DELETE("/me", h.Delete)
	}
}
