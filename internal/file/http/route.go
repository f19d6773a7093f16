package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware gin.HandlerFunc) {
	items := g.Group("/items")
	items.GET("/:id/photos", h.ListByItem)
	items.POST("/:id/photos", authMiddleware, h.Upload)

	files := g.Group("/files")
	files.GET("/:id", h.Download)
	files.GET("/:id/thumbnail", h.DownloadThumbnail)
	files.DELETE("/:id", authMiddleware, h.Delete)
}
