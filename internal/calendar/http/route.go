package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware gin.HandlerFunc) {
	group := g.Group("/calendar")

	group.Use(authMiddleware)
	{
		group.GET("/occurrences", h.ListOccurrences)
	}
}
