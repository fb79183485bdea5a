// ================== internal/features/items/routes.go ==================
package items

import (
	"github.com/gin-gonic/gin"

	"github.com/yucheng-lo/foundbot/internal/middleware"
	"github.com/yucheng-lo/foundbot/internal/pkg/token"
)

func RegisterRoutes(router *gin.RouterGroup, repo *Repository, tokens *token.Manager) {
	handler := NewHandler(repo)

	group := router.Group("/items")
	group.Use(middleware.Auth(tokens)) // Admin-only surface
	{
		group.GET("/", handler.List)
		group.GET("/:id", handler.Get)
		group.PATCH("/:id/resolve", handler.Resolve)
	}
}
