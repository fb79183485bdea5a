// ================== internal/features/webhook/routes.go ==================
package webhook

import (
	"github.com/gin-gonic/gin"
	"github.com/line/line-bot-sdk-go/v7/linebot"

	"github.com/yucheng-lo/foundbot/internal/features/reporting"
	"github.com/yucheng-lo/foundbot/internal/pkg/logger"
)

func RegisterRoutes(router *gin.Engine, bot *linebot.Client, svc *reporting.Service, log *logger.Logger) {
	handler := NewHandler(bot, svc, log)

	router.POST("/callback", handler.Callback)
}
