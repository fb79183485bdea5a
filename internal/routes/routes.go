package routes

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/line/line-bot-sdk-go/v7/linebot"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/yucheng-lo/foundbot/internal/config"
	"github.com/yucheng-lo/foundbot/internal/features/catalog"
	"github.com/yucheng-lo/foundbot/internal/features/items"
	"github.com/yucheng-lo/foundbot/internal/features/reporting"
	"github.com/yucheng-lo/foundbot/internal/features/sessions"
	"github.com/yucheng-lo/foundbot/internal/features/webhook"
	"github.com/yucheng-lo/foundbot/internal/pkg/aichat"
	"github.com/yucheng-lo/foundbot/internal/pkg/cloudinary"
	"github.com/yucheng-lo/foundbot/internal/pkg/logger"
	"github.com/yucheng-lo/foundbot/internal/pkg/token"
)

// SetupRoutes wires every collaborator explicitly; the machine receives
// service handles rather than reaching for globals.
func SetupRoutes(router *gin.Engine, db *mongo.Database, cfg *config.Config, log *logger.Logger) error {
	bot, err := linebot.New(cfg.LineChannelSecret, cfg.LineChannelToken)
	if err != nil {
		return fmt.Errorf("creating LINE client: %w", err)
	}

	blobs, err := cloudinary.NewService(cfg.CloudinaryCloudName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret, cfg.CloudinaryFolder)
	if err != nil {
		return fmt.Errorf("creating blob store: %w", err)
	}

	itemsRepo := items.NewRepository(db)
	sessionsRepo := sessions.NewRepository(db)
	chat := aichat.New(cfg.AIEndpoint, cfg.AIToken)
	builder := catalog.NewBuilder(cfg.PlaceholderImageURL, cfg.InfoLinkURL)

	machine := reporting.NewService(itemsRepo, sessionsRepo, blobs, chat, builder, reporting.Commands{
		Report:        cfg.CmdReport,
		ReportAliases: cfg.CmdReportAliases,
		View:          cfg.CmdView,
		Cancel:        cfg.CmdCancel,
	}, log)

	webhook.RegisterRoutes(router, bot, machine, log)

	api := router.Group("/api/v1")
	tokens := token.NewManager(cfg.JWTSecret, cfg.JWTExpireHours)
	items.RegisterRoutes(api, itemsRepo, tokens)

	return nil
}
