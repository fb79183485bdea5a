// ================== internal/features/webhook/handler.go ==================
package webhook

import (
	"context"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/line/line-bot-sdk-go/v7/linebot"

	"github.com/yucheng-lo/foundbot/internal/features/reporting"
	"github.com/yucheng-lo/foundbot/internal/pkg/logger"
)

// Handler bridges LINE webhook deliveries and the reporting machine.
// Authenticity is the SDK's job (signature check in ParseRequest); the
// machine only ever sees verified events.
type Handler struct {
	bot *linebot.Client
	svc *reporting.Service
	log *logger.Logger
}

func NewHandler(bot *linebot.Client, svc *reporting.Service, log *logger.Logger) *Handler {
	return &Handler{bot: bot, svc: svc, log: log}
}

func (h *Handler) Callback(c *gin.Context) {
	events, err := h.bot.ParseRequest(c.Request)
	if err != nil {
		if err == linebot.ErrInvalidSignature {
			h.log.Warn("webhook signature rejected")
			c.Status(http.StatusBadRequest)
			return
		}
		h.log.Error("webhook parse failed: %v", err)
		c.Status(http.StatusInternalServerError)
		return
	}

	for _, event := range events {
		h.dispatch(c.Request.Context(), event)
	}

	c.String(http.StatusOK, "OK")
}

// dispatch handles one event end to end: map, run the machine, reply.
// Reply delivery is fire-and-forget; LINE gets a 200 regardless so it
// does not redeliver events we already acted on.
func (h *Handler) dispatch(ctx context.Context, event *linebot.Event) {
	if event.Type != linebot.EventTypeMessage || event.Source == nil {
		return
	}

	ev, ok := h.mapEvent(event)
	if !ok {
		return
	}

	payloads, err := h.svc.Handle(ctx, ev)
	if err != nil {
		h.log.Error("handling event for user %s: %v", event.Source.UserID, err)
	}
	if len(payloads) == 0 {
		return
	}

	messages := EncodeMessages(payloads)
	if _, err := h.bot.ReplyMessage(event.ReplyToken, messages...).WithContext(ctx).Do(); err != nil {
		h.log.Error("replying to user %s: %v", event.Source.UserID, err)
	}
}

func (h *Handler) mapEvent(event *linebot.Event) (reporting.Event, bool) {
	userID := event.Source.UserID

	switch message := event.Message.(type) {
	case *linebot.TextMessage:
		return reporting.TextEvent{UserID: userID, Text: message.Text}, true

	case *linebot.ImageMessage:
		messageID := message.ID
		return reporting.ImageEvent{
			UserID: userID,
			Content: func(ctx context.Context) (io.ReadCloser, error) {
				res, err := h.bot.GetMessageContent(messageID).WithContext(ctx).Do()
				if err != nil {
					return nil, err
				}
				return res.Content, nil
			},
		}, true

	case *linebot.LocationMessage:
		return reporting.LocationEvent{
			UserID:    userID,
			Address:   message.Address,
			Latitude:  message.Latitude,
			Longitude: message.Longitude,
			HasCoords: true,
		}, true
	}

	// Stickers, video and the rest are acknowledged without a reply.
	return nil, false
}
