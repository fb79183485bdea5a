package reporting

import (
	"context"
	"fmt"
	"io"

	"github.com/yucheng-lo/foundbot/internal/features/catalog"
	"github.com/yucheng-lo/foundbot/internal/features/items"
	"github.com/yucheng-lo/foundbot/internal/features/sessions"
	"github.com/yucheng-lo/foundbot/internal/pkg/logger"
	errs "github.com/yucheng-lo/foundbot/pkg/errors"
)

// ItemStore is the write/read surface the machine needs from the item
// repository.
type ItemStore interface {
	Create(ctx context.Context, reporterID string) (string, error)
	SetImageURL(ctx context.Context, id, url string) error
	SetDescription(ctx context.Context, id, text string) error
	SetLocation(ctx context.Context, id, text string) error
	ListOpen(ctx context.Context, limit int64) ([]items.LostItem, error)
}

// SessionStore is the per-user flow cursor.
type SessionStore interface {
	Get(ctx context.Context, userID string) (sessions.State, string, error)
	Set(ctx context.Context, userID string, state sessions.State, itemID string) error
	Clear(ctx context.Context, userID string) error
}

// ImageStore persists image bytes and returns a public URL.
type ImageStore interface {
	UploadImage(ctx context.Context, r io.Reader) (string, error)
}

// ChatService answers free-form text when no command or flow applies.
type ChatService interface {
	Complete(ctx context.Context, text string) (string, error)
}

// Commands holds the recognized keywords. Matching is exact and
// case-sensitive.
type Commands struct {
	Report        string
	ReportAliases []string
	View          string
	Cancel        string
}

func (c Commands) IsReport(text string) bool {
	if text == c.Report {
		return true
	}
	for _, alias := range c.ReportAliases {
		if text == alias {
			return true
		}
	}
	return false
}

// Service drives the three-step reporting flow. Every handled event
// produces at least one reply payload; a returned error is for logging
// only and always travels with a user-facing failure reply.
type Service struct {
	items    ItemStore
	sessions SessionStore
	images   ImageStore
	chat     ChatService
	builder  *catalog.Builder
	cmds     Commands
	log      *logger.Logger
}

func NewService(itemStore ItemStore, sessionStore SessionStore, imageStore ImageStore, chat ChatService, builder *catalog.Builder, cmds Commands, log *logger.Logger) *Service {
	return &Service{
		items:    itemStore,
		sessions: sessionStore,
		images:   imageStore,
		chat:     chat,
		builder:  builder,
		cmds:     cmds,
		log:      log,
	}
}

func (s *Service) Handle(ctx context.Context, ev Event) ([]catalog.Payload, error) {
	switch e := ev.(type) {
	case TextEvent:
		return s.handleText(ctx, e)
	case ImageEvent:
		return s.handleImage(ctx, e)
	case LocationEvent:
		return s.handleLocation(ctx, e)
	default:
		return nil, fmt.Errorf("%w: unknown event type %T", errs.ErrBadRequest, ev)
	}
}

func (s *Service) handleText(ctx context.Context, e TextEvent) ([]catalog.Payload, error) {
	// Commands beat state dispatch so users can always escape the flow.
	switch {
	case s.cmds.IsReport(e.Text):
		return s.startReport(ctx, e.UserID)
	case e.Text == s.cmds.View:
		return s.viewItems(ctx)
	case e.Text == s.cmds.Cancel:
		if err := s.sessions.Clear(ctx, e.UserID); err != nil {
			return s.failure(err)
		}
		return reply(catalog.TextPayload{Text: msgReportCancelled}), nil
	}

	state, itemID, err := s.sessions.Get(ctx, e.UserID)
	if err != nil {
		return s.failure(err)
	}

	switch state {
	case sessions.StateWaitingForImage:
		return reply(catalog.TextPayload{Text: msgImageRequired}), nil

	case sessions.StateWaitingForDescription:
		if itemID == "" {
			return s.recoverDesync(ctx, e.UserID)
		}
		if err := s.items.SetDescription(ctx, itemID, e.Text); err != nil {
			return s.failure(err)
		}
		if err := s.sessions.Set(ctx, e.UserID, sessions.StateWaitingForLocation, itemID); err != nil {
			return s.failure(err)
		}
		return reply(catalog.TextPayload{Text: msgAskLocation}), nil

	case sessions.StateWaitingForLocation:
		if itemID == "" {
			return s.recoverDesync(ctx, e.UserID)
		}
		return s.completeReport(ctx, e.UserID, itemID, e.Text)
	}

	// Idle with no command match: hand the text to the chat model.
	answer, err := s.chat.Complete(ctx, e.Text)
	if err != nil {
		s.log.Warn("chat completion failed for user %s: %v", e.UserID, err)
		return reply(catalog.TextPayload{Text: msgAIFallback}), nil
	}
	return reply(catalog.TextPayload{Text: answer}), nil
}

func (s *Service) handleImage(ctx context.Context, e ImageEvent) ([]catalog.Payload, error) {
	state, itemID, err := s.sessions.Get(ctx, e.UserID)
	if err != nil {
		return s.failure(err)
	}

	if state != sessions.StateWaitingForImage {
		if state.Reporting() && itemID == "" {
			return s.recoverDesync(ctx, e.UserID)
		}
		return reply(catalog.TextPayload{Text: msgImageUnsupported}), nil
	}
	if itemID == "" {
		return s.recoverDesync(ctx, e.UserID)
	}

	content, err := e.Content(ctx)
	if err != nil {
		s.log.Error("fetching image content for user %s: %v", e.UserID, err)
		return reply(catalog.TextPayload{Text: msgImageFailed}), fmt.Errorf("%w: %v", errs.ErrExternalService, err)
	}
	defer content.Close()

	url, err := s.images.UploadImage(ctx, content)
	if err != nil {
		// State stays at WaitingForImage so the user can retry.
		s.log.Error("uploading image for user %s: %v", e.UserID, err)
		return reply(catalog.TextPayload{Text: msgImageFailed}), fmt.Errorf("%w: %v", errs.ErrExternalService, err)
	}

	if err := s.items.SetImageURL(ctx, itemID, url); err != nil {
		return s.failure(err)
	}
	if err := s.sessions.Set(ctx, e.UserID, sessions.StateWaitingForDescription, itemID); err != nil {
		return s.failure(err)
	}

	return reply(catalog.TextPayload{Text: msgAskDescription}), nil
}

func (s *Service) handleLocation(ctx context.Context, e LocationEvent) ([]catalog.Payload, error) {
	state, itemID, err := s.sessions.Get(ctx, e.UserID)
	if err != nil {
		return s.failure(err)
	}

	if state != sessions.StateWaitingForLocation {
		if state.Reporting() && itemID == "" {
			return s.recoverDesync(ctx, e.UserID)
		}
		if state == sessions.StateWaitingForImage {
			return reply(catalog.TextPayload{Text: msgImageRequired}), nil
		}
		return reply(catalog.TextPayload{Text: msgLocationUnusable}), nil
	}
	if itemID == "" {
		return s.recoverDesync(ctx, e.UserID)
	}

	return s.completeReport(ctx, e.UserID, itemID, e.Value())
}

func (s *Service) startReport(ctx context.Context, userID string) ([]catalog.Payload, error) {
	itemID, err := s.items.Create(ctx, userID)
	if err != nil {
		return s.failure(err)
	}
	if err := s.sessions.Set(ctx, userID, sessions.StateWaitingForImage, itemID); err != nil {
		return s.failure(err)
	}
	return reply(catalog.TextPayload{Text: msgReportStarted}), nil
}

func (s *Service) viewItems(ctx context.Context) ([]catalog.Payload, error) {
	open, err := s.items.ListOpen(ctx, items.DefaultListLimit)
	if err != nil {
		return s.failure(err)
	}
	return reply(s.builder.BuildCarousel(open)), nil
}

func (s *Service) completeReport(ctx context.Context, userID, itemID, location string) ([]catalog.Payload, error) {
	if err := s.items.SetLocation(ctx, itemID, location); err != nil {
		return s.failure(err)
	}
	if err := s.sessions.Clear(ctx, userID); err != nil {
		return s.failure(err)
	}
	return reply(catalog.TextPayload{Text: msgReportComplete}), nil
}

// recoverDesync handles a session that claims a mid-flow state without a
// bound item. Resetting to idle keeps the bot usable instead of looping
// on the broken row.
func (s *Service) recoverDesync(ctx context.Context, userID string) ([]catalog.Payload, error) {
	if err := s.sessions.Clear(ctx, userID); err != nil {
		return s.failure(err)
	}
	return reply(catalog.TextPayload{Text: msgFlowError}), errs.ErrDesync
}

// failure maps a storage error to the generic failure reply. The session
// is left untouched; writes are ordered so an aborted transition never
// leaves a half-updated row.
func (s *Service) failure(err error) ([]catalog.Payload, error) {
	s.log.Error("reporting flow aborted: %v", err)
	return reply(catalog.TextPayload{Text: msgProcessingFailed}), err
}

func reply(payloads ...catalog.Payload) []catalog.Payload {
	return payloads
}
