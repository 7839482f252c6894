package server

import (
	"bot-chat/contract"
	"bot-chat/domain/chat"
	"bot-chat/moderation"
	"context"
	"log/slog"
)

// Replier delivers bot replies to one connected client.
type Replier interface {
	SessionID() string
	Reply(reply chat.ReplyMessage) error
}

// BotController answers the init signal and the user messages of a session.
type BotController struct {
	log       *slog.Logger
	engine    contract.ConversationEngine
	moderator *moderation.Moderator
	metrics   *Metrics
}

// NewBotController accepts a nil moderator, user text is then passed as is.
func NewBotController(log *slog.Logger, engine contract.ConversationEngine, moderator *moderation.Moderator, metrics *Metrics) *BotController {
	return &BotController{log: log, engine: engine, moderator: moderator, metrics: metrics}
}

func (b *BotController) InitChat(ctx context.Context, r Replier) {
	b.send(r, b.engine.Start(ctx, r.SessionID()))
}

func (b *BotController) HandleUserMessage(ctx context.Context, r Replier, msg chat.ChatMessage) {
	b.metrics.UserMessages.Inc()
	text := msg.Text
	if b.moderator != nil {
		sanitized := b.moderator.Sanitize(r.SessionID(), text)
		if sanitized != text {
			b.metrics.Censored.Inc()
		}
		text = sanitized
	}
	b.send(r, b.engine.OnUserMessage(ctx, r.SessionID(), text))
}

func (b *BotController) SessionClosed(sessionID string) {
	b.engine.Forget(sessionID)
}

func (b *BotController) send(r Replier, messages []string) {
	for _, m := range messages {
		if err := r.Reply(chat.ReplyMessage{Sender: chat.BotSender, Content: m}); err != nil {
			b.log.Warn("Reply not delivered", "session_id", r.SessionID(), "error", err)
			return
		}
		b.metrics.Replies.Inc()
	}
}
