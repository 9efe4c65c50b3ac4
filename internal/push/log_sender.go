package push

import (
	"context"

	"cityinbox_backend/internal/logger"
)

// LogSender is the no-credentials fallback. It logs each would-be push
// instead of delivering it, which keeps the rest of the pipeline live in
// development.
type LogSender struct{}

func NewLogSender() *LogSender {
	return &LogSender{}
}

func (s *LogSender) Send(_ context.Context, token string, msg Message) error {
	logger.Info("push (log only)",
		"token", truncateToken(token),
		"title", msg.Title,
	)
	return nil
}

func truncateToken(token string) string {
	if len(token) <= 12 {
		return token
	}
	return token[:12] + "..."
}
