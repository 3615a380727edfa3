package mailer

import (
	"context"

	"github.com/dtroode/contactbook-server/internal/logger"
	"github.com/dtroode/contactbook-server/internal/model"
)

var _ model.Mailer = (*Log)(nil)

// Log writes messages to the server log instead of sending them.
// Use it only in development: reset links end up in the log.
type Log struct {
	logger *logger.Logger
}

func NewLog(logger *logger.Logger) *Log {
	return &Log{logger: logger}
}

func (l *Log) Send(_ context.Context, msg model.Message) error {
	l.logger.Info("Mailer: message not sent, logging instead",
		"to", msg.To,
		"subject", msg.Subject,
		"body", msg.Body)
	return nil
}
