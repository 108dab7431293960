package notify

import (
	"context"

	"github.com/dtroode/volunteer-server/internal/logger"
	"github.com/dtroode/volunteer-server/internal/model"
)

var _ model.CodeNotifier = (*Log)(nil)

// Log writes confirmation codes to the service log. Meant for local development.
type Log struct {
	logger *logger.Logger
}

func NewLog(logger *logger.Logger) *Log {
	return &Log{logger: logger}
}

func (n *Log) DeliverCode(_ context.Context, identifier, code string) error {
	n.logger.Info("Notifier: confirmation code issued",
		"email", identifier,
		"code", code)
	return nil
}

func (n *Log) Close() error {
	return nil
}
