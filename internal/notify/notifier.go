// Package notify delivers transaction confirmations. Delivery transport is a
// collaborator concern; the shipped implementation writes structured log
// entries.
package notify

import (
	"context"

	"github.com/sirupsen/logrus"
)

// Notifier announces a completed ledger operation to the account holder.
type Notifier interface {
	Notify(ctx context.Context, accountID, title, message string)
}

// LogNotifier emits notifications as log entries.
type LogNotifier struct {
	logger *logrus.Logger
}

func NewLogNotifier(logger *logrus.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) Notify(_ context.Context, accountID, title, message string) {
	n.logger.WithFields(logrus.Fields{
		"accountID": accountID,
		"title":     title,
	}).Info(message)
}

// NopNotifier discards notifications.
type NopNotifier struct{}

func (NopNotifier) Notify(context.Context, string, string, string) {}
