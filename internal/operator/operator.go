package operator

import (
	"context"

	"github.com/valuevault/bank-server/internal/notify"
	"github.com/valuevault/bank-server/internal/operator/actions"
	"github.com/valuevault/bank-server/internal/storage"
)

// Operator is the worker that processes items from the queue.
type Operator struct {
	notifier notify.Notifier
	queue    chan ActionItem

	// write opens the transaction-scoped Writer an action performs in.
	write func(ctx context.Context) (*storage.Writer, error)
}

func NewOperator(s *storage.Storage, notifier notify.Notifier, queue chan ActionItem) *Operator {
	return &Operator{
		notifier: notifier,
		queue:    queue,
		write:    s.Write,
	}
}

// Run listens to the queue and processes items. Exits when the queue is closed.
func (o *Operator) Run() {
	for item := range o.queue {
		o.processItem(item)
	}
}

func (o *Operator) processItem(item ActionItem) {
	writer, err := o.write(item.ctx)
	if err != nil {
		item.response <- ActionItemResponse{err: err}
		return
	}

	err = item.action.Perform(item.ctx, writer)
	if err != nil {
		_ = writer.Rollback()
		item.response <- ActionItemResponse{err: err}
		return
	}

	if err = writer.Commit(); err != nil {
		item.response <- ActionItemResponse{err: err}
		return
	}

	// Confirmations go out only for durable state.
	if announcer, ok := item.action.(actions.Announcer); ok && o.notifier != nil {
		announcer.Announce(item.ctx, o.notifier)
	}

	item.response <- ActionItemResponse{}
}

type ActionItem struct {
	ctx      context.Context
	action   actions.IAction
	response chan ActionItemResponse
}

type ActionItemResponse struct {
	err error
}
