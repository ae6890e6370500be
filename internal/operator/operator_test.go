package operator

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/valuevault/bank-server/internal/notify"
	"github.com/valuevault/bank-server/internal/storage"
)

type stubTx struct {
	commits   int
	rollbacks int
	commitErr error
}

func (s *stubTx) Commit(context.Context) error {
	s.commits++
	return s.commitErr
}

func (s *stubTx) Rollback(context.Context) error {
	s.rollbacks++
	return nil
}

type stubAction struct {
	err       error
	performed int
}

func (a *stubAction) Perform(context.Context, *storage.Writer) error {
	a.performed++
	return a.err
}

type announcingAction struct {
	stubAction
	announced int
}

func (a *announcingAction) Announce(context.Context, notify.Notifier) {
	a.announced++
}

type recordingNotifier struct {
	notified int
}

func (n *recordingNotifier) Notify(context.Context, string, string, string) {
	n.notified++
}

func newTestOperator(tx *stubTx, notifier notify.Notifier) *Operator {
	return &Operator{
		notifier: notifier,
		write: func(context.Context) (*storage.Writer, error) {
			return &storage.Writer{Tx: tx}, nil
		},
	}
}

func runItem(t *testing.T, op *Operator, action *stubAction) error {
	t.Helper()
	respCh := make(chan ActionItemResponse, 1)
	op.processItem(ActionItem{
		ctx:      context.Background(),
		action:   action,
		response: respCh,
	})
	resp := <-respCh
	return resp.err
}

func TestProcessItem_CommitsOnSuccess(t *testing.T) {
	tx := &stubTx{}
	op := newTestOperator(tx, notify.NopNotifier{})

	action := &stubAction{}
	err := runItem(t, op, action)

	assert.NoError(t, err)
	assert.Equal(t, 1, action.performed)
	assert.Equal(t, 1, tx.commits)
	assert.Equal(t, 0, tx.rollbacks)
}

func TestProcessItem_RollsBackOnActionError(t *testing.T) {
	tx := &stubTx{}
	op := newTestOperator(tx, notify.NopNotifier{})

	actionErr := errors.New("insufficient balance")
	action := &stubAction{err: actionErr}
	err := runItem(t, op, action)

	assert.ErrorIs(t, err, actionErr)
	assert.Equal(t, 0, tx.commits)
	assert.Equal(t, 1, tx.rollbacks)
}

func TestProcessItem_SurfacesCommitError(t *testing.T) {
	commitErr := errors.New("connection lost")
	tx := &stubTx{commitErr: commitErr}
	op := newTestOperator(tx, notify.NopNotifier{})

	err := runItem(t, op, &stubAction{})

	assert.ErrorIs(t, err, commitErr)
}

func TestProcessItem_SurfacesWriteError(t *testing.T) {
	writeErr := errors.New("begin failed")
	op := &Operator{
		notifier: notify.NopNotifier{},
		write: func(context.Context) (*storage.Writer, error) {
			return nil, writeErr
		},
	}

	action := &stubAction{}
	err := runItem(t, op, action)

	assert.ErrorIs(t, err, writeErr)
	assert.Equal(t, 0, action.performed)
}

func TestProcessItem_AnnouncesAfterCommit(t *testing.T) {
	tx := &stubTx{}
	notifier := &recordingNotifier{}
	op := newTestOperator(tx, notifier)

	action := &announcingAction{}
	respCh := make(chan ActionItemResponse, 1)
	op.processItem(ActionItem{
		ctx:      context.Background(),
		action:   action,
		response: respCh,
	})
	resp := <-respCh

	assert.NoError(t, resp.err)
	assert.Equal(t, 1, tx.commits)
	assert.Equal(t, 1, action.announced)
}

func TestProcessItem_NoAnnouncementOnRollback(t *testing.T) {
	tx := &stubTx{}
	op := newTestOperator(tx, notify.NopNotifier{})

	action := &announcingAction{stubAction: stubAction{err: errors.New("boom")}}
	respCh := make(chan ActionItemResponse, 1)
	op.processItem(ActionItem{
		ctx:      context.Background(),
		action:   action,
		response: respCh,
	})
	resp := <-respCh

	assert.Error(t, resp.err)
	assert.Equal(t, 1, tx.rollbacks)
	assert.Equal(t, 0, action.announced)
}
