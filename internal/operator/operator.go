package operator

import (
	"context"

	"github.com/davecgh/go-spew/spew"
	log "github.com/sirupsen/logrus"

	"github.com/carson-networks/wallet-server/internal/operator/actions"
	"github.com/carson-networks/wallet-server/internal/state"
	"github.com/carson-networks/wallet-server/internal/storage"
)

// Operator is the worker that processes items from the queue.
type Operator struct {
	storage  *storage.Storage
	sessions *state.Registry
	queue    chan ActionItem
}

func NewOperator(s *storage.Storage, sessions *state.Registry, queue chan ActionItem) *Operator {
	return &Operator{
		storage:  s,
		sessions: sessions,
		queue:    queue,
	}
}

// Run listens to the queue and processes items. Exits when the queue is closed.
func (o *Operator) Run() {
	for item := range o.queue {
		o.processItem(item)
	}
}

// processItem performs the action in its own transaction. The session state
// only changes after the commit succeeded.
func (o *Operator) processItem(item ActionItem) {
	if log.IsLevelEnabled(log.DebugLevel) {
		log.Debugf("Operator.processItem %s", spew.Sdump(item.action))
	}

	writer, err := o.storage.Write(item.ctx)
	if err != nil {
		item.response <- ActionItemResponse{err: err}
		return
	}

	err = item.action.Perform(item.ctx, writer)
	if err != nil {
		if rbErr := writer.Rollback(context.WithoutCancel(item.ctx)); rbErr != nil {
			log.WithError(rbErr).Warn("Operator.processItem.rollback")
		}
		item.response <- ActionItemResponse{err: err}
		return
	}

	if err = writer.Commit(item.ctx); err != nil {
		item.response <- ActionItemResponse{err: err}
		return
	}

	switch action := item.action.(type) {
	case actions.ISessionLoader:
		o.sessions.Load(action.Install())
	case actions.IReducer:
		o.sessions.Dispatch(action.Reduce())
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
