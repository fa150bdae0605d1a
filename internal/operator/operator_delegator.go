package operator

import (
	"context"
	"sync"

	"github.com/carson-networks/wallet-server/internal/operator/actions"
	"github.com/carson-networks/wallet-server/internal/state"
	"github.com/carson-networks/wallet-server/internal/storage"
)

// OperatorDelegator manages the queue, starts/stops the Operator, and enqueues items.
// A single worker drains the queue, so every action runs to completion, commit
// and session update included, before the next one starts.
type OperatorDelegator struct {
	storage  *storage.Storage
	sessions *state.Registry
	queue    chan ActionItem
	wg       sync.WaitGroup
	stopOnce sync.Once
}

func NewOperatorDelegator(s *storage.Storage, sessions *state.Registry) *OperatorDelegator {
	return &OperatorDelegator{
		storage:  s,
		sessions: sessions,
		queue:    make(chan ActionItem, 1000),
	}
}

func (d *OperatorDelegator) Start() {
	d.wg.Add(1)
	op := NewOperator(d.storage, d.sessions, d.queue)
	go func() {
		defer d.wg.Done()
		op.Run()
	}()
}

func (d *OperatorDelegator) Stop() {
	d.stopOnce.Do(func() {
		close(d.queue)
		d.wg.Wait()
	})
}

// Process queues the action and waits for its outcome. Cancelling ctx only
// abandons the call while the action is still waiting for a queue slot. Once
// queued, the outcome is always reported: the worker runs with ctx, so a
// cancelled action fails in storage instead of committing behind the caller.
func (d *OperatorDelegator) Process(ctx context.Context, action actions.IAction) error {
	respCh := make(chan ActionItemResponse, 1)
	item := ActionItem{
		ctx:      ctx,
		action:   action,
		response: respCh,
	}

	select {
	case d.queue <- item:
	case <-ctx.Done():
		return ctx.Err()
	}

	resp := <-respCh
	return resp.err
}
