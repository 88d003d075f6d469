package audit

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"pbmledger/pkg/requestcontext"
)

// Store is an append-only audit sink.
type Store interface {
	Append(ctx context.Context, event Event) error
	List(ctx context.Context) ([]Event, error)
}

// Publisher captures structured audit events. It appends to the store
// synchronously and hands a copy to the background inbox for external sinks;
// a slow or absent external sink never blocks a ledger operation.
type Publisher struct {
	store  Store
	inbox  chan Event
	logger *slog.Logger
}

func NewPublisher(store Store, logger *slog.Logger) *Publisher {
	return &Publisher{
		store:  store,
		inbox:  make(chan Event, 256),
		logger: logger,
	}
}

// Inbox exposes the event stream for the worker.
func (p *Publisher) Inbox() <-chan Event {
	return p.inbox
}

// Emit records an audit event. Failures are logged, never surfaced: audit is
// observability, not part of the operation's outcome.
func (p *Publisher) Emit(ctx context.Context, event Event) {
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = requestcontext.Now(ctx)
	}
	if event.RequestID == "" {
		event.RequestID = requestcontext.RequestID(ctx)
	}

	if err := p.store.Append(ctx, event); err != nil {
		p.logger.ErrorContext(ctx, "audit append failed", "error", err, "action", string(event.Action))
	}

	select {
	case p.inbox <- event:
	default:
		p.logger.WarnContext(ctx, "audit inbox full, dropping event for external sink",
			"action", string(event.Action), "event_id", event.ID)
	}
}

// List returns the recorded events, oldest first.
func (p *Publisher) List(ctx context.Context) ([]Event, error) {
	return p.store.List(ctx)
}
