package audit

import (
	"context"
	"log/slog"
)

// Sink receives audit events for delivery outside the process.
type Sink interface {
	Publish(ctx context.Context, event Event) error
}

// NopSink discards events; used when no external sink is configured.
type NopSink struct{}

func (NopSink) Publish(context.Context, Event) error { return nil }

// Worker drains the publisher inbox into an external sink. It keeps
// background delivery off the ledger's critical path.
type Worker struct {
	sink   Sink
	inbox  <-chan Event
	logger *slog.Logger
}

func NewWorker(sink Sink, inbox <-chan Event, logger *slog.Logger) *Worker {
	return &Worker{sink: sink, inbox: inbox, logger: logger}
}

// Run delivers events until ctx is cancelled. Delivery failures are logged
// and the event dropped; the in-process store already holds the record.
func (w *Worker) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event := <-w.inbox:
			if err := w.sink.Publish(ctx, event); err != nil {
				w.logger.ErrorContext(ctx, "audit sink publish failed",
					"error", err, "event_id", event.ID, "action", string(event.Action))
			}
		}
	}
}
