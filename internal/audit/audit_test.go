package audit

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pbmledger/pkg/requestcontext"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestPublisherEmit(t *testing.T) {
	store := NewInMemoryStore()
	publisher := NewPublisher(store, discardLogger())

	ctx := requestcontext.WithRequestID(context.Background(), "req-1")
	ctx = requestcontext.WithTime(ctx, time.Date(2026, time.June, 1, 9, 0, 0, 0, time.UTC))

	publisher.Emit(ctx, Event{
		Action:   EventMinted,
		Actor:    "bank-dbs",
		TypeID:   1,
		Quantity: 5,
	})

	events, err := publisher.List(ctx)
	require.NoError(t, err)
	require.Len(t, events, 1)

	got := events[0]
	assert.Equal(t, EventMinted, got.Action)
	assert.NotEmpty(t, got.ID, "id is assigned on emit")
	assert.Equal(t, "req-1", got.RequestID)
	assert.Equal(t, requestcontext.Now(ctx), got.Timestamp)

	select {
	case queued := <-publisher.Inbox():
		assert.Equal(t, got.ID, queued.ID)
	default:
		t.Fatal("event not handed to the inbox")
	}
}

func TestPublisherEmitStoreFailure(t *testing.T) {
	publisher := NewPublisher(failingStore{}, discardLogger())

	// Append failures are logged, not surfaced, and the event still reaches
	// the inbox.
	publisher.Emit(context.Background(), Event{Action: EventRedeemed, Actor: "bank-dbs"})

	select {
	case queued := <-publisher.Inbox():
		assert.Equal(t, EventRedeemed, queued.Action)
	default:
		t.Fatal("event not handed to the inbox")
	}
}

func TestPublisherFullInboxDoesNotBlock(t *testing.T) {
	publisher := NewPublisher(NewInMemoryStore(), discardLogger())

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 1_000; i++ {
			publisher.Emit(context.Background(), Event{Action: EventTransferred, Actor: "bank-dbs"})
		}
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("emit blocked on a full inbox")
	}

	events, err := publisher.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, events, 1_000, "the store keeps every event even when the inbox overflows")
}

func TestWorkerDrainsInbox(t *testing.T) {
	publisher := NewPublisher(NewInMemoryStore(), discardLogger())
	sink := &recordingSink{}
	worker := NewWorker(sink, publisher.Inbox(), discardLogger())

	ctx, cancel := context.WithCancel(context.Background())
	workerDone := make(chan error, 1)
	go func() { workerDone <- worker.Run(ctx) }()

	for i := 0; i < 5; i++ {
		publisher.Emit(ctx, Event{Action: EventMinted, Actor: "bank-dbs"})
	}

	require.Eventually(t, func() bool { return sink.count() == 5 },
		2*time.Second, 10*time.Millisecond)

	cancel()
	require.ErrorIs(t, <-workerDone, context.Canceled)
}

func TestWorkerSurvivesSinkFailure(t *testing.T) {
	publisher := NewPublisher(NewInMemoryStore(), discardLogger())
	sink := &recordingSink{failFirst: true}
	worker := NewWorker(sink, publisher.Inbox(), discardLogger())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = worker.Run(ctx) }()

	publisher.Emit(ctx, Event{Action: EventMinted, Actor: "bank-dbs"})
	publisher.Emit(ctx, Event{Action: EventRedeemed, Actor: "bank-dbs"})

	// The failed first delivery is dropped; the second still arrives.
	require.Eventually(t, func() bool { return sink.count() == 1 },
		2*time.Second, 10*time.Millisecond)
}

type failingStore struct{}

func (failingStore) Append(context.Context, Event) error { return errors.New("store down") }
func (failingStore) List(context.Context) ([]Event, error) {
	return nil, errors.New("store down")
}

type recordingSink struct {
	mu        sync.Mutex
	delivered []Event
	failFirst bool
	attempts  int
}

func (s *recordingSink) Publish(_ context.Context, event Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.attempts++
	if s.failFirst && s.attempts == 1 {
		return errors.New("broker unavailable")
	}
	s.delivered = append(s.delivered, event)
	return nil
}

func (s *recordingSink) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.delivered)
}
