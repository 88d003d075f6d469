//go:build integration

package kafka

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/twmb/franz-go/pkg/kgo"

	"pbmledger/internal/audit"
	"pbmledger/pkg/testutil/containers"
)

func TestPublisher(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx := context.Background()
	redpanda := containers.NewRedpandaContainer(t)

	const topic = "pbm.audit.events"
	publisher, err := New(ctx, []string{redpanda.Broker}, topic)
	require.NoError(t, err)
	t.Cleanup(publisher.Close)

	event := audit.Event{
		ID:            uuid.NewString(),
		Timestamp:     time.Now().UTC(),
		Action:        audit.EventMinted,
		Actor:         "bank-dbs",
		TypeID:        1,
		Category:      "settlement",
		To:            "bank-dbs",
		Quantity:      5,
		ReserveAmount: 500,
		RequestID:     "req-1",
	}
	require.NoError(t, publisher.Publish(ctx, event))

	consumer, err := kgo.NewClient(
		kgo.SeedBrokers(redpanda.Broker),
		kgo.ConsumeTopics(topic),
		kgo.ConsumeResetOffset(kgo.NewOffset().AtStart()),
	)
	require.NoError(t, err)
	t.Cleanup(consumer.Close)

	fetchCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()
	fetches := consumer.PollFetches(fetchCtx)
	require.NoError(t, fetches.Err())

	records := fetches.Records()
	require.Len(t, records, 1)

	record := records[0]
	assert.Equal(t, []byte("bank-dbs"), record.Key, "events are keyed by actor")

	var got map[string]any
	require.NoError(t, json.Unmarshal(record.Value, &got))
	assert.Equal(t, event.ID, got["id"])
	assert.Equal(t, "units_minted", got["action"])
	assert.Equal(t, float64(500), got["reserve_amount"])
}

func TestNewIsIdempotent(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx := context.Background()
	redpanda := containers.NewRedpandaContainer(t)

	// Creating against an existing topic must not fail.
	first, err := New(ctx, []string{redpanda.Broker}, "pbm.audit.events")
	require.NoError(t, err)
	first.Close()

	second, err := New(ctx, []string{redpanda.Broker}, "pbm.audit.events")
	require.NoError(t, err)
	second.Close()
}
