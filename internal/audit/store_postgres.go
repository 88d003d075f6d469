package audit

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	id "pbmledger/pkg/domain"
	txcontext "pbmledger/pkg/platform/tx"
)

// PostgresStore persists audit events to an append-only table. Rows are kept
// after Kafka delivery; the table is the durable audit trail, Kafka is the
// streaming copy.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

const appendEventSQL = `
INSERT INTO pbm_audit_events
    (id, created_at, action, actor, type_id, category, target_type_id,
     from_identity, to_identity, quantity, reserve_amount, request_id)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

func (s *PostgresStore) Append(ctx context.Context, event Event) error {
	exec := txcontext.ExecutorFrom(ctx, s.db)
	_, err := exec.ExecContext(ctx, appendEventSQL,
		event.ID,
		event.Timestamp.UTC(),
		string(event.Action),
		event.Actor.String(),
		uint64(event.TypeID),
		event.Category.String(),
		uint64(event.TargetTypeID),
		event.From.String(),
		event.To.String(),
		event.Quantity,
		event.ReserveAmount,
		event.RequestID,
	)
	if err != nil {
		return fmt.Errorf("append audit event: %w", err)
	}
	return nil
}

const listEventsSQL = `
SELECT id, created_at, action, actor, type_id, category, target_type_id,
       from_identity, to_identity, quantity, reserve_amount, request_id
FROM pbm_audit_events
ORDER BY created_at ASC`

func (s *PostgresStore) List(ctx context.Context) ([]Event, error) {
	exec := txcontext.ExecutorFrom(ctx, s.db)
	rows, err := exec.QueryContext(ctx, listEventsSQL)
	if err != nil {
		return nil, fmt.Errorf("list audit events: %w", err)
	}
	defer rows.Close()

	var events []Event
	for rows.Next() {
		var (
			e            Event
			createdAt    time.Time
			action       string
			actor        string
			typeID       uint64
			category     string
			targetTypeID uint64
			from, to     string
		)
		if err := rows.Scan(&e.ID, &createdAt, &action, &actor, &typeID, &category,
			&targetTypeID, &from, &to, &e.Quantity, &e.ReserveAmount, &e.RequestID); err != nil {
			return nil, fmt.Errorf("scan audit event: %w", err)
		}
		e.Timestamp = createdAt
		e.Action = AuditEvent(action)
		e.Actor = id.Identity(actor)
		e.TypeID = id.TypeID(typeID)
		e.Category = id.Category(category)
		e.TargetTypeID = id.TypeID(targetTypeID)
		e.From = id.Identity(from)
		e.To = id.Identity(to)
		events = append(events, e)
	}
	return events, rows.Err()
}
