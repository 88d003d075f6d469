package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"pbmledger/internal/registry/models"
	id "pbmledger/pkg/domain"
	"pbmledger/pkg/platform/sentinel"
	txcontext "pbmledger/pkg/platform/tx"
)

// PostgresStore persists PBM types. The BIGSERIAL primary key gives the
// sequential, never-reused id assignment the registry requires; entries are
// insert-only.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

const createTypeSQL = `
INSERT INTO pbm_types (category, settlement_at, face_value, creator, created_at)
VALUES ($1, $2, $3, $4, $5)
RETURNING id`

func (s *PostgresStore) Create(ctx context.Context, entry *models.PBMType) (id.TypeID, error) {
	exec := txcontext.ExecutorFrom(ctx, s.db)
	var typeID uint64
	err := exec.QueryRowContext(ctx, createTypeSQL,
		entry.Category.String(),
		entry.SettlementAt.UTC(),
		entry.FaceValue,
		entry.Creator.String(),
		entry.CreatedAt.UTC(),
	).Scan(&typeID)
	if err != nil {
		return 0, fmt.Errorf("create pbm type: %w", err)
	}
	return id.TypeID(typeID), nil
}

const getTypeSQL = `
SELECT id, category, settlement_at, face_value, creator, created_at
FROM pbm_types
WHERE id = $1`

func (s *PostgresStore) Get(ctx context.Context, typeID id.TypeID) (*models.PBMType, error) {
	exec := txcontext.ExecutorFrom(ctx, s.db)
	var (
		entry        models.PBMType
		rawID        uint64
		category     string
		creator      string
		settlementAt time.Time
		createdAt    time.Time
	)
	err := exec.QueryRowContext(ctx, getTypeSQL, uint64(typeID)).Scan(
		&rawID, &category, &settlementAt, &entry.FaceValue, &creator, &createdAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, sentinel.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get pbm type: %w", err)
	}
	entry.ID = id.TypeID(rawID)
	entry.Category = id.Category(category)
	entry.SettlementAt = settlementAt
	entry.Creator = id.Identity(creator)
	entry.CreatedAt = createdAt
	return &entry, nil
}
