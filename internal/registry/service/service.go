package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"pbmledger/internal/audit"
	"pbmledger/internal/platform/metrics"
	"pbmledger/internal/registry/models"
	id "pbmledger/pkg/domain"
	dErrors "pbmledger/pkg/domain-errors"
	"pbmledger/pkg/platform/sentinel"
	"pbmledger/pkg/requestcontext"
)

// Store persists PBM type entries. Create assigns the next sequential id
// starting at 1; Get returns sentinel.ErrNotFound for ids never assigned.
type Store interface {
	Create(ctx context.Context, entry *models.PBMType) (id.TypeID, error)
	Get(ctx context.Context, typeID id.TypeID) (*models.PBMType, error)
}

// Service owns creation rules for PBM types. Entries are immutable once
// stored; the service exposes no mutation besides Create.
type Service struct {
	store   Store
	audit   *audit.Publisher
	metrics *metrics.Metrics
	logger  *slog.Logger
}

func New(store Store, auditor *audit.Publisher, m *metrics.Metrics, logger *slog.Logger) *Service {
	return &Service{store: store, audit: auditor, metrics: m, logger: logger}
}

// CreateType registers a new PBM type and returns its assigned id.
//
// Errors: CodeInvalidArgument on a non-positive face value or, for
// non-frozen categories, a settlement time not strictly in the future;
// CodeUnauthorized when no caller identity is present.
func (s *Service) CreateType(ctx context.Context, category id.Category, settlementAt time.Time, faceValue uint64) (*models.PBMType, error) {
	creator := requestcontext.Caller(ctx)
	if creator.IsZero() {
		return nil, dErrors.New(dErrors.CodeUnauthorized, "caller identity required")
	}
	if !category.IsValid() {
		return nil, dErrors.Newf(dErrors.CodeInvalidArgument, "invalid category %q", category)
	}
	if faceValue == 0 {
		return nil, dErrors.New(dErrors.CodeInvalidArgument, "face value must be positive")
	}

	now := requestcontext.Now(ctx)
	// Frozen types are never redeemable, so their settlement time is stored
	// but not validated as a future instant.
	if category != id.CategoryFrozen && !settlementAt.After(now) {
		return nil, dErrors.New(dErrors.CodeInvalidArgument, "settlement time must be in the future")
	}

	entry := &models.PBMType{
		Category:     category,
		SettlementAt: settlementAt,
		FaceValue:    faceValue,
		Creator:      creator,
		CreatedAt:    now,
	}
	typeID, err := s.store.Create(ctx, entry)
	if err != nil {
		s.logger.ErrorContext(ctx, "create type failed", "error", err)
		return nil, dErrors.Wrap(dErrors.CodeInternal, "failed to register type", err)
	}
	entry.ID = typeID

	s.metrics.TypesCreated.Inc()
	s.audit.Emit(ctx, audit.Event{
		Action:   audit.EventTypeCreated,
		Actor:    creator,
		TypeID:   typeID,
		Category: category,
		Quantity: 0,
	})
	s.logger.InfoContext(ctx, "pbm type created",
		"type_id", uint64(typeID),
		"category", category.String(),
		"face_value", faceValue,
	)
	return entry, nil
}

// Get returns the entry for typeID.
//
// Errors: CodeNotFound when the id was never assigned.
func (s *Service) Get(ctx context.Context, typeID id.TypeID) (*models.PBMType, error) {
	entry, err := s.store.Get(ctx, typeID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.Newf(dErrors.CodeNotFound, "type %d does not exist", typeID)
		}
		return nil, dErrors.Wrap(dErrors.CodeInternal, "failed to load type", err)
	}
	return entry, nil
}
