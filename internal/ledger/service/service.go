package service

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"pbmledger/internal/audit"
	"pbmledger/internal/ledger/models"
	"pbmledger/internal/platform/metrics"
	"pbmledger/internal/policy"
	regmodels "pbmledger/internal/registry/models"
	"pbmledger/internal/reserve"
	id "pbmledger/pkg/domain"
	dErrors "pbmledger/pkg/domain-errors"
	"pbmledger/pkg/platform/sentinel"
	"pbmledger/pkg/requestcontext"
)

// Types resolves PBM type metadata. Implemented by the registry service.
type Types interface {
	Get(ctx context.Context, typeID id.TypeID) (*regmodels.PBMType, error)
}

// Policy answers movement decisions. Implemented by the policy service.
type Policy interface {
	TransferAllowed(ctx context.Context, category id.Category) bool
	RedeemAllowed(ctx context.Context, redeemer id.Identity, category id.Category, settlementAt, now time.Time) (bool, error)
	IsCustodianBank(ctx context.Context, identity id.Identity) (bool, error)
}

// BalanceStore persists per-(holder, type) balances and the per-type supply
// bookkeeping. Mint and Burn adjust outstanding supply and cumulative escrow
// attribution together with the balance so the conservation figures can
// never drift from the positions.
//
// RunAtomic runs fn so that either every store mutation inside commits or
// none do; stores back it with a transaction or a snapshot.
type BalanceStore interface {
	RunAtomic(ctx context.Context, fn func(ctx context.Context) error) error
	Mint(ctx context.Context, to id.Identity, typeID id.TypeID, qty, reserveIn uint64) error
	Burn(ctx context.Context, from id.Identity, typeID id.TypeID, qty, reserveOut uint64) error
	Transfer(ctx context.Context, from, to id.Identity, typeID id.TypeID, qty uint64) error
	Balance(ctx context.Context, holder id.Identity, typeID id.TypeID) (uint64, error)
	BalancesOf(ctx context.Context, holder id.Identity) ([]models.Balance, error)
	Supply(ctx context.Context, typeID id.TypeID) (models.Supply, error)
}

// Service is the ledger engine. It owns every balance-changing operation and
// consults the policy engine before any movement that is neither a pure mint
// nor a pure burn.
//
// All operations serialize on one mutex: the substrate this design assumes
// runs one ledger call at a time, and partial visibility of an in-flight
// operation must never be observable.
type Service struct {
	mu      sync.Mutex
	store   BalanceStore
	types   Types
	policy  Policy
	reserve reserve.Adapter
	audit   *audit.Publisher
	metrics *metrics.Metrics
	logger  *slog.Logger
	tracer  trace.Tracer
}

func New(store BalanceStore, types Types, policy Policy, adapter reserve.Adapter, auditor *audit.Publisher, m *metrics.Metrics, logger *slog.Logger) *Service {
	return &Service{
		store:   store,
		types:   types,
		policy:  policy,
		reserve: adapter,
		audit:   auditor,
		metrics: m,
		logger:  logger,
		tracer:  otel.Tracer("pbmledger/ledger"),
	}
}

// checkedMul multiplies without silent wraparound. Overflow is rejected
// outright rather than detected by a wrapped-to-zero value, since a wrong
// nonzero product would corrupt the conservation invariant unnoticed.
func checkedMul(a, b uint64) (uint64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	product := a * b
	if product/a != b {
		return 0, false
	}
	return product, true
}

// Mint issues quantity units of typeID to the recipient against reserve
// asset pulled from the caller. Minting carries no policy check: reserve
// payment is the only gate, for any registered type.
//
// Errors: CodeNotFound for an unregistered type; CodeInvalidArgument when
// the total reserve value is zero or overflows; CodeReserveTransfer when the
// reserve pull fails (no state changes in that case).
func (s *Service) Mint(ctx context.Context, to id.Identity, typeID id.TypeID, quantity uint64) (*models.MintReceipt, error) {
	ctx, span := s.tracer.Start(ctx, "ledger.Mint",
		trace.WithAttributes(attribute.Int64("pbm.type_id", int64(typeID))))
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	caller := requestcontext.Caller(ctx)
	if caller.IsZero() {
		return nil, dErrors.New(dErrors.CodeUnauthorized, "caller identity required")
	}
	if to.IsZero() {
		return nil, dErrors.New(dErrors.CodeInvalidArgument, "recipient identity cannot be zero")
	}

	typ, err := s.types.Get(ctx, typeID)
	if err != nil {
		return nil, err
	}

	total, ok := checkedMul(typ.FaceValue, quantity)
	if !ok {
		return nil, dErrors.New(dErrors.CodeInvalidArgument, "total reserve value overflows")
	}
	if total == 0 {
		return nil, dErrors.New(dErrors.CodeInvalidArgument, "total reserve value must be positive")
	}

	// Reserve pull and balance credit commit together: the credit is staged
	// first, then the external pull runs, and a pull failure discards the
	// staged credit.
	err = s.store.RunAtomic(ctx, func(ctx context.Context) error {
		if err := s.store.Mint(ctx, to, typeID, quantity, total); err != nil {
			return dErrors.Wrap(dErrors.CodeInternal, "failed to credit balance", err)
		}
		if err := s.reserve.PullIntoEscrow(ctx, reserve.Account(caller), total); err != nil {
			return dErrors.Wrap(dErrors.CodeReserveTransfer, "reserve transfer into escrow failed", err)
		}
		return nil
	})
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	s.metrics.Mints.Inc()
	s.audit.Emit(ctx, audit.Event{
		Action:        audit.EventMinted,
		Actor:         caller,
		TypeID:        typeID,
		Category:      typ.Category,
		To:            to,
		Quantity:      quantity,
		ReserveAmount: total,
	})
	s.logger.InfoContext(ctx, "units minted",
		"type_id", uint64(typeID), "to", to.String(), "quantity", quantity, "reserve_amount", total)

	return &models.MintReceipt{TypeID: typeID, To: to, Quantity: quantity, ReserveAmount: total}, nil
}

// Redeem burns quantity units held by from and pays the backing reserve
// asset out of escrow to the caller. The balance debit runs (and may fail)
// before the irreversible payout.
//
// Errors: CodeNotFound for an unregistered type; CodePolicyViolation when
// role or time conditions are unmet; CodeInsufficientBalance when from holds
// less than quantity; CodeReserveTransfer when the payout fails (the debit
// is rolled back).
func (s *Service) Redeem(ctx context.Context, from id.Identity, typeID id.TypeID, quantity uint64) (*models.RedeemReceipt, error) {
	ctx, span := s.tracer.Start(ctx, "ledger.Redeem",
		trace.WithAttributes(attribute.Int64("pbm.type_id", int64(typeID))))
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	caller := requestcontext.Caller(ctx)
	if caller.IsZero() {
		return nil, dErrors.New(dErrors.CodeUnauthorized, "caller identity required")
	}
	now := requestcontext.Now(ctx)

	typ, err := s.types.Get(ctx, typeID)
	if err != nil {
		return nil, err
	}

	allowed, err := s.policy.RedeemAllowed(ctx, caller, typ.Category, typ.SettlementAt, now)
	if err != nil {
		return nil, err
	}
	if !allowed {
		s.metrics.PolicyViolations.Inc()
		return nil, dErrors.Newf(dErrors.CodePolicyViolation,
			"redemption of type %d not permitted for %s", typeID, caller)
	}

	total, ok := checkedMul(typ.FaceValue, quantity)
	if !ok {
		return nil, dErrors.New(dErrors.CodeInvalidArgument, "total reserve value overflows")
	}
	if total == 0 {
		return nil, dErrors.New(dErrors.CodeInvalidArgument, "total reserve value must be positive")
	}

	err = s.store.RunAtomic(ctx, func(ctx context.Context) error {
		if err := s.store.Burn(ctx, from, typeID, quantity, total); err != nil {
			if errors.Is(err, sentinel.ErrInsufficient) {
				return dErrors.Newf(dErrors.CodeInsufficientBalance,
					"%s holds less than %d of type %d", from, quantity, typeID)
			}
			return dErrors.Wrap(dErrors.CodeInternal, "failed to debit balance", err)
		}
		if err := s.reserve.PayOutFromEscrow(ctx, reserve.Account(caller), total); err != nil {
			return dErrors.Wrap(dErrors.CodeReserveTransfer, "reserve payout from escrow failed", err)
		}
		return nil
	})
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	s.metrics.Redemptions.Inc()
	s.audit.Emit(ctx, audit.Event{
		Action:        audit.EventRedeemed,
		Actor:         caller,
		TypeID:        typeID,
		Category:      typ.Category,
		From:          from,
		Quantity:      quantity,
		ReserveAmount: total,
	})
	s.logger.InfoContext(ctx, "units redeemed",
		"type_id", uint64(typeID), "from", from.String(), "quantity", quantity, "reserve_amount", total)

	return &models.RedeemReceipt{TypeID: typeID, From: from, Quantity: quantity, ReserveAmount: total}, nil
}

// ConvertFrozenToSettlement burns quantity frozen units from the caller and
// mints the same quantity of an equal-face-value settlement type back to the
// caller. No reserve asset moves; the equal face values keep the
// conservation equality intact. This is the sole legal exit for frozen
// units.
//
// Errors: CodeNotFound for unregistered type ids; CodePolicyViolation when
// the category, face-value, or custodian-role conditions fail;
// CodeInsufficientBalance when the caller holds too few frozen units.
func (s *Service) ConvertFrozenToSettlement(ctx context.Context, frozenTypeID, settlementTypeID id.TypeID, quantity uint64) (*models.ConvertReceipt, error) {
	ctx, span := s.tracer.Start(ctx, "ledger.ConvertFrozenToSettlement",
		trace.WithAttributes(
			attribute.Int64("pbm.frozen_type_id", int64(frozenTypeID)),
			attribute.Int64("pbm.settlement_type_id", int64(settlementTypeID)),
		))
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	caller := requestcontext.Caller(ctx)
	if caller.IsZero() {
		return nil, dErrors.New(dErrors.CodeUnauthorized, "caller identity required")
	}

	frozen, err := s.types.Get(ctx, frozenTypeID)
	if err != nil {
		return nil, err
	}
	settlement, err := s.types.Get(ctx, settlementTypeID)
	if err != nil {
		return nil, err
	}

	isCustodian, err := s.policy.IsCustodianBank(ctx, caller)
	if err != nil {
		return nil, err
	}
	allowed := policy.ConversionAllowed(policy.ConversionFacts{
		SourceCategory:    frozen.Category,
		TargetCategory:    settlement.Category,
		SourceFaceValue:   frozen.FaceValue,
		TargetFaceValue:   settlement.FaceValue,
		CallerIsCustodian: isCustodian,
	})
	if !allowed {
		s.metrics.PolicyViolations.Inc()
		return nil, dErrors.Newf(dErrors.CodePolicyViolation,
			"conversion from type %d to type %d not permitted for %s", frozenTypeID, settlementTypeID, caller)
	}
	if quantity == 0 {
		return nil, dErrors.New(dErrors.CodeInvalidArgument, "quantity must be positive")
	}

	err = s.store.RunAtomic(ctx, func(ctx context.Context) error {
		if err := s.store.Burn(ctx, caller, frozenTypeID, quantity, 0); err != nil {
			if errors.Is(err, sentinel.ErrInsufficient) {
				return dErrors.Newf(dErrors.CodeInsufficientBalance,
					"%s holds less than %d of type %d", caller, quantity, frozenTypeID)
			}
			return dErrors.Wrap(dErrors.CodeInternal, "failed to burn frozen units", err)
		}
		if err := s.store.Mint(ctx, caller, settlementTypeID, quantity, 0); err != nil {
			return dErrors.Wrap(dErrors.CodeInternal, "failed to credit settlement units", err)
		}
		return nil
	})
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	s.metrics.Conversions.Inc()
	s.audit.Emit(ctx, audit.Event{
		Action:       audit.EventConverted,
		Actor:        caller,
		TypeID:       frozenTypeID,
		Category:     frozen.Category,
		TargetTypeID: settlementTypeID,
		Quantity:     quantity,
	})
	s.logger.InfoContext(ctx, "units converted",
		"frozen_type_id", uint64(frozenTypeID),
		"settlement_type_id", uint64(settlementTypeID),
		"holder", caller.String(),
		"quantity", quantity,
	)

	return &models.ConvertReceipt{
		FrozenTypeID:     frozenTypeID,
		SettlementTypeID: settlementTypeID,
		Holder:           caller,
		Quantity:         quantity,
	}, nil
}

// Transfer moves a batch of (type id, quantity) pairs from the caller to the
// recipient. The whole batch is validated against the policy engine before
// any balance changes apply; one disallowed pair aborts everything.
//
// Errors: CodeNotFound when any pair references an unregistered type;
// CodePolicyViolation when any pair's category forbids transfer;
// CodeInsufficientBalance when the caller's balance cannot cover a pair.
func (s *Service) Transfer(ctx context.Context, to id.Identity, movements []models.Movement) (*models.TransferReceipt, error) {
	ctx, span := s.tracer.Start(ctx, "ledger.Transfer",
		trace.WithAttributes(attribute.Int("pbm.batch_size", len(movements))))
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	caller := requestcontext.Caller(ctx)
	if caller.IsZero() {
		return nil, dErrors.New(dErrors.CodeUnauthorized, "caller identity required")
	}
	if to.IsZero() {
		return nil, dErrors.New(dErrors.CodeInvalidArgument, "recipient identity cannot be zero")
	}
	if len(movements) == 0 {
		return nil, dErrors.New(dErrors.CodeInvalidArgument, "movements must not be empty")
	}

	// Pre-commit gate over the whole batch: resolve and check every pair
	// before touching a single balance.
	entries := make([]*regmodels.PBMType, len(movements))
	for i, mv := range movements {
		typ, err := s.types.Get(ctx, mv.TypeID)
		if err != nil {
			return nil, err
		}
		entries[i] = typ
	}
	if err := s.validateBatch(ctx, entries); err != nil {
		s.metrics.PolicyViolations.Inc()
		span.RecordError(err)
		return nil, err
	}

	err := s.store.RunAtomic(ctx, func(ctx context.Context) error {
		for _, mv := range movements {
			if err := s.store.Transfer(ctx, caller, to, mv.TypeID, mv.Quantity); err != nil {
				if errors.Is(err, sentinel.ErrInsufficient) {
					return dErrors.Newf(dErrors.CodeInsufficientBalance,
						"%s holds less than %d of type %d", caller, mv.Quantity, mv.TypeID)
				}
				return dErrors.Wrap(dErrors.CodeInternal, "failed to move balance", err)
			}
		}
		return nil
	})
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	s.metrics.Transfers.Inc()
	for _, mv := range movements {
		s.audit.Emit(ctx, audit.Event{
			Action:   audit.EventTransferred,
			Actor:    caller,
			TypeID:   mv.TypeID,
			From:     caller,
			To:       to,
			Quantity: mv.Quantity,
		})
	}
	s.logger.InfoContext(ctx, "units transferred",
		"from", caller.String(), "to", to.String(), "batch_size", len(movements))

	return &models.TransferReceipt{From: caller, To: to, Movements: movements}, nil
}

// validateBatch is the transfer interception gate: every resolved pair must
// carry a transferable category or the batch fails whole.
func (s *Service) validateBatch(ctx context.Context, entries []*regmodels.PBMType) error {
	for _, typ := range entries {
		if !s.policy.TransferAllowed(ctx, typ.Category) {
			return dErrors.Newf(dErrors.CodePolicyViolation,
				"units of type %d are not transferable", typ.ID)
		}
	}
	return nil
}

// BalancesOf returns the holder's positions across all types.
func (s *Service) BalancesOf(ctx context.Context, holder id.Identity) ([]models.Balance, error) {
	balances, err := s.store.BalancesOf(ctx, holder)
	if err != nil {
		return nil, dErrors.Wrap(dErrors.CodeInternal, "failed to load balances", err)
	}
	return balances, nil
}

// Supply returns the per-type issuance bookkeeping used by the conservation
// audit.
//
// Errors: CodeNotFound for an unregistered type.
func (s *Service) Supply(ctx context.Context, typeID id.TypeID) (models.Supply, error) {
	if _, err := s.types.Get(ctx, typeID); err != nil {
		return models.Supply{}, err
	}
	supply, err := s.store.Supply(ctx, typeID)
	if err != nil {
		return models.Supply{}, dErrors.Wrap(dErrors.CodeInternal, "failed to load supply", err)
	}
	return supply, nil
}
