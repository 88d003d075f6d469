package service

import (
	"context"
	"log/slog"
	"time"

	"pbmledger/internal/audit"
	"pbmledger/internal/policy"
	id "pbmledger/pkg/domain"
	dErrors "pbmledger/pkg/domain-errors"
	"pbmledger/pkg/requestcontext"
)

// RoleStore persists the two role registries: the custodian-bank set and the
// single depository identity.
type RoleStore interface {
	SetDepository(ctx context.Context, identity id.Identity) error
	Depository(ctx context.Context) (id.Identity, error)
	SetCustodianBank(ctx context.Context, identity id.Identity, isBank bool) error
	IsCustodianBank(ctx context.Context, identity id.Identity) (bool, error)
}

// Service evaluates policy decisions and owns the owner-gated role
// registries. Decisions themselves live in the policy package as pure
// functions; this layer only resolves role lookups and enforces the owner
// capability on mutations.
type Service struct {
	store  RoleStore
	audit  *audit.Publisher
	logger *slog.Logger
}

func New(store RoleStore, auditor *audit.Publisher, logger *slog.Logger) *Service {
	return &Service{store: store, audit: auditor, logger: logger}
}

// requireOwner is the capability check at the boundary of every
// administrative operation. How the owner credential is established (single
// key, multi-sig) is the token layer's concern; the core only needs the
// boolean.
func requireOwner(ctx context.Context) error {
	if !requestcontext.IsOwner(ctx) {
		return dErrors.New(dErrors.CodeUnauthorized, "operation requires the policy owner")
	}
	return nil
}

// SetDepository registers the identity authorized to redeem settlement
// units. Changes take effect for all subsequent evaluations immediately.
//
// Errors: CodeUnauthorized for non-owner callers; CodeInvalidArgument for a
// zero identity.
func (s *Service) SetDepository(ctx context.Context, identity id.Identity) error {
	if err := requireOwner(ctx); err != nil {
		return err
	}
	if identity.IsZero() {
		return dErrors.New(dErrors.CodeInvalidArgument, "depository identity cannot be zero")
	}
	if err := s.store.SetDepository(ctx, identity); err != nil {
		return dErrors.Wrap(dErrors.CodeInternal, "failed to set depository", err)
	}

	s.audit.Emit(ctx, audit.Event{
		Action: audit.EventRoleChanged,
		Actor:  requestcontext.Caller(ctx),
		To:     identity,
	})
	s.logger.InfoContext(ctx, "depository updated", "identity", identity.String())
	return nil
}

// SetCustodianBank flags or unflags an identity as a custodian bank.
//
// Errors: CodeUnauthorized for non-owner callers.
func (s *Service) SetCustodianBank(ctx context.Context, identity id.Identity, isBank bool) error {
	if err := requireOwner(ctx); err != nil {
		return err
	}
	if identity.IsZero() {
		return dErrors.New(dErrors.CodeInvalidArgument, "custodian identity cannot be zero")
	}
	if err := s.store.SetCustodianBank(ctx, identity, isBank); err != nil {
		return dErrors.Wrap(dErrors.CodeInternal, "failed to set custodian flag", err)
	}

	s.audit.Emit(ctx, audit.Event{
		Action: audit.EventRoleChanged,
		Actor:  requestcontext.Caller(ctx),
		To:     identity,
	})
	s.logger.InfoContext(ctx, "custodian flag updated",
		"identity", identity.String(), "is_bank", isBank)
	return nil
}

// IsCustodianBank is a pure lookup with no side effects.
func (s *Service) IsCustodianBank(ctx context.Context, identity id.Identity) (bool, error) {
	isBank, err := s.store.IsCustodianBank(ctx, identity)
	if err != nil {
		return false, dErrors.Wrap(dErrors.CodeInternal, "custodian lookup failed", err)
	}
	return isBank, nil
}

// TransferAllowed reports whether ordinary transfers of the category are
// permitted.
func (s *Service) TransferAllowed(_ context.Context, category id.Category) bool {
	return policy.TransferAllowed(category)
}

// RedeemAllowed resolves the role registries and applies the redemption rule
// chain for the given redeemer, category and settlement time.
func (s *Service) RedeemAllowed(ctx context.Context, redeemer id.Identity, category id.Category, settlementAt, now time.Time) (bool, error) {
	depository, err := s.store.Depository(ctx)
	if err != nil {
		return false, dErrors.Wrap(dErrors.CodeInternal, "depository lookup failed", err)
	}
	isCustodian, err := s.store.IsCustodianBank(ctx, redeemer)
	if err != nil {
		return false, dErrors.Wrap(dErrors.CodeInternal, "custodian lookup failed", err)
	}

	return policy.RedeemAllowed(policy.RedeemFacts{
		Redeemer:            redeemer,
		Category:            category,
		SettlementAt:        settlementAt,
		Now:                 now,
		Depository:          depository,
		RedeemerIsCustodian: isCustodian,
	}), nil
}
