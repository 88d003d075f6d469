package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"pbmledger/internal/ledger/models"
	id "pbmledger/pkg/domain"
	"pbmledger/pkg/platform/sentinel"
	txcontext "pbmledger/pkg/platform/tx"
)

// PostgresStore persists balances in pbm_balances and per-type supply
// bookkeeping in pbm_supplies. RunAtomic wraps mutations in a database
// transaction carried through the context.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) RunAtomic(ctx context.Context, fn func(ctx context.Context) error) error {
	return txcontext.Run(ctx, s.db, fn)
}

const creditSQL = `
INSERT INTO pbm_balances (holder, type_id, quantity)
VALUES ($1, $2, $3)
ON CONFLICT (holder, type_id) DO UPDATE
SET quantity = pbm_balances.quantity + EXCLUDED.quantity`

// debitSQL only fires when the held quantity covers the debit; zero rows
// affected means an insufficient balance.
const debitSQL = `
UPDATE pbm_balances
SET quantity = quantity - $3
WHERE holder = $1 AND type_id = $2 AND quantity >= $3`

const adjustSupplySQL = `
INSERT INTO pbm_supplies (type_id, outstanding, escrow_in, escrow_out)
VALUES ($1, $2, $3, $4)
ON CONFLICT (type_id) DO UPDATE
SET outstanding = pbm_supplies.outstanding + EXCLUDED.outstanding,
    escrow_in   = pbm_supplies.escrow_in + EXCLUDED.escrow_in,
    escrow_out  = pbm_supplies.escrow_out + EXCLUDED.escrow_out`

func (s *PostgresStore) Mint(ctx context.Context, to id.Identity, typeID id.TypeID, qty, reserveIn uint64) error {
	exec := txcontext.ExecutorFrom(ctx, s.db)
	if _, err := exec.ExecContext(ctx, creditSQL, to.String(), uint64(typeID), qty); err != nil {
		return fmt.Errorf("credit balance: %w", err)
	}
	if _, err := exec.ExecContext(ctx, adjustSupplySQL, uint64(typeID), int64(qty), reserveIn, 0); err != nil {
		return fmt.Errorf("adjust supply: %w", err)
	}
	return nil
}

func (s *PostgresStore) Burn(ctx context.Context, from id.Identity, typeID id.TypeID, qty, reserveOut uint64) error {
	exec := txcontext.ExecutorFrom(ctx, s.db)
	if err := s.debit(ctx, exec, from, typeID, qty); err != nil {
		return err
	}
	if _, err := exec.ExecContext(ctx, adjustSupplySQL, uint64(typeID), -int64(qty), 0, reserveOut); err != nil {
		return fmt.Errorf("adjust supply: %w", err)
	}
	return nil
}

func (s *PostgresStore) Transfer(ctx context.Context, from, to id.Identity, typeID id.TypeID, qty uint64) error {
	exec := txcontext.ExecutorFrom(ctx, s.db)
	if err := s.debit(ctx, exec, from, typeID, qty); err != nil {
		return err
	}
	if _, err := exec.ExecContext(ctx, creditSQL, to.String(), uint64(typeID), qty); err != nil {
		return fmt.Errorf("credit balance: %w", err)
	}
	return nil
}

func (s *PostgresStore) debit(ctx context.Context, exec txcontext.Executor, from id.Identity, typeID id.TypeID, qty uint64) error {
	res, err := exec.ExecContext(ctx, debitSQL, from.String(), uint64(typeID), qty)
	if err != nil {
		return fmt.Errorf("debit balance: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("debit balance: %w", err)
	}
	if affected == 0 {
		return sentinel.ErrInsufficient
	}
	return nil
}

const balanceSQL = `
SELECT quantity FROM pbm_balances WHERE holder = $1 AND type_id = $2`

func (s *PostgresStore) Balance(ctx context.Context, holder id.Identity, typeID id.TypeID) (uint64, error) {
	exec := txcontext.ExecutorFrom(ctx, s.db)
	var qty uint64
	err := exec.QueryRowContext(ctx, balanceSQL, holder.String(), uint64(typeID)).Scan(&qty)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("load balance: %w", err)
	}
	return qty, nil
}

const balancesOfSQL = `
SELECT type_id, quantity FROM pbm_balances
WHERE holder = $1 AND quantity > 0
ORDER BY type_id`

func (s *PostgresStore) BalancesOf(ctx context.Context, holder id.Identity) ([]models.Balance, error) {
	exec := txcontext.ExecutorFrom(ctx, s.db)
	rows, err := exec.QueryContext(ctx, balancesOfSQL, holder.String())
	if err != nil {
		return nil, fmt.Errorf("load balances: %w", err)
	}
	defer rows.Close()

	var out []models.Balance
	for rows.Next() {
		var (
			typeID uint64
			qty    uint64
		)
		if err := rows.Scan(&typeID, &qty); err != nil {
			return nil, fmt.Errorf("scan balance: %w", err)
		}
		out = append(out, models.Balance{TypeID: id.TypeID(typeID), Quantity: qty})
	}
	return out, rows.Err()
}

const supplySQL = `
SELECT outstanding, escrow_in, escrow_out FROM pbm_supplies WHERE type_id = $1`

func (s *PostgresStore) Supply(ctx context.Context, typeID id.TypeID) (models.Supply, error) {
	exec := txcontext.ExecutorFrom(ctx, s.db)
	supply := models.Supply{TypeID: typeID}
	err := exec.QueryRowContext(ctx, supplySQL, uint64(typeID)).Scan(
		&supply.Outstanding, &supply.EscrowIn, &supply.EscrowOut,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return supply, nil
	}
	if err != nil {
		return models.Supply{}, fmt.Errorf("load supply: %w", err)
	}
	return supply, nil
}
