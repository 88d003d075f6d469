package reserve

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInMemoryLedger(t *testing.T) {
	t.Run("mint is owner gated", func(t *testing.T) {
		ledger := NewInMemoryLedger("owner")
		require.NoError(t, ledger.Mint("owner", "alice", 100))
		require.ErrorIs(t, ledger.Mint("alice", "alice", 100), ErrUnknownAccount)
		require.Equal(t, uint64(100), ledger.BalanceOf("alice"))
	})

	t.Run("transfer requires cover", func(t *testing.T) {
		ledger := NewInMemoryLedger("owner")
		require.NoError(t, ledger.Mint("owner", "alice", 100))

		require.NoError(t, ledger.Transfer("alice", "bob", 60))
		require.Equal(t, uint64(40), ledger.BalanceOf("alice"))
		require.Equal(t, uint64(60), ledger.BalanceOf("bob"))

		require.ErrorIs(t, ledger.Transfer("alice", "bob", 41), ErrInsufficientFunds)
	})

	t.Run("transferFrom draws down the allowance", func(t *testing.T) {
		ledger := NewInMemoryLedger("owner")
		require.NoError(t, ledger.Mint("owner", "alice", 100))
		ledger.Approve("alice", "spender", 70)

		require.NoError(t, ledger.TransferFrom("spender", "alice", "bob", 50))
		require.Equal(t, uint64(50), ledger.BalanceOf("bob"))

		// 20 of allowance left.
		require.ErrorIs(t, ledger.TransferFrom("spender", "alice", "bob", 30), ErrInsufficientAllowance)
		require.NoError(t, ledger.TransferFrom("spender", "alice", "bob", 20))
	})

	t.Run("transferFrom without approval", func(t *testing.T) {
		ledger := NewInMemoryLedger("owner")
		require.NoError(t, ledger.Mint("owner", "alice", 100))
		require.ErrorIs(t, ledger.TransferFrom("spender", "alice", "bob", 1), ErrInsufficientAllowance)
	})

	t.Run("allowed amount still needs funds", func(t *testing.T) {
		ledger := NewInMemoryLedger("owner")
		require.NoError(t, ledger.Mint("owner", "alice", 10))
		ledger.Approve("alice", "spender", 100)
		require.ErrorIs(t, ledger.TransferFrom("spender", "alice", "bob", 50), ErrInsufficientFunds)
	})
}

func TestEscrowAdapter(t *testing.T) {
	ctx := context.Background()
	ledger := NewInMemoryLedger("owner")
	adapter := NewEscrowAdapter(ledger, "escrow")
	require.Equal(t, Account("escrow"), adapter.Escrow())

	require.NoError(t, ledger.Mint("owner", "payer", 500))
	ledger.Approve("payer", "escrow", 500)

	t.Run("pull draws from the payer into escrow", func(t *testing.T) {
		require.NoError(t, adapter.PullIntoEscrow(ctx, "payer", 300))
		require.Equal(t, uint64(300), ledger.BalanceOf("escrow"))
		require.Equal(t, uint64(200), ledger.BalanceOf("payer"))
	})

	t.Run("payout moves escrowed funds to the recipient", func(t *testing.T) {
		require.NoError(t, adapter.PayOutFromEscrow(ctx, "recipient", 100))
		require.Equal(t, uint64(200), ledger.BalanceOf("escrow"))
		require.Equal(t, uint64(100), ledger.BalanceOf("recipient"))
	})

	t.Run("payout beyond escrow fails", func(t *testing.T) {
		require.ErrorIs(t, adapter.PayOutFromEscrow(ctx, "recipient", 1_000), ErrInsufficientFunds)
	})
}
