//go:build integration

package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"pbmledger/internal/ledger/models"
	"pbmledger/internal/platform/postgres"
	regmodels "pbmledger/internal/registry/models"
	regstore "pbmledger/internal/registry/store"
	id "pbmledger/pkg/domain"
	"pbmledger/pkg/platform/sentinel"
	"pbmledger/pkg/testutil/containers"
)

type PostgresBalanceStoreSuite struct {
	suite.Suite
	postgres *containers.PostgresContainer
	store    *PostgresStore
	types    *regstore.PostgresStore
	typeID   id.TypeID
}

func TestPostgresBalanceStoreSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(PostgresBalanceStoreSuite))
}

func (s *PostgresBalanceStoreSuite) SetupSuite() {
	s.postgres = containers.NewPostgresContainer(s.T())
	s.Require().NoError(postgres.Migrate(context.Background(), s.postgres.DB))
	s.store = NewPostgres(s.postgres.DB)
	s.types = regstore.NewPostgres(s.postgres.DB)
}

func (s *PostgresBalanceStoreSuite) SetupTest() {
	ctx := context.Background()
	err := s.postgres.TruncateTables(ctx,
		"pbm_audit_events", "pbm_balances", "pbm_supplies", "pbm_types")
	s.Require().NoError(err)

	// Balances reference pbm_types, so each test starts from one registered
	// type.
	typeID, err := s.types.Create(ctx, &regmodels.PBMType{
		Category:     id.CategorySettlement,
		SettlementAt: time.Now().UTC().Add(24 * time.Hour),
		FaceValue:    100,
		Creator:      "bank-dbs",
		CreatedAt:    time.Now().UTC(),
	})
	s.Require().NoError(err)
	s.typeID = typeID
}

func (s *PostgresBalanceStoreSuite) TestMintAndSupply() {
	ctx := context.Background()

	s.Require().NoError(s.store.Mint(ctx, "bank-dbs", s.typeID, 5, 500))
	s.Require().NoError(s.store.Mint(ctx, "bank-dbs", s.typeID, 3, 300))

	qty, err := s.store.Balance(ctx, "bank-dbs", s.typeID)
	s.Require().NoError(err)
	s.Equal(uint64(8), qty)

	supply, err := s.store.Supply(ctx, s.typeID)
	s.Require().NoError(err)
	s.Equal(uint64(8), supply.Outstanding)
	s.Equal(uint64(800), supply.EscrowIn)
	s.Equal(uint64(800), supply.Escrowed())
}

func (s *PostgresBalanceStoreSuite) TestBurn() {
	ctx := context.Background()
	s.Require().NoError(s.store.Mint(ctx, "bank-dbs", s.typeID, 5, 500))

	s.Require().NoError(s.store.Burn(ctx, "bank-dbs", s.typeID, 2, 200))

	qty, err := s.store.Balance(ctx, "bank-dbs", s.typeID)
	s.Require().NoError(err)
	s.Equal(uint64(3), qty)

	supply, err := s.store.Supply(ctx, s.typeID)
	s.Require().NoError(err)
	s.Equal(uint64(3), supply.Outstanding)
	s.Equal(uint64(300), supply.Escrowed())

	err = s.store.Burn(ctx, "bank-dbs", s.typeID, 100, 10_000)
	s.Require().ErrorIs(err, sentinel.ErrInsufficient)
}

func (s *PostgresBalanceStoreSuite) TestTransfer() {
	ctx := context.Background()
	s.Require().NoError(s.store.Mint(ctx, "bank-dbs", s.typeID, 5, 500))

	s.Require().NoError(s.store.Transfer(ctx, "bank-dbs", "merchant-a", s.typeID, 2))

	from, err := s.store.Balance(ctx, "bank-dbs", s.typeID)
	s.Require().NoError(err)
	to, err := s.store.Balance(ctx, "merchant-a", s.typeID)
	s.Require().NoError(err)
	s.Equal(uint64(3), from)
	s.Equal(uint64(2), to)

	err = s.store.Transfer(ctx, "merchant-a", "bank-dbs", s.typeID, 99)
	s.Require().ErrorIs(err, sentinel.ErrInsufficient)
}

func (s *PostgresBalanceStoreSuite) TestBalancesOf() {
	ctx := context.Background()
	s.Require().NoError(s.store.Mint(ctx, "bank-dbs", s.typeID, 5, 500))
	s.Require().NoError(s.store.Burn(ctx, "bank-dbs", s.typeID, 5, 500))

	balances, err := s.store.BalancesOf(ctx, "bank-dbs")
	s.Require().NoError(err)
	s.Empty(balances, "zero positions are dropped")

	s.Require().NoError(s.store.Mint(ctx, "bank-dbs", s.typeID, 7, 700))
	balances, err = s.store.BalancesOf(ctx, "bank-dbs")
	s.Require().NoError(err)
	s.Equal([]models.Balance{{TypeID: s.typeID, Quantity: 7}}, balances)
}

func (s *PostgresBalanceStoreSuite) TestRunAtomicRollsBack() {
	ctx := context.Background()
	s.Require().NoError(s.store.Mint(ctx, "bank-dbs", s.typeID, 5, 500))

	boom := errors.New("reserve unavailable")
	err := s.store.RunAtomic(ctx, func(ctx context.Context) error {
		if err := s.store.Burn(ctx, "bank-dbs", s.typeID, 3, 300); err != nil {
			return err
		}
		return boom
	})
	s.Require().ErrorIs(err, boom)

	qty, err := s.store.Balance(ctx, "bank-dbs", s.typeID)
	s.Require().NoError(err)
	s.Equal(uint64(5), qty, "the staged debit is discarded with the transaction")

	supply, err := s.store.Supply(ctx, s.typeID)
	s.Require().NoError(err)
	s.Equal(uint64(5), supply.Outstanding)
	s.Equal(uint64(0), supply.EscrowOut)
}

func (s *PostgresBalanceStoreSuite) TestRunAtomicCommits() {
	ctx := context.Background()
	s.Require().NoError(s.store.Mint(ctx, "bank-dbs", s.typeID, 5, 500))

	err := s.store.RunAtomic(ctx, func(ctx context.Context) error {
		return s.store.Transfer(ctx, "bank-dbs", "merchant-a", s.typeID, 2)
	})
	s.Require().NoError(err)

	to, err := s.store.Balance(ctx, "merchant-a", s.typeID)
	s.Require().NoError(err)
	s.Equal(uint64(2), to)
}
