//go:build integration

package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"pbmledger/internal/platform/postgres"
	"pbmledger/internal/registry/models"
	id "pbmledger/pkg/domain"
	"pbmledger/pkg/platform/sentinel"
	"pbmledger/pkg/testutil/containers"
)

type PostgresTypeStoreSuite struct {
	suite.Suite
	postgres *containers.PostgresContainer
	store    *PostgresStore
}

func TestPostgresTypeStoreSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(PostgresTypeStoreSuite))
}

func (s *PostgresTypeStoreSuite) SetupSuite() {
	s.postgres = containers.NewPostgresContainer(s.T())
	s.Require().NoError(postgres.Migrate(context.Background(), s.postgres.DB))
	s.store = NewPostgres(s.postgres.DB)
}

func (s *PostgresTypeStoreSuite) SetupTest() {
	err := s.postgres.TruncateTables(context.Background(),
		"pbm_audit_events", "pbm_balances", "pbm_supplies", "pbm_types")
	s.Require().NoError(err)
}

func (s *PostgresTypeStoreSuite) TestCreateAndGet() {
	ctx := context.Background()
	entry := &models.PBMType{
		Category:     id.CategorySettlement,
		SettlementAt: time.Date(2026, time.December, 1, 0, 0, 0, 0, time.UTC),
		FaceValue:    100,
		Creator:      "bank-dbs",
		CreatedAt:    time.Now().UTC().Truncate(time.Microsecond),
	}

	typeID, err := s.store.Create(ctx, entry)
	s.Require().NoError(err)
	s.Equal(id.TypeID(1), typeID)

	found, err := s.store.Get(ctx, typeID)
	s.Require().NoError(err)
	s.Equal(typeID, found.ID)
	s.Equal(id.CategorySettlement, found.Category)
	s.Equal(uint64(100), found.FaceValue)
	s.Equal(id.Identity("bank-dbs"), found.Creator)
	s.True(entry.SettlementAt.Equal(found.SettlementAt))
}

func (s *PostgresTypeStoreSuite) TestSequentialIDs() {
	ctx := context.Background()
	for i := 1; i <= 3; i++ {
		typeID, err := s.store.Create(ctx, &models.PBMType{
			Category:     id.CategoryFrozen,
			SettlementAt: time.Now().UTC(),
			FaceValue:    50,
			Creator:      "bank-dbs",
			CreatedAt:    time.Now().UTC(),
		})
		s.Require().NoError(err)
		s.Equal(id.TypeID(i), typeID)
	}
}

func (s *PostgresTypeStoreSuite) TestGetUnknown() {
	_, err := s.store.Get(context.Background(), 999)
	s.Require().ErrorIs(err, sentinel.ErrNotFound)
}
