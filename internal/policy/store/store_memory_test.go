package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	id "pbmledger/pkg/domain"
)

type RoleStoreSuite struct {
	suite.Suite
	store *InMemoryRoleStore
}

func (s *RoleStoreSuite) SetupTest() {
	s.store = NewInMemory()
}

func TestRoleStoreSuite(t *testing.T) {
	suite.Run(t, new(RoleStoreSuite))
}

func (s *RoleStoreSuite) TestDepository() {
	s.Run("unset depository reads as zero", func() {
		depository, err := s.store.Depository(context.Background())
		s.Require().NoError(err)
		s.True(depository.IsZero())
	})

	s.Run("set then read back", func() {
		s.Require().NoError(s.store.SetDepository(context.Background(), "central-depository"))
		depository, err := s.store.Depository(context.Background())
		s.Require().NoError(err)
		s.Equal(id.Identity("central-depository"), depository)
	})

	s.Run("replacement overwrites", func() {
		s.Require().NoError(s.store.SetDepository(context.Background(), "a"))
		s.Require().NoError(s.store.SetDepository(context.Background(), "b"))
		depository, err := s.store.Depository(context.Background())
		s.Require().NoError(err)
		s.Equal(id.Identity("b"), depository)
	})
}

func (s *RoleStoreSuite) TestCustodianSet() {
	ctx := context.Background()

	isBank, err := s.store.IsCustodianBank(ctx, "bank-dbs")
	s.Require().NoError(err)
	s.False(isBank)

	s.Require().NoError(s.store.SetCustodianBank(ctx, "bank-dbs", true))
	isBank, err = s.store.IsCustodianBank(ctx, "bank-dbs")
	s.Require().NoError(err)
	s.True(isBank)

	s.Require().NoError(s.store.SetCustodianBank(ctx, "bank-dbs", false))
	isBank, err = s.store.IsCustodianBank(ctx, "bank-dbs")
	s.Require().NoError(err)
	s.False(isBank)
}
