//go:build integration

package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	id "pbmledger/pkg/domain"
	"pbmledger/pkg/testutil/containers"
)

type RedisRoleStoreSuite struct {
	suite.Suite
	redis *containers.RedisContainer
	store *RedisRoleStore
}

func TestRedisRoleStoreSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(RedisRoleStoreSuite))
}

func (s *RedisRoleStoreSuite) SetupSuite() {
	s.redis = containers.NewRedisContainer(s.T())
	s.store = NewRedis(s.redis.Client)
}

func (s *RedisRoleStoreSuite) SetupTest() {
	s.Require().NoError(s.redis.FlushAll(context.Background()))
}

func (s *RedisRoleStoreSuite) TestDepository() {
	ctx := context.Background()

	got, err := s.store.Depository(ctx)
	s.Require().NoError(err)
	s.True(got.IsZero(), "no depository until one is registered")

	s.Require().NoError(s.store.SetDepository(ctx, "central-depository"))

	got, err = s.store.Depository(ctx)
	s.Require().NoError(err)
	s.Equal(id.Identity("central-depository"), got)

	// Re-registration replaces the previous depository.
	s.Require().NoError(s.store.SetDepository(ctx, "other-depository"))
	got, err = s.store.Depository(ctx)
	s.Require().NoError(err)
	s.Equal(id.Identity("other-depository"), got)
}

func (s *RedisRoleStoreSuite) TestCustodianFlag() {
	ctx := context.Background()

	isBank, err := s.store.IsCustodianBank(ctx, "custodian-bank")
	s.Require().NoError(err)
	s.False(isBank)

	s.Require().NoError(s.store.SetCustodianBank(ctx, "custodian-bank", true))
	isBank, err = s.store.IsCustodianBank(ctx, "custodian-bank")
	s.Require().NoError(err)
	s.True(isBank)

	s.Require().NoError(s.store.SetCustodianBank(ctx, "custodian-bank", false))
	isBank, err = s.store.IsCustodianBank(ctx, "custodian-bank")
	s.Require().NoError(err)
	s.False(isBank)
}

func (s *RedisRoleStoreSuite) TestUnflagUnknownIdentity() {
	// SRem of a missing member is a no-op, not an error.
	s.Require().NoError(s.store.SetCustodianBank(context.Background(), "nobody", false))
}
