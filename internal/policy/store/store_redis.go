package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	id "pbmledger/pkg/domain"
)

const (
	// Redis keys for the role registries.
	depositoryKey = "pbm:roles:depository"
	custodiansKey = "pbm:roles:custodians"
)

// RedisRoleStore is a Redis-backed role registry. This is the recommended
// store for distributed deployments where several ledger instances must see
// role changes immediately.
type RedisRoleStore struct {
	client *redis.Client
}

func NewRedis(client *redis.Client) *RedisRoleStore {
	return &RedisRoleStore{client: client}
}

func (s *RedisRoleStore) SetDepository(ctx context.Context, identity id.Identity) error {
	if err := s.client.Set(ctx, depositoryKey, identity.String(), 0).Err(); err != nil {
		return fmt.Errorf("set depository: %w", err)
	}
	return nil
}

func (s *RedisRoleStore) Depository(ctx context.Context) (id.Identity, error) {
	val, err := s.client.Get(ctx, depositoryKey).Result()
	if errors.Is(err, redis.Nil) {
		return id.ZeroIdentity, nil
	}
	if err != nil {
		return id.ZeroIdentity, fmt.Errorf("get depository: %w", err)
	}
	return id.Identity(val), nil
}

func (s *RedisRoleStore) SetCustodianBank(ctx context.Context, identity id.Identity, isBank bool) error {
	var err error
	if isBank {
		err = s.client.SAdd(ctx, custodiansKey, identity.String()).Err()
	} else {
		err = s.client.SRem(ctx, custodiansKey, identity.String()).Err()
	}
	if err != nil {
		return fmt.Errorf("set custodian flag: %w", err)
	}
	return nil
}

func (s *RedisRoleStore) IsCustodianBank(ctx context.Context, identity id.Identity) (bool, error) {
	isMember, err := s.client.SIsMember(ctx, custodiansKey, identity.String()).Result()
	if err != nil {
		return false, fmt.Errorf("custodian lookup: %w", err)
	}
	return isMember, nil
}
