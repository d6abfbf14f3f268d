package redis

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/gdugdh24/pairly-backend/internal/domain"
	"github.com/gdugdh24/pairly-backend/internal/repository"
	"github.com/redis/go-redis/v9"
)

const verificationKeyPrefix = "phone_verification:"

// incrementIfExists avoids recreating an expired key without a TTL.
var incrementIfExists = redis.NewScript(`
if redis.call("EXISTS", KEYS[1]) == 1 then
	return redis.call("HINCRBY", KEYS[1], "attempts", 1)
end
return -1
`)

type verificationStore struct {
	rdb *redis.Client
}

func NewVerificationStore(rdb *redis.Client) repository.VerificationStore {
	return &verificationStore{rdb: rdb}
}

func verificationKey(id string) string {
	return verificationKeyPrefix + id
}

func (s *verificationStore) Save(ctx context.Context, v *domain.PendingVerification, ttl time.Duration) error {
	key := verificationKey(v.ID)
	_, err := s.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, key,
			"phone", v.Phone,
			"code_hash", v.CodeHash,
			"created_at", v.CreatedAt.UTC().Format(time.RFC3339Nano),
			"attempts", 0,
		)
		pipe.Expire(ctx, key, ttl)
		return nil
	})
	if err != nil {
		return fmt.Errorf("%w: save verification: %w", domain.ErrTransient, err)
	}
	return nil
}

func (s *verificationStore) Get(ctx context.Context, id string) (*domain.PendingVerification, error) {
	fields, err := s.rdb.HGetAll(ctx, verificationKey(id)).Result()
	if err != nil {
		return nil, fmt.Errorf("%w: load verification: %w", domain.ErrTransient, err)
	}
	if len(fields) == 0 {
		return nil, domain.ErrVerificationNotFound
	}

	createdAt, err := time.Parse(time.RFC3339Nano, fields["created_at"])
	if err != nil {
		return nil, fmt.Errorf("corrupt verification %s: %w", id, err)
	}

	return &domain.PendingVerification{
		ID:        id,
		Phone:     fields["phone"],
		CodeHash:  fields["code_hash"],
		CreatedAt: createdAt,
	}, nil
}

func (s *verificationStore) IncrementAttempts(ctx context.Context, id string) (int64, error) {
	res, err := incrementIfExists.Run(ctx, s.rdb, []string{verificationKey(id)}).Result()
	if err != nil {
		return 0, fmt.Errorf("%w: count attempt: %w", domain.ErrTransient, err)
	}

	attempts, ok := res.(int64)
	if !ok {
		attempts, err = strconv.ParseInt(fmt.Sprint(res), 10, 64)
		if err != nil {
			return 0, fmt.Errorf("unexpected attempts reply %v", res)
		}
	}
	if attempts < 0 {
		return 0, domain.ErrVerificationNotFound
	}
	return attempts, nil
}

func (s *verificationStore) Delete(ctx context.Context, id string) error {
	err := s.rdb.Del(ctx, verificationKey(id)).Err()
	if err != nil && !errors.Is(err, redis.Nil) {
		return fmt.Errorf("%w: delete verification: %w", domain.ErrTransient, err)
	}
	return nil
}
