package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-scim-owner/internal/logger"
)

type keyValueRepository struct {
	*DB
	logger *logger.Logger
	now    func() time.Time
}

// NewKeyValueRepository returns a SQLite-backed [KeyValueStore].
func NewKeyValueRepository(db *DB, logger *logger.Logger) KeyValueStore {
	return &keyValueRepository{
		DB:     db,
		logger: logger,
		now:    time.Now,
	}
}

func (r *keyValueRepository) Get(ctx context.Context, key string) ([]byte, error) {
	if strings.TrimSpace(key) == "" {
		return nil, ErrEmptyKey
	}

	query, args, err := buildGetValueQuery(key)
	if err != nil {
		return nil, fmt.Errorf("build get query: %w", err)
	}

	var value []byte
	if err = r.DB.QueryRowContext(ctx, query, args...).Scan(&value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrKeyNotFound
		}
		r.logger.Err(err).
			Str("func", "keyValueRepository.Get").
			Str("key", key).
			Msg("failed to query stored value")
		return nil, fmt.Errorf("failed to get value (key=%s): %w", key, err)
	}

	return value, nil
}

func (r *keyValueRepository) Put(ctx context.Context, key string, value []byte) error {
	if strings.TrimSpace(key) == "" {
		return ErrEmptyKey
	}

	query, args, err := buildPutValueQuery(key, value, r.now())
	if err != nil {
		return fmt.Errorf("build put query: %w", err)
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		r.logger.Err(err).
			Str("func", "keyValueRepository.Put").
			Str("key", key).
			Msg("failed to execute upsert for value")
		return fmt.Errorf("failed to put value (key=%s): %w", key, err)
	}

	return nil
}

func (r *keyValueRepository) Delete(ctx context.Context, key string) error {
	if strings.TrimSpace(key) == "" {
		return ErrEmptyKey
	}

	query, args, err := buildDeleteValueQuery(key)
	if err != nil {
		return fmt.Errorf("build delete query: %w", err)
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		r.logger.Err(err).
			Str("func", "keyValueRepository.Delete").
			Str("key", key).
			Msg("failed to execute delete for value")
		return fmt.Errorf("failed to delete value (key=%s): %w", key, err)
	}

	return nil
}

func (r *keyValueRepository) Exists(ctx context.Context, key string) (bool, error) {
	if strings.TrimSpace(key) == "" {
		return false, ErrEmptyKey
	}

	query, args, err := buildExistsQuery(key)
	if err != nil {
		return false, fmt.Errorf("build exists query: %w", err)
	}

	var count int
	if err = r.DB.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		r.logger.Err(err).
			Str("func", "keyValueRepository.Exists").
			Str("key", key).
			Msg("failed to count stored values")
		return false, fmt.Errorf("failed to check value (key=%s): %w", key, err)
	}

	return count > 0, nil
}
