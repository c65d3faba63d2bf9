// Package storage persists the pricing configuration in PostgreSQL with a
// Redis read-through cache.
package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"go.uber.org/zap"

	"signquote/internal/config"
	"signquote/internal/quote"
	"signquote/pkg/redis"
)

// ErrNotFound is returned when no pricing configuration has been saved yet.
// Callers fall back to quote.DefaultPricing.
var ErrNotFound = errors.New("pricing config not found")

const (
	pricingConfigID = "default"
	pricingCacheKey = "pricing:config"
)

type Store struct {
	db     *sqlx.DB
	redis  *redis.Client
	logger *zap.Logger
}

func New(ctx context.Context, cfg config.Database, redisClient *redis.Client, logger *zap.Logger) (*Store, error) {
	const operation = "storage.New"

	connStr := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		cfg.Host,
		cfg.Port,
		cfg.User,
		cfg.Password,
		cfg.Name,
	)

	var db *sqlx.DB
	var err error

	retryPolicy := backoff.NewExponentialBackOff()
	retryPolicy.MaxElapsedTime = 2 * time.Minute
	retryPolicy.MaxInterval = 15 * time.Second

	logger.Info("Connecting to PostgreSQL...")

	err = backoff.RetryNotify(
		func() error {
			db, err = sqlx.ConnectContext(ctx, "postgres", connStr)
			if err != nil {
				return fmt.Errorf("connect: %w", err)
			}
			if err = db.PingContext(ctx); err != nil {
				return fmt.Errorf("ping: %w", err)
			}
			return nil
		},
		retryPolicy,
		func(err error, duration time.Duration) {
			logger.Warn("PostgreSQL connection failed, retrying...",
				zap.Error(err),
				zap.Duration("next_attempt_in", duration))
		},
	)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to connect after retries: %w", operation, err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	db.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	logger.Info("Successfully connected to PostgreSQL")
	return &Store{
		db:     db,
		redis:  redisClient,
		logger: logger,
	}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// DB exposes the underlying connection for migrations.
func (s *Store) DB() *sql.DB {
	return s.db.DB
}

// LoadPricing returns the saved pricing configuration, trying the Redis
// cache before PostgreSQL. A stored configuration that fails validation is
// surfaced as an error, never as silent zero prices.
func (s *Store) LoadPricing(ctx context.Context) (quote.PricingConfig, error) {
	const operation = "storage.LoadPricing"

	if cached, err := s.redis.Get(ctx, pricingCacheKey); err == nil {
		var cfg quote.PricingConfig
		if err := json.Unmarshal(cached, &cfg); err == nil {
			if err := cfg.Validate(); err == nil {
				return cfg, nil
			}
		}
		// Stale or corrupt cache entry, fall through to Postgres.
		_ = s.redis.Del(ctx, pricingCacheKey)
	}

	const query = `SELECT data FROM pricing_config WHERE id = $1`

	var raw []byte
	err := s.db.GetContext(ctx, &raw, query, pricingConfigID)
	if errors.Is(err, sql.ErrNoRows) {
		return quote.PricingConfig{}, ErrNotFound
	}
	if err != nil {
		return quote.PricingConfig{}, fmt.Errorf("%s: query: %w", operation, err)
	}

	var cfg quote.PricingConfig
	if err := json.Unmarshal(raw, &cfg); err != nil {
		return quote.PricingConfig{}, fmt.Errorf("%s: unmarshal: %w", operation, err)
	}
	if err := cfg.Validate(); err != nil {
		return quote.PricingConfig{}, fmt.Errorf("%s: stored config invalid: %w", operation, err)
	}

	if data, err := json.Marshal(cfg); err == nil {
		if err := s.redis.Set(ctx, pricingCacheKey, data); err != nil {
			s.logger.Warn("Failed to cache pricing config", zap.Error(err))
		}
	}
	return cfg, nil
}

// SavePricing validates and upserts the pricing configuration, then
// refreshes the cache.
func (s *Store) SavePricing(ctx context.Context, cfg quote.PricingConfig) error {
	const operation = "storage.SavePricing"

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("%s: %w", operation, err)
	}

	data, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("%s: marshal: %w", operation, err)
	}

	const query = `
        INSERT INTO pricing_config (id, data, updated_at)
        VALUES ($1, $2, NOW())
        ON CONFLICT (id) DO UPDATE SET data = EXCLUDED.data, updated_at = NOW()
    `
	if _, err := s.db.ExecContext(ctx, query, pricingConfigID, data); err != nil {
		return fmt.Errorf("%s: upsert: %w", operation, err)
	}

	if err := s.redis.Set(ctx, pricingCacheKey, data); err != nil {
		s.logger.Warn("Failed to refresh pricing config cache", zap.Error(err))
	}
	return nil
}
