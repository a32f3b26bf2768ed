package storage

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisConfig holds Redis connection configuration parameters
type RedisConfig struct {
	// Redis connection settings
	Addr     string `json:"addr"`     // Redis server address (host:port)
	Password string `json:"password"` // Redis password (optional)
	DB       int    `json:"db"`       // Redis database number

	// Connection pool settings
	DialTimeout  time.Duration `json:"dial_timeout"`  // Timeout for establishing connection
	ReadTimeout  time.Duration `json:"read_timeout"`  // Timeout for socket reads
	WriteTimeout time.Duration `json:"write_timeout"` // Timeout for socket writes
	PoolSize     int           `json:"pool_size"`     // Maximum number of socket connections

	// Resilience settings
	RetryConfig *RetryConfig `json:"retry_config"` // Retry configuration for operations
}

// RetryConfig defines retry behavior with exponential backoff
type RetryConfig struct {
	MaxAttempts  int           `json:"max_attempts"`  // Maximum number of retry attempts
	InitialDelay time.Duration `json:"initial_delay"` // Initial delay before first retry
	MaxDelay     time.Duration `json:"max_delay"`     // Maximum delay between retries
	Multiplier   float64       `json:"multiplier"`    // Backoff multiplier
	Jitter       bool          `json:"jitter"`        // Whether to add random jitter
}

// DefaultRetryConfig returns a RetryConfig with sensible default values
func DefaultRetryConfig() *RetryConfig {
	return &RetryConfig{
		MaxAttempts:  3,
		InitialDelay: 100 * time.Millisecond,
		MaxDelay:     5 * time.Second,
		Multiplier:   2.0,
		Jitter:       true,
	}
}

// DefaultRedisConfig returns a RedisConfig with sensible default values
func DefaultRedisConfig() *RedisConfig {
	return &RedisConfig{
		Addr:         "localhost:6379",
		Password:     "",
		DB:           0,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
		RetryConfig:  DefaultRetryConfig(),
	}
}

// RedisBackend implements Backend using a go-redis client with retry logic
type RedisBackend struct {
	client *redis.Client
	config *RedisConfig
}

// NewRedisBackend creates a new Redis-backed blob store with the provided
// configuration
func NewRedisBackend(config *RedisConfig) (*RedisBackend, error) {
	if config == nil {
		config = DefaultRedisConfig()
	}

	// Validate configuration
	if err := validateRedisConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	client := redis.NewClient(&redis.Options{
		Addr:         config.Addr,
		Password:     config.Password,
		DB:           config.DB,
		DialTimeout:  config.DialTimeout,
		ReadTimeout:  config.ReadTimeout,
		WriteTimeout: config.WriteTimeout,
		PoolSize:     config.PoolSize,
	})

	return &RedisBackend{
		client: client,
		config: config,
	}, nil
}

// validateRedisConfig validates the Redis configuration parameters
func validateRedisConfig(config *RedisConfig) error {
	if config.Addr == "" {
		return fmt.Errorf("redis address cannot be empty")
	}

	if config.DB < 0 || config.DB > 15 {
		return fmt.Errorf("redis database must be between 0 and 15, got %d", config.DB)
	}

	if config.DialTimeout <= 0 {
		return fmt.Errorf("dial timeout must be positive, got %v", config.DialTimeout)
	}

	if config.ReadTimeout <= 0 {
		return fmt.Errorf("read timeout must be positive, got %v", config.ReadTimeout)
	}

	if config.WriteTimeout <= 0 {
		return fmt.Errorf("write timeout must be positive, got %v", config.WriteTimeout)
	}

	if config.PoolSize <= 0 {
		return fmt.Errorf("pool size must be positive, got %d", config.PoolSize)
	}

	if config.RetryConfig != nil {
		if err := validateRetryConfig(config.RetryConfig); err != nil {
			return fmt.Errorf("invalid retry configuration: %w", err)
		}
	}

	return nil
}

// validateRetryConfig validates the retry configuration parameters
func validateRetryConfig(config *RetryConfig) error {
	if config.MaxAttempts < 0 {
		return fmt.Errorf("max attempts cannot be negative, got %d", config.MaxAttempts)
	}

	if config.InitialDelay < 0 {
		return fmt.Errorf("initial delay cannot be negative, got %v", config.InitialDelay)
	}

	if config.MaxDelay < 0 {
		return fmt.Errorf("max delay cannot be negative, got %v", config.MaxDelay)
	}

	if config.Multiplier < 1.0 {
		return fmt.Errorf("multiplier must be >= 1.0, got %f", config.Multiplier)
	}

	if config.InitialDelay > config.MaxDelay {
		return fmt.Errorf("initial delay (%v) cannot be greater than max delay (%v)", config.InitialDelay, config.MaxDelay)
	}

	return nil
}

// Get retrieves the value for key with retry logic
func (rb *RedisBackend) Get(ctx context.Context, key string) (string, error) {
	var result string
	err := rb.executeWithRetry(ctx, func() error {
		val, err := rb.client.Get(ctx, key).Result()
		if err != nil {
			return err
		}
		result = val
		return nil
	})
	if errors.Is(err, redis.Nil) {
		return "", ErrKeyNotFound
	}
	return result, err
}

// Set stores value under key with retry logic. Entries do not carry a
// per-key TTL; freshness is governed by the store-wide timestamp.
func (rb *RedisBackend) Set(ctx context.Context, key, value string) error {
	return rb.executeWithRetry(ctx, func() error {
		return rb.client.Set(ctx, key, value, 0).Err()
	})
}

// Delete removes the given keys with retry logic
func (rb *RedisBackend) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	return rb.executeWithRetry(ctx, func() error {
		return rb.client.Del(ctx, keys...).Err()
	})
}

// Ping performs a health check on the Redis connection
func (rb *RedisBackend) Ping(ctx context.Context) error {
	return rb.executeWithRetry(ctx, func() error {
		pong, err := rb.client.Ping(ctx).Result()
		if err != nil {
			return fmt.Errorf("redis health check failed: %w", err)
		}
		if pong != "PONG" {
			return fmt.Errorf("unexpected ping response: %s", pong)
		}
		return nil
	})
}

// Close closes the Redis client connection
func (rb *RedisBackend) Close() error {
	return rb.client.Close()
}

// Client returns the underlying Redis client for direct access
func (rb *RedisBackend) Client() *redis.Client {
	return rb.client
}

// isRetryableError determines if an error should trigger a retry
func isRetryableError(err error) bool {
	if err == nil {
		return false
	}

	// A miss is a definitive answer, never a retry
	if errors.Is(err, redis.Nil) {
		return false
	}

	errorStr := strings.ToLower(err.Error())

	// Connection errors
	if strings.Contains(errorStr, "connection refused") ||
		strings.Contains(errorStr, "connection reset") ||
		strings.Contains(errorStr, "connection timeout") ||
		strings.Contains(errorStr, "network is unreachable") ||
		strings.Contains(errorStr, "no route to host") ||
		strings.Contains(errorStr, "broken pipe") ||
		strings.Contains(errorStr, "i/o timeout") {
		return true
	}

	// Redis-specific errors that might be retryable
	if strings.Contains(errorStr, "loading") ||
		strings.Contains(errorStr, "busy") ||
		strings.Contains(errorStr, "tryagain") {
		return true
	}

	return false
}

// calculateBackoffDelay calculates the delay for the next retry attempt
func (rb *RedisBackend) calculateBackoffDelay(attempt int) time.Duration {
	config := rb.config.RetryConfig
	if config == nil {
		return time.Second
	}

	// Calculate exponential backoff
	delay := float64(config.InitialDelay) * math.Pow(config.Multiplier, float64(attempt))

	// Cap at max delay
	if delay > float64(config.MaxDelay) {
		delay = float64(config.MaxDelay)
	}

	// Add jitter if enabled
	if config.Jitter {
		jitter := rand.Float64() * 0.1 * delay // 10% jitter
		delay += jitter
	}

	return time.Duration(delay)
}

// executeWithRetry executes a function with retry logic
func (rb *RedisBackend) executeWithRetry(ctx context.Context, fn func() error) error {
	if rb.config.RetryConfig == nil || rb.config.RetryConfig.MaxAttempts <= 1 {
		return fn()
	}

	var lastErr error
	maxAttempts := rb.config.RetryConfig.MaxAttempts

	for attempt := 0; attempt < maxAttempts; attempt++ {
		err := fn()
		if err == nil {
			return nil
		}

		lastErr = err

		if !isRetryableError(err) {
			return err
		}

		// Don't wait after the last attempt
		if attempt == maxAttempts-1 {
			break
		}

		delay := rb.calculateBackoffDelay(attempt)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
			// Continue to next attempt
		}
	}

	return fmt.Errorf("operation failed after %d attempts: %w", maxAttempts, lastErr)
}
