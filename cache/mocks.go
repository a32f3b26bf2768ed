package cache

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"
)

// MockBackend is a mock implementation of the storage.Backend interface
// for testing
type MockBackend struct {
	mock.Mock
}

// NewMockBackend creates a new mock backend
func NewMockBackend() *MockBackend {
	return &MockBackend{}
}

// Get mocks the Get method
func (m *MockBackend) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

// Set mocks the Set method
func (m *MockBackend) Set(ctx context.Context, key, value string) error {
	args := m.Called(ctx, key, value)
	return args.Error(0)
}

// Delete mocks the Delete method
func (m *MockBackend) Delete(ctx context.Context, keys ...string) error {
	args := m.Called(ctx, keys)
	return args.Error(0)
}

// Ping mocks the Ping method
func (m *MockBackend) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// Close mocks the Close method
func (m *MockBackend) Close() error {
	args := m.Called()
	return args.Error(0)
}

// MockKeyGenerator is a mock implementation of the internal KeyGenerator
// for testing
type MockKeyGenerator struct {
	mock.Mock
}

// NewMockKeyGenerator creates a new mock key generator
func NewMockKeyGenerator() *MockKeyGenerator {
	return &MockKeyGenerator{}
}

// TimestampKey mocks the TimestampKey method
func (m *MockKeyGenerator) TimestampKey() string {
	args := m.Called()
	return args.String(0)
}

// CuisineListKey mocks the CuisineListKey method
func (m *MockKeyGenerator) CuisineListKey() string {
	args := m.Called()
	return args.String(0)
}

// CuisineKey mocks the CuisineKey method
func (m *MockKeyGenerator) CuisineKey(cuisine string) string {
	args := m.Called(cuisine)
	return args.String(0)
}

// ValidateKey mocks the ValidateKey method
func (m *MockKeyGenerator) ValidateKey(key string) error {
	args := m.Called(key)
	return args.Error(0)
}

// FixedClock is a Clock stuck at a settable instant, for expiry tests
type FixedClock struct {
	Instant time.Time
}

// Now returns the fixed instant
func (fc *FixedClock) Now() time.Time { return fc.Instant }

// Advance moves the fixed instant forward by d
func (fc *FixedClock) Advance(d time.Duration) { fc.Instant = fc.Instant.Add(d) }
