package internal

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

// Namespace is the prefix shared by every key globedine writes to the
// persisted backing store.
const Namespace = "globedine"

// KeyGenerator defines the interface for generating and validating
// persisted-storage keys
type KeyGenerator interface {
	TimestampKey() string
	CuisineListKey() string
	CuisineKey(cuisine string) string
	ValidateKey(key string) error
}

// DefaultKeyGenerator implements the KeyGenerator interface
type DefaultKeyGenerator struct{}

// NewKeyGenerator creates a new DefaultKeyGenerator instance
func NewKeyGenerator() KeyGenerator {
	return &DefaultKeyGenerator{}
}

// TimestampKey generates the key holding the store-wide last-write
// timestamp (milliseconds since epoch, stored as text)
// Format: globedine:updated_at
func (kg *DefaultKeyGenerator) TimestampKey() string {
	return Namespace + ":updated_at"
}

// CuisineListKey generates the key holding the JSON array of cached
// cuisine names
// Format: globedine:cuisines
func (kg *DefaultKeyGenerator) CuisineListKey() string {
	return Namespace + ":cuisines"
}

// CuisineKey generates the key holding the serialized recipe sequence for
// one cuisine
// Format: globedine:recipes:<cuisine>
func (kg *DefaultKeyGenerator) CuisineKey(cuisine string) string {
	return fmt.Sprintf("%s:recipes:%s", Namespace, kg.sanitizeName(cuisine))
}

// ValidateKey validates that a key follows the expected format and constraints
func (kg *DefaultKeyGenerator) ValidateKey(key string) error {
	if key == "" {
		return fmt.Errorf("key cannot be empty")
	}

	if !strings.HasPrefix(key, Namespace+":") {
		return fmt.Errorf("key must start with '%s:'", Namespace)
	}

	// Check for control characters and null bytes (security)
	for i, r := range key {
		if r < 32 || r == 127 {
			return fmt.Errorf("key contains control character at position %d: %s", i, key)
		}
	}

	// Allow alphanumeric, dash, underscore, colon, dot, and percent-encoded
	// characters
	invalidChars := regexp.MustCompile(`[^\w\-_:.%]`)
	if invalidChars.MatchString(key) {
		return fmt.Errorf("key contains invalid characters: %s", key)
	}

	if strings.Contains(key, "::") {
		return fmt.Errorf("key contains empty segment: %s", key)
	}

	// Conservative key length cap, well under any backend's limit
	if len(key) > 250 {
		return fmt.Errorf("key exceeds maximum length of 250 characters")
	}

	// Validate specific key patterns
	switch {
	case key == Namespace+":updated_at", key == Namespace+":cuisines":
		return nil
	case strings.HasPrefix(key, Namespace+":recipes:"):
		return kg.validateCuisineKey(key)
	default:
		return fmt.Errorf("key does not match any expected pattern: %s", key)
	}
}

// sanitizeName sanitizes a cuisine name for use in keys by URL encoding
// special characters
func (kg *DefaultKeyGenerator) sanitizeName(name string) string {
	if name == "" {
		return ""
	}

	// URL encode the name to handle special characters
	encoded := url.QueryEscape(name)

	// Replace some URL-encoded characters with more readable alternatives
	encoded = strings.ReplaceAll(encoded, "+", "_")   // spaces (encoded as +) become underscores
	encoded = strings.ReplaceAll(encoded, "%20", "_") // spaces (encoded as %20) become underscores
	encoded = strings.ReplaceAll(encoded, "%2F", "-") // forward slashes become dashes
	encoded = strings.ReplaceAll(encoded, "%5C", "-") // backslashes become dashes

	return encoded
}

// validateCuisineKey validates cuisine-specific key format
func (kg *DefaultKeyGenerator) validateCuisineKey(key string) error {
	parts := strings.Split(key, ":")
	if len(parts) != 3 || parts[0] != Namespace || parts[1] != "recipes" {
		return fmt.Errorf("invalid cuisine key format: %s", key)
	}

	if parts[2] == "" {
		return fmt.Errorf("cuisine name cannot be empty in key: %s", key)
	}

	return nil
}
