package utils

import (
	"time"

	"github.com/patrickmn/go-cache"
)

// Validation is a cached outcome of validating one assignment
type Validation struct {
	Canonical string
	Err       error
}

// ValidationCache remembers validations by option and value
// files checked together tend to repeat the same assignments
type ValidationCache struct {
	cache *cache.Cache
}

// NewValidationCache creates Cache instance
func NewValidationCache(expire time.Duration, cleanupInterval time.Duration) *ValidationCache {
	return &ValidationCache{
		cache: cache.New(expire, cleanupInterval),
	}
}

func validationKey(name, value string) string {
	return name + "=" + value
}

// Set validation of name=value
func (c *ValidationCache) Set(name, value string, v Validation) {
	c.cache.Set(validationKey(name, value), v, cache.DefaultExpiration)
}

// Get validation of name=value
func (c *ValidationCache) Get(name, value string) (Validation, bool) {
	v, found := c.cache.Get(validationKey(name, value))
	if !found {
		return Validation{}, false
	}
	return v.(Validation), true
}

// Len .
func (c *ValidationCache) Len() int {
	return c.cache.ItemCount()
}
