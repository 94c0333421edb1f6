package dtpattern

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultCacheSize is the number of compiled patterns kept by NewCache when
// size is not positive.
const DefaultCacheSize = 256

// Cache keeps recently compiled patterns keyed by their format string.
// Formats that fail to compile are not stored. It is safe for concurrent use.
type Cache struct {
	patterns *lru.Cache[string, *Pattern]
}

// NewCache creates a Cache holding at most size patterns.
func NewCache(size int) (*Cache, error) {
	if size <= 0 {
		size = DefaultCacheSize
	}
	patterns, err := lru.New[string, *Pattern](size)
	if err != nil {
		return nil, fmt.Errorf("dtpattern: create cache: %w", err)
	}
	return &Cache{patterns: patterns}, nil
}

// Pattern returns the compiled pattern for format, compiling it on a miss.
func (c *Cache) Pattern(format string) (*Pattern, error) {
	if p, ok := c.patterns.Get(format); ok {
		return p, nil
	}
	p, err := NewPattern(format)
	if err != nil {
		return nil, err
	}
	c.patterns.Add(format, p)
	return p, nil
}

// Validate behaves like ValidateDateTime but reuses compiled patterns.
func (c *Cache) Validate(value, format string) error {
	p, err := c.Pattern(format)
	if err != nil {
		return err
	}
	return p.Validate(value)
}

// Len returns the number of cached patterns.
func (c *Cache) Len() int {
	return c.patterns.Len()
}

// Purge drops every cached pattern.
func (c *Cache) Purge() {
	c.patterns.Purge()
}
