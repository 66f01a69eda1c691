package app

import "time"

// CacheService defines a cache service.
type CacheService interface {
	Clear()
	Delete(string)
	Exists(string) bool
	Get(string) ([]byte, bool)
	Set(string, []byte, time.Duration)
}
