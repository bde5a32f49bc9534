package cache

import "time"

// BytesCache stores pre-rendered response bodies with a TTL. Handlers use
// it to short-circuit repeat valuations without re-fetching provider data.
type BytesCache interface {
	GetBytes(key string) (b []byte, ok bool, err error)
	SetBytes(key string, value []byte, ttl time.Duration) error
}
