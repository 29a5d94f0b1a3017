package redis

import (
	"errors"
	"time"

	"github.com/arcadia-music/goapi/base/ctx"
)

// Forever is the expiration for keys which never expire
const Forever = time.Duration(-1)

var (
	// ErrNotFound is returned when the key does not exist
	ErrNotFound = errors.New("redis: key not found")
	// ErrNoTTL is returned by TTL when the key exists without expiration
	ErrNoTTL = errors.New("redis: key has no ttl")
	// ErrNotSet is returned by SetNX when the key already exists
	ErrNotSet = errors.New("redis: key not set")
)

// Service is the subset of redis commands the api relies on
type Service interface {
	Get(context ctx.Ctx, key string) ([]byte, error)
	Set(context ctx.Ctx, key string, val []byte, expire time.Duration) error
	// SetNX sets key only when it does not exist, otherwise ErrNotSet
	SetNX(context ctx.Ctx, key string, val []byte, expire time.Duration) error
	Del(context ctx.Ctx, keys ...string) (int, error)
	// DelIfEqual deletes key only while it still holds val, reporting whether it did
	DelIfEqual(context ctx.Ctx, key string, val []byte) (bool, error)
	Exists(context ctx.Ctx, key string) (bool, error)
	Incrby(context ctx.Ctx, key string, val int) (int64, error)
	// TTL returns the remaining seconds of key
	TTL(context ctx.Ctx, key string) (int, error)
	Ping(context ctx.Ctx) error
	Name() string
}
