package cache

import (
	"context"
	"fmt"
	"strings"
)

// Backend names accepted by [Open].
const (
	BackendNone  = "none"
	BackendFile  = "file"
	BackendRedis = "redis"
	BackendMongo = "mongo"
)

// Backends lists the valid backend names.
var Backends = []string{BackendFile, BackendRedis, BackendMongo, BackendNone}

// Config selects and configures a backend.
type Config struct {
	Backend string // empty means file

	Dir string // file

	RedisURL       string // redis
	RedisNamespace string

	MongoURI        string // mongo
	MongoDatabase   string
	MongoCollection string
}

// Defaults for remote backends.
const (
	DefaultRedisNamespace  = "chartgeom:"
	DefaultMongoDatabase   = "chartgeom"
	DefaultMongoCollection = "cache"
)

// Open returns the backend cfg names. Remote backends are pinged before
// Open returns.
func Open(ctx context.Context, cfg Config) (Cache, error) {
	switch strings.ToLower(cfg.Backend) {
	case "", BackendFile:
		if cfg.Dir == "" {
			return nil, fmt.Errorf("file cache: directory is required")
		}
		return asCache(NewFileCache(cfg.Dir))
	case BackendNone:
		return NewNullCache(), nil
	case BackendRedis:
		if cfg.RedisURL == "" {
			return nil, fmt.Errorf("redis cache: url is required")
		}
		ns := cfg.RedisNamespace
		if ns == "" {
			ns = DefaultRedisNamespace
		}
		return asCache(NewRedisCache(ctx, cfg.RedisURL, ns))
	case BackendMongo:
		if cfg.MongoURI == "" {
			return nil, fmt.Errorf("mongo cache: uri is required")
		}
		db, coll := cfg.MongoDatabase, cfg.MongoCollection
		if db == "" {
			db = DefaultMongoDatabase
		}
		if coll == "" {
			coll = DefaultMongoCollection
		}
		return asCache(NewMongoCache(ctx, cfg.MongoURI, db, coll))
	default:
		return nil, fmt.Errorf("unknown cache backend %q (must be one of: %s)", cfg.Backend, strings.Join(Backends, ", "))
	}
}

// asCache avoids returning a non-nil interface holding a nil pointer.
func asCache[C Cache](c C, err error) (Cache, error) {
	if err != nil {
		return nil, err
	}
	return c, nil
}
