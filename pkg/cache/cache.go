// Package cache provides pluggable byte caches for computed chart geometry
// and rendered artifacts.
//
// A [Cache] stores opaque bytes under string keys with an optional TTL.
// Backends:
//
//   - [NullCache]: never stores anything (caching disabled)
//   - [FileCache]: one JSON file per key under a local directory
//   - [RedisCache]: a Redis server via go-redis
//   - [MongoCache]: a MongoDB collection with a TTL index
//
// Keys are produced by a [Keyer] so that every entry point (CLI, HTTP API)
// derives identical keys for identical requests. [ScopedKeyer] adds a
// tenant or environment prefix.
package cache

import (
	"context"
	"time"
)

// Cache is a byte store keyed by string.
//
// Get reports a miss with ok == false and a nil error; errors are reserved
// for backend failures. A ttl of zero stores the entry without expiry.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// Clearer is implemented by backends that can drop every entry they own.
type Clearer interface {
	Clear(ctx context.Context) (int, error)
}

// Entry lifetimes.
const (
	// TTLGeometry is how long computed geometry is kept. Geometry is a pure
	// function of its key, so the TTL only bounds storage growth.
	TTLGeometry = 7 * 24 * time.Hour

	// TTLArtifact is how long rendered SVG/PNG/PDF/JSON bytes are kept.
	TTLArtifact = 24 * time.Hour
)

// Key namespaces.
const (
	prefixGeometry = "geometry"
	prefixArtifact = "artifact"
)

// GeometryKeyOpts holds every input that changes computed geometry
// besides the data itself.
type GeometryKeyOpts struct {
	Kind       string   `json:"kind"`
	Size       float64  `json:"size,omitempty"`
	Height     float64  `json:"height,omitempty"`
	ChartWidth float64  `json:"chart_width,omitempty"`
	Padding    *float64 `json:"padding,omitempty"`
	Colors     []string `json:"colors,omitempty"`
	Donut      bool     `json:"donut,omitempty"`
}

// ArtifactKeyOpts holds every input that changes a rendered artifact
// besides the geometry.
type ArtifactKeyOpts struct {
	Format     string `json:"format"`
	Title      string `json:"title,omitempty"`
	Background string `json:"background,omitempty"`
	Labels     bool   `json:"labels,omitempty"`
}

// Keyer derives cache keys.
type Keyer interface {
	// GeometryKey returns the key for geometry computed from the data
	// whose content hash is dataHash.
	GeometryKey(dataHash string, opts GeometryKeyOpts) string

	// ArtifactKey returns the key for an artifact rendered from the
	// geometry whose content hash is geometryHash.
	ArtifactKey(geometryHash string, opts ArtifactKeyOpts) string
}

// DefaultKeyer hashes the inputs of each key with SHA-256.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the standard keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// GeometryKey implements [Keyer].
func (DefaultKeyer) GeometryKey(dataHash string, opts GeometryKeyOpts) string {
	return hashKey(prefixGeometry, dataHash, opts)
}

// ArtifactKey implements [Keyer].
func (DefaultKeyer) ArtifactKey(geometryHash string, opts ArtifactKeyOpts) string {
	return hashKey(prefixArtifact, geometryHash, opts)
}
