// Package config loads chartgeom settings from a TOML file and the
// environment.
//
// Precedence, lowest first: built-in defaults, the config file, CHARTGEOM_*
// environment variables, command-line flags. Flags are applied by the CLI.
package config

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/chartgeom/pkg/cache"
	"github.com/matzehuels/chartgeom/pkg/errors"
	"github.com/matzehuels/chartgeom/pkg/pipeline"
)

// AppName names the config and cache directories.
const AppName = "chartgeom"

// DefaultAddr is the default listen address of the HTTP API.
const DefaultAddr = "127.0.0.1:8080"

// Environment variables.
const (
	EnvCache    = "CHARTGEOM_CACHE"
	EnvRedisURL = "CHARTGEOM_REDIS_URL"
	EnvMongoURI = "CHARTGEOM_MONGO_URI"
	EnvAddr     = "CHARTGEOM_ADDR"
)

// Config is the decoded config file.
type Config struct {
	Chart  Chart  `toml:"chart"`
	Cache  Cache  `toml:"cache"`
	Server Server `toml:"server"`
}

// Chart holds defaults for chart options not given on the command line.
type Chart struct {
	Size       float64  `toml:"size"`
	Height     float64  `toml:"height"`
	Width      float64  `toml:"width"`
	Padding    *float64 `toml:"padding"`
	Colors     []string `toml:"colors"`
	Donut      bool     `toml:"donut"`
	Labels     bool     `toml:"labels"`
	Background string   `toml:"background"`
}

// Cache selects the cache backend.
type Cache struct {
	Backend         string `toml:"backend"`
	Dir             string `toml:"dir"`
	RedisURL        string `toml:"redis_url"`
	MongoURI        string `toml:"mongo_uri"`
	MongoDatabase   string `toml:"mongo_database"`
	MongoCollection string `toml:"mongo_collection"`
}

// Server configures `chartgeom serve`.
type Server struct {
	Addr string `toml:"addr"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Chart:  Chart{Labels: true},
		Cache:  Cache{Backend: cache.BackendFile},
		Server: Server{Addr: DefaultAddr},
	}
}

// Path returns $XDG_CONFIG_HOME/chartgeom/config.toml, or
// ~/.config/chartgeom/config.toml.
func Path() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, AppName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", AppName, "config.toml"), nil
}

// Load reads the config file at path over the defaults. An empty path
// selects [Path]; a missing default file is not an error, a missing
// explicit file is. Unknown keys are rejected.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		p, err := Path()
		if err != nil {
			return cfg, nil
		}
		path = p
	}

	md, err := toml.DecodeFile(path, &cfg)
	if os.IsNotExist(err) {
		if explicit {
			return cfg, errors.Wrap(errors.ErrCodeFileNotFound, err, "config file %s", path)
		}
		return Default(), nil
	}
	if err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidInput, err, "parse config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return cfg, errors.New(errors.ErrCodeInvalidInput, "config %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	return cfg, nil
}

// ApplyEnv overrides settings from the environment via lookup
// (os.LookupEnv in production).
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) {
	if v, ok := lookup(EnvCache); ok && v != "" {
		c.Cache.Backend = v
	}
	if v, ok := lookup(EnvRedisURL); ok && v != "" {
		c.Cache.RedisURL = v
		if _, set := lookup(EnvCache); !set {
			c.Cache.Backend = cache.BackendRedis
		}
	}
	if v, ok := lookup(EnvMongoURI); ok && v != "" {
		c.Cache.MongoURI = v
		if _, set := lookup(EnvCache); !set {
			c.Cache.Backend = cache.BackendMongo
		}
	}
	if v, ok := lookup(EnvAddr); ok && v != "" {
		c.Server.Addr = v
	}
}

// CacheDir returns the configured cache directory or the XDG default.
func (c *Config) CacheDir() (string, error) {
	if c.Cache.Dir != "" {
		return c.Cache.Dir, nil
	}
	return cache.DefaultDir(AppName)
}

// OpenCache opens the configured backend. noCache forces the null cache.
func (c *Config) OpenCache(ctx context.Context, noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	cc := cache.Config{
		Backend:         c.Cache.Backend,
		RedisURL:        c.Cache.RedisURL,
		MongoURI:        c.Cache.MongoURI,
		MongoDatabase:   c.Cache.MongoDatabase,
		MongoCollection: c.Cache.MongoCollection,
	}
	if b := strings.ToLower(c.Cache.Backend); b == "" || b == cache.BackendFile {
		dir, err := c.CacheDir()
		if err != nil {
			return cache.NewNullCache(), nil
		}
		cc.Dir = dir
	}
	return cache.Open(ctx, cc)
}

// ApplyChartDefaults fills zero-valued chart options from the config.
// Flags the user set explicitly are never overridden because they are
// non-zero by the time this runs.
func (c *Config) ApplyChartDefaults(o *pipeline.Options) {
	ch := c.Chart
	if o.Size == 0 {
		o.Size = ch.Size
	}
	if o.Height == 0 {
		o.Height = ch.Height
	}
	if o.Width == 0 {
		o.Width = ch.Width
	}
	if o.Padding == nil && ch.Padding != nil {
		p := *ch.Padding
		o.Padding = &p
	}
	if len(o.Colors) == 0 && len(ch.Colors) > 0 {
		o.Colors = append([]string(nil), ch.Colors...)
	}
	if o.Background == "" {
		o.Background = ch.Background
	}
	o.Donut = o.Donut || ch.Donut
	o.Labels = o.Labels || ch.Labels
}
