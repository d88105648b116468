package cli

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/chartgeom/pkg/cache"
	"github.com/matzehuels/chartgeom/pkg/errors"
)

// cacheCommand creates the cache command with subcommands for managing the cache.
func (c *CLI) cacheCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the geometry and artifact cache",
	}

	cmd.AddCommand(c.cacheClearCommand())
	cmd.AddCommand(c.cachePathCommand())

	return cmd
}

// cacheClearCommand removes every entry of the configured backend.
func (c *CLI) cacheClearCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove all cached geometry and artifacts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			spinner := newSpinnerWithContext(ctx, "Clearing cache...")
			spinner.Start()

			ch, err := c.cfg.OpenCache(ctx, false)
			if err != nil {
				spinner.StopWithError("Could not open cache")
				return err
			}
			defer ch.Close()

			clearer, ok := ch.(cache.Clearer)
			if !ok {
				spinner.Stop()
				return errors.New(errors.ErrCodeUnsupported, "cache backend %q cannot be cleared", c.cfg.Cache.Backend)
			}

			n, err := clearer.Clear(ctx)
			if err != nil {
				spinner.StopWithError("Failed to clear cache")
				return err
			}
			spinner.StopWithSuccess("Cleared " + strconv.Itoa(n) + " cache entries")
			return nil
		},
	}
}

// cachePathCommand prints where cached entries live.
func (c *CLI) cachePathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Show the cache location",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			backend := strings.ToLower(c.cfg.Cache.Backend)
			if backend == "" {
				backend = cache.BackendFile
			}
			printKeyValue("Backend", backend)

			switch backend {
			case cache.BackendRedis:
				printKeyValue("URL", redact(c.cfg.Cache.RedisURL))
			case cache.BackendMongo:
				printKeyValue("URI", redact(c.cfg.Cache.MongoURI))
			case cache.BackendNone:
				printDetail("caching disabled")
			default:
				dir, err := c.cfg.CacheDir()
				if err != nil {
					return err
				}
				printKeyValue("Directory", dir)
			}
			return nil
		},
	}
}

// redact hides the password of a connection URL.
func redact(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return raw
	}
	return u.Redacted()
}
