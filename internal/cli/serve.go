package cli

import (
	"context"
	"net/url"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/funnelchart/internal/server"
	"github.com/matzehuels/funnelchart/pkg/cache"
	"github.com/matzehuels/funnelchart/pkg/pipeline"
)

// serveKeyPrefix scopes server cache keys inside a shared Redis instance.
const serveKeyPrefix = "funnelchart:"

// serveCommand creates the serve command, which runs the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr     string
		redisURL string
		noCache  bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP rendering API",
		Long: `Run the HTTP rendering API.

Artifacts are cached in Redis when --redis-url is given (for example
redis://localhost:6379/0) and in the local cache directory otherwise.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), addr, redisURL, noCache)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", server.DefaultAddr, "listen address")
	cmd.Flags().StringVar(&redisURL, "redis-url", "", "Redis URL for the shared artifact cache")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, addr, redisURL string, noCache bool) error {
	logger := loggerFromContext(ctx)

	runner, err := c.serveRunner(ctx, redisURL, noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	srv := server.New(server.Config{
		Addr:   addr,
		Runner: runner,
		Logger: logger,
	})

	printKeyValue("address", srv.Addr())
	printKeyValue("cache", describeCache(runner.Cache))
	return srv.ListenAndServe(ctx)
}

func describeCache(c cache.Cache) string {
	switch c := c.(type) {
	case *cache.RedisCache:
		return "redis"
	case *cache.FileCache:
		return "file " + c.Dir()
	default:
		return "disabled"
	}
}

// serveRunner picks the cache backend for the server: Redis when a URL is
// given, otherwise the local file cache.
func (c *CLI) serveRunner(ctx context.Context, redisURL string, noCache bool) (*pipeline.Runner, error) {
	logger := loggerFromContext(ctx)
	if noCache || redisURL == "" {
		return c.newRunner(noCache)
	}

	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	rc, err := cache.NewRedisCache(connectCtx, redisURL)
	if err != nil {
		return nil, err
	}
	logger.Info("using redis cache", "url", redactURL(redisURL))
	keyer := cache.NewScopedKeyer(cache.NewDefaultKeyer(), serveKeyPrefix)
	return pipeline.NewRunner(rc, keyer, logger), nil
}

// redactURL hides the password of a connection URL for logging.
func redactURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return "<invalid url>"
	}
	return u.Redacted()
}
