package cli

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/ytkachuk12/wordgraph/pkg/cache"
	"github.com/ytkachuk12/wordgraph/pkg/errors"
	"github.com/ytkachuk12/wordgraph/pkg/ladder"
	"github.com/ytkachuk12/wordgraph/pkg/wordio"

	"github.com/ytkachuk12/wordgraph/internal/server"
)

// serveOpts holds the command-line flags for the serve command.
// Unset flags fall back to config file values, then to defaults.
type serveOpts struct {
	configPath string
	addr       string
	dictPath   string
	backend    string // cache backend: none, file, redis
	redisAddr  string
}

// serveCommand creates the serve command running the HTTP search API.
func (c *CLI) serveCommand() *cobra.Command {
	var opts serveOpts

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP word-ladder search API",
		Long: `Run an HTTP server answering ladder searches against one dictionary
loaded at startup.

Endpoints:
  GET /health
  GET /api/v1/ladder?start=<word>&end=<word>
  GET /api/v1/neighbors?word=<word>

Completed search results are cached keyed by the dictionary's content hash,
so a changed dictionary file never serves stale ladders.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.configPath, "config", "", "config file (default ~/.config/wordgraph/config.toml)")
	cmd.Flags().StringVar(&opts.addr, "addr", "", "listen address (default :8080)")
	cmd.Flags().StringVarP(&opts.dictPath, "dictionary", "d", "", "dictionary file to serve")
	cmd.Flags().StringVar(&opts.backend, "cache", "", "result cache backend: none, file, redis (default file)")
	cmd.Flags().StringVar(&opts.redisAddr, "redis-addr", "", "redis address for the redis cache backend")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, opts serveOpts) error {
	cfg, err := loadConfig(opts.configPath)
	if err != nil {
		return err
	}
	if opts.addr != "" {
		cfg.Server.Addr = opts.addr
	}
	if opts.dictPath != "" {
		cfg.Dictionary = opts.dictPath
	}
	if opts.backend != "" {
		cfg.Cache.Backend = opts.backend
	}
	if opts.redisAddr != "" {
		cfg.Cache.RedisAddr = opts.redisAddr
	}

	if cfg.Dictionary == "" {
		return errors.New(errors.ErrCodeInvalidInput, "no dictionary configured (use --dictionary or the config file)")
	}

	prog := newProgress(c.Logger)
	words, err := wordio.ImportWords(cfg.Dictionary)
	if err != nil {
		return err
	}
	dict := ladder.New(words)
	dictHash := cache.HashWords(words)
	prog.done(fmt.Sprintf("Loaded %d words from %s", dict.Len(), cfg.Dictionary))

	resultCache, err := c.newCache(ctx, cfg.Cache)
	if err != nil {
		return err
	}
	defer resultCache.Close()

	srv := server.New(dict, dictHash, resultCache, cfg.Cache.cacheTTL(), c.Logger)
	httpSrv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		c.Logger.Infof("Listening on %s", cfg.Server.Addr)
		errCh <- httpSrv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	case <-ctx.Done():
		c.Logger.Info("Shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return httpSrv.Shutdown(shutdownCtx)
	}
}

// newCache builds the configured result cache backend.
func (c *CLI) newCache(ctx context.Context, cfg CacheConfig) (cache.Cache, error) {
	switch cfg.Backend {
	case "", "none":
		return cache.NewNullCache(), nil
	case "file":
		dir, err := cacheDir()
		if err != nil {
			c.Logger.Warnf("cache disabled: %v", err)
			return cache.NewNullCache(), nil
		}
		return cache.NewFileCache(dir)
	case "redis":
		return cache.NewRedisCache(ctx, cfg.RedisAddr)
	default:
		return nil, errors.New(errors.ErrCodeInvalidInput, "unknown cache backend: %q (must be none, file, or redis)", cfg.Backend)
	}
}
