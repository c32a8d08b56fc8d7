package cmd

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/bnema/themeroot/internal/application/port"
	"github.com/bnema/themeroot/internal/domain/repository"
	"github.com/bnema/themeroot/internal/infrastructure/cache"
	"github.com/bnema/themeroot/internal/infrastructure/colorscheme"
	"github.com/bnema/themeroot/internal/infrastructure/config"
	"github.com/bnema/themeroot/internal/infrastructure/web"
	"github.com/bnema/themeroot/internal/logging"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve pages with the theme resolved server-side",
	Long: `Start the HTTP server.

GET /                 page with the resolved <html class> and the inline script
GET /api/theme        current decision as JSON
PUT /api/theme        {"preference":"dark|light|system"}
GET /static/theme.js  the inline theme script
GET /health           liveness probe`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().String("addr", "", "listen address (overrides server.addr)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}
	cfg := app.Config

	addr := cfg.Server.Addr
	if flagAddr, _ := cmd.Flags().GetString("addr"); flagAddr != "" {
		addr = flagAddr
	}

	ctx, stop := signal.NotifyContext(logging.WithComponent(app.Ctx(), "serve"), os.Interrupt, syscall.SIGTERM)
	defer stop()
	log := logging.FromContext(ctx)

	// Visitors are remote; only their client hint speaks for them.
	resolver := colorscheme.NewRequestResolver(colorscheme.NewConfigAdapter(app.ConfigManager.Get))

	var repo repository.PreferenceRepository
	if cfg.Theme.Backend == config.StorageSQLite {
		repo = cache.NewPreferenceRepository(app.Preferences, cfg.Database.CacheSize)
	}
	srv, err := web.NewServer(app.Logger, web.OptionsFromConfig(cfg), repo, resolver)
	if err != nil {
		return fmt.Errorf("build server: %w", err)
	}

	readTimeout, writeTimeout, shutdownTimeout := app.ServerTimeouts()
	httpSrv := srv.HTTPServer(addr, readTimeout, writeTimeout)
	httpSrv.BaseContext = func(net.Listener) context.Context { return ctx }

	watchConfig(ctx, app.ConfigManager, resolver)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info().
			Str("addr", addr).
			Str("backend", string(cfg.Theme.Backend)).
			Msg("listening")
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen on %s: %w", addr, err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info().Dur("timeout", shutdownTimeout).Msg("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()
		if err := httpSrv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	log.Info().Msg("server stopped")
	return nil
}

// watchConfig reloads the appearance override live. Other settings are
// read once at startup.
func watchConfig(ctx context.Context, mgr *config.Manager, resolver *colorscheme.Resolver) {
	log := logging.FromContext(ctx)

	if !mgr.FileExists() {
		log.Debug().Str("path", mgr.GetConfigFile()).Msg("no config file to watch")
		return
	}
	resolver.OnChange(func(p port.ColorSchemePreference) {
		log.Info().
			Bool("prefers_dark", p.PrefersDark).
			Str("source", p.Source).
			Msg("default appearance changed")
	})
	mgr.OnConfigChange(func(c *config.Config) {
		log.Info().
			Str("path", mgr.GetConfigFile()).
			Str("color_scheme", c.Appearance.ColorScheme).
			Msg("config reloaded")
		resolver.Refresh(ctx)
	})
	if err := mgr.Watch(); err != nil {
		log.Warn().Err(err).Msg("config watch disabled")
	}
}
