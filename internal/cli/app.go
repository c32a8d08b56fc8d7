// Package cli wires the command-line interface to the theme use cases.
package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/bnema/themeroot/internal/application/port"
	"github.com/bnema/themeroot/internal/application/usecase"
	"github.com/bnema/themeroot/internal/cli/styles"
	"github.com/bnema/themeroot/internal/domain/build"
	"github.com/bnema/themeroot/internal/domain/repository"
	"github.com/bnema/themeroot/internal/infrastructure/colorscheme"
	"github.com/bnema/themeroot/internal/infrastructure/config"
	"github.com/bnema/themeroot/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/themeroot/internal/infrastructure/storage"
	"github.com/bnema/themeroot/internal/logging"
)

// App holds CLI dependencies.
type App struct {
	Config        *config.Config
	ConfigManager *config.Manager
	Theme         *styles.Theme
	BuildInfo     build.Info
	Logger        zerolog.Logger

	// Preferences is opened on first use, so commands that never touch
	// the store never create the database file.
	Preferences repository.PreferenceRepository
	Store       *storage.RepositoryStore
	Resolver    *colorscheme.Resolver

	// Use cases
	ApplyThemeUC       *usecase.ApplyThemeUseCase
	ManagePreferenceUC *usecase.ManagePreferenceUseCase
	CheckBuildConfigUC *usecase.CheckBuildConfigUseCase
	GetConfigSchemaUC  *usecase.GetConfigSchemaUseCase

	db         *sqlite.LazyDB
	ctx        context.Context
	logCleanup func()
}

// NewApp loads the config at configPath (XDG location when empty) and
// builds every dependency the commands share.
func NewApp(configPath string) (*App, error) {
	if err := config.LoadDotEnv(config.DotEnvFile); err != nil {
		return nil, err
	}
	mgr, err := config.NewManager(configPath)
	if err != nil {
		return nil, fmt.Errorf("create config manager: %w", err)
	}
	if err := mgr.Load(); err != nil {
		return nil, err
	}
	cfg := mgr.Get()

	logCfg := logging.Config{
		Level:      logging.ParseLevel(cfg.Logging.Level),
		Format:     cfg.Logging.Format,
		TimeFormat: "15:04:05",
	}
	if cfg.Logging.File != "" {
		logCfg.File = &logging.FileConfig{
			Path:       cfg.Logging.File,
			MaxSizeMB:  cfg.Logging.MaxSizeMB,
			MaxBackups: cfg.Logging.MaxBackups,
		}
	}
	logger, logCleanup, err := logging.New(logCfg)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	ctx := logging.WithContext(context.Background(), logger)

	db := sqlite.NewLazyDB(cfg.Database.Path)
	prefsRepo := sqlite.NewLazyPreferenceRepository(db)

	// A terminal has no cookies and nothing to share a map with, so the
	// CLI always persists under its own browsing context.
	if cfg.Theme.Backend != config.StorageSQLite {
		logger.Debug().
			Str("backend", string(cfg.Theme.Backend)).
			Str("context", cfg.Theme.CLIContext).
			Msg("cli stores preferences in sqlite")
	}
	store := storage.NewRepositoryStore(prefsRepo, cfg.Theme.CLIContext)
	ctx = logging.WithContextID(ctx, store.ContextID())

	resolver := colorscheme.NewDefaultResolver(colorscheme.NewConfigAdapter(mgr.Get), false)

	a := &App{
		Config:             cfg,
		ConfigManager:      mgr,
		BuildInfo:          build.Info{}.WithDefaults(),
		Logger:             logger,
		Preferences:        prefsRepo,
		Store:              store,
		Resolver:           resolver,
		ApplyThemeUC:       usecase.NewApplyThemeUseCase(store, resolver, cfg.Theme.StorageKey),
		ManagePreferenceUC: usecase.NewManagePreferenceUseCase(store, cfg.Theme.StorageKey),
		CheckBuildConfigUC: usecase.NewCheckBuildConfigUseCase(),
		GetConfigSchemaUC:  usecase.NewGetConfigSchemaUseCase(config.NewSchemaProvider()),
		db:                 db,
		ctx:                ctx,
		logCleanup:         logCleanup,
	}
	// The CLI output follows the host appearance, not the stored preference,
	// so printing help never opens the database.
	a.Theme = styles.NewTheme(resolver.Resolve(ctx).PrefersDark)
	return a, nil
}

// Close releases all resources.
func (a *App) Close() error {
	var err error
	if a.db != nil {
		err = a.db.Close()
	}
	if a.logCleanup != nil {
		a.logCleanup()
	}
	return err
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}

// Appearance returns the appearance port used by the CLI.
func (a *App) Appearance() port.AppearanceQuery {
	return a.Resolver
}

// ServerTimeouts returns the configured HTTP timeouts.
func (a *App) ServerTimeouts() (read, write, shutdown time.Duration) {
	s := a.Config.Server
	return time.Duration(s.ReadTimeoutSeconds) * time.Second,
		time.Duration(s.WriteTimeoutSeconds) * time.Second,
		time.Duration(s.ShutdownTimeoutSeconds) * time.Second
}

// DB returns the lazily opened database.
func (a *App) DB() *sqlite.LazyDB {
	return a.db
}
