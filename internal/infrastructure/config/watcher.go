package config

import (
	"slices"

	"github.com/fsnotify/fsnotify"

	"github.com/bnema/themeroot/internal/logging"
)

// Watch reloads the config whenever the file changes on disk and passes the
// new value to every OnConfigChange subscriber. An invalid edit is logged
// and the previous config stays in effect.
func (m *Manager) Watch() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.watching {
		return nil
	}
	m.viper.OnConfigChange(m.handleFileEvent)
	m.viper.WatchConfig()
	m.watching = true
	return nil
}

// OnConfigChange subscribes to successful reloads.
func (m *Manager) OnConfigChange(callback func(*Config)) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.callbacks = append(m.callbacks, callback)
}

func (m *Manager) handleFileEvent(e fsnotify.Event) {
	log := logging.NewFromEnv().With().
		Str("component", "config").
		Str("file", e.Name).
		Str("op", e.Op.String()).
		Logger()

	m.mu.Lock()
	if m.skipNextReload {
		// Save already validated and stored m.config; only viper lags behind.
		m.skipNextReload = false
		if err := m.viper.ReadInConfig(); err != nil {
			log.Warn().Err(err).Msg("failed to sync viper after save")
		}
	} else if err := m.reload(); err != nil {
		m.mu.Unlock()
		log.Warn().Err(err).Msg("config change rejected, keeping previous")
		return
	}
	cfg := m.config
	subscribers := slices.Clone(m.callbacks)
	m.mu.Unlock()

	log.Info().Int("subscribers", len(subscribers)).Msg("configuration reloaded")
	for _, fn := range subscribers {
		fn(cfg)
	}
}

// reload must be called with the write lock held.
func (m *Manager) reload() error {
	if err := m.readConfigFile(); err != nil {
		return err
	}
	next, err := m.unmarshalConfig()
	if err != nil {
		return err
	}
	if err := resolveDefaultPaths(next); err != nil {
		return err
	}
	normalizeConfig(next)
	if err := validateConfig(next); err != nil {
		return err
	}
	m.config = next
	return nil
}
