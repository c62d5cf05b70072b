package config

import (
	"fmt"
	"reflect"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"

	"github.com/bnema/candle/internal/logging"
)

// Watch reloads the config file whenever it changes on disk and hands the
// new value to every OnConfigChange callback. Calling it twice is a no-op.
func (m *Manager) Watch() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.watching {
		return nil
	}
	m.viper.OnConfigChange(m.handleConfigChange)
	m.viper.WatchConfig()
	m.watching = true
	return nil
}

// OnConfigChange registers callback for reloads and saves.
func (m *Manager) OnConfigChange(callback func(*Config)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.callbacks = append(m.callbacks, callback)
}

func (m *Manager) handleConfigChange(e fsnotify.Event) {
	log := logging.NewFromEnv().With().Str("component", "config").Str("file", e.Name).Logger()
	log.Debug().Str("op", e.Op.String()).Msg("config file event")

	cfg, callbacks := m.applyChange(e, &log)
	for _, callback := range callbacks {
		callback(cfg)
	}
}

// applyChange updates m.config for e and returns the callbacks to run, or
// none when nothing observable changed. Callbacks run after m.mu is released.
func (m *Manager) applyChange(e fsnotify.Event, log *zerolog.Logger) (*Config, []func(*Config)) {
	if !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) && !e.Has(fsnotify.Rename) {
		return nil, nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	switch {
	case m.skipNextReload:
		// Save already installed the new config.
		m.skipNextReload = false
		if err := m.viper.ReadInConfig(); err != nil {
			log.Warn().Err(err).Msg("failed to sync viper after save")
		}
	default:
		previous := m.config
		if err := m.reload(); err != nil {
			log.Warn().Err(err).Msg("config reload rejected, keeping previous values")
			return nil, nil
		}
		if reflect.DeepEqual(previous, m.config) {
			log.Debug().Msg("config unchanged")
			return nil, nil
		}
		log.Info().Msg("config reloaded")
	}

	callbacks := make([]func(*Config), len(m.callbacks))
	copy(callbacks, m.callbacks)
	return m.config, callbacks
}

// reload rereads the file. m.mu must be held for write.
func (m *Manager) reload() error {
	if err := m.viper.ReadInConfig(); err != nil {
		return err
	}
	cfg, err := m.unmarshalConfig()
	if err != nil {
		return err
	}
	normalizeConfig(cfg)
	if err := validateConfig(cfg); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}
	m.config = cfg
	return nil
}
