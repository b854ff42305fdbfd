package stores

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/dmitrijs2005/coursecatalog/internal/client/models"
	"github.com/dmitrijs2005/coursecatalog/internal/client/repositories/kv"
	"github.com/dmitrijs2005/coursecatalog/internal/client/state"
	"github.com/dmitrijs2005/coursecatalog/internal/common"
)

// SettingsStore keeps the user settings and persists the whole object on
// every change. A change becomes visible only after it was written.
type SettingsStore struct {
	repo kv.Repository
	opts options

	// writeMu serializes changes so each one builds on the previous.
	writeMu sync.Mutex

	pubMu    sync.Mutex
	mu       sync.Mutex
	settings models.Settings
	hub      state.Hub[models.Settings]
}

func NewSettingsStore(repo kv.Repository, opts ...Option) *SettingsStore {
	return &SettingsStore{
		repo:     repo,
		opts:     buildOptions(opts),
		settings: models.DefaultSettings(),
	}
}

func (s *SettingsStore) Snapshot() models.Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.settings
}

// Subscribe calls fn with every new snapshot until cancel is called.
// fn runs while the store publishes and must not call store actions.
func (s *SettingsStore) Subscribe(fn func(models.Settings)) (cancel func()) {
	return s.hub.Subscribe(fn)
}

func (s *SettingsStore) set(v models.Settings) {
	s.pubMu.Lock()
	defer s.pubMu.Unlock()

	s.mu.Lock()
	s.settings = v
	s.mu.Unlock()

	s.hub.Publish(v)
}

// Load merges the stored settings over the defaults. Missing or corrupt data
// leaves the defaults in place and is only logged.
func (s *SettingsStore) Load(ctx context.Context) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	loaded := models.DefaultSettings()
	b, err := s.repo.Get(ctx, common.StorageKeySettings)
	switch {
	case err != nil:
		s.opts.logger.Warn(ctx, "stored settings ignored", "error", err)
	case len(b) > 0:
		if loaded, err = models.DecodeSettings(b); err != nil {
			s.opts.logger.Warn(ctx, "stored settings ignored", "error", err)
		}
	}
	s.set(loaded)
}

// Toggle flips a boolean option.
func (s *SettingsStore) Toggle(ctx context.Context, namespace, key string) error {
	return s.change(ctx, func(cur models.Settings) (models.Settings, error) {
		return cur.Toggle(namespace, key)
	})
}

// SetOption assigns an enumerated option.
func (s *SettingsStore) SetOption(ctx context.Context, namespace, key, value string) error {
	return s.change(ctx, func(cur models.Settings) (models.Settings, error) {
		return cur.SetOption(namespace, key, value)
	})
}

// Reset removes the stored settings and restores the defaults.
func (s *SettingsStore) Reset(ctx context.Context) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	if err := s.repo.Delete(ctx, common.StorageKeySettings); err != nil {
		return err
	}
	s.set(models.DefaultSettings())
	return nil
}

func (s *SettingsStore) change(ctx context.Context, fn func(models.Settings) (models.Settings, error)) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	next, err := fn(s.Snapshot())
	if err != nil {
		return err
	}
	b, err := json.Marshal(next)
	if err != nil {
		return err
	}
	if err := s.repo.Set(ctx, common.StorageKeySettings, b); err != nil {
		s.opts.logger.Warn(ctx, "settings not saved", "error", err)
		return err
	}
	s.set(next)
	return nil
}
