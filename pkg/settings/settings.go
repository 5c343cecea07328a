// Package settings loads and saves user configuration from a local YAML
// file and notifies listeners when values change.
//
// The core treats settings as read-only input; a change triggers a full
// pipeline re-run through the listener registry. A missing or unreadable
// file degrades to built-in defaults.
package settings

import (
	"fmt"
	"log/slog"
	"os"
	"slices"

	"github.com/Tpypan/wwlens/models"
	"gopkg.in/yaml.v3"
)

// Setting key names reported to change listeners.
const (
	KeyRearrangerEnabled   = "rearranger_enabled"
	KeyPriorityKeys        = "priority_keys"
	KeyStandardOrder       = "standard_order"
	KeyNewJobDaysThreshold = "new_job_days_threshold"
)

// Store is the settings collaborator.
type Store struct {
	path      string
	logger    *slog.Logger
	current   models.Settings
	listeners []func(changed []string)
}

// Load reads the settings file at path. Read or decode failures are logged
// and fall back to defaults; the store stays usable either way.
func Load(path string, logger *slog.Logger) *Store {
	s := &Store{path: path, logger: logger, current: models.DefaultSettings()}

	raw, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Warn("settings read failed, using defaults", "path", path, "error", err)
		}
		return s
	}

	loaded := models.DefaultSettings()
	if err := yaml.Unmarshal(raw, &loaded); err != nil {
		logger.Warn("settings decode failed, using defaults", "path", path, "error", err)
		return s
	}
	s.current = loaded
	return s
}

// Get returns the current settings snapshot.
func (s *Store) Get() models.Settings { return s.current }

// OnChange registers fn to run after every successful Save, with the names
// of the keys whose values changed.
func (s *Store) OnChange(fn func(changed []string)) {
	s.listeners = append(s.listeners, fn)
}

// Save applies mutate to a copy of the current settings, writes the result
// to disk, and notifies listeners of the changed keys. When nothing
// changed, neither the file nor the listeners are touched.
func (s *Store) Save(mutate func(*models.Settings)) error {
	next := s.current
	next.PriorityKeys = slices.Clone(s.current.PriorityKeys)
	next.StandardOrder = slices.Clone(s.current.StandardOrder)
	mutate(&next)

	changed := diff(s.current, next)
	if len(changed) == 0 {
		return nil
	}

	raw, err := yaml.Marshal(next)
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	if err := os.WriteFile(s.path, raw, 0o644); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}

	s.current = next
	for _, fn := range s.listeners {
		fn(changed)
	}
	return nil
}

func diff(a, b models.Settings) []string {
	var changed []string
	if a.RearrangerEnabled != b.RearrangerEnabled {
		changed = append(changed, KeyRearrangerEnabled)
	}
	if !slices.Equal(a.PriorityKeys, b.PriorityKeys) {
		changed = append(changed, KeyPriorityKeys)
	}
	if !slices.Equal(a.StandardOrder, b.StandardOrder) {
		changed = append(changed, KeyStandardOrder)
	}
	if a.NewJobDaysThreshold != b.NewJobDaysThreshold {
		changed = append(changed, KeyNewJobDaysThreshold)
	}
	return changed
}
