package settings

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/Tpypan/wwlens/models"
)

var testLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	s := Load(filepath.Join(t.TempDir(), "absent.yaml"), testLogger)
	if !reflect.DeepEqual(s.Get(), models.DefaultSettings()) {
		t.Errorf("Get() = %+v, want defaults", s.Get())
	}
}

func TestLoad_CorruptFileUsesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	if err := os.WriteFile(path, []byte("{not yaml:::"), 0o644); err != nil {
		t.Fatal(err)
	}
	s := Load(path, testLogger)
	if !reflect.DeepEqual(s.Get(), models.DefaultSettings()) {
		t.Errorf("Get() = %+v, want defaults", s.Get())
	}
}

func TestSave_RoundTripAndListeners(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	s := Load(path, testLogger)

	var notified []string
	s.OnChange(func(changed []string) { notified = changed })

	err := s.Save(func(cfg *models.Settings) {
		cfg.RearrangerEnabled = false
		cfg.NewJobDaysThreshold = 21
	})
	if err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	want := []string{KeyRearrangerEnabled, KeyNewJobDaysThreshold}
	if !reflect.DeepEqual(notified, want) {
		t.Errorf("changed keys = %v, want %v", notified, want)
	}

	reloaded := Load(path, testLogger).Get()
	if reloaded.RearrangerEnabled || reloaded.NewJobDaysThreshold != 21 {
		t.Errorf("reloaded = %+v, want saved values", reloaded)
	}
	if !reflect.DeepEqual(reloaded.PriorityKeys, models.DefaultSettings().PriorityKeys) {
		t.Errorf("priority keys changed unexpectedly: %v", reloaded.PriorityKeys)
	}
}

func TestSave_NoChangeNoNotify(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	s := Load(path, testLogger)

	called := false
	s.OnChange(func([]string) { called = true })

	if err := s.Save(func(*models.Settings) {}); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if called {
		t.Error("listener notified with no changes")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("file written with no changes")
	}
}
