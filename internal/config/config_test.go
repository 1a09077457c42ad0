package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gerax5/semcore/internal/config"
	"github.com/gerax5/semcore/internal/semantic/types"
)

func TestDefaultPolicies(t *testing.T) {
	cfg := config.Default()
	if cfg.SwitchPolicy != config.SwitchEqualityDispatch {
		t.Errorf("got switch policy %q, want equality-dispatch", cfg.SwitchPolicy)
	}
	if cfg.ArrayCovariance != types.ArrayStrict {
		t.Error("got widening, want strict array covariance by default")
	}
}

func TestLoadMissingFileFallsBackToDefault(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.SwitchPolicy != config.SwitchEqualityDispatch {
		t.Errorf("got %q, want default", cfg.SwitchPolicy)
	}
}

func TestLoadOverridesPolicies(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".semcorerc")
	content := "switch_policy: boolean-only\narray_covariance: widening\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.SwitchPolicy != config.SwitchBooleanOnly {
		t.Errorf("got %q, want boolean-only", cfg.SwitchPolicy)
	}
	if cfg.ArrayCovariance != types.ArrayWidening {
		t.Error("got strict, want widening")
	}
}
