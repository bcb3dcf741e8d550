package dump

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/twitnic/lean/internal/testutil/testlog"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "lean.toml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadPrototypeConfig(t *testing.T) {
	testlog.Start(t)
	path := writeConfig(t, `
depth = 5
show_methods = true
sort = true
wrap = false
color = "#123456"
`)
	cfg, err := LoadPrototypeConfig(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Depth != 5 || !cfg.ShowMethods || !cfg.Sort {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if cfg.Wrap == nil || *cfg.Wrap {
		t.Fatalf("wrap must be explicitly off")
	}

	s := cfg.Session()
	if s.depth != 5 || !s.showMethods || !s.sorted || s.wrap {
		t.Fatalf("session does not reflect config: %+v", s)
	}
	if s.color != "#123456" {
		t.Fatalf("unexpected color: %q", s.color)
	}
	if !s.showStringForm {
		t.Fatalf("absent show_string_form must keep the default")
	}
}

func TestLoadPrototypeConfigDefaults(t *testing.T) {
	testlog.Start(t)
	path := writeConfig(t, ``)
	cfg, err := LoadPrototypeConfig(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Depth != DefaultDepth {
		t.Fatalf("unexpected default depth: %d", cfg.Depth)
	}
	if cfg.Color != defaultColor {
		t.Fatalf("unexpected default color: %q", cfg.Color)
	}
	if cfg.Wrap != nil {
		t.Fatalf("absent wrap must stay platform-decided")
	}
}

func TestLoadPrototypeConfigRejectsBadDepth(t *testing.T) {
	testlog.Start(t)
	path := writeConfig(t, `depth = -2`)
	_, err := LoadPrototypeConfig(path)
	if !errors.Is(err, ErrDepthTooSmall) {
		t.Fatalf("expected ErrDepthTooSmall, got %v", err)
	}
}

func TestLoadPrototypeConfigMissingFile(t *testing.T) {
	testlog.Start(t)
	_, err := LoadPrototypeConfig(filepath.Join(t.TempDir(), "absent.toml"))
	if err == nil {
		t.Fatalf("expected error for missing file")
	}
}
