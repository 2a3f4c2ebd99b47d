package urlspan

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Mouse.URL.Launcher == nil {
		t.Fatal("expected a default launcher")
	}
	if runtime.GOOS == "linux" && cfg.Mouse.URL.Launcher.Program != "xdg-open" {
		t.Errorf("expected xdg-open on linux, got %q", cfg.Mouse.URL.Launcher.Program)
	}
	if len(cfg.Mouse.URL.Modifiers) != 0 {
		t.Errorf("expected no modifiers, got %v", cfg.Mouse.URL.Modifiers)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestParseConfig(t *testing.T) {
	cfg, err := ParseConfig(`
[mouse.url]
launcher = { program = "firefox", args = ["--new-tab"] }
modifiers = ["Control", "Shift"]
`)
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}

	l := cfg.Mouse.URL.Launcher
	if l == nil || l.Program != "firefox" || len(l.Args) != 1 || l.Args[0] != "--new-tab" {
		t.Errorf("unexpected launcher %+v", l)
	}

	mods, err := cfg.Mouse.URL.Mods()
	if err != nil {
		t.Fatalf("Mods() error = %v", err)
	}
	if mods != tcell.ModCtrl|tcell.ModShift {
		t.Errorf("mods = %v, want Ctrl|Shift", mods)
	}
}

func TestParseConfigKeepsDefaults(t *testing.T) {
	cfg, err := ParseConfig(`
[mouse.url]
modifiers = ["Alt"]
`)
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.Mouse.URL.Launcher == nil {
		t.Error("expected default launcher to be kept")
	}
}

func TestParseConfigErrors(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		unknown bool
	}{
		{"bad toml", "[mouse.url\n", false},
		{"unknown modifier", "[mouse.url]\nmodifiers = [\"Hyper\"]\n", true},
		{"empty launcher", "[mouse.url]\nlauncher = { program = \"\" }\n", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseConfig(tt.data)
			if err == nil {
				t.Fatal("expected an error")
			}
			if got := errors.Is(err, ErrUnknownModifier); got != tt.unknown {
				t.Errorf("errors.Is(err, ErrUnknownModifier) = %v, want %v (err: %v)", got, tt.unknown, err)
			}
		})
	}
}

func TestURLConfigMods(t *testing.T) {
	tests := []struct {
		names []string
		want  tcell.ModMask
	}{
		{nil, tcell.ModNone},
		{[]string{"None"}, tcell.ModNone},
		{[]string{"shift"}, tcell.ModShift},
		{[]string{"Ctrl"}, tcell.ModCtrl},
		{[]string{" control "}, tcell.ModCtrl},
		{[]string{"Option"}, tcell.ModAlt},
		{[]string{"Command"}, tcell.ModMeta},
		{[]string{"Super", "Alt"}, tcell.ModMeta | tcell.ModAlt},
	}

	for _, tt := range tests {
		got, err := URLConfig{Modifiers: tt.names}.Mods()
		if err != nil {
			t.Errorf("Mods(%v) error = %v", tt.names, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Mods(%v) = %v, want %v", tt.names, got, tt.want)
		}
	}
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "urlspan.toml")
	data := "[mouse.url]\nlauncher = { program = \"open\" }\nmodifiers = [\"Super\"]\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.Mouse.URL.Launcher.Program != "open" {
		t.Errorf("launcher = %q, want open", cfg.Mouse.URL.Launcher.Program)
	}

	if _, err := LoadConfig(filepath.Join(dir, "missing.toml")); err == nil {
		t.Error("expected an error for a missing file")
	}
}
