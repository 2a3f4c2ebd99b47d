package urlspan

import (
	"errors"
	"fmt"
	"runtime"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/gdamore/tcell/v2"
)

// ErrUnknownModifier is returned when a configured modifier name is not recognized.
var ErrUnknownModifier = errors.New("unknown modifier")

// Config is the top-level configuration document.
//
// Example (TOML):
//
//	[mouse.url]
//	launcher = { program = "xdg-open", args = [] }
//	modifiers = ["Control"]
type Config struct {
	Mouse MouseConfig `toml:"mouse"`
}

// MouseConfig groups mouse related settings.
type MouseConfig struct {
	URL URLConfig `toml:"url"`
}

// URLConfig controls URL highlighting and launching.
type URLConfig struct {
	// Launcher opens a clicked URL. A nil launcher disables highlighting.
	Launcher *Program `toml:"launcher"`
	// Modifiers must be held (exactly) for a URL to be highlighted.
	Modifiers []string `toml:"modifiers"`
}

// Program is an external command. The URL is appended after Args.
type Program struct {
	Program string   `toml:"program"`
	Args    []string `toml:"args"`
}

// DefaultConfig returns the configuration used when no file is given: the
// platform's URL opener and no required modifiers.
func DefaultConfig() Config {
	var launcher Program
	switch runtime.GOOS {
	case "darwin":
		launcher = Program{Program: "open"}
	case "windows":
		launcher = Program{Program: "cmd", Args: []string{"/c", "start", ""}}
	default:
		launcher = Program{Program: "xdg-open"}
	}

	return Config{Mouse: MouseConfig{URL: URLConfig{Launcher: &launcher}}}
}

// LoadConfig reads a TOML file on top of DefaultConfig.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// ParseConfig decodes TOML data on top of DefaultConfig.
func ParseConfig(data string) (Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.Decode(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

// Validate checks the configuration for unknown modifier names and empty launchers.
func (c Config) Validate() error {
	if _, err := c.Mouse.URL.Mods(); err != nil {
		return fmt.Errorf("[mouse.url].modifiers: %w", err)
	}
	if l := c.Mouse.URL.Launcher; l != nil && l.Program == "" {
		return errors.New("[mouse.url].launcher: program must not be empty")
	}
	return nil
}

// Mods returns the modifier mask required for highlighting.
func (c URLConfig) Mods() (tcell.ModMask, error) {
	var mods tcell.ModMask
	for _, name := range c.Modifiers {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "shift":
			mods |= tcell.ModShift
		case "control", "ctrl":
			mods |= tcell.ModCtrl
		case "alt", "option":
			mods |= tcell.ModAlt
		case "super", "command", "meta":
			mods |= tcell.ModMeta
		case "none", "":
		default:
			return tcell.ModNone, fmt.Errorf("%w: %q", ErrUnknownModifier, name)
		}
	}
	return mods, nil
}
