package dump

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

// Config is the on-disk (TOML) shape of prototype defaults. Pointer fields
// distinguish "absent" from "explicitly off" where the default is not false.
type Config struct {
	Depth          int    `toml:"depth"`
	ShowMethods    bool   `toml:"show_methods"`
	Sort           bool   `toml:"sort"`
	ShowStringForm *bool  `toml:"show_string_form"`
	Wrap           *bool  `toml:"wrap"`
	Color          string `toml:"color"`
}

// LoadPrototypeConfig reads and validates a prototype configuration file.
func LoadPrototypeConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("dump config load failed (%s): %w", path, err)
	}
	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("dump config parse failed (%s): %w", path, err)
	}
	if cfg.Depth == 0 {
		cfg.Depth = DefaultDepth
	}
	if strings.TrimSpace(cfg.Color) == "" {
		cfg.Color = defaultColor
	}
	if err := ValidateConfig(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func ValidateConfig(cfg Config) error {
	if cfg.Depth < 1 {
		return ErrDepthTooSmall
	}
	return nil
}

// Session converts file configuration into a session, platform defaults
// filling whatever the file left out.
func (c Config) Session() *Session {
	s := defaultSession()
	s.depth = c.Depth
	s.showMethods = c.ShowMethods
	s.sorted = c.Sort
	if c.ShowStringForm != nil {
		s.showStringForm = *c.ShowStringForm
	}
	if c.Wrap != nil {
		s.wrap = *c.Wrap
	}
	s.color = c.Color
	return s
}
