package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/masmgr/gitlanes/internal/layout"
)

// Config file names searched when no path is given, in order.
const (
	FileNameTOML = ".gitlanes.toml"
	FileNameJSON = ".gitlanes.json"
)

// Config is the root configuration structure.
type Config struct {
	Layout LayoutConfig `json:"layout" toml:"layout"`
	Git    GitConfig    `json:"git" toml:"git"`
	Output OutputConfig `json:"output" toml:"output"`
}

// LayoutConfig holds geometry and colors of the diagram.
type LayoutConfig struct {
	LaneWidth    int      `json:"laneWidth" toml:"laneWidth"`       // Default: 80
	RowHeight    int      `json:"rowHeight" toml:"rowHeight"`       // Default: 60
	PrimaryColor string   `json:"primaryColor" toml:"primaryColor"` // Color of lane 0
	Palette      []string `json:"palette" toml:"palette"`           // Colors of the other lanes, reused cyclically
}

// GitConfig holds how history is read.
type GitConfig struct {
	Backend  string          `json:"backend" toml:"backend"`   // "cli" or "go-git"
	MaxCount int             `json:"maxCount" toml:"maxCount"` // 0 reads the whole history
	Refs     RefFilterConfig `json:"refs" toml:"refs"`
}

// RefFilterConfig holds glob patterns over short ref names.
type RefFilterConfig struct {
	Include []string `json:"include" toml:"include"`
	Exclude []string `json:"exclude" toml:"exclude"`
}

// OutputConfig holds report defaults.
type OutputConfig struct {
	Format string `json:"format" toml:"format"`
	Top    int    `json:"top" toml:"top"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Layout: LayoutConfig{
			LaneWidth:    layout.LaneWidth,
			RowHeight:    layout.RowHeight,
			PrimaryColor: layout.PrimaryColor,
			Palette:      layout.DefaultPalette(),
		},
		Git: GitConfig{
			Backend:  "cli",
			MaxCount: 0,
			Refs: RefFilterConfig{
				Include: []string{},
				Exclude: []string{},
			},
		},
		Output: OutputConfig{
			Format: "console",
			Top:    0,
		},
	}
}

// LayoutOptions converts the layout section into engine options.
func (c *Config) LayoutOptions() layout.Options {
	return layout.Options{
		LaneWidth:    c.Layout.LaneWidth,
		RowHeight:    c.Layout.RowHeight,
		PrimaryColor: c.Layout.PrimaryColor,
		Palette:      append([]string(nil), c.Layout.Palette...),
	}
}

var hexColorPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// Validate checks value ranges and color syntax.
func (c *Config) Validate() error {
	if c.Layout.LaneWidth < 0 || c.Layout.RowHeight < 0 {
		return fmt.Errorf("layout geometry must not be negative (laneWidth=%d, rowHeight=%d)",
			c.Layout.LaneWidth, c.Layout.RowHeight)
	}
	if c.Layout.PrimaryColor != "" && !hexColorPattern.MatchString(c.Layout.PrimaryColor) {
		return fmt.Errorf("invalid primary color %q (expected #rrggbb)", c.Layout.PrimaryColor)
	}
	for _, col := range c.Layout.Palette {
		if !hexColorPattern.MatchString(col) {
			return fmt.Errorf("invalid palette color %q (expected #rrggbb)", col)
		}
	}
	if c.Git.MaxCount < 0 {
		return fmt.Errorf("git maxCount must not be negative, got %d", c.Git.MaxCount)
	}
	if c.Output.Top < 0 {
		return fmt.Errorf("output top must not be negative, got %d", c.Output.Top)
	}
	return nil
}

// LoadConfig loads configuration from a file, falling back to defaults.
// If path is empty, .gitlanes.toml and .gitlanes.json are searched in the
// current directory and then in the home directory. Files ending in .toml
// are decoded as TOML, everything else as JSON.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		path = findConfigFile()
	}

	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if isTOML(path) {
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	} else if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func findConfigFile() string {
	dirs := []string{"."}
	if home, err := os.UserHomeDir(); err == nil && home != "" {
		dirs = append(dirs, home)
	} else if envHome := os.Getenv("HOME"); envHome != "" {
		dirs = append(dirs, envHome)
	}

	for _, dir := range dirs {
		for _, name := range []string{FileNameTOML, FileNameJSON} {
			p := filepath.Join(dir, name)
			if _, err := os.Stat(p); err == nil {
				return p
			}
		}
	}
	return ""
}

// SaveConfig saves configuration to a file, as TOML when path ends in .toml
// and as indented JSON otherwise.
func SaveConfig(cfg *Config, path string) error {
	var data []byte
	if isTOML(path) {
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
			return err
		}
		data = buf.Bytes()
	} else {
		var err error
		data, err = json.MarshalIndent(cfg, "", "  ")
		if err != nil {
			return err
		}
	}
	return os.WriteFile(path, data, 0644)
}

func isTOML(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".toml")
}
