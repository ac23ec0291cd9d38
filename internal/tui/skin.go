package tui

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

// Palette used across the dashboard. Set by ApplySkin.
var (
	ColorBlue      lipgloss.Color
	ColorGray      lipgloss.Color
	ColorNavy      lipgloss.Color
	ColorWhite     lipgloss.Color
	ColorGreen     lipgloss.Color
	ColorOrange    lipgloss.Color
	ColorHighlight lipgloss.Color
)

// Skin is a named colour palette. Custom skins are YAML files in
// <configDir>/skins/<name>.yml.
type Skin struct {
	Name   string     `yaml:"name"`
	Colors SkinColors `yaml:"colors"`
}

// SkinColors maps palette roles to colours (hex or ANSI index).
type SkinColors struct {
	Accent    string `yaml:"accent"`
	Muted     string `yaml:"muted"`
	Surface   string `yaml:"surface"`
	Text      string `yaml:"text"`
	Positive  string `yaml:"positive"`
	Badge     string `yaml:"badge"`
	Highlight string `yaml:"highlight"`
}

var builtinSkins = map[string]Skin{
	"default": {
		Name: "default",
		Colors: SkinColors{
			Accent:    "#3B82F6",
			Muted:     "#6B7280",
			Surface:   "#0F172A",
			Text:      "#F8FAFC",
			Positive:  "#22C55E",
			Badge:     "#F59E0B",
			Highlight: "#1E3A8A",
		},
	},
	"midnight": {
		Name: "midnight",
		Colors: SkinColors{
			Accent:    "#A78BFA",
			Muted:     "#64748B",
			Surface:   "#020617",
			Text:      "#E2E8F0",
			Positive:  "#34D399",
			Badge:     "#F472B6",
			Highlight: "#312E81",
		},
	},
}

func init() {
	ApplySkin(builtinSkins["default"])
}

// LoadSkin resolves a skin by name: built-ins first, then
// <configDir>/skins/<name>.yml. Missing colours in a custom skin inherit
// from the default skin.
func LoadSkin(name, configDir string) (Skin, error) {
	if name == "" {
		name = "default"
	}
	if s, ok := builtinSkins[name]; ok {
		return s, nil
	}

	path := filepath.Join(configDir, "skins", name+".yml")
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Skin{}, fmt.Errorf("skin %q not found at %s", name, path)
		}
		return Skin{}, fmt.Errorf("reading skin %q: %w", name, err)
	}

	skin := builtinSkins["default"]
	skin.Name = name
	if err := yaml.Unmarshal(data, &skin); err != nil {
		return Skin{}, fmt.Errorf("parsing skin %q: %w", name, err)
	}
	return skin, nil
}

// InitializeSkin loads and applies the named skin. On error the current
// palette is left unchanged.
func InitializeSkin(name, configDir string) error {
	skin, err := LoadSkin(name, configDir)
	if err != nil {
		return err
	}
	ApplySkin(skin)
	return nil
}

// ApplySkin sets the package palette.
func ApplySkin(s Skin) {
	c := s.Colors
	ColorBlue = lipgloss.Color(c.Accent)
	ColorGray = lipgloss.Color(c.Muted)
	ColorNavy = lipgloss.Color(c.Surface)
	ColorWhite = lipgloss.Color(c.Text)
	ColorGreen = lipgloss.Color(c.Positive)
	ColorOrange = lipgloss.Color(c.Badge)
	ColorHighlight = lipgloss.Color(c.Highlight)
}
