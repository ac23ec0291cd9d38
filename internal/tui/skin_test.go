package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeSkin(t *testing.T, dir, name, body string) {
	t.Helper()

	skinsDir := filepath.Join(dir, "skins")
	if err := os.MkdirAll(skinsDir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(skinsDir, name+".yml"), []byte(body), 0o644); err != nil {
		t.Fatalf("write skin: %v", err)
	}
}

func TestLoadSkin_Builtin(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"", "default", "midnight"} {
		skin, err := LoadSkin(name, t.TempDir())
		if err != nil {
			t.Fatalf("LoadSkin(%q): %v", name, err)
		}
		if skin.Colors.Accent == "" {
			t.Fatalf("LoadSkin(%q): empty accent", name)
		}
	}
}

func TestLoadSkin_CustomInheritsMissingColors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeSkin(t, dir, "sunset", "colors:\n  accent: \"#FF7A00\"\n  highlight: \"#4A1D00\"\n")

	skin, err := LoadSkin("sunset", dir)
	if err != nil {
		t.Fatalf("LoadSkin: %v", err)
	}
	if skin.Name != "sunset" {
		t.Fatalf("name = %q, want sunset", skin.Name)
	}
	if skin.Colors.Accent != "#FF7A00" {
		t.Fatalf("accent = %q, want #FF7A00", skin.Colors.Accent)
	}
	if got, want := skin.Colors.Muted, builtinSkins["default"].Colors.Muted; got != want {
		t.Fatalf("muted = %q, want inherited %q", got, want)
	}
}

func TestLoadSkin_Errors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	if _, err := LoadSkin("missing", dir); err == nil || !strings.Contains(err.Error(), "not found") {
		t.Fatalf("err = %v, want not found", err)
	}

	writeSkin(t, dir, "broken", "colors: [not, a, map\n")
	if _, err := LoadSkin("broken", dir); err == nil || !strings.Contains(err.Error(), "parsing skin") {
		t.Fatalf("err = %v, want parse error", err)
	}
}
