package prefs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mitchellh/go-homedir"
)

func init() {
	homedir.DisableCache = true
}

func writePrefs(t *testing.T, path, body string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	if p := Load(""); p.Theme != DefaultTheme {
		t.Fatalf("Theme = %q, want %q", p.Theme, DefaultTheme)
	}
}

func TestLoad_DefaultPathUnderHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	writePrefs(t, filepath.Join(home, ".config", "skyview", "prefs.toml"), "theme = \"Daylight\"\n")

	if p := Load(""); p.Theme != "Daylight" {
		t.Fatalf("Theme = %q, want Daylight", p.Theme)
	}
}

func TestLoad_TrimsAndDefaultsTheme(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{name: "padded", body: "theme = \"  Daylight \"\n", want: "Daylight"},
		{name: "empty", body: "theme = \"\"\n", want: DefaultTheme},
		{name: "invalid toml", body: "not valid toml {{{\n", want: DefaultTheme},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "prefs.toml")
			writePrefs(t, path, tt.body)
			if p := Load(path); p.Theme != tt.want {
				t.Fatalf("Theme = %q, want %q", p.Theme, tt.want)
			}
		})
	}
}

func TestSave_RoundTripsAndCreatesDirs(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "prefs.toml")

	if err := Save(path, Prefs{Theme: "Daylight"}); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}
	if p := Load(path); p.Theme != "Daylight" {
		t.Fatalf("Theme = %q, want Daylight", p.Theme)
	}

	entries, err := os.ReadDir(filepath.Join(dir, "nested"))
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("dir has %d entries, want only prefs.toml", len(entries))
	}
}
