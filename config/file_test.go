package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParse(t *testing.T) {
	f, err := Parse([]byte("horizon: 7\nworkers: 2\nvariant: level-button\nexport: out.nwk\n"))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if f.Horizon != 7 || f.Workers != 2 || f.Variant != "level-button" || f.Export != "out.nwk" {
		t.Errorf("Unexpected configuration: %+v", f)
	}
}

func TestParseEmpty(t *testing.T) {
	f, err := Parse([]byte(""))
	if err != nil {
		t.Fatalf("An empty file should be accepted. Got %v", err)
	}
	if *f != (File{}) {
		t.Errorf("Expected zero values. Got %+v", f)
	}
}

func TestParseUnknownField(t *testing.T) {
	if _, err := Parse([]byte("depth: 3\n")); err == nil {
		t.Errorf("Expected an error for an unknown field")
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lampmc.yaml")
	if err := os.WriteFile(path, []byte("horizon: 3\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	f, err := Load(path)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if f.Horizon != 3 {
		t.Errorf("Expected horizon 3. Got %v", f.Horizon)
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Errorf("Expected an error for a missing file")
	}
}
