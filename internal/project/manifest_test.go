package project

import (
	"os"
	"path/filepath"
	"testing"
)

func writeManifest(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, ManifestName)
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write manifest: %v", err)
	}
	return path
}

const validManifest = `
[package]
name = "demo"

[check]
paths = ["main.mini", "lib/util.mini"]
`

func TestLoadValidManifest(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, validManifest)

	m, ok, err := Load(dir)
	if err != nil || !ok {
		t.Fatalf("Load = (%v, %v)", ok, err)
	}
	if m.Config.Package.Name != "demo" {
		t.Errorf("name = %q", m.Config.Package.Name)
	}
	targets := m.CheckTargets()
	if len(targets) != 2 {
		t.Fatalf("targets = %v", targets)
	}
	if targets[0] != filepath.Join(dir, "main.mini") {
		t.Errorf("target[0] = %q", targets[0])
	}
	if targets[1] != filepath.Join(dir, "lib", "util.mini") {
		t.Errorf("target[1] = %q", targets[1])
	}
}

func TestLoadWalksUpward(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, validManifest)
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	m, ok, err := Load(nested)
	if err != nil || !ok {
		t.Fatalf("Load from nested dir = (%v, %v)", ok, err)
	}
	if m.Root != root {
		t.Errorf("root = %q, want %q", m.Root, root)
	}
}

func TestLoadNoManifest(t *testing.T) {
	_, ok, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Fatal("expected ok=false without a manifest")
	}
}

func TestLoadRejectsIncompleteManifests(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"missing package", "[check]\npaths = [\"x.mini\"]\n"},
		{"empty name", "[package]\nname = \"  \"\n[check]\npaths = [\"x.mini\"]\n"},
		{"missing check paths", "[package]\nname = \"demo\"\n"},
		{"bad toml", "[package\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			dir := t.TempDir()
			writeManifest(t, dir, tc.body)
			if _, _, err := Load(dir); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}
