package msgcat

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadEmbeddedDefaults(t *testing.T) {
	c, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := c.Text("games.icons.Tango"); got != "🟡" {
		t.Fatalf("Tango icon = %q", got)
	}
	if c.Text("report.title") == "" {
		t.Fatal("missing report.title")
	}
}

func TestRender(t *testing.T) {
	c, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	out, err := c.Render("report.identity", map[string]any{"Name": "Ana"})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if out != "Showing results as: Ana" {
		t.Fatalf("got %q", out)
	}
	if _, err := c.Render("no.such.key", nil); err == nil {
		t.Fatal("expected error for unknown key")
	}
}

func TestOverrideDir(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "a.yaml"), []byte("report:\n  title: \"overridden\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	c, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := c.Text("report.title"); got != "overridden" {
		t.Fatalf("title = %q", got)
	}
	// Untouched keys keep their defaults.
	if got := c.Text("games.icons.Zip"); got != "⚡" {
		t.Fatalf("Zip icon = %q", got)
	}
}

func TestOverrideDuplicateKeyRejected(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.yaml", "b.yaml"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("report:\n  title: \"x\"\n"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	if _, err := Load(dir); err == nil {
		t.Fatal("expected duplicate-key error")
	}
}
