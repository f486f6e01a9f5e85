package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/danmuck/tlwire/internal/protocol/bin"
	"github.com/danmuck/tlwire/internal/testutil/testlog"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tlctl.toml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestTemplateLoadsAndValidates(t *testing.T) {
	testlog.Start(t)
	path := filepath.Join(t.TempDir(), "tlctl.toml")
	if err := WriteTemplate(path, "tlctl", false); err != nil {
		t.Fatalf("write template: %v", err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load template: %v", err)
	}
	if cfg.Codec.Limits() != bin.DefaultLimits() {
		t.Fatalf("template limits differ from defaults: %+v", cfg.Codec)
	}
	if cfg.Gen.Package != "types" || cfg.Gen.Layer != 1 || cfg.Log.Level != "info" {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	opts := cfg.Gen.Options()
	if opts.Package != "types" || opts.Layer != 1 {
		t.Fatalf("unexpected gen options: %+v", opts)
	}

	if err := WriteTemplate(path, "tlctl", false); err == nil {
		t.Fatalf("expected existing config to be kept")
	}
	if err := WriteTemplate(path, "codec", true); err != nil {
		t.Fatalf("overwrite template: %v", err)
	}
}

func TestLoadFillsDefaults(t *testing.T) {
	testlog.Start(t)
	cfg, err := Load(writeConfig(t, "[codec]\nmax_vector_len = 64\n"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	limits := cfg.Codec.Limits()
	if limits.MaxVectorLen != 64 {
		t.Fatalf("expected vector limit 64, got %d", limits.MaxVectorLen)
	}
	if limits.MaxBlobBytes != bin.MaxBlobLen || cfg.Gen.Package != "types" || cfg.Log.Level != "info" {
		t.Fatalf("defaults not applied: %+v", cfg)
	}
}

func TestLoadRejects(t *testing.T) {
	testlog.Start(t)
	cases := map[string]string{
		"unknown key":    "[codec]\nmax_blobs = 1\n",
		"bad syntax":     "[codec\n",
		"negative limit": "[codec]\nmax_vector_len = -1\n",
		"blob over wire": "[codec]\nmax_blob_bytes = 16777216\n",
		"bad package":    "[gen]\npackage = \"my-types\"\n",
		"unknown level":  "[log]\nlevel = \"loud\"\n",
	}
	for name, body := range cases {
		if _, err := Load(writeConfig(t, body)); err == nil {
			t.Fatalf("%s: expected load error", name)
		}
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); err == nil || !strings.Contains(err.Error(), "config load failed") {
		t.Fatalf("expected load failure for missing file, got %v", err)
	}
	if _, err := Template("ghost"); err == nil {
		t.Fatalf("expected unknown template kind to fail")
	}
}
