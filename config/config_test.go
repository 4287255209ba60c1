package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Checksum.Algorithm != "fletcher4" {
		t.Errorf("default checksum algorithm = %q, want fletcher4", cfg.Checksum.Algorithm)
	}
	if cfg.Compression.Algorithm != "lz4" {
		t.Errorf("default compression algorithm = %q, want lz4", cfg.Compression.Algorithm)
	}
	if err := validateConfig(cfg); err != nil {
		t.Errorf("default config failed validation: %v", err)
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	contents := []byte(`
checksum:
  algorithm: fletcher2
compression:
  algorithm: lzjb
chunk_size: 65536
debug: true
`)
	if err := os.WriteFile(path, contents, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	if cfg.Checksum.Algorithm != "fletcher2" {
		t.Errorf("checksum algorithm = %q, want fletcher2", cfg.Checksum.Algorithm)
	}
	if cfg.Compression.Algorithm != "lzjb" {
		t.Errorf("compression algorithm = %q, want lzjb", cfg.Compression.Algorithm)
	}
	if cfg.ChunkSize != 65536 {
		t.Errorf("chunk size = %d, want 65536", cfg.ChunkSize)
	}
	if !cfg.Debug {
		t.Error("debug = false, want true")
	}

	// Omitted keys keep their defaults.
	if cfg.Compression.MaxOutputSize != 16*1024*1024 {
		t.Errorf("max output size = %d, want default", cfg.Compression.MaxOutputSize)
	}
}

func TestLoadConfigRejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	contents := []byte("checksum:\n  algorithm: md5\n")
	if err := os.WriteFile(path, contents, 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadConfig(path); err == nil {
		t.Error("expected error for unsupported checksum algorithm")
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected error for missing config file")
	}
}
