package config

import (
	"path/filepath"
	"testing"
)

func TestSaveLoadRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	in := &Global{
		APIKey:      "sk-test",
		Model:       "gpt-4o-mini",
		MaxTokens:   512,
		Temperature: 0.2,
		OutputDir:   "/tmp/charts",
		Headless:    true,
	}
	if err := Save(in, path); err != nil {
		t.Fatalf("Save: %v", err)
	}
	out, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if out.APIKey != in.APIKey || out.Model != in.Model || out.MaxTokens != in.MaxTokens {
		t.Fatalf("roundtrip mismatch: %+v", out)
	}
	if !out.Headless {
		t.Fatal("headless flag lost in roundtrip")
	}
	if out.OutputDir != "/tmp/charts" {
		t.Fatalf("output_dir = %q", out.OutputDir)
	}
}

func TestLoadDefaults(t *testing.T) {
	// nonexistent file: defaults only
	out, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if out.Model != "gpt-4o-mini" {
		t.Fatalf("default model = %q", out.Model)
	}
	if out.TranscribeModel != "whisper-1" {
		t.Fatalf("default transcribe model = %q", out.TranscribeModel)
	}
	if out.MaxTokens != 1000 {
		t.Fatalf("default max_tokens = %d", out.MaxTokens)
	}
	if out.RetryMaxAttempts != 1 {
		t.Fatalf("default retry_max_attempts = %d, want 1 (no retries)", out.RetryMaxAttempts)
	}
	if out.OutputDir == "" {
		t.Fatal("output_dir default not resolved")
	}
}

func TestRequireAPIKey(t *testing.T) {
	c := &Global{}
	if err := c.RequireAPIKey(); err == nil {
		t.Fatal("expected error without api key")
	}
	c.APIKey = "sk-x"
	if err := c.RequireAPIKey(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
