package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestConfigInitWritesSample(t *testing.T) {
	target := filepath.Join(t.TempDir(), "config.toml")

	out, err := runCLI(t, "", "config", "init", "--path", target)
	if err != nil {
		t.Fatalf("config init: %v", err)
	}
	requireContains(t, out, "Wrote sample configuration")

	if _, err := os.Stat(target); err != nil {
		t.Fatalf("expected config file at %s: %v", target, err)
	}

	// A second init without --overwrite refuses to clobber the file.
	if _, err := runCLI(t, "", "config", "init", "--path", target); err == nil {
		t.Fatal("expected error on existing config")
	}
	if _, err := runCLI(t, "", "config", "init", "--path", target, "--overwrite"); err != nil {
		t.Fatalf("config init --overwrite: %v", err)
	}
}

func TestConfigShowPrintsEffectiveConfig(t *testing.T) {
	configPath := writeCLIConfig(t)

	out, err := runCLI(t, configPath, "config", "show")
	if err != nil {
		t.Fatalf("config show: %v", err)
	}
	requireContains(t, out, "confidence_threshold = 70")
	requireContains(t, out, "engine = 'whisperx'")
}

func TestTimesCommandEmptyStore(t *testing.T) {
	configPath := writeCLIConfig(t)

	out, err := runCLI(t, configPath, "times")
	if err != nil {
		t.Fatalf("times: %v", err)
	}
	requireContains(t, out, "No saved times yet")
	requireContains(t, out, "No sync history yet")
}

func TestTimesCommandAfterSync(t *testing.T) {
	configPath := writeCLIConfig(t)
	subtitlePath := writeCLISubtitle(t)

	if _, err := runCLI(t, configPath, "sync", subtitlePath,
		"--f1", "00:00:10,000", "--t1", "00:00:11,000",
		"--f2", "00:00:20,000", "--t2", "00:00:21,000",
	); err != nil {
		t.Fatalf("sync: %v", err)
	}

	out, err := runCLI(t, configPath, "times")
	if err != nil {
		t.Fatalf("times: %v", err)
	}
	requireContains(t, out, "00:00:10,000")
	requireContains(t, out, "manual")
}
