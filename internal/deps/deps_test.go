package deps

import (
	"os"
	"path/filepath"
	"testing"

	"srtsync/internal/config"
)

func TestCheckBinaries(t *testing.T) {
	binDir := t.TempDir()
	present := filepath.Join(binDir, "present")
	script := []byte("#!/bin/sh\nexit 0\n")
	if err := os.WriteFile(present, script, 0o755); err != nil {
		t.Fatalf("write stub: %v", err)
	}
	reqs := []Requirement{
		{Name: "Present", Command: present},
		{Name: "Missing", Command: "clearly-not-present-binary"},
	}

	results := CheckBinaries(reqs)
	if len(results) != len(reqs) {
		t.Fatalf("expected %d results, got %d", len(reqs), len(results))
	}

	if !results[0].Available {
		t.Fatalf("expected first requirement to be available, got %#v", results[0])
	}

	if results[1].Available {
		t.Fatalf("expected missing binary to be unavailable")
	}
	if results[1].Detail == "" {
		t.Fatalf("expected detail message for missing binary")
	}

	if results[1].Command != "clearly-not-present-binary" {
		t.Fatalf("unexpected command recorded: %s", results[1].Command)
	}

	if results[0].Detail != "" {
		t.Fatalf("unexpected detail for available dependency: %s", results[0].Detail)
	}
}

func TestRequirementsFollowEngine(t *testing.T) {
	cfg := config.Default()
	cfg.Transcriber.Engine = config.EngineWhisperX
	for _, req := range Requirements(&cfg) {
		if req.Name == "uvx" && req.Optional {
			t.Fatal("uvx must be required for the whisperx engine")
		}
	}

	cfg.Transcriber.Engine = config.EngineOpenAI
	found := false
	for _, req := range Requirements(&cfg) {
		if req.Name == "uvx" {
			found = true
			if !req.Optional {
				t.Fatal("uvx must be optional for the openai engine")
			}
		}
	}
	if !found {
		t.Fatal("uvx requirement missing")
	}
}

func TestMissingRequired(t *testing.T) {
	statuses := []Status{
		{Name: "a", Available: true},
		{Name: "b", Available: false, Optional: true},
		{Name: "c", Available: false},
	}
	if got := MissingRequired(statuses); got != 1 {
		t.Fatalf("MissingRequired = %d, want 1", got)
	}
}
