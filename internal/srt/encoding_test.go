package srt

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestReadFileLatin1(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sub.srt")
	// "café" in Latin-1: 0xE9 is not valid UTF-8 on its own.
	content := []byte("1\n00:00:01,000 --> 00:00:02,000\ncaf\xe9\n")
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := ReadFile(path, EncodingUTF8); !errors.Is(err, ErrEncoding) {
		t.Fatalf("expected ErrEncoding for UTF-8 read, got %v", err)
	}

	text, err := ReadFile(path, EncodingLatin1)
	if err != nil {
		t.Fatalf("latin-1 read failed: %v", err)
	}
	if !strings.Contains(text, "café") {
		t.Fatalf("expected decoded text to contain %q, got %q", "café", text)
	}
}

func TestEncodingErrorCarriesHint(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sub.srt")
	if err := os.WriteFile(path, []byte{0xff, 0xfe, 0x00}, 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := ReadFile(path, EncodingUTF8)
	if err == nil || !strings.Contains(err.Error(), "retry with a different encoding") {
		t.Fatalf("expected remediation hint in error, got %v", err)
	}
}

func TestWriteFileRoundTrip(t *testing.T) {
	dir := t.TempDir()
	for _, encoding := range []string{EncodingUTF8, EncodingLatin1} {
		path := filepath.Join(dir, encoding+".srt")
		if err := WriteFile(path, sampleSRT, encoding); err != nil {
			t.Fatalf("write %s failed: %v", encoding, err)
		}
		text, err := ReadFile(path, encoding)
		if err != nil {
			t.Fatalf("read %s failed: %v", encoding, err)
		}
		if text != sampleSRT {
			t.Fatalf("%s round trip mismatch", encoding)
		}
	}
}

func TestReadFileUnsupportedEncoding(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sub.srt")
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := ReadFile(path, "utf-16"); !errors.Is(err, ErrEncoding) {
		t.Fatalf("expected ErrEncoding, got %v", err)
	}
}

func TestDeriveOutputPath(t *testing.T) {
	cases := []struct {
		path, suffix, want string
	}{
		{"/video/movie.srt", "_c.srt", "/video/movie_c.srt"},
		{"/video/movie.SRT", "_autosync.srt", "/video/movie_autosync.srt"},
		{"/video/movie", "_c.srt", "/video/movie_c.srt"},
	}
	for _, tc := range cases {
		if got := DeriveOutputPath(tc.path, tc.suffix); got != tc.want {
			t.Fatalf("DeriveOutputPath(%q, %q) = %q, want %q", tc.path, tc.suffix, got, tc.want)
		}
	}
}
