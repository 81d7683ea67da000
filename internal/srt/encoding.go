package srt

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// Encoding names accepted by ReadFile and WriteFile.
const (
	EncodingUTF8   = "utf-8"
	EncodingLatin1 = "latin-1"
)

// ReadFile reads a subtitle file and decodes it with the named encoding.
// A decode failure returns ErrEncoding so callers can prompt for a retry
// with a different encoding instead of crashing.
func ReadFile(path, encoding string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read subtitle file: %w", err)
	}
	switch normalizeEncodingName(encoding) {
	case EncodingUTF8:
		if !utf8.Valid(data) {
			return "", fmt.Errorf("%w: %s is not valid UTF-8, retry with a different encoding", ErrEncoding, filepath.Base(path))
		}
		return string(data), nil
	case EncodingLatin1:
		decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(data)
		if err != nil {
			return "", fmt.Errorf("%w: decode %s as latin-1 failed, retry with a different encoding: %v", ErrEncoding, filepath.Base(path), err)
		}
		return string(decoded), nil
	default:
		return "", fmt.Errorf("%w: unsupported encoding %q", ErrEncoding, encoding)
	}
}

// WriteFile encodes content with the named encoding and writes it to path.
func WriteFile(path, content, encoding string) error {
	var data []byte
	switch normalizeEncodingName(encoding) {
	case EncodingUTF8:
		data = []byte(content)
	case EncodingLatin1:
		encoded, err := charmap.ISO8859_1.NewEncoder().Bytes([]byte(content))
		if err != nil {
			return fmt.Errorf("%w: encode %s as latin-1 failed, retry with a different encoding: %v", ErrEncoding, filepath.Base(path), err)
		}
		data = encoded
	default:
		return fmt.Errorf("%w: unsupported encoding %q", ErrEncoding, encoding)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write subtitle file: %w", err)
	}
	return nil
}

// Load reads and parses a subtitle file in one step.
func Load(path, encoding string) (*Document, error) {
	text, err := ReadFile(path, encoding)
	if err != nil {
		return nil, err
	}
	doc, err := Parse(text)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	return doc, nil
}

// DeriveOutputPath builds the corrected-file path by replacing the ".srt"
// extension with a mode-specific suffix (for example "_c.srt"). The input
// file itself is never the output target.
func DeriveOutputPath(path, suffix string) string {
	ext := filepath.Ext(path)
	if strings.EqualFold(ext, ".srt") {
		return path[:len(path)-len(ext)] + suffix
	}
	return path + suffix
}

func normalizeEncodingName(encoding string) string {
	name := strings.ToLower(strings.TrimSpace(encoding))
	switch name {
	case "", "utf8", EncodingUTF8:
		return EncodingUTF8
	case "latin1", "iso-8859-1", EncodingLatin1:
		return EncodingLatin1
	default:
		return name
	}
}
