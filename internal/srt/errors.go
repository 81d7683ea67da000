package srt

import "errors"

var (
	// ErrParse marks a malformed subtitle file.
	ErrParse = errors.New("subtitle parse error")
	// ErrEncoding marks a file that could not be decoded or encoded with
	// the requested character encoding. Callers should suggest retrying
	// with a different encoding.
	ErrEncoding = errors.New("subtitle encoding error")
)
