package srt

import (
	"fmt"
	"strconv"
	"strings"
)

// Parse reads sequential SRT cue blocks from decoded text. Each block is an
// index line, a "start --> end" timing line, and one or more text lines,
// separated from the next block by a blank line.
func Parse(text string) (*Document, error) {
	content := strings.ReplaceAll(text, "\r\n", "\n")
	content = strings.TrimPrefix(content, "\uFEFF")
	content = strings.TrimSpace(content)

	doc := &Document{}
	if content == "" {
		doc.buildIndex()
		return doc, nil
	}

	for blockNum, block := range splitBlocks(content) {
		cue, err := parseBlock(block)
		if err != nil {
			return nil, fmt.Errorf("cue block %d: %w", blockNum+1, err)
		}
		doc.Cues = append(doc.Cues, cue)
	}
	doc.buildIndex()
	return doc, nil
}

func splitBlocks(content string) []string {
	raw := strings.Split(content, "\n\n")
	blocks := make([]string, 0, len(raw))
	for _, block := range raw {
		if strings.TrimSpace(block) != "" {
			blocks = append(blocks, block)
		}
	}
	return blocks
}

func parseBlock(block string) (Cue, error) {
	lines := strings.Split(strings.TrimSpace(block), "\n")
	if len(lines) < 2 {
		return Cue{}, fmt.Errorf("%w: incomplete cue block", ErrParse)
	}

	index, err := strconv.Atoi(strings.TrimSpace(lines[0]))
	if err != nil {
		return Cue{}, fmt.Errorf("%w: invalid cue index %q", ErrParse, lines[0])
	}

	startText, endText, ok := strings.Cut(lines[1], "-->")
	if !ok {
		return Cue{}, fmt.Errorf("%w: missing timing separator in %q", ErrParse, lines[1])
	}
	startMs, err := ParseTimestamp(startText)
	if err != nil {
		return Cue{}, err
	}
	endMs, err := ParseTimestamp(endText)
	if err != nil {
		return Cue{}, err
	}

	return Cue{
		Index:   index,
		StartMs: startMs,
		EndMs:   endMs,
		Text:    strings.Join(lines[2:], "\n"),
	}, nil
}
