package siteqa

import "strings"

// Default chunking parameters for indexing.
const (
	DefaultChunkSize    = 1200
	DefaultChunkOverlap = 150
)

// splitSeparators are tried in order when breaking oversized text:
// paragraph breaks first, then line breaks, then word boundaries.
var splitSeparators = []string{"\n\n", "\n", " "}

// SplitText splits markdown into chunks of at most size characters,
// preferring paragraph boundaries, then lines, then words. Each chunk after
// the first starts with the last overlap characters of its predecessor so
// that retrieval does not lose context at chunk edges. A chunk can exceed
// size by at most overlap characters.
func SplitText(text string, size, overlap int) []string {
	if size <= 0 {
		size = DefaultChunkSize
	}
	if overlap < 0 || overlap >= size {
		overlap = 0
	}

	if strings.TrimSpace(text) == "" {
		return nil
	}
	if len(text) <= size {
		return []string{strings.TrimSpace(text)}
	}

	pieces := splitPieces(text, splitSeparators, size)

	var chunks []string
	var buf strings.Builder
	for _, piece := range pieces {
		if buf.Len() > 0 && buf.Len()+len(piece) > size {
			chunk := strings.TrimSpace(buf.String())
			tail := tailRunes(buf.String(), overlap)
			buf.Reset()
			buf.WriteString(tail)
			if chunk != "" {
				chunks = append(chunks, chunk)
			}
		}
		buf.WriteString(piece)
	}
	if chunk := strings.TrimSpace(buf.String()); chunk != "" {
		chunks = append(chunks, chunk)
	}

	return chunks
}

// splitPieces breaks text into segments no longer than size. Each segment
// retains its trailing separator so that concatenating segments reproduces
// the original text.
func splitPieces(text string, seps []string, size int) []string {
	if len(text) <= size {
		return []string{text}
	}
	if len(seps) == 0 {
		return hardCut(text, size)
	}

	segments := splitKeep(text, seps[0])
	var pieces []string
	for _, seg := range segments {
		if len(seg) <= size {
			pieces = append(pieces, seg)
			continue
		}
		pieces = append(pieces, splitPieces(seg, seps[1:], size)...)
	}
	return pieces
}

// splitKeep splits text on sep, keeping the separator attached to the
// preceding segment.
func splitKeep(text, sep string) []string {
	parts := strings.SplitAfter(text, sep)
	// SplitAfter can yield a trailing empty string when text ends with sep.
	if n := len(parts); n > 0 && parts[n-1] == "" {
		parts = parts[:n-1]
	}
	return parts
}

// hardCut slices text into rune-safe segments of at most size bytes.
func hardCut(text string, size int) []string {
	var segments []string
	runes := []rune(text)
	var b strings.Builder
	for _, r := range runes {
		if b.Len()+len(string(r)) > size && b.Len() > 0 {
			segments = append(segments, b.String())
			b.Reset()
		}
		b.WriteRune(r)
	}
	if b.Len() > 0 {
		segments = append(segments, b.String())
	}
	return segments
}

// tailRunes returns the last n bytes of s, adjusted backward to a rune
// boundary.
func tailRunes(s string, n int) string {
	if n <= 0 || len(s) <= n {
		if n <= 0 {
			return ""
		}
		return s
	}
	start := len(s) - n
	for start < len(s) && !isRuneStart(s[start]) {
		start++
	}
	return s[start:]
}

func isRuneStart(b byte) bool {
	return b&0xC0 != 0x80
}
