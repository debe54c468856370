// Package contextsplit cuts a combined block of informations into segments and
// serves overlapping windows of consecutive segments.
package contextsplit

import (
	"fmt"
	"strings"
)

const (
	// Delimiter separates informations inside a combined context.
	Delimiter = "\n-----SPLIT-----\n"

	DefaultOverlap = 2
)

// Splitter is immutable once built. Segment order follows the source string.
type Splitter struct {
	segments []string
	overlap  int
}

// New splits text on Delimiter and trims every segment. A negative overlap
// falls back to DefaultOverlap.
func New(text string, overlap int) *Splitter {
	if overlap < 0 {
		overlap = DefaultOverlap
	}

	parts := strings.Split(text, Delimiter)
	segments := make([]string, len(parts))
	for i, p := range parts {
		segments[i] = strings.TrimSpace(p)
	}

	return &Splitter{
		segments: segments,
		overlap:  overlap,
	}
}

// Join builds a combined context out of separate informations.
func Join(informations []string) string {
	return strings.Join(informations, Delimiter)
}

// Segments returns a copy of the trimmed segments.
func (s *Splitter) Segments() []string {
	out := make([]string, len(s.segments))
	copy(out, s.segments)
	return out
}

func (s *Splitter) Overlap() int {
	return s.overlap
}

// Len is the number of window start positions: segment count minus overlap.
// A context shorter than one full window still yields a single window.
func (s *Splitter) Len() int {
	n := len(s.segments) - s.overlap
	if n < 1 {
		return 1
	}
	return n
}

// Item returns segments [i, i+overlap] joined by newline. Near the end the
// window is truncated to the remaining segments.
func (s *Splitter) Item(i int) (string, error) {
	if i < 0 || i >= len(s.segments) {
		return "", fmt.Errorf("window index %d out of range [0, %d)", i, len(s.segments))
	}

	end := min(i+s.overlap+1, len(s.segments))
	return strings.Join(s.segments[i:end], "\n"), nil
}

// SpreadIndex maps question i of total onto a window index so that questions
// are spread evenly over length windows: floor(i*length/total).
func SpreadIndex(i, total, length int) int {
	if total <= 0 {
		return 0
	}
	return (i * length) / total
}
