package contextsplit

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_SegmentsAreTrimmedAndOrdered(t *testing.T) {
	text := "  first  " + Delimiter + "second\n" + Delimiter + "\tthird"

	s := New(text, 1)

	assert.Equal(t, []string{"first", "second", "third"}, s.Segments())
	for _, seg := range s.Segments() {
		assert.NotContains(t, seg, "-----SPLIT-----")
	}
}

func TestNew_SegmentCountIsDelimiterCountPlusOne(t *testing.T) {
	parts := []string{"a", "b", "c", "d", "e"}
	text := Join(parts)

	s := New(text, 2)

	assert.Len(t, s.Segments(), strings.Count(text, Delimiter)+1)
}

func TestNew_NegativeOverlapUsesDefault(t *testing.T) {
	s := New("a", -1)
	assert.Equal(t, DefaultOverlap, s.Overlap())
}

func TestLen_SubtractsOverlap(t *testing.T) {
	s := New(Join([]string{"a", "b", "c", "d", "e"}), 2)
	assert.Equal(t, 3, s.Len())
}

func TestLen_ShortContextHasOneWindow(t *testing.T) {
	s := New(Join([]string{"a", "b"}), 2)
	assert.Equal(t, 1, s.Len())

	item, err := s.Item(0)
	require.NoError(t, err)
	assert.Equal(t, "a\nb", item)
}

func TestItem_WindowSizes(t *testing.T) {
	segments := []string{"s0", "s1", "s2", "s3", "s4", "s5"}
	n := len(segments)

	for _, k := range []int{0, 1, 2, 3} {
		s := New(Join(segments), k)
		for i := 0; i < n-k; i++ {
			item, err := s.Item(i)
			require.NoError(t, err)

			got := strings.Split(item, "\n")
			assert.Len(t, got, min(k+1, n-i), "overlap=%d index=%d", k, i)
			assert.Equal(t, segments[i], got[0])
		}
	}
}

func TestItem_TruncatesAtEnd(t *testing.T) {
	s := New(Join([]string{"a", "b", "c"}), 2)

	item, err := s.Item(2)
	require.NoError(t, err)
	assert.Equal(t, "c", item)
}

func TestItem_OutOfRange(t *testing.T) {
	s := New(Join([]string{"a", "b"}), 0)

	_, err := s.Item(2)
	assert.Error(t, err)

	_, err = s.Item(-1)
	assert.Error(t, err)
}

func TestSpreadIndex(t *testing.T) {
	got := make([]int, 0, 10)
	for i := 0; i < 10; i++ {
		got = append(got, SpreadIndex(i, 10, 5))
	}

	assert.Equal(t, []int{0, 0, 1, 1, 2, 2, 3, 3, 4, 4}, got)
}

func TestSpreadIndex_NonDecreasingAndInRange(t *testing.T) {
	for _, tc := range []struct{ q, l int }{{10, 5}, {3, 7}, {7, 3}, {1, 1}, {25, 4}} {
		prev := 0
		for i := 0; i < tc.q; i++ {
			idx := SpreadIndex(i, tc.q, tc.l)
			assert.GreaterOrEqual(t, idx, prev)
			assert.Less(t, idx, tc.l)
			prev = idx
		}
	}
}

func TestSpreadIndex_ZeroTotal(t *testing.T) {
	assert.Equal(t, 0, SpreadIndex(3, 0, 5))
}
