package sequence

import (
	"fmt"
	"strconv"
	"strings"
)

// Compress encodes an ascending list of frame numbers as a comma-separated
// list of single values and A-B runs, e.g. [1 2 3 4 7 9 10] -> "1-4,7,9-10".
// Sub-ranges are emitted strictly in input order; callers must pre-sort
// ascending (and deduplicate) for canonical output.
func Compress(frames []int) string {
	if len(frames) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(strconv.Itoa(frames[0]))

	last := frames[0]
	continuing := false
	for _, f := range frames[1:] {
		if f == last+1 {
			continuing = true
		} else {
			if continuing {
				b.WriteByte('-')
				b.WriteString(strconv.Itoa(last))
			}
			b.WriteByte(',')
			b.WriteString(strconv.Itoa(f))
			continuing = false
		}
		last = f
	}
	if continuing {
		b.WriteByte('-')
		b.WriteString(strconv.Itoa(last))
	}
	return b.String()
}

// Bounds is the decoded form of a range string.
type Bounds struct {
	First int
	Last  int
	Count int
}

// ExpandBounds parses a range string back into first/last/count. A string
// with no '-' or ',' delimiter is a single frame (first == last, count 1).
// Otherwise first comes from the leading token, last from the trailing one,
// and count is last-first+1.
//
// Count is exact only for a single value or one unbroken run. For broken
// ranges like "1-4,7,9-10" it overcounts (10 instead of the true 7); the
// aggregator never relies on it because it counts the real member list.
func ExpandBounds(s string) (Bounds, error) {
	tokens := strings.FieldsFunc(s, func(r rune) bool {
		return r == '-' || r == ','
	})
	if len(tokens) == 0 {
		return Bounds{}, fmt.Errorf("empty frame range %q", s)
	}

	first, err := strconv.Atoi(tokens[0])
	if err != nil {
		return Bounds{}, fmt.Errorf("invalid frame range %q: %w", s, err)
	}
	if len(tokens) == 1 {
		return Bounds{First: first, Last: first, Count: 1}, nil
	}

	last, err := strconv.Atoi(tokens[len(tokens)-1])
	if err != nil {
		return Bounds{}, fmt.Errorf("invalid frame range %q: %w", s, err)
	}
	return Bounds{First: first, Last: last, Count: last - first + 1}, nil
}
