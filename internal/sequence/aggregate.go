package sequence

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Aggregate groups a flat list of file paths into sequences. Each path is
// parsed with [Parse]; paths without a frame number are dropped. Files
// share a sequence iff they produce an identical template key
// (dir + base + %0Nd + ext), so mixed digit-run widths within one nominal
// sequence stay separate. Frame order within a group follows input order;
// callers pass paths pre-sorted by full path string, which with fixed-width
// zero padding is also ascending numeric order.
//
// Descriptors are returned in ascending template-path order. A group of
// one file is still a sequence; there is no minimum-count threshold.
func Aggregate(paths []string) []Descriptor {
	groups := make(map[string][]string)
	var keys []string

	for _, p := range paths {
		c, ok := Parse(p)
		if !ok || c.Frame == "" {
			continue
		}
		key := c.Dir + c.Base + fmt.Sprintf("%%0%dd", len(c.Frame)) + c.Ext
		if _, seen := groups[key]; !seen {
			keys = append(keys, key)
		}
		groups[key] = append(groups[key], c.Frame)
	}
	sort.Strings(keys)

	out := make([]Descriptor, 0, len(keys))
	for _, key := range keys {
		digits := groups[key]
		frames := make([]int, len(digits))
		for i, d := range digits {
			frames[i], _ = strconv.Atoi(d)
		}
		out = append(out, Descriptor{
			Path:   key,
			Frames: Compress(frames),
			First:  frames[0],
			Last:   frames[len(frames)-1],
			Count:  len(frames),
		})
	}
	return out
}

// TrimDirPrefix strips dir (the caller's working directory) from path for
// display. dir is matched with and without a trailing separator; a path
// outside dir is returned unchanged.
func TrimDirPrefix(path, dir string) string {
	if dir == "" {
		return path
	}
	if !strings.HasSuffix(dir, "/") && !strings.HasSuffix(dir, `\`) {
		dir += "/"
	}
	return strings.TrimPrefix(path, dir)
}
