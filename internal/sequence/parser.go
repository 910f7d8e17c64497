package sequence

import "regexp"

// seqPattern splits a path into directory, basename, frame, and extension.
// Compiled once at init and read-only afterwards, so it is safe to share
// across concurrent callers.
//
// Grammar, greedy left-to-right over the whole string:
//
//	dir    longest prefix ending in a path separator
//	base   longest remaining prefix ending in '.' or '_'
//	frame  maximal digit run immediately after base
//	ext    the remainder: zero or more interior dotted groups (each at
//	       least one letter after an optional single leading numeral,
//	       e.g. ".1bar"), then an optional final dotted suffix
//
// The frame run must sit directly between a '.' or '_' and the extension.
// Version tokens like "v2" and resolution tags never qualify because they
// either precede a further '.'/'_' segment (swallowed by the greedy base)
// or are followed by a non-dot character (ext fails to match).
var seqPattern = regexp.MustCompile(
	`^(?P<dir>.*[/\\])?(?P<base>.*[._])?(?P<frame>[0-9]+)?(?P<ext>(?:\.[0-9]?[A-Za-z][A-Za-z0-9]*)*(?:\.[^.]*)?)$`)

// Parse classifies path into sequence components. ok is false when the
// grammar cannot partition the string at all (e.g. "notasequence.exr",
// where no digit run sits between a separator and the extension). A path
// can also match with an empty Frame; either way such files are excluded
// from grouping by [Aggregate].
func Parse(path string) (Components, bool) {
	m := seqPattern.FindStringSubmatch(path)
	if m == nil {
		return Components{}, false
	}
	return Components{
		Dir:   m[1],
		Base:  m[2],
		Frame: m[3],
		Ext:   m[4],
	}, true
}
