package sequence

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
)

// RewriteOptions enumerates the recognized path-rewrite knobs. Every field
// is optional; the zero value of Extension/Directory means "keep original".
// Pad selects the placeholder spelling:
//
//	"%"        canonical printf style, %0Nd (the default from DefaultRewriteOptions)
//	""         drop the frame token and its leading separator entirely
//	any other  the character repeated N times, e.g. "#" -> "####"
type RewriteOptions struct {
	Pad       string
	Prefix    string // Inserted before the filename.
	Suffix    string // Inserted before the new placeholder.
	Extension string // Replacement extension; leading '.' added if missing.
	Directory string // Replacement directory; trailing separator added if missing.
}

// DefaultRewriteOptions returns options producing canonical %0Nd templates.
func DefaultRewriteOptions() RewriteOptions {
	return RewriteOptions{Pad: "%"}
}

// reFrameToken matches a frame token inside a filename: a digit run, a
// '#' run, or a printf %0Nd token, immediately after a '.' or '_' and
// immediately before a '.'.
var reFrameToken = regexp.MustCompile(`([._])([0-9]+|#+|%0[0-9]{1,2}d)\.`)

// Rewrite replaces the frame token in path according to opts. The split
// into directory/stem/extension is plain filesystem path decomposition,
// not the sequence grammar. When the filename carries no recognizable
// frame token the input is returned unchanged; callers that need to
// detect that case compare the result against the input.
func Rewrite(path string, opts RewriteOptions) string {
	dir, file := filepath.Split(path)
	ext := filepath.Ext(file)
	stem := strings.TrimSuffix(file, ext)

	if opts.Extension != "" {
		ext = opts.Extension
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
	}
	if opts.Directory != "" {
		dir = opts.Directory
		if !strings.HasSuffix(dir, "/") && !strings.HasSuffix(dir, `\`) {
			dir += string(filepath.Separator)
		}
	}

	name := stem + ext
	m := reFrameToken.FindStringSubmatchIndex(name)
	if m == nil {
		return path
	}

	sep := name[m[2]:m[3]]
	token := name[m[4]:m[5]]
	width := tokenWidth(token)

	var placeholder string
	switch opts.Pad {
	case "%":
		placeholder = fmt.Sprintf("%s%%0%dd", sep, width)
	case "":
		placeholder = ""
	default:
		placeholder = sep + strings.Repeat(opts.Pad, width)
	}

	// The matched region spans separator+token+trailing dot; the trailing
	// separator is normalized to a single '.'.
	rewritten := name[:m[0]] + opts.Suffix + placeholder + "." + name[m[1]:]
	return dir + opts.Prefix + rewritten
}

// tokenWidth returns the padding width of a matched frame token: N for
// %0Nd, otherwise the run length.
func tokenWidth(token string) int {
	if strings.HasPrefix(token, "%0") && strings.HasSuffix(token, "d") {
		n, _ := strconv.Atoi(token[2 : len(token)-1])
		return n
	}
	return len(token)
}
