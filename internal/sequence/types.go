package sequence

// Components holds the lossless split of a single file path. For every
// successful parse, Dir+Base+Frame+Ext reconstructs the input exactly.
type Components struct {
	Dir   string // Directory prefix including trailing separator; may be empty.
	Base  string // Portion before the frame number, ending in '.' or '_'; may be empty.
	Frame string // Digit run; empty when the file carries no frame number.
	Ext   string // Everything after the frame number, starting with '.'; may be empty.
}

// Descriptor is the durable result of aggregation: one numbered sequence
// collapsed into a template path plus frame-range metadata.
type Descriptor struct {
	Path   string // Template path with a canonical %0Nd placeholder.
	Frames string // Compact range encoding, e.g. "1-4,7,9-10".
	First  int    // Numerically smallest frame present.
	Last   int    // Numerically largest frame present.
	Count  int    // True member count (not last-first+1 for broken ranges).
}

// DescriptorWithOutput extends Descriptor with a rewritten output path,
// computed by [WithOutput]. External tool wrappers read Output when
// constructing command lines; the base descriptor is untouched.
type DescriptorWithOutput struct {
	Descriptor
	Output string
}

// WithOutput derives the richer variant by rewriting the descriptor's
// template path with opts. The descriptor itself is copied, not mutated.
func WithOutput(d Descriptor, opts RewriteOptions) DescriptorWithOutput {
	return DescriptorWithOutput{
		Descriptor: d,
		Output:     Rewrite(d.Path, opts),
	}
}
