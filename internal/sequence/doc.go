// Package sequence is the core engine: it classifies file paths into
// sequence components, groups files into numbered sequences, compresses
// frame lists into compact range strings, and rewrites frame tokens in
// path templates.
//
// The package is pure computation over strings. It never touches the
// filesystem; callers hand it a flat list of candidate paths (see the
// scan package) and receive [Descriptor] values in return.
package sequence
