// Package tools builds argument arrays for the external converter, encoder,
// and viewer executables and runs them as blocking subprocesses. The
// argument shapes are fixed for compatibility with existing pipeline
// wrappers; the builders are pure functions so they are testable without
// spawning anything.
package tools
