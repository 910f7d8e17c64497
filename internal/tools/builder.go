package tools

import (
	"strconv"

	"github.com/backmassage/frameseq/internal/sequence"
)

// BuildConvertArgs returns the converter argument array for one sequence:
//
//	[path, "--frames", frames, extra..., "-v", "-o", output]
//
// This shape is fixed; downstream wrappers depend on it.
func BuildConvertArgs(seq sequence.DescriptorWithOutput, extra []string) []string {
	args := []string{seq.Path, "--frames", seq.Frames}
	args = append(args, extra...)
	return append(args, "-v", "-o", seq.Output)
}

// BuildEncodeArgs returns the encoder argument array for one sequence:
//
//	["-y", "-r", framerate, "-start_number", first, "-i", path, extra..., output]
//
// The template path carries a %0Nd placeholder the encoder expands itself,
// starting at the sequence's first frame.
func BuildEncodeArgs(seq sequence.DescriptorWithOutput, framerate string, extra []string) []string {
	args := []string{
		"-y",
		"-r", framerate,
		"-start_number", strconv.Itoa(seq.First),
		"-i", seq.Path,
	}
	args = append(args, extra...)
	return append(args, seq.Output)
}

// BuildViewArgs returns the viewer argument array: just the template path.
func BuildViewArgs(d sequence.Descriptor) []string {
	return []string{d.Path}
}
