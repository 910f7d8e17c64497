package tools

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/backmassage/frameseq/internal/sequence"
)

func seqFixture() sequence.DescriptorWithOutput {
	return sequence.DescriptorWithOutput{
		Descriptor: sequence.Descriptor{
			Path:   "renders/shot.%04d.exr",
			Frames: "1-4,7,9-10",
			First:  1,
			Last:   10,
			Count:  7,
		},
		Output: "out/shot.%04d.jpg",
	}
}

func TestBuildConvertArgs(t *testing.T) {
	got := BuildConvertArgs(seqFixture(), []string{"--compression", "zip"})
	want := []string{
		"renders/shot.%04d.exr",
		"--frames", "1-4,7,9-10",
		"--compression", "zip",
		"-v",
		"-o", "out/shot.%04d.jpg",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("BuildConvertArgs() = %v, want %v", got, want)
	}
}

func TestBuildConvertArgs_NoExtra(t *testing.T) {
	got := BuildConvertArgs(seqFixture(), nil)
	want := []string{
		"renders/shot.%04d.exr",
		"--frames", "1-4,7,9-10",
		"-v",
		"-o", "out/shot.%04d.jpg",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("BuildConvertArgs() = %v, want %v", got, want)
	}
}

func TestBuildEncodeArgs(t *testing.T) {
	seq := seqFixture()
	seq.Output = "out/shot.mp4"
	got := BuildEncodeArgs(seq, "23.976", []string{"-pix_fmt", "yuv420p"})
	want := []string{
		"-y",
		"-r", "23.976",
		"-start_number", "1",
		"-i", "renders/shot.%04d.exr",
		"-pix_fmt", "yuv420p",
		"out/shot.mp4",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("BuildEncodeArgs() = %v, want %v", got, want)
	}
}

func TestBuildViewArgs(t *testing.T) {
	got := BuildViewArgs(seqFixture().Descriptor)
	want := []string{"renders/shot.%04d.exr"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("BuildViewArgs() = %v, want %v", got, want)
	}
}

func TestExecute_MissingTool(t *testing.T) {
	err := Execute(context.Background(), "frameseq-no-such-tool", []string{"x"}, false)
	if err == nil {
		t.Fatal("Execute with missing tool returned nil error")
	}
	var te *ToolError
	if !errors.As(err, &te) {
		t.Fatalf("error is %T, want *ToolError", err)
	}
	if te.Tool != "frameseq-no-such-tool" {
		t.Errorf("Tool = %q", te.Tool)
	}
}

func TestExecute_NonZeroExit(t *testing.T) {
	err := Execute(context.Background(), "false", nil, false)
	var te *ToolError
	if !errors.As(err, &te) {
		t.Fatalf("error = %v, want *ToolError", err)
	}
}

func TestToolError_StderrTail(t *testing.T) {
	te := &ToolError{Tool: "ffmpeg", Stderr: "a\nb\nc\nd\n"}
	got := te.StderrTail(2)
	if len(got) != 2 || got[0] != "c" || got[1] != "d" {
		t.Errorf("StderrTail(2) = %v", got)
	}
	empty := &ToolError{Tool: "ffmpeg"}
	if tail := empty.StderrTail(2); tail != nil {
		t.Errorf("StderrTail on empty stderr = %v, want nil", tail)
	}
}
