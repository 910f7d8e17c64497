package sequence

import (
	"reflect"
	"testing"
)

func TestAggregate_SingleSequence(t *testing.T) {
	paths := []string{
		"dir/base_0001.exr",
		"dir/base_0002.exr",
		"dir/base_0003.exr",
	}
	got := Aggregate(paths)
	want := []Descriptor{
		{Path: "dir/base_%04d.exr", Frames: "1-3", First: 1, Last: 3, Count: 3},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Aggregate() = %+v, want %+v", got, want)
	}
}

func TestAggregate_BrokenRange(t *testing.T) {
	paths := []string{
		"shot.0001.exr",
		"shot.0002.exr",
		"shot.0003.exr",
		"shot.0004.exr",
		"shot.0007.exr",
		"shot.0009.exr",
		"shot.0010.exr",
	}
	got := Aggregate(paths)
	if len(got) != 1 {
		t.Fatalf("got %d descriptors, want 1", len(got))
	}
	d := got[0]
	if d.Frames != "1-4,7,9-10" {
		t.Errorf("Frames = %q, want %q", d.Frames, "1-4,7,9-10")
	}
	if d.First != 1 || d.Last != 10 || d.Count != 7 {
		t.Errorf("bounds = %d..%d count %d, want 1..10 count 7", d.First, d.Last, d.Count)
	}
}

func TestAggregate_WidthsNeverMerge(t *testing.T) {
	paths := []string{
		"dir/base_01.exr",
		"dir/base_1.exr",
		"dir/base_2.exr",
	}
	got := Aggregate(paths)
	if len(got) != 2 {
		t.Fatalf("got %d descriptors, want 2: %+v", len(got), got)
	}
	// Ascending template-path order: %01d sorts before %02d.
	if got[0].Path != "dir/base_%01d.exr" || got[0].Count != 2 {
		t.Errorf("first descriptor = %+v", got[0])
	}
	if got[1].Path != "dir/base_%02d.exr" || got[1].Count != 1 {
		t.Errorf("second descriptor = %+v", got[1])
	}
}

func TestAggregate_DropsFrameless(t *testing.T) {
	paths := []string{
		"dir/base_0001.exr",
		"dir/notasequence.exr",
		"dir/readme.txt",
		"dir/base_0002.exr",
	}
	got := Aggregate(paths)
	if len(got) != 1 {
		t.Fatalf("got %d descriptors, want 1: %+v", len(got), got)
	}
	if got[0].Path != "dir/base_%04d.exr" || got[0].Count != 2 {
		t.Errorf("descriptor = %+v", got[0])
	}
}

func TestAggregate_SingleMember(t *testing.T) {
	got := Aggregate([]string{"lonely_0042.png"})
	want := []Descriptor{
		{Path: "lonely_%04d.png", Frames: "42", First: 42, Last: 42, Count: 1},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Aggregate() = %+v, want %+v", got, want)
	}
}

func TestAggregate_OrderedByTemplatePath(t *testing.T) {
	paths := []string{
		"b/plate_0001.exr",
		"a/plate_0001.exr",
		"a/alpha_0001.exr",
	}
	got := Aggregate(paths)
	wantOrder := []string{"a/alpha_%04d.exr", "a/plate_%04d.exr", "b/plate_%04d.exr"}
	if len(got) != len(wantOrder) {
		t.Fatalf("got %d descriptors, want %d", len(got), len(wantOrder))
	}
	for i, d := range got {
		if d.Path != wantOrder[i] {
			t.Errorf("descriptor[%d].Path = %q, want %q", i, d.Path, wantOrder[i])
		}
	}
}

func TestTrimDirPrefix(t *testing.T) {
	tests := []struct {
		name string
		path string
		dir  string
		want string
	}{
		{"inside dir", "/work/renders/shot_%04d.exr", "/work", "renders/shot_%04d.exr"},
		{"dir with trailing slash", "/work/renders/shot_%04d.exr", "/work/", "renders/shot_%04d.exr"},
		{"outside dir", "/other/shot_%04d.exr", "/work", "/other/shot_%04d.exr"},
		{"empty dir", "renders/shot_%04d.exr", "", "renders/shot_%04d.exr"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TrimDirPrefix(tt.path, tt.dir)
			if got != tt.want {
				t.Errorf("TrimDirPrefix(%q, %q) = %q, want %q", tt.path, tt.dir, got, tt.want)
			}
		})
	}
}
