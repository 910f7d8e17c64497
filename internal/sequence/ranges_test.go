package sequence

import "testing"

func TestCompress(t *testing.T) {
	tests := []struct {
		name   string
		frames []int
		want   string
	}{
		{"empty", nil, ""},
		{"single", []int{5}, "5"},
		{"contiguous", []int{1, 2, 3}, "1-3"},
		{"broken", []int{1, 2, 3, 4, 7, 9, 10}, "1-4,7,9-10"},
		{"all isolated", []int{1, 3, 5}, "1,3,5"},
		{"pair", []int{10, 11}, "10-11"},
		{"trailing isolated", []int{1, 2, 3, 9}, "1-3,9"},
		{"leading isolated", []int{1, 5, 6, 7}, "1,5-7"},
		{"large frames", []int{998, 999, 1000}, "998-1000"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Compress(tt.frames)
			if got != tt.want {
				t.Errorf("Compress(%v) = %q, want %q", tt.frames, got, tt.want)
			}
		})
	}
}

func TestExpandBounds(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    Bounds
		wantErr bool
	}{
		{"single value", "5", Bounds{First: 5, Last: 5, Count: 1}, false},
		{"unbroken range", "1-3", Bounds{First: 1, Last: 3, Count: 3}, false},
		{"hundreds", "100-250", Bounds{First: 100, Last: 250, Count: 151}, false},
		// For broken ranges the count is the known last-first+1
		// approximation: 10 here, though only 7 frames exist.
		{"broken range overcounts", "1-4,7,9-10", Bounds{First: 1, Last: 10, Count: 10}, false},
		{"comma only", "1,5", Bounds{First: 1, Last: 5, Count: 5}, false},
		{"empty", "", Bounds{}, true},
		{"garbage", "abc", Bounds{}, true},
		{"garbage tail", "1-x", Bounds{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExpandBounds(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ExpandBounds(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("ExpandBounds(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

// Compress and ExpandBounds agree on first/last for canonical encodings,
// and on count for single values and unbroken runs.
func TestRangeRoundTrip(t *testing.T) {
	tests := []struct {
		name   string
		frames []int
	}{
		{"single", []int{7}},
		{"run", []int{4, 5, 6, 7, 8}},
		{"broken", []int{1, 2, 3, 4, 7, 9, 10}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			enc := Compress(tt.frames)
			b, err := ExpandBounds(enc)
			if err != nil {
				t.Fatalf("ExpandBounds(%q): %v", enc, err)
			}
			if b.First != tt.frames[0] || b.Last != tt.frames[len(tt.frames)-1] {
				t.Errorf("bounds of %q = %d..%d, want %d..%d",
					enc, b.First, b.Last, tt.frames[0], tt.frames[len(tt.frames)-1])
			}
		})
	}
}
