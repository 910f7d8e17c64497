package pipeline

// RunStats tracks aggregate counters across a batch run.
type RunStats struct {
	Total      int // Sequences discovered.
	Current    int // 1-based index of the sequence being processed.
	Processed  int
	Skipped    int
	Failed     int
	TotalBytes int64 // Combined size of all scanned source files.
}
