// Package pipeline orchestrates file discovery, sequence aggregation,
// per-sequence actions, and batch summary reporting.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/backmassage/frameseq/internal/config"
	"github.com/backmassage/frameseq/internal/display"
	"github.com/backmassage/frameseq/internal/logging"
	"github.com/backmassage/frameseq/internal/scan"
	"github.com/backmassage/frameseq/internal/sequence"
	"github.com/backmassage/frameseq/internal/tools"
)

// Run is the top-level batch entry point. It discovers files, aggregates
// them into sequences, applies the configured action to each, and returns
// aggregate stats.
func Run(ctx context.Context, cfg *config.Config, log *logging.Logger) RunStats {
	var stats RunStats

	files, err := scan.Discover(cfg.InputDir, cfg.Include, cfg.Exclude, cfg.Recurse)
	if err != nil {
		log.Error("File discovery failed: %v", err)
		stats.Failed++
		return stats
	}

	seqs := sequence.Aggregate(files)
	if wd, err := os.Getwd(); err == nil {
		for i := range seqs {
			seqs[i].Path = sequence.TrimDirPrefix(seqs[i].Path, wd)
		}
	}

	stats.Total = len(seqs)
	if cfg.ShowStats {
		stats.TotalBytes = sumSizes(files)
	}

	logBatchHeader(cfg, log, &stats, len(files))

	for i, d := range seqs {
		stats.Current = i + 1

		if ctx.Err() != nil {
			log.Warn("Interrupted")
			break
		}

		processSequence(ctx, cfg, log, d, &stats)
	}

	logSummary(cfg, log, &stats)
	return stats
}

// processSequence applies the configured action to one sequence.
func processSequence(
	ctx context.Context,
	cfg *config.Config,
	log *logging.Logger,
	d sequence.Descriptor,
	stats *RunStats,
) {
	// A --frames override replaces the discovered range wholesale. Count
	// carries the codec's last-first+1 approximation for broken ranges.
	if cfg.Frames != "" && cfg.Action != config.ActionList {
		b, err := sequence.ExpandBounds(cfg.Frames)
		if err != nil {
			log.Error("Invalid --frames override: %v", err)
			stats.Failed++
			return
		}
		d.Frames = cfg.Frames
		d.First, d.Last, d.Count = b.First, b.Last, b.Count
	}

	switch cfg.Action {
	case config.ActionList:
		note := ""
		if cfg.ShowStats {
			note = display.FormatMissing(d.First, d.Last, d.Count)
		}
		log.Seq("%s  %s  (%s%s)", d.Path, d.Frames, display.FormatFrameCount(d.Count), note)
		stats.Processed++

	case config.ActionView:
		log.Info("[%d/%d] Viewing: %s", stats.Current, stats.Total, d.Path)
		if cfg.DryRun {
			log.Success("[DRY] Would view")
			stats.Processed++
			return
		}
		if err := tools.Execute(ctx, cfg.ViewerBin, tools.BuildViewArgs(d), cfg.Verbose); err != nil {
			logToolFailure(log, err)
			stats.Failed++
			return
		}
		stats.Processed++

	case config.ActionConvert:
		out := sequence.WithOutput(d, convertOptions(cfg))
		runTool(ctx, cfg, log, d, out, stats, "Converting", cfg.ConverterBin,
			tools.BuildConvertArgs(out, cfg.ConverterArgs))

	case config.ActionEncode:
		out := sequence.WithOutput(d, encodeOptions(cfg))
		runTool(ctx, cfg, log, d, out, stats, "Encoding", cfg.EncoderBin,
			tools.BuildEncodeArgs(out, cfg.Framerate, cfg.EncoderArgs))
	}
}

// runTool handles the shared convert/encode flow: skip checks, output
// directory creation, dry-run preview, and one blocking tool invocation.
func runTool(
	ctx context.Context,
	cfg *config.Config,
	log *logging.Logger,
	d sequence.Descriptor,
	out sequence.DescriptorWithOutput,
	stats *RunStats,
	label, bin string,
	args []string,
) {
	log.Info("[%d/%d] %s: %s", stats.Current, stats.Total, label, d.Path)

	if out.Output == d.Path {
		log.Warn("Skip (output equals input): %s", d.Path)
		stats.Skipped++
		return
	}
	log.Info("  -> %s", out.Output)

	if cfg.SkipExisting && outputExists(out.Output, d.First) {
		log.Warn("Skip (exists): %s", out.Output)
		stats.Skipped++
		return
	}

	if dir := filepath.Dir(out.Output); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			log.Error("Cannot create output directory: %v", err)
			stats.Failed++
			return
		}
	}

	if cfg.DryRun {
		log.Success("[DRY] Would run %s", bin)
		stats.Processed++
		return
	}

	start := time.Now()
	if err := tools.Execute(ctx, bin, args, cfg.Verbose); err != nil {
		logToolFailure(log, err)
		// Encodes leave a concrete partial file behind; templates don't stat.
		if !strings.Contains(out.Output, "%0") {
			os.Remove(out.Output)
		}
		stats.Failed++
		return
	}

	log.Success("Done in %ds", int(time.Since(start).Seconds()))
	stats.Processed++
}

// convertOptions maps config to the converter's output-path rewrite.
func convertOptions(cfg *config.Config) sequence.RewriteOptions {
	return sequence.RewriteOptions{
		Pad:       cfg.Pad,
		Prefix:    cfg.Prefix,
		Suffix:    cfg.Suffix,
		Extension: cfg.Extension,
		Directory: cfg.OutputDir,
	}
}

// encodeOptions maps config to the encoder's output-path rewrite. The frame
// token is dropped: the output is a single video file named by container.
func encodeOptions(cfg *config.Config) sequence.RewriteOptions {
	return sequence.RewriteOptions{
		Pad:       "",
		Prefix:    cfg.Prefix,
		Suffix:    cfg.Suffix,
		Extension: string(cfg.Container),
		Directory: cfg.OutputDir,
	}
}

// outputExists reports whether the output already exists on disk. Printf
// templates are expanded with the first frame; other placeholder spellings
// cannot be expanded and are treated as absent.
func outputExists(path string, first int) bool {
	if strings.Contains(path, "%0") {
		path = fmt.Sprintf(path, first)
	} else if strings.Contains(path, "#") {
		return false
	}
	_, err := os.Stat(path)
	return err == nil
}

// logToolFailure logs a failed tool invocation with a stderr tail.
func logToolFailure(log *logging.Logger, err error) {
	log.Error("%v", err)
	var te *tools.ToolError
	if !errors.As(err, &te) {
		return
	}
	tail := te.StderrTail(20)
	if len(tail) == 0 {
		return
	}
	log.Error("Last %s output:", te.Tool)
	for _, l := range tail {
		log.Error("  %s", l)
	}
}

// sumSizes stats every scanned file and totals the sizes. Missing files
// (raced deletions) count as zero.
func sumSizes(files []string) int64 {
	var total int64
	for _, f := range files {
		if fi, err := os.Stat(f); err == nil {
			total += fi.Size()
		}
	}
	return total
}

// --- Logging helpers ---

func logBatchHeader(cfg *config.Config, log *logging.Logger, stats *RunStats, fileCount int) {
	log.Info("Found %d sequences in %d files", stats.Total, fileCount)

	switch cfg.Action {
	case config.ActionConvert:
		log.Info("Action: convert via %s", cfg.ConverterBin)
		if cfg.Extension != "" {
			log.Info("Output extension: %s", cfg.Extension)
		}
	case config.ActionEncode:
		log.Info("Action: encode via %s (%s, %s fps)", cfg.EncoderBin, cfg.Container, cfg.Framerate)
	case config.ActionView:
		log.Info("Action: view via %s", cfg.ViewerBin)
	}
	if cfg.Action == config.ActionConvert || cfg.Action == config.ActionEncode {
		if cfg.OutputDir != "" {
			log.Info("Out: %s", cfg.OutputDir)
		}
		if !cfg.SkipExisting {
			log.Info("Overwrite: existing outputs will be replaced")
		}
	}
	if cfg.DryRun {
		log.Warn("DRY RUN — no external tools will run")
	}
	fmt.Println()
}

func logSummary(cfg *config.Config, log *logging.Logger, stats *RunStats) {
	fmt.Println()
	log.Info("==============================")
	log.Info("Done: %d processed, %d skipped, %d failed", stats.Processed, stats.Skipped, stats.Failed)
	if cfg.ShowStats && stats.TotalBytes > 0 {
		log.Info("  Total source size: %s", display.FormatBytes(stats.TotalBytes))
	}
}
