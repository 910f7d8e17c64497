// Package config holds runtime configuration: defaults, the optional YAML
// defaults file, CLI flag parsing, and validation.
package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// --- Enum types for validated string fields ---

// Action selects what to do with each discovered sequence.
type Action string

const (
	ActionList    Action = "list"    // Print sequences (default).
	ActionConvert Action = "convert" // Run the image converter per sequence.
	ActionEncode  Action = "encode"  // Run the video encoder per sequence.
	ActionView    Action = "view"    // Open each sequence in the viewer.
)

// Container is the encode output container format.
type Container string

const (
	ContainerMP4 Container = "mp4" // Default.
	ContainerMOV Container = "mov"
	ContainerMKV Container = "mkv"
)

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stdout is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// Config holds all runtime settings. It is populated by [DefaultConfig],
// optionally overlaid with a YAML defaults file, and then mutated by
// [ParseFlags] before being passed (by pointer) to packages that need it.
type Config struct {
	// Paths (set from the positional arg).
	InputDir string

	// Action and output shaping.
	Action    Action
	OutputDir string    // Directory override for rewritten output paths. Empty: alongside inputs.
	Container Container // Default: "mp4". Encode output extension.
	Extension string    // Convert output extension. Empty: keep original.
	Pad       string    // Placeholder style for output templates. Default: "%".
	Prefix    string    // Inserted before output filenames.
	Suffix    string    // Inserted before the output placeholder.
	Framerate string    // Default: "24". Passed to the encoder as-is.
	Frames    string    // Optional frame-range override, e.g. "1-50". Empty: use discovered frames.

	// Discovery.
	Include []string // Basename globs to keep; empty keeps everything.
	Exclude []string // Basename globs to drop.
	Recurse bool     // Default: true.

	// External tools.
	ConverterBin  string // Default: "oiiotool".
	EncoderBin    string // Default: "ffmpeg".
	ViewerBin     string // Default: "rv".
	ConverterArgs []string
	EncoderArgs   []string

	// Behavior flags.
	DryRun       bool
	SkipExisting bool // Default: true. Cleared by --force.
	ShowStats    bool // Default: true. Per-sequence gap and summary size stats.

	// Display and logging.
	Verbose   bool
	ColorMode ColorMode // Default: "auto".
	LogFile   string    // Optional log file path.
	CheckOnly bool      // Run --check diagnostics and exit.

	// Config file path (resolved during flag parsing).
	ConfigFile string
}

// DefaultConfig returns a Config with all defaults. Used as the base before
// the YAML file and [ParseFlags] apply overrides.
func DefaultConfig() Config {
	return Config{
		Action:       ActionList,
		Container:    ContainerMP4,
		Pad:          "%",
		Framerate:    "24",
		Recurse:      true,
		ConverterBin: "oiiotool",
		EncoderBin:   "ffmpeg",
		ViewerBin:    "rv",
		SkipExisting: true,
		ShowStats:    true,
		ColorMode:    ColorAuto,
	}
}

// NormalizeDirArg strips trailing slashes from a directory path.
// The filesystem root "/" is returned unchanged so we don't produce an empty string.
func NormalizeDirArg(path string) string {
	if path == "/" {
		return "/"
	}
	return strings.TrimRight(path, "/")
}

// Validate checks enum fields, the pad spelling, and the framerate. When
// not in CheckOnly mode it also requires the input directory.
func (c *Config) Validate() error {
	switch c.Action {
	case ActionList, ActionConvert, ActionEncode, ActionView:
		// valid
	default:
		return fmt.Errorf("invalid action %q", c.Action)
	}

	switch c.Container {
	case ContainerMP4, ContainerMOV, ContainerMKV:
		// valid
	default:
		return errors.New("invalid container (use 'mp4', 'mov' or 'mkv')")
	}

	switch c.ColorMode {
	case ColorAuto, ColorAlways, ColorNever:
		// valid
	default:
		return errors.New("invalid color mode (use 'auto', 'always' or 'never')")
	}

	// Pad is "%" (printf), "" (drop the token), or one literal character.
	if c.Pad != "" && c.Pad != "%" && utf8.RuneCountInString(c.Pad) != 1 {
		return fmt.Errorf("invalid pad %q (use '%%', a single character, or empty)", c.Pad)
	}

	if fr, err := strconv.ParseFloat(c.Framerate, 64); err != nil || fr <= 0 {
		return fmt.Errorf("invalid framerate %q (use a positive number, e.g. 24 or 23.976)", c.Framerate)
	}

	if c.CheckOnly {
		return nil
	}
	if c.InputDir == "" {
		return errors.New("need an input directory")
	}
	return nil
}
