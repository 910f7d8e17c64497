package config

// This file implements CLI flag parsing and help text.
// Flags are grouped into action, output, discovery, tools, behavior, display,
// and utility. Negated flags (e.g. --no-recurse) are applied after Parse so
// Config defaults hold unless set. The YAML defaults file is applied before
// Parse so flags always override it.

import (
	"flag"
	"fmt"
	"os"
	"strings"
)

// ParseFlags parses os.Args into cfg. On --help or --version it prints and
// exits. On error it returns non-nil (e.g. unknown flag, conflicting
// actions, missing positional arg).
func ParseFlags(cfg *Config, version string) error {
	// The defaults file must load before flag registration so flag
	// defaults reflect it; its path itself comes from a pre-scan.
	cfg.ConfigFile = configPathFromArgs(os.Args[1:])
	if cfg.ConfigFile == "" {
		cfg.ConfigFile = DefaultConfigPath()
	}
	if cfg.ConfigFile != "" {
		fc, err := LoadFile(cfg.ConfigFile)
		if err != nil {
			return err
		}
		fc.Apply(cfg)
	}

	fs := flag.NewFlagSet("frameseq", flag.ContinueOnError)
	fs.Usage = func() { printUsage(fs, version) }

	var negated negatedFlags

	defineActionFlags(fs, &negated)
	defineOutputFlags(fs, cfg)
	defineDiscoveryFlags(fs, cfg, &negated)
	defineToolFlags(fs, cfg)
	defineBehaviorFlags(fs, cfg, &negated)
	defineDisplayFlags(fs, cfg, &negated)
	defineUtilityFlags(fs, cfg, &negated)

	if err := fs.Parse(os.Args[1:]); err != nil {
		return err
	}

	if err := applyActionFlags(cfg, &negated); err != nil {
		return err
	}
	applyNegatedFlags(cfg, &negated)

	if negated.showHelp {
		printUsage(fs, version)
		os.Exit(0)
	}
	if negated.showVersion {
		fmt.Fprintln(os.Stdout, "frameseq v"+version)
		os.Exit(0)
	}

	return parsePositionalArgs(fs, cfg)
}

// negatedFlags holds boolean flags that are applied after Parse.
// These either invert a default (e.g. noRecurse -> Recurse=false), select
// the action, or trigger exit (showHelp, showVersion).
type negatedFlags struct {
	doConvert   bool
	doEncode    bool
	doView      bool
	noRecurse   bool
	noStats     bool
	force       bool
	forceColor  bool
	noColor     bool
	showVersion bool
	showHelp    bool
}

// defineActionFlags registers --convert, --encode, --view.
func defineActionFlags(fs *flag.FlagSet, n *negatedFlags) {
	fs.BoolVar(&n.doConvert, "convert", false, "Convert each sequence with the image converter")
	fs.BoolVar(&n.doEncode, "encode", false, "Encode each sequence to video")
	fs.BoolVar(&n.doView, "view", false, "Open each sequence in the viewer")
}

// defineOutputFlags registers -o/--output-dir, --container, --ext, --pad, --prefix, --suffix, -r/--framerate.
func defineOutputFlags(fs *flag.FlagSet, cfg *Config) {
	fs.StringVar(&cfg.OutputDir, "output-dir", cfg.OutputDir, "Directory for rewritten output paths")
	fs.StringVar(&cfg.OutputDir, "o", cfg.OutputDir, "Same as --output-dir")
	fs.Var(&containerValue{&cfg.Container}, "container", "Encode container: mp4 | mov | mkv")
	fs.StringVar(&cfg.Extension, "ext", cfg.Extension, "Convert output extension (default: keep original)")
	fs.StringVar(&cfg.Pad, "pad", cfg.Pad, "Placeholder style: % (printf), a character, or empty to drop")
	fs.StringVar(&cfg.Prefix, "prefix", cfg.Prefix, "Prefix for output filenames")
	fs.StringVar(&cfg.Suffix, "suffix", cfg.Suffix, "Suffix before the output placeholder")
	fs.StringVar(&cfg.Framerate, "framerate", cfg.Framerate, "Encode framerate")
	fs.StringVar(&cfg.Framerate, "r", cfg.Framerate, "Same as --framerate")
	fs.StringVar(&cfg.Frames, "frames", cfg.Frames, "Frame-range override passed to tools (e.g. 1-50)")
}

// defineDiscoveryFlags registers --include, --exclude, --no-recurse.
func defineDiscoveryFlags(fs *flag.FlagSet, cfg *Config, n *negatedFlags) {
	fs.Var((*globList)(&cfg.Include), "include", "Basename glob to include (repeatable)")
	fs.Var((*globList)(&cfg.Exclude), "exclude", "Basename glob to exclude (repeatable)")
	fs.BoolVar(&n.noRecurse, "no-recurse", false, "Scan only the top level of the input directory")
}

// defineToolFlags registers --converter, --encoder, --viewer and their extra-args flags.
func defineToolFlags(fs *flag.FlagSet, cfg *Config) {
	fs.StringVar(&cfg.ConverterBin, "converter", cfg.ConverterBin, "Image converter executable")
	fs.StringVar(&cfg.EncoderBin, "encoder", cfg.EncoderBin, "Video encoder executable")
	fs.StringVar(&cfg.ViewerBin, "viewer", cfg.ViewerBin, "Viewer executable")
	fs.Var(&argList{&cfg.ConverterArgs}, "converter-args", "Extra converter arguments (space-separated)")
	fs.Var(&argList{&cfg.EncoderArgs}, "encoder-args", "Extra encoder arguments (space-separated)")
}

// defineBehaviorFlags registers -f/--force, -d/--dry-run, --no-stats.
func defineBehaviorFlags(fs *flag.FlagSet, cfg *Config, n *negatedFlags) {
	fs.BoolVar(&cfg.DryRun, "dry-run", false, "Preview only; do not run external tools")
	fs.BoolVar(&cfg.DryRun, "d", false, "Same as --dry-run")
	fs.BoolVar(&n.force, "force", false, "Overwrite existing output files")
	fs.BoolVar(&n.force, "f", false, "Same as --force")
	fs.BoolVar(&n.noStats, "no-stats", false, "Hide per-sequence gap and size stats")
}

// defineDisplayFlags registers --color, --no-color, -v/--verbose.
func defineDisplayFlags(fs *flag.FlagSet, cfg *Config, n *negatedFlags) {
	fs.BoolVar(&n.forceColor, "color", false, "Force colored logs")
	fs.BoolVar(&n.noColor, "no-color", false, "Disable colored logs")
	fs.BoolVar(&cfg.Verbose, "verbose", false, "Verbose output (tool stderr passthrough)")
	fs.BoolVar(&cfg.Verbose, "v", false, "Same as --verbose")
}

// defineUtilityFlags registers --config, --log, --check, --version, --help.
func defineUtilityFlags(fs *flag.FlagSet, cfg *Config, n *negatedFlags) {
	// --config is consumed by the pre-scan; registered here so Parse accepts it.
	fs.String("config", "", "YAML defaults file (default: ~/.config/frameseq/config.yaml)")
	fs.StringVar(&cfg.LogFile, "log", "", "Append logs to file")
	fs.StringVar(&cfg.LogFile, "l", "", "Same as --log")
	fs.BoolVar(&cfg.CheckOnly, "check", false, "Run tool diagnostics and exit")
	fs.BoolVar(&cfg.CheckOnly, "c", false, "Same as --check")
	fs.BoolVar(&n.showVersion, "version", false, "Print version and exit")
	fs.BoolVar(&n.showVersion, "V", false, "Same as --version")
	fs.BoolVar(&n.showHelp, "help", false, "Show this help and exit")
	fs.BoolVar(&n.showHelp, "h", false, "Same as --help")
}

// applyActionFlags resolves --convert/--encode/--view into cfg.Action and
// rejects combinations.
func applyActionFlags(cfg *Config, n *negatedFlags) error {
	set := 0
	if n.doConvert {
		cfg.Action = ActionConvert
		set++
	}
	if n.doEncode {
		cfg.Action = ActionEncode
		set++
	}
	if n.doView {
		cfg.Action = ActionView
		set++
	}
	if set > 1 {
		return fmt.Errorf("choose at most one of --convert, --encode, --view")
	}
	return nil
}

// applyNegatedFlags copies negated flag values into cfg (e.g. noRecurse -> Recurse=false).
func applyNegatedFlags(cfg *Config, n *negatedFlags) {
	if n.noRecurse {
		cfg.Recurse = false
	}
	if n.noStats {
		cfg.ShowStats = false
	}
	if n.force {
		cfg.SkipExisting = false
	}
	if n.noColor {
		cfg.ColorMode = ColorNever
	} else if n.forceColor {
		cfg.ColorMode = ColorAlways
	}
}

// parsePositionalArgs sets InputDir from the single positional arg when not in CheckOnly mode.
func parsePositionalArgs(fs *flag.FlagSet, cfg *Config) error {
	args := fs.Args()
	if cfg.CheckOnly {
		return nil
	}
	if len(args) != 1 {
		return fmt.Errorf("need exactly one input directory")
	}
	cfg.InputDir = NormalizeDirArg(args[0])
	return nil
}

// configPathFromArgs pre-scans raw args for --config so the defaults file
// can load before the flag set parses.
func configPathFromArgs(args []string) string {
	for i, a := range args {
		trimmed := strings.TrimLeft(a, "-")
		if strings.HasPrefix(trimmed, "config=") {
			return strings.TrimPrefix(trimmed, "config=")
		}
		if trimmed == "config" && i+1 < len(args) {
			return args[i+1]
		}
	}
	return ""
}

// printUsage writes the help text to stderr. Column-aligned for readability.
func printUsage(fs *flag.FlagSet, version string) {
	const col1 = 30 // width of "  -x, --long-name <arg>  "
	lines := []struct {
		flags string
		desc  string
	}{
		{"", "frameseq v" + version + " — frame-sequence discovery and dispatch"},
		{"", ""},
		{"  frameseq [OPTIONS] <input_dir>", ""},
		{"", ""},
		{"Actions (default: list sequences)", ""},
		{"  --convert", "Convert each sequence with the image converter"},
		{"  --encode", "Encode each sequence to video"},
		{"  --view", "Open each sequence in the viewer"},
		{"", ""},
		{"Output", ""},
		{"  -o, --output-dir <dir>", "Directory for output paths"},
		{"  --container <mp4|mov|mkv>", "Encode container (default: mp4)"},
		{"  --ext <ext>", "Convert output extension (default: keep)"},
		{"  --pad <style>", "Placeholder: % (printf), a char, or empty"},
		{"  --prefix <s>", "Prefix for output filenames"},
		{"  --suffix <s>", "Suffix before the output placeholder"},
		{"  -r, --framerate <fps>", "Encode framerate (default: 24)"},
		{"  --frames <range>", "Frame-range override (e.g. 1-50)"},
		{"", ""},
		{"Discovery", ""},
		{"  --include <glob>", "Basename glob to include (repeatable)"},
		{"  --exclude <glob>", "Basename glob to exclude (repeatable)"},
		{"  --no-recurse", "Scan only the top level"},
		{"", ""},
		{"External tools", ""},
		{"  --converter <bin>", "Image converter (default: oiiotool)"},
		{"  --encoder <bin>", "Video encoder (default: ffmpeg)"},
		{"  --viewer <bin>", "Viewer (default: rv)"},
		{"  --converter-args <args>", "Extra converter arguments"},
		{"  --encoder-args <args>", "Extra encoder arguments"},
		{"", ""},
		{"Behavior", ""},
		{"  -f, --force", "Overwrite existing output files"},
		{"  -d, --dry-run", "Preview only; do not run tools"},
		{"  --no-stats", "Hide per-sequence stats"},
		{"", ""},
		{"Display", ""},
		{"  --color", "Force colored logs"},
		{"  --no-color", "Disable colored logs"},
		{"  -v, --verbose", "Verbose output"},
		{"", ""},
		{"Utility", ""},
		{"  --config <path>", "YAML defaults file"},
		{"  -l, --log <path>", "Append logs to file"},
		{"  -c, --check", "Tool diagnostics (converter, encoder, viewer)"},
		{"  -V, --version", "Print version and exit"},
		{"  -h, --help", "Show this help and exit"},
	}

	for _, l := range lines {
		if l.flags == "" && l.desc == "" {
			fmt.Fprintln(os.Stderr)
			continue
		}
		if l.desc == "" {
			fmt.Fprintln(os.Stderr, l.flags)
			continue
		}
		if l.flags == "" {
			fmt.Fprintln(os.Stderr, l.desc)
			continue
		}
		padding := col1 - len(l.flags)
		if padding < 1 {
			padding = 1
		}
		fmt.Fprintf(os.Stderr, "%s%*s%s\n", l.flags, padding, "", l.desc)
	}
}

// flag.Value adapters so enum and list fields work with flag.Var.

type containerValue struct{ p *Container }

func (c *containerValue) String() string {
	if c.p == nil {
		return ""
	}
	return string(*c.p)
}

func (c *containerValue) Set(s string) error {
	switch strings.ToLower(s) {
	case "mp4":
		*c.p = ContainerMP4
	case "mov":
		*c.p = ContainerMOV
	case "mkv":
		*c.p = ContainerMKV
	default:
		return fmt.Errorf("invalid container %q (use 'mp4', 'mov' or 'mkv')", s)
	}
	return nil
}

// globList accumulates repeatable glob flags.
type globList []string

func (g *globList) String() string { return strings.Join(*g, ",") }

func (g *globList) Set(s string) error {
	*g = append(*g, s)
	return nil
}

// argList splits a space-separated argument string.
type argList struct{ p *[]string }

func (a *argList) String() string {
	if a.p == nil {
		return ""
	}
	return strings.Join(*a.p, " ")
}

func (a *argList) Set(s string) error {
	*a.p = strings.Fields(s)
	return nil
}
