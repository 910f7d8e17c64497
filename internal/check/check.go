// Package check provides tool diagnostics (--check mode) and pre-run
// dependency validation (CheckDeps) for the configured converter, encoder,
// and viewer executables.
package check

import (
	"errors"
	"os/exec"
	"strings"

	"github.com/backmassage/frameseq/internal/config"
)

// Sentinel errors returned by CheckDeps when a required tool is missing.
var (
	ErrConverterNotFound = errors.New("image converter not found on PATH")
	ErrEncoderNotFound   = errors.New("video encoder not found on PATH")
	ErrViewerNotFound    = errors.New("viewer not found on PATH")
)

// Logger is the minimal logging interface needed by RunCheck.
// Defined here (rather than importing the logging package) so that check
// remains dependency-light and testable with a mock logger.
type Logger interface {
	Info(string, ...interface{})
	Success(string, ...interface{})
	Warn(string, ...interface{})
	Error(string, ...interface{})
	Debug(bool, string, ...interface{})
}

// RunCheck runs the interactive --check flow: prints availability and
// version of each configured external tool. Informational only; it does
// not stop on failure.
func RunCheck(cfg *config.Config, log Logger) {
	log.Info("=== Tool Check ===")

	checkTool(log, "Converter", cfg.ConverterBin, "--version")
	checkTool(log, "Encoder", cfg.EncoderBin, "-version")
	checkViewer(log, cfg.ViewerBin)
}

// checkTool verifies a tool is on PATH and logs the first line of its
// version output.
func checkTool(log Logger, label, bin, versionFlag string) {
	if _, err := exec.LookPath(bin); err != nil {
		log.Error("%s: %s not found", label, bin)
		return
	}
	out, err := exec.Command(bin, versionFlag).Output()
	if err != nil {
		log.Warn("%s: %s found but %s failed: %v", label, bin, versionFlag, err)
		return
	}
	log.Success("%s: %s", label, firstLine(string(out)))
}

// checkViewer only verifies presence. Viewers tend to open a window on any
// invocation, so no version probe is run.
func checkViewer(log Logger, bin string) {
	if _, err := exec.LookPath(bin); err != nil {
		log.Warn("Viewer: %s not found", bin)
		return
	}
	log.Success("Viewer: %s available", bin)
}

// CheckDeps is the pre-run validation: it verifies that the one tool the
// selected action needs is on PATH. Listing needs nothing external.
func CheckDeps(cfg *config.Config) error {
	switch cfg.Action {
	case config.ActionConvert:
		if _, err := exec.LookPath(cfg.ConverterBin); err != nil {
			return ErrConverterNotFound
		}
	case config.ActionEncode:
		if _, err := exec.LookPath(cfg.EncoderBin); err != nil {
			return ErrEncoderNotFound
		}
	case config.ActionView:
		if _, err := exec.LookPath(cfg.ViewerBin); err != nil {
			return ErrViewerNotFound
		}
	}
	return nil
}

func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if idx := strings.Index(s, "\n"); idx > 0 {
		s = s[:idx]
	}
	return s
}
