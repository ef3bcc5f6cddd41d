// Package runconfig turns raw CLI input into the validated configuration a
// single generation run works from: which formats are enabled and where each
// one writes. Problems found during resolution are accumulated on a
// diagnostics collector so one run reports every issue at once; only input
// path validation aborts immediately.
package runconfig

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"git.home.luguber.info/inful/spec-parser/internal/diag"
	"git.home.luguber.info/inful/spec-parser/internal/logfields"
	"git.home.luguber.info/inful/spec-parser/internal/version"
)

// ConfigurationError reports an invalid input argument. Unlike the batched
// diagnostics collected during resolution, these abort the run immediately.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return e.Reason
}

// Options carries the parsed CLI flag values into resolution.
type Options struct {
	InputDir string

	Debug    bool
	Force    bool
	NoOutput bool
	Verbose  bool

	// Output is the single parent directory for all formats without an
	// explicit override.
	Output string

	// Generate marks formats explicitly requested on the command line.
	Generate map[Format]bool

	// OutputOverride holds per-format output directories; an entry takes
	// precedence over Output.
	OutputOverride map[Format]string
}

// RunConfig is the resolved configuration for one generation run. It is
// constructed once, validated, and not mutated after CreateOutputDirs.
type RunConfig struct {
	CreatedAt time.Time
	RunID     string

	InputDir  string
	NoOutput  bool
	Force     bool
	OutputDir string

	Targets map[Format]*Target

	diags  *diag.Collector
	logger *slog.Logger
}

// New builds a run configuration from parsed CLI options. The input
// directory is validated first and a *ConfigurationError returned on
// failure. Everything else - unresolvable output paths, already-existing
// directories, missing renderer dependencies - is recorded on the
// diagnostics collector; callers must consult HasErrors before creating
// directories or starting generation.
func New(opts Options, logger *slog.Logger) (*RunConfig, error) {
	if logger == nil {
		logger = slog.Default()
	}

	rc := &RunConfig{
		CreatedAt: time.Now().UTC(),
		RunID:     uuid.NewString(),
		InputDir:  opts.InputDir,
		Force:     opts.Force,
		Targets:   make(map[Format]*Target, len(AllFormats())),
		diags:     diag.NewCollector(logger),
		logger:    logger,
	}

	if err := validateInputDir(opts.InputDir); err != nil {
		return nil, err
	}

	rc.resolveTargets(opts)
	rc.checkRequirements()

	return rc, nil
}

// validateInputDir enforces the input contract: the path exists, is a
// directory, and is literally named "model".
func validateInputDir(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return &ConfigurationError{Reason: fmt.Sprintf("Input directory '%s' does not exist.", path)}
	}
	if !info.IsDir() {
		return &ConfigurationError{Reason: fmt.Sprintf("Input path '%s' is not a directory.", path)}
	}
	if filepath.Base(filepath.Clean(path)) != "model" {
		return &ConfigurationError{Reason: fmt.Sprintf("Input directory '%s' must be named 'model'.", path)}
	}
	return nil
}

// resolveTargets decides which formats run and where each one writes.
func (rc *RunConfig) resolveTargets(opts Options) {
	enabled := make(map[Format]bool, len(AllFormats()))

	anyRequested := false
	for _, f := range AllFormats() {
		if opts.Generate[f] {
			anyRequested = true
			break
		}
	}

	switch {
	case opts.NoOutput:
		rc.NoOutput = true
		if anyRequested {
			rc.diags.Warn("Incompatible flag combination: -n/--no-output overrides any generation")
		}
		// all formats stay disabled
	case !anyRequested:
		// no explicit selection: everything runs
		for _, f := range AllFormats() {
			enabled[f] = true
		}
	default:
		for _, f := range AllFormats() {
			enabled[f] = opts.Generate[f]
		}
	}

	if opts.Output != "" {
		rc.OutputDir = opts.Output
		if pathExists(rc.OutputDir) && !rc.Force {
			rc.diags.Error(
				fmt.Sprintf("Output directory '%s' already exists (use -f/--force to overwrite).", rc.OutputDir),
				logfields.Path(rc.OutputDir))
		}
	}

	for _, f := range AllFormats() {
		target := &Target{Enabled: enabled[f]}
		rc.Targets[f] = target
		if !target.Enabled {
			continue
		}

		switch {
		case opts.OutputOverride[f] != "":
			target.OutputPath = opts.OutputOverride[f]
		case rc.OutputDir != "":
			target.OutputPath = filepath.Join(rc.OutputDir, string(f))
		default:
			rc.diags.Error(
				fmt.Sprintf("%s was specified, but no output directory.", f.DisplayName()),
				logfields.Format(string(f)))
			continue
		}

		if pathExists(target.OutputPath) && !rc.Force {
			rc.diags.Error(
				fmt.Sprintf("Output directory '%s' already exists (use -f/--force to overwrite).", target.OutputPath),
				logfields.Format(string(f)),
				logfields.Path(target.OutputPath))
		}
	}
}

func pathExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// EnabledFormats returns the formats that will generate output, in stable order.
func (rc *RunConfig) EnabledFormats() []Format {
	var enabled []Format
	for _, f := range AllFormats() {
		if t := rc.Targets[f]; t != nil && t.Enabled {
			enabled = append(enabled, f)
		}
	}
	return enabled
}

// HasErrors reports whether any configuration error was recorded. A true
// result gates the process: no directories are created and no generation runs.
func (rc *RunConfig) HasErrors() bool {
	return rc.diags.HasErrors()
}

// Diagnostics exposes the collected errors and warnings.
func (rc *RunConfig) Diagnostics() *diag.Collector {
	return rc.diags
}

// AutogenHeader returns the header line stamped into every generated artifact.
func (rc *RunConfig) AutogenHeader() string {
	return fmt.Sprintf("Automatically generated by spec-parser v%s on %s",
		version.Version, rc.CreatedAt.Format(time.RFC3339))
}
