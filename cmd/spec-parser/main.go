package main

import (
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/spec-parser/internal/config"
	"git.home.luguber.info/inful/spec-parser/internal/logfields"
	"git.home.luguber.info/inful/spec-parser/internal/runconfig"
	"git.home.luguber.info/inful/spec-parser/internal/version"
)

// CLI defines the flag surface for a single generation run.
var CLI struct {
	InputDir string `arg:"" name:"input_dir" help:"Path to the input 'model' directory."`

	Debug   bool             `short:"d" help:"Print spec-parser debug information."`
	Force   bool             `short:"f" help:"Force overwrite of existing output directories."`
	Verbose bool             `short:"v" help:"Print verbose information."`
	Version kong.VersionFlag `short:"V" help:"Print version information and quit."`

	NoOutput bool   `short:"n" help:"Perform no output generation, only input validation."`
	Output   string `short:"o" placeholder:"DIR" help:"Single output directory for all output types."`

	GenerateJsondump bool   `short:"j" help:"Generate a dump of the model in JSON format."`
	OutputJsondump   string `short:"J" placeholder:"DIR" help:"Output directory for JSON dump file."`
	GenerateMkdocs   bool   `short:"m" help:"Generate MkDocs output."`
	OutputMkdocs     string `short:"M" placeholder:"DIR" help:"Output directory for MkDocs files."`
	GeneratePlantuml bool   `short:"p" help:"Generate PlantUML output."`
	OutputPlantuml   string `short:"P" placeholder:"DIR" help:"Output directory for PlantUML files."`
	GenerateRdf      bool   `short:"r" help:"Generate RDF output."`
	OutputRdf        string `short:"R" placeholder:"DIR" help:"Output directory for RDF files."`
	GenerateTex      bool   `short:"t" help:"Generate TeX output."`
	OutputTex        string `short:"T" placeholder:"DIR" help:"Output directory for TeX files."`
	GenerateWebpages bool   `short:"w" help:"Generate web pages output."`
	OutputWebpages   string `short:"W" placeholder:"DIR" help:"Output directory for web pages."`
}

func main() {
	kong.Parse(&CLI,
		kong.Name("spec-parser"),
		kong.Description("Generate documentation from an SPDXv3 model."),
		kong.Vars{"version": "spec-parser " + version.Version},
	)
	os.Exit(run())
}

// run executes the linear configuration sequence: resolve logging, load
// defaults, build and validate the run configuration, gate on errors,
// create output directories. Generation itself is performed by the renderer
// packages, which consume the returned configuration.
func run() int {
	level := config.ParseLogLevel(CLI.Verbose, CLI.Debug)
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	settings, err := config.Load("")
	if err != nil {
		logger.Error("Failed to load run defaults", logfields.Error(err))
		return 1
	}

	opts := optionsFromCLI(settings)

	cfg, err := runconfig.New(opts, logger)
	if err != nil {
		logger.Error(err.Error())
		return 1
	}

	if cfg.HasErrors() {
		return 1
	}

	if err := cfg.CreateOutputDirs(); err != nil {
		logger.Error("Failed to create output directories", logfields.Error(err))
		return 1
	}

	logger.Info("Run configured",
		logfields.RunID(cfg.RunID),
		logfields.InputDir(cfg.InputDir),
		slog.Int("formats", len(cfg.EnabledFormats())))
	return 0
}

// optionsFromCLI merges the parsed flags with the loaded defaults file.
// Explicit flags always win.
func optionsFromCLI(settings *config.Settings) runconfig.Options {
	opts := runconfig.Options{
		InputDir: CLI.InputDir,
		Debug:    CLI.Debug,
		Force:    CLI.Force || settings.Output.Force,
		NoOutput: CLI.NoOutput,
		Verbose:  CLI.Verbose,
		Output:   CLI.Output,
		Generate: map[runconfig.Format]bool{
			runconfig.FormatJSONDump: CLI.GenerateJsondump,
			runconfig.FormatMkDocs:   CLI.GenerateMkdocs,
			runconfig.FormatPlantUML: CLI.GeneratePlantuml,
			runconfig.FormatRDF:      CLI.GenerateRdf,
			runconfig.FormatTeX:      CLI.GenerateTex,
			runconfig.FormatWebPages: CLI.GenerateWebpages,
		},
		OutputOverride: map[runconfig.Format]string{
			runconfig.FormatJSONDump: CLI.OutputJsondump,
			runconfig.FormatMkDocs:   CLI.OutputMkdocs,
			runconfig.FormatPlantUML: CLI.OutputPlantuml,
			runconfig.FormatRDF:      CLI.OutputRdf,
			runconfig.FormatTeX:      CLI.OutputTex,
			runconfig.FormatWebPages: CLI.OutputWebpages,
		},
	}
	if opts.Output == "" {
		opts.Output = settings.Output.Directory
	}
	return opts
}
