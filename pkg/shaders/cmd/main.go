// Package cmd implements the build command for the shaders package
package cmd

import (
	"context"
	"io"
	"os"

	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/ngld/shader-tools/pkg/shaders"
)

var RootCmd = NewBuildCmd()

// NewBuildCmd creates the build command
func NewBuildCmd() *cobra.Command {
	buildCmd := &cobra.Command{
		Use:   "build [root]",
		Short: "Recompiles outdated shaders",
		Long: `Scans every subdirectory of root (defaults to the current directory) and compiles each shader
source that is newer than its SPIR-V binary (or doesn't have one yet) with glslangValidator.

The compiler can be configured through a shaders.yml file in root or the --compiler flag.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runBuild,
	}

	buildCmd.Flags().BoolP("dry", "n", false, "dry run; only print the shaders that would be compiled")
	buildCmd.Flags().BoolP("force", "f", false, "force build; compile every shader even if it's up to date")
	buildCmd.Flags().BoolP("verbose", "v", false, "print debug messages")
	buildCmd.Flags().Bool("progress", false, "show a progress bar on stderr")
	buildCmd.Flags().String("compiler", shaders.DefaultCompiler, "compiler command line (overrides shaders.yml)")

	return buildCmd
}

func runBuild(cmd *cobra.Command, args []string) error {
	root := "."
	if len(args) > 0 {
		root = args[0]
	}

	dryRun, err := cmd.Flags().GetBool("dry")
	if err != nil {
		return err
	}

	force, err := cmd.Flags().GetBool("force")
	if err != nil {
		return err
	}

	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		return err
	}

	showProgress, err := cmd.Flags().GetBool("progress")
	if err != nil {
		return err
	}

	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}

	logger := zerolog.New(NewConsoleWriter(cmd.ErrOrStderr())).Level(level)
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = shaders.WithLogger(ctx, &logger)

	opts := shaders.Options{
		Force:  force,
		DryRun: dryRun,
		Out:    cmd.OutOrStdout(),
	}
	if showProgress {
		opts.Progress = &progressReporter{out: cmd.ErrOrStderr()}
	}

	err = build(ctx, &logger, cmd, root, opts)
	if err != nil && !eris.Is(err, shaders.ErrCompileFailed) {
		logger.Error().Err(err).Msgf("Failed to build shaders in %s", root)
		return reportedError{err}
	}

	return err
}

func build(ctx context.Context, logger *zerolog.Logger, cmd *cobra.Command, root string, opts shaders.Options) error {
	cfg, err := shaders.LoadConfig(root)
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("compiler") {
		cfg.Compiler, err = cmd.Flags().GetString("compiler")
		if err != nil {
			return err
		}
	}

	err = cfg.Validate()
	if err != nil {
		return err
	}

	compiler, err := shaders.NewGLSLValidator(cfg.Compiler)
	if err != nil {
		return err
	}

	logger.Debug().Strs("command", compiler.Command("<source>", "<output>")).Msg("Using compiler")

	opts.Ignore = cfg.Ignore
	summary, err := shaders.Rebuild(ctx, root, compiler, opts)
	if err != nil {
		return err
	}

	if !summary.Success() {
		logger.Debug().Msgf("%d of %d shaders failed to compile", summary.Failed, summary.Compiled)
		return shaders.ErrCompileFailed
	}

	return nil
}

// reportedError marks errors which have already been logged
type reportedError struct {
	err error
}

func (e reportedError) Error() string {
	return e.err.Error()
}

func (e reportedError) Unwrap() error {
	return e.err
}

type progressReporter struct {
	out io.Writer
	bar *progressbar.ProgressBar
}

func (p *progressReporter) Planned(total int) {
	p.bar = progressbar.NewOptions(total,
		progressbar.OptionSetDescription("Compiling shaders"),
		progressbar.OptionSetWriter(p.out),
		progressbar.OptionShowCount(),
		progressbar.OptionSetVisibility(os.Getenv("CI") != "true"),
	)
}

func (p *progressReporter) Done(job shaders.Job, result shaders.Result) {
	if p.bar == nil {
		return
	}

	p.bar.Describe(job.Source.Path)
	_ = p.bar.Add(1)
}

// IsCompileFailure reports whether err only signals failed compiler invocations
func IsCompileFailure(err error) bool {
	return eris.Is(err, shaders.ErrCompileFailed)
}

// IsReported reports whether err has already been printed (compiler output or a logged error)
func IsReported(err error) bool {
	var reported reportedError
	return IsCompileFailure(err) || eris.As(err, &reported)
}
