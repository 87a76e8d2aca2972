package shaders

import (
	"context"
	"io"
	"os"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/ngld/shader-tools/pkg"
)

// ErrCompileFailed is returned by the CLI if at least one compiler invocation failed
var ErrCompileFailed = eris.New("at least one shader failed to compile")

// Progress is notified about the jobs of a rebuild run
type Progress interface {
	Planned(total int)
	Done(job Job, result Result)
}

// Options controls a rebuild run
type Options struct {
	// Force compiles every source regardless of timestamps
	Force bool
	// DryRun prints the status lines without invoking the compiler
	DryRun bool
	// Ignore lists group names that are skipped
	Ignore []string
	// Out receives the status lines. Defaults to os.Stdout.
	Out      io.Writer
	Progress Progress
}

// Rebuild compiles every stale shader below root. Compiler failures are reported and counted but
// don't stop the run; the returned error is only set if the shader directories couldn't be read.
func Rebuild(ctx context.Context, root string, compiler Compiler, opts Options) (Summary, error) {
	var summary Summary
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}

	allGroups, err := ReadGroups(root)
	if err != nil {
		return summary, err
	}

	groups := make([]*Group, 0, len(allGroups))
	for _, group := range allGroups {
		if contains(opts.Ignore, group.Name) {
			log(ctx).Debug().Str("group", group.Name).Msg("ignored")
			continue
		}

		groups = append(groups, group)
	}

	jobs, skipped := Plan(groups, opts.Force)
	summary.Skipped = skipped
	for _, path := range skipped {
		log(ctx).Warn().Str("path", path).Msgf("Skipping %s because its name doesn't match <name>.<type>", path)
	}

	if opts.Progress != nil {
		opts.Progress.Planned(len(jobs))
	}

	for _, job := range jobs {
		log(ctx).Debug().
			Str("group", job.Group.Name).
			Str("reason", job.Reason.String()).
			Msgf("%s -> %s", job.Source.Path, job.Output)

		pkg.PrintSubtask(out, "Compiling "+job.Source.Path)
		summary.Compiled++

		var result Result
		if !opts.DryRun {
			result = compiler.Compile(ctx, job.Source.Path, job.Output)
			if result.Failed() {
				summary.Failed++
				pkg.PrintError(out, "Output: "+failureOutput(result))
				log(ctx).Debug().
					Str("group", job.Group.Name).
					Int("exitCode", result.ExitCode).
					Msgf("Failed to compile %s", job.Source.Path)
			}
		}

		if opts.Progress != nil {
			opts.Progress.Done(job, result)
		}
	}

	if !summary.DidSomething() {
		pkg.PrintTask(out, "All shaders are up to date")
	}

	return summary, nil
}

func failureOutput(result Result) string {
	if result.Err != nil {
		return result.Err.Error()
	}

	output := strings.TrimRight(string(result.Stdout), "\r\n")
	if output == "" {
		output = strings.TrimRight(string(result.Stderr), "\r\n")
	}

	return output
}

func contains(list []string, item string) bool {
	for _, value := range list {
		if value == item {
			return true
		}
	}

	return false
}
