package shaders

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"strings"

	"github.com/rotisserie/eris"
	"mvdan.cc/sh/v3/expand"
	"mvdan.cc/sh/v3/syntax"
)

// DefaultCompiler is the command line used when nothing else is configured
const DefaultCompiler = "glslangValidator"

// Result describes the outcome of a single compiler invocation
type Result struct {
	ExitCode int
	Stdout   []byte
	Stderr   []byte
	// Err is set if the process couldn't be started at all. ExitCode is -1 in that case.
	Err error
}

// Failed reports whether the invocation should be counted as a failure
func (r Result) Failed() bool {
	return r.Err != nil || r.ExitCode != 0
}

// Compiler turns a shader source into a SPIR-V binary
type Compiler interface {
	Compile(ctx context.Context, source, output string) Result
}

// GLSLValidator runs the Khronos reference compiler
type GLSLValidator struct {
	Bin string
	// Args are passed before the generated arguments
	Args []string
}

// NewGLSLValidator parses a shell-style command line (i.e. "$VULKAN_SDK/bin/glslangValidator --quiet")
// into the binary and its leading arguments. Environment variables are expanded.
func NewGLSLValidator(commandLine string) (*GLSLValidator, error) {
	parser := syntax.NewParser()
	words := make([]*syntax.Word, 0)
	err := parser.Words(strings.NewReader(commandLine), func(w *syntax.Word) bool {
		words = append(words, w)
		return true
	})
	if err != nil {
		return nil, eris.Wrapf(err, "Failed to parse compiler command %s", commandLine)
	}

	cfg := expand.Config{
		Env: expand.ListEnviron(os.Environ()...),
	}
	fields, err := expand.Fields(&cfg, words...)
	if err != nil {
		return nil, eris.Wrapf(err, "Failed to expand compiler command %s", commandLine)
	}

	if len(fields) == 0 || fields[0] == "" {
		return nil, eris.New("The compiler command is empty")
	}

	return &GLSLValidator{
		Bin:  fields[0],
		Args: fields[1:],
	}, nil
}

// Command builds the command line for compiling source to output
func (v *GLSLValidator) Command(source, output string) []string {
	args := make([]string, 0, len(v.Args)+5)
	args = append(args, v.Bin)
	args = append(args, v.Args...)
	return append(args, "-V", source, "-o", output)
}

// Compile runs the compiler and waits for it to finish
func (v *GLSLValidator) Compile(ctx context.Context, source, output string) Result {
	args := v.Command(source, output)
	cmd := exec.CommandContext(ctx, args[0], args[1:]...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	result := Result{
		Stdout: stdout.Bytes(),
		Stderr: stderr.Bytes(),
	}

	if err != nil {
		var exitErr *exec.ExitError
		if eris.As(err, &exitErr) {
			// -1 if the process was killed by a signal
			result.ExitCode = exitErr.ExitCode()
		} else {
			result.ExitCode = -1
			result.Err = eris.Wrapf(err, "Failed to run %s", v.Bin)
		}
	}

	return result
}
