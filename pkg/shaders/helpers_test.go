package shaders

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

var baseTime = time.Date(2021, time.April, 1, 12, 0, 0, 0, time.UTC)

// touch creates path (and its parent directories) with the given modification time
func touch(t *testing.T, path string, mtime time.Time) {
	t.Helper()

	err := os.MkdirAll(filepath.Dir(path), 0770)
	if err != nil {
		t.Fatal(err)
	}

	err = os.WriteFile(path, []byte("#version 450\n"), 0660)
	if err != nil {
		t.Fatal(err)
	}

	err = os.Chtimes(path, mtime, mtime)
	if err != nil {
		t.Fatal(err)
	}
}

type invocation struct {
	Source string
	Output string
}

// fakeCompiler records every invocation and fails for the sources listed in fail
type fakeCompiler struct {
	calls []invocation
	fail  map[string]bool
}

func (c *fakeCompiler) Compile(ctx context.Context, source, output string) Result {
	c.calls = append(c.calls, invocation{source, output})
	if c.fail[source] {
		return Result{ExitCode: 2, Stdout: []byte("ERROR: " + source + ":1: syntax error\n")}
	}

	return Result{}
}
