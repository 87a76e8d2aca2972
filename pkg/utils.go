package pkg

import (
	"io"

	"github.com/mitchellh/colorstring"
)

// PrintTask prints a top-level status line
func PrintTask(w io.Writer, msg string) {
	colorstring.Fprintf(w, "[blue][bold]==>[default] %s\n", msg)
}

// PrintSubtask prints a status line for a single step
func PrintSubtask(w io.Writer, msg string) {
	colorstring.Fprintf(w, "[green][bold]  ->[reset] %s\n", msg)
}

// PrintError prints a failure message. msg is printed as is (color codes aren't interpreted).
func PrintError(w io.Writer, msg string) {
	colorstring.Fprintf(w, "[red][bold]  ->[reset] %s\n", msg)
}
