package shaders

import (
	"fmt"
	"time"
)

// CompiledType is the file extension used for SPIR-V binaries
const CompiledType = "spv"

// Entry describes a single file inside a shader group
type Entry struct {
	// FileName is the base name of the file (i.e. blur.frag)
	FileName string
	// Name is the part before the dot (blur)
	Name string
	// Type is the part after the dot (frag). It's empty if the file name doesn't have exactly one dot.
	Type    string
	Path    string
	ModTime time.Time
}

// WellFormed reports whether the file name has the <name>.<type> form
func (e *Entry) WellFormed() bool {
	return e.Type != ""
}

// IsSource reports whether this entry should be compiled
func (e *Entry) IsSource() bool {
	return e.WellFormed() && e.Type != CompiledType
}

// Group is a directory containing shader sources and their compiled binaries
type Group struct {
	Name    string
	Path    string
	Entries []*Entry
}

// Reason explains why a job was planned
type Reason int

const (
	// ReasonMissing means that no compiled file exists for the source
	ReasonMissing Reason = iota
	// ReasonOutdated means that the source was modified after the compiled file
	ReasonOutdated
	// ReasonForced means that the caller requested a full rebuild
	ReasonForced
)

func (r Reason) String() string {
	switch r {
	case ReasonMissing:
		return "missing"
	case ReasonOutdated:
		return "outdated"
	case ReasonForced:
		return "forced"
	default:
		return fmt.Sprintf("Reason(%d)", int(r))
	}
}

// Job is a single planned compiler invocation
type Job struct {
	Group  *Group
	Source *Entry
	// Match is the existing file the source was paired with or nil if there is none
	Match  *Entry
	Output string
	Reason Reason
}

// Summary aggregates the outcome of a rebuild run
type Summary struct {
	Compiled int
	Failed   int
	Skipped  []string
}

// DidSomething reports whether at least one compiler invocation was attempted
func (s Summary) DidSomething() bool {
	return s.Compiled > 0
}

// Success reports whether all invocations succeeded
func (s Summary) Success() bool {
	return s.Failed == 0
}
