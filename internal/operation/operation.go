// Package operation defines the unit of work a single volfs invocation
// performs and the rules a well-formed invocation must satisfy.
package operation

import (
	"fmt"
	"strings"

	"github.com/volfs/volfs/internal/volume"
)

// Verb selects the kind of work an invocation performs. Values match the
// command-line literals.
type Verb string

const (
	Copy     Verb = "cp"
	Remove   Verb = "rm"
	List     Verb = "ls"
	Terminal Verb = "term"
)

// Verbosity controls how much diagnostic output an invocation emits.
type Verbosity int

const (
	// Normal prints a one-line summary of the helper run.
	Normal Verbosity = iota

	// Quiet suppresses diagnostics; helper output and errors still appear.
	Quiet

	// Verbose additionally echoes the fully constructed runtime command
	// line before the helper starts.
	Verbose
)

// Operation is the single unit of work volfs performs per invocation. It is
// built once by the command layer, validated, and then consumed exactly once
// by the executor; nothing mutates it after Validate.
type Operation struct {
	// Verb is the kind of work to perform.
	Verb Verb

	// Volume is the named volume the helper mounts read-write.
	Volume string

	// SourceDir is the absolute host directory the helper mounts
	// read-only and uses as its working directory.
	SourceDir string

	// TargetSubpath is the directory under the volume root that Copy
	// writes into. Empty means the volume root.
	TargetSubpath string

	// User is who the helper process runs as. Never empty after the
	// command layer applies settings.
	User string

	// Recursive asks cp and rm to descend into directories. The other
	// verbs accept and ignore it.
	Recursive bool

	// Verbosity selects the diagnostic level.
	Verbosity Verbosity

	// Files are the path operands, relative to SourceDir for Copy and to
	// the volume root for Remove and List. Order is preserved.
	Files []string
}

// UsageError reports an invocation that violates the command contract. It is
// always detected before any helper process is constructed, so correcting
// the command line and retrying is safe.
type UsageError struct {
	Constraint string
}

func (e *UsageError) Error() string { return e.Constraint }

func usageErrorf(format string, args ...any) *UsageError {
	return &UsageError{Constraint: fmt.Sprintf(format, args...)}
}

// Validate checks op against the command contract. Checks run in a fixed
// order: verb, volume presence, volume syntax, source directory, file
// presence, then per-path containment. The first violation wins.
func (op Operation) Validate() error {
	switch op.Verb {
	case Copy, Remove, List, Terminal:
	default:
		return usageErrorf("unknown command %q", string(op.Verb))
	}

	if op.Volume == "" {
		return usageErrorf("a volume name is required: pass -V NAME")
	}
	if err := volume.ValidateName(op.Volume); err != nil {
		return &UsageError{Constraint: err.Error()}
	}

	if op.SourceDir == "" {
		return usageErrorf("a source directory is required")
	}
	// The source directory crosses the runtime's -v flag, whose syntax
	// cannot carry a colon in the host path.
	if strings.Contains(op.SourceDir, ":") {
		return usageErrorf("source directory %q must not contain ':'", op.SourceDir)
	}

	switch op.Verb {
	case Copy, Remove:
		if len(op.Files) == 0 {
			return usageErrorf("%s requires at least one file operand", op.Verb)
		}
	case Terminal:
		if len(op.Files) != 0 {
			return usageErrorf("term takes no file operands, got %d", len(op.Files))
		}
	}

	if op.TargetSubpath != "" {
		if err := volume.CheckRelative(op.TargetSubpath); err != nil {
			return usageErrorf("invalid target %q: %v", op.TargetSubpath, err)
		}
	}
	for _, f := range op.Files {
		if err := volume.CheckRelative(f); err != nil {
			return usageErrorf("invalid file operand %q: %v", f, err)
		}
	}

	return nil
}
