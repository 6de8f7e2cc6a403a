package volume

import (
	"fmt"
	"path"
	"regexp"
	"strings"
)

// namePattern is Docker's own grammar for named-volume references.
// Rejecting other names here turns a confusing runtime failure into a
// usage error before any helper process exists.
var namePattern = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9_.-]*$`)

// ValidateName checks that name is a legal named-volume reference.
func ValidateName(name string) error {
	if name == "" {
		return fmt.Errorf("volume name is empty")
	}
	if !namePattern.MatchString(name) {
		return fmt.Errorf("invalid volume name %q: must start with an alphanumeric character and contain only [a-zA-Z0-9_.-]", name)
	}
	return nil
}

// EscapeError reports a path that would reach outside its mount after
// lexical cleaning.
type EscapeError struct {
	Path string
}

func (e *EscapeError) Error() string {
	return fmt.Sprintf("path %q escapes the mount", e.Path)
}

// CheckRelative verifies that p names something inside a mount: it must be
// non-empty, relative, and stay below the mount root once cleaned.
// Container paths always use forward slashes, regardless of host platform.
func CheckRelative(p string) error {
	if p == "" {
		return fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(p, "/") {
		return fmt.Errorf("path %q must be relative", p)
	}
	clean := path.Clean(p)
	if clean == ".." || strings.HasPrefix(clean, "../") {
		return &EscapeError{Path: p}
	}
	return nil
}

// ResolveTarget translates a path relative to the volume root into the
// helper container's namespace.
// Returns: {mountPoint}/{rel}, or the mount point itself when rel is empty.
func ResolveTarget(mountPoint, rel string) string {
	if rel == "" {
		return mountPoint
	}
	return path.Join(mountPoint, rel)
}

// ResolveTargets translates every path in rels. The input order is
// preserved; operand order is the helper's to interpret.
func ResolveTargets(mountPoint string, rels []string) []string {
	resolved := make([]string, len(rels))
	for i, rel := range rels {
		resolved[i] = ResolveTarget(mountPoint, rel)
	}
	return resolved
}
