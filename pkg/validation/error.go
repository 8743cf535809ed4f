package validation

import (
	"fmt"
	"strings"
)

// Error wraps the full issue list of a rejected document. It reports every
// failing path at once so the admin form can surface all problems together.
type Error struct {
	Issues []Issue
}

// Error implements the error interface.
func (e *Error) Error() string {
	if len(e.Issues) == 0 {
		return "validation failed"
	}
	paths := make([]string, 0, len(e.Issues))
	for _, issue := range e.Issues {
		paths = append(paths, issue.Path)
	}
	return fmt.Sprintf("validation failed: %s", strings.Join(paths, ", "))
}

// Check validates doc against rule, returning a *Error when any path fails.
func Check(rule Rule, doc map[string]any) error {
	if issues := Validate(rule, doc); len(issues) > 0 {
		return &Error{Issues: issues}
	}
	return nil
}
