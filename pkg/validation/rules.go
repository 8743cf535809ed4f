// Package validation declares the per-section validation rules the data
// service runs before persisting a save. Rules form a small closed vocabulary
// mirroring the descriptor tree; Validate walks a document against a rule and
// collects every failing field path, never stopping at the first problem.
package validation

import (
	"fmt"
	"net/mail"
	"net/url"
	"sort"
	"strconv"
	"strings"
)

// Issue is one failed check, addressed by its dotted field path
// (e.g. "title.en", "items.0.en.title").
type Issue struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

// Rule checks one slot of a document.
type Rule interface {
	check(path string, value any, present bool, issues *[]Issue)
}

// Validate runs rule against a full document and returns every issue found.
// A nil result means the document is acceptable.
func Validate(rule Rule, doc map[string]any) []Issue {
	var issues []Issue
	rule.check("", doc, true, &issues)
	return issues
}

// String requires a non-empty string value. Optional strings may be absent or
// empty; MinLen applies only when a value is present.
type String struct {
	Optional bool
	MinLen   int
	Message  string
}

func (r String) check(path string, value any, present bool, issues *[]Issue) {
	s, ok := value.(string)
	if !present || (ok && s == "") {
		if !r.Optional {
			add(issues, path, r.Message, "is required")
		}
		return
	}
	if !ok {
		add(issues, path, "", "must be a string")
		return
	}
	if r.MinLen > 0 && len(s) < r.MinLen {
		add(issues, path, r.Message, fmt.Sprintf("must be at least %d characters", r.MinLen))
	}
}

// Email requires a well-formed email address.
type Email struct {
	Message string
}

func (r Email) check(path string, value any, present bool, issues *[]Issue) {
	s, ok := value.(string)
	if !present || !ok || s == "" {
		add(issues, path, r.Message, "invalid email address")
		return
	}
	if _, err := mail.ParseAddress(s); err != nil {
		add(issues, path, r.Message, "invalid email address")
	}
}

// URL requires a well-formed absolute URL. Optional URLs may be absent or
// empty.
type URL struct {
	Optional bool
	Message  string
}

func (r URL) check(path string, value any, present bool, issues *[]Issue) {
	s, ok := value.(string)
	if !present || (ok && s == "") {
		if !r.Optional {
			add(issues, path, r.Message, "is required")
		}
		return
	}
	if !ok {
		add(issues, path, "", "must be a string")
		return
	}
	parsed, err := url.Parse(s)
	if err != nil || !parsed.IsAbs() || parsed.Host == "" {
		add(issues, path, r.Message, "invalid URL")
	}
}

// Enum constrains a string to a fixed value set.
type Enum struct {
	Values   []string
	Optional bool
	Message  string
}

func (r Enum) check(path string, value any, present bool, issues *[]Issue) {
	s, ok := value.(string)
	if !present || (ok && s == "") {
		if !r.Optional {
			add(issues, path, r.Message, "is required")
		}
		return
	}
	if !ok {
		add(issues, path, "", "must be a string")
		return
	}
	for _, allowed := range r.Values {
		if s == allowed {
			return
		}
	}
	add(issues, path, r.Message, fmt.Sprintf("must be one of: %s", strings.Join(r.Values, ", ")))
}

// StringList requires an ordered sequence of strings, optionally with a
// minimum length.
type StringList struct {
	MinItems int
	Optional bool
	Message  string
}

func (r StringList) check(path string, value any, present bool, issues *[]Issue) {
	if !present || value == nil {
		if !r.Optional && r.MinItems > 0 {
			add(issues, path, r.Message, fmt.Sprintf("needs at least %d item(s)", r.MinItems))
		}
		return
	}
	items, ok := value.([]any)
	if !ok {
		add(issues, path, "", "must be a list")
		return
	}
	if len(items) < r.MinItems {
		add(issues, path, r.Message, fmt.Sprintf("needs at least %d item(s)", r.MinItems))
	}
	for i, item := range items {
		if _, ok := item.(string); !ok {
			add(issues, join(path, strconv.Itoa(i)), "", "must be a string")
		}
	}
}

// Object checks named sub-rules against the corresponding record fields.
// Fields without a rule pass through untouched.
type Object map[string]Rule

func (r Object) check(path string, value any, present bool, issues *[]Issue) {
	record, ok := value.(map[string]any)
	if !present || value == nil {
		record = map[string]any{}
	} else if !ok {
		add(issues, path, "", "must be an object")
		return
	}

	names := make([]string, 0, len(r))
	for name := range r {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		child, childPresent := record[name]
		r[name].check(join(path, name), child, childPresent, issues)
	}
}

// Array applies one item rule to every element of a sequence. An absent
// sequence counts as empty so never-saved sections validate cleanly.
type Array struct {
	Item Rule
}

func (r Array) check(path string, value any, present bool, issues *[]Issue) {
	if !present || value == nil {
		return
	}
	items, ok := value.([]any)
	if !ok {
		add(issues, path, "", "must be a list")
		return
	}
	for i, item := range items {
		r.Item.check(join(path, strconv.Itoa(i)), item, true, issues)
	}
}

// Localized wraps a rule in the conventional en/id pair: both branches must
// satisfy the same rule.
func Localized(rule Rule) Object {
	return Object{"en": rule, "id": rule}
}

func add(issues *[]Issue, path, message, fallback string) {
	if message == "" {
		message = fallback
	}
	*issues = append(*issues, Issue{Path: path, Message: message})
}

func join(parent, child string) string {
	if parent == "" {
		return child
	}
	return parent + "." + child
}
