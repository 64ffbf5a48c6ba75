package main

import (
	"regexp"
	"strings"
)

var autosquashRe = regexp.MustCompile(`^(?:amend|fixup|squash)! `)

// DefaultTypes returns the built-in allowed commit types, in display order.
func DefaultTypes() []string {
	return []string{
		"build", "chore", "ci", "docs", "feat", "fix",
		"perf", "refactor", "revert", "style", "test",
	}
}

// ConventionalTypes returns types as-is, or the built-in defaults when the
// list is empty.
func ConventionalTypes(types []string) []string {
	if len(types) == 0 {
		return DefaultTypes()
	}
	return types
}

// FormatTypes returns the effective type list for help and error text.
func FormatTypes(types []string) []string {
	return append([]string(nil), ConventionalTypes(types)...)
}

// HasAutosquashPrefix reports whether the message starts with one of git's
// autosquash prefixes (amend!, fixup!, squash!) followed by a space.
// These commits are rewritten away by `git rebase --autosquash`, so they are
// exempt from checking unless strict mode is on.
func HasAutosquashPrefix(message string) bool {
	return autosquashRe.MatchString(message)
}

// IsConventional reports whether the first line of message matches
//
//	type [ "(" scope ")" ] [ "!" ] ": " description
//
// The type token is matched case-insensitively against types (empty falls
// back to DefaultTypes). A non-empty scopes list is an allow-list: the scope
// must be an exact member. A missing scope fails unless optionalScope.
// The bang is only valid immediately before the colon; anything after the
// colon-space, further colons included, is description text.
//
// Every input yields a verdict; there is no error path.
func IsConventional(message string, types []string, optionalScope bool, scopes []string) bool {
	header, _, _ := strings.Cut(message, "\n")
	header = strings.TrimRight(header, " \t\r")
	if header == "" {
		return false
	}

	m := headerRe(types).FindStringSubmatch(header)
	if m == nil {
		return false
	}

	scope := m[1]
	if scope == "" {
		if !optionalScope {
			return false
		}
	} else if len(scopes) > 0 && !containsScope(scopes, scope) {
		return false
	}

	return strings.TrimSpace(m[2]) != ""
}

// headerRe builds the anchored header pattern for the given type list.
// Scope characters exclude parens, colon and line breaks.
func headerRe(types []string) *regexp.Regexp {
	quoted := make([]string, 0, len(types))
	for _, t := range ConventionalTypes(types) {
		quoted = append(quoted, regexp.QuoteMeta(t))
	}

	return regexp.MustCompile(
		`^(?i:` + strings.Join(quoted, "|") + `)` +
			`(?:\(([^():\r\n]+)\))?` +
			`!?` +
			`: (.*)$`,
	)
}

func containsScope(scopes []string, scope string) bool {
	for _, s := range scopes {
		if s == scope {
			return true
		}
	}
	return false
}
