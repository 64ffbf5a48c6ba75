package main

import (
	"strings"

	"github.com/shu-go/orderedmap"
)

type CommitType struct {
	Desc  string `json:"description,omitempty" yaml:"description,omitempty"`
	Emoji string `json:"emoji,omitempty" yaml:"emoji,omitempty"`
}

type Rule struct {
	Types *orderedmap.OrderedMap[string, CommitType] `json:"types" yaml:"types"` //map[string]CommitType

	// ForceScope makes the scope mandatory.
	ForceScope bool `json:"forceScope" yaml:"forceScope"`

	// Scopes is an allow-list; empty accepts any non-empty scope.
	Scopes []string `json:"scopes,omitempty" yaml:"scopes,omitempty"`

	// Strict disallows autosquash (fixup!/squash!/amend!) commits.
	Strict bool `json:"strict" yaml:"strict"`
}

// AllowedTypes lists the rule's type tokens in order, skipping "#" comment
// keys. An empty rule yields the built-in defaults.
func (r Rule) AllowedTypes() []string {
	if r.Types == nil {
		return DefaultTypes()
	}

	types := make([]string, 0, len(r.Types.Keys()))
	for _, k := range r.Types.Keys() {
		if strings.HasPrefix(k, "#") {
			continue
		}
		types = append(types, k)
	}
	if len(types) == 0 {
		return DefaultTypes()
	}
	return types
}
