package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultTypes(t *testing.T) {
	assert.Equal(t, []string{
		"build", "chore", "ci", "docs", "feat", "fix",
		"perf", "refactor", "revert", "style", "test",
	}, DefaultTypes())
}

func TestConventionalTypes(t *testing.T) {
	assert.Equal(t, DefaultTypes(), ConventionalTypes(nil))
	assert.Equal(t, DefaultTypes(), ConventionalTypes([]string{}))
	assert.Equal(t, []string{"feat", "fix"}, ConventionalTypes([]string{"feat", "fix"}))
}

func TestFormatTypes(t *testing.T) {
	assert.Equal(t, DefaultTypes(), FormatTypes(nil))

	types := []string{"feat", "custom"}
	got := FormatTypes(types)
	assert.Equal(t, types, got)

	// display copy, not an alias
	got[0] = "changed"
	assert.Equal(t, "feat", types[0])
}

func TestHasAutosquashPrefix(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    bool
	}{
		{"fixup", "fixup! feat: add x", true},
		{"squash", "squash! whatever text", true},
		{"amend", "amend! fix: y", true},
		{"fixup with body", "fixup! feat: add x\n\nbody", true},
		{"plain feat", "feat: add x", false},
		{"no space after bang", "fixup!feat: add x", false},
		{"uppercase prefix", "Fixup! feat: add x", false},
		{"prefix mid-message", "feat: fixup! something", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HasAutosquashPrefix(tt.message), "message %q", tt.message)
		})
	}
}

func TestIsConventional(t *testing.T) {
	tests := []struct {
		name          string
		message       string
		types         []string
		optionalScope bool
		scopes        []string
		want          bool
	}{
		{"simple feat", "feat: add x", nil, true, nil, true},
		{"simple fix", "fix: remove infinite loop", nil, true, nil, true},
		{"scoped", "feat(api): add x", nil, true, nil, true},
		{"scope in allow-list", "feat(api): add x", nil, true, []string{"api"}, true},
		{"scope not in allow-list", "feat(api): add x", nil, true, []string{"client"}, false},
		{"scope required and present", "feat(api): add x", nil, false, nil, true},
		{"scope required but missing", "feat: add x", nil, false, nil, false},
		{"breaking without scope", "feat!: breaking change", nil, true, nil, true},
		{"breaking with scope", "feat(api)!: breaking", nil, true, []string{"api"}, true},
		{"bang before scope", "feat!(api): breaking", nil, true, nil, false},
		{"random text", "random text", nil, true, nil, false},
		{"unknown type", "unknowntype: x", []string{"feat", "fix"}, true, nil, false},
		{"custom type", "wip: poking around", []string{"wip"}, true, nil, true},
		{"empty message", "", nil, true, nil, false},
		{"empty types falls back to defaults", "chore: tidy", []string{}, true, nil, true},
		{"uppercase type matches", "Feat: add x", nil, true, nil, true},
		{"mixed-case type matches", "fEaT(api): add x", nil, true, nil, true},
		{"body ignored", "feat: add x\n\nthis body is: not checked (at all)", nil, true, nil, true},
		{"nonconforming header with nice body", "bad header\n\nfeat: looks fine", nil, true, nil, false},
		{"trailing header whitespace", "feat: add x   \n\nbody", nil, true, nil, true},
		{"crlf header", "feat: add x\r\nbody", nil, true, nil, true},
		{"colons in description", "feat: add x: y: z", nil, true, nil, true},
		{"missing description", "feat:", nil, true, nil, false},
		{"missing space after colon", "feat:add x", nil, true, nil, false},
		{"whitespace-only description", "feat:   ", nil, true, nil, false},
		{"space-then-word description", "feat:  add x", nil, true, nil, true},
		{"empty scope parens", "feat(): add x", nil, true, nil, false},
		{"unclosed scope", "feat(api: add x", nil, true, nil, false},
		{"scope with colon", "feat(a:b): add x", nil, true, nil, false},
		{"scope with inner parens", "feat((api)): add x", nil, true, nil, false},
		{"scope with spaces", "feat(public api): add x", nil, true, nil, true},
		{"no colon at all", "feat add x", nil, true, nil, false},
		{"type is a prefix of another", "feature: add x", []string{"feat", "feature"}, true, nil, true},
		{"type with regexp metachars", "c++: add x", []string{"c++"}, true, nil, true},
		{"double bang", "feat!!: breaking", nil, true, nil, false},
		{"leading whitespace", " feat: add x", nil, true, nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IsConventional(tt.message, tt.types, tt.optionalScope, tt.scopes)
			assert.Equal(t, tt.want, got, "message %q", tt.message)
		})
	}
}

func TestIsConventionalScopeCaseSensitive(t *testing.T) {
	// type matching is case-insensitive, allow-list matching is not
	assert.True(t, IsConventional("feat(api): add x", nil, true, []string{"api"}))
	assert.False(t, IsConventional("feat(API): add x", nil, true, []string{"api"}))
}

func TestIsConventionalIdempotent(t *testing.T) {
	msg := "feat(api)!: breaking"
	first := IsConventional(msg, nil, true, []string{"api"})
	second := IsConventional(msg, nil, true, []string{"api"})
	assert.Equal(t, first, second)
	assert.True(t, first)
}

func TestBuildHeader(t *testing.T) {
	tests := []struct {
		typ, scope string
		bang       bool
		desc       string
		want       string
	}{
		{"feat", "", false, "add x", "feat: add x"},
		{"feat", "api", false, "add x", "feat(api): add x"},
		{"feat", "", true, "drop v1", "feat!: drop v1"},
		{"fix", "auth", true, "rotate keys", "fix(auth)!: rotate keys"},
	}

	for _, tt := range tests {
		got := buildHeader(tt.typ, tt.scope, tt.bang, tt.desc)
		assert.Equal(t, tt.want, got)
		assert.True(t, IsConventional(got, nil, true, nil), "built header %q should conform", got)
	}
}
