package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	prompt "github.com/elk-language/go-prompt"
	pstrings "github.com/elk-language/go-prompt/strings"

	git "github.com/go-git/go-git/v5"

	"github.com/kyokomi/emoji/v2"
)

type fixCmd struct {
}

// Run interactively composes a conforming message and writes it to the
// message file given as the first argument.
func (c fixCmd) Run(g globalCmd, args []string) error {
	if len(args) < 1 {
		return errors.New("commit message file required")
	}
	filename := args[0]

	repos, err := git.PlainOpenWithOptions(".", &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		repos = nil
	}
	rule, _ := readRuleFile(repos)
	cfg := g.effectiveConfig(rule, nil)

	typ := promptType(rule, cfg)
	scope := promptScope(cfg)
	desc := promptDesc()
	body := promptBody()
	breakingChange := promptBreakingChange()

	msg := buildHeader(typ, scope, breakingChange != "", desc)
	if body != "" {
		msg += "\n\n" + body
	}
	if breakingChange != "" {
		msg += "\nBREAKING CHANGE: " + breakingChange
	}

	if !cfg.conforms(msg) {
		return fmt.Errorf("composed message does not conform: %q", msg)
	}

	if err := os.WriteFile(filename, []byte(msg+"\n"), 0o644); err != nil {
		return fmt.Errorf("write commit message: %w", err)
	}

	fmt.Fprintln(os.Stderr, strings.SplitN(msg, "\n", 2)[0])
	return nil
}

func buildHeader(typ, scope string, bang bool, desc string) string {
	h := typ
	if scope != "" {
		h += "(" + scope + ")"
	}
	if bang {
		h += "!"
	}
	return h + ": " + desc
}

func promptType(rule *Rule, cfg checkConfig) string {
	var typ string

	items := make([]prompt.Suggest, 0, len(cfg.types))

	for _, k := range cfg.types {
		item := prompt.Suggest{Text: k}
		if rule.Types != nil {
			if ct, found := rule.Types.Get(k); found {
				item.Description = strings.TrimSpace(emojiOf(rule, k, true) + " " + ct.Desc)
			}
		}
		items = append(items, item)
	}

	typeCompleter := func(in prompt.Document) ([]prompt.Suggest, pstrings.RuneNumber, pstrings.RuneNumber) {
		endIndex := in.CurrentRuneIndex()
		w := in.GetWordBeforeCursor()
		startIndex := endIndex - pstrings.RuneCountInString(w)

		return prompt.FilterHasPrefix(items, w, true), startIndex, endIndex
	}

	for typ == "" {
		typ = prompt.Input(prompt.WithPrefix("Type: "), prompt.WithCompleter(typeCompleter), prompt.WithShowCompletionAtStart())
		if typ == "" {
			fmt.Fprintln(os.Stderr, "type is required")
		}
		if typ != "" && !in(typ, cfg.types...) {
			fmt.Fprintln(os.Stderr, "type must be one of: "+strings.Join(cfg.types, " "))
			typ = ""
		}
	}

	return typ
}

func promptScope(cfg checkConfig) string {
	items := make([]prompt.Suggest, 0, len(cfg.scopes))
	for _, s := range cfg.scopes {
		items = append(items, prompt.Suggest{Text: s})
	}

	scopeCompleter := func(in prompt.Document) ([]prompt.Suggest, pstrings.RuneNumber, pstrings.RuneNumber) {
		endIndex := in.CurrentRuneIndex()
		w := in.GetWordBeforeCursor()
		startIndex := endIndex - pstrings.RuneCountInString(w)

		return prompt.FilterHasPrefix(items, w, true), startIndex, endIndex
	}

	for {
		scope := prompt.Input(
			prompt.WithPrefix("Scope: "),
			prompt.WithCompleter(scopeCompleter),
			prompt.WithShowCompletionAtStart(),
		)
		scope = strings.TrimSpace(scope)

		if scope == "" && !cfg.optionalScope {
			fmt.Fprintln(os.Stderr, "scope is required")
			continue
		}
		if scope != "" && len(cfg.scopes) > 0 && !containsScope(cfg.scopes, scope) {
			fmt.Fprintln(os.Stderr, "scope must be one of: "+strings.Join(cfg.scopes, " "))
			continue
		}
		return scope
	}
}

func promptDesc() string {
	descCompleter := func(in prompt.Document) ([]prompt.Suggest, pstrings.RuneNumber, pstrings.RuneNumber) {
		endIndex := in.CurrentRuneIndex()
		w := in.GetWordBeforeCursor()
		startIndex := endIndex - pstrings.RuneCountInString(w)

		return prompt.FilterHasPrefix(nil, w, true), startIndex, endIndex
	}

	for {
		desc := prompt.Input(prompt.WithPrefix("Description: "), prompt.WithCompleter(descCompleter))
		desc = strings.TrimSpace(desc)
		if desc != "" {
			return desc
		}
		fmt.Fprintln(os.Stderr, "description required")
	}
}

func promptBody() string {
	var body string

	fmt.Println("Body: (Enter 2 empty lines to finish)")

	prevEmpty := false
	buf := bufio.NewReader(os.Stdin)
	for {
		linebyte, _, err := buf.ReadLine()
		if err != nil {
			break
		}

		line := strings.TrimSpace(string(linebyte))

		if line == "" {
			if prevEmpty {
				break
			}
			prevEmpty = true
		} else {
			prevEmpty = false
		}

		if body != "" {
			body += "\n"
		}
		body += line
	}

	return body
}

func promptBreakingChange() string {
	bcCompleter := func(in prompt.Document) ([]prompt.Suggest, pstrings.RuneNumber, pstrings.RuneNumber) {
		endIndex := in.CurrentRuneIndex()
		w := in.GetWordBeforeCursor()
		startIndex := endIndex - pstrings.RuneCountInString(w)

		return prompt.FilterHasPrefix(nil, w, true), startIndex, endIndex
	}

	breakingChange := prompt.Input(prompt.WithPrefix("BREAKING CHANGE: "), prompt.WithCompleter(bcCompleter))
	return strings.TrimSpace(breakingChange)
}

func emojiOf(rule *Rule, typ string, emojize bool) string {
	if rule == nil || rule.Types == nil {
		return ""
	}
	if ct, found := rule.Types.Get(typ); found {
		e := ct.Emoji
		if emojize {
			e = strings.TrimSpace(emoji.Emojize(e))
		}
		return e
	}

	return ""
}
