package main

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	git "github.com/go-git/go-git/v5"

	"github.com/shu-go/gli"
)

type globalCmd struct {
	ForceScope bool   `cli:"force-scope" help:"force commit to have scope defined"`
	Scopes     string `cli:"scopes" help:"comma-separated list of scopes to support (e.g. api,client)"`
	Strict     bool   `cli:"strict" help:"disallow fixup!/squash!/amend! style commits"`
	Edit       bool   `cli:"edit" help:"reopen the commit message editor on failure"`

	Debug bool `cli:"debug" default:"false" help:"diagnostics to stderr"`

	Gen genCmd `cli:"generate,gen" help:"generate rule file"`
	Fix fixCmd `cli:"fix" help:"interactively rewrite the message file"`
}

// checkConfig is the merged, immutable classification configuration.
type checkConfig struct {
	types         []string
	optionalScope bool
	scopes        []string
	strict        bool
}

func (cfg checkConfig) conforms(message string) bool {
	if !cfg.strict && HasAutosquashPrefix(message) {
		return true
	}
	return IsConventional(message, cfg.types, cfg.optionalScope, cfg.scopes)
}

func (c globalCmd) Run(args []string) error {
	if len(args) < 1 {
		return errors.New("commit message file required")
	}
	input := args[len(args)-1]
	cliTypes := args[:len(args)-1]

	repos, err := git.PlainOpenWithOptions(".", &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		repos = nil
	}

	rule, rulePath := readRuleFile(repos)
	if c.Debug {
		fmt.Fprintln(os.Stderr, "rule:", rulePath)
	}

	cfg := c.effectiveConfig(rule, cliTypes)

	message, err := readMessageFile(input)
	if err != nil {
		if errors.Is(err, errBadEncoding) {
			printBadEncoding(os.Stderr)
		}
		return err
	}

	if cfg.conforms(message) {
		return nil
	}

	if c.Edit {
		return editLoop(input, cfg)
	}

	printBadMessage(os.Stderr, message, FormatTypes(cfg.types))
	return errors.New("commit message does not follow Conventional Commits")
}

// effectiveConfig merges the rule file and the command line.
// The command line wins wherever it says anything.
func (c globalCmd) effectiveConfig(rule *Rule, cliTypes []string) checkConfig {
	cfg := checkConfig{
		types:         cliTypes,
		optionalScope: !(c.ForceScope || rule.ForceScope),
		scopes:        rule.Scopes,
		strict:        c.Strict || rule.Strict,
	}
	if len(cfg.types) == 0 {
		cfg.types = rule.AllowedTypes()
	}
	if c.Scopes != "" {
		cfg.scopes = strings.Split(c.Scopes, ",")
	}
	return cfg
}

var errBadEncoding = errors.New("commit message is not valid UTF-8")

func readMessageFile(filename string) (string, error) {
	content, err := os.ReadFile(filename)
	if err != nil {
		return "", fmt.Errorf("read commit message: %w", err)
	}
	if !utf8.Valid(content) {
		return "", errBadEncoding
	}
	return string(content), nil
}

// Version is app version
var Version string

func main() {
	rulePath := getPathToHelp()
	if rulePath != "" {
		rulePath = "\nrule: " + rulePath + "\n"
	}

	app := gli.NewWith(&globalCmd{})
	app.Name = "git-ccheck"
	app.Desc = "Check a git commit message for Conventional Commits formatting"
	app.Version = Version
	app.Usage = `
# as a commit-msg hook (.git/hooks/commit-msg)
git-ccheck "$1"

# restrict types and scopes
git-ccheck --scopes api,client feat fix "$1"

# customize with a rule file
git-ccheck gen
(edit .ccheck.yaml)
git-ccheck "$1"
` + rulePath + `
# record the rule path in gitconfig
(gitconfig: [ccheck] rule=.ccheck.yaml)`
	app.Copyright = "(C) 2025 Shuhei Kubota"
	app.SuppressErrorOutput = true
	if err := app.Run(os.Args); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func getPathToHelp() string {
	repos, err := git.PlainOpenWithOptions(".", &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return ""
	}

	_, rulePath := readRuleFile(repos)
	return rulePath
}

func in(s string, choices ...string) bool {
	if len(choices) == 0 {
		return false
	}

	for i := 0; i < len(choices); i++ {
		if strings.EqualFold(s, choices[i]) {
			return true
		}
	}

	return false
}
