package main

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"

	git "github.com/go-git/go-git/v5"
	gitconfig "github.com/go-git/go-git/v5/plumbing/format/config"

	"github.com/shu-go/findcfg"
	"github.com/shu-go/orderedmap"
	"gopkg.in/yaml.v3"
)

const (
	userConfigFolder = "git-ccheck"

	defaultRuleFileName = ".ccheck"

	configSection = "ccheck"
	configRule    = "rule"
)

func defaultRule(emoji bool) Rule {
	return Rule{
		Types:      defaultCommitTypes(emoji),
		ForceScope: false,
		Strict:     false,
	}
}

func defaultCommitTypes(emoji bool) *orderedmap.OrderedMap[string, CommitType] {
	iif := func(cond bool, t, f string) string {
		if cond {
			return t
		}
		return f
	}

	ct := orderedmap.New[string, CommitType]()
	ct.Set("# comment1", CommitType{
		Desc: "comment starts with #",
	})
	ct.Set("# comment2", CommitType{
		Desc: "Types follow https://www.conventionalcommits.org/ plus the Angular guideline set",
	})

	ct.Set("build", CommitType{
		Desc:  "Changes that affect the build system or external dependencies",
		Emoji: iif(emoji, ":package:", ""),
	})
	ct.Set("chore", CommitType{
		Desc:  "Routine maintenance that modifies neither source nor tests",
		Emoji: iif(emoji, ":wrench:", ""),
	})
	ct.Set("ci", CommitType{
		Desc:  "Changes to CI configuration files and scripts",
		Emoji: iif(emoji, ":hammer:", ""),
	})
	ct.Set("docs", CommitType{
		Desc:  "Documentation only changes",
		Emoji: iif(emoji, ":memo:", ""),
	})
	ct.Set("feat", CommitType{
		Desc:  "A new feature",
		Emoji: iif(emoji, ":sparkles:", ""),
	})
	ct.Set("fix", CommitType{
		Desc:  "A bug fix",
		Emoji: iif(emoji, ":bug:", ""),
	})
	ct.Set("perf", CommitType{
		Desc:  "A code change that improves performance",
		Emoji: iif(emoji, ":zap:", ""),
	})
	ct.Set("refactor", CommitType{
		Desc:  "A code change that neither fixes a bug nor adds a feature",
		Emoji: iif(emoji, ":recycle:", ""),
	})
	ct.Set("revert", CommitType{
		Desc:  "Reverts a previous commit",
		Emoji: iif(emoji, ":rewind:", ""),
	})
	ct.Set("style", CommitType{
		Desc:  "Changes that do not affect the meaning of the code",
		Emoji: iif(emoji, ":art:", ""),
	})
	ct.Set("test", CommitType{
		Desc:  "Adding missing tests or correcting existing tests",
		Emoji: iif(emoji, ":test_tube:", ""),
	})
	return ct
}

func readRuleFile(repos *git.Repository) (*Rule, string) {
	var rootDir string
	if repos != nil {
		if wt, err := repos.Worktree(); err == nil {
			rootDir = wt.Filesystem.Root()
		}
	}

	var exactPath string
	if rootDir != "" {
		// gitconfig: [ccheck] rule=PATH
		if cfg := getGitConfig(repos, configRule); cfg != nil {
			exactPath = filepath.Join(rootDir, *cfg)
		}
	}

	finder := findcfg.New(
		findcfg.Name(defaultRuleFileName),
		findcfg.ExactPath(exactPath),
		findcfg.YAML(),
		findcfg.JSON(),
		findcfg.Dir(rootDir),
		findcfg.UserConfigDir(userConfigFolder),
		findcfg.ExecutableDir(),
	)
	found := finder.Find()
	if found != nil {
		if r, err := tryReadRuleFile(found.Path); err == nil {
			return r, found.Path
		}
	}

	r := defaultRule(false)
	return &r, finder.FallbackPath()
}

func tryReadRuleFile(filename string) (*Rule, error) {
	if s, err := os.Stat(filename); err != nil || s.IsDir() {
		return nil, err
	}

	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		return nil, err
	}

	r := Rule{
		Types: orderedmap.New[string, CommitType](),
	}

	if in(filepath.Ext(filename), ".yaml", ".yml") {
		if err := yaml.Unmarshal(content, &r); err != nil {
			return nil, err
		}
		return &r, nil
	}
	if in(filepath.Ext(filename), ".json") {
		if err := json.Unmarshal(content, &r); err != nil {
			return nil, err
		}
		return &r, nil
	}
	if err := yaml.Unmarshal(content, &r); err != nil {
		if err := json.Unmarshal(content, &r); err != nil {
			return nil, err
		}
		return &r, nil
	}
	return &r, nil
}

func getGitConfig(repos *git.Repository, key string) *string {
	config, err := repos.Config()
	if err != nil {
		return nil
	}

	var ss *gitconfig.Section
	var found bool
	for _, s := range config.Raw.Sections {
		if s.Name == configSection {
			found = true
			ss = s
		}
	}
	if !found {
		return nil
	}

	if ctp := ss.Options.Get(key); ctp != "" {
		return &ctp
	}
	return nil
}
