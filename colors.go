package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Basic ANSI palette, same colors git uses for its own hook output.
var (
	styleBad  = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	styleHint = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	styleLink = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
)

func printBadMessage(w io.Writer, message string, types []string) {
	fmt.Fprintf(w, `
%s %s
%s
%s

%s

    %s

%s

    feat: implement new API

%s

    fix: remove infinite loop

%s

    fix(account): remove infinite loop

%s

    fix: remove infinite loop

    Additional information on the issue caused by the infinite loop
`,
		styleBad.Render("[Bad Commit message] >>"), strings.TrimRight(message, "\n"),
		styleHint.Render("Your commit message does not follow Conventional Commits formatting"),
		styleLink.Render("https://www.conventionalcommits.org/"),
		styleHint.Render("Conventional Commits start with one of the below types, followed by a colon,\n"+
			"followed by the commit subject and an optional body separated by a blank line:"),
		strings.Join(types, " "),
		styleHint.Render("Example commit message adding a feature:"),
		styleHint.Render("Example commit message fixing an issue:"),
		styleHint.Render("Example commit with scope in parentheses after the type for more context:"),
		styleHint.Render("Example commit with a body:"),
	)
}

func printBadEncoding(w io.Writer) {
	fmt.Fprintf(w, `
%s

%s
%s encoding is assumed, please configure git to write commit messages in UTF-8.
See %s for more.
`,
		styleBad.Render("[Bad Commit message encoding]"),
		styleHint.Render("git-ccheck could not decode your commit message."),
		styleHint.Render("UTF-8"),
		styleLink.Render("https://git-scm.com/docs/git-commit/#_discussion"),
	)
}
