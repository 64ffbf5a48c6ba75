package main

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

const editHint = `# Your commit message does not follow Conventional Commits formatting
# https://www.conventionalcommits.org/
#
# Conventional Commits start with one of the below types, followed by a colon,
# followed by the commit subject and an optional body separated by a blank line:
#
#     %s
#
# Edit the message below. Lines starting with '#' are ignored.
`

// editLoop reopens the user's editor on the message file until the message
// conforms or the editor exits abnormally. On success the file is rewritten
// with the hint comments stripped.
func editLoop(filename string, cfg checkConfig) error {
	editor, err := gitEditor()
	if err != nil {
		return err
	}

	for {
		content, err := readMessageFile(filename)
		if err != nil {
			return err
		}

		message := stripComments(content)
		if cfg.conforms(message) {
			return os.WriteFile(filename, []byte(message), 0o644)
		}

		if err := writeHint(filename, message, FormatTypes(cfg.types)); err != nil {
			return err
		}

		cmd := exec.Command(editor, filename)
		cmd.Stdin = os.Stdin
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr
		if err := cmd.Run(); err != nil {
			return fmt.Errorf("editor aborted: %w", err)
		}
	}
}

func gitEditor() (string, error) {
	out, err := exec.Command("git", "var", "GIT_EDITOR").Output()
	if err != nil {
		return "", fmt.Errorf("resolve GIT_EDITOR: %w", err)
	}

	editor := strings.TrimRight(string(out), "\n")
	if editor == "" {
		return "", errors.New("GIT_EDITOR is not set")
	}
	return editor, nil
}

func writeHint(filename, message string, types []string) error {
	hint := fmt.Sprintf(editHint, strings.Join(types, " "))
	return os.WriteFile(filename, []byte(hint+"\n"+message), 0o644)
}

// stripComments drops '#' comment lines, the way git itself cleans up a
// message, so a previously written hint never piles up or blocks the check.
func stripComments(message string) string {
	lines := strings.Split(message, "\n")
	kept := make([]string, 0, len(lines))
	for _, line := range lines {
		if strings.HasPrefix(line, "#") {
			continue
		}
		kept = append(kept, line)
	}
	return strings.TrimLeft(strings.Join(kept, "\n"), "\n")
}
