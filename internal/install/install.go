// Package install writes a launcher alias into the user's shell rc file.
package install

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const aliasName = "secretary"

// RcFile picks the rc file for the user's shell: ~/.zshrc when $SHELL
// mentions zsh, ~/.bashrc otherwise.
func RcFile(home, shell string) string {
	if strings.Contains(shell, "zsh") {
		return filepath.Join(home, ".zshrc")
	}
	return filepath.Join(home, ".bashrc")
}

// Alias appends an alias for binPath to the rc file at rcPath. It is
// idempotent: if the rc file already defines the alias, nothing is written.
// It reports whether a line was added.
func Alias(rcPath, binPath string) (bool, error) {
	marker := "alias " + aliasName + "="

	existing, err := os.ReadFile(rcPath)
	if err != nil && !os.IsNotExist(err) {
		return false, fmt.Errorf("read %s: %w", rcPath, err)
	}
	if strings.Contains(string(existing), marker) {
		return false, nil
	}

	f, err := os.OpenFile(rcPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return false, fmt.Errorf("open %s: %w", rcPath, err)
	}
	defer f.Close()

	line := fmt.Sprintf("\n%s%q\n", marker, binPath)
	if _, err := f.WriteString(line); err != nil {
		return false, fmt.Errorf("append to %s: %w", rcPath, err)
	}
	return true, nil
}
