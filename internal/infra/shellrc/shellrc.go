// Package shellrc installs and removes the ek block in shell startup files.
package shellrc

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/eaglekit/ek/internal/domain"
)

// Ensure Editor implements domain.ShellRC.
var _ domain.ShellRC = (*Editor)(nil)

// Editor implements ShellRC on the local filesystem.
type Editor struct{}

// NewEditor creates a shell rc editor.
func NewEditor() *Editor {
	return &Editor{}
}

// Install appends block to path unless a marked block is already present.
func (e *Editor) Install(path, block string) (bool, error) {
	content, err := readOptional(path)
	if err != nil {
		return false, err
	}
	if strings.Contains(content, domain.ShellBlockBegin) {
		return false, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return false, fmt.Errorf("create directory for %s: %w", path, err)
	}
	var b strings.Builder
	b.WriteString(content)
	if content != "" {
		if !strings.HasSuffix(content, "\n") {
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}
	b.WriteString(block)
	if !strings.HasSuffix(block, "\n") {
		b.WriteString("\n")
	}
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return false, fmt.Errorf("write %s: %w", path, err)
	}
	return true, nil
}

// Uninstall removes every marked block from path.
func (e *Editor) Uninstall(path string) (bool, error) {
	content, err := readOptional(path)
	if err != nil {
		return false, err
	}
	stripped, found := stripBlocks(content)
	if !found {
		return false, nil
	}
	if err := os.WriteFile(path, []byte(stripped), 0o644); err != nil {
		return false, fmt.Errorf("write %s: %w", path, err)
	}
	return true, nil
}

// stripBlocks removes begin..end marker blocks along with one blank line before each.
// An unterminated block runs to the end of the file.
func stripBlocks(content string) (string, bool) {
	lines := strings.SplitAfter(content, "\n")
	var out []string
	found, inBlock := false, false
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		switch {
		case !inBlock && trimmed == domain.ShellBlockBegin:
			found, inBlock = true, true
			if n := len(out); n > 0 && strings.TrimSpace(out[n-1]) == "" {
				out = out[:n-1]
			}
		case inBlock && trimmed == domain.ShellBlockEnd:
			inBlock = false
		case !inBlock:
			out = append(out, line)
		}
	}
	return strings.Join(out, ""), found
}

func readOptional(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return string(data), nil
}
