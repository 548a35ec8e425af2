// Package ignorefile edits line-oriented Git ignore files.
package ignorefile

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/eaglekit/ek/internal/domain"
)

// Ensure Editor implements domain.IgnoreFile.
var _ domain.IgnoreFile = (*Editor)(nil)

// Editor implements IgnoreFile on the local filesystem.
type Editor struct{}

// NewEditor creates an ignore file editor.
func NewEditor() *Editor {
	return &Editor{}
}

// EnsureLine appends line to path unless an existing line equals it after trimming.
// Missing files and parent directories are created.
func (e *Editor) EnsureLine(path, line string) (bool, error) {
	content, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return false, fmt.Errorf("read %s: %w", path, err)
	}
	if hasLine(content, line) {
		return false, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return false, fmt.Errorf("create directory for %s: %w", path, err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return false, fmt.Errorf("open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	var buf bytes.Buffer
	if len(content) > 0 && content[len(content)-1] != '\n' {
		buf.WriteByte('\n')
	}
	buf.WriteString(line)
	buf.WriteByte('\n')
	if _, err := f.Write(buf.Bytes()); err != nil {
		return false, fmt.Errorf("write %s: %w", path, err)
	}
	return true, nil
}

// Contains reports whether path has line. A missing file does not contain it.
func (e *Editor) Contains(path, line string) (bool, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("read %s: %w", path, err)
	}
	return hasLine(content, line), nil
}

func hasLine(content []byte, line string) bool {
	want := strings.TrimSpace(line)
	for _, l := range strings.Split(string(content), "\n") {
		if strings.TrimSpace(l) == want {
			return true
		}
	}
	return false
}
