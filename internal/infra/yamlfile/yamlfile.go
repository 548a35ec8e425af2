// Package yamlfile reads and writes YAML documents with an explicit malformed-file policy.
package yamlfile

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"

	"gopkg.in/yaml.v3"
)

// Policy decides what Read does with a document that does not parse.
type Policy int

const (
	// Strict returns a *ParseError.
	Strict Policy = iota
	// EmptyOnMalformed leaves the target at its zero value and reports no error.
	EmptyOnMalformed
)

// ParseError reports a document that could not be decoded.
type ParseError struct {
	Err  error
	Path string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Read decodes the file at path into out, which must be a non-nil pointer.
// It returns false when the file does not exist. out is only modified when decoding succeeds.
func Read(path string, out any, policy Policy) (bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("read %s: %w", path, err)
	}

	rv := reflect.ValueOf(out)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return false, fmt.Errorf("yamlfile: decode target must be a non-nil pointer, got %T", out)
	}

	fresh := reflect.New(rv.Elem().Type())
	if err := yaml.Unmarshal(data, fresh.Interface()); err != nil {
		if policy == EmptyOnMalformed {
			return true, nil
		}
		return true, &ParseError{Path: path, Err: err}
	}
	rv.Elem().Set(fresh.Elem())
	return true, nil
}

// Write encodes v with two-space indentation, creating parent directories.
// Map keys are emitted in sorted order.
func Write(path string, v any) error {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("create directory for %s: %w", path, err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
