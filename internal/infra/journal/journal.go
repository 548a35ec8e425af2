// Package journal records task runs as JSON lines.
package journal

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/eaglekit/ek/internal/domain"
)

// Ensure Journal implements domain.RunJournal interface.
var _ domain.RunJournal = (*Journal)(nil)

// Journal appends run entries to a JSONL file through zerolog.
// The file is opened lazily on the first append.
// Fields are ordered to minimize memory padding.
type Journal struct {
	file   *os.File
	logger zerolog.Logger
	path   string
	mu     sync.Mutex
}

// New creates a journal writing to path.
func New(path string) *Journal {
	return &Journal{path: path}
}

func (j *Journal) ensureFile() error {
	if j.file != nil {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(j.path), 0o750); err != nil {
		return fmt.Errorf("create journal directory: %w", err)
	}
	f, err := os.OpenFile(j.path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o640) //nolint:gosec // Journal readable by owner and group
	if err != nil {
		return fmt.Errorf("open journal: %w", err)
	}
	j.file = f
	j.logger = zerolog.New(f)
	return nil
}

// Append writes one entry. Missing run ids and times are filled in.
func (j *Journal) Append(e domain.RunEntry) error {
	j.mu.Lock()
	defer j.mu.Unlock()

	if err := j.ensureFile(); err != nil {
		return err
	}
	if e.RunID == "" {
		e.RunID = uuid.New().String()
	}

	ev := j.logger.Info()
	if e.Failed() {
		ev = j.logger.Error()
	}
	if e.Time.IsZero() {
		ev = ev.Timestamp()
	} else {
		ev = ev.Time(zerolog.TimestampFieldName, e.Time)
	}
	ev = ev.Str("run_id", e.RunID).
		Str("project", e.Project).
		Str("task", e.Task).
		Str("branch", e.Branch).
		Str("kind", e.Kind).
		Int("exit_code", e.ExitCode).
		Int64("duration_ms", e.DurationMS)
	ev.Msg(e.Message)
	return nil
}

// Recent returns up to limit of the newest entries, oldest first. limit <= 0 returns all.
// Lines that do not decode are skipped.
func (j *Journal) Recent(limit int) ([]domain.RunEntry, error) {
	j.mu.Lock()
	defer j.mu.Unlock()

	f, err := os.Open(j.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open journal: %w", err)
	}
	defer func() { _ = f.Close() }()

	var entries []domain.RunEntry
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		var e domain.RunEntry
		if err := json.Unmarshal(scanner.Bytes(), &e); err != nil {
			continue
		}
		entries = append(entries, e)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read journal: %w", err)
	}
	if limit > 0 && len(entries) > limit {
		entries = entries[len(entries)-limit:]
	}
	return entries, nil
}

// Close closes the journal file if it was opened.
func (j *Journal) Close() error {
	j.mu.Lock()
	defer j.mu.Unlock()

	if j.file == nil {
		return nil
	}
	err := j.file.Close()
	j.file = nil
	return err
}
