// Package store owns the ordered task list and its backing file.
//
// Single file, human-readable JSON, portable. No locking; fine for a local
// single-user CLI. Every successful mutation is persisted immediately; a
// failed save keeps the in-memory change so the next save retries it.
package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"taskman/internal/task"
)

// ErrEmptyDescription rejects blank (or whitespace-only) task descriptions.
var ErrEmptyDescription = errors.New("task description cannot be empty")

// IndexError reports a 1-based task number outside [1, Size].
type IndexError struct {
	Index int
	Size  int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("invalid task number %d: valid range is 1 to %d", e.Index, e.Size)
}

// Stats is a read-only summary of the list.
type Stats struct {
	Total          int
	Completed      int
	Pending        int
	CompletionRate float64 // percentage, 0 when the list is empty
}

// LoadResult tells the caller how the backing file was read.
type LoadResult struct {
	Format  Format
	Count   int
	Created bool // the file did not exist yet; it will be created on first save
}

// Store is the task list plus its backing file path.
// Tasks are addressed by transient 1-based position; all index resolution
// stays behind this type so a stable-ID scheme could replace it later.
type Store struct {
	path  string
	tasks []task.Task
	log   *log.Logger
	now   func() time.Time
}

// New returns a store backed by path. Nothing is read until Load.
func New(path string, logger *log.Logger) *Store {
	return &Store{
		path:  path,
		tasks: []task.Task{},
		log:   logger,
		now:   time.Now,
	}
}

// Path returns the backing file path.
func (s *Store) Path() string { return s.path }

// Len returns the number of tasks.
func (s *Store) Len() int { return len(s.tasks) }

// Tasks returns a copy of the list in position order.
func (s *Store) Tasks() []task.Task {
	out := make([]task.Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// Completed returns the completed tasks, preserving relative order.
func (s *Store) Completed() []task.Task {
	var out []task.Task
	for _, t := range s.tasks {
		if t.Completed {
			out = append(out, t)
		}
	}
	return out
}

// Get returns the task at the 1-based index.
func (s *Store) Get(index int) (task.Task, error) {
	if err := s.checkIndex(index); err != nil {
		return task.Task{}, err
	}
	return s.tasks[index-1], nil
}

// Load reads the backing file if present. Decode failures and I/O errors are
// non-fatal: the list falls back to empty and the error is returned for
// reporting only.
func (s *Store) Load() (LoadResult, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		s.tasks = []task.Task{}
		if errors.Is(err, os.ErrNotExist) {
			return LoadResult{Created: true}, nil
		}
		return LoadResult{Format: FormatUnreadable}, fmt.Errorf("read file: %w", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		s.tasks = []task.Task{}
		return LoadResult{Format: FormatStructured}, nil
	}

	tasks, format := decode(data)
	if format == FormatUnreadable {
		s.tasks = []task.Task{}
		return LoadResult{Format: format}, fmt.Errorf("decode file %s: content is not readable task data", s.path)
	}
	if format == FormatLegacy {
		s.log.Warn("legacy task file; rewriting as JSON on next save", "file", s.path, "tasks", len(tasks))
	}
	s.tasks = tasks
	return LoadResult{Format: format, Count: len(tasks)}, nil
}

// Save overwrites the backing file with the full list in structured form.
func (s *Store) Save() error {
	tasks := s.tasks
	if tasks == nil {
		tasks = []task.Task{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(tasks); err != nil {
		return fmt.Errorf("json marshal: %w", err)
	}
	if err := os.WriteFile(s.path, buf.Bytes(), 0o644); err != nil {
		s.log.Error("save tasks", "file", s.path, "err", err)
		return fmt.Errorf("write file: %w", err)
	}
	return nil
}

// Add appends a new pending task stamped with the current local time.
func (s *Store) Add(description string) (task.Task, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return task.Task{}, ErrEmptyDescription
	}
	t := task.Task{
		Description: description,
		Created:     s.now().Format(task.CreatedLayout),
	}
	s.tasks = append(s.tasks, t)
	if err := s.Save(); err != nil {
		return task.Task{}, err
	}
	return t, nil
}

// Remove deletes the task at the 1-based index; later positions shift down.
func (s *Store) Remove(index int) (task.Task, error) {
	if err := s.checkIndex(index); err != nil {
		return task.Task{}, err
	}
	removed := s.tasks[index-1]
	s.tasks = append(s.tasks[:index-1], s.tasks[index:]...)
	if err := s.Save(); err != nil {
		return task.Task{}, err
	}
	return removed, nil
}

// SetCompleted sets the completion flag of the task at the 1-based index.
func (s *Store) SetCompleted(index int, completed bool) (task.Task, error) {
	if err := s.checkIndex(index); err != nil {
		return task.Task{}, err
	}
	s.tasks[index-1].Completed = completed
	if err := s.Save(); err != nil {
		return task.Task{}, err
	}
	return s.tasks[index-1], nil
}

// Edit replaces the description at the 1-based index, leaving position,
// completion flag, and creation timestamp untouched. Returns the old
// description.
func (s *Store) Edit(index int, description string) (string, error) {
	if err := s.checkIndex(index); err != nil {
		return "", err
	}
	description = strings.TrimSpace(description)
	if description == "" {
		return "", ErrEmptyDescription
	}
	old := s.tasks[index-1].Description
	s.tasks[index-1].Description = description
	if err := s.Save(); err != nil {
		return "", err
	}
	return old, nil
}

// ClearCompleted removes every completed task, preserving the relative order
// of the remainder. With nothing completed it is a no-op and does not write.
func (s *Store) ClearCompleted() (int, error) {
	kept := make([]task.Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		if !t.Completed {
			kept = append(kept, t)
		}
	}
	removed := len(s.tasks) - len(kept)
	if removed == 0 {
		return 0, nil
	}
	s.tasks = kept
	if err := s.Save(); err != nil {
		return 0, err
	}
	return removed, nil
}

// Stats summarizes the list. Pure read; never writes.
func (s *Store) Stats() Stats {
	completed, pending := task.Count(s.tasks)
	st := Stats{
		Total:     len(s.tasks),
		Completed: completed,
		Pending:   pending,
	}
	if st.Total > 0 {
		st.CompletionRate = float64(completed) / float64(st.Total) * 100
	}
	return st
}

func (s *Store) checkIndex(index int) error {
	if index < 1 || index > len(s.tasks) {
		return &IndexError{Index: index, Size: len(s.tasks)}
	}
	return nil
}
