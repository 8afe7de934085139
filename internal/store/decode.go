package store

import (
	"encoding/json"
	"strings"
	"unicode/utf8"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"taskman/internal/task"
)

// Format tags which decode tier produced a task list.
type Format int

const (
	// FormatStructured is the current format: a JSON array of task records.
	FormatStructured Format = iota
	// FormatLegacy is the old plain-text format, one task per line.
	FormatLegacy
	// FormatUnreadable means neither tier applies (non-UTF-8 content).
	FormatUnreadable
)

func (f Format) String() string {
	switch f {
	case FormatStructured:
		return "structured"
	case FormatLegacy:
		return "legacy"
	default:
		return "unreadable"
	}
}

// recordsSchema pins down what "a sequence of task records" means, so the
// fallback to legacy parsing is an explicit contract rather than a decode
// accident. Extra keys are tolerated; created may be absent (legacy saves).
var recordsSchema = jsonschema.MustCompileString("tasks.schema.json", `{
	"type": "array",
	"items": {
		"type": "object",
		"required": ["task", "completed"],
		"properties": {
			"task": {"type": "string"},
			"completed": {"type": "boolean"},
			"created": {"type": "string"}
		}
	}
}`)

// decode reads file content with the two-tier strategy: structured records
// first, then one legacy task description per non-blank line. The caller
// handles empty content; data here is non-empty.
func decode(data []byte) ([]task.Task, Format) {
	if !utf8.Valid(data) {
		return nil, FormatUnreadable
	}

	var v any
	if err := json.Unmarshal(data, &v); err == nil && recordsSchema.Validate(v) == nil {
		var tasks []task.Task
		if err := json.Unmarshal(data, &tasks); err == nil {
			for i := range tasks {
				tasks[i].Description = strings.TrimSpace(tasks[i].Description)
			}
			if tasks == nil {
				tasks = []task.Task{}
			}
			return tasks, FormatStructured
		}
	}

	tasks := []task.Task{}
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		tasks = append(tasks, task.Task{Description: line})
	}
	return tasks, FormatLegacy
}
