package store

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	return string(data)
}

func TestDecodeStructured(t *testing.T) {
	data := []byte(`[
  {"task": "buy milk", "completed": false, "created": "2024-03-01 09:30:00"},
  {"task": "  walk dog  ", "completed": true, "created": ""}
]`)
	tasks, format := decode(data)
	if format != FormatStructured {
		t.Fatalf("expected structured, got %s", format)
	}
	if len(tasks) != 2 {
		t.Fatalf("expected 2 tasks, got %d", len(tasks))
	}
	if tasks[0].Description != "buy milk" || tasks[0].Completed {
		t.Errorf("first record wrong: %+v", tasks[0])
	}
	if tasks[1].Description != "walk dog" || !tasks[1].Completed {
		t.Errorf("second record not trimmed or flag lost: %+v", tasks[1])
	}
}

func TestDecodeStructuredToleratesExtraKeys(t *testing.T) {
	data := []byte(`[{"task": "x", "completed": false, "created": "", "priority": 3}]`)
	tasks, format := decode(data)
	if format != FormatStructured || len(tasks) != 1 {
		t.Fatalf("expected 1 structured record, got %d (%s)", len(tasks), format)
	}
}

func TestDecodeStructuredAllowsMissingCreated(t *testing.T) {
	data := []byte(`[{"task": "x", "completed": true}]`)
	tasks, format := decode(data)
	if format != FormatStructured {
		t.Fatalf("expected structured, got %s", format)
	}
	if tasks[0].Created != "" {
		t.Errorf("expected empty created, got %q", tasks[0].Created)
	}
}

func TestDecodeLegacyLines(t *testing.T) {
	data := []byte("buy milk\n\n  walk dog  \n\n")
	tasks, format := decode(data)
	if format != FormatLegacy {
		t.Fatalf("expected legacy, got %s", format)
	}
	want := []string{"buy milk", "walk dog"}
	if len(tasks) != len(want) {
		t.Fatalf("expected %d tasks, got %d", len(want), len(tasks))
	}
	for i, w := range want {
		if tasks[i].Description != w || tasks[i].Completed || tasks[i].Created != "" {
			t.Errorf("record %d: %+v", i, tasks[i])
		}
	}
}

// Valid JSON that is not a sequence of records still falls back to the
// line-based tier.
func TestDecodeNonRecordJSONFallsBack(t *testing.T) {
	cases := map[string]string{
		"object":        `{"task": "x"}`,
		"scalar":        `42`,
		"string array":  `["a", "b"]`,
		"number booled": `[{"task": "x", "completed": "yes"}]`,
	}
	for name, data := range cases {
		tasks, format := decode([]byte(data))
		if format != FormatLegacy {
			t.Errorf("%s: expected legacy fallback, got %s", name, format)
			continue
		}
		for _, tk := range tasks {
			if tk.Completed || tk.Created != "" {
				t.Errorf("%s: legacy record should be pending and unstamped: %+v", name, tk)
			}
		}
	}
}

func TestDecodeInvalidUTF8(t *testing.T) {
	tasks, format := decode([]byte{0xff, 0xfe, 'a'})
	if format != FormatUnreadable {
		t.Fatalf("expected unreadable, got %s", format)
	}
	if tasks != nil {
		t.Errorf("expected no tasks, got %v", tasks)
	}
}

// Legacy files migrate to the structured format on the first save.
func TestLegacyMigration(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.txt")
	writeFile(t, path, "buy milk\nwalk dog\n")

	s := New(path, log.New(io.Discard))
	res, err := s.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if res.Format != FormatLegacy || res.Count != 2 {
		t.Fatalf("expected 2 legacy tasks, got %+v", res)
	}

	if _, err := s.SetCompleted(1, true); err != nil {
		t.Fatalf("SetCompleted: %v", err)
	}

	reloaded := New(path, log.New(io.Discard))
	res, err = reloaded.Load()
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if res.Format != FormatStructured {
		t.Errorf("expected structured after save, got %s", res.Format)
	}
	tasks := reloaded.Tasks()
	if len(tasks) != 2 || !tasks[0].Completed || tasks[1].Completed {
		t.Errorf("migrated content wrong: %+v", tasks)
	}
	if tasks[0].Created != "" || tasks[1].Created != "" {
		t.Error("legacy records must keep an empty creation stamp")
	}
}

// The file keeps non-ASCII text readable instead of \u-escaping it.
func TestSaveDoesNotEscapeNonASCII(t *testing.T) {
	s := newTestStore(t)
	mustAdd(t, s, "café & croissants")

	data := readFile(t, s.Path())
	if !strings.Contains(data, "café & croissants") {
		t.Errorf("non-ASCII or HTML characters were escaped:\n%s", data)
	}
	if !strings.Contains(data, "\n  ") {
		t.Errorf("expected indented output:\n%s", data)
	}
}
