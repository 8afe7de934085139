package task

import "testing"

func TestCount(t *testing.T) {
	tasks := []Task{
		{Description: "a"},
		{Description: "b", Completed: true},
		{Description: "c"},
	}
	completed, pending := Count(tasks)
	if completed != 1 || pending != 2 {
		t.Errorf("got completed=%d pending=%d, want 1 and 2", completed, pending)
	}

	completed, pending = Count(nil)
	if completed != 0 || pending != 0 {
		t.Errorf("empty list should count zero, got %d and %d", completed, pending)
	}
}
