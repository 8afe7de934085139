// Package task holds the domain model for a task list entry.
package task

// CreatedLayout is the on-disk timestamp format for Task.Created.
const CreatedLayout = "2006-01-02 15:04:05"

// Task is one to-do entry. JSON keys match the persisted file format.
type Task struct {
	Description string `json:"task"`
	Completed   bool   `json:"completed"`
	Created     string `json:"created"`
}

// Count returns how many tasks are completed and how many are pending.
func Count(tasks []Task) (completed, pending int) {
	for _, t := range tasks {
		if t.Completed {
			completed++
		} else {
			pending++
		}
	}
	return
}
