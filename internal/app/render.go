package app

import (
	"fmt"

	"taskman/internal/task"
	"taskman/internal/ui"
)

const (
	menuWidth  = 50
	listWidth  = 60
	statsWidth = 40
)

func (a *App) renderMenu() {
	fmt.Fprintln(a.out, ui.Rule(menuWidth))
	fmt.Fprintln(a.out, ui.Title("              TO-DO LIST MANAGER"))
	fmt.Fprintln(a.out, ui.Rule(menuWidth))
	fmt.Fprintln(a.out, "1.  Add Task")
	fmt.Fprintln(a.out, "2.  View All Tasks")
	fmt.Fprintln(a.out, "3.  View Pending Tasks")
	fmt.Fprintln(a.out, "4.  Mark Task as Complete")
	fmt.Fprintln(a.out, "5.  Mark Task as Incomplete")
	fmt.Fprintln(a.out, "6.  Edit Task")
	fmt.Fprintln(a.out, "7.  Remove Task")
	fmt.Fprintln(a.out, "8.  Clear Completed Tasks")
	fmt.Fprintln(a.out, "9.  Task Statistics")
	fmt.Fprintln(a.out, "10. Exit")
	fmt.Fprintln(a.out, ui.Rule(menuWidth))
}

// renderTasks shows the full list with positions, checkboxes, and counts.
func (a *App) renderTasks() {
	tasks := a.store.Tasks()
	if len(tasks) == 0 {
		fmt.Fprintln(a.out, "\nNo tasks found! Your to-do list is empty.")
		return
	}
	completed, pending := task.Count(tasks)

	fmt.Fprintln(a.out)
	fmt.Fprintln(a.out, ui.Rule(listWidth))
	fmt.Fprintln(a.out, ui.Title("                    YOUR TO-DO LIST"))
	fmt.Fprintln(a.out, ui.Rule(listWidth))
	fmt.Fprintf(a.out, "Total Tasks: %d | Completed: %d | Pending: %d\n",
		len(tasks), completed, pending)
	fmt.Fprintln(a.out, ui.Rule(listWidth))
	for i, t := range tasks {
		fmt.Fprintln(a.out, taskLine(i+1, t))
	}
	fmt.Fprintln(a.out, ui.Rule(listWidth))
}

// renderPending shows only incomplete tasks, keeping their original
// positions so the numbers stay valid for the numeric prompts.
func (a *App) renderPending() {
	tasks := a.store.Tasks()
	_, pending := task.Count(tasks)
	if pending == 0 {
		fmt.Fprintln(a.out, "\nGreat! No pending tasks. You're all caught up!")
		return
	}

	fmt.Fprintln(a.out)
	fmt.Fprintln(a.out, ui.Rule(listWidth))
	fmt.Fprintln(a.out, ui.Title("                   PENDING TASKS"))
	fmt.Fprintln(a.out, ui.Rule(listWidth))
	for i, t := range tasks {
		if !t.Completed {
			fmt.Fprintln(a.out, taskLine(i+1, t))
		}
	}
	fmt.Fprintln(a.out, ui.Rule(listWidth))
	fmt.Fprintf(a.out, "Total Pending Tasks: %d\n", pending)
}

func (a *App) renderStats() {
	st := a.store.Stats()
	if st.Total == 0 {
		fmt.Fprintln(a.out, "\nNo tasks to analyze!")
		return
	}
	fmt.Fprintln(a.out)
	fmt.Fprintln(a.out, ui.Rule(statsWidth))
	fmt.Fprintln(a.out, ui.Title("           TASK STATISTICS"))
	fmt.Fprintln(a.out, ui.Rule(statsWidth))
	fmt.Fprintf(a.out, "Total Tasks:      %d\n", st.Total)
	fmt.Fprintf(a.out, "Completed Tasks:  %d\n", st.Completed)
	fmt.Fprintf(a.out, "Pending Tasks:    %d\n", st.Pending)
	fmt.Fprintf(a.out, "Completion Rate:  %.1f%%\n", st.CompletionRate)
	fmt.Fprintln(a.out, ui.Muted(ui.ProgressBar(st.Completed, st.Total, 28)))
	fmt.Fprintln(a.out, ui.Rule(statsWidth))
}

func taskLine(pos int, t task.Task) string {
	mark, tag := ui.Warn(ui.BoxUnchecked), "TODO"
	if t.Completed {
		mark, tag = ui.Good(ui.BoxChecked), "DONE"
	}
	line := fmt.Sprintf("%2d. [%s] %-40s [%s]", pos, mark, t.Description, tag)
	if t.Created != "" {
		line += ui.Muted(fmt.Sprintf(" (Created: %s)", t.Created))
	}
	return line
}
