// Package app drives the interactive menu loop of the task manager.
package app

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"taskman/internal/store"
	"taskman/internal/task"
	"taskman/internal/ui"
)

// Store is the slice of the task store the menu loop needs. *store.Store
// implements it; tests may substitute their own.
type Store interface {
	Load() (store.LoadResult, error)
	Tasks() []task.Task
	Len() int
	Get(index int) (task.Task, error)
	Add(description string) (task.Task, error)
	Remove(index int) (task.Task, error)
	SetCompleted(index int, completed bool) (task.Task, error)
	Edit(index int, description string) (string, error)
	Completed() []task.Task
	ClearCompleted() (int, error)
	Stats() store.Stats
	Path() string
}

// Menu choices, in display order.
const (
	choiceAdd = 1 + iota
	choiceViewAll
	choiceViewPending
	choiceMarkComplete
	choiceMarkIncomplete
	choiceEdit
	choiceRemove
	choiceClearCompleted
	choiceStats
	choiceExit

	menuChoices = choiceExit
)

// App reads commands from in, mutates the store, and reports to out.
type App struct {
	store Store
	in    *bufio.Scanner
	out   io.Writer
	eof   bool
}

// New wires the loop to a store and an input/output pair.
func New(st Store, in io.Reader, out io.Writer) *App {
	return &App{
		store: st,
		in:    bufio.NewScanner(in),
		out:   out,
	}
}

// Run loads the list, then loops: menu, choice, dispatch, acknowledgment.
// It returns when exit is chosen or input ends. Nothing in here is fatal.
func (a *App) Run() {
	fmt.Fprintln(a.out, ui.Title("Welcome to the To-Do List Manager!"))

	res, err := a.store.Load()
	switch {
	case err != nil:
		ui.Fail(a.out, "Error loading tasks: "+err.Error())
		fmt.Fprintln(a.out, "Starting with an empty task list.")
	case res.Created:
		fmt.Fprintf(a.out, "Creating new task file: %s\n", a.store.Path())
	case res.Count > 0:
		st := a.store.Stats()
		fmt.Fprintf(a.out, "Loaded %d task(s): %d pending, %d completed\n",
			st.Total, st.Pending, st.Completed)
	}

	for !a.eof {
		a.renderMenu()
		choice, ok := a.promptChoice()
		if !ok {
			return
		}
		if choice == choiceExit {
			a.farewell()
			return
		}
		a.dispatch(choice)
		a.pause()
	}
}

func (a *App) dispatch(choice int) {
	switch choice {
	case choiceAdd:
		a.handleAdd()
	case choiceViewAll:
		a.renderTasks()
	case choiceViewPending:
		a.renderPending()
	case choiceMarkComplete:
		a.handleSetCompleted(true)
	case choiceMarkIncomplete:
		a.handleSetCompleted(false)
	case choiceEdit:
		a.handleEdit()
	case choiceRemove:
		a.handleRemove()
	case choiceClearCompleted:
		a.handleClearCompleted()
	case choiceStats:
		a.renderStats()
	}
}

// -------------- command handlers ----------------

func (a *App) handleAdd() {
	desc, ok := a.prompt("Enter new task: ")
	if !ok {
		return
	}
	if desc == "" {
		ui.Fail(a.out, "Task cannot be empty!")
		return
	}
	t, err := a.store.Add(desc)
	if err != nil {
		a.reportError(err, "Failed to save task")
		return
	}
	ui.OK(a.out, fmt.Sprintf("Task added: '%s'", t.Description))
}

func (a *App) handleSetCompleted(completed bool) {
	a.renderTasks()
	label := "Enter task number to mark as complete: "
	if !completed {
		label = "Enter task number to mark as incomplete: "
	}
	n, ok := a.promptTaskNumber(label)
	if !ok {
		return
	}
	t, err := a.store.SetCompleted(n, completed)
	if err != nil {
		a.reportError(err, "Failed to save changes")
		return
	}
	if completed {
		ui.OK(a.out, fmt.Sprintf("Task marked as complete: '%s'", t.Description))
	} else {
		ui.OK(a.out, fmt.Sprintf("Task marked as incomplete: '%s'", t.Description))
	}
}

func (a *App) handleEdit() {
	a.renderTasks()
	n, ok := a.promptTaskNumber("Enter task number to edit: ")
	if !ok {
		return
	}
	cur, err := a.store.Get(n)
	if err != nil {
		a.reportError(err, "Failed to read task")
		return
	}
	fmt.Fprintln(a.out, "Current task: "+cur.Description)
	desc, ok := a.prompt("Enter new task description: ")
	if !ok {
		return
	}
	if desc == "" {
		ui.Fail(a.out, "Task description cannot be empty!")
		return
	}
	old, err := a.store.Edit(n, desc)
	if err != nil {
		a.reportError(err, "Failed to save changes")
		return
	}
	ui.OK(a.out, fmt.Sprintf("Task updated: '%s' → '%s'", old, desc))
}

func (a *App) handleRemove() {
	a.renderTasks()
	n, ok := a.promptTaskNumber("Enter task number to remove: ")
	if !ok {
		return
	}
	target, err := a.store.Get(n)
	if err != nil {
		a.reportError(err, "Failed to read task")
		return
	}
	yes, ok := a.confirm(fmt.Sprintf("Are you sure you want to remove '%s'? (y/N): ", target.Description))
	if !ok {
		return
	}
	if !yes {
		fmt.Fprintln(a.out, "Task removal cancelled.")
		return
	}
	removed, err := a.store.Remove(n)
	if err != nil {
		a.reportError(err, "Failed to save changes")
		return
	}
	ui.OK(a.out, fmt.Sprintf("Task removed: '%s'", removed.Description))
}

func (a *App) handleClearCompleted() {
	done := a.store.Completed()
	if len(done) == 0 {
		fmt.Fprintln(a.out, "No completed tasks to clear!")
		return
	}
	fmt.Fprintf(a.out, "\nFound %d completed task(s):\n", len(done))
	for _, t := range done {
		fmt.Fprintln(a.out, "  • "+t.Description)
	}
	yes, ok := a.confirm(fmt.Sprintf("\nAre you sure you want to delete these %d completed task(s)? (y/N): ", len(done)))
	if !ok {
		return
	}
	if !yes {
		fmt.Fprintln(a.out, "Operation cancelled.")
		return
	}
	cleared, err := a.store.ClearCompleted()
	if err != nil {
		a.reportError(err, "Failed to save changes")
		return
	}
	ui.OK(a.out, fmt.Sprintf("%d completed task(s) cleared!", cleared))
}

func (a *App) farewell() {
	st := a.store.Stats()
	fmt.Fprintln(a.out)
	fmt.Fprintln(a.out, ui.Title("Thank you for using the To-Do List Manager!"))
	if st.Total > 0 {
		if st.Pending > 0 {
			fmt.Fprintf(a.out, "You have %d pending task(s) remaining.\n", st.Pending)
		} else {
			fmt.Fprintln(a.out, ui.Good("Congratulations! All tasks completed!"))
		}
	}
	fmt.Fprintf(a.out, "Your tasks are saved in '%s'\n", a.store.Path())
	fmt.Fprintln(a.out, "Goodbye!")
}

// reportError maps store errors onto the user-facing messages: validation
// failures get corrective text, anything else is a persistence failure.
func (a *App) reportError(err error, saveMsg string) {
	var idxErr *store.IndexError
	switch {
	case errors.Is(err, store.ErrEmptyDescription):
		ui.Fail(a.out, "Task description cannot be empty!")
	case errors.As(err, &idxErr):
		ui.Fail(a.out, fmt.Sprintf("Invalid task number! Please enter a number between 1 and %d", idxErr.Size))
	default:
		ui.Fail(a.out, saveMsg)
	}
}
