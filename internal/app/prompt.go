package app

import (
	"fmt"
	"strconv"
	"strings"

	"taskman/internal/ui"
)

// readLine blocks for one line of input. ok is false once input is
// exhausted; the loop winds down instead of re-prompting forever.
func (a *App) readLine() (string, bool) {
	if a.eof {
		return "", false
	}
	if !a.in.Scan() {
		a.eof = true
		return "", false
	}
	return a.in.Text(), true
}

// prompt prints a label and returns the trimmed reply.
func (a *App) prompt(label string) (string, bool) {
	fmt.Fprint(a.out, label)
	line, ok := a.readLine()
	return strings.TrimSpace(line), ok
}

// promptChoice reads a menu choice, re-prompting until it parses as an
// integer in [1, menuChoices].
func (a *App) promptChoice() (int, bool) {
	for {
		line, ok := a.prompt("Enter your choice (1-10): ")
		if !ok {
			return 0, false
		}
		n, err := strconv.Atoi(line)
		if err != nil || n < 1 || n > menuChoices {
			fmt.Fprintln(a.out, ui.Bad("Invalid choice! Please enter a number between 1-10."))
			continue
		}
		return n, true
	}
}

// promptTaskNumber reads a 1-based task number, re-prompting on non-numeric
// or out-of-range input. On an empty list it declines immediately.
func (a *App) promptTaskNumber(label string) (int, bool) {
	size := a.store.Len()
	if size == 0 {
		fmt.Fprintln(a.out, "No tasks available!")
		return 0, false
	}
	for {
		line, ok := a.prompt(label)
		if !ok {
			return 0, false
		}
		n, err := strconv.Atoi(line)
		if err != nil {
			fmt.Fprintln(a.out, ui.Bad("Please enter a valid number!"))
			continue
		}
		if n < 1 || n > size {
			fmt.Fprintln(a.out, ui.Bad(fmt.Sprintf("Please enter a number between 1 and %d", size)))
			continue
		}
		return n, true
	}
}

// confirm asks a yes/no question. Only y or yes (any case) affirms;
// everything else, including empty input, cancels.
func (a *App) confirm(label string) (confirmed, ok bool) {
	line, ok := a.prompt(label)
	if !ok {
		return false, false
	}
	switch strings.ToLower(line) {
	case "y", "yes":
		return true, true
	}
	return false, true
}

// pause waits for an acknowledgment before the menu renders again.
func (a *App) pause() {
	if a.eof {
		return
	}
	fmt.Fprint(a.out, "\nPress Enter to continue...")
	a.readLine()
	fmt.Fprintln(a.out)
}
