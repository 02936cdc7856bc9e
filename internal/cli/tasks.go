package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"task_tracker/internal/models"
	"task_tracker/internal/service"
)

// addTask walks the add-task dialogue: assignee (must be registered),
// title, description, due date. Every loop has a cancel escape.
func (c *CLI) addTask(ctx context.Context) {
	var assignee string
	for {
		value, ok := c.promptNonEmpty("Name of person assigned to task (or -1 to cancel): ")
		if !ok || value == cancelToken {
			return
		}
		if !c.services.Exists(value) {
			fmt.Fprintln(c.out, "User does not exist.")
			continue
		}
		assignee = value
		break
	}

	title, ok := c.promptNonEmpty("Title of Task: ")
	if !ok {
		return
	}
	description, ok := c.promptNonEmpty("Description of Task: ")
	if !ok {
		return
	}
	due, ok := c.promptDate("Due date of task (DD-MM-YYYY): ")
	if !ok {
		return
	}

	task, err := c.services.Add(ctx, assignee, title, description, due, time.Now())
	if err != nil {
		c.log.Errorw("add task failed", "err", err)
		fmt.Fprintln(c.out, "Could not add task:", err)
		return
	}
	fmt.Fprintf(c.out, "\nTask %d successfully added.\n", task.Number)
}

// viewAll prints every task in storage order.
func (c *CLI) viewAll() {
	tasks, err := c.services.All()
	if err != nil {
		c.log.Errorw("load tasks failed", "err", err)
		fmt.Fprintln(c.out, "Could not read tasks:", err)
		return
	}
	if len(tasks) == 0 {
		c.separator()
		fmt.Fprintln(c.out, "No tasks available.")
		c.separator()
		return
	}

	c.separator()
	fmt.Fprintln(c.out, "All Tasks:")
	for _, task := range tasks {
		c.separator()
		c.printTask(task.Number, task)
	}
}

// viewMine lists the current user's tasks by list number and offers to
// open one for editing. -1 (or empty input) returns to the menu.
func (c *CLI) viewMine(ctx context.Context) {
	owned, err := c.services.For(c.user)
	if err != nil {
		c.log.Errorw("load tasks failed", "err", err)
		fmt.Fprintln(c.out, "Could not read tasks:", err)
		return
	}

	c.separator()
	fmt.Fprintln(c.out, "Your tasks:")
	c.separator()
	if len(owned) == 0 {
		fmt.Fprintln(c.out, "No tasks assigned to you.")
		return
	}
	for _, ot := range owned {
		c.printTask(ot.ListNumber, ot.Task)
	}

	selector, ok := c.prompt("\nEnter a task number to open it, or -1 to go back to the main menu: ")
	if !ok || selector == "" || selector == cancelToken {
		return
	}
	n, err := strconv.Atoi(selector)
	if err != nil || n < 1 || n > len(owned) {
		fmt.Fprintln(c.out, "Invalid task number.")
		return
	}

	selected := owned[n-1]
	if !selected.EditableAt(time.Now()) {
		fmt.Fprintln(c.out, "Task completed or overdue, can't be edited.")
		return
	}
	c.editTask(ctx, selected)
}

// editTask shows the edit submenu for one open task.
func (c *CLI) editTask(ctx context.Context, owned models.OwnedTask) {
	c.separator()
	fmt.Fprintln(c.out, "Task details:")
	c.separator()
	c.printTask(owned.ListNumber, owned.Task)

	c.printEditMenu()
	option, ok := c.promptNonEmpty("Please select an option: ")
	if !ok {
		return
	}

	switch option {
	case "u":
		c.reassign(ctx, owned)
	case "d":
		c.reschedule(ctx, owned)
	case "c":
		c.complete(ctx, owned)
	case "e":
		return
	default:
		c.invalidOption()
	}
}

func (c *CLI) reassign(ctx context.Context, owned models.OwnedTask) {
	for {
		newUser, ok := c.promptNonEmpty("Enter the new username (or -1 to cancel): ")
		if !ok || newUser == cancelToken {
			return
		}

		_, err := c.services.Reassign(ctx, owned, newUser, time.Now())
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			fmt.Fprintln(c.out, "User does not exist.")
			continue
		case errors.Is(err, service.ErrTaskLocked):
			fmt.Fprintln(c.out, "Task completed or overdue, can't be edited.")
			return
		case err != nil:
			c.log.Errorw("reassign failed", "err", err)
			fmt.Fprintln(c.out, "Could not update task:", err)
			return
		}

		fmt.Fprintln(c.out, "Username successfully updated.")
		return
	}
}

func (c *CLI) reschedule(ctx context.Context, owned models.OwnedTask) {
	due, ok := c.promptDate("New due date (DD-MM-YYYY): ")
	if !ok {
		return
	}

	_, err := c.services.Reschedule(ctx, owned, due, time.Now())
	switch {
	case errors.Is(err, service.ErrTaskLocked):
		fmt.Fprintln(c.out, "Task completed or overdue, can't be edited.")
	case err != nil:
		c.log.Errorw("reschedule failed", "err", err)
		fmt.Fprintln(c.out, "Could not update task:", err)
	default:
		fmt.Fprintln(c.out, "Due date successfully updated.")
	}
}

func (c *CLI) complete(ctx context.Context, owned models.OwnedTask) {
	confirm, ok := c.prompt("To mark the task as completed enter 'Yes': ")
	if !ok {
		return
	}

	changed, _, err := c.services.Complete(ctx, owned, confirm, time.Now())
	switch {
	case errors.Is(err, service.ErrTaskLocked):
		fmt.Fprintln(c.out, "Task completed or overdue, can't be edited.")
	case err != nil:
		c.log.Errorw("complete failed", "err", err)
		fmt.Fprintln(c.out, "Could not update task:", err)
	case changed:
		fmt.Fprintln(c.out, "Complete status successfully updated.")
	default:
		fmt.Fprintln(c.out, "No change made.")
	}
}

func (c *CLI) printEditMenu() {
	fmt.Fprintln(c.out)
	fmt.Fprintln(c.out, "u  Edit username")
	fmt.Fprintln(c.out, "d  Edit due date")
	fmt.Fprintln(c.out, "c  Complete task")
	fmt.Fprintln(c.out, "e  Back")
}

// printTask renders one task block. number is whichever numbering the
// caller is showing: storage position for the global view, list number
// for a user's own view.
func (c *CLI) printTask(number int, task models.Task) {
	completed := "No"
	if task.Completed {
		completed = "Yes"
	}
	fmt.Fprintf(c.out, "Task number:    %d\n", number)
	fmt.Fprintf(c.out, "Assigned to:    %s\n", task.Username)
	fmt.Fprintf(c.out, "Title:          %s\n", task.Title)
	fmt.Fprintf(c.out, "Description:    %s\n", task.Description)
	fmt.Fprintf(c.out, "Due Date:       %s\n", task.DueDate.Format(models.DateLayout))
	fmt.Fprintf(c.out, "Assigned Date:  %s\n", task.AssignedDate.Format(models.DateLayout))
	fmt.Fprintf(c.out, "Completed:      %s\n\n", completed)
}
