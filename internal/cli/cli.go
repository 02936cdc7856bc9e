// Package cli is the interactive console session: a thin presentation
// layer over the service layer. It owns prompting and rendering only;
// all rules live in the services.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"task_tracker/internal/logger"
	"task_tracker/internal/models"
	"task_tracker/internal/service"
)

const (
	adminUser   = "admin"
	cancelToken = "-1"
)

// CLI drives one login session over an injected reader/writer pair,
// which keeps the whole loop testable without a terminal.
type CLI struct {
	services *service.Service
	log      *logger.Logger
	in       *bufio.Scanner
	out      io.Writer

	user string // set after successful login
}

func New(services *service.Service, log *logger.Logger, in io.Reader, out io.Writer) *CLI {
	return &CLI{
		services: services,
		log:      log,
		in:       bufio.NewScanner(in),
		out:      out,
	}
}

// Run performs login and then serves the menu until exit or EOF.
// A failed login ends the session; there is no retry inside a run.
func (c *CLI) Run(ctx context.Context) error {
	user, ok := c.login(ctx)
	if !ok {
		return nil
	}
	c.user = user
	c.menuLoop(ctx)
	return nil
}

func (c *CLI) menuLoop(ctx context.Context) {
	for {
		c.printMenu()
		option, ok := c.promptNonEmpty("Select an option from the main menu: ")
		if !ok {
			return
		}

		switch strings.ToLower(option) {
		case "r":
			c.register(ctx)
		case "a":
			c.addTask(ctx)
		case "va":
			c.viewAll()
		case "vm":
			c.viewMine(ctx)
		case "gr":
			if c.user != adminUser {
				c.invalidOption()
				continue
			}
			c.generateReports(ctx)
		case "ds":
			if c.user != adminUser {
				c.invalidOption()
				continue
			}
			c.displayStats()
		case "e":
			fmt.Fprintln(c.out, "Goodbye!")
			return
		default:
			c.invalidOption()
		}
	}
}

func (c *CLI) printMenu() {
	rows := [][2]string{
		{"r", "Register a user"},
		{"a", "Add a task"},
		{"va", "View all tasks"},
		{"vm", "View my tasks"},
	}
	if c.user == adminUser {
		rows = append(rows,
			[2]string{"gr", "Generate reports"},
			[2]string{"ds", "Display statistics"},
		)
	}
	rows = append(rows, [2]string{"e", "Exit"})

	fmt.Fprintln(c.out)
	tw := tabwriter.NewWriter(c.out, 0, 8, 2, ' ', 0)
	fmt.Fprintln(tw, "Option\tDescription")
	for _, row := range rows {
		fmt.Fprintf(tw, "%s\t%s\n", row[0], row[1])
	}
	tw.Flush()
}

func (c *CLI) invalidOption() {
	fmt.Fprintln(c.out, "Invalid option.")
}

func (c *CLI) separator() {
	fmt.Fprintln(c.out, strings.Repeat("*-", 30))
}

// prompt reads one line. ok is false when input is exhausted.
func (c *CLI) prompt(label string) (string, bool) {
	fmt.Fprint(c.out, label)
	if !c.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(c.in.Text()), true
}

// promptNonEmpty re-prompts until a non-empty line arrives or input ends.
func (c *CLI) promptNonEmpty(label string) (string, bool) {
	for {
		value, ok := c.prompt(label)
		if !ok {
			return "", false
		}
		if value != "" {
			return value, true
		}
		fmt.Fprintln(c.out, "Please enter a value.")
	}
}

// promptDate re-prompts until a valid DD-MM-YYYY date arrives; the
// cancel token or end of input abort with ok=false.
func (c *CLI) promptDate(label string) (time.Time, bool) {
	for {
		value, ok := c.promptNonEmpty(label)
		if !ok || value == cancelToken {
			return time.Time{}, false
		}
		due, err := time.Parse(models.DateLayout, value)
		if err != nil {
			fmt.Fprintln(c.out, "Invalid date format. Please enter the date in the format DD-MM-YYYY.")
			continue
		}
		return due, true
	}
}
