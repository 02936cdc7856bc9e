package cli

import (
	"context"
	"errors"
	"fmt"

	"task_tracker/internal/service"
)

// login prompts for credentials once. Either failure outcome ends the
// session; the two are shown with the same vagueness on purpose.
func (c *CLI) login(ctx context.Context) (string, bool) {
	fmt.Fprintln(c.out)
	c.separator()
	fmt.Fprintln(c.out, "Please LOGIN")
	c.separator()

	username, ok := c.promptNonEmpty("Username: ")
	if !ok {
		return "", false
	}
	password, ok := c.promptNonEmpty("Password: ")
	if !ok {
		return "", false
	}

	err := c.services.Login(ctx, username, password)
	switch {
	case errors.Is(err, service.ErrUserNotFound), errors.Is(err, service.ErrInvalidPassword):
		fmt.Fprintln(c.out, "User doesn't exist or incorrect password.")
		fmt.Fprintln(c.out, "Verify your data and try again.")
		return "", false
	case err != nil:
		c.log.Errorw("login failed", "err", err)
		fmt.Fprintln(c.out, "Login error:", err)
		return "", false
	}

	fmt.Fprintln(c.out, "\nSuccessful login!")
	return username, true
}

// register prompts for a new user. An already-taken username re-prompts;
// -1 cancels.
func (c *CLI) register(ctx context.Context) {
	for {
		username, ok := c.promptNonEmpty("New Username (or -1 to cancel): ")
		if !ok || username == cancelToken {
			return
		}
		password, ok := c.promptNonEmpty("New Password: ")
		if !ok {
			return
		}
		confirm, ok := c.promptNonEmpty("Confirm Password: ")
		if !ok {
			return
		}
		if password != confirm {
			fmt.Fprintln(c.out, "Passwords do not match. No user added.")
			return
		}

		err := c.services.Register(ctx, username, password)
		switch {
		case errors.Is(err, service.ErrUserExists):
			fmt.Fprintln(c.out, "User already exists.")
			continue
		case err != nil:
			c.log.Errorw("register failed", "username", username, "err", err)
			fmt.Fprintln(c.out, "Could not register user:", err)
			return
		}

		fmt.Fprintln(c.out, "New user added successfully!")
		return
	}
}
