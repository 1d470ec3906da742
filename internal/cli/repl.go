package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Home(ctx context.Context) error
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Dashboard(ctx context.Context) error
	Profile(ctx context.Context) error
	Users(ctx context.Context) error
	Delete(ctx context.Context, args []string) error
	Reset(ctx context.Context) error
	Slide(ctx context.Context, args []string) error
	Forgot(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the gym front end.
//
// It reads a line from reader, parses the first token as the command, and
// dispatches to methods on 'a'. Unknown commands are reported back to the
// user. The loop exits on EOF, when the user types "exit" or "quit", or as
// soon as ctx is cancelled, even while waiting for input.
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Always:
//	  - help                    — show available commands
//	  - home                    — redraw the home page
//	  - users                   — list all members
//	  - delete <id>             — delete a member
//	  - reset                   — wipe all stored data
//	  - slide <n|pause|resume>  — control the promo carousel
//	  - exit | quit             — leave the program
//
//	Not logged in:
//	  - register  — create an account
//	  - login     — authenticate
//	  - forgot    — password recovery
//
//	Logged in:
//	  - dashboard | whoami  — show the member profile
//	  - profile             — edit the member profile
//	  - logout              — log out
//
// Any errors returned by command handlers are ignored here; handlers should
// log their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for ctx.Err() == nil {
		printlnFn(fmt.Sprintf("gym %s> ", statusFn()))

		line, err := readLine(ctx, reader)
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}
		eof := err != nil

		parts := strings.Fields(line)
		if len(parts) > 0 && dispatch(ctx, a, parts[0], parts[1:]) {
			return
		}
		if eof {
			return
		}
	}
}

type lineResult struct {
	line string
	err  error
}

// readLine reads one line from reader but stops waiting once ctx is done,
// so an interrupt does not hang on a blocked terminal read. The abandoned
// read finishes in the background.
func readLine(ctx context.Context, reader *bufio.Reader) (string, error) {
	ch := make(chan lineResult, 1)
	go func() {
		line, err := reader.ReadString('\n')
		ch <- lineResult{line: line, err: err}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-ch:
		return r.line, r.err
	}
}

// dispatch runs one command and reports whether the loop should stop.
func dispatch(ctx context.Context, a execIface, cmd string, args []string) bool {
	switch cmd {
	case "help":
		if a.isLoggedIn() {
			printlnFn("Available commands: home, dashboard, profile, users, delete <id>, reset, slide <n|pause|resume>, logout, exit")
		} else {
			printlnFn("Available commands: home, register, login, forgot, users, delete <id>, reset, slide <n|pause|resume>, exit")
		}

	case "home":
		_ = a.Home(ctx)

	case "register":
		_ = a.Register(ctx)

	case "login":
		_ = a.Login(ctx)

	case "logout":
		_ = a.Logout(ctx)

	case "dashboard", "whoami":
		_ = a.Dashboard(ctx)

	case "profile":
		_ = a.Profile(ctx)

	case "users":
		_ = a.Users(ctx)

	case "delete":
		_ = a.Delete(ctx, args)

	case "reset":
		_ = a.Reset(ctx)

	case "slide":
		_ = a.Slide(ctx, args)

	case "forgot":
		_ = a.Forgot(ctx)

	case "exit", "quit":
		printlnFn("Bye!")
		return true

	default:
		printlnFn("Unknown command:", cmd)
	}
	return false
}
