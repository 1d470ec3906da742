package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeExec struct {
	loggedIn bool

	calls []string
	args  [][]string
}

func (f *fakeExec) record(name string) error {
	f.calls = append(f.calls, name)
	return nil
}

func (f *fakeExec) isLoggedIn() bool                 { return f.loggedIn }
func (f *fakeExec) Home(context.Context) error       { return f.record("home") }
func (f *fakeExec) Register(context.Context) error   { return f.record("register") }
func (f *fakeExec) Dashboard(context.Context) error  { return f.record("dashboard") }
func (f *fakeExec) Profile(context.Context) error    { return f.record("profile") }
func (f *fakeExec) Users(context.Context) error      { return f.record("users") }
func (f *fakeExec) Reset(context.Context) error      { return f.record("reset") }
func (f *fakeExec) Forgot(context.Context) error     { return f.record("forgot") }
func (f *fakeExec) Login(ctx context.Context) error  { f.loggedIn = true; return f.record("login") }
func (f *fakeExec) Logout(ctx context.Context) error { f.loggedIn = false; return f.record("logout") }
func (f *fakeExec) Delete(_ context.Context, args []string) error {
	f.args = append(f.args, args)
	return f.record("delete")
}
func (f *fakeExec) Slide(_ context.Context, args []string) error {
	f.args = append(f.args, args)
	return f.record("slide")
}

// captureOutput replaces printlnFn and returns the printed lines.
func captureOutput(t *testing.T) *[]string {
	t.Helper()
	orig := printlnFn
	var lines []string
	printlnFn = func(a ...any) (int, error) {
		lines = append(lines, strings.TrimSuffix(fmt.Sprintln(a...), "\n"))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = orig })
	return &lines
}

func TestRunREPL_LoginFlowAndCommands(t *testing.T) {
	out := captureOutput(t)

	input := strings.Join([]string{
		"help",
		"login",
		"help",
		"",
		"whoami",
		"dashboard",
		"profile",
		"users",
		"delete 42",
		"slide 2",
		"foobar",
		"logout",
		"exit",
		"register",
	}, "\n")

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "status" }, rdr(input))

	assert.Equal(t, []string{"login", "dashboard", "dashboard", "profile", "users", "delete", "slide", "logout"}, exec.calls)
	assert.Equal(t, [][]string{{"42"}, {"2"}}, exec.args)
	assert.Contains(t, *out, "gym status> ")
	assert.Contains(t, *out, "Unknown command: foobar")
	assert.Contains(t, *out, "Bye!")
	assert.Contains(t, (*out)[1], "register", "logged-out help lists register")
	assert.Contains(t, (*out)[4], "logout", "logged-in help lists logout")
	assert.NotContains(t, (*out)[4], "register", "logged-in help hides register")
}

func TestRunREPL_QuitAndEOF(t *testing.T) {
	captureOutput(t)

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "" }, rdr("forgot\nquit\nreset\n"))
	assert.Equal(t, []string{"forgot"}, exec.calls)

	exec = &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "" }, rdr("home\nusers"))
	assert.Equal(t, []string{"home", "users"}, exec.calls, "last line without newline still runs")
}

func TestRunREPL_StopsOnCancelledContext(t *testing.T) {
	captureOutput(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	exec := &fakeExec{}
	runREPL(ctx, exec, func() string { return "" }, rdr("home\n"))
	assert.Empty(t, exec.calls)
}

func TestRunREPL_ReturnsWhenCancelledWhileWaitingForInput(t *testing.T) {
	captureOutput(t)

	pr, pw := io.Pipe()
	t.Cleanup(func() { _ = pw.Close() })

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	prompted := make(chan struct{}, 1)
	status := func() string {
		select {
		case prompted <- struct{}{}:
		default:
		}
		return ""
	}

	exec := &fakeExec{}
	done := make(chan struct{})
	go func() {
		runREPL(ctx, exec, status, bufio.NewReader(pr))
		close(done)
	}()

	select {
	case <-prompted:
	case <-time.After(2 * time.Second):
		t.Fatal("REPL never prompted")
	}
	cancel()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("REPL kept waiting for input after cancellation")
	}
	assert.Empty(t, exec.calls)
}

func TestReadLine(t *testing.T) {
	line, err := readLine(context.Background(), rdr("users\n"))
	assert.NoError(t, err)
	assert.Equal(t, "users\n", line)

	pr, pw := io.Pipe()
	t.Cleanup(func() { _ = pw.Close() })
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err = readLine(ctx, bufio.NewReader(pr))
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
