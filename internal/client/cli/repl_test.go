package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"
)

type fakeExec struct {
	loggedIn bool

	calls []string
	args  []string
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }
func (f *fakeExec) Register(ctx context.Context) error {
	f.calls = append(f.calls, "register")
	return nil
}
func (f *fakeExec) Login(ctx context.Context) error {
	f.calls = append(f.calls, "login")
	f.loggedIn = true
	return nil
}
func (f *fakeExec) Logout(ctx context.Context) error {
	f.calls = append(f.calls, "logout")
	f.loggedIn = false
	return nil
}
func (f *fakeExec) Whoami(ctx context.Context) error {
	f.calls = append(f.calls, "whoami")
	return nil
}
func (f *fakeExec) UsageReport(ctx context.Context) error {
	f.calls = append(f.calls, "usage")
	return nil
}
func (f *fakeExec) Blog(ctx context.Context) error { f.calls = append(f.calls, "blog"); return nil }
func (f *fakeExec) Video(ctx context.Context) error {
	f.calls = append(f.calls, "video")
	return nil
}
func (f *fakeExec) Image(ctx context.Context) error {
	f.calls = append(f.calls, "image")
	return nil
}
func (f *fakeExec) ShowImages(ctx context.Context) error {
	f.calls = append(f.calls, "images")
	return nil
}
func (f *fakeExec) Copy(ctx context.Context, args []string) error {
	f.calls = append(f.calls, "copy")
	f.args = args
	return nil
}
func (f *fakeExec) Download(ctx context.Context, args []string) error {
	f.calls = append(f.calls, "download")
	f.args = args
	return nil
}
func (f *fakeExec) Admin(ctx context.Context, args []string) error {
	f.calls = append(f.calls, "admin")
	f.args = args
	return nil
}
func (f *fakeExec) Tab(ctx context.Context, args []string) error {
	f.calls = append(f.calls, "tab")
	f.args = args
	return nil
}
func (f *fakeExec) Status(ctx context.Context) error {
	f.calls = append(f.calls, "status")
	return nil
}

func silencePrintln(t *testing.T) {
	t.Helper()
	orig := printlnFn
	printlnFn = func(...any) {}
	t.Cleanup(func() { printlnFn = orig })
}

func TestRunREPL_LoginFlowAndCommands(t *testing.T) {
	silencePrintln(t)

	input := strings.NewReader(strings.Join([]string{
		"help",
		"login",
		"help",
		"blog",
		"video",
		"image",
		"copy blog",
		"usage",
		"foobar",
		"exit",
	}, "\n"))

	exec := &fakeExec{loggedIn: false}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "status" }, sc)

	wantOrder := []string{"login", "blog", "video", "image", "copy", "usage"}
	if len(exec.calls) < len(wantOrder) {
		t.Fatalf("few calls: %+v", exec.calls)
	}
	idx := 0
	for _, c := range exec.calls {
		if idx < len(wantOrder) && c == wantOrder[idx] {
			idx++
		}
	}
	if idx != len(wantOrder) {
		t.Fatalf("commands order mismatch: got %v, want subseq %v", exec.calls, wantOrder)
	}
}

func TestRunREPL_ArgsPassedToSubcommands(t *testing.T) {
	silencePrintln(t)

	input := strings.NewReader("admin stats\nquit\n")
	exec := &fakeExec{loggedIn: true}

	runREPL(context.Background(), exec, func() string { return "" }, bufio.NewScanner(input))

	if len(exec.calls) != 1 || exec.calls[0] != "admin" {
		t.Fatalf("unexpected calls: %v", exec.calls)
	}
	if len(exec.args) != 1 || exec.args[0] != "stats" {
		t.Fatalf("unexpected args: %v", exec.args)
	}
}

func TestRunREPL_HelpListsEveryDispatchedCommand(t *testing.T) {
	out := captureOutput(t)

	input := strings.NewReader("help\nexit\n")
	exec := &fakeExec{loggedIn: true}

	runREPL(context.Background(), exec, func() string { return "" }, bufio.NewScanner(input))

	joined := strings.Join(*out, "\n")
	for _, cmd := range []string{"blog", "video", "image", "copy", "download", "whoami", "usage", "admin", "tab", "status", "logout"} {
		if !strings.Contains(joined, cmd) {
			t.Fatalf("help output missing %q: %s", cmd, joined)
		}
	}
}

func TestRunREPL_EmptyLinesAndEOF(t *testing.T) {
	silencePrintln(t)

	input := strings.NewReader("\n\n")
	exec := &fakeExec{}

	runREPL(context.Background(), exec, func() string { return "" }, bufio.NewScanner(input))

	if len(exec.calls) != 0 {
		t.Fatalf("unexpected calls: %v", exec.calls)
	}
}
