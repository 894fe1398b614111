package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = func(a ...any) { fmt.Println(a...) }

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Whoami(ctx context.Context) error
	UsageReport(ctx context.Context) error
	Blog(ctx context.Context) error
	Video(ctx context.Context) error
	Image(ctx context.Context) error
	ShowImages(ctx context.Context) error
	Copy(ctx context.Context, args []string) error
	Download(ctx context.Context, args []string) error
	Admin(ctx context.Context, args []string) error
	Tab(ctx context.Context, args []string) error
	Status(ctx context.Context) error
}

// runREPL starts a simple read-eval-print loop for the Prism CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Not logged in:
//	  - help           — show available commands
//	  - register       — create an account
//	  - login          — authenticate
//	  - status         — show connectivity and server address
//	  - exit | quit    — leave the program
//
//	Logged in:
//	  - help           — show available commands
//	  - blog           — generate a blog post
//	  - video          — generate a video script
//	  - image          — generate product images
//	  - images         — reprint the last image batch
//	  - copy <what>    — copy the last blog or video script to the clipboard
//	  - download <what>— save the last blog, video script or images to disk
//	  - whoami         — show the signed-in profile
//	  - usage          — show per-feature usage counters
//	  - admin <cmd>    — platform administration (admins only)
//	  - tab <name>     — switch the active tab without running a command
//	  - status         — show connectivity and server address
//	  - logout         — log out
//	  - exit | quit    — leave the program
//
// Any errors returned by command handlers are ignored here; handlers report
// their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("prism %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: blog, video, image, images, copy, download, whoami, usage, admin, tab, status, logout, exit")
			} else {
				printlnFn("Available commands: register, login, status, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "whoami":
			_ = a.Whoami(ctx)

		case "usage":
			_ = a.UsageReport(ctx)

		case "blog":
			_ = a.Blog(ctx)

		case "video":
			_ = a.Video(ctx)

		case "image":
			_ = a.Image(ctx)

		case "images":
			_ = a.ShowImages(ctx)

		case "copy":
			_ = a.Copy(ctx, args)

		case "download":
			_ = a.Download(ctx, args)

		case "admin":
			_ = a.Admin(ctx, args)

		case "tab":
			_ = a.Tab(ctx, args)

		case "status":
			_ = a.Status(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
