package cli

import (
	"context"
	"os"

	"github.com/prismai/prism-cli/internal/client/views"
	"github.com/prismai/prism-cli/internal/common"
)

// getSimpleText, getTextWithDefault, getInt and getPassword are indirections
// used to facilitate testing. They point to interactive input helpers and can
// be swapped in tests.
var (
	getSimpleText      = GetSimpleText
	getTextWithDefault = GetTextWithDefault
	getInt             = GetInt
	getPassword        = GetPassword
)

// Register prompts for a name, email and password and attempts to create an
// account. A successful registration signs the user in immediately and lands
// on the blog tab. The password byte slice is wiped before returning.
func (a *App) Register(ctx context.Context) error {
	a.router.Switch(views.TabRegister)

	name, err := getSimpleText(a.reader, "Enter name", os.Stdout)
	if err != nil {
		return err
	}

	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.session.Register(ctx, name, email, string(password)); err != nil {
		a.reportError(ctx, err)
		return err
	}

	a.toast("Account created, you are signed in")
	a.router.Switch(views.TabBlog)
	return nil
}

// Login prompts for credentials and authenticates. On success the user lands
// on the blog tab; on failure the backend message is shown and the state is
// unchanged. The password byte slice is wiped before returning.
func (a *App) Login(ctx context.Context) error {
	a.router.Switch(views.TabLogin)

	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.session.Login(ctx, email, string(password)); err != nil {
		a.reportError(ctx, err)
		return err
	}

	a.toast("Welcome back!")
	a.router.Switch(views.TabBlog)
	return nil
}

// Logout drops the stored tokens and the in-memory profile. Works the same
// online and offline since nothing is sent to the server.
func (a *App) Logout(ctx context.Context) error {
	a.session.Logout(ctx)
	a.toast("Logged out")
	a.router.Switch(views.TabLogin)
	return nil
}

// Whoami prints the signed-in profile.
func (a *App) Whoami(ctx context.Context) error {
	u := a.session.User()
	if u == nil {
		printlnFn("Not logged in")
		return nil
	}
	printlnFn("Name: " + u.Name)
	printlnFn("Email: " + u.Email)
	printlnFn("Role: " + string(u.Role))
	printlnFn("Tier: " + string(u.Tier))
	return nil
}

// UsageReport prints the per-feature usage counters from the last profile
// fetch.
func (a *App) UsageReport(ctx context.Context) error {
	u := a.session.Usage()
	if u == nil {
		printlnFn("Not logged in")
		return nil
	}
	printlnFn("Blog posts:    " + u.Line("blog"))
	printlnFn("Video scripts: " + u.Line("video"))
	printlnFn("Images:        " + u.Line("image"))
	if u.Watermark {
		printlnFn("Images carry a watermark on your tier")
	}
	return nil
}

// Tab switches the active tab by name, subject to the router's gating.
func (a *App) Tab(ctx context.Context, args []string) error {
	if len(args) == 0 {
		printlnFn("Usage: tab <login|register|blog|video|image|admin>")
		return nil
	}

	switch tab := views.Tab(args[0]); tab {
	case views.TabLogin, views.TabRegister, views.TabBlog, views.TabVideo, views.TabImage, views.TabAdmin:
		printlnFn("Active tab: " + string(a.router.Switch(tab)))
	default:
		printlnFn("Unknown tab:", args[0])
	}
	return nil
}

// Status prints connectivity and the configured server address.
func (a *App) Status(ctx context.Context) error {
	mode := a.currentMode()
	if mode == "" {
		if err := a.api.Ping(ctx); err != nil {
			mode = ModeOffline
		} else {
			mode = ModeOnline
		}
	}
	printlnFn("Server: " + a.config.ServerBaseURL)
	printlnFn("Status: " + string(mode))
	return nil
}
