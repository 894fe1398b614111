package cli

import (
	"context"
	"errors"

	"github.com/prismai/prism-cli/internal/client/views"
	"github.com/prismai/prism-cli/internal/common"
)

// toast prints a short one-line notification. Every user-visible outcome of a
// command, success or failure, goes through here or printlnFn.
func (a *App) toast(msg string) {
	printlnFn("* " + msg)
}

// reportError translates an error into the toast the user sees. Commands call
// it instead of printing raw errors so the wording stays uniform. The error
// is also handed to the session manager, so an expiry signal tears the
// session down no matter which command hit it.
func (a *App) reportError(ctx context.Context, err error) {
	_ = a.session.ObserveError(ctx, err)

	switch {
	case errors.Is(err, common.ErrUnreachable):
		a.toast("Service unavailable, please try again later")
	case errors.Is(err, common.ErrSessionExpired):
		a.toast("Session expired, please login again")
		a.router.Switch(views.TabLogin)
	case errors.Is(err, common.ErrValidation), errors.Is(err, common.ErrForbidden):
		a.toast(err.Error())
	default:
		a.toast("Request failed: " + err.Error())
	}
}

// textOverlay is the terminal stand-in for a blocking loading indicator.
type textOverlay struct{}

func (o *textOverlay) Show() { printlnFn("Generating, please wait...") }
func (o *textOverlay) Hide() {}
