package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/prismai/prism-cli/internal/client/models"
	"github.com/prismai/prism-cli/internal/client/views"
	"github.com/prismai/prism-cli/internal/common"
)

// Admin dispatches the platform-administration subcommands: "admin stats",
// "admin users" and "admin update". The router gates entry client-side; the
// backend enforces the role again, and a 403 slipping through (role revoked
// mid-session) redirects back to the blog tab.
func (a *App) Admin(ctx context.Context, args []string) error {
	if a.router.Switch(views.TabAdmin) != views.TabAdmin {
		return nil
	}

	if len(args) == 0 {
		printlnFn("Usage: admin <stats|users|update>")
		return nil
	}

	var err error
	switch args[0] {
	case "stats":
		err = a.adminStats(ctx)
	case "users":
		err = a.adminUsers(ctx)
	case "update":
		err = a.adminUpdate(ctx)
	default:
		printlnFn("Usage: admin <stats|users|update>")
		return nil
	}

	if err != nil {
		if errors.Is(err, common.ErrForbidden) {
			a.toast("Access denied: admin privileges required")
			a.router.Switch(views.TabBlog)
			return err
		}
		a.reportError(ctx, err)
	}
	return err
}

func (a *App) adminStats(ctx context.Context) error {
	stats, err := a.api.AdminStats(ctx)
	if err != nil {
		return err
	}
	printlnFn(fmt.Sprintf("Users: %d", stats.TotalUsers))
	printlnFn(fmt.Sprintf("Blog posts: %d", stats.TotalBlogs))
	printlnFn(fmt.Sprintf("Video scripts: %d", stats.TotalVideos))
	printlnFn(fmt.Sprintf("Images: %d", stats.TotalImages))
	return nil
}

func (a *App) adminUsers(ctx context.Context) error {
	users, err := a.api.AdminUsers(ctx)
	if err != nil {
		return err
	}
	for _, u := range users {
		active := "active"
		if !u.IsActive {
			active = "disabled"
		}
		printlnFn(fmt.Sprintf("%s  %s  %s/%s  %s", u.ID, u.Email, u.Role, u.Tier, active))
	}
	return nil
}

func (a *App) adminUpdate(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "User id", os.Stdout)
	if err != nil {
		return err
	}

	tier, err := getTextWithDefault(a.reader, "Tier (free|pro|business)", string(models.TierFree), os.Stdout)
	if err != nil {
		return err
	}
	switch models.Tier(tier) {
	case models.TierFree, models.TierPro, models.TierBusiness:
	default:
		a.toast("Invalid tier: " + tier)
		return fmt.Errorf("%w: invalid tier %q", common.ErrValidation, tier)
	}

	role, err := getTextWithDefault(a.reader, "Role (user|admin)", string(models.RoleUser), os.Stdout)
	if err != nil {
		return err
	}
	switch models.Role(role) {
	case models.RoleUser, models.RoleAdmin:
	default:
		a.toast("Invalid role: " + role)
		return fmt.Errorf("%w: invalid role %q", common.ErrValidation, role)
	}

	active, err := getTextWithDefault(a.reader, "Active (y|n)", "y", os.Stdout)
	if err != nil {
		return err
	}

	upd := models.UserUpdate{
		Tier:     models.Tier(tier),
		Role:     models.Role(role),
		IsActive: active != "n",
	}
	if err := a.api.AdminUpdateUser(ctx, id, upd); err != nil {
		return err
	}

	a.toast("User updated")
	return nil
}
