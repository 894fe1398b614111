package cli

import (
	"context"
	"strings"

	"github.com/prismai/prism-cli/internal/client/models"
)

// fakeClient is a stub backend used by command tests that reach the API
// directly (admin subcommands, URL resolution, health probe).
type fakeClient struct {
	baseURL string

	pingErr error

	stats    *models.AdminStats
	statsErr error
	users    []models.AdminUser
	usersErr error

	updatedID  string
	updated    models.UserUpdate
	updateErr  error
	statsCalls int
}

func (f *fakeClient) Login(context.Context, string, string) (*models.TokenPair, error) {
	return nil, nil
}

func (f *fakeClient) Register(context.Context, string, string, string) (*models.TokenPair, error) {
	return nil, nil
}

func (f *fakeClient) Profile(context.Context) (*models.Profile, error) { return nil, nil }

func (f *fakeClient) GenerateBlog(context.Context, models.BlogRequest) (*models.BlogResult, error) {
	return nil, nil
}

func (f *fakeClient) GenerateVideoScript(context.Context, models.VideoScriptRequest) (*models.VideoScriptResult, error) {
	return nil, nil
}

func (f *fakeClient) GenerateImages(context.Context, models.ImageRequest) (*models.ImageResult, error) {
	return nil, nil
}

func (f *fakeClient) Ping(context.Context) error { return f.pingErr }

func (f *fakeClient) AdminStats(context.Context) (*models.AdminStats, error) {
	f.statsCalls++
	return f.stats, f.statsErr
}

func (f *fakeClient) AdminUsers(context.Context) ([]models.AdminUser, error) {
	return f.users, f.usersErr
}

func (f *fakeClient) AdminUpdateUser(_ context.Context, id string, upd models.UserUpdate) error {
	f.updatedID, f.updated = id, upd
	return f.updateErr
}

func (f *fakeClient) SetTokens(string, string) {}
func (f *fakeClient) ClearTokens()             {}

func (f *fakeClient) ResolveURL(path string) string {
	if strings.HasPrefix(path, "http") {
		return path
	}
	return f.baseURL + path
}
