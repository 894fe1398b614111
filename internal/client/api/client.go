// Package api implements the HTTP client for the Prism backend.
//
// The client owns nothing but the wire: it attaches the bearer token,
// classifies failures into the shared error taxonomy, and decodes JSON
// bodies. Session state lives in the session manager, which is also the only
// component allowed to change the tokens held here.
package api

import (
	"context"

	"github.com/prismai/prism-cli/internal/client/models"
)

// Client is the backend surface the rest of the client programs against.
type Client interface {
	// Login exchanges credentials for a token pair. The request is
	// form-encoded (username=email) and carries no Authorization header.
	Login(ctx context.Context, email, password string) (*models.TokenPair, error)

	// Register creates an account and returns a token pair. JSON body,
	// no Authorization header.
	Register(ctx context.Context, name, email, password string) (*models.TokenPair, error)

	// Profile fetches the combined user + usage snapshot. Authenticated.
	Profile(ctx context.Context) (*models.Profile, error)

	GenerateBlog(ctx context.Context, req models.BlogRequest) (*models.BlogResult, error)
	GenerateVideoScript(ctx context.Context, req models.VideoScriptRequest) (*models.VideoScriptResult, error)
	GenerateImages(ctx context.Context, req models.ImageRequest) (*models.ImageResult, error)

	// Ping probes GET /health with a fixed short timeout. Purely advisory.
	Ping(ctx context.Context) error

	// Admin endpoints; non-admin callers receive common.ErrForbidden.
	AdminStats(ctx context.Context) (*models.AdminStats, error)
	AdminUsers(ctx context.Context) ([]models.AdminUser, error)
	AdminUpdateUser(ctx context.Context, id string, upd models.UserUpdate) error

	// SetTokens installs the pair used for the Authorization header.
	// Called by the session manager only.
	SetTokens(access, refresh string)

	// ClearTokens drops the pair. Called by the session manager only.
	ClearTokens()

	// ResolveURL turns a backend-relative path (such as an image URL) into
	// an absolute URL.
	ResolveURL(path string) string
}
