// Package generate drives the submit-and-render cycle for the three content
// features: blog posts, video scripts and images.
//
// Each feature gets its own controller instance owning that feature's
// last-result buffer. A submit validates its input locally, runs the
// authenticated call behind the shared loading overlay, replaces the buffer
// on success and triggers exactly one usage refresh. Failures leave the
// previous buffer untouched.
package generate

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/prismai/prism-cli/internal/client/models"
	"github.com/prismai/prism-cli/internal/common"
	"github.com/prismai/prism-cli/internal/logging"
)

// Ranges enforced by the interactive input controls. The controllers reject
// out-of-range values but never clamp them.
const (
	MinWordCount     = 200
	MaxWordCount     = 2000
	DefaultWordCount = 800

	MinDuration     = 1
	MaxDuration     = 10
	DefaultDuration = 3

	MinImageCount     = 1
	MaxImageCount     = 4
	DefaultImageCount = 1
)

// API is the slice of the backend client the controllers call.
type API interface {
	GenerateBlog(ctx context.Context, req models.BlogRequest) (*models.BlogResult, error)
	GenerateVideoScript(ctx context.Context, req models.VideoScriptRequest) (*models.VideoScriptResult, error)
	GenerateImages(ctx context.Context, req models.ImageRequest) (*models.ImageResult, error)
}

// Session is the slice of the session manager the controllers need: usage
// refresh after success, and expiry teardown on failure.
type Session interface {
	FetchProfile(ctx context.Context) error
	ObserveError(ctx context.Context, err error) error
}

// Overlay is the blocking loading indicator shown while a call is in flight.
// A single instance is shared by all features, so overlapping requests may
// clear each other's indicator early; that is a UI affordance, not a
// correctness property.
type Overlay interface {
	Show()
	Hide()
}

// runner is the submit cycle shared by the per-feature controllers.
type runner struct {
	session Session
	overlay Overlay
	log     logging.Logger
}

// run wraps one generation call: indicator on, the call, then exactly one
// usage refresh on success. The indicator clears whether the call succeeded
// or not, and the refresh outcome never fails the generation.
func (r *runner) run(ctx context.Context, fn func(ctx context.Context) error) error {
	r.overlay.Show()
	defer r.overlay.Hide()

	if err := fn(ctx); err != nil {
		return r.session.ObserveError(ctx, err)
	}

	if err := r.session.FetchProfile(ctx); err != nil {
		r.log.Warn(ctx, "usage refresh after generation failed", "error", err)
	}
	return nil
}

func validateProduct(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: product name is required", common.ErrValidation)
	}
	return nil
}

func validateRange(what string, v, min, max int) error {
	if v < min || v > max {
		return fmt.Errorf("%w: %s must be between %d and %d", common.ErrValidation, what, min, max)
	}
	return nil
}

// BlogController submits blog generations and keeps the last generated text.
type BlogController struct {
	runner
	api API

	mu   sync.Mutex
	last string
}

func NewBlogController(api API, session Session, overlay Overlay, log logging.Logger) *BlogController {
	return &BlogController{runner: runner{session: session, overlay: overlay, log: log}, api: api}
}

func (c *BlogController) Submit(ctx context.Context, req models.BlogRequest) (string, error) {
	if err := validateProduct(req.ProductName); err != nil {
		return "", err
	}
	if err := validateRange("word count", req.WordCount, MinWordCount, MaxWordCount); err != nil {
		return "", err
	}

	var res *models.BlogResult
	err := c.run(ctx, func(ctx context.Context) error {
		var callErr error
		res, callErr = c.api.GenerateBlog(ctx, req)
		return callErr
	})
	if err != nil {
		return "", err
	}

	c.mu.Lock()
	c.last = res.GeneratedBlog
	c.mu.Unlock()
	return res.GeneratedBlog, nil
}

// Last returns the buffered text of the most recent successful generation.
func (c *BlogController) Last() (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.last, c.last != ""
}

// VideoController submits video-script generations.
type VideoController struct {
	runner
	api API

	mu   sync.Mutex
	last string
}

func NewVideoController(api API, session Session, overlay Overlay, log logging.Logger) *VideoController {
	return &VideoController{runner: runner{session: session, overlay: overlay, log: log}, api: api}
}

func (c *VideoController) Submit(ctx context.Context, req models.VideoScriptRequest) (string, error) {
	if err := validateProduct(req.ProductName); err != nil {
		return "", err
	}
	if err := validateRange("duration", req.Duration, MinDuration, MaxDuration); err != nil {
		return "", err
	}

	var res *models.VideoScriptResult
	err := c.run(ctx, func(ctx context.Context) error {
		var callErr error
		res, callErr = c.api.GenerateVideoScript(ctx, req)
		return callErr
	})
	if err != nil {
		return "", err
	}

	c.mu.Lock()
	c.last = res.GeneratedScript
	c.mu.Unlock()
	return res.GeneratedScript, nil
}

func (c *VideoController) Last() (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.last, c.last != ""
}

// ImageController submits image generations. Its buffer keeps the (url,
// filename) pairs in backend order plus the literal prompt used, both needed
// for the download-all action and the prompt display.
type ImageController struct {
	runner
	api API

	mu     sync.Mutex
	images []models.Image
	prompt string
}

func NewImageController(api API, session Session, overlay Overlay, log logging.Logger) *ImageController {
	return &ImageController{runner: runner{session: session, overlay: overlay, log: log}, api: api}
}

func (c *ImageController) Submit(ctx context.Context, req models.ImageRequest) (*models.ImageResult, error) {
	if err := validateProduct(req.ProductName); err != nil {
		return nil, err
	}
	if err := validateRange("image count", req.N, MinImageCount, MaxImageCount); err != nil {
		return nil, err
	}

	var res *models.ImageResult
	err := c.run(ctx, func(ctx context.Context) error {
		var callErr error
		res, callErr = c.api.GenerateImages(ctx, req)
		return callErr
	})
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.images = res.Images
	c.prompt = res.ImagePrompt
	c.mu.Unlock()
	return res, nil
}

// Last returns the buffered image list (backend order) and prompt.
func (c *ImageController) Last() ([]models.Image, string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.images, c.prompt, len(c.images) > 0
}
