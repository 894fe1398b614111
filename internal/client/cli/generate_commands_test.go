package cli

import (
	"bufio"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/prismai/prism-cli/internal/client/models"
	"github.com/prismai/prism-cli/internal/client/views"
)

type fakeBlog struct {
	req     models.BlogRequest
	calls   int
	text    string
	err     error
	hasLast bool
}

func (f *fakeBlog) Submit(_ context.Context, req models.BlogRequest) (string, error) {
	f.calls++
	f.req = req
	if f.err != nil {
		return "", f.err
	}
	f.hasLast = true
	return f.text, nil
}

func (f *fakeBlog) Last() (string, bool) { return f.text, f.hasLast }

type fakeVideo struct {
	req     models.VideoScriptRequest
	calls   int
	text    string
	hasLast bool
}

func (f *fakeVideo) Submit(_ context.Context, req models.VideoScriptRequest) (string, error) {
	f.calls++
	f.req = req
	f.hasLast = true
	return f.text, nil
}

func (f *fakeVideo) Last() (string, bool) { return f.text, f.hasLast }

type fakeImage struct {
	req    models.ImageRequest
	calls  int
	result *models.ImageResult
}

func (f *fakeImage) Submit(_ context.Context, req models.ImageRequest) (*models.ImageResult, error) {
	f.calls++
	f.req = req
	return f.result, nil
}

func (f *fakeImage) Last() ([]models.Image, string, bool) {
	if f.result == nil {
		return nil, "", false
	}
	return f.result.Images, f.result.ImagePrompt, true
}

func TestBlog_AnonymousRedirectsWithoutCall(t *testing.T) {
	out := captureOutput(t)
	a := newTestApp(&fakeSess{})
	blog := &fakeBlog{}
	a.blog = blog

	if err := a.Blog(context.Background()); err != nil {
		t.Fatalf("Blog err: %v", err)
	}

	if blog.calls != 0 {
		t.Fatal("submit must not run while anonymous")
	}
	if a.router.Active() != views.TabLogin {
		t.Fatalf("want redirect to login, got %s", a.router.Active())
	}
	if !strings.Contains(strings.Join(*out, "\n"), "Please login to generate content") {
		t.Fatalf("missing gate toast: %v", *out)
	}
}

func TestBlog_SubmitsWithDefaults(t *testing.T) {
	out := captureOutput(t)
	sess := &fakeSess{
		authenticated: true,
		usage:         &models.Usage{BlogsGenerated: 3, BlogsLimit: models.Limit{N: 10}},
	}
	a := newTestApp(sess)
	blog := &fakeBlog{text: "## Launch post"}
	a.blog = blog
	stubInputs(t, []string{"SuperWidget", ""}, nil)
	stubIntInput(t, -1)

	if err := a.Blog(context.Background()); err != nil {
		t.Fatalf("Blog err: %v", err)
	}

	want := models.BlogRequest{ProductName: "SuperWidget", Tone: "professional", WordCount: 800}
	if blog.req != want {
		t.Fatalf("request mismatch: %+v", blog.req)
	}
	joined := strings.Join(*out, "\n")
	if !strings.Contains(joined, "## Launch post") {
		t.Fatalf("generated text not printed: %s", joined)
	}
	if !strings.Contains(joined, "Used: 3 / 10") {
		t.Fatalf("usage line not printed: %s", joined)
	}
}

func TestVideo_SubmitsToneAndDuration(t *testing.T) {
	captureOutput(t)
	a := newTestApp(&fakeSess{authenticated: true})
	video := &fakeVideo{text: "SCENE 1"}
	a.video = video
	stubInputs(t, []string{"SuperWidget", "casual"}, nil)
	stubIntInput(t, 5)

	if err := a.Video(context.Background()); err != nil {
		t.Fatalf("Video err: %v", err)
	}

	want := models.VideoScriptRequest{ProductName: "SuperWidget", Tone: "casual", Duration: 5}
	if video.req != want {
		t.Fatalf("request mismatch: %+v", video.req)
	}
}

func TestImage_PrintsPromptAndURLsInOrder(t *testing.T) {
	out := captureOutput(t)
	a := newTestApp(&fakeSess{authenticated: true})
	a.api = &fakeClient{baseURL: "http://api.test"}
	img := &fakeImage{result: &models.ImageResult{
		ImagePrompt: "a widget on a desk",
		Images: []models.Image{
			{ImageURL: "/static/img-1.png", Filename: "img-1.png"},
			{ImageURL: "/static/img-2.png", Filename: "img-2.png"},
		},
	}}
	a.image = img
	stubInputs(t, []string{"SuperWidget", "", ""}, nil)
	stubIntInput(t, 2)

	if err := a.Image(context.Background()); err != nil {
		t.Fatalf("Image err: %v", err)
	}

	joined := strings.Join(*out, "\n")
	first := strings.Index(joined, "img-1.png")
	second := strings.Index(joined, "img-2.png")
	if first < 0 || second < 0 || second < first {
		t.Fatalf("urls missing or out of order: %s", joined)
	}
	if !strings.Contains(joined, "a widget on a desk") {
		t.Fatalf("prompt not printed: %s", joined)
	}
	want := models.ImageRequest{ProductName: "SuperWidget", Style: "realistic", Platform: "instagram", N: 2}
	if img.req != want {
		t.Fatalf("request mismatch: %+v", img.req)
	}
}

// stubIntInput makes getInt return v, or the handler's default when v < 0.
func stubIntInput(t *testing.T, v int) {
	t.Helper()
	orig := getInt
	getInt = func(_ *bufio.Reader, _ string, def, _, _ int, _ io.Writer) (int, error) {
		if v < 0 {
			return def, nil
		}
		return v, nil
	}
	t.Cleanup(func() { getInt = orig })
}
