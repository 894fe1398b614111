package cli

import (
	"context"
	"path/filepath"

	"github.com/atotto/clipboard"
	"github.com/prismai/prism-cli/internal/filex"
	"github.com/prismai/prism-cli/internal/netx"
)

// Filenames used when saving generated text locally.
const (
	downloadDir   = "downloads"
	blogFilename  = "prism-blog.txt"
	videoFilename = "prism-video-script.txt"
)

// copyFn is a test seam for the system clipboard.
var copyFn = clipboard.WriteAll

// Copy places the last generated blog post or video script on the system
// clipboard: "copy blog" or "copy video".
func (a *App) Copy(ctx context.Context, args []string) error {
	if len(args) == 0 {
		printlnFn("Usage: copy <blog|video>")
		return nil
	}

	var (
		text string
		ok   bool
	)
	switch args[0] {
	case "blog":
		text, ok = a.blog.Last()
	case "video":
		text, ok = a.video.Last()
	default:
		printlnFn("Usage: copy <blog|video>")
		return nil
	}

	if !ok {
		a.toast("Nothing generated yet")
		return nil
	}
	if err := copyFn(text); err != nil {
		a.toast("Copy failed: " + err.Error())
		return err
	}
	a.toast("Copied to clipboard")
	return nil
}

// Download saves the last generated content to the downloads directory:
// "download blog", "download video" or "download images". Images are fetched
// one file at a time, in the order the backend returned them.
func (a *App) Download(ctx context.Context, args []string) error {
	if len(args) == 0 {
		printlnFn("Usage: download <blog|video|images>")
		return nil
	}

	switch args[0] {
	case "blog":
		text, ok := a.blog.Last()
		if !ok {
			a.toast("Nothing generated yet")
			return nil
		}
		return a.saveText(blogFilename, text)

	case "video":
		text, ok := a.video.Last()
		if !ok {
			a.toast("Nothing generated yet")
			return nil
		}
		return a.saveText(videoFilename, text)

	case "images":
		return a.downloadImages(ctx)

	default:
		printlnFn("Usage: download <blog|video|images>")
		return nil
	}
}

func (a *App) saveText(filename, content string) error {
	dir, err := filex.EnsureSubDir(downloadDir)
	if err != nil {
		a.toast("Download failed: " + err.Error())
		return err
	}
	path, err := filex.SaveText(dir, filename, content)
	if err != nil {
		a.toast("Download failed: " + err.Error())
		return err
	}
	a.toast("Saved " + path)
	return nil
}

func (a *App) downloadImages(ctx context.Context) error {
	images, _, ok := a.image.Last()
	if !ok {
		a.toast("No images generated yet")
		return nil
	}

	dir, err := filex.EnsureSubDir(downloadDir)
	if err != nil {
		a.toast("Download failed: " + err.Error())
		return err
	}

	for _, img := range images {
		dest := filepath.Join(dir, img.Filename)
		if err := netx.DownloadToFile(ctx, a.downloader, a.api.ResolveURL(img.ImageURL), dest); err != nil {
			a.toast("Download failed: " + err.Error())
			return err
		}
		printlnFn("Saved " + dest)
	}
	a.toast("All images downloaded")
	return nil
}
