package cli

import (
	"context"
	"os"

	"github.com/prismai/prism-cli/internal/client/generate"
	"github.com/prismai/prism-cli/internal/client/models"
	"github.com/prismai/prism-cli/internal/client/views"
)

// Video prompts for video-script parameters and submits a generation.
// Router-gated the same way as Blog.
func (a *App) Video(ctx context.Context) error {
	if a.router.Switch(views.TabVideo) != views.TabVideo {
		return nil
	}

	product, err := getSimpleText(a.reader, "Product name", os.Stdout)
	if err != nil {
		return err
	}

	tone, err := getTextWithDefault(a.reader, "Tone", "professional", os.Stdout)
	if err != nil {
		return err
	}

	duration, err := getInt(a.reader, "Duration in minutes",
		generate.DefaultDuration, generate.MinDuration, generate.MaxDuration, os.Stdout)
	if err != nil {
		a.toast(err.Error())
		return err
	}

	script, err := a.video.Submit(ctx, models.VideoScriptRequest{
		ProductName: product,
		Tone:        tone,
		Duration:    duration,
	})
	if err != nil {
		a.reportError(ctx, err)
		return err
	}

	printlnFn(script)
	a.printUsageLine(models.FeatureVideo)
	return nil
}
