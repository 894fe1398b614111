package cli

import (
	"context"
	"os"

	"github.com/prismai/prism-cli/internal/client/generate"
	"github.com/prismai/prism-cli/internal/client/models"
	"github.com/prismai/prism-cli/internal/client/views"
)

// Image prompts for image parameters and submits a generation. On success
// the prompt used by the backend and the image URLs are printed in backend
// order.
func (a *App) Image(ctx context.Context) error {
	if a.router.Switch(views.TabImage) != views.TabImage {
		return nil
	}

	product, err := getSimpleText(a.reader, "Product name", os.Stdout)
	if err != nil {
		return err
	}

	style, err := getTextWithDefault(a.reader, "Style", "realistic", os.Stdout)
	if err != nil {
		return err
	}

	platform, err := getTextWithDefault(a.reader, "Platform", "instagram", os.Stdout)
	if err != nil {
		return err
	}

	n, err := getInt(a.reader, "Number of images",
		generate.DefaultImageCount, generate.MinImageCount, generate.MaxImageCount, os.Stdout)
	if err != nil {
		a.toast(err.Error())
		return err
	}

	res, err := a.image.Submit(ctx, models.ImageRequest{
		ProductName: product,
		Style:       style,
		Platform:    platform,
		N:           n,
	})
	if err != nil {
		a.reportError(ctx, err)
		return err
	}

	a.printImages(res.Images, res.ImagePrompt)
	a.printUsageLine(models.FeatureImage)
	return nil
}

// ShowImages reprints the buffered result of the last image generation.
func (a *App) ShowImages(ctx context.Context) error {
	images, prompt, ok := a.image.Last()
	if !ok {
		a.toast("No images generated yet")
		return nil
	}
	a.printImages(images, prompt)
	return nil
}

func (a *App) printImages(images []models.Image, prompt string) {
	printlnFn("Prompt: " + prompt)
	for _, img := range images {
		printlnFn(a.api.ResolveURL(img.ImageURL))
	}
}
