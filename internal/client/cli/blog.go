package cli

import (
	"context"
	"os"

	"github.com/prismai/prism-cli/internal/client/generate"
	"github.com/prismai/prism-cli/internal/client/models"
	"github.com/prismai/prism-cli/internal/client/views"
)

// Blog prompts for blog parameters and submits a generation. The command is
// gated by the router: while anonymous it redirects to the login tab and
// returns without a network call.
func (a *App) Blog(ctx context.Context) error {
	if a.router.Switch(views.TabBlog) != views.TabBlog {
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

	words, err := getInt(a.reader, "Word count",
		generate.DefaultWordCount, generate.MinWordCount, generate.MaxWordCount, os.Stdout)
	if err != nil {
		a.toast(err.Error())
		return err
	}

	text, err := a.blog.Submit(ctx, models.BlogRequest{
		ProductName: product,
		Tone:        tone,
		WordCount:   words,
	})
	if err != nil {
		a.reportError(ctx, err)
		return err
	}

	printlnFn(text)
	a.printUsageLine(models.FeatureBlog)
	return nil
}

// printUsageLine shows the refreshed counter for a feature after a
// successful generation, e.g. "Used: 2 / 10".
func (a *App) printUsageLine(f models.Feature) {
	if u := a.session.Usage(); u != nil {
		printlnFn(u.Line(f))
	}
}
