package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/prismai/prism-cli/internal/client/cli"
	"github.com/prismai/prism-cli/internal/client/config"
	"github.com/prismai/prism-cli/internal/logging"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()
	logger := logging.NewDefault(os.Stderr, slog.LevelWarn)

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

}
