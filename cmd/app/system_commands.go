package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/allisson/jsondocs/cmd/app/commands"
	"github.com/allisson/jsondocs/internal/app"
	"github.com/allisson/jsondocs/internal/config"
)

func getSystemCommands(version string) []*cli.Command {
	return []*cli.Command{
		{
			Name:  "server",
			Usage: "Serve the REST API, the admin editor and, when enabled, metrics",
			Action: func(ctx context.Context, _ *cli.Command) error {
				return commands.RunServer(ctx, version)
			},
		},
		{
			Name:  "migrate",
			Usage: "Create or upgrade the documents, revisions, roles and tokens tables",
			Flags: []cli.Flag{
				&cli.BoolFlag{
					Name:  "grant-capabilities",
					Usage: "Grant the content type capabilities to GRANT_ROLES once migrations finish",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(ctx) }()

				logger := container.Logger()
				if err := commands.RunMigrations(logger, cfg.DBDriver, cfg.DBConnectionString); err != nil {
					return err
				}
				if !cmd.Bool("grant-capabilities") {
					return nil
				}

				return commands.RunGrantCapabilities(
					ctx,
					container,
					logger,
					commands.DefaultIO(),
					nil,
					"text",
				)
			},
		},
	}
}
