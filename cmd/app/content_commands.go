package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/allisson/jsondocs/cmd/app/commands"
	"github.com/allisson/jsondocs/internal/app"
	"github.com/allisson/jsondocs/internal/config"
)

func getContentCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "grant-capabilities",
			Usage: "Grant the content type capabilities to roles",
			Flags: []cli.Flag{
				&cli.StringSliceFlag{
					Name:    "role",
					Aliases: []string{"r"},
					Usage:   "Role to grant (repeatable, defaults to GRANT_ROLES)",
				},
				formatFlag(),
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(ctx) }()

				return commands.RunGrantCapabilities(
					ctx,
					container,
					container.Logger(),
					commands.DefaultIO(),
					cmd.StringSlice("role"),
					cmd.String("format"),
				)
			},
		},
		{
			Name:  "list-content-types",
			Usage: "List the registered content types",
			Flags: []cli.Flag{
				formatFlag(),
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(ctx) }()

				registry, err := container.ContentTypeRegistry()
				if err != nil {
					return err
				}

				return commands.RunListContentTypes(registry, commands.DefaultIO(), cmd.String("format"))
			},
		},
		{
			Name:  "export-documents",
			Usage: "Export the REST representation of every document to a blob bucket",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "bucket-url",
					Aliases:  []string{"b"},
					Required: true,
					Usage:    "Destination bucket (file:///path or mem://)",
				},
				&cli.StringFlag{
					Name:    "prefix",
					Aliases: []string{"p"},
					Usage:   "Key prefix for exported objects",
				},
				formatFlag(),
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(ctx) }()

				exportUseCase, err := container.ExportUseCase()
				if err != nil {
					return err
				}

				return commands.RunExportDocuments(
					ctx,
					exportUseCase,
					container.Logger(),
					commands.DefaultIO(),
					cmd.String("bucket-url"),
					cmd.String("prefix"),
					cmd.String("format"),
				)
			},
		},
	}
}
