package cli

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/gots/slice"
	"github.com/m-mizutani/repodeck/pkg/domain/model"
	"github.com/m-mizutani/repodeck/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

func listCommand() *cli.Command {
	var (
		language   string
		jsonOutput bool

		src sources
	)
	listFlags := []cli.Flag{
		&cli.StringFlag{
			Name:        "language",
			Usage:       "Show only repositories written in the language",
			Destination: &language,
		},
		&cli.BoolFlag{
			Name:        "json",
			Usage:       "Output as JSON",
			Destination: &jsonOutput,
		},
	}

	return &cli.Command{
		Name:    "list",
		Aliases: []string{"ls"},
		Usage:   "List canonical repositories of local dataset and GitHub",
		Flags: slice.Flatten(
			listFlags,
			src.Flags(),
		),
		Action: func(ctx context.Context, c *cli.Command) error {
			logging.Default().Debug("starting list",
				slog.String("Language", language),
				slog.Any("Sources", src),
			)

			uc, err := src.newUseCase(ctx)
			if err != nil {
				return err
			}

			result, err := uc.AggregateRepositories(ctx)
			if err != nil {
				return err
			}
			repos := model.FilterByLanguage(result.Repositories, language)

			w := c.Root().Writer
			if jsonOutput {
				return writeJSON(w, &model.AggregateResult{
					Repositories: repos,
					Languages:    result.Languages,
				})
			}

			return renderRepositories(w, repos, result.Languages)
		},
	}
}
