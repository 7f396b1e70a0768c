package cli

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gots/slice"
	"github.com/m-mizutani/repodeck/pkg/domain/types"
	"github.com/m-mizutani/repodeck/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

func showCommand() *cli.Command {
	var (
		jsonOutput bool

		src sources
	)
	showFlags := []cli.Flag{
		&cli.BoolFlag{
			Name:        "json",
			Usage:       "Output as JSON",
			Destination: &jsonOutput,
		},
	}

	return &cli.Command{
		Name:      "show",
		Usage:     "Show latest commit and README of a repository",
		ArgsUsage: "<owner/name>",
		Flags: slice.Flatten(
			showFlags,
			src.Flags(),
		),
		Action: func(ctx context.Context, c *cli.Command) error {
			if c.NArg() != 1 {
				return goerr.Wrap(types.ErrInvalidOption, "exactly one repository name is required")
			}
			fullName := types.FullName(c.Args().First())

			logging.Default().Debug("starting show",
				slog.Any("FullName", fullName),
				slog.Any("Sources", src),
			)

			uc, err := src.newUseCase(ctx)
			if err != nil {
				return err
			}

			detail, err := uc.ResolveRepository(ctx, fullName)
			if err != nil {
				return err
			}

			w := c.Root().Writer
			if jsonOutput {
				return writeJSON(w, detail)
			}
			return renderDetail(w, detail)
		},
	}
}
