package cli

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gots/slice"
	"github.com/m-mizutani/repodeck/pkg/cli/config"
	"github.com/m-mizutani/repodeck/pkg/domain/types"
	"github.com/m-mizutani/repodeck/pkg/infra"
	"github.com/m-mizutani/repodeck/pkg/usecase"
	"github.com/m-mizutani/repodeck/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

// sources groups configuration of both repository sources shared by all commands
type sources struct {
	github    config.GitHub
	githubApp config.GitHubApp
	local     config.Local
}

func (x *sources) Flags() []cli.Flag {
	return slice.Flatten(
		x.github.Flags(),
		x.githubApp.Flags(),
		x.local.Flags(),
	)
}

func (x *sources) newUseCase(ctx context.Context) (*usecase.UseCase, error) {
	owner := x.github.Owner()
	if owner == "" {
		detected, err := DetectOwner(".")
		if err != nil {
			return nil, goerr.Wrap(types.ErrInvalidOption, "github-owner is not set and can not be detected", goerr.V("cause", err.Error()))
		}
		logging.From(ctx).Info("owner detected from git remote", slog.String("owner", detected))
		owner = detected
	}

	ghClient, err := x.github.NewClient(ctx, &x.githubApp)
	if err != nil {
		return nil, err
	}

	clients := infra.New(
		infra.WithGitHub(ghClient),
		infra.WithLocalSource(x.local.NewLoader()),
	)

	return usecase.New(clients,
		usecase.WithOwner(owner),
		usecase.WithRawContentURL(x.github.RawContentURL()),
	), nil
}

func (x sources) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Any("GitHub", x.github),
		slog.Any("GitHubApp", x.githubApp),
		slog.Any("Local", x.local),
	)
}
