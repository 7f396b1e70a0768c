package config

import (
	"log/slog"
	"net/http"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/repodeck/pkg/domain/types"
	"github.com/m-mizutani/repodeck/pkg/infra/ghapp"
	"github.com/urfave/cli/v3"
)

type GitHubApp struct {
	id         types.GitHubAppID
	installID  types.GitHubAppInstallID
	privateKey types.GitHubAppPrivateKey `masq:"secret"`
}

func (x *GitHubApp) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.Int64Flag{
			Name:        "github-app-id",
			Usage:       "GitHub App ID",
			Category:    "GitHub App",
			Destination: (*int64)(&x.id),
			Sources:     cli.EnvVars("REPODECK_GITHUB_APP_ID"),
		},
		&cli.Int64Flag{
			Name:        "github-app-install-id",
			Usage:       "GitHub App installation ID of the owner",
			Category:    "GitHub App",
			Destination: (*int64)(&x.installID),
			Sources:     cli.EnvVars("REPODECK_GITHUB_APP_INSTALL_ID"),
		},
		&cli.StringFlag{
			Name:        "github-app-private-key",
			Usage:       "GitHub App Private Key",
			Category:    "GitHub App",
			Destination: (*string)(&x.privateKey),
			Sources:     cli.EnvVars("REPODECK_GITHUB_APP_PRIVATE_KEY"),
		},
	}
}

// Enabled reports whether GitHub App authentication is requested
func (x *GitHubApp) Enabled() bool {
	return x.id != 0
}

func (x *GitHubApp) HTTPClient() (*http.Client, error) {
	if x.installID == 0 {
		return nil, goerr.Wrap(types.ErrInvalidOption, "github-app-install-id is required with github-app-id")
	}

	app, err := ghapp.New(x.id, x.privateKey)
	if err != nil {
		return nil, err
	}

	return app.HTTPClient(x.installID)
}

func (x GitHubApp) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int64("ID", int64(x.id)),
		slog.Int64("InstallID", int64(x.installID)),
		slog.Int("privateKey.len", len(x.privateKey)),
	)
}
