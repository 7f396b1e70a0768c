package config

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/m-mizutani/repodeck/pkg/domain/types"
	"github.com/m-mizutani/repodeck/pkg/infra/github"
	"github.com/m-mizutani/repodeck/pkg/usecase"
	"github.com/urfave/cli/v3"
	"golang.org/x/oauth2"
)

type GitHub struct {
	owner  string
	token  types.GitHubToken `masq:"secret"`
	apiURL string
	rawURL string
}

func (x *GitHub) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "github-owner",
			Usage:       "Owner (user or organization) whose repositories are listed. Detected from git origin remote if empty",
			Category:    "GitHub",
			Destination: &x.owner,
			Sources:     cli.EnvVars("REPODECK_GITHUB_OWNER"),
		},
		&cli.StringFlag{
			Name:        "github-token",
			Usage:       "GitHub personal access token",
			Category:    "GitHub",
			Destination: (*string)(&x.token),
			Sources:     cli.EnvVars("REPODECK_GITHUB_TOKEN", "GITHUB_TOKEN"),
		},
		&cli.StringFlag{
			Name:        "github-api-url",
			Usage:       "GitHub REST API base URL",
			Category:    "GitHub",
			Destination: &x.apiURL,
			Sources:     cli.EnvVars("REPODECK_GITHUB_API_URL"),
		},
		&cli.StringFlag{
			Name:        "github-raw-url",
			Usage:       "Base URL of raw file content",
			Category:    "GitHub",
			Value:       usecase.DefaultRawContentURL,
			Destination: &x.rawURL,
			Sources:     cli.EnvVars("REPODECK_GITHUB_RAW_URL"),
		},
	}
}

func (x *GitHub) Owner() string {
	return x.owner
}

func (x *GitHub) RawContentURL() string {
	return x.rawURL
}

// NewClient creates GitHub API client. GitHub App installation has priority over personal access token. Without both, requests are unauthenticated.
func (x *GitHub) NewClient(ctx context.Context, app *GitHubApp) (*github.Client, error) {
	var httpClient *http.Client

	switch {
	case app != nil && app.Enabled():
		client, err := app.HTTPClient()
		if err != nil {
			return nil, err
		}
		httpClient = client

	case x.token != "":
		src := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: string(x.token)})
		httpClient = oauth2.NewClient(ctx, src)
	}

	var options []github.Option
	if x.apiURL != "" {
		options = append(options, github.WithBaseURL(x.apiURL))
	}

	return github.New(httpClient, options...)
}

func (x GitHub) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("Owner", x.owner),
		slog.Int("Token.len", len(x.token)),
		slog.String("APIURL", x.apiURL),
		slog.String("RawURL", x.rawURL),
	)
}
