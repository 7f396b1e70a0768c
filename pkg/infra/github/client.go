package github

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/go-github/v53/github"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/repodeck/pkg/domain/interfaces"
	"github.com/m-mizutani/repodeck/pkg/domain/model"
	"github.com/m-mizutani/repodeck/pkg/domain/types"
	"github.com/m-mizutani/repodeck/pkg/utils/logging"
)

type Client struct {
	client *github.Client
}

var _ interfaces.GitHub = (*Client)(nil)

type Option func(*github.Client) error

// WithBaseURL overrides the REST API endpoint, e.g. for GitHub Enterprise Server or tests
func WithBaseURL(baseURL string) Option {
	return func(c *github.Client) error {
		if !strings.HasSuffix(baseURL, "/") {
			baseURL += "/"
		}
		u, err := url.Parse(baseURL)
		if err != nil {
			return goerr.Wrap(types.ErrInvalidOption, "invalid GitHub API base URL", goerr.V("url", baseURL))
		}
		c.BaseURL = u
		return nil
	}
}

// New creates GitHub REST API client. httpClient carries authentication; nil means http.DefaultClient.
func New(httpClient *http.Client, options ...Option) (*Client, error) {
	client := github.NewClient(httpClient)
	for _, opt := range options {
		if err := opt(client); err != nil {
			return nil, err
		}
	}

	return &Client{client: client}, nil
}

// ListOwnerRepos fetches the first page of repositories of the user. Records are returned undecoded so that the normalizer validates them.
func (x *Client) ListOwnerRepos(ctx context.Context, owner string) ([]model.RawRecord, error) {
	if owner == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "owner is empty")
	}

	// https://docs.github.com/en/rest/repos/repos#list-repositories-for-a-user
	req, err := x.client.NewRequest(http.MethodGet, "users/"+url.PathEscape(owner)+"/repos", nil)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create list repos request", goerr.V("owner", owner))
	}

	var records []model.RawRecord
	resp, err := x.client.Do(ctx, req, &records)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list repositories", goerr.V("owner", owner))
	}

	logging.From(ctx).Debug("Listed owner repositories",
		slog.String("owner", owner),
		slog.Int("count", len(records)),
		slog.Int("status", resp.StatusCode),
	)

	return records, nil
}

// GetBranch fetches a branch by the absolute URL derived from the repository's branches_url. The URL must be on the API host because the request carries the client's credential.
func (x *Client) GetBranch(ctx context.Context, branchURL string) (*github.Branch, error) {
	if branchURL == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "branch URL is empty")
	}

	target, err := x.client.BaseURL.Parse(branchURL)
	if err != nil {
		return nil, goerr.Wrap(types.ErrInvalidOption, "invalid branch URL", goerr.V("url", branchURL))
	}
	if target.Scheme != x.client.BaseURL.Scheme || target.Host != x.client.BaseURL.Host {
		return nil, goerr.Wrap(types.ErrInvalidOption, "branch URL is not on GitHub API host",
			goerr.V("url", branchURL),
			goerr.V("api_host", x.client.BaseURL.Host),
		)
	}

	req, err := x.client.NewRequest(http.MethodGet, target.String(), nil)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create branch request", goerr.V("url", branchURL))
	}

	var branch github.Branch
	if _, err := x.client.Do(ctx, req, &branch); err != nil {
		return nil, goerr.Wrap(err, "failed to get branch", goerr.V("url", branchURL))
	}

	return &branch, nil
}
