package usecase

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/repodeck/pkg/domain/model"
	"github.com/m-mizutani/repodeck/pkg/domain/types"
	"github.com/m-mizutani/repodeck/pkg/utils/logging"
	"github.com/m-mizutani/repodeck/pkg/utils/safe"
	"golang.org/x/sync/errgroup"
)

// ResolveDetail fetches the latest commit and README of a repository concurrently. It returns after both fetches finished. Only README failure is an error; unavailable commit information is reported as zero CommitInfo.
func (x *UseCase) ResolveDetail(ctx context.Context, fullName types.FullName, branchLookupURL string) (*model.RepositoryDetail, error) {
	detail := &model.RepositoryDetail{
		FullName: fullName,
	}

	// Not errgroup.WithContext: README failure must not cancel the commit lookup
	var eg errgroup.Group
	eg.Go(func() error {
		detail.Commit = x.ResolveCommit(ctx, branchLookupURL)
		return nil
	})
	eg.Go(func() error {
		readme, err := x.ResolveReadme(ctx, fullName)
		if err != nil {
			return err
		}
		detail.Readme = readme
		return nil
	})

	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return detail, nil
}

// ResolveCommit returns author and message of the commit at the head of the branch. Empty URL, failed lookup, or a response without commit.commit.author yields zero CommitInfo.
func (x *UseCase) ResolveCommit(ctx context.Context, branchLookupURL string) model.CommitInfo {
	if branchLookupURL == "" {
		return model.CommitInfo{}
	}

	logger := logging.From(ctx).With(slog.String("branch_url", branchLookupURL))

	branch, err := x.clients.GitHub().GetBranch(ctx, branchLookupURL)
	if err != nil {
		logger.Warn("Commit information unavailable", slog.Any("error", err))
		return model.CommitInfo{}
	}

	commit := branch.GetCommit().GetCommit()
	if commit == nil || commit.Author == nil {
		logger.Warn("Branch response has no commit author")
		return model.CommitInfo{}
	}

	info := model.CommitInfo{
		AuthorName: commit.Author.Name,
		Message:    commit.Message,
	}
	if commit.Author.Date != nil {
		date := commit.Author.Date.UTC().Format(time.RFC3339)
		info.AuthorDate = &date
	}

	return info
}

// ResolveReadme fetches README.md of the master branch. When the file does not exist, model.ReadmeNotFound is returned as the content. Other failures are returned as an error wrapping types.ErrReadmeFetch.
func (x *UseCase) ResolveReadme(ctx context.Context, fullName types.FullName) (string, error) {
	if fullName == "" {
		return "", goerr.Wrap(types.ErrInvalidOption, "full name is empty")
	}

	readmeURL := x.rawContentURL + "/" + fullName.String() + "/master/README.md"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, readmeURL, nil)
	if err != nil {
		return "", goerr.Wrap(types.ErrReadmeFetch, "failed to create README request",
			goerr.V("url", readmeURL),
			goerr.V("cause", err.Error()),
		)
	}

	resp, err := x.clients.HTTPClient().Do(req)
	if err != nil {
		return "", goerr.Wrap(types.ErrReadmeFetch, "failed to get README",
			goerr.V("url", readmeURL),
			goerr.V("cause", err.Error()),
		)
	}
	defer safe.Close(resp.Body)

	switch {
	case resp.StatusCode == http.StatusNotFound:
		logging.From(ctx).Debug("README not found", slog.String("url", readmeURL))
		return model.ReadmeNotFound, nil

	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return "", goerr.Wrap(types.ErrReadmeFetch, "unexpected status of README",
			goerr.V("url", readmeURL),
			goerr.V("status", resp.StatusCode),
			goerr.V("body", string(body)),
		)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", goerr.Wrap(types.ErrReadmeFetch, "failed to read README",
			goerr.V("url", readmeURL),
			goerr.V("cause", err.Error()),
		)
	}

	return string(body), nil
}

// ResolveRepository finds a canonical repository by full name in the aggregated listing and resolves its detail
func (x *UseCase) ResolveRepository(ctx context.Context, fullName types.FullName) (*model.RepositoryDetail, error) {
	result, err := x.AggregateRepositories(ctx)
	if err != nil {
		return nil, err
	}

	repo := model.FindByFullName(result.Repositories, fullName)
	if repo == nil {
		return nil, goerr.Wrap(types.ErrNotFound, "repository not found", goerr.V("full_name", fullName))
	}

	return x.ResolveDetail(ctx, repo.FullName, repo.BranchLookupURL())
}
