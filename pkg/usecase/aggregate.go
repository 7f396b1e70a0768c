package usecase

import (
	"context"
	"log/slog"
	"sort"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/repodeck/pkg/domain/model"
	"github.com/m-mizutani/repodeck/pkg/domain/types"
	"github.com/m-mizutani/repodeck/pkg/utils/logging"
)

// AggregateRepositories loads the curated local dataset, then lists the owner's repositories from GitHub, and merges them into one listing. If either source can not be read, the whole operation fails with types.ErrSourceUnavailable; there is no fallback to partial data.
func (x *UseCase) AggregateRepositories(ctx context.Context) (*model.AggregateResult, error) {
	localRecords, err := x.clients.LocalSource().LoadRecords(ctx)
	if err != nil {
		return nil, goerr.Wrap(types.ErrSourceUnavailable, "failed to load local repositories",
			goerr.V("origin", types.OriginLocal),
			goerr.V("cause", err.Error()),
		)
	}

	remoteRecords, err := x.clients.GitHub().ListOwnerRepos(ctx, x.owner)
	if err != nil {
		return nil, goerr.Wrap(types.ErrSourceUnavailable, "failed to list remote repositories",
			goerr.V("origin", types.OriginRemote),
			goerr.V("owner", x.owner),
			goerr.V("cause", err.Error()),
		)
	}

	result := Aggregate(ctx, localRecords, remoteRecords)

	logging.From(ctx).Info("Aggregated repositories",
		slog.Int("local", len(localRecords)),
		slog.Int("remote", len(remoteRecords)),
		slog.Int("canonical", len(result.Repositories)),
		slog.Int("languages", len(result.Languages)-1),
	)

	return result, nil
}

// Aggregate normalizes local and remote records, drops forks, and orders the rest by creation time, newest first. Records failing normalization are logged and skipped. Repositories created at the same time keep local-then-remote input order. Languages are listed in order of first appearance in the sorted list, followed by one empty string meaning all languages.
func Aggregate(ctx context.Context, local, remote []model.RawRecord) *model.AggregateResult {
	repos := make([]*model.Repository, 0, len(local)+len(remote))
	repos = appendCanonical(ctx, repos, types.OriginLocal, local)
	repos = appendCanonical(ctx, repos, types.OriginRemote, remote)

	sort.SliceStable(repos, func(i, j int) bool {
		return repos[i].CreatedAt > repos[j].CreatedAt
	})

	return &model.AggregateResult{
		Repositories: repos,
		Languages:    languageIndex(repos),
	}
}

func appendCanonical(ctx context.Context, repos []*model.Repository, origin types.Origin, records []model.RawRecord) []*model.Repository {
	logger := logging.From(ctx)

	for i, record := range records {
		repo, err := model.NormalizeRecord(origin, record)
		if err != nil {
			logger.Warn("Discard malformed repository record",
				slog.Any("origin", origin),
				slog.Int("index", i),
				slog.Any("error", err),
			)
			continue
		}

		if repo.IsFork {
			logger.Debug("Skip forked repository",
				slog.Any("origin", origin),
				slog.Any("full_name", repo.FullName),
			)
			continue
		}

		repos = append(repos, repo)
	}

	return repos
}

func languageIndex(repos []*model.Repository) []string {
	seen := make(map[string]struct{})
	languages := make([]string, 0)

	for _, repo := range repos {
		lang := repo.LanguageName()
		if lang == "" {
			continue
		}
		if _, ok := seen[lang]; ok {
			continue
		}
		seen[lang] = struct{}{}
		languages = append(languages, lang)
	}

	return append(languages, "")
}
