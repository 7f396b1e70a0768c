package cli

import (
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/repodeck/pkg/domain/types"
)

// DetectOwner returns GitHub owner from the origin remote of the git repository containing dir
func DetectOwner(dir string) (string, error) {
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return "", goerr.Wrap(err, "failed to open git repository", goerr.V("dir", dir))
	}

	remote, err := repo.Remote("origin")
	if err != nil {
		return "", goerr.Wrap(err, "failed to get remote origin")
	}

	if len(remote.Config().URLs) == 0 {
		return "", goerr.New("no remote URL found")
	}

	url := remote.Config().URLs[0]
	owner, ok := parseRemoteOwner(url)
	if !ok {
		return "", goerr.Wrap(types.ErrInvalidOption, "failed to parse GitHub owner from git remote URL", goerr.V("url", url))
	}

	return owner, nil
}

// parseRemoteOwner accepts git@github.com:owner/repo.git and https://github.com/owner/repo(.git)
func parseRemoteOwner(url string) (string, bool) {
	var path string
	switch {
	case strings.HasPrefix(url, "git@github.com:"):
		path = strings.TrimPrefix(url, "git@github.com:")
	case strings.Contains(url, "github.com/"):
		_, path, _ = strings.Cut(url, "github.com/")
	default:
		return "", false
	}

	owner, repo, ok := strings.Cut(strings.TrimSuffix(path, ".git"), "/")
	if !ok || owner == "" || repo == "" || strings.Contains(repo, "/") {
		return "", false
	}

	return owner, true
}
