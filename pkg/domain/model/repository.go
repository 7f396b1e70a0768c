package model

import (
	"strings"

	"github.com/m-mizutani/repodeck/pkg/domain/types"
)

// BranchPlaceholder is the token in a branch reference template replaced by "/<branch>"
const BranchPlaceholder = "{/branch}"

// Repository is the canonical repository entity built from either origin
type Repository struct {
	ID                types.RepoID     `json:"id"`
	FullName          types.FullName   `json:"full_name"`
	Description       *string          `json:"description"`
	Language          *string          `json:"language"`
	ForksCount        int              `json:"forks_count"`
	IsFork            bool             `json:"fork"`
	CreatedAt         string           `json:"created_at"`
	DefaultBranch     types.BranchName `json:"default_branch"`
	BranchRefTemplate string           `json:"branches_url"`
	Origin            types.Origin     `json:"origin"`
}

// BranchLookupURL returns the URL to look up the default branch, or empty string if the repository has no branch reference template
func (x *Repository) BranchLookupURL() string {
	if x.BranchRefTemplate == "" {
		return ""
	}
	return strings.Replace(x.BranchRefTemplate, BranchPlaceholder, "/"+string(x.DefaultBranch), 1)
}

// LanguageName returns the language or empty string when unspecified
func (x *Repository) LanguageName() string {
	if x.Language == nil {
		return ""
	}
	return *x.Language
}

// FilterByLanguage returns repositories whose language equals lang. Empty lang means all languages.
func FilterByLanguage(repos []*Repository, lang string) []*Repository {
	if lang == "" {
		return repos
	}

	filtered := make([]*Repository, 0, len(repos))
	for _, repo := range repos {
		if repo.Language != nil && *repo.Language == lang {
			filtered = append(filtered, repo)
		}
	}
	return filtered
}

// FindByFullName returns the first repository with the full name, or nil
func FindByFullName(repos []*Repository, name types.FullName) *Repository {
	for _, repo := range repos {
		if repo.FullName == name {
			return repo
		}
	}
	return nil
}

// AggregateResult is the merged, filtered and ordered repository listing
type AggregateResult struct {
	Repositories []*Repository `json:"repos"`
	Languages    []string      `json:"languages"`
}
