package interfaces

//go:generate moq -out ../mock/infra.go -pkg mock . GitHub LocalSource

import (
	"context"

	"github.com/google/go-github/v53/github"
	"github.com/m-mizutani/repodeck/pkg/domain/model"
)

type GitHub interface {
	// ListOwnerRepos returns raw repository records of the user or organization
	ListOwnerRepos(ctx context.Context, owner string) ([]model.RawRecord, error)

	// GetBranch looks up a branch by its API URL
	GetBranch(ctx context.Context, branchURL string) (*github.Branch, error)
}

// LocalSource provides the curated repository dataset
type LocalSource interface {
	LoadRecords(ctx context.Context) ([]model.RawRecord, error)
}
