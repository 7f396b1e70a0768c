package interfaces

//go:generate moq -out ../mock/usecase.go -pkg mock . UseCase

import (
	"context"

	"github.com/m-mizutani/repodeck/pkg/domain/model"
	"github.com/m-mizutani/repodeck/pkg/domain/types"
)

type UseCase interface {
	AggregateRepositories(ctx context.Context) (*model.AggregateResult, error)
	ResolveDetail(ctx context.Context, fullName types.FullName, branchLookupURL string) (*model.RepositoryDetail, error)
	ResolveRepository(ctx context.Context, fullName types.FullName) (*model.RepositoryDetail, error)
}
