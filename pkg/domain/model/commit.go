package model

import "github.com/m-mizutani/repodeck/pkg/domain/types"

// ReadmeNotFound is returned as README content when the repository has no README.md
const ReadmeNotFound = "No README.md found for this repository"

// CommitInfo is the latest commit of a branch. The zero value means commit information is unavailable.
type CommitInfo struct {
	AuthorName *string `json:"name,omitempty"`
	AuthorDate *string `json:"date,omitempty"`
	Message    *string `json:"message,omitempty"`
}

func (x CommitInfo) Available() bool {
	return x.AuthorName != nil || x.AuthorDate != nil || x.Message != nil
}

type RepositoryDetail struct {
	FullName types.FullName `json:"name"`
	Commit   CommitInfo     `json:"commit"`
	Readme   string         `json:"readme"`
}
