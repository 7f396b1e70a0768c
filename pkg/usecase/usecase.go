package usecase

import (
	"strings"

	"github.com/m-mizutani/repodeck/pkg/infra"
)

// DefaultRawContentURL is the base URL of raw file content on GitHub
const DefaultRawContentURL = "https://raw.githubusercontent.com"

type UseCase struct {
	clients       *infra.Clients
	owner         string
	rawContentURL string
}

type Option func(*UseCase)

// WithOwner sets the user or organization whose repositories are listed from GitHub
func WithOwner(owner string) Option {
	return func(x *UseCase) {
		x.owner = owner
	}
}

// WithRawContentURL overrides the base URL used to fetch README files
func WithRawContentURL(baseURL string) Option {
	return func(x *UseCase) {
		x.rawContentURL = strings.TrimSuffix(baseURL, "/")
	}
}

func New(clients *infra.Clients, options ...Option) *UseCase {
	uc := &UseCase{
		clients:       clients,
		rawContentURL: DefaultRawContentURL,
	}
	for _, opt := range options {
		opt(uc)
	}
	return uc
}
