package infra

import (
	"net/http"

	"github.com/m-mizutani/repodeck/pkg/domain/interfaces"
	"github.com/m-mizutani/repodeck/pkg/infra/github"
	"github.com/m-mizutani/repodeck/pkg/infra/local"
)

type Clients struct {
	github      interfaces.GitHub
	httpClient  HTTPClient
	localSource interfaces.LocalSource
}

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type Option func(*Clients)

func New(options ...Option) *Clients {
	// github.New never fails without options
	ghClient, _ := github.New(nil)

	client := &Clients{
		github:      ghClient,
		httpClient:  http.DefaultClient,
		localSource: local.New(""),
	}

	for _, opt := range options {
		opt(client)
	}

	return client
}

func (x *Clients) GitHub() interfaces.GitHub {
	return x.github
}
func (x *Clients) HTTPClient() HTTPClient {
	return x.httpClient
}
func (x *Clients) LocalSource() interfaces.LocalSource {
	return x.localSource
}

func WithGitHub(client interfaces.GitHub) Option {
	return func(x *Clients) {
		x.github = client
	}
}

func WithHTTPClient(client HTTPClient) Option {
	return func(x *Clients) {
		x.httpClient = client
	}
}

func WithLocalSource(src interfaces.LocalSource) Option {
	return func(x *Clients) {
		x.localSource = src
	}
}
