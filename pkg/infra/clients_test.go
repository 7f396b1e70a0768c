package infra_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/repodeck/pkg/domain/mock"
	"github.com/m-mizutani/repodeck/pkg/infra"
)

func TestNew(t *testing.T) {
	t.Run("create new clients without options", func(t *testing.T) {
		clients := infra.New()
		// HTTPClient should return the default http.DefaultClient
		gt.V(t, clients.HTTPClient()).Equal(http.DefaultClient)
		gt.V(t, clients.GitHub() != nil).Equal(true)

		// Default local source has no records
		records, err := clients.LocalSource().LoadRecords(context.Background())
		gt.NoError(t, err)
		gt.A(t, records).Length(0)
	})

	t.Run("WithGitHub option sets GitHub client", func(t *testing.T) {
		mockGH := &mock.GitHubMock{}
		clients := infra.New(infra.WithGitHub(mockGH))
		gt.V(t, clients.GitHub()).Equal(mockGH)
	})

	t.Run("WithHTTPClient option sets HTTP client", func(t *testing.T) {
		mockHTTP := &mockHTTPClient{}
		clients := infra.New(infra.WithHTTPClient(mockHTTP))
		gt.V(t, clients.HTTPClient()).Equal(mockHTTP)
	})

	t.Run("WithLocalSource option sets local source", func(t *testing.T) {
		mockLocal := &mock.LocalSourceMock{}
		clients := infra.New(infra.WithLocalSource(mockLocal))
		gt.V(t, clients.LocalSource()).Equal(mockLocal)
	})

	t.Run("multiple options can be combined", func(t *testing.T) {
		mockGH := &mock.GitHubMock{}
		mockLocal := &mock.LocalSourceMock{}
		mockHTTP := &mockHTTPClient{}

		clients := infra.New(
			infra.WithGitHub(mockGH),
			infra.WithLocalSource(mockLocal),
			infra.WithHTTPClient(mockHTTP),
		)

		gt.V(t, clients.GitHub()).Equal(mockGH)
		gt.V(t, clients.LocalSource()).Equal(mockLocal)
		gt.V(t, clients.HTTPClient()).Equal(mockHTTP)
	})
}

type mockHTTPClient struct{}

func (m *mockHTTPClient) Do(req *http.Request) (*http.Response, error) {
	return nil, nil
}
