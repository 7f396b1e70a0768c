package github_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/repodeck/pkg/domain/types"
	"github.com/m-mizutani/repodeck/pkg/infra/github"
	"github.com/m-mizutani/repodeck/pkg/utils/testutil"
)

func newTestServer(t *testing.T, handler http.HandlerFunc) *github.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return gt.R1(github.New(nil, github.WithBaseURL(srv.URL))).NoError(t)
}

func TestListOwnerRepos(t *testing.T) {
	ctx := context.Background()

	t.Run("returns raw records of owner", func(t *testing.T) {
		var calledPath string
		client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			calledPath = r.URL.Path
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`[{"id": 1, "full_name": "silverorange/a", "fork": false, "created_at": "2020-01-01T00:00:00Z", "extra": {"nested": true}}]`))
		})

		records := gt.R1(client.ListOwnerRepos(ctx, "silverorange")).NoError(t)
		gt.V(t, calledPath).Equal("/users/silverorange/repos")
		gt.A(t, records).Length(1)
		gt.V(t, records[0]["full_name"]).Equal(any("silverorange/a"))
	})

	t.Run("HTTP error is returned", func(t *testing.T) {
		client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		})

		_, err := client.ListOwnerRepos(ctx, "silverorange")
		gt.Error(t, err)
	})

	t.Run("empty owner is rejected", func(t *testing.T) {
		client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			t.Error("should not be called")
		})

		_, err := client.ListOwnerRepos(ctx, "")
		gt.Error(t, err)
	})
}

func TestGetBranch(t *testing.T) {
	ctx := context.Background()

	t.Run("decodes branch commit", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gt.V(t, r.URL.Path).Equal("/repos/a/x/branches/main")
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{
				"name": "main",
				"commit": {
					"sha": "f7c8851da7c7fcc46212fccfb6c9c4bda520f1ca",
					"commit": {
						"author": {"name": "Jane", "email": "jane@example.com", "date": "2022-03-04T05:06:07Z"},
						"message": "Fix build"
					}
				}
			}`))
		}))
		t.Cleanup(srv.Close)
		srvURL := srv.URL

		client := gt.R1(github.New(nil, github.WithBaseURL(srvURL))).NoError(t)
		branch := gt.R1(client.GetBranch(ctx, srvURL+"/repos/a/x/branches/main")).NoError(t)

		gt.V(t, branch.GetName()).Equal("main")
		gt.V(t, branch.GetCommit().GetCommit().GetAuthor().GetName()).Equal("Jane")
		gt.V(t, branch.GetCommit().GetCommit().GetMessage()).Equal("Fix build")
	})

	t.Run("not found is an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		t.Cleanup(srv.Close)
		srvURL := srv.URL

		client := gt.R1(github.New(nil, github.WithBaseURL(srvURL))).NoError(t)
		_, err := client.GetBranch(ctx, srvURL+"/repos/a/x/branches/nope")
		gt.Error(t, err)
	})

	t.Run("URL on another host is rejected without request", func(t *testing.T) {
		other := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Error("should not be called")
		}))
		t.Cleanup(other.Close)

		client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			t.Error("should not be called")
		})
		_, err := client.GetBranch(ctx, other.URL+"/repos/a/x/branches/main")
		gt.True(t, errors.Is(err, types.ErrInvalidOption))
	})

	t.Run("URL with another scheme is rejected", func(t *testing.T) {
		client := gt.R1(github.New(nil)).NoError(t)
		_, err := client.GetBranch(ctx, "http://api.github.com/repos/a/x/branches/main")
		gt.True(t, errors.Is(err, types.ErrInvalidOption))
	})

	t.Run("empty URL is rejected", func(t *testing.T) {
		client := gt.R1(github.New(nil)).NoError(t)
		_, err := client.GetBranch(ctx, "")
		gt.Error(t, err)
	})
}

func TestListOwnerRepos_Integration(t *testing.T) {
	owner := testutil.GetEnvOrSkip(t, "TEST_GITHUB_OWNER")

	client := gt.R1(github.New(nil)).NoError(t)
	records := gt.R1(client.ListOwnerRepos(context.Background(), owner)).NoError(t)

	t.Logf("Found %d repositories for owner: %s", len(records), owner)
	for _, record := range records {
		gt.V(t, record["full_name"]).NotEqual(nil)
	}
}
