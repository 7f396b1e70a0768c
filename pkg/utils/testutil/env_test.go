package testutil_test

import (
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/repodeck/pkg/utils/testutil"
)

func TestGetEnvOrSkip(t *testing.T) {
	t.Setenv("TEST_ENV_VAR_SET", "test_value")

	value := testutil.GetEnvOrSkip(t, "TEST_ENV_VAR_SET")
	gt.V(t, value).Equal("test_value")
}

func TestServeJSON(t *testing.T) {
	srv := testutil.ServeJSON(t, map[string]string{
		"/users/blue/repos": `[{"branches_url": "${SERVER}/repos/blue/x/branches{/branch}"}]`,
	})

	t.Run("known path", func(t *testing.T) {
		resp, err := http.Get(srv.URL + "/users/blue/repos")
		gt.NoError(t, err)
		defer resp.Body.Close()

		gt.V(t, resp.StatusCode).Equal(http.StatusOK)
		gt.V(t, resp.Header.Get("Content-Type")).Equal("application/json")

		var records []map[string]string
		gt.NoError(t, json.NewDecoder(resp.Body).Decode(&records))
		gt.A(t, records).Length(1)
		gt.V(t, records[0]["branches_url"]).Equal(srv.URL + "/repos/blue/x/branches{/branch}")
	})

	t.Run("unknown path", func(t *testing.T) {
		resp, err := http.Get(srv.URL + "/users/red/repos")
		gt.NoError(t, err)
		defer resp.Body.Close()
		_, _ = io.Copy(io.Discard, resp.Body)

		gt.V(t, resp.StatusCode).Equal(http.StatusNotFound)
	})
}
