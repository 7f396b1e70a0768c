package testutil

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

// ServerURLPlaceholder in a response body is replaced with URL of the server itself, e.g. for branches_url
const ServerURLPlaceholder = "${SERVER}"

// ServeJSON starts a server responding the JSON body for each path. Unknown paths respond 404. The server is closed by t.Cleanup.
func ServeJSON(t *testing.T, routes map[string]string) *httptest.Server {
	t.Helper()

	var srv *httptest.Server
	srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, ok := routes[r.URL.Path]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(strings.ReplaceAll(body, ServerURLPlaceholder, srv.URL)))
	}))
	t.Cleanup(srv.Close)

	return srv
}
