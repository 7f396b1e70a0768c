package ghapp_test

import (
	"context"
	"strconv"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/repodeck/pkg/domain/types"
	"github.com/m-mizutani/repodeck/pkg/infra/ghapp"
	"github.com/m-mizutani/repodeck/pkg/infra/github"
	"github.com/m-mizutani/repodeck/pkg/utils/testutil"
)

func TestNew(t *testing.T) {
	t.Run("create new GitHub App client with valid inputs", func(t *testing.T) {
		appID := types.GitHubAppID(12345)
		privateKey := types.GitHubAppPrivateKey("test-key")

		_, err := ghapp.New(appID, privateKey)
		gt.NoError(t, err)
	})

	t.Run("create with empty private key fails", func(t *testing.T) {
		appID := types.GitHubAppID(12345)
		privateKey := types.GitHubAppPrivateKey("")

		client, err := ghapp.New(appID, privateKey)
		gt.Error(t, err)
		gt.V(t, client).Equal(nil)
	})

	t.Run("create with zero app ID fails", func(t *testing.T) {
		appID := types.GitHubAppID(0)
		privateKey := types.GitHubAppPrivateKey("test-key")

		client, err := ghapp.New(appID, privateKey)
		gt.Error(t, err)
		gt.V(t, client).Equal(nil)
	})

	t.Run("HTTPClient returns error with invalid key", func(t *testing.T) {
		appID := types.GitHubAppID(12345)
		privateKey := types.GitHubAppPrivateKey("invalid-key")

		client, err := ghapp.New(appID, privateKey)
		gt.NoError(t, err)

		httpClient, err := client.HTTPClient(types.GitHubAppInstallID(67890))
		gt.Error(t, err)
		gt.V(t, httpClient).Equal(nil)
	})

	t.Run("HTTPClient requires installation ID", func(t *testing.T) {
		client := gt.R1(ghapp.New(types.GitHubAppID(12345), types.GitHubAppPrivateKey("test-key"))).NoError(t)

		_, err := client.HTTPClient(0)
		gt.Error(t, err)
	})
}

func TestListOwnerReposWithApp_Integration(t *testing.T) {
	appIDStr := testutil.GetEnvOrSkip(t, "TEST_GITHUB_APP_ID")
	privateKey := testutil.GetEnvOrSkip(t, "TEST_GITHUB_PRIVATE_KEY")
	installIDStr := testutil.GetEnvOrSkip(t, "TEST_GITHUB_INSTALL_ID")
	owner := testutil.GetEnvOrSkip(t, "TEST_GITHUB_OWNER")

	appID := gt.R1(strconv.ParseInt(appIDStr, 10, 64)).NoError(t)
	installID := gt.R1(strconv.ParseInt(installIDStr, 10, 64)).NoError(t)

	app := gt.R1(ghapp.New(types.GitHubAppID(appID), types.GitHubAppPrivateKey(privateKey))).NoError(t)
	httpClient := gt.R1(app.HTTPClient(types.GitHubAppInstallID(installID))).NoError(t)

	client := gt.R1(github.New(httpClient)).NoError(t)
	records := gt.R1(client.ListOwnerRepos(context.Background(), owner)).NoError(t)

	t.Logf("Found %d repositories for owner: %s", len(records), owner)
}
