package types

import "log/slog"

type (
	RepoID              string
	FullName            string
	BranchName          string
	GitHubAppID         int64
	GitHubAppInstallID  int64
	GitHubToken         string
	GitHubAppPrivateKey string
)

// Origin identifies which source a repository record came from
type Origin string

const (
	OriginLocal  Origin = "local"
	OriginRemote Origin = "remote"
)

func (x FullName) String() string {
	return string(x)
}

func (x GitHubToken) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x GitHubToken) String() string {
	return "***********"
}

func (x GitHubAppPrivateKey) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x GitHubAppPrivateKey) String() string {
	return "***********"
}
