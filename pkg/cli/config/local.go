package config

import (
	"log/slog"

	"github.com/m-mizutani/repodeck/pkg/infra/local"
	"github.com/urfave/cli/v3"
)

type Local struct {
	path string
}

func (x *Local) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "local-dataset",
			Usage:       "Path to curated repository dataset (.json or .cue)",
			Category:    "Local",
			Destination: &x.path,
			Sources:     cli.EnvVars("REPODECK_LOCAL_DATASET"),
		},
	}
}

func (x *Local) NewLoader() *local.Loader {
	return local.New(x.path)
}

func (x Local) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("Path", x.path),
	)
}
