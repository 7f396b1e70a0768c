package local

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/repodeck/pkg/domain/interfaces"
	"github.com/m-mizutani/repodeck/pkg/domain/model"
	"github.com/m-mizutani/repodeck/pkg/domain/types"
	"github.com/m-mizutani/repodeck/pkg/utils/logging"
)

// Loader reads the curated repository dataset from a JSON or CUE file.
// A CUE file may be a top-level list or a struct with a `repos` list.
type Loader struct {
	path string
}

var _ interfaces.LocalSource = (*Loader)(nil)

func New(path string) *Loader {
	return &Loader{path: path}
}

// LoadRecords reads the dataset. Empty path means no curated dataset and returns no records.
func (x *Loader) LoadRecords(ctx context.Context) ([]model.RawRecord, error) {
	if x.path == "" {
		return nil, nil
	}

	data, err := os.ReadFile(filepath.Clean(x.path))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read local dataset", goerr.V("path", x.path))
	}

	var records []model.RawRecord
	switch ext := strings.ToLower(filepath.Ext(x.path)); ext {
	case ".json":
		records, err = decodeJSON(data)
	case ".cue":
		records, err = decodeCUE(x.path, data)
	default:
		return nil, goerr.Wrap(types.ErrInvalidOption, "unsupported local dataset format, should be .json or .cue", goerr.V("path", x.path))
	}
	if err != nil {
		return nil, goerr.Wrap(err, "failed to decode local dataset", goerr.V("path", x.path))
	}

	logging.From(ctx).Debug("Loaded local dataset",
		slog.String("path", x.path),
		slog.Int("count", len(records)),
	)

	return records, nil
}

func decodeJSON(data []byte) ([]model.RawRecord, error) {
	var records []model.RawRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, goerr.Wrap(err, "failed to unmarshal json")
	}
	return records, nil
}

func decodeCUE(path string, data []byte) ([]model.RawRecord, error) {
	v := cuecontext.New().CompileBytes(data, cue.Filename(path))
	if err := v.Err(); err != nil {
		return nil, goerr.Wrap(err, "failed to compile cue")
	}

	if v.IncompleteKind() != cue.ListKind {
		v = v.LookupPath(cue.ParsePath("repos"))
		if !v.Exists() {
			return nil, goerr.New("cue dataset should be a list or have `repos` field")
		}
	}

	// Round trip through JSON so that numbers decode the same way as remote records
	raw, err := v.MarshalJSON()
	if err != nil {
		return nil, goerr.Wrap(err, "failed to export cue value")
	}
	return decodeJSON(raw)
}
