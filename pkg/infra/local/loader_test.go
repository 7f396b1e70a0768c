package local_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/repodeck/pkg/domain/types"
	"github.com/m-mizutani/repodeck/pkg/infra/local"
)

func TestLoadRecords(t *testing.T) {
	ctx := context.Background()

	t.Run("empty path yields no records", func(t *testing.T) {
		records := gt.R1(local.New("").LoadRecords(ctx)).NoError(t)
		gt.A(t, records).Length(0)
	})

	t.Run("load JSON dataset", func(t *testing.T) {
		records := gt.R1(local.New("testdata/repos.json").LoadRecords(ctx)).NoError(t)
		gt.A(t, records).Length(2)
		gt.V(t, records[0]["full_name"]).Equal(any("silverorange/admin"))
		gt.V(t, records[0]["id"]).Equal(any(float64(7791)))
		gt.V(t, records[1]["fork"]).Equal(any(true))
	})

	t.Run("load CUE dataset with defaults applied", func(t *testing.T) {
		records := gt.R1(local.New("testdata/repos.cue").LoadRecords(ctx)).NoError(t)
		gt.A(t, records).Length(2)
		gt.V(t, records[0]["fullName"]).Equal(any("a/x"))
		gt.V(t, records[0]["isFork"]).Equal(any(false))
		gt.V(t, records[0]["defaultBranch"]).Equal(any("main"))
		gt.V(t, records[1]["forksCount"]).Equal(any(float64(3)))
	})

	t.Run("CUE top-level list is accepted", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "list.cue")
		gt.NoError(t, os.WriteFile(path, []byte(`[{id: 1, fullName: "a/x", isFork: false, createdAt: "2020"}]`), 0600))

		records := gt.R1(local.New(path).LoadRecords(ctx)).NoError(t)
		gt.A(t, records).Length(1)
	})

	t.Run("CUE struct without repos field fails", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.cue")
		gt.NoError(t, os.WriteFile(path, []byte(`items: []`), 0600))

		_, err := local.New(path).LoadRecords(ctx)
		gt.Error(t, err)
	})

	t.Run("unsupported extension fails", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "repos.txt")
		gt.NoError(t, os.WriteFile(path, []byte(`[]`), 0600))

		_, err := local.New(path).LoadRecords(ctx)
		gt.True(t, errors.Is(err, types.ErrInvalidOption))
	})

	t.Run("missing file fails", func(t *testing.T) {
		_, err := local.New("testdata/no-such-file.json").LoadRecords(ctx)
		gt.Error(t, err)
	})

	t.Run("broken JSON fails", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "broken.json")
		gt.NoError(t, os.WriteFile(path, []byte(`[{`), 0600))

		_, err := local.New(path).LoadRecords(ctx)
		gt.Error(t, err)
	})
}
