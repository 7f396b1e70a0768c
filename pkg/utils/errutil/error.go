package errutil

import (
	"context"
	"errors"
	"fmt"

	"github.com/getsentry/sentry-go"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/repodeck/pkg/domain/types"
	"github.com/m-mizutani/repodeck/pkg/utils/logging"
)

var kinds = []struct {
	err  error
	name string
}{
	{types.ErrShape, "shape"},
	{types.ErrSourceUnavailable, "source_unavailable"},
	{types.ErrReadmeFetch, "readme_fetch"},
	{types.ErrInvalidOption, "invalid_option"},
	{types.ErrNotFound, "not_found"},
}

// Kind returns short name of the sentinel error that err wraps, or "unknown"
func Kind(err error) string {
	for _, k := range kinds {
		if errors.Is(err, k.err) {
			return k.name
		}
	}
	return "unknown"
}

// HandleError sends err to Sentry with goerr values and request ID as scope, then logs it
func HandleError(ctx context.Context, msg string, err error) {
	reqID, _ := logging.CtxRequestID(ctx)

	hub := sentry.CurrentHub().Clone()
	hub.ConfigureScope(func(scope *sentry.Scope) {
		scope.SetTag("request_id", reqID.String())
		scope.SetTag("error.kind", Kind(err))
		if goErr := goerr.Unwrap(err); goErr != nil {
			for k, v := range goErr.Values() {
				scope.SetExtra(fmt.Sprintf("%v", k), v)
			}
		}
	})
	evID := hub.CaptureException(err)

	logging.From(ctx).Error(msg,
		"error", err,
		"error.kind", Kind(err),
		"sentry.EventID", evID,
	)
}
