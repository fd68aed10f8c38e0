package errflow

import (
	"context"

	cu "github.com/nj-eka/WordsStatGo/ctxutils"
	"github.com/nj-eka/WordsStatGo/errs"
	"github.com/nj-eka/WordsStatGo/logging"
)

type ErrorsStat struct {
	Done  <-chan struct{}
	Stats ErrorStats
}

func (r *ErrorsStat) ErrorStats() ErrorStats {
	return r.Stats
}

// LaunchErrorHandlers logs errors from errsChs once each; critical errors cancel processing.
// Done is closed when all errsChs are closed and drained.
func LaunchErrorHandlers(ctx context.Context, cancel context.CancelFunc, statsOn bool, errsChs ...<-chan errs.Error) *ErrorsStat {
	ctx = cu.BuildContext(ctx, cu.SetContextOperation("_.errs_handling"))
	errsCh := MergeErrors(ctx, errsChs...)
	mscerrs, errsStats := SortFilteredErrors(ctx, errsCh, logging.GetSeveritiesFilter4CurrentLogLevel(), statsOn)
	errsDone := MapErrorHandlers(
		ctx,
		mscerrs,
		map[errs.Severity]FuncErrorHandler{
			errs.SeverityCritical: CriticalErrorHandlerBuilder(cancel, nil),
		},
		LoggingErrorHandler,
	)
	return &ErrorsStat{
		Done:  errsDone,
		Stats: errsStats,
	}
}
