package workflow

import (
	"context"
	"fmt"

	"github.com/nj-eka/WordsStatGo/errs"
	"github.com/nj-eka/WordsStatGo/logging"
)

// OnExit must be deferred directly: it turns panic of the current stage into critical error (stored into *errp),
// logs normal completion and calls fn.
func OnExit(ctx context.Context, prefixMsg string, errp *errs.Error, fn func()) {
	if r := recover(); r != nil {
		err, ok := r.(error)
		if !ok {
			err = fmt.Errorf("%v", r)
		}
		*errp = errs.E(ctx, errs.KindInternal, errs.SeverityCritical, fmt.Errorf("%s - panic: %w", prefixMsg, err))
	} else if *errp == nil && len(prefixMsg) > 0 {
		logging.Msg(ctx).Debug(prefixMsg, " - ok")
	}
	if fn != nil {
		fn()
	}
}
