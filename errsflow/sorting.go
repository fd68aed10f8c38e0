package errflow

import (
	"context"

	"github.com/nj-eka/WordsStatGo/errs"
	"github.com/nj-eka/WordsStatGo/logging"
	"github.com/nj-eka/WordsStatGo/regs"
)

type ErrStatKey struct {
	Severity   errs.Severity
	Kind       errs.Kind
	Operations string
}

func (k ErrStatKey) Less(other ErrStatKey) bool {
	if k.Severity != other.Severity {
		return k.Severity < other.Severity
	}
	if k.Operations != other.Operations {
		return k.Operations < other.Operations
	}
	return k.Kind < other.Kind
}

type ErrorStats = regs.Decounter[ErrStatKey]

// SortFilteredErrors counts all incoming errors and routes those with severity in filterSeverities to their own channels
func SortFilteredErrors(ctx context.Context, cerr <-chan errs.Error, filterSeverities []errs.Severity, statsOn bool) (map[errs.Severity]chan errs.Error, ErrorStats) {
	scerr := make(map[errs.Severity]chan errs.Error, len(filterSeverities))
	stats := regs.NewDecounter[ErrStatKey](len(errs.AllSeverities), statsOn)
	for _, severity := range filterSeverities {
		scerr[severity] = make(chan errs.Error, cap(cerr)+1)
	}
	go func() {
		defer func() {
			for sev, cerr := range scerr {
				close(cerr)
				logging.Msg(ctx).Debug("errors channel [", sev.String(), "] - closed")
			}
		}()
		for err := range cerr {
			if err == nil {
				continue
			}
			stats.CheckIn(ErrStatKey{err.Severity(), err.Kind(), err.OperationPath().String()})
			if cerr, ok := scerr[err.Severity()]; ok {
				cerr <- err
			}
		}
	}()
	return scerr, stats
}
