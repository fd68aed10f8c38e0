package errflow

import (
	"context"
	"sync"

	"github.com/nj-eka/WordsStatGo/errs"
	"github.com/nj-eka/WordsStatGo/logging"
)

type FuncErrorHandler func(cerr <-chan errs.Error, wg *sync.WaitGroup)

func MapErrorHandlers(
	ctx context.Context,
	scerr map[errs.Severity]chan errs.Error,
	handlers map[errs.Severity]FuncErrorHandler,
	defaultHandler FuncErrorHandler,
) <-chan struct{} {
	logging.Msg(ctx).Debug("errors handlers - start")
	done := make(chan struct{})
	var wg sync.WaitGroup
	for severity, cerr := range scerr {
		handler := defaultHandler
		if h, ok := handlers[severity]; ok {
			handler = h
		}
		wg.Add(1)
		go handler(cerr, &wg)
	}
	go func() {
		wg.Wait()
		close(done)
		logging.Msg(ctx).Debug("errors handlers - stop")
	}()
	return done
}

func LoggingErrorHandler(cerr <-chan errs.Error, wg *sync.WaitGroup) {
	defer wg.Done()
	for err := range cerr {
		logging.LogError(err)
	}
}

// CriticalErrorHandlerBuilder logs errors and calls cancel on the first one of given kinds (any kind if kinds is empty)
func CriticalErrorHandlerBuilder(cancel context.CancelFunc, kinds []errs.Kind) FuncErrorHandler {
	return func(cerr <-chan errs.Error, wg *sync.WaitGroup) {
		defer wg.Done()
		for err := range cerr {
			logging.LogError(err)
			if len(kinds) == 0 {
				cancel()
				continue
			}
			for _, kind := range kinds {
				if err.Kind() == kind {
					cancel()
					break
				}
			}
		}
	}
}
