package errflow

import (
	"context"
	"sync"

	cu "github.com/nj-eka/WordsStatGo/ctxutils"
	"github.com/nj-eka/WordsStatGo/errs"
	"github.com/nj-eka/WordsStatGo/logging"
)

// MergeErrors merges multiple channels of errors.
// Based on https://blog.golang.org/pipelines.
func MergeErrors(ctx context.Context, errChs ...<-chan errs.Error) <-chan errs.Error {
	ctx = cu.BuildContext(ctx, cu.AddContextOperation("merging"))
	var wg sync.WaitGroup
	capOut := 1
	for _, errCh := range errChs {
		if errCh != nil {
			capOut += cap(errCh)
		}
	}
	outputErrCh := make(chan errs.Error, capOut)

	output := func(errCh <-chan errs.Error) {
		defer wg.Done()
		for err := range errCh {
			outputErrCh <- err
		}
	}
	for _, errCh := range errChs {
		if errCh != nil {
			wg.Add(1)
			go output(errCh)
		}
	}

	go func() {
		wg.Wait()
		close(outputErrCh)
		logging.Msg(ctx).Debug("merged errors channel - closed")
	}()
	return outputErrCh
}
