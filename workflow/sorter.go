package workflow

import (
	"context"
	"time"

	cu "github.com/nj-eka/WordsStatGo/ctxutils"
	"github.com/nj-eka/WordsStatGo/errs"
	"github.com/nj-eka/WordsStatGo/logging"
	"github.com/nj-eka/WordsStatGo/psort"
	"github.com/nj-eka/WordsStatGo/wordstat"
)

type SorterStats struct {
	StartTime, FinishTime time.Time
	Records               int
	Budget, Threshold     int
}

// Sorter turns counted words into records ordered by wordstat.Less
type Sorter interface {
	Run(ctx context.Context, freqs wordstat.Frequencies) ([]wordstat.WordCount, errs.Error)
	Stats() interface{}
}

type sorter struct {
	budget    int
	threshold int
	stats     SorterStats
}

// NewSorter: budget < 0 means psort.DefaultBudget(), threshold <= 0 means psort.DefaultThreshold
func NewSorter(budget, threshold int) Sorter {
	if budget < 0 {
		budget = psort.DefaultBudget()
	}
	if threshold <= 0 {
		threshold = psort.DefaultThreshold
	}
	return &sorter{
		budget:    budget,
		threshold: threshold,
		stats:     SorterStats{Budget: budget, Threshold: threshold},
	}
}

// Run drains freqs (it is empty afterwards). Sorting is not interruptible.
func (r *sorter) Run(ctx context.Context, freqs wordstat.Frequencies) (records []wordstat.WordCount, err errs.Error) {
	ctx = cu.BuildContext(ctx, cu.AddContextOperation("2.sorter"))
	r.stats.StartTime = time.Now()
	defer OnExit(ctx, "sorting", &err, func() {
		r.stats.FinishTime = time.Now()
	})
	records = freqs.Records()
	r.stats.Records = len(records)
	logging.Msg(ctx).Debugf("sorting %d records with budget %d, threshold %d", len(records), r.budget, r.threshold)
	wordstat.SortThreshold(records, r.budget, r.threshold)
	return records, nil
}

func (r *sorter) Stats() interface{} {
	return &r.stats
}
