package output

import (
	"bufio"
	"fmt"
	"io"
	"runtime"
	"time"

	cu "github.com/nj-eka/WordsStatGo/ctxutils"
	erf "github.com/nj-eka/WordsStatGo/errsflow"
	"github.com/nj-eka/WordsStatGo/fh"
	"github.com/nj-eka/WordsStatGo/logging"
	"github.com/nj-eka/WordsStatGo/regs"
	"github.com/nj-eka/WordsStatGo/workflow"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	colorReset = "\033[0m"

	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorBlue   = "\033[34m"
	colorCyan   = "\033[36m"
)

type errorStatsProducer interface {
	ErrorStats() erf.ErrorStats
}

// PrintProcessMonitors writes run summary: phases, per stage stats, memory usage and errors
func PrintProcessMonitors(
	w io.Writer,
	startTime time.Time,
	colored bool,
	phases []workflow.PhaseTiming,
	statProducers ...interface{},
) {
	ctx := cu.BuildContext(nil, cu.SetContextOperation("print_monitors"))
	p := message.NewPrinter(language.English)
	bufOut := bufio.NewWriter(w)
	bout := func(s string) {
		if _, err := bufOut.WriteString(s); err != nil {
			logging.LogError(ctx, fmt.Errorf("bufio write string [%s] failed: %w", s, err))
		}
	}
	color := func(c string) {
		if colored {
			bout(c)
		}
	}
	var (
		loaderStats *workflow.LoaderStats
		sorterStats *workflow.SorterStats
		saverStats  *workflow.SaverStats
		errsStats   erf.ErrorStats
	)
	for _, producer := range statProducers {
		switch sp := producer.(type) {
		case workflow.StatProducer:
			switch st := sp.Stats().(type) {
			case *workflow.LoaderStats:
				loaderStats = st
			case *workflow.SorterStats:
				sorterStats = st
			case *workflow.SaverStats:
				saverStats = st
			}
		case errorStatsProducer:
			errsStats = sp.ErrorStats()
		}
	}

	bout(fmt.Sprintln("Time elapsed:", time.Since(startTime).Round(time.Millisecond)))
	for _, phase := range phases {
		ms := phase.Duration.Milliseconds()
		bout(fmt.Sprintf("  time spent for %s: %ds %dms\n", phase.Phase, ms/1000, ms%1000))
	}

	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)
	color(colorCyan)
	bout("Mem.usage stats:")
	bout(fmt.Sprintf("\tAlloc = %v", fh.BytesToHuman(ms.Alloc)))
	bout(fmt.Sprintf("\tTotalAlloc = %v", fh.BytesToHuman(ms.TotalAlloc)))
	bout(fmt.Sprintf("\tSys = %v", fh.BytesToHuman(ms.Sys)))
	bout(fmt.Sprintf("\tNumGC = %v\n", ms.NumGC))
	color(colorReset)

	if loaderStats != nil {
		since, status := stageTime(loaderStats.StartTime, loaderStats.FinishTime)
		color(colorBlue)
		bout(fmt.Sprintf("Loader stats (read): %s - %v\n", status, since))
		_, bytes := loaderStats.BytesCounter.GetCountScore()
		bout(fmt.Sprintf("%10s(bytes: %8s/s)", fh.BytesToHuman(bytes), fh.BytesToHuman(perSecond(bytes, since))))
		bout(p.Sprintf("%14d(words) %10d(distinct)\n", loaderStats.TotalWords, loaderStats.DistinctWords))
	}
	if sorterStats != nil {
		since, status := stageTime(sorterStats.StartTime, sorterStats.FinishTime)
		color(colorGreen)
		bout(fmt.Sprintf("Sorter stats: %s - %v\n", status, since))
		bout(p.Sprintf("%14d(records) budget = %d threshold = %d\n", sorterStats.Records, sorterStats.Budget, sorterStats.Threshold))
	}
	if saverStats != nil {
		since, status := stageTime(saverStats.StartTime, saverStats.FinishTime)
		color(colorYellow)
		bout(fmt.Sprintf("Saver stats (write): %s - %v\n", status, since))
		_, bytes := saverStats.BytesCounter.GetCountScore()
		bout(fmt.Sprintf("%10s(bytes: %8s/s)", fh.BytesToHuman(bytes), fh.BytesToHuman(perSecond(bytes, since))))
		bout(p.Sprintf("%14d(lines)\n", saverStats.Lines))
	}
	if errsStats != nil {
		cp := errsStats.GetCounterPairs()
		if len(cp) > 0 {
			color(colorRed)
			bout("Errors:\n")
			regs.SortCounterPairs(cp)
			for _, pair := range cp {
				bout(fmt.Sprintf(" *%-8s: %-32s # %4d - %s\n", pair.Key.Severity, pair.Key.Operations, pair.Count, pair.Key.Kind))
			}
		}
	}
	color(colorReset)

	if err := bufOut.Flush(); err != nil {
		logging.LogError(ctx, fmt.Errorf("bufio flush failed: %w", err))
	}
}

func stageTime(start, finish time.Time) (time.Duration, string) {
	if start.IsZero() {
		return 0, "not started"
	}
	if finish.IsZero() {
		return time.Since(start), "in progress"
	}
	return finish.Sub(start), "done"
}

func perSecond(value uint64, d time.Duration) uint64 {
	if d <= 0 {
		return value
	}
	return uint64(float64(value) / d.Seconds())
}
