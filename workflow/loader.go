package workflow

import (
	"compress/gzip"
	"context"
	"fmt"
	"io"
	"os"
	"os/user"
	"strings"
	"time"

	cu "github.com/nj-eka/WordsStatGo/ctxutils"
	"github.com/nj-eka/WordsStatGo/errs"
	"github.com/nj-eka/WordsStatGo/fh"
	"github.com/nj-eka/WordsStatGo/logging"
	"github.com/nj-eka/WordsStatGo/regs"
	"github.com/nj-eka/WordsStatGo/wordstat"
)

type LoaderStats struct {
	StartTime, FinishTime time.Time
	// score = bytes read (decompressed), count = reads
	BytesCounter  regs.Counter
	TotalWords    uint64
	DistinctWords int
}

// Loader reads input file and counts words in it
type Loader interface {
	Run(ctx context.Context) (wordstat.Frequencies, errs.Error)
	Stats() interface{}
}

type loader struct {
	filePath string
	usr      *user.User
	stats    LoaderStats
}

func NewLoader(filePath string, usr *user.User, statsOn bool) Loader {
	return &loader{
		filePath: filePath,
		usr:      usr,
		stats: LoaderStats{
			BytesCounter: regs.NewCounter(0, statsOn),
		},
	}
}

func (r *loader) Run(ctx context.Context) (freqs wordstat.Frequencies, err errs.Error) {
	ctx = cu.BuildContext(ctx, cu.AddContextOperation("1.loader"))
	r.stats.StartTime = time.Now()
	defer OnExit(ctx, fmt.Sprintf("reading file [%s]", r.filePath), &err, func() {
		r.stats.FinishTime = time.Now()
	})

	filePath, rerr := fh.ResolvePath(r.filePath, r.usr)
	if rerr != nil {
		return nil, errs.E(ctx, errs.KindInvalidValue, errs.Path(r.filePath), fmt.Errorf("resolving file [%s] failed: %w", r.filePath, rerr))
	}
	file, oerr := os.Open(filePath)
	if oerr != nil {
		return nil, errs.E(ctx, errs.KindOpenFile, errs.Path(filePath), fmt.Errorf("can't open input file for reading [%s]: %w", filePath, oerr))
	}
	logging.Msg(ctx).Debug("> open ", filePath)
	defer func() {
		cerr := file.Close()
		logging.Msg(ctx).Debug("< close ", filePath, " with err: ", cerr)
	}()

	var input io.Reader = file
	if strings.HasSuffix(strings.ToLower(filePath), ".gz") {
		gz, gerr := gzip.NewReader(file)
		if gerr != nil {
			return nil, errs.E(ctx, errs.KindGzip, errs.Path(filePath), fmt.Errorf("gzip open [%s] failed: %w", filePath, gerr))
		}
		logging.Msg(ctx).Debug("> gzip open ", filePath)
		defer func() {
			cerr := gz.Close()
			logging.Msg(ctx).Debug("< gzip close ", filePath, " with err: ", cerr)
		}()
		input = gz
	}

	freqs, cerr := wordstat.Count(&countingReader{r: input, counter: r.stats.BytesCounter})
	if cerr != nil {
		_, bytes := r.stats.BytesCounter.GetCountScore()
		return nil, errs.E(ctx, errs.KindIO, errs.Path(filePath), fmt.Errorf("error occurred while reading file [%s] after %d bytes: %w", filePath, bytes, cerr))
	}
	r.stats.TotalWords, r.stats.DistinctWords = freqs.Total(), len(freqs)
	logging.Msg(ctx).Infof("read input file [%s] - ok: %d words, %d distinct", filePath, r.stats.TotalWords, r.stats.DistinctWords)
	return freqs, nil
}

func (r *loader) Stats() interface{} {
	return &r.stats
}
