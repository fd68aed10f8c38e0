package workflow

import (
	"context"
	"fmt"
	"os"
	"os/user"
	"time"

	cu "github.com/nj-eka/WordsStatGo/ctxutils"
	"github.com/nj-eka/WordsStatGo/errs"
	"github.com/nj-eka/WordsStatGo/fh"
	"github.com/nj-eka/WordsStatGo/logging"
	"github.com/nj-eka/WordsStatGo/regs"
	"github.com/nj-eka/WordsStatGo/wordstat"
)

type SaverStats struct {
	StartTime, FinishTime time.Time
	// score = bytes written, count = writes
	BytesCounter regs.Counter
	Lines        int
}

// Saver writes ordered records into output file
type Saver interface {
	Run(ctx context.Context, records []wordstat.WordCount) errs.Error
	Stats() interface{}
}

type fileSaver struct {
	filePath string
	usr      *user.User
	stats    SaverStats
}

func NewSaver(filePath string, usr *user.User, statsOn bool) Saver {
	return &fileSaver{
		filePath: filePath,
		usr:      usr,
		stats: SaverStats{
			BytesCounter: regs.NewCounter(0, statsOn),
		},
	}
}

// Run writes records into a temp file next to target and renames it to target on success,
// so target is either fully written or left untouched.
func (r *fileSaver) Run(ctx context.Context, records []wordstat.WordCount) (err errs.Error) {
	ctx = cu.BuildContext(ctx, cu.AddContextOperation("3.saver"))
	r.stats.StartTime = time.Now()
	defer OnExit(ctx, fmt.Sprintf("writing file [%s]", r.filePath), &err, func() {
		r.stats.FinishTime = time.Now()
	})

	filePath, rerr := fh.ResolvePath(r.filePath, r.usr)
	if rerr != nil {
		return errs.E(ctx, errs.KindInvalidValue, errs.Path(r.filePath), fmt.Errorf("resolving file [%s] failed: %w", r.filePath, rerr))
	}
	tmp, cerr := fh.CreateSibling(filePath)
	if cerr != nil {
		return errs.E(ctx, errs.KindOpenFile, errs.Path(filePath), fmt.Errorf("can't open output file for writing [%s]: %w", filePath, cerr))
	}
	tmpPath := tmp.Name()
	logging.Msg(ctx).Debug("> create ", tmpPath)
	committed := false
	defer func() {
		if !committed {
			rmErr := os.Remove(tmpPath)
			logging.Msg(ctx).Debug("< remove ", tmpPath, " with err: ", rmErr)
		}
	}()

	written, werr := wordstat.Write(&countingWriter{w: tmp, counter: r.stats.BytesCounter}, records)
	if werr != nil {
		_ = tmp.Close()
		return errs.E(ctx, errs.KindIO, errs.Path(filePath), fmt.Errorf("error occurred while writing into file [%s]: %w", filePath, werr))
	}
	if cerr := tmp.Close(); cerr != nil {
		return errs.E(ctx, errs.KindIO, errs.Path(filePath), fmt.Errorf("closing file [%s] failed: %w", filePath, cerr))
	}
	if merr := os.Chmod(tmpPath, 0644); merr != nil {
		logging.Msg(ctx).Warnf("chmod [%s] failed: %v", tmpPath, merr)
	}
	if rnErr := os.Rename(tmpPath, filePath); rnErr != nil {
		return errs.E(ctx, errs.KindIO, errs.Path(filePath), fmt.Errorf("renaming [%s] to [%s] failed: %w", tmpPath, filePath, rnErr))
	}
	committed = true
	r.stats.Lines = len(records)
	logging.Msg(ctx).Infof("write output file [%s] - ok: %d lines, %d bytes", filePath, len(records), written)
	return nil
}

func (r *fileSaver) Stats() interface{} {
	return &r.stats
}
