package workflow

import (
	"context"
	"fmt"
	"os/user"

	cu "github.com/nj-eka/WordsStatGo/ctxutils"
	"github.com/nj-eka/WordsStatGo/errs"
)

type StatProducer interface {
	Stats() interface{}
}

type ErrorProducer interface {
	ErrCh() <-chan errs.Error
}

type Config struct {
	InputPath, OutputPath string
	// sort concurrency budget, < 0 - default (half of CPUs)
	Budget int
	// sequential sort cut-off, <= 0 - default
	Threshold int
	StatsOn   bool
	User      *user.User
}

// Pipeline runs loader -> sorter -> saver one after another
type Pipeline interface {
	Run(ctx context.Context) errs.Error
	ErrorProducer
	Done() <-chan struct{}
	StatProducers() []StatProducer
	Phases() []PhaseTiming
}

type pipeline struct {
	loader Loader
	sorter Sorter
	saver  Saver
	timer  *PhaseTimer
	errCh  chan errs.Error
	done   chan struct{}
}

func NewPipeline(cfg Config) Pipeline {
	return &pipeline{
		loader: NewLoader(cfg.InputPath, cfg.User, cfg.StatsOn),
		sorter: NewSorter(cfg.Budget, cfg.Threshold),
		saver:  NewSaver(cfg.OutputPath, cfg.User, cfg.StatsOn),
		timer:  NewPhaseTimer(),
		errCh:  make(chan errs.Error, 1),
		done:   make(chan struct{}),
	}
}

// Run must be called once. The error (if any) is also sent to ErrCh which is closed on return.
func (p *pipeline) Run(ctx context.Context) (err errs.Error) {
	ctx = cu.BuildContext(ctx, cu.AddContextOperation("pipeline"))
	p.timer = NewPhaseTimer()
	defer OnExit(ctx, "pipeline", &err, func() {
		if err != nil {
			p.errCh <- err
		}
		close(p.errCh)
		close(p.done)
	})

	freqs, err := p.loader.Run(ctx)
	if err != nil {
		return err
	}
	p.timer.Log(ctx, "read and count stats")

	if err = checkInterrupted(ctx, "sorting"); err != nil {
		return err
	}
	records, err := p.sorter.Run(ctx, freqs)
	if err != nil {
		return err
	}
	p.timer.Log(ctx, "sort stats")

	if err = checkInterrupted(ctx, "writing"); err != nil {
		return err
	}
	if err = p.saver.Run(ctx, records); err != nil {
		return err
	}
	p.timer.Log(ctx, "write stats")
	return nil
}

func checkInterrupted(ctx context.Context, phase string) errs.Error {
	select {
	case <-ctx.Done():
		return errs.E(ctx, errs.KindInterrupted, fmt.Errorf("%s - interrupted: %w", phase, ctx.Err()))
	default:
		return nil
	}
}

func (p *pipeline) ErrCh() <-chan errs.Error {
	return p.errCh
}

func (p *pipeline) Done() <-chan struct{} {
	return p.done
}

func (p *pipeline) StatProducers() []StatProducer {
	return []StatProducer{p.loader, p.sorter, p.saver}
}

func (p *pipeline) Phases() []PhaseTiming {
	return p.timer.Phases()
}
