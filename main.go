package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	conf "github.com/heetch/confita"
	"github.com/heetch/confita/backend/file"
	"github.com/heetch/confita/backend/flags"
	cu "github.com/nj-eka/WordsStatGo/ctxutils"
	"github.com/nj-eka/WordsStatGo/errs"
	errflow "github.com/nj-eka/WordsStatGo/errsflow"
	"github.com/nj-eka/WordsStatGo/logging"
	"github.com/nj-eka/WordsStatGo/output"
	"github.com/nj-eka/WordsStatGo/psort"
	"github.com/nj-eka/WordsStatGo/workflow"
)

const (
	DefaultVerbose   = false
	DefaultThreshold = psort.DefaultThreshold
)

// exit codes; usage is not an error
const (
	ExitOK = iota
	ExitRunFailed
	ExitInvalidConfig
)

var (
	AppName            = filepath.Base(os.Args[0])
	DefaultConfigFile  = "config.yml"
	DefaultLogFile     = "" // os.Stdout
	DefaultTraceFile   = fmt.Sprintf("%s.trace.out", AppName)
	DefaultParallelism = psort.DefaultBudget()
)

type Config struct {
	//// 0. logging
	// logging output file, if empty then os.Stdout
	LogFile string `config:"log,description=Path to logging output file (empty = os.Stdout)" yaml:"log_file"`
	// logrus logging levels: panic, fatal, error, warn / warning, info, debug, trace
	LogLevel string `config:"log_level,short=l,description=Logging level: panic fatal error warn info debug trace" yaml:"log_level"`
	// supported logging formats: text, json
	LogFormat string `config:"log_format,description=Logging format: text json" yaml:"log_format"`
	// Go execution tracer output file (tracing is on if LogLevel == trace)
	TraceFile string `config:"trace,description=Trace output file (tracing is on if LogLevel == trace)" yaml:"trace_file"`

	//// 1. processing
	// Display processing statistics (os.Stdout)
	Verbose bool `config:"verbose,short=v,description=Display processing statistics (os.Stdout)" yaml:"verbose"`
	// Sort concurrency budget: each level of parallel merge sort spends 2 units
	Parallelism int `config:"parallelism,short=p,description=Sort concurrency budget (default: half of CPUs; 0 or 1 = sequential)" yaml:"parallelism"`
	// Sub-ranges shorter than this are sorted sequentially
	Threshold int `config:"threshold,description=Sequential sort cut-off" yaml:"threshold"`
}

var cfg = Config{
	LogFile:     DefaultLogFile,
	LogLevel:    logging.DefaultLevel.String(),
	LogFormat:   logging.DefaultFormat,
	TraceFile:   DefaultTraceFile,
	Verbose:     DefaultVerbose,
	Parallelism: DefaultParallelism,
	Threshold:   DefaultThreshold,
}

func usage() {
	_, _ = fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [options] <fromfile> <tofile>\n", AppName)
	flag.PrintDefaults()
}

func main() {
	os.Exit(run())
}

func run() int {
	startTime := time.Now()
	ctx := cu.BuildContext(context.Background(), cu.SetContextOperation("00.init"), cu.SetContextRunID(uuid.NewString()))

	flag.Usage = usage
	loader := conf.NewLoader(
		file.NewOptionalBackend(DefaultConfigFile),
		flags.NewBackend(),
	)
	if err := loader.Load(ctx, &cfg); err != nil {
		logging.LogError(ctx, errs.SeverityCritical, errs.KindInvalidValue, fmt.Errorf("invalid config: %w", err))
		return ExitInvalidConfig
	}
	args := flag.Args()
	if len(args) != 2 {
		usage()
		return ExitOK
	}
	if err := logging.Initialize(ctx, cfg.LogFile, cfg.LogLevel, cfg.LogFormat, cfg.TraceFile, nil); err != nil {
		logging.LogError(err)
		return ExitInvalidConfig
	}
	defer logging.Finalize()
	cfgJson, _ := json.Marshal(cfg)
	logging.Msg(ctx).Infof("%s started with pid %d", AppName, os.Getpid())
	logging.Msg(ctx).Debugf("options: %v, args: %v", string(cfgJson), args)

	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt)
	defer cancel()
	ctx = cu.BuildContext(ctx, cu.SetContextOperation("0.main"))

	pl := workflow.NewPipeline(workflow.Config{
		InputPath:  args[0],
		OutputPath: args[1],
		Budget:     cfg.Parallelism,
		Threshold:  cfg.Threshold,
		StatsOn:    cfg.Verbose,
	})
	// errors are logged once by error handlers
	errsStat := errflow.LaunchErrorHandlers(ctx, cancel, cfg.Verbose, pl.ErrCh())
	err := pl.Run(ctx)
	<-errsStat.Done

	if cfg.Verbose {
		producers := []interface{}{errsStat}
		for _, sp := range pl.StatProducers() {
			producers = append(producers, sp)
		}
		output.PrintProcessMonitors(os.Stdout, startTime, true, pl.Phases(), producers...)
	}
	if err != nil {
		logging.Msg(ctx).Debugf("%s stopped: %v", AppName, err)
		return ExitRunFailed
	}
	logging.Msg(ctx).Debugf("%s done in %v", AppName, time.Since(startTime))
	return ExitOK
}
