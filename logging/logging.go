package logging

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/user"
	"runtime/trace"
	"strings"

	"github.com/nj-eka/WordsStatGo/errs"
	"github.com/nj-eka/WordsStatGo/fh"
	"github.com/sirupsen/logrus"
)

const (
	DefaultLevel      = logrus.InfoLevel
	DefaultFormat     = "text"
	DefaultTimeFormat = "2006-01-02 15:04:05.000000"
)

var (
	logFile   *os.File
	traceFile *os.File
)

// Initialize sets up logrus output, level and format.
// Go execution tracing is started if level == trace and traceFileName is not empty.
func Initialize(ctx context.Context, logFileName, level, format, traceFileName string, usr *user.User) errs.Error {
	logLevel, err := logrus.ParseLevel(level)
	if err != nil {
		return errs.E(ctx, errs.KindInvalidValue, errs.SeverityCritical, fmt.Errorf("invalid log level [%s]: %w", level, err))
	}
	var formatter logrus.Formatter
	switch strings.ToLower(format) {
	case "text":
		formatter = &logrus.TextFormatter{TimestampFormat: DefaultTimeFormat, FullTimestamp: true}
	case "json":
		formatter = &logrus.JSONFormatter{TimestampFormat: DefaultTimeFormat}
	default:
		return errs.E(ctx, errs.KindInvalidValue, errs.SeverityCritical, fmt.Errorf("invalid log format [%s]: text or json expected", format))
	}
	var out io.Writer = os.Stdout
	if logFileName != "" {
		if logFileName, err = fh.ResolvePath(logFileName, usr); err != nil {
			return errs.E(ctx, errs.KindInvalidValue, errs.SeverityCritical, errs.Path(logFileName), fmt.Errorf("invalid log file path: %w", err))
		}
		if logFile, err = os.OpenFile(logFileName, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644); err != nil {
			return errs.E(ctx, errs.KindOpenFile, errs.SeverityCritical, errs.Path(logFileName), fmt.Errorf("open log file [%s] failed: %w", logFileName, err))
		}
		out = logFile
	}
	logrus.SetOutput(out)
	logrus.SetLevel(logLevel)
	logrus.SetFormatter(formatter)

	if logLevel == logrus.TraceLevel && traceFileName != "" {
		if traceFileName, err = fh.ResolvePath(traceFileName, usr); err != nil {
			return errs.E(ctx, errs.KindInvalidValue, errs.SeverityCritical, errs.Path(traceFileName), fmt.Errorf("invalid trace file path: %w", err))
		}
		if traceFile, err = os.Create(traceFileName); err != nil {
			return errs.E(ctx, errs.KindOpenFile, errs.SeverityCritical, errs.Path(traceFileName), fmt.Errorf("create trace file [%s] failed: %w", traceFileName, err))
		}
		if err = trace.Start(traceFile); err != nil {
			_ = traceFile.Close()
			traceFile = nil
			return errs.E(ctx, errs.KindInternal, errs.SeverityCritical, fmt.Errorf("trace start failed: %w", err))
		}
		Msg(ctx).Debugf("tracing into [%s] - started", traceFileName)
	}
	return nil
}

// Finalize stops tracing and closes log file (if any)
func Finalize() {
	if traceFile != nil {
		trace.Stop()
		_ = traceFile.Close()
		traceFile = nil
	}
	if logFile != nil {
		logrus.SetOutput(os.Stdout)
		_ = logFile.Close()
		logFile = nil
	}
}

// GetSeveritiesFilter4CurrentLogLevel returns error severities which are worth handling at current log level
func GetSeveritiesFilter4CurrentLogLevel() []errs.Severity {
	switch logrus.GetLevel() {
	case logrus.PanicLevel, logrus.FatalLevel:
		return []errs.Severity{errs.SeverityCritical}
	case logrus.ErrorLevel:
		return []errs.Severity{errs.SeverityCritical, errs.SeverityError}
	case logrus.WarnLevel:
		return []errs.Severity{errs.SeverityCritical, errs.SeverityError, errs.SeverityWarning}
	case logrus.InfoLevel:
		return []errs.Severity{errs.SeverityCritical, errs.SeverityError, errs.SeverityWarning, errs.SeverityInfo}
	default:
		return errs.AllSeverities
	}
}
