package logging

import (
	"github.com/nj-eka/WordsStatGo/errs"
	"github.com/sirupsen/logrus"
)

// LogError builds errs.Error from args (see errs.E) and logs it at the level matching its severity
func LogError(args ...interface{}) {
	if len(args) == 0 {
		return
	}
	err := errs.E(args...)
	entry := logrus.WithFields(logrus.Fields{
		"rec":  "err",
		"cts":  err.TimeStamp().Format(DefaultTimeFormat),
		"ops":  err.OperationPath().String(),
		"kind": err.Kind().String(),
	})
	if path := err.Path(); path != "" {
		entry = entry.WithField("path", path)
	}
	switch err.Severity() {
	case errs.SeverityCritical, errs.SeverityError:
		if logrus.IsLevelEnabled(logrus.DebugLevel) {
			entry = entry.WithField("stack", err.StackTrace())
		}
		entry.Error(err.Unwrap())
	case errs.SeverityWarning:
		entry.Warn(err.Unwrap())
	case errs.SeverityInfo:
		entry.Info(err.Unwrap())
	default:
		entry.Debug(err.Unwrap())
	}
}
