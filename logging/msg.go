package logging

import (
	"context"
	"time"

	cu "github.com/nj-eka/WordsStatGo/ctxutils"
	"github.com/sirupsen/logrus"
)

func Msg(args ...interface{}) *logrus.Entry {
	entry := logrus.WithFields(logrus.Fields{
		"cts": time.Now().Format(DefaultTimeFormat),
		"rec": "msg",
	})
	if len(args) == 1 {
		switch arg := args[0].(type) {
		case cu.Operation:
			return entry.WithField("ops", string(arg))
		case cu.Operations:
			return entry.WithField("ops", arg.String())
		case context.Context:
			fields := logrus.Fields{}
			if ops := cu.GetContextOperations(arg); len(ops.Path) > 0 {
				fields["ops"] = ops.String()
			}
			if runID := cu.GetContextRunID(arg); runID != "" {
				fields["run"] = runID
			}
			return entry.WithContext(arg).WithFields(fields)
		}
	}
	return entry
}
