package errs

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	cu "github.com/nj-eka/WordsStatGo/ctxutils"
)

type Error interface {
	error
	Severity() Severity
	TimeStamp() time.Time
	Kind() Kind
	OperationPath() cu.Operations
	// Path of the resource (file) the error is related to, if any
	Path() string
	StackTrace() []Frame
	Unwrap() error
}

// Path marks an argument of E as the failing resource identifier
type Path string

type errorData struct {
	err       error
	severity  Severity
	kind      Kind
	ops       cu.Operations
	path      Path
	timeStamp time.Time
	frames    []Frame
}

func newError() errorData {
	return errorData{severity: DefaultSeverity, timeStamp: time.Now()}
}

func E(args ...interface{}) Error {
	switch len(args) {
	case 0:
		panic("call to errs.E with no arguments")
	case 1:
		if e, ok := args[0].(Error); ok {
			return e
		}
	}
	e := newError()
	// the last on the list [args] wins
	for _, arg := range args {
		switch a := arg.(type) {
		case Severity:
			e.severity = a
		case Kind:
			e.kind = a
		case Path:
			e.path = a
		case cu.Operation:
			e.ops = cu.Operations{Path: []cu.Operation{a}}
		case cu.Operations:
			e.ops = a
		case context.Context:
			e.ops = cu.GetContextOperations(a)
		case error:
			e.err = a
		case string:
			e.err = errors.New(a)
		default:
			// unknown arg types are skipped
		}
	}
	if e.err == nil {
		e.err = errors.New(e.kind.String())
	}
	e.frames = Trace(2)
	return &e
}

func (e *errorData) Error() string {
	var sb strings.Builder
	if len(e.ops.Path) > 0 {
		sb.WriteString(e.ops.String())
		sb.WriteString(": ")
	}
	if e.kind != KindOther {
		sb.WriteString(e.kind.String())
		sb.WriteString(": ")
	}
	sb.WriteString(e.err.Error())
	return sb.String()
}

func (e *errorData) Severity() Severity           { return e.severity }
func (e *errorData) TimeStamp() time.Time         { return e.timeStamp }
func (e *errorData) Kind() Kind                   { return e.kind }
func (e *errorData) OperationPath() cu.Operations { return e.ops }
func (e *errorData) Path() string                 { return string(e.path) }
func (e *errorData) StackTrace() []Frame          { return e.frames }
func (e *errorData) Unwrap() error                { return e.err }

func (e *errorData) Format(f fmt.State, verb rune) {
	switch verb {
	case 'v':
		if f.Flag('+') {
			_, _ = fmt.Fprintf(f, "[%s] %s", e.severity, e.Error())
			for _, frame := range e.frames {
				_, _ = fmt.Fprintf(f, "\n\t%s", frame)
			}
			return
		}
		fallthrough
	case 's':
		_, _ = fmt.Fprint(f, e.Error())
	case 'q':
		_, _ = fmt.Fprintf(f, "%q", e.Error())
	}
}

// IsIOError reports whether err (or any error it wraps) is an I/O failure on a named resource
func IsIOError(err error) bool {
	var e Error
	if errors.As(err, &e) {
		switch e.Kind() {
		case KindIO, KindOpenFile, KindGzip:
			return true
		}
	}
	return false
}
