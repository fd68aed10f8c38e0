package errs

import (
	"fmt"
	"runtime"
)

const maxStackDepth = 32

type Frame struct {
	Function string
	File     string
	Line     int
}

func (f Frame) String() string {
	return fmt.Sprintf("%s:%d %s", f.File, f.Line, f.Function)
}

// Trace collects call stack frames skipping first skip callers (0 = Trace itself)
func Trace(skip int) []Frame {
	pcs := make([]uintptr, maxStackDepth)
	n := runtime.Callers(skip+1, pcs)
	if n == 0 {
		return nil
	}
	frames := runtime.CallersFrames(pcs[:n])
	result := make([]Frame, 0, n)
	for {
		frame, more := frames.Next()
		result = append(result, Frame{Function: frame.Function, File: frame.File, Line: frame.Line})
		if !more {
			break
		}
	}
	return result
}
