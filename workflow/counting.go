package workflow

import (
	"io"

	"github.com/nj-eka/WordsStatGo/regs"
)

type countingReader struct {
	r       io.Reader
	counter regs.Counter
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	if n > 0 {
		c.counter.Add(uint64(n))
	}
	return n, err
}

type countingWriter struct {
	w       io.Writer
	counter regs.Counter
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	if n > 0 {
		c.counter.Add(uint64(n))
	}
	return n, err
}
