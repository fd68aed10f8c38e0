package wordstat

import (
	"bufio"
	"io"
	"strconv"
)

// Write writes records as "<word> <count>\n" lines in the given order.
// It returns number of bytes written.
func Write(w io.Writer, records []WordCount) (int64, error) {
	bw := bufio.NewWriterSize(w, readBufferSize)
	var written int64
	line := make([]byte, 0, 64)
	for _, r := range records {
		line = append(line[:0], r.Word...)
		line = append(line, ' ')
		line = strconv.AppendUint(line, r.Count, 10)
		line = append(line, '\n')
		n, err := bw.Write(line)
		written += int64(n)
		if err != nil {
			return written, err
		}
	}
	return written, bw.Flush()
}
