package wordstat

import (
	"bufio"
	"errors"
	"io"
)

const readBufferSize = 64 * 1024

// Count splits r into maximal runs of ASCII letters, folds them to lower case and counts them.
// Any other byte is a delimiter. A word at the end of stream is counted too.
// On read error the counts collected so far are returned along with the error.
func Count(r io.Reader) (Frequencies, error) {
	freqs := make(Frequencies)
	err := CountInto(r, freqs)
	return freqs, err
}

// CountInto adds counts of words read from r to freqs
func CountInto(r io.Reader, freqs Frequencies) error {
	br, ok := r.(io.ByteReader)
	if !ok {
		br = bufio.NewReaderSize(r, readBufferSize)
	}
	word := make([]byte, 0, 64)
	for {
		ch, err := br.ReadByte()
		if err != nil {
			if !errors.Is(err, io.EOF) {
				return err
			}
			if len(word) > 0 {
				freqs[string(word)]++
			}
			return nil
		}
		switch {
		case 'a' <= ch && ch <= 'z':
			word = append(word, ch)
		case 'A' <= ch && ch <= 'Z':
			word = append(word, ch+('a'-'A'))
		default:
			if len(word) > 0 {
				freqs[string(word)]++
				word = word[:0]
			}
		}
	}
}
