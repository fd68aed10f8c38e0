package wordstat

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/nj-eka/WordsStatGo/psort"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCount(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Frequencies
	}{
		{"empty", "", Frequencies{}},
		{"delimiters only", " ,.!123\n\t-", Frequencies{}},
		{"case folding", "Hello HELLO hello", Frequencies{"hello": 3}},
		{"punctuation", "cat, dog! cat-dog", Frequencies{"cat": 2, "dog": 2}},
		{"digits split words", "abc1def2abc", Frequencies{"abc": 2, "def": 1}},
		{"trailing word", "onlyword", Frequencies{"onlyword": 1}},
		{"trailing delimiter", "onlyword\n", Frequencies{"onlyword": 1}},
		{"non ascii bytes are delimiters", "caf\xc3\xa9 na\xefve", Frequencies{"caf": 1, "na": 1, "ve": 1}},
		{"single letters", "a B c a", Frequencies{"a": 2, "b": 1, "c": 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Count(strings.NewReader(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCountWithoutByteReader(t *testing.T) {
	got, err := Count(iotest.OneByteReader(strings.NewReader("The quick, the lazy. THE END")))
	require.NoError(t, err)
	assert.Equal(t, Frequencies{"the": 3, "quick": 1, "lazy": 1, "end": 1}, got)
}

func TestCountIdempotent(t *testing.T) {
	text := randomText(5000, 11)
	first, err := Count(strings.NewReader(text))
	require.NoError(t, err)
	second, err := Count(strings.NewReader(text))
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestCountConservation(t *testing.T) {
	for seed := int64(0); seed < 5; seed++ {
		text := randomText(3000, seed)
		freqs, err := Count(strings.NewReader(text))
		require.NoError(t, err)
		assert.Equal(t, uint64(countAlphaRuns(text)), freqs.Total())
		records := freqs.Records()
		assert.Equal(t, uint64(countAlphaRuns(text)), Total(records))
	}
}

func TestCountReadError(t *testing.T) {
	boom := errors.New("device lost")
	r := io.MultiReader(strings.NewReader("alpha beta"), iotest.ErrReader(boom))
	_, err := Count(r)
	assert.ErrorIs(t, err, boom)
}

func TestRecordsClearsMap(t *testing.T) {
	freqs := Frequencies{"a": 1, "b": 2}
	records := freqs.Records()
	assert.Len(t, records, 2)
	assert.Empty(t, freqs)
	assert.ElementsMatch(t, []WordCount{{"a", 1}, {"b", 2}}, records)
}

func TestLess(t *testing.T) {
	assert.True(t, Less(WordCount{"zeta", 5}, WordCount{"alpha", 4}))
	assert.False(t, Less(WordCount{"alpha", 4}, WordCount{"zeta", 5}))
	assert.True(t, Less(WordCount{"cat", 2}, WordCount{"dog", 2}))
	assert.False(t, Less(WordCount{"dog", 2}, WordCount{"cat", 2}))
	assert.False(t, Less(WordCount{"cat", 2}, WordCount{"cat", 2}))
}

func TestSortTotality(t *testing.T) {
	freqs, err := Count(strings.NewReader(randomText(20000, 5)))
	require.NoError(t, err)
	records := freqs.Records()
	Sort(records, psort.DefaultBudget())
	require.True(t, IsOrdered(records))
	for i := 1; i < len(records); i++ {
		a, b := records[i-1], records[i]
		assert.True(t, a.Count > b.Count || (a.Count == b.Count && a.Word < b.Word), "%v before %v", a, b)
	}
}

func TestSortBudgetInvariance(t *testing.T) {
	freqs, err := Count(strings.NewReader(randomText(40000, 9)))
	require.NoError(t, err)
	base := freqs.Records()
	require.Greater(t, len(base), psort.DefaultThreshold)

	var outputs [][]byte
	for _, budget := range []int{0, 1, 4, psort.DefaultBudget()} {
		records := append([]WordCount(nil), base...)
		Sort(records, budget)
		var buf bytes.Buffer
		_, err := Write(&buf, records)
		require.NoError(t, err)
		outputs = append(outputs, buf.Bytes())
	}
	for i := 1; i < len(outputs); i++ {
		assert.Equal(t, outputs[0], outputs[i])
	}

	records := append([]WordCount(nil), base...)
	SortThreshold(records, 16, 8)
	assert.True(t, IsOrdered(records))
}

func TestIsOrdered(t *testing.T) {
	assert.True(t, IsOrdered(nil))
	assert.True(t, IsOrdered([]WordCount{{"a", 3}, {"b", 3}, {"a", 1}}))
	assert.False(t, IsOrdered([]WordCount{{"b", 3}, {"a", 3}}))
	assert.False(t, IsOrdered([]WordCount{{"a", 1}, {"b", 2}}))
}

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	records := []WordCount{{"cat", 2}, {"dog", 2}, {"big", 1 << 40}}
	n, err := Write(&buf, records)
	require.NoError(t, err)
	assert.Equal(t, "cat 2\ndog 2\nbig 1099511627776\n", buf.String())
	assert.Equal(t, int64(buf.Len()), n)

	buf.Reset()
	n, err = Write(&buf, nil)
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Empty(t, buf.String())
}

func TestWriteError(t *testing.T) {
	records := make([]WordCount, 20000)
	for i := range records {
		records[i] = WordCount{fmt.Sprintf("w%d", i), 1}
	}
	_, err := Write(failingWriter{}, records)
	assert.Error(t, err)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func randomText(words int, seed int64) string {
	rnd := rand.New(rand.NewSource(seed))
	delims := []string{" ", "\n", ", ", "!", "-", "42", "\t", "\xff"}
	var sb strings.Builder
	for i := 0; i < words; i++ {
		n := 1 + rnd.Intn(4)
		for j := 0; j < n; j++ {
			ch := byte('a' + rnd.Intn(8))
			if rnd.Intn(5) == 0 {
				ch -= 'a' - 'A'
			}
			sb.WriteByte(ch)
		}
		sb.WriteString(delims[rnd.Intn(len(delims))])
	}
	return sb.String()
}

func countAlphaRuns(s string) (runs int) {
	inWord := false
	for i := 0; i < len(s); i++ {
		ch := s[i]
		isAlpha := ('a' <= ch && ch <= 'z') || ('A' <= ch && ch <= 'Z')
		if isAlpha && !inWord {
			runs++
		}
		inWord = isAlpha
	}
	return
}
