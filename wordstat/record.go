// Package wordstat holds word frequency statistics: counting words in a
// text stream, ordering counted words and writing them out.
package wordstat

import (
	"github.com/nj-eka/WordsStatGo/psort"
)

// WordCount is a word (lowercase ASCII letters) with its number of occurrences
type WordCount struct {
	Word  string
	Count uint64
}

// Less orders by descending count, then by ascending word
func Less(a, b WordCount) bool {
	return a.Count > b.Count || (a.Count == b.Count && a.Word < b.Word)
}

// IsOrdered reports whether records are ordered by Less (adjacent duplicates allowed)
func IsOrdered(records []WordCount) bool {
	for i := 1; i < len(records); i++ {
		if Less(records[i], records[i-1]) {
			return false
		}
	}
	return true
}

// Sort orders records in place by Less using parallel merge sort with given concurrency budget
func Sort(records []WordCount, budget int) {
	psort.Sort(records, Less, budget)
}

// SortThreshold is Sort with custom sequential cut-off
func SortThreshold(records []WordCount, budget, threshold int) {
	psort.SortThreshold(records, Less, budget, threshold)
}

// Total is sum of all counts
func Total(records []WordCount) (total uint64) {
	for _, r := range records {
		total += r.Count
	}
	return
}
