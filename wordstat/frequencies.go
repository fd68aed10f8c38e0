package wordstat

// Frequencies maps word to its number of occurrences
type Frequencies map[string]uint64

// Total is number of counted words
func (f Frequencies) Total() (total uint64) {
	for _, count := range f {
		total += count
	}
	return
}

// Records moves all entries into a slice (in no particular order) and clears f
func (f Frequencies) Records() []WordCount {
	records := make([]WordCount, 0, len(f))
	for word, count := range f {
		records = append(records, WordCount{Word: word, Count: count})
	}
	clear(f)
	return records
}
