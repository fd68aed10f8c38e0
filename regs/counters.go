package regs

import "sort"

// Counter accumulates number of hits (count) and their total weight (score)
type Counter interface {
	Add(num uint64) uint64
	GetCount() uint64
	GetScore() uint64
	GetCountScore() (count uint64, score uint64)
}

// Decounter is a set of Counters addressed by key
type Decounter[K comparable] interface {
	CheckIn(key K) uint64
	GetScores() map[K]uint64
	GetCounterPairs() []CounterPair[K]
	KeysCount() int
	TotalCount() uint64
}

type CounterPair[K comparable] struct {
	Key   K
	Count uint64
}

type Lesser[K any] interface {
	Less(K) bool
}

// SortCounterPairs orders pairs by key (keys must implement Lesser)
func SortCounterPairs[K interface {
	comparable
	Lesser[K]
}](pairs []CounterPair[K]) {
	sort.Slice(pairs, func(i, j int) bool {
		return pairs[i].Key.Less(pairs[j].Key)
	})
}
