package regs

import (
	"sync"
)

func NewDecounter[K comparable](initCap int, on bool) Decounter[K] {
	return &decounter[K]{hits: make(map[K]Counter, initCap), isOn: on}
}

type decounter[K comparable] struct {
	sync.RWMutex
	hits map[K]Counter
	isOn bool
}

func (r *decounter[K]) GetCounterPairs() []CounterPair[K] {
	if !r.isOn {
		return []CounterPair[K]{}
	}
	r.RLock()
	defer r.RUnlock()
	pairs := make([]CounterPair[K], 0, len(r.hits))
	// counter values may change during iteration
	for k, c := range r.hits {
		pairs = append(pairs, CounterPair[K]{k, c.GetScore()})
	}
	return pairs
}

func (r *decounter[K]) CheckIn(key K) uint64 {
	if !r.isOn {
		return 0
	}
	r.RLock()
	if c, ok := r.hits[key]; ok {
		r.RUnlock()
		return c.Add(1)
	}
	r.RUnlock()
	r.Lock()
	defer r.Unlock()
	c, ok := r.hits[key]
	if !ok {
		c = NewCounter(0, true)
		r.hits[key] = c
	}
	return c.Add(1)
}

func (r *decounter[K]) GetScores() map[K]uint64 {
	if !r.isOn {
		return make(map[K]uint64)
	}
	r.RLock()
	defer r.RUnlock()
	result := make(map[K]uint64, len(r.hits))
	for k, c := range r.hits {
		result[k] = c.GetScore()
	}
	return result
}

func (r *decounter[K]) KeysCount() int {
	if !r.isOn {
		return 0
	}
	r.RLock()
	defer r.RUnlock()
	return len(r.hits)
}

func (r *decounter[K]) TotalCount() (totalCount uint64) {
	if !r.isOn {
		return 0
	}
	r.RLock()
	defer r.RUnlock()
	for _, c := range r.hits {
		totalCount += c.GetScore()
	}
	return
}
