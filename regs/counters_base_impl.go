package regs

import (
	"sync"
)

func NewCounter(initValue uint64, on bool) Counter {
	return &counter{score: initValue, isOn: on}
}

type counter struct {
	sync.RWMutex
	count uint64
	score uint64
	isOn  bool
}

func (r *counter) Add(num uint64) uint64 {
	if !r.isOn {
		return 0
	}
	r.Lock()
	defer r.Unlock()
	r.count++
	r.score += num
	return r.score
}

func (r *counter) GetCount() uint64 {
	r.RLock()
	defer r.RUnlock()
	return r.count
}

func (r *counter) GetScore() uint64 {
	r.RLock()
	defer r.RUnlock()
	return r.score
}

func (r *counter) GetCountScore() (count uint64, score uint64) {
	r.RLock()
	defer r.RUnlock()
	return r.count, r.score
}
