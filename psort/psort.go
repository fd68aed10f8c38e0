// Package psort implements a fork/join parallel merge sort over slices.
//
// The slice is split at its midpoint; the first half is sorted on a new
// goroutine while the second half is sorted on the calling one. After the
// join the two sorted halves are merged back into the same slice. Every
// level of recursion spends 2 units of the concurrency budget, so a budget
// of N allows roughly N/2 levels of fan-out. Sub-ranges shorter than the
// threshold, or reached with a budget below 2, are sorted sequentially.
package psort

import (
	"runtime"
	"sort"
)

// DefaultThreshold is the sub-range length below which sorting is sequential
const DefaultThreshold = 1024

// Less reports whether a must be placed before b. It must be a strict weak ordering.
type Less[T any] func(a, b T) bool

// DefaultBudget is half of available hardware threads
func DefaultBudget() int {
	return runtime.NumCPU() / 2
}

// Sort sorts s in place by less using budget as concurrency budget and DefaultThreshold
func Sort[T any](s []T, less Less[T], budget int) {
	SortThreshold(s, less, budget, DefaultThreshold)
}

// SortThreshold is Sort with a custom sequential cut-off (threshold < 2 is treated as 2)
func SortThreshold[T any](s []T, less Less[T], budget int, threshold int) {
	if threshold < 2 {
		threshold = 2
	}
	if len(s) < threshold || budget < 2 {
		sortSeq(s, less)
		return
	}
	// each merge copies its left half into the same index range of scratch,
	// concurrent merges work on disjoint ranges
	scratch := make([]T, len(s))
	mergeSort(s, scratch, less, budget, threshold)
}

func mergeSort[T any](s, scratch []T, less Less[T], budget int, threshold int) {
	if len(s) < threshold || budget < 2 {
		sortSeq(s, less)
		return
	}
	mid := len(s) / 2
	done := make(chan struct{})
	go func() {
		defer close(done)
		mergeSort(s[:mid], scratch[:mid], less, budget-2, threshold)
	}()
	mergeSort(s[mid:], scratch[mid:], less, budget-2, threshold)
	<-done
	merge(s, mid, scratch, less)
}

// merge merges sorted s[:mid] and s[mid:] into s (stable)
func merge[T any](s []T, mid int, scratch []T, less Less[T]) {
	if mid == 0 || mid == len(s) || !less(s[mid], s[mid-1]) {
		return // already in order
	}
	left := scratch[:mid]
	copy(left, s[:mid])
	i, j, k := 0, mid, 0
	for i < len(left) && j < len(s) {
		// take from right only if strictly less: equal elements keep left-first order
		if less(s[j], left[i]) {
			s[k] = s[j]
			j++
		} else {
			s[k] = left[i]
			i++
		}
		k++
	}
	// rest of right half is already in place
	copy(s[k:], left[i:])
	clear(left)
}

func sortSeq[T any](s []T, less Less[T]) {
	if len(s) < 2 {
		return
	}
	sort.Slice(s, func(i, j int) bool {
		return less(s[i], s[j])
	})
}
