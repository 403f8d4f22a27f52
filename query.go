package funcidioms

import (
	"iter"
	"slices"

	"golang.org/x/exp/constraints"
)

// ============================================================================
// Query
// ============================================================================

// Query is a lazily evaluated from/where/select pipeline.
//
// Nothing runs until the sequence returned by All is iterated. Filters are
// evaluated in the order they were added and stop at the first one that
// rejects an element. Output keeps source order. A Query can be iterated
// again only if its source can.
//
// Example:
//
//	evens := From(Between(1, 10)).
//	    Where(func(i int) bool { return i%2 == 0 })
//	plusTen := Select(evens, func(i int) int { return i + 10 })
//	plusTen.Collect() // [12 14 16 18 20]
type Query[T any] struct {
	source iter.Seq[T]
	where  []func(T) bool
}

// From starts a query over source.
func From[T any](source iter.Seq[T]) Query[T] {
	return Query[T]{source: source}
}

// FromSlice starts a query over the elements of s.
func FromSlice[T any](s []T) Query[T] {
	return From(slices.Values(s))
}

// Where adds a filter. The receiver is left unchanged.
func (q Query[T]) Where(pred func(T) bool) Query[T] {
	where := make([]func(T) bool, len(q.where), len(q.where)+1)
	copy(where, q.where)
	return Query[T]{source: q.source, where: append(where, pred)}
}

func (q Query[T]) matches(v T) bool {
	for _, pred := range q.where {
		if !pred(v) {
			return false
		}
	}
	return true
}

// All returns the elements that pass every filter.
func (q Query[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		if q.source == nil {
			return
		}
		for v := range q.source {
			if q.matches(v) && !yield(v) {
				return
			}
		}
	}
}

// Collect drains the query into a slice.
func (q Query[T]) Collect() []T {
	return slices.Collect(q.All())
}

// Select projects every element that passes the filters.
// With no filters it is a plain element-wise map.
func Select[T, U any](q Query[T], proj func(T) U) Query[U] {
	filtered := q.All()
	return From(func(yield func(U) bool) {
		for v := range filtered {
			if !yield(proj(v)) {
				return
			}
		}
	})
}

// Take limits the query to its first n elements.
func (q Query[T]) Take(n int) Query[T] {
	seq := q.All()
	return From(func(yield func(T) bool) {
		if n <= 0 {
			return
		}
		taken := 0
		for v := range seq {
			if !yield(v) {
				return
			}
			taken++
			if taken >= n {
				return
			}
		}
	})
}

// Tap calls fn for each element as it passes through.
func (q Query[T]) Tap(fn func(T)) Query[T] {
	seq := q.All()
	return From(func(yield func(T) bool) {
		for v := range seq {
			fn(v)
			if !yield(v) {
				return
			}
		}
	})
}

// Empty returns a query with no elements (Monoid identity).
func (q Query[T]) Empty() Query[T] {
	return From(func(yield func(T) bool) {})
}

// Compose yields this query's elements, then other's (Monoid operation).
func (q Query[T]) Compose(other Query[T]) Query[T] {
	first, second := q.All(), other.All()
	return From(func(yield func(T) bool) {
		for v := range first {
			if !yield(v) {
				return
			}
		}
		for v := range second {
			if !yield(v) {
				return
			}
		}
	})
}

// Linq is the one-shot form of From(source).Where(...).Select(sel).
func Linq[T, U any](source iter.Seq[T], where []func(T) bool, sel func(T) U) iter.Seq[U] {
	q := From(source)
	for _, pred := range where {
		q = q.Where(pred)
	}
	return Select(q, sel).All()
}

// ============================================================================
// Sources
// ============================================================================

// Between yields lo, lo+1, ..., hi. It is empty when lo > hi.
func Between[N constraints.Integer](lo, hi N) iter.Seq[N] {
	return func(yield func(N) bool) {
		if lo > hi {
			return
		}
		for v := lo; ; v++ {
			if !yield(v) || v == hi {
				return
			}
		}
	}
}

// Count yields start, start+1, ... without end.
func Count[N constraints.Integer](start N) iter.Seq[N] {
	return func(yield func(N) bool) {
		for v := start; yield(v); v++ {
		}
	}
}
