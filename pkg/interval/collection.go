// pkg/interval/collection.go
// Copyright(c) 2026 atc-core contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package interval

// Collection is the canonical representation of a union of intervals.
// Every operation on this package returns a freshly allocated Collection:
// no result aliases the backing slice of either operand. A well-formed
// Collection (one produced by an operator in this package) satisfies:
//
//  1. no two elements strictly overlap;
//  2. elements may be adjacent (a.Stop == b.Start) without being merged;
//  3. element order is the order the producing operation emitted them in.
//
// A Collection built directly from arbitrary elements (via NewCollection)
// carries none of those guarantees until it has been through Union.
type Collection[T Number] struct {
	Elements []Interval[T]
}

// NewCollection wraps the given intervals verbatim, without normalising
// them. Use Union with an empty Collection to normalise an arbitrary set.
func NewCollection[T Number](elts ...Interval[T]) Collection[T] {
	cp := make([]Interval[T], len(elts))
	copy(cp, elts)
	return Collection[T]{Elements: cp}
}

// TotalDuration sums the duration of every element.
func (c Collection[T]) TotalDuration() T {
	var total T
	for _, e := range c.Elements {
		total += e.Duration()
	}
	return total
}

// Union computes c + other by a sweep over the concatenation of both
// collections' elements (neither is assumed sorted). The result is
// normalised: pairwise non-overlapping, emitted in strictly increasing
// start order.
func (c Collection[T]) Union(other Collection[T]) Collection[T] {
	all := make([]Interval[T], 0, len(c.Elements)+len(other.Elements))
	all = append(all, c.Elements...)
	all = append(all, other.Elements...)

	if len(all) == 0 {
		return Collection[T]{}
	}

	var elts []Interval[T]
	cur, ok := minStart(all, nil)
	for ok {
		sweep := cur.Start
		limit := cur.Stop
		horizon := cur.Stop

		for _, e := range all {
			if sweep <= e.Start && e.Start <= limit && e.Stop > horizon {
				horizon = e.Stop
			}
		}

		for {
			extended := false
			for _, e := range all {
				if e.Start <= horizon && horizon < e.Stop {
					horizon = e.Stop
					extended = true
				}
			}
			if !extended {
				break
			}
		}

		elts = append(elts, Interval[T]{Start: sweep, Stop: horizon})
		cur, ok = minStart(all, &horizon)
	}

	return Collection[T]{Elements: elts}
}

// minStart returns the element with the lexicographically smallest
// (Start, Stop), restricted to elements with Start > after when after is
// non-nil. Ties are broken by the smallest Stop, matching the reference
// sweep's ascending (start, stop) tie-break.
func minStart[T Number](elts []Interval[T], after *T) (Interval[T], bool) {
	var best Interval[T]
	found := false
	for _, e := range elts {
		if after != nil && e.Start <= *after {
			continue
		}
		if !found || e.Start < best.Start || (e.Start == best.Start && e.Stop < best.Stop) {
			best = e
			found = true
		}
	}
	return best, found
}

// UnionInterval computes c + other (C + A).
func (c Collection[T]) UnionInterval(other Interval[T]) Collection[T] {
	return c.Union(Collection[T]{Elements: []Interval[T]{other}})
}

// Diff computes c - other (C - A): elements of c that do not overlap
// other pass through verbatim; overlapping elements are trimmed to what
// remains outside other.
func (c Collection[T]) Diff(other Interval[T]) Collection[T] {
	var elts []Interval[T]
	for _, e := range c.Elements {
		if e.Overlaps(other) {
			if other.Start > e.Start {
				elts = append(elts, Interval[T]{Start: e.Start, Stop: other.Start})
			}
			if other.Stop < e.Stop {
				elts = append(elts, Interval[T]{Start: other.Stop, Stop: e.Stop})
			}
		} else {
			elts = append(elts, e)
		}
	}
	return Collection[T]{Elements: elts}
}

// DiffCollection computes c - other (C - C) by folding Diff over other's
// elements.
func (c Collection[T]) DiffCollection(other Collection[T]) Collection[T] {
	res := NewCollection(c.Elements...)
	for _, e := range other.Elements {
		res = res.Diff(e)
	}
	return res
}

// IntersectInterval computes c & other (C & A): equivalent to
// other.IntersectCollection(c), preserving the order of c's elements.
func (c Collection[T]) IntersectInterval(other Interval[T]) Collection[T] {
	return other.IntersectCollection(c)
}

// Intersect computes c & other (C & C): for each pair (a, b) in c x
// other, keeps a & b when non-empty. Result order follows the outer
// iteration over other, then the inner iteration over c — matching the
// observable behaviour callers rely on.
func (c Collection[T]) Intersect(other Collection[T]) Collection[T] {
	elts := make([]Interval[T], 0, len(c.Elements))
	for _, b := range other.Elements {
		r := b.IntersectCollection(c)
		elts = append(elts, r.Elements...)
	}
	return Collection[T]{Elements: elts}
}
