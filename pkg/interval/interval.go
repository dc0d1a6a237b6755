// pkg/interval/interval.go
// Copyright(c) 2026 atc-core contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// Package interval implements closed intervals [start, stop] over any
// ordered numeric scalar and the algebra (union, difference,
// intersection) of normalised collections of them.
//
// Interval.Start and Interval.Stop are public; callers are expected to
// maintain Start <= Stop themselves (see Interval's doc comment) — the
// type does not defend against a caller-built interval with Start > Stop,
// matching the precondition documented upstream.
package interval

import "golang.org/x/exp/constraints"

// Number is the scalar domain intervals are built over: anything
// supporting ordered comparison and +/-, which covers every scalar this
// package is exercised against (durations, altitudes, timestamps encoded
// as integers, latitudes).
type Number interface {
	constraints.Integer | constraints.Float
}

// Interval is a closed range [Start, Stop]. Callers are responsible for
// ensuring Start <= Stop; this is a precondition, not a runtime check.
type Interval[T Number] struct {
	Start, Stop T
}

// New builds an Interval. It does not validate Start <= Stop.
func New[T Number](start, stop T) Interval[T] {
	return Interval[T]{Start: start, Stop: stop}
}

// Duration returns Stop - Start.
func (iv Interval[T]) Duration() T {
	return iv.Stop - iv.Start
}

// Shift translates both endpoints by delta.
func (iv Interval[T]) Shift(delta T) Interval[T] {
	return Interval[T]{Start: iv.Start + delta, Stop: iv.Stop + delta}
}

// Overlaps reports strict overlap: touching endpoints alone do not
// overlap.
func (iv Interval[T]) Overlaps(other Interval[T]) bool {
	return iv.Start < other.Stop && iv.Stop > other.Start
}

// Intersect returns the intersection of iv and other, or false if they do
// not strictly overlap.
func (iv Interval[T]) Intersect(other Interval[T]) (Interval[T], bool) {
	if !iv.Overlaps(other) {
		return Interval[T]{}, false
	}
	start := iv.Start
	if other.Start > start {
		start = other.Start
	}
	stop := iv.Stop
	if other.Stop < stop {
		stop = other.Stop
	}
	return Interval[T]{Start: start, Stop: stop}, true
}

// Union computes iv + other as a normalised Collection (A + A in the
// operator surface).
func (iv Interval[T]) Union(other Interval[T]) Collection[T] {
	return Collection[T]{Elements: []Interval[T]{iv}}.Union(Collection[T]{Elements: []Interval[T]{other}})
}

// UnionCollection computes iv + other (A + C).
func (iv Interval[T]) UnionCollection(other Collection[T]) Collection[T] {
	return Collection[T]{Elements: []Interval[T]{iv}}.Union(other)
}

// Diff computes iv - other as a normalised Collection (A - A).
func (iv Interval[T]) Diff(other Interval[T]) Collection[T] {
	var elts []Interval[T]
	if iv.Overlaps(other) {
		if other.Start > iv.Start {
			elts = append(elts, Interval[T]{Start: iv.Start, Stop: other.Start})
		}
		if other.Stop < iv.Stop {
			elts = append(elts, Interval[T]{Start: other.Stop, Stop: iv.Stop})
		}
	} else {
		elts = append(elts, iv)
	}
	return Collection[T]{Elements: elts}
}

// IntersectCollection computes iv & other (A & C): the non-empty
// intersections of iv with each element of other, in other's order.
func (iv Interval[T]) IntersectCollection(other Collection[T]) Collection[T] {
	elts := make([]Interval[T], 0, len(other.Elements))
	for _, o := range other.Elements {
		if r, ok := iv.Intersect(o); ok {
			elts = append(elts, r)
		}
	}
	return Collection[T]{Elements: elts}
}
