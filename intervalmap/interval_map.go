// Copyright 2025 Radu Berinde.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package intervalmap implements a map from a totally ordered key space to
// values, stored as the minimal set of half-open intervals.
package intervalmap

import (
	"cmp"
	"fmt"
	"strings"

	"github.com/RaduBerinde/keyspace"
	"github.com/google/btree"
)

type Boundary = keyspace.Boundary

// ValueEqualFn is a function used to compare two values. It must be an
// equivalence relation which does not change over the lifetime of the map;
// equal values are used interchangeably and adjacent intervals with equal
// values are merged.
type ValueEqualFn[V any] func(a, b V) bool

// T maps every key to a value. Initially all keys map to the background
// value; Assign overwrites a half-open interval of keys.
//
// Internally, T stores breakpoints: a breakpoint (k, v) means that the
// interval starting at k (up to the next breakpoint) has value v. Keys below
// the first breakpoint have the background value. The set of breakpoints is
// always canonical:
//   - two consecutive breakpoints never have equal values;
//   - the first breakpoint never has the background value;
//   - the last breakpoint always has the background value.
//
// T is not safe for concurrent use; Get can run concurrently with other Gets
// but not with Assign.
type T[K Boundary, V any] struct {
	cmp        keyspace.CompareFn[K]
	eq         ValueEqualFn[V]
	background V
	tree       *btree.BTreeG[breakpoint[K, V]]
}

type breakpoint[K Boundary, V any] struct {
	key K
	val V
}

const btreeDegree = 4

// New creates a map where every key maps to the background value.
func New[K Boundary, V any](cmp keyspace.CompareFn[K], eq ValueEqualFn[V], background V) *T[K, V] {
	t := &T[K, V]{}
	t.Init(cmp, eq, background)
	return t
}

// Make is like New but returns the map by value.
func Make[K Boundary, V any](cmp keyspace.CompareFn[K], eq ValueEqualFn[V], background V) T[K, V] {
	var t T[K, V]
	t.Init(cmp, eq, background)
	return t
}

// NewOrdered creates a map for an ordered key type and a comparable value
// type, using cmp.Compare and ==.
func NewOrdered[K cmp.Ordered, V comparable](background V) *T[K, V] {
	return New[K, V](cmp.Compare[K], func(a, b V) bool { return a == b }, background)
}

// Init initializes (or reinitializes) the map.
func (t *T[K, V]) Init(cmp keyspace.CompareFn[K], eq ValueEqualFn[V], background V) {
	t.cmp = cmp
	t.eq = eq
	t.background = background
	lessFn := func(a, b breakpoint[K, V]) bool {
		return cmp(a.key, b.key) < 0
	}
	t.tree = btree.NewG[breakpoint[K, V]](btreeDegree, lessFn)
}

// Background returns the value that the map was initialized with.
func (t *T[K, V]) Background() V {
	return t.background
}

// Get returns the value associated with the key.
func (t *T[K, V]) Get(key K) V {
	return t.at(key)
}

// Assign sets the value of all keys in [start, end) to val. All other keys
// are unaffected.
//
// If start is not strictly less than end the interval is empty and Assign
// does nothing; this is not an error.
func (t *T[K, V]) Assign(start, end K, val V) {
	if t.cmp(start, end) >= 0 {
		return
	}
	before := t.before(start)
	after := t.at(end)

	t.deleteRange(start, end)
	t.placeBoundary(end, val, after)
	t.placeBoundary(start, before, val)
}

// Len returns the number of breakpoints stored in the map. An empty map
// (where all keys have the background value) has no breakpoints; a single
// assigned interval has two.
func (t *T[K, V]) Len() int {
	return t.tree.Len()
}

// Clear resets all keys to the background value.
func (t *T[K, V]) Clear() {
	t.tree.Clear(false /* addNodesToFreelist */)
}

// Clone returns an independent copy of the map. The underlying tree is
// copied lazily, so cloning is cheap.
func (t *T[K, V]) Clone() *T[K, V] {
	c := *t
	c.tree = t.tree.Clone()
	return &c
}

// Breakpoints calls emit for every stored breakpoint, in increasing key
// order, until emit returns false.
func (t *T[K, V]) Breakpoints(emit func(key K, val V) bool) {
	t.tree.Ascend(func(b breakpoint[K, V]) bool {
		return emit(b.key, b.val)
	})
}

// Enumerate emits the maximal fragments of [start, end) that have a
// non-background value, in increasing order. Fragments are clipped to
// [start, end). Stops early if emit returns false.
func (t *T[K, V]) Enumerate(start, end K, emit func(start, end K, val V) bool) {
	if t.tree.Len() == 0 || t.cmp(start, end) >= 0 {
		return
	}
	lastBoundary := start
	lastVal := t.at(start)
	stopped := false
	t.tree.AscendRange(breakpoint[K, V]{key: start}, breakpoint[K, V]{key: end}, func(b breakpoint[K, V]) bool {
		if t.cmp(b.key, start) == 0 {
			return true
		}
		if !t.eq(lastVal, t.background) && !emit(lastBoundary, b.key, lastVal) {
			stopped = true
			return false
		}
		lastBoundary = b.key
		lastVal = b.val
		return true
	})
	if !stopped && !t.eq(lastVal, t.background) {
		emit(lastBoundary, end, lastVal)
	}
}

// CheckInvariants can be used in testing builds to verify that the
// breakpoints are canonical. It panics if they are not.
func (t *T[K, V]) CheckInvariants() {
	if t.tree.Len() == 1 {
		panic("a single breakpoint is never canonical")
	}
	first := true
	var last breakpoint[K, V]
	t.tree.Ascend(func(b breakpoint[K, V]) bool {
		if first {
			first = false
			if t.eq(b.val, t.background) {
				panic(fmt.Sprintf("first breakpoint %v has the background value", b.key))
			}
		} else {
			if t.cmp(last.key, b.key) >= 0 {
				panic(fmt.Sprintf("breakpoints %v and %v out of order", last.key, b.key))
			}
			if t.eq(last.val, b.val) {
				panic(fmt.Sprintf("breakpoints %v and %v have equal values", last.key, b.key))
			}
		}
		last = b
		return true
	})
	if !first && !t.eq(last.val, t.background) {
		panic("last breakpoint must always have the background value")
	}
}

// String returns a description of all intervals with non-background values,
// one per line.
func (t *T[K, V]) String(kFmt keyspace.Formatter[K]) string {
	var b strings.Builder
	var lastKey K
	var lastVal V
	first := true
	t.tree.Ascend(func(bp breakpoint[K, V]) bool {
		if !first && !t.eq(lastVal, t.background) {
			fmt.Fprintf(&b, "%s = %v\n", kFmt.FormatInterval(lastKey, bp.key), lastVal)
		}
		first = false
		lastKey = bp.key
		lastVal = bp.val
		return true
	})
	if b.Len() == 0 {
		return "<empty>"
	}
	return b.String()
}
