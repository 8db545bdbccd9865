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

package intervalmap

// at returns the value of the greatest breakpoint <= key, or the background
// value if there is no such breakpoint.
func (t *T[K, V]) at(key K) V {
	v := t.background
	t.tree.DescendLessOrEqual(breakpoint[K, V]{key: key}, func(b breakpoint[K, V]) bool {
		v = b.val
		return false
	})
	return v
}

// before returns the value that holds immediately before key, i.e. the value
// of the greatest breakpoint < key, or the background value if there is no
// such breakpoint.
func (t *T[K, V]) before(key K) V {
	v := t.background
	t.tree.DescendLessOrEqual(breakpoint[K, V]{key: key}, func(b breakpoint[K, V]) bool {
		if t.cmp(b.key, key) == 0 {
			return true
		}
		v = b.val
		return false
	})
	return v
}

// deleteRange removes all breakpoints with keys in [start, end).
func (t *T[K, V]) deleteRange(start, end K) {
	var toDelete []breakpoint[K, V]
	t.tree.AscendRange(breakpoint[K, V]{key: start}, breakpoint[K, V]{key: end}, func(b breakpoint[K, V]) bool {
		toDelete = append(toDelete, b)
		return true
	})
	for _, b := range toDelete {
		t.tree.Delete(b)
	}
}

// placeBoundary sets up the boundary at key, given the value that holds
// right before key and the value that must hold starting at key. If the two
// are equal no breakpoint is necessary and any existing breakpoint at key is
// removed; otherwise the breakpoint at key is inserted or replaced.
//
// This is what keeps the breakpoints canonical: a breakpoint is only ever
// stored where the value actually changes.
func (t *T[K, V]) placeBoundary(key K, before, after V) {
	if t.eq(before, after) {
		t.tree.Delete(breakpoint[K, V]{key: key})
		return
	}
	t.tree.ReplaceOrInsert(breakpoint[K, V]{key: key, val: after})
}
