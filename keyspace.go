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

// Package keyspace contains the vocabulary shared by data structures that
// operate on a one-dimensional, totally ordered key space: boundaries,
// comparison functions and the textual form of half-open intervals.
package keyspace

// Boundary is the type of a point on the axis. Any type can be used as long
// as it comes with a CompareFn.
type Boundary any

// CompareFn is a strict total order on boundaries. It returns a negative
// value if a < b, zero if a == b and a positive value if a > b.
//
// cmp.Compare and bytes.Compare are both valid CompareFns.
type CompareFn[B Boundary] func(a, b B) int

// Less reports whether a < b.
func (c CompareFn[B]) Less(a, b B) bool {
	return c(a, b) < 0
}

// Valid reports whether [start, end) is a non-empty interval.
func (c CompareFn[B]) Valid(start, end B) bool {
	return c(start, end) < 0
}
