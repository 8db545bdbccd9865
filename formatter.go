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

package keyspace

import "fmt"

// Formatter is an interface for formatting boundaries and intervals.
type Formatter[B Boundary] interface {
	// FormatBoundary formats a single boundary.
	FormatBoundary(b B) string
	// FormatInterval formats the half-open interval [start, end).
	FormatInterval(start, end B) string
}

// MakeBasicFormatter creates a Formatter[B] that uses the `%v` format for the
// boundaries.
func MakeBasicFormatter[B Boundary]() Formatter[B] {
	return MakeFormatter(func(b B) string { return fmt.Sprint(b) })
}

// MakeFormatter creates a Formatter[B] from a function that formats a single
// boundary. Intervals are formatted as "[start, end)", which is the form
// accepted by MakeBasicParser.
func MakeFormatter[B Boundary](fn func(b B) string) Formatter[B] {
	return funcFormatter[B]{fn: fn}
}

type funcFormatter[B Boundary] struct {
	fn func(b B) string
}

var _ Formatter[int] = funcFormatter[int]{}

func (f funcFormatter[B]) FormatBoundary(b B) string {
	return f.fn(b)
}

func (f funcFormatter[B]) FormatInterval(start, end B) string {
	return "[" + f.fn(start) + ", " + f.fn(end) + ")"
}
