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

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
)

// Parser is an interface for parsing the textual form of intervals, used
// mostly by tests.
type Parser[B Boundary] interface {
	// ParseInterval parses an interval of the form "[start, end)", followed
	// optionally by whitespace and an arbitrary remainder, which is returned
	// with surrounding whitespace trimmed.
	ParseInterval(input string) (start, end B, remainder string, err error)
}

// MakeBasicParser creates a Parser[B] which parses boundaries using
// fmt.Sscan. It works for any type that fmt can scan into, like integers and
// (whitespace-free) strings.
func MakeBasicParser[B Boundary]() Parser[B] {
	return basicParser[B]{}
}

type basicParser[B Boundary] struct{}

var _ Parser[int] = basicParser[int]{}

func (basicParser[B]) ParseInterval(input string) (start, end B, remainder string, err error) {
	s := strings.TrimSpace(input)
	rest, ok := strings.CutPrefix(s, "[")
	if !ok {
		return start, end, "", errors.Newf("interval %q must start with '['", input)
	}
	startStr, rest, ok := strings.Cut(rest, ", ")
	if !ok {
		return start, end, "", errors.Newf("interval %q: missing \", \" separator", input)
	}
	endStr, rest, ok := strings.Cut(rest, ")")
	if !ok {
		return start, end, "", errors.Newf("interval %q must end with ')'", input)
	}
	if start, err = parseBoundary[B](startStr); err != nil {
		return start, end, "", errors.Wrapf(err, "interval %q: start", input)
	}
	if end, err = parseBoundary[B](endStr); err != nil {
		return start, end, "", errors.Wrapf(err, "interval %q: end", input)
	}
	return start, end, strings.TrimSpace(rest), nil
}

func parseBoundary[B Boundary](str string) (B, error) {
	var b B
	if str == "" || strings.TrimSpace(str) != str {
		return b, errors.Newf("invalid boundary %q", str)
	}
	var extra string
	switch n, err := fmt.Sscan(str, &b, &extra); {
	case n == 0:
		return b, errors.Wrapf(err, "invalid boundary %q", str)
	case n > 1:
		return b, errors.Newf("invalid boundary %q: trailing input %q", str, extra)
	}
	return b, nil
}

// MustParseInterval parses an interval that has no remainder. It panics on
// any error.
func MustParseInterval[B Boundary](p Parser[B], input string) (start, end B) {
	start, end, rem := MustParseIntervalPrefix(p, input)
	if rem != "" {
		panic(errors.Newf("interval %q: unexpected remainder %q", input, rem))
	}
	return start, end
}

// MustParseIntervalPrefix parses an interval and returns the remainder of the
// input. It panics on any error.
func MustParseIntervalPrefix[B Boundary](p Parser[B], input string) (start, end B, remainder string) {
	start, end, remainder, err := p.ParseInterval(input)
	if err != nil {
		panic(err)
	}
	return start, end, remainder
}
