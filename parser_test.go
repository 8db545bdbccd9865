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
	"reflect"
	"testing"
)

func TestBasicParser(t *testing.T) {
	t.Run("int", func(t *testing.T) {
		p := MakeBasicParser[int]()
		testParse(t, p, "[1, 2)", 1, 2, "")
		testParse(t, p, "[1, 2) ", 1, 2, "")
		testParse(t, p, "[-10, 2) foo", -10, 2, "foo")
		testParse(t, p, "[1, 2) foo bar", 1, 2, "foo bar")
		testParse(t, p, "[1, 2)    foo bar", 1, 2, "foo bar")
		// The parser does not check the order of the boundaries.
		testParse(t, p, "[5, 2) x", 5, 2, "x")

		testParseErr(t, p, "(1, 2)")
		testParseErr(t, p, "[1, 2]")
		testParseErr(t, p, "[1, 2")
		testParseErr(t, p, "1, 2)")
		testParseErr(t, p, "[1,2)")
		testParseErr(t, p, "[a, 2)")
		testParseErr(t, p, "[1, 2 3)")
		testParseErr(t, p, "[, 2)")
	})
	t.Run("string", func(t *testing.T) {
		p := MakeBasicParser[string]()
		testParse(t, p, "[abc, de)", "abc", "de", "")
		testParse(t, p, "[abc, de) ", "abc", "de", "")
		testParse(t, p, "[abc, de) foo", "abc", "de", "foo")
		testParse(t, p, "[abc, de) foo bar", "abc", "de", "foo bar")
		testParse(t, p, "[abc, de)    foo bar", "abc", "de", "foo bar")

		testParseErr(t, p, "(abc, de)")
		testParseErr(t, p, "[abc, de]")
		testParseErr(t, p, "[abc, de")
		testParseErr(t, p, "abc, de)")
		testParseErr(t, p, "[abc,de)")
	})
}

func TestMustParse(t *testing.T) {
	p := MakeBasicParser[int]()
	start, end := MustParseInterval(p, "[3, 7)")
	expect(t, start, 3)
	expect(t, end, 7)

	start, end, rem := MustParseIntervalPrefix(p, "[3, 7) B")
	expect(t, start, 3)
	expect(t, end, 7)
	expect(t, rem, "B")

	expectPanic(t, func() { MustParseInterval(p, "[3, 7) B") })
	expectPanic(t, func() { MustParseIntervalPrefix(p, "[3 7)") })
}

func expectPanic(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		if r := recover(); r == nil {
			t.Helper()
			t.Errorf("expected panic")
		}
	}()
	fn()
}

func testParseErr[B Boundary](t *testing.T, p Parser[B], input string) {
	_, _, _, err := p.ParseInterval(input)
	if err == nil {
		t.Helper()
		t.Fatalf("%q: expected error", input)
	}
}

func testParse[B Boundary](
	t *testing.T, p Parser[B], input string, expectedStart, expectedEnd B, expectedRemainder string,
) {
	t.Helper()
	start, end, rem, err := p.ParseInterval(input)
	if err != nil {
		t.Fatalf("%q: unexpected error: %v", input, err)
	}
	if !reflect.DeepEqual(start, expectedStart) || !reflect.DeepEqual(end, expectedEnd) || rem != expectedRemainder {
		t.Fatalf("expected %v %v %q, got %v %v %q", expectedStart, expectedEnd, expectedRemainder, start, end, rem)
	}
}

func TestFormatParseRoundtrip(t *testing.T) {
	t.Run("int", func(t *testing.T) {
		testRoundtrip(t, MakeBasicFormatter[int](), MakeBasicParser[int](), 1, 2)
		testRoundtrip(t, MakeBasicFormatter[int](), MakeBasicParser[int](), -100, 100)
	})
	t.Run("string", func(t *testing.T) {
		testRoundtrip(t, MakeBasicFormatter[string](), MakeBasicParser[string](), "a", "bc")
	})
}

func testRoundtrip[B Boundary](t *testing.T, f Formatter[B], p Parser[B], start, end B) {
	str := f.FormatInterval(start, end)
	x, y := MustParseInterval(p, str)
	if !reflect.DeepEqual(x, start) || !reflect.DeepEqual(y, end) {
		t.Fatalf("roundtrip %v %v failed: %v %v\n", start, end, x, y)
	}
}
