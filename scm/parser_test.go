/*
Copyright (C) 2023  Carl-Philip Hänsch

    This program is free software: you can redistribute it and/or modify
    it under the terms of the GNU General Public License as published by
    the Free Software Foundation, either version 3 of the License, or
    (at your option) any later version.

    This program is distributed in the hope that it will be useful,
    but WITHOUT ANY WARRANTY; without even the implied warranty of
    MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
    GNU General Public License for more details.

    You should have received a copy of the GNU General Public License
    along with this program.  If not, see <https://www.gnu.org/licenses/>.
*/
package scm

import "testing"

func TestReadAtoms(t *testing.T) {
	if v := Read("42"); v != int64(42) {
		t.Errorf("Read(42) = %#v", v)
	}
	if v := Read("-7"); v != int64(-7) {
		t.Errorf("Read(-7) = %#v", v)
	}
	if v := Read("true"); v != true {
		t.Errorf("Read(true) = %#v", v)
	}
	if v := Read("false"); v != false {
		t.Errorf("Read(false) = %#v", v)
	}
	if v := Read("nil"); !IsNil(v) {
		t.Errorf("Read(nil) = %#v", v)
	}
	if v := Read("foo?"); v != Intern("foo?") {
		t.Errorf("Read(foo?) = %#v", v)
	}
}

func TestReadString(t *testing.T) {
	if v := Read(`"hello world"`); v != "hello world" {
		t.Errorf("Read string = %#v", v)
	}
}

func TestReadListAndBrackets(t *testing.T) {
	a := Read("(+ 1 2)")
	b := Read("[+ 1 2]")
	if String(a) != "(+ 1 2)" || String(b) != "(+ 1 2)" {
		t.Errorf("got %s / %s, want matching (+ 1 2) forms", String(a), String(b))
	}
}

func TestReadQuoteShorthand(t *testing.T) {
	v := Read("'x")
	c, ok := v.(*Cons)
	if !ok || c.Car != symQuote {
		t.Fatalf("'x should desugar to (quote x), got %s", String(v))
	}
}

func TestReadSkipsCommentsAndCommas(t *testing.T) {
	v := Read("(1, 2 ; trailing comment\n 3)")
	if String(v) != "(1 2 3)" {
		t.Errorf("got %s", String(v))
	}
}

func TestRoundTripPrintThenRead(t *testing.T) {
	src := "(a b (c d) 1 -2 true false ())"
	v := Read(src)
	printed := String(v)
	v2 := Read(printed)
	if String(v2) != printed {
		t.Errorf("round trip mismatch: %s vs %s", printed, String(v2))
	}
}

func TestIncompleteListPanicsWithSentinelMessage(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected a panic on unterminated list")
		}
		e, ok := r.(Error)
		if !ok || e.Kind != ReadError || e.Message != incompleteInputMessage {
			t.Fatalf("expected a ReadError with the incomplete-input message, got %#v", r)
		}
	}()
	Read("(1 2 3")
}
