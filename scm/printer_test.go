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

func TestStringOfAtoms(t *testing.T) {
	cases := []struct {
		v    Scmer
		want string
	}{
		{Nil, "()"},
		{true, "true"},
		{false, "false"},
		{int64(-3), "-3"},
		{"hi", `"hi"`},
		{Intern("foo"), "foo"},
	}
	for _, c := range cases {
		if got := String(c.v); got != c.want {
			t.Errorf("String(%#v) = %q, want %q", c.v, got, c.want)
		}
	}
}

func TestStringOfImproperList(t *testing.T) {
	c := &Cons{Car: int64(1), Cdr: int64(2)}
	if got := String(c); got != "(1 . 2)" {
		t.Errorf("got %q, want %q", got, "(1 . 2)")
	}
}

func TestStringOfProperList(t *testing.T) {
	list := SliceToList([]Scmer{int64(1), int64(2), int64(3)})
	if got := String(list); got != "(1 2 3)" {
		t.Errorf("got %q", got)
	}
}
