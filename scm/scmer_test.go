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

func TestNilSingleton(t *testing.T) {
	if !IsNil(Nil) {
		t.Fatal("Nil must report IsNil")
	}
	if IsNil(int64(0)) || IsNil("") || IsNil(false) {
		t.Fatal("only NilType values are nil")
	}
}

func TestTruthiness(t *testing.T) {
	cases := []struct {
		v    Scmer
		want bool
	}{
		{Nil, false},
		{false, false},
		{true, true},
		{int64(0), true},
		{"", true},
		{int64(42), true},
	}
	for _, c := range cases {
		if got := IsTruthy(c.v); got != c.want {
			t.Errorf("IsTruthy(%#v) = %v, want %v", c.v, got, c.want)
		}
	}
}

func TestSliceListRoundTrip(t *testing.T) {
	items := []Scmer{int64(1), int64(2), int64(3)}
	list := SliceToList(items)
	back := ListToSlice(list)
	if len(back) != len(items) {
		t.Fatalf("got %d elements, want %d", len(back), len(items))
	}
	for i := range items {
		if back[i] != items[i] {
			t.Errorf("element %d: got %v, want %v", i, back[i], items[i])
		}
	}
}

func TestImproperListRejectedByListToSlice(t *testing.T) {
	improper := &Cons{Car: int64(1), Cdr: int64(2)}
	defer func() {
		if recover() == nil {
			t.Fatal("expected a panic on an improper list")
		}
	}()
	ListToSlice(improper)
}

func TestListLen(t *testing.T) {
	if n := ListLen(Nil); n != 0 {
		t.Errorf("ListLen(Nil) = %d, want 0", n)
	}
	list := SliceToList([]Scmer{int64(1), int64(2)})
	if n := ListLen(list); n != 2 {
		t.Errorf("ListLen = %d, want 2", n)
	}
}
