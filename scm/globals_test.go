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

func TestGlobalsFirstDefinitionIsNotMutable(t *testing.T) {
	g := NewGlobals()
	sym := Intern("globals-test-fresh-name")
	g.Def(sym, int64(1))
	if g.IsMutable(sym) {
		t.Error("a first definition must not be marked mutable")
	}
	if g.Revision != 0 {
		t.Errorf("Revision should not bump on first definition, got %d", g.Revision)
	}
}

func TestGlobalsRedefinitionBumpsRevision(t *testing.T) {
	g := NewGlobals()
	sym := Intern("globals-test-redefined-name")
	g.Def(sym, int64(1))
	g.Def(sym, int64(2))
	if !g.IsMutable(sym) {
		t.Error("a redefined name must be marked mutable")
	}
	if g.Revision != 1 {
		t.Errorf("Revision = %d, want 1", g.Revision)
	}
	if g.Get(sym) != int64(2) {
		t.Error("Get must see the latest value, not a stale cache")
	}
}

func TestGlobalsUnboundGetPanics(t *testing.T) {
	g := NewGlobals()
	defer func() {
		if recover() == nil {
			t.Fatal("Get on an undefined symbol should panic")
		}
	}()
	g.Get(Intern("globals-test-never-defined"))
}

func TestGlobalsClear(t *testing.T) {
	g := NewGlobals()
	sym := Intern("globals-test-clear-name")
	g.Def(sym, int64(1))
	g.Clear()
	if g.IsDefined(sym) {
		t.Error("Clear must remove all definitions")
	}
	if g.Revision != 0 {
		t.Error("Clear must reset Revision")
	}
}
