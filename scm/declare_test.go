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

import (
	"strings"
	"testing"
)

func TestHelpListsBuiltins(t *testing.T) {
	out := Help("")
	if !strings.Contains(out, "cons:") {
		t.Error("help index should mention the cons builtin")
	}
}

func TestHelpForOneBuiltin(t *testing.T) {
	out := Help("cons")
	if !strings.Contains(out, "Help for: cons") {
		t.Errorf("got %q", out)
	}
}

func TestHelpUnknownBuiltinPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected a panic for an unknown builtin name")
		}
	}()
	Help("this-builtin-does-not-exist")
}
