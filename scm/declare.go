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
	"fmt"
	"strings"
)

// Declaration is the registration record for one builtin: name, one-line
// description, arity bounds, and the Go function implementing it. This is
// the teacher's own builtin-registration shape (declare.go's Declaration),
// kept almost verbatim, re-pointed from the teacher's func(...Scmer) Scmer
// signature to this package's func([]Scmer) Scmer.
type Declaration struct {
	Name         string
	Desc         string
	MinParameter int
	MaxParameter int // -1 for unbounded
	Fn           func(args []Scmer) Scmer
}

// declarations preserves registration order so Help("") lists builtins the
// same way every time, independent of Go map iteration order.
var declarations []*Declaration

// Declare registers def as a Builtin bound to its name in g, and records it
// for (help) / (help "name") to find later.
func Declare(g *Globals, def *Declaration) {
	declarations = append(declarations, def)
	g.Def(Intern(def.Name), &Builtin{
		Name:         def.Name,
		Desc:         def.Desc,
		MinParameter: def.MinParameter,
		MaxParameter: def.MaxParameter,
		Fn:           def.Fn,
	})
}

// Help renders the (help) / (help "name") builtin's output: a short index
// of every declared builtin, or the full description of one named builtin.
func Help(name string) string {
	var sb strings.Builder
	if name == "" {
		sb.WriteString("Available builtins:\n\n")
		for _, def := range declarations {
			fmt.Fprintf(&sb, "  %s: %s\n", def.Name, strings.Split(def.Desc, "\n")[0])
		}
		sb.WriteString("\nuse (help \"name\") for details on one builtin\n")
		return sb.String()
	}
	for _, def := range declarations {
		if def.Name == name {
			fmt.Fprintf(&sb, "Help for: %s\n===\n\n%s\n\nallowed number of arguments: %s\n",
				def.Name, def.Desc, arityDesc(def.MinParameter, def.MaxParameter))
			return sb.String()
		}
	}
	panic(newError(UnboundSymbol, "no such builtin: "+name))
}
