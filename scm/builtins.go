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
	"os"
	"strings"
)

func init() {
	init_alu(Globalenv)
	init_list(Globalenv)
	init_core(Globalenv)
}

// init_core registers the remaining spec §4.7 builtins that don't fit the
// arithmetic or list-op groupings: I/O, application, and the
// SPEC_FULL-supplemented help/not.
func init_core(g *Globals) {
	Declare(g, &Declaration{
		Name: "println", Desc: "prints its arguments separated by a space, followed by a newline", MinParameter: 0, MaxParameter: -1,
		Fn: func(a []Scmer) Scmer {
			parts := make([]string, len(a))
			for i, v := range a {
				parts[i] = String(v)
			}
			fmt.Println(strings.Join(parts, " "))
			return Nil
		},
	})
	Declare(g, &Declaration{
		Name: "read-file", Desc: "reads a file's contents and returns it as a string", MinParameter: 1, MaxParameter: 1,
		Fn: func(a []Scmer) Scmer {
			data, err := os.ReadFile(asString(a[0]))
			if err != nil {
				panic(newError(Abort, "read-file: "+err.Error()))
			}
			return string(data)
		},
	})
	Declare(g, &Declaration{
		Name: "load-file", Desc: "reads, parses and evaluates a file, returning its last form's value", MinParameter: 1, MaxParameter: 1,
		Fn: func(a []Scmer) Scmer {
			path := asString(a[0])
			data, err := os.ReadFile(path)
			if err != nil {
				panic(newError(Abort, "load-file: "+err.Error()))
			}
			return Eval(nil, ReadAll(string(data)))
		},
	})
	Declare(g, &Declaration{
		Name: "apply", Desc: "calls a function with arguments taken from a list", MinParameter: 2, MaxParameter: 2,
		Fn: func(a []Scmer) Scmer { return applyAndRun(a[0], a[1]) },
	})
	Declare(g, &Declaration{
		Name: "vararg", Desc: "wraps a function so it receives all call arguments packed into a single list", MinParameter: 1, MaxParameter: 1,
		Fn: func(a []Scmer) Scmer { return newVarArgLambda(a[0]) },
	})
	Declare(g, &Declaration{
		Name: "die", Desc: "aborts evaluation with the given message", MinParameter: 1, MaxParameter: 1,
		Fn: func(a []Scmer) Scmer { panic(newError(Abort, asString(a[0]))) },
	})
	Declare(g, &Declaration{
		Name: "not", Desc: "boolean negation; nil and false are false, everything else is true", MinParameter: 1, MaxParameter: 1,
		Fn: func(a []Scmer) Scmer { return !IsTruthy(a[0]) },
	})
	Declare(g, &Declaration{
		Name: "help", Desc: "prints the list of builtins, or details for one named builtin", MinParameter: 0, MaxParameter: 1,
		Fn: func(a []Scmer) Scmer {
			name := ""
			if len(a) == 1 {
				name = asString(a[0])
			}
			fmt.Print(Help(name))
			return Nil
		},
	})
}
