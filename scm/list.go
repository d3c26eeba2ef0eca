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

// init_list registers the cons-cell and type-predicate builtins spec §4.7
// names: car, cdr, cons, nil?, cons?, symbol?.
func init_list(g *Globals) {
	Declare(g, &Declaration{
		Name: "cons", Desc: "builds a pair from its two arguments", MinParameter: 2, MaxParameter: 2,
		Fn: func(a []Scmer) Scmer { return &Cons{Car: a[0], Cdr: a[1]} },
	})
	Declare(g, &Declaration{
		Name: "car", Desc: "returns the first element of a pair", MinParameter: 1, MaxParameter: 1,
		Fn: func(a []Scmer) Scmer { return asCons(a[0]).Car },
	})
	Declare(g, &Declaration{
		Name: "cdr", Desc: "returns the second element of a pair", MinParameter: 1, MaxParameter: 1,
		Fn: func(a []Scmer) Scmer { return asCons(a[0]).Cdr },
	})
	Declare(g, &Declaration{
		Name: "nil?", Desc: "true if the argument is the empty list", MinParameter: 1, MaxParameter: 1,
		Fn: func(a []Scmer) Scmer { return IsNil(a[0]) },
	})
	Declare(g, &Declaration{
		Name: "cons?", Desc: "true if the argument is a pair", MinParameter: 1, MaxParameter: 1,
		Fn: func(a []Scmer) Scmer {
			_, ok := a[0].(*Cons)
			return ok
		},
	})
	Declare(g, &Declaration{
		Name: "symbol?", Desc: "true if the argument is a symbol", MinParameter: 1, MaxParameter: 1,
		Fn: func(a []Scmer) Scmer {
			_, ok := a[0].(*Symbol)
			return ok
		},
	})
}
