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

// init_alu registers the arithmetic and comparison builtins spec §4.7
// names. Values are always int64 -- there is no other numeric type (spec
// §3: "non-integer numerics" is an explicit non-goal).
func init_alu(g *Globals) {
	Declare(g, &Declaration{
		Name: "+", Desc: "adds two integers", MinParameter: 2, MaxParameter: 2,
		Fn: func(a []Scmer) Scmer { return asInt(a[0]) + asInt(a[1]) },
	})
	Declare(g, &Declaration{
		Name: "-", Desc: "subtracts the second integer from the first", MinParameter: 2, MaxParameter: 2,
		Fn: func(a []Scmer) Scmer { return asInt(a[0]) - asInt(a[1]) },
	})
	Declare(g, &Declaration{
		Name: "*", Desc: "multiplies two integers", MinParameter: 2, MaxParameter: 2,
		Fn: func(a []Scmer) Scmer { return asInt(a[0]) * asInt(a[1]) },
	})
	Declare(g, &Declaration{
		Name: "/", Desc: "divides the first integer by the second", MinParameter: 2, MaxParameter: 2,
		Fn: func(a []Scmer) Scmer {
			d := asInt(a[1])
			if d == 0 {
				panic(newError(TypeError, "division by zero"))
			}
			return asInt(a[0]) / d
		},
	})
	Declare(g, &Declaration{
		Name: "inc", Desc: "adds one to its argument", MinParameter: 1, MaxParameter: 1,
		Fn: func(a []Scmer) Scmer { return asInt(a[0]) + 1 },
	})
	Declare(g, &Declaration{
		Name: "dec", Desc: "subtracts one from its argument", MinParameter: 1, MaxParameter: 1,
		Fn: func(a []Scmer) Scmer { return asInt(a[0]) - 1 },
	})
	Declare(g, &Declaration{
		Name: "<", Desc: "true if the first argument is less than the second", MinParameter: 2, MaxParameter: 2,
		Fn: func(a []Scmer) Scmer { return asInt(a[0]) < asInt(a[1]) },
	})
	Declare(g, &Declaration{
		Name: ">", Desc: "true if the first argument is greater than the second", MinParameter: 2, MaxParameter: 2,
		Fn: func(a []Scmer) Scmer { return asInt(a[0]) > asInt(a[1]) },
	})
	Declare(g, &Declaration{
		Name: "<=", Desc: "true if the first argument is less than or equal to the second", MinParameter: 2, MaxParameter: 2,
		Fn: func(a []Scmer) Scmer { return asInt(a[0]) <= asInt(a[1]) },
	})
	Declare(g, &Declaration{
		Name: ">=", Desc: "true if the first argument is greater than or equal to the second", MinParameter: 2, MaxParameter: 2,
		Fn: func(a []Scmer) Scmer { return asInt(a[0]) >= asInt(a[1]) },
	})
	Declare(g, &Declaration{
		Name: "=", Desc: "true if both arguments are the same integer", MinParameter: 2, MaxParameter: 2,
		Fn: func(a []Scmer) Scmer { return asInt(a[0]) == asInt(a[1]) },
	})
}
