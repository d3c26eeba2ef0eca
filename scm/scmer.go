/*
Copyright (C) 2023  Carl-Philip Hänsch
Copyright (C) 2013  Pieter Kelchtermans (originally licensed unter WTFPL 2.0)

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

import "strconv"

// Scmer is the universal value type threaded through reader, environment
// and evaluator alike. It is a plain Go interface{} restricted by
// convention to a closed set of dynamic types:
//
//	int64          Integer
//	string         String
//	*Symbol        Symbol (interned, compare by pointer)
//	NilType        the canonical empty-list/false-ish singleton
//	bool           Boolean
//	*Cons          a pair; list spine
//	*Builtin       a primitive function
//	*Lambda        a user-defined function
//	*VarArgLambda  a lambda wrapped to receive all arguments as one list
//
// No other dynamic type may appear in a Scmer that escapes this package.
type Scmer interface{}

// NilType is the dynamic type of the canonical Nil value. It carries no
// data; every NilType value is indistinguishable from every other, which is
// what spec calls the Nil singleton. A dedicated type (rather than Go's own
// nil) keeps "no value yet" (a bug) distinguishable from "the empty list"
// (a value).
type NilType struct{}

// Nil is the single canonical empty-list / false-ish value.
var Nil Scmer = NilType{}

// Symbol is an interned name: two Symbols with equal Name are always the
// same *Symbol pointer, so identity comparison (==) on *Symbol suffices for
// symbol equality. See symbol.go for the intern table.
type Symbol struct {
	Name string
}

// Cons is a pair; proper lists are built from Cons cells terminated by Nil.
// Cdr may hold any Scmer, including another non-Cons, non-Nil value,
// producing an improper (dotted) list.
type Cons struct {
	Car Scmer
	Cdr Scmer
}

// IsNil reports whether v is the canonical Nil value.
func IsNil(v Scmer) bool {
	_, ok := v.(NilType)
	return ok
}

// IsTruthy implements spec's truthiness rule: nil and false are false,
// everything else (including 0 and "") is true.
func IsTruthy(v Scmer) bool {
	switch vv := v.(type) {
	case NilType:
		return false
	case bool:
		return vv
	default:
		return true
	}
}

// ListToSlice walks a proper list and returns its elements. It panics with
// a TypeError if the list is improper (anything but Nil at the tail).
func ListToSlice(v Scmer) []Scmer {
	var out []Scmer
	for {
		switch c := v.(type) {
		case NilType:
			return out
		case *Cons:
			out = append(out, c.Car)
			v = c.Cdr
		default:
			panic(newError(TypeError, "improper list where proper list expected"))
		}
	}
}

// SliceToList builds a proper list out of a Go slice, tail-first.
func SliceToList(items []Scmer) Scmer {
	var list Scmer = Nil
	for i := len(items) - 1; i >= 0; i-- {
		list = &Cons{Car: items[i], Cdr: list}
	}
	return list
}

// ListLen counts the elements of a proper list.
func ListLen(v Scmer) int {
	n := 0
	for {
		c, ok := v.(*Cons)
		if !ok {
			return n
		}
		n++
		v = c.Cdr
	}
}

// asInt extracts a machine integer, raising a TypeError otherwise.
func asInt(v Scmer) int64 {
	i, ok := v.(int64)
	if !ok {
		panic(newError(TypeError, "expected integer, got "+typeName(v)))
	}
	return i
}

// asString extracts a Go string, raising a TypeError otherwise.
func asString(v Scmer) string {
	s, ok := v.(string)
	if !ok {
		panic(newError(TypeError, "expected string, got "+typeName(v)))
	}
	return s
}

// asCons extracts a *Cons, raising a TypeError otherwise (used by car/cdr).
func asCons(v Scmer) *Cons {
	c, ok := v.(*Cons)
	if !ok {
		panic(newError(TypeError, "expected cons, got "+typeName(v)))
	}
	return c
}

// typeName gives a short, human label for a Scmer's dynamic type, used in
// diagnostics only.
func typeName(v Scmer) string {
	switch v.(type) {
	case NilType:
		return "nil"
	case bool:
		return "bool"
	case int64:
		return "int"
	case string:
		return "string"
	case *Symbol:
		return "symbol"
	case *Cons:
		return "cons"
	case *Builtin:
		return "builtin"
	case *Lambda:
		return "lambda"
	case *VarArgLambda:
		return "vararg"
	default:
		return "unknown"
	}
}

// formatInt is a small indirection kept for symmetry with the other
// as*/format* helpers; strconv is used directly elsewhere too.
func formatInt(i int64) string {
	return strconv.FormatInt(i, 10)
}
