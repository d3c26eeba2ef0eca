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

import "strings"

// String renders v in the same surface syntax the reader accepts, so that
// reading back String(v) for any v built only from readable forms yields a
// value equal? to v (spec §8's round-trip property). Strings themselves are
// the one place this is lossy: the grammar has no escape sequences, so a
// string containing a `"` cannot be read back verbatim; cpscm prints it
// unescaped anyway rather than inventing an escape the reader does not
// accept.
func String(v Scmer) string {
	var b strings.Builder
	writeScmer(&b, v)
	return b.String()
}

func writeScmer(b *strings.Builder, v Scmer) {
	switch vv := v.(type) {
	case NilType:
		b.WriteString("()")
	case bool:
		if vv {
			b.WriteString("true")
		} else {
			b.WriteString("false")
		}
	case int64:
		b.WriteString(formatInt(vv))
	case string:
		b.WriteByte('"')
		b.WriteString(vv)
		b.WriteByte('"')
	case *Symbol:
		b.WriteString(vv.Name)
	case *Cons:
		writeCons(b, vv)
	case *Builtin:
		b.WriteString("#<builtin " + vv.Name + ">")
	case *Lambda:
		b.WriteString("#<lambda>")
	case *VarArgLambda:
		b.WriteString("#<lambda>")
	default:
		b.WriteString("#<unknown>")
	}
}

// writeCons prints a proper list as "(a b c)" and an improper one as
// "(a b . c)", the conventional Lisp dotted-pair notation.
func writeCons(b *strings.Builder, c *Cons) {
	b.WriteByte('(')
	writeScmer(b, c.Car)
	rest := c.Cdr
	for {
		switch r := rest.(type) {
		case NilType:
			b.WriteByte(')')
			return
		case *Cons:
			b.WriteByte(' ')
			writeScmer(b, r.Car)
			rest = r.Cdr
		default:
			b.WriteString(" . ")
			writeScmer(b, r)
			b.WriteByte(')')
			return
		}
	}
}
