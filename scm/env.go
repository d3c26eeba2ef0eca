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

// Env is one binding in a singly-linked chain of lexical frames: a symbol,
// its value, and the enclosing frame. Binding a new name never mutates an
// existing Env -- it allocates a fresh frame whose Parent is the old one, so
// a captured *Env is safe to keep and reuse across calls (closures share
// structure, never state). This is the one-binding-per-frame shape spec §3
// calls for, distinct from the teacher's scm.go, which keeps one Vars map
// per frame; a Lambda invocation here chains one frame per parameter instead
// of building a map.
type Env struct {
	Symbol *Symbol
	Value  Scmer
	Parent *Env
}

// Bind returns a new frame extending env with one additional binding. env
// may be nil, representing the empty local scope (lookups fall through to
// the globals registry).
func (env *Env) Bind(sym *Symbol, value Scmer) *Env {
	return &Env{Symbol: sym, Value: value, Parent: env}
}

// Lookup walks the frame chain from the innermost frame outward, then falls back to the global
// registry. It panics with UnboundSymbol if the name is bound nowhere,
// matching the original's Env.lookup falling through to global_registry.
func (env *Env) Lookup(sym *Symbol) Scmer {
	for e := env; e != nil; e = e.Parent {
		if e.Symbol == sym {
			return e.Value
		}
	}
	if Globalenv.IsDefined(sym) {
		return Globalenv.Get(sym)
	}
	panic(newError(UnboundSymbol, "unbound symbol: "+sym.Name))
}
