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

// Globals is the process-wide symbol table for top-level `def`initions,
// grounded on the original's Globals class: a flat map plus a side-table of
// which names have ever been redefined after their first binding. A tracing
// JIT would use that side-table to promote a lookup of a never-redefined
// global to a compile-time constant; cpscm has no JIT (see SPEC_FULL §11.1)
// but keeps the bookkeeping so the registry's observable behavior --
// Revision bumping exactly on a mutation of an already-bound name -- matches
// spec §4.5 and is testable on its own.
type Globals struct {
	values   map[*Symbol]Scmer
	mutable  map[*Symbol]bool
	Revision uint64
}

// Globalenv is the single process-wide globals registry, seeded with
// builtins at package init by builtins.go's init (init_alu, init_list,
// init_core).
var Globalenv = NewGlobals()

func NewGlobals() *Globals {
	return &Globals{
		values:  make(map[*Symbol]Scmer),
		mutable: make(map[*Symbol]bool),
	}
}

// IsDefined reports whether sym has ever been bound.
func (g *Globals) IsDefined(sym *Symbol) bool {
	_, ok := g.values[sym]
	return ok
}

// IsMutable reports whether sym has been redefined at least once since its
// first binding.
func (g *Globals) IsMutable(sym *Symbol) bool {
	return g.mutable[sym]
}

// Get returns the current value of sym, panicking with UnboundSymbol if it
// was never defined. Callers that already checked IsDefined (Env.Lookup) use
// this to avoid a second map probe's error path.
func (g *Globals) Get(sym *Symbol) Scmer {
	v, ok := g.values[sym]
	if !ok {
		panic(newError(UnboundSymbol, "unbound symbol: "+sym.Name))
	}
	return v
}

// Def defines or redefines sym. A redefinition marks sym mutable and bumps
// Revision; a first definition does neither, matching the original's
// def_global (only later calls that find the name already defined call
// mark_mutable).
func (g *Globals) Def(sym *Symbol, value Scmer) {
	if g.IsDefined(sym) {
		g.mutable[sym] = true
		g.Revision++
	}
	g.values[sym] = value
}

// Clear resets the registry to empty, used by tests that want a pristine
// global namespace without builtins reseeded underneath them.
func (g *Globals) Clear() {
	g.values = make(map[*Symbol]Scmer)
	g.mutable = make(map[*Symbol]bool)
	g.Revision = 0
}
