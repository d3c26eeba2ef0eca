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

import "fmt"

// Lambda is a user-defined function: a fixed parameter list, a body (a list
// of expressions run as an implicit do), and the environment captured at
// definition time. Env already carries a __self__ binding pointing back at
// this very Lambda (see evalFn / newLambda), which is how a lambda written
// without a name can still call itself recursively.
type Lambda struct {
	Params []*Symbol
	Body   Scmer
	Env    *Env
}

// newLambda constructs a Lambda whose captured environment includes a
// __self__ binding to itself, matching the original's Lambda.__init__
// binding self_sym in its own env before invocation ever happens.
func newLambda(params []*Symbol, body Scmer, env *Env) *Lambda {
	l := &Lambda{Params: params, Body: body}
	l.Env = env.Bind(symSelf, l)
	return l
}

// Invoke binds args to Params positionally in lockstep, in the order spec
// §9 resolves as an open question: walking args and Params together, a
// shorter args binds the trailing params to Nil, a longer args silently
// drops the extra values. Neither case raises an error -- see SPEC_FULL §12.
func (l *Lambda) Invoke(args Scmer, stack *Stack) (Scmer, *Stack) {
	callEnv := l.Env
	a := args
	for _, sym := range l.Params {
		if c, ok := a.(*Cons); ok {
			callEnv = callEnv.Bind(sym, c.Car)
			a = c.Cdr
		} else {
			callEnv = callEnv.Bind(sym, Nil)
		}
	}
	return Nil, stack.Push(&DoContinuation{Env: callEnv, Remaining: l.Body})
}

// VarArgLambda wraps an arbitrary callable so that a call's arguments, no
// matter how many, are packed into a single list and passed to Fn as its one
// argument. It is only ever constructed by the vararg builtin -- there is no
// surface syntax for it, unlike Lambda's (fn params body...) form.
type VarArgLambda struct {
	Fn Scmer
}

func newVarArgLambda(fn Scmer) *VarArgLambda {
	return &VarArgLambda{Fn: fn}
}

func (v *VarArgLambda) Invoke(args Scmer, stack *Stack) (Scmer, *Stack) {
	return applyFn(v.Fn, &Cons{Car: args, Cdr: Nil}, stack)
}

// Builtin is a primitive implemented in Go. Fn receives its arguments
// already collected into a slice (the caller has walked the Cons list);
// MaxParameter of -1 means unbounded, mirroring declare.go's Declaration
// arity bounds.
type Builtin struct {
	Name                       string
	Desc                       string
	MinParameter, MaxParameter int
	Fn                         func(args []Scmer) Scmer
}

func (b *Builtin) Invoke(args Scmer, stack *Stack) (Scmer, *Stack) {
	argv := ListToSlice(args)
	if len(argv) < b.MinParameter || (b.MaxParameter >= 0 && len(argv) > b.MaxParameter) {
		panic(newError(TypeError, fmt.Sprintf("%s: expected %s arguments, got %d", b.Name, arityDesc(b.MinParameter, b.MaxParameter), len(argv))))
	}
	return b.Fn(argv), stack
}

func arityDesc(min, max int) string {
	if max < 0 {
		return fmt.Sprintf("at least %d", min)
	}
	if min == max {
		return fmt.Sprintf("exactly %d", min)
	}
	return fmt.Sprintf("between %d and %d", min, max)
}
