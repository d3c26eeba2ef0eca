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

// The continuation kinds below are the reified "rest of the computation"
// that eval_one pushes instead of recursing. Each one receives the value
// produced by whatever ran just before it and returns the next value to
// carry forward together with the (possibly further extended) stack; the
// trampoline in eval.go does nothing but pop and call these in a loop, so
// none of this ever grows the Go call stack regardless of how deep the Lisp
// recursion goes.

// EvalExpr evaluates Expr in Env. The incoming val is ignored -- there is
// nothing to continue from, this continuation only exists to delay the call
// to evalOne until the trampoline gets to it.
type EvalExpr struct {
	Env  *Env
	Expr Scmer
}

func (e *EvalExpr) CallContinuation(val Scmer, stack *Stack) (Scmer, *Stack) {
	return evalOne(e.Env, e.Expr, stack)
}

// Val carries an already-known value forward, ignoring whatever val the
// trampoline hands it. Nothing in the evaluator pushes it at present: an
// empty do-body and a cond with no matching clause return Nil directly.
type Val struct {
	Value Scmer
}

func (v *Val) CallContinuation(val Scmer, stack *Stack) (Scmer, *Stack) {
	return v.Value, stack
}

// EvalApply evaluates the elements of Pending (a list of unevaluated
// argument expressions) one at a time, left to right, accumulating results
// in Done, and finally pushes ApplyContinuation once nothing is left
// pending. Started distinguishes "this is the very first argument, there is
// no previous value to record" from later invocations where val is the
// result of the argument evaluated just before.
type EvalApply struct {
	Env     *Env
	Pending Scmer
	Done    []Scmer
	Fn      Scmer
	Started bool
}

func (e *EvalApply) CallContinuation(val Scmer, stack *Stack) (Scmer, *Stack) {
	done := e.Done
	if e.Started {
		done = append(append([]Scmer{}, e.Done...), val)
	}
	switch pending := e.Pending.(type) {
	case *Cons:
		rest := stack.Push(&EvalApply{Env: e.Env, Pending: pending.Cdr, Done: done, Fn: e.Fn, Started: true})
		return Nil, rest.Push(&EvalExpr{Env: e.Env, Expr: pending.Car})
	case NilType:
		return Nil, stack.Push(&ApplyContinuation{Fn: e.Fn, Args: SliceToList(done)})
	default:
		// An improper argument-expression list: Pending is neither a Cons to
		// keep walking nor Nil to finish on. Evaluate it as one final
		// argument expression and finish -- this doesn't special-case the
		// malformed form, it just runs it through the same machinery, so a
		// nonsense tail fails wherever evaluating it naturally fails.
		next := stack.Push(&EvalApply{Env: e.Env, Pending: Nil, Done: done, Fn: e.Fn, Started: true})
		return Nil, next.Push(&EvalExpr{Env: e.Env, Expr: pending})
	}
}

// ApplyContinuation invokes Fn (a *Builtin, *Lambda, or *VarArgLambda) on
// the fully-evaluated argument list Args.
type ApplyContinuation struct {
	Fn   Scmer
	Args Scmer
}

func (a *ApplyContinuation) CallContinuation(val Scmer, stack *Stack) (Scmer, *Stack) {
	return applyFn(a.Fn, a.Args, stack)
}

// DoContinuation runs the expressions in Remaining in order, discarding all
// but the last result. The final expression is evaluated in tail position:
// no further DoContinuation is pushed for it, so a self-recursive call as
// the last form of a do-body is a genuine tail call.
type DoContinuation struct {
	Env       *Env
	Remaining Scmer
}

func (d *DoContinuation) CallContinuation(val Scmer, stack *Stack) (Scmer, *Stack) {
	rem, ok := d.Remaining.(*Cons)
	if !ok {
		return Nil, stack
	}
	if _, more := rem.Cdr.(*Cons); more {
		next := stack.Push(&DoContinuation{Env: d.Env, Remaining: rem.Cdr})
		return Nil, next.Push(&EvalExpr{Env: d.Env, Expr: rem.Car})
	}
	return Nil, stack.Push(&EvalExpr{Env: d.Env, Expr: rem.Car})
}

// IfContinuation picks Then or Else based on the truthiness of val, the
// just-evaluated test expression's result.
type IfContinuation struct {
	Env        *Env
	Then, Else Scmer
}

func (i *IfContinuation) CallContinuation(val Scmer, stack *Stack) (Scmer, *Stack) {
	branch := i.Else
	if IsTruthy(val) {
		branch = i.Then
	}
	return Nil, stack.Push(&EvalExpr{Env: i.Env, Expr: branch})
}

// CondContinuation walks a cond's clauses one at a time. Body is the
// body-expression list of the clause whose test was just evaluated (val);
// Rest is the list of clauses not yet tried. Each clause is itself a list
// whose car is the test expression and whose cdr is the body.
type CondContinuation struct {
	Env  *Env
	Body Scmer
	Rest Scmer
}

func (c *CondContinuation) CallContinuation(val Scmer, stack *Stack) (Scmer, *Stack) {
	if IsTruthy(val) {
		return Nil, stack.Push(&DoContinuation{Env: c.Env, Remaining: c.Body})
	}
	rest, ok := c.Rest.(*Cons)
	if !ok {
		return Nil, stack
	}
	clause := asCons(rest.Car)
	next := stack.Push(&CondContinuation{Env: c.Env, Body: clause.Cdr, Rest: rest.Cdr})
	return Nil, next.Push(&EvalExpr{Env: c.Env, Expr: clause.Car})
}

// DefContinuation binds Sym to val in the global registry and yields val as
// the result of the def form, matching def_global's return-what-you-bound
// behavior.
type DefContinuation struct {
	Sym *Symbol
}

func (d *DefContinuation) CallContinuation(val Scmer, stack *Stack) (Scmer, *Stack) {
	Globalenv.Def(d.Sym, val)
	return val, stack
}

// ResolveContinuation turns val, which must evaluate to a symbol, into the
// current value that symbol is bound to in Env -- a level of indirection
// for code that builds a symbol at runtime and wants its binding rather than
// the symbol itself.
type ResolveContinuation struct {
	Env *Env
}

func (r *ResolveContinuation) CallContinuation(val Scmer, stack *Stack) (Scmer, *Stack) {
	sym, ok := val.(*Symbol)
	if !ok {
		panic(newError(TypeError, "resolve expects a symbol, got "+typeName(val)))
	}
	return r.Env.Lookup(sym), stack
}

// LetContinuation threads sequential let bindings: Env is the frame chain as
// it stood before the binding currently being evaluated, Sym names that
// binding, val is its value, Bindings holds the (sym expr) pairs not yet
// bound, and Body runs once every binding is in place.
type LetContinuation struct {
	Env      *Env
	Sym      *Symbol
	Bindings Scmer
	Body     Scmer
}

func (l *LetContinuation) CallContinuation(val Scmer, stack *Stack) (Scmer, *Stack) {
	newEnv := l.Env.Bind(l.Sym, val)
	if c, ok := l.Bindings.(*Cons); ok {
		pair := asCons(c.Car)
		sym, ok := pair.Car.(*Symbol)
		if !ok {
			panic(newError(TypeError, "let binding name must be a symbol"))
		}
		exprCons := asCons(pair.Cdr)
		next := stack.Push(&LetContinuation{Env: newEnv, Sym: sym, Bindings: c.Cdr, Body: l.Body})
		return Nil, next.Push(&EvalExpr{Env: newEnv, Expr: exprCons.Car})
	}
	return Nil, stack.Push(&DoContinuation{Env: newEnv, Remaining: l.Body})
}
