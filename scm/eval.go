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

// Eval evaluates expr in env and runs it to completion, returning the
// result. It is the only entry point a caller (reader loop, REPL, builtins
// like load-file) needs: everything underneath is the trampoline, so Eval's own
// Go stack usage is constant no matter how deep the Lisp-level recursion
// goes.
func Eval(env *Env, expr Scmer) Scmer {
	var stack *Stack
	stack = stack.Push(&EvalExpr{Env: env, Expr: expr})
	return trampoline(stack, Nil)
}

// trampoline is the evaluator's entire control loop: pop a continuation,
// feed it the current value, replace both with what it returns, repeat
// until the stack is empty. No call in this loop ever recurses into Eval or
// itself -- that is the whole point of reifying continuations as data
// instead of using the Go call stack.
func trampoline(stack *Stack, val Scmer) Scmer {
	for stack.HasMore() {
		top, rest := stack.Pop()
		val, stack = top.CallContinuation(val, rest)
	}
	return val
}

// applyAndRun invokes fn on args and runs the resulting continuation chain
// to completion, for the rare builtin (apply) that must itself produce a
// function's fully-evaluated result rather than returning control to the
// trampoline in tail position.
func applyAndRun(fn Scmer, args Scmer) Scmer {
	var stack *Stack
	stack = stack.Push(&ApplyContinuation{Fn: fn, Args: args})
	return trampoline(stack, Nil)
}

// evalOne evaluates a single expression one step: self-evaluating atoms and
// symbol lookups resolve immediately; everything with list structure
// (special forms and applications) is handled by evalForm, which always
// delays further work onto the stack rather than recursing.
func evalOne(env *Env, expr Scmer, stack *Stack) (Scmer, *Stack) {
	switch v := expr.(type) {
	case *Symbol:
		return env.Lookup(v), stack
	case *Cons:
		return evalForm(env, v, stack)
	default:
		return expr, stack
	}
}

// evalForm dispatches a list form: the eight special forms spec §4.4 names,
// matched by interned-symbol identity against form.Car, or, failing that,
// a function application.
func evalForm(env *Env, form *Cons, stack *Stack) (Scmer, *Stack) {
	if head, ok := form.Car.(*Symbol); ok {
		switch head {
		case symQuote:
			return asCons(form.Cdr).Car, stack
		case symDo:
			return Nil, stack.Push(&DoContinuation{Env: env, Remaining: form.Cdr})
		case symIf:
			return evalIf(env, form.Cdr, stack)
		case symDef:
			return evalDef(env, form.Cdr, stack)
		case symFn:
			return evalFn(env, form.Cdr), stack
		case symCond:
			return evalCond(env, form.Cdr, stack)
		case symResolve:
			exprCons := asCons(form.Cdr)
			next := stack.Push(&ResolveContinuation{Env: env})
			return Nil, next.Push(&EvalExpr{Env: env, Expr: exprCons.Car})
		case symLet:
			return evalLet(env, form.Cdr, stack)
		}
	}
	next := stack.Push(&EvalApplyFn{Env: env, ArgExprs: form.Cdr})
	return Nil, next.Push(&EvalExpr{Env: env, Expr: form.Car})
}

func evalIf(env *Env, rest Scmer, stack *Stack) (Scmer, *Stack) {
	args := ListToSlice(rest)
	if len(args) != 3 {
		panic(newError(TypeError, "if requires exactly 3 arguments (test then else)"))
	}
	next := stack.Push(&IfContinuation{Env: env, Then: args[1], Else: args[2]})
	return Nil, next.Push(&EvalExpr{Env: env, Expr: args[0]})
}

func evalDef(env *Env, rest Scmer, stack *Stack) (Scmer, *Stack) {
	pair := asCons(rest)
	sym, ok := pair.Car.(*Symbol)
	if !ok {
		panic(newError(TypeError, "def requires a symbol name"))
	}
	valueExpr := asCons(pair.Cdr).Car
	next := stack.Push(&DefContinuation{Sym: sym})
	return Nil, next.Push(&EvalExpr{Env: env, Expr: valueExpr})
}

func evalCond(env *Env, clauses Scmer, stack *Stack) (Scmer, *Stack) {
	c, ok := clauses.(*Cons)
	if !ok {
		return Nil, stack
	}
	clause := asCons(c.Car)
	next := stack.Push(&CondContinuation{Env: env, Body: clause.Cdr, Rest: c.Cdr})
	return Nil, next.Push(&EvalExpr{Env: env, Expr: clause.Car})
}

func evalLet(env *Env, rest Scmer, stack *Stack) (Scmer, *Stack) {
	pair := asCons(rest)
	body := pair.Cdr
	c, ok := pair.Car.(*Cons)
	if !ok {
		return Nil, stack.Push(&DoContinuation{Env: env, Remaining: body})
	}
	first := asCons(c.Car)
	sym, ok := first.Car.(*Symbol)
	if !ok {
		panic(newError(TypeError, "let binding name must be a symbol"))
	}
	exprCons := asCons(first.Cdr)
	next := stack.Push(&LetContinuation{Env: env, Sym: sym, Bindings: c.Cdr, Body: body})
	return Nil, next.Push(&EvalExpr{Env: env, Expr: exprCons.Car})
}

// evalFn builds a closure value from a (fn params body...) form. params must
// be a proper list of parameter symbols -- packing every call argument into a
// single list is the vararg builtin's job, not a second fn grammar.
func evalFn(env *Env, rest Scmer) Scmer {
	pair := asCons(rest)
	body := pair.Cdr
	paramExprs := ListToSlice(pair.Car)
	paramSyms := make([]*Symbol, len(paramExprs))
	for i, p := range paramExprs {
		sym, ok := p.(*Symbol)
		if !ok {
			panic(newError(TypeError, "fn parameter list must contain only symbols"))
		}
		paramSyms[i] = sym
	}
	return newLambda(paramSyms, body, env)
}

// EvalApplyFn is pushed once the operator position of an application has
// finished evaluating (val is now the callable); it kicks off evaluation of
// the argument expressions via EvalApply.
type EvalApplyFn struct {
	Env      *Env
	ArgExprs Scmer
}

func (e *EvalApplyFn) CallContinuation(val Scmer, stack *Stack) (Scmer, *Stack) {
	return Nil, stack.Push(&EvalApply{Env: e.Env, Pending: e.ArgExprs, Fn: val})
}

// applyFn dispatches a fully-evaluated callable to its Invoke method. Every
// callable value in this interpreter -- Builtin, Lambda, VarArgLambda --
// implements the same (args Scmer, stack *Stack) -> (Scmer, *Stack) shape,
// so the evaluator never needs to know which kind of function it is calling.
func applyFn(fn Scmer, args Scmer, stack *Stack) (Scmer, *Stack) {
	switch f := fn.(type) {
	case *Builtin:
		return f.Invoke(args, stack)
	case *Lambda:
		recordMergePoint(f)
		return f.Invoke(args, stack)
	case *VarArgLambda:
		return f.Invoke(args, stack)
	default:
		panic(newError(Uncallable, "value is not callable: "+typeName(fn)))
	}
}
