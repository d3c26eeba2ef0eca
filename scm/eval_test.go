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

import "testing"

func run(t *testing.T, src string) Scmer {
	t.Helper()
	return Eval(nil, Read(src))
}

func TestArithmeticAndComparison(t *testing.T) {
	if v := run(t, "(+ 1 2)"); v != int64(3) {
		t.Errorf("got %v", v)
	}
	if v := run(t, "(* 3 4)"); v != int64(12) {
		t.Errorf("got %v", v)
	}
	if v := run(t, "(< 1 2)"); v != true {
		t.Errorf("got %v", v)
	}
	if v := run(t, "(= 5 5)"); v != true {
		t.Errorf("got %v", v)
	}
}

func TestIfBranches(t *testing.T) {
	if v := run(t, "(if true 1 2)"); v != int64(1) {
		t.Errorf("got %v", v)
	}
	if v := run(t, "(if false 1 2)"); v != int64(2) {
		t.Errorf("got %v", v)
	}
}

func TestDoSequencing(t *testing.T) {
	if v := run(t, "(do 1 2 3)"); v != int64(3) {
		t.Errorf("got %v, want last expression's value", v)
	}
}

func TestCondFallthrough(t *testing.T) {
	src := "(cond (false 1) (false 2) (true 3))"
	if v := run(t, src); v != int64(3) {
		t.Errorf("got %v, want the first truthy clause's value", v)
	}
	if v := run(t, "(cond (false 1))"); !IsNil(v) {
		t.Errorf("got %v, want nil when nothing matches", v)
	}
}

func TestLetSequentialBindings(t *testing.T) {
	src := "(let ((x 1) (y (+ x 1))) (+ x y))"
	if v := run(t, src); v != int64(3) {
		t.Errorf("got %v, want 3 (later bindings see earlier ones)", v)
	}
}

func TestLambdaClosureCapture(t *testing.T) {
	src := `(do
		(def make-adder (fn (x) (fn (y) (+ x y))))
		(def add5 (make-adder 5))
		(add5 10))`
	if v := run(t, src); v != int64(15) {
		t.Errorf("got %v, want captured x=5 to survive the outer call returning", v)
	}
}

func TestLambdaShadowing(t *testing.T) {
	src := `(do
		(def x 100)
		((fn (x) x) 7))`
	if v := run(t, src); v != int64(7) {
		t.Errorf("got %v, want the parameter to shadow the global", v)
	}
}

func TestSelfRecursionViaSelfBinding(t *testing.T) {
	src := `(do
		(def fact (fn (n) (if (<= n 1) 1 (* n (__self__ (- n 1))))))
		(fact 5))`
	if v := run(t, src); v != int64(120) {
		t.Errorf("got %v, want 120", v)
	}
}

func TestTailCallDoesNotGrowGoStack(t *testing.T) {
	src := `(do
		(def count-to (fn (n acc) (if (= n acc) acc (__self__ n (inc acc)))))
		(count-to 200000 0))`
	if v := run(t, src); v != int64(200000) {
		t.Errorf("got %v, want 200000 after a deep tail-recursive loop", v)
	}
}

func TestVarArgLambda(t *testing.T) {
	src := `(do
		(def first-of-packed (vararg (fn (packed) (car packed))))
		(first-of-packed 1 2 3))`
	if v := run(t, src); v != int64(1) {
		t.Errorf("got %v, want the first of the packed argument list", v)
	}
}

func TestDefReturnsBoundValueAndGlobalsAreMutable(t *testing.T) {
	before := Globalenv.Revision
	if v := run(t, "(def answer 42)"); v != int64(42) {
		t.Errorf("def should evaluate to the bound value, got %v", v)
	}
	if !Globalenv.IsDefined(Intern("answer")) {
		t.Fatal("answer should now be a defined global")
	}
	run(t, "(def answer 43)")
	if Globalenv.Revision <= before {
		t.Error("redefining an existing global must bump Revision")
	}
	if !Globalenv.IsMutable(Intern("answer")) {
		t.Error("a redefined global must be marked mutable")
	}
}

func TestUnboundSymbolRaisesTypedError(t *testing.T) {
	defer func() {
		r := recover()
		e, ok := r.(Error)
		if !ok || e.Kind != UnboundSymbol {
			t.Fatalf("expected UnboundSymbol, got %#v", r)
		}
	}()
	run(t, "this-name-was-never-bound")
}

func TestApplyAndVararg(t *testing.T) {
	if v := run(t, `(apply + (cons 1 (cons 2 ())))`); v != int64(3) {
		t.Errorf("got %v", v)
	}
	src := `(do
		(def packed (vararg (fn (args) (+ (car args) (car (cdr args))))))
		(packed 1 2))`
	if v := run(t, src); v != int64(3) {
		t.Errorf("got %v, want the wrapped function to see its arguments packed into one list", v)
	}
}
