// Package eq decides whether two expression subtrees are guaranteed to
// evaluate to the same value. The check is sound but incomplete: a false
// answer means "not known to be equal", never "known to be different".
// KnownDistinct is the separate, equally sound check for the opposite
// direction.
package eq

import (
	"github.com/elmlint/elin/internal/ast"
	"github.com/elmlint/elin/internal/resolve"
)

// Engine compares expressions within one module, using the module's
// resolver so that qualified and unqualified spellings of the same
// standard-library name compare equal.
type Engine struct {
	resolver *resolve.Resolver
}

// New builds an equivalence engine for one module.
func New(r *resolve.Resolver) *Engine {
	return &Engine{resolver: r}
}

// operators whose operand order cannot change the resulting value.
var commutative = map[string]bool{
	"+": true, "*": true, "==": true, "/=": true, "&&": true, "||": true,
}

// SameValue reports whether a and b always evaluate to the same value.
func (e *Engine) SameValue(a, b ast.Expr) bool {
	a = ast.UnwrapParens(a)
	b = ast.UnwrapParens(b)

	// field access in both spellings: `x.field` and `.field x`
	if fa, ta, ok := fieldAccessOf(a); ok {
		if fb, tb, ok2 := fieldAccessOf(b); ok2 {
			return fa == fb && e.SameValue(ta, tb)
		}
	}

	// application through any pipe sugar
	if fnA, argsA := ast.FlattenApp(a); fnA != nil {
		fnB, argsB := ast.FlattenApp(b)
		if fnB == nil || len(argsA) != len(argsB) {
			return false
		}
		if !e.SameValue(fnA, fnB) {
			return false
		}
		for i := range argsA {
			if !e.SameValue(argsA[i], argsB[i]) {
				return false
			}
		}
		return true
	}
	if fnB, _ := ast.FlattenApp(b); fnB != nil {
		return false
	}

	switch x := a.(type) {
	case *ast.IntLit, *ast.FloatLit:
		va, _ := ast.NumericValue(a)
		vb, ok := ast.NumericValue(b)
		return ok && va == vb
	case *ast.StringLit:
		y, ok := b.(*ast.StringLit)
		return ok && x.Value == y.Value
	case *ast.CharLit:
		y, ok := b.(*ast.CharLit)
		return ok && x.Value == y.Value
	case *ast.UnitLit:
		_, ok := b.(*ast.UnitLit)
		return ok
	case *ast.VarRef:
		y, ok := b.(*ast.VarRef)
		if !ok {
			return false
		}
		return e.sameRef(x, y)
	case *ast.ListLit:
		y, ok := b.(*ast.ListLit)
		return ok && e.sameExprs(x.Elements, y.Elements)
	case *ast.TupleLit:
		y, ok := b.(*ast.TupleLit)
		return ok && e.sameExprs(x.Elements, y.Elements)
	case *ast.RecordLit:
		y, ok := b.(*ast.RecordLit)
		return ok && e.sameFields(x.Fields, y.Fields)
	case *ast.RecordUpdate:
		y, ok := b.(*ast.RecordUpdate)
		return ok && x.Base == y.Base && e.sameFields(x.Fields, y.Fields)
	case *ast.Negate:
		y, ok := b.(*ast.Negate)
		return ok && e.SameValue(x.Operand, y.Operand)
	case *ast.If:
		y, ok := b.(*ast.If)
		return ok && e.SameValue(x.Cond, y.Cond) &&
			e.SameValue(x.Then, y.Then) && e.SameValue(x.Else, y.Else)
	case *ast.Case:
		y, ok := b.(*ast.Case)
		if !ok || len(x.Arms) != len(y.Arms) || !e.SameValue(x.Subject, y.Subject) {
			return false
		}
		for i := range x.Arms {
			if !SamePattern(x.Arms[i].Pattern, y.Arms[i].Pattern) {
				return false
			}
			if !e.SameValue(x.Arms[i].Body, y.Arms[i].Body) {
				return false
			}
		}
		return true
	case *ast.Let:
		y, ok := b.(*ast.Let)
		if !ok || len(x.Bindings) != len(y.Bindings) {
			return false
		}
		for i := range x.Bindings {
			if !e.sameBinding(x.Bindings[i], y.Bindings[i]) {
				return false
			}
		}
		return e.SameValue(x.Body, y.Body)
	case *ast.Lambda:
		y, ok := b.(*ast.Lambda)
		if !ok || len(x.Params) != len(y.Params) {
			return false
		}
		for i := range x.Params {
			if !SamePattern(x.Params[i], y.Params[i]) {
				return false
			}
		}
		return e.SameValue(x.Body, y.Body)
	case *ast.AccessFunc:
		y, ok := b.(*ast.AccessFunc)
		return ok && x.Field == y.Field
	case *ast.OpFunc:
		y, ok := b.(*ast.OpFunc)
		return ok && x.Op == y.Op
	case *ast.BinOp:
		y, ok := b.(*ast.BinOp)
		if !ok || x.Op != y.Op {
			return false
		}
		if e.SameValue(x.Left, y.Left) && e.SameValue(x.Right, y.Right) {
			return true
		}
		if commutative[x.Op] {
			return e.SameValue(x.Left, y.Right) && e.SameValue(x.Right, y.Left)
		}
		return false
	}
	return false
}

func (e *Engine) sameRef(a, b *ast.VarRef) bool {
	modA, nameA, okA := e.resolver.Canonical(a)
	modB, nameB, okB := e.resolver.Canonical(b)
	if okA != okB {
		return false
	}
	if okA {
		return modA == modB && nameA == nameB
	}
	// two local variables: same name in the same scope is the same value
	return nameA == nameB && len(a.Module) == 0 && len(b.Module) == 0
}

func (e *Engine) sameExprs(a, b []ast.Expr) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !e.SameValue(a[i], b[i]) {
			return false
		}
	}
	return true
}

// sameFields compares record fields order-independently.
func (e *Engine) sameFields(a, b []*ast.RecordField) bool {
	if len(a) != len(b) {
		return false
	}
	for _, fa := range a {
		var fb *ast.RecordField
		for _, f := range b {
			if f.Name == fa.Name {
				fb = f
				break
			}
		}
		if fb == nil || !e.SameValue(fa.Value, fb.Value) {
			return false
		}
	}
	return true
}

func (e *Engine) sameBinding(a, b *ast.LetBinding) bool {
	if a.Name != b.Name || len(a.Params) != len(b.Params) {
		return false
	}
	if (a.Pat == nil) != (b.Pat == nil) {
		return false
	}
	if a.Pat != nil && !SamePattern(a.Pat, b.Pat) {
		return false
	}
	for i := range a.Params {
		if !SamePattern(a.Params[i], b.Params[i]) {
			return false
		}
	}
	return e.SameValue(a.Body, b.Body)
}

// fieldAccessOf normalizes both spellings of field access into a
// (field, target) pair: `x.field` and the access function applied,
// `.field x`.
func fieldAccessOf(e ast.Expr) (string, ast.Expr, bool) {
	switch n := e.(type) {
	case *ast.FieldAccess:
		return n.Field, n.Target, true
	}
	fn, args := ast.FlattenApp(e)
	if fn != nil && len(args) == 1 {
		if acc, ok := ast.UnwrapParens(fn).(*ast.AccessFunc); ok {
			return acc.Field, args[0], true
		}
	}
	return "", nil, false
}

// SamePattern compares two patterns syntactically.
func SamePattern(a, b ast.Pattern) bool {
	a = ast.UnwrapPatternParens(a)
	b = ast.UnwrapPatternParens(b)
	switch x := a.(type) {
	case *ast.PWildcard:
		_, ok := b.(*ast.PWildcard)
		return ok
	case *ast.PVar:
		y, ok := b.(*ast.PVar)
		return ok && x.Name == y.Name
	case *ast.PUnit:
		_, ok := b.(*ast.PUnit)
		return ok
	case *ast.PLiteral:
		y, ok := b.(*ast.PLiteral)
		return ok && sameLiteral(x.Value, y.Value)
	case *ast.PCtor:
		y, ok := b.(*ast.PCtor)
		if !ok || x.Name != y.Name || len(x.Args) != len(y.Args) {
			return false
		}
		for i := range x.Args {
			if !SamePattern(x.Args[i], y.Args[i]) {
				return false
			}
		}
		return true
	case *ast.PTuple:
		y, ok := b.(*ast.PTuple)
		return ok && samePatterns(x.Elements, y.Elements)
	case *ast.PList:
		y, ok := b.(*ast.PList)
		return ok && samePatterns(x.Elements, y.Elements)
	case *ast.PCons:
		y, ok := b.(*ast.PCons)
		return ok && SamePattern(x.Head, y.Head) && SamePattern(x.Tail, y.Tail)
	case *ast.PRecord:
		y, ok := b.(*ast.PRecord)
		if !ok || len(x.Fields) != len(y.Fields) {
			return false
		}
		for i := range x.Fields {
			if x.Fields[i] != y.Fields[i] {
				return false
			}
		}
		return true
	case *ast.PAs:
		y, ok := b.(*ast.PAs)
		return ok && x.Name == y.Name && SamePattern(x.Inner, y.Inner)
	}
	return false
}

func samePatterns(a, b []ast.Pattern) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !SamePattern(a[i], b[i]) {
			return false
		}
	}
	return true
}

func sameLiteral(a, b ast.Expr) bool {
	switch x := a.(type) {
	case *ast.IntLit, *ast.FloatLit:
		va, _ := ast.NumericValue(a)
		vb, ok := ast.NumericValue(b)
		return ok && va == vb
	case *ast.StringLit:
		y, ok := b.(*ast.StringLit)
		return ok && x.Value == y.Value
	case *ast.CharLit:
		y, ok := b.(*ast.CharLit)
		return ok && x.Value == y.Value
	}
	return false
}

// KnownDistinct reports whether a and b are statically known to evaluate
// to different values. Like SameValue it is sound: false means unknown.
func (e *Engine) KnownDistinct(a, b ast.Expr) bool {
	a = ast.UnwrapParens(a)
	b = ast.UnwrapParens(b)

	if va, ok := ast.NumericValue(a); ok {
		vb, ok2 := ast.NumericValue(b)
		return ok2 && va != vb
	}

	switch x := a.(type) {
	case *ast.StringLit:
		y, ok := b.(*ast.StringLit)
		return ok && x.Value != y.Value
	case *ast.CharLit:
		y, ok := b.(*ast.CharLit)
		return ok && x.Value != y.Value
	case *ast.ListLit:
		y, ok := b.(*ast.ListLit)
		if !ok {
			return false
		}
		if len(x.Elements) != len(y.Elements) {
			return true
		}
		for i := range x.Elements {
			if e.KnownDistinct(x.Elements[i], y.Elements[i]) {
				return true
			}
		}
		return false
	case *ast.TupleLit:
		y, ok := b.(*ast.TupleLit)
		if !ok || len(x.Elements) != len(y.Elements) {
			return false
		}
		for i := range x.Elements {
			if e.KnownDistinct(x.Elements[i], y.Elements[i]) {
				return true
			}
		}
		return false
	case *ast.RecordLit:
		y, ok := b.(*ast.RecordLit)
		if !ok {
			return false
		}
		for _, fa := range x.Fields {
			if fb := y.Field(fa.Name); fb != nil && e.KnownDistinct(fa.Value, fb.Value) {
				return true
			}
		}
		return false
	case *ast.RecordUpdate:
		y, ok := b.(*ast.RecordUpdate)
		if !ok {
			return false
		}
		if x.Base != y.Base {
			return true
		}
		// same base: a differing assigned field decides; a field listed
		// on one side only stays unknown
		for _, fa := range x.Fields {
			if fb := y.Field(fa.Name); fb != nil && e.KnownDistinct(fa.Value, fb.Value) {
				return true
			}
		}
		return false
	}
	return false
}
