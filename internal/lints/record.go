package lints

import (
	"github.com/elmlint/elin/internal/ast"
	tt "github.com/elmlint/elin/internal/types"
)

const (
	ruleRecord = "simplify-record-access"
	ruleUpdate = "simplify-record-update"

	msgFieldOfLiteral   = "Field access on a record literal is the assigned value"
	msgFieldOfUpdate    = "Field access on a record update is the assigned value"
	msgFieldPastUpdate  = "The update does not assign this field, so the base record can be accessed directly"
	msgAccessIntoBranch = "The field access can be pushed into the branches"
	msgUselessField     = "Unnecessary field assignment"
	msgEmptyUpdate      = "A record update with no assignments is the base record"

	detailSelfAssign = "The field is assigned its own current value, so the assignment changes nothing."
)

// DetectFieldAccess projects `.field` through statically known record
// shapes: literals, updates, and the leaves of let/if/case expressions.
func DetectFieldAccess(e ast.Expr, ctx *Context) *tt.Issue {
	acc, ok := e.(*ast.FieldAccess)
	if !ok {
		return nil
	}

	switch target := ast.UnwrapParens(acc.Target).(type) {
	case *ast.RecordLit:
		f := target.Field(acc.Field)
		if f == nil {
			return nil
		}
		return newIssue(ctx, ruleRecord, acc.Rng, msgFieldOfLiteral, nil,
			replaceWith(ctx, acc.Rng, f.Value))

	case *ast.RecordUpdate:
		if f := target.Field(acc.Field); f != nil {
			return newIssue(ctx, ruleRecord, acc.Rng, msgFieldOfUpdate, nil,
				replaceWith(ctx, acc.Rng, f.Value))
		}
		return newIssue(ctx, ruleRecord, acc.Rng, msgFieldPastUpdate, nil,
			replaceWithText(acc.Rng, target.Base+"."+acc.Field))

	case *ast.Let, *ast.If, *ast.Case:
		return detectAccessThroughBranches(ctx, acc, target)
	}
	return nil
}

// detectAccessThroughBranches pushes `(let/if/case ...).field` into the
// branch leaves when every leaf tolerates a direct `.field` suffix.
func detectAccessThroughBranches(ctx *Context, acc *ast.FieldAccess, target ast.Expr) *tt.Issue {
	var leaves []ast.Expr
	if !collectProjectableLeaves(target, &leaves) {
		return nil
	}

	fix := []tt.Edit{tt.Remove(tt.Range{Start: acc.Target.Range().End, End: acc.Rng.End})}
	for _, leaf := range leaves {
		fix = append(fix, tt.InsertAt(leaf.Range().End, "."+acc.Field))
	}
	return newIssue(ctx, ruleRecord, acc.Rng, msgAccessIntoBranch, nil, fix)
}

// collectProjectableLeaves walks the branch structure and gathers the
// leaf expressions a field access may be appended to. It reports false
// as soon as any leaf would need reparenthesizing.
func collectProjectableLeaves(e ast.Expr, leaves *[]ast.Expr) bool {
	switch n := ast.UnwrapParens(e).(type) {
	case *ast.Let:
		return collectProjectableLeaves(n.Body, leaves)
	case *ast.If:
		return collectProjectableLeaves(n.Then, leaves) &&
			collectProjectableLeaves(n.Else, leaves)
	case *ast.Case:
		for _, arm := range n.Arms {
			if !collectProjectableLeaves(arm.Body, leaves) {
				return false
			}
		}
		return len(n.Arms) > 0
	case *ast.RecordLit, *ast.RecordUpdate, *ast.VarRef, *ast.FieldAccess:
		// shapes a `.field` suffix binds to without extra parens; a
		// parenthesized leaf keeps its parens, so the suffix still binds
		*leaves = append(*leaves, e)
		return true
	}
	return false
}

// DetectRecordUpdate prunes `{ r | f = r.f }` assignments; an update
// left with no assignments collapses to its base record.
func DetectRecordUpdate(e ast.Expr, ctx *Context) *tt.Issue {
	upd, ok := e.(*ast.RecordUpdate)
	if !ok {
		return nil
	}

	for i, f := range upd.Fields {
		if !assignsOwnValue(upd.Base, f) {
			continue
		}
		if len(upd.Fields) == 1 {
			return newIssue(ctx, ruleUpdate, upd.Rng, msgUselessField,
				[]string{detailSelfAssign}, replaceWithText(upd.Rng, upd.Base))
		}
		var span tt.Range
		if i > 0 {
			span = tt.Range{Start: upd.Fields[i-1].Value.Range().End, End: f.Value.Range().End}
		} else {
			span = tt.Range{Start: f.NameRange.Start, End: upd.Fields[1].NameRange.Start}
		}
		return newIssue(ctx, ruleUpdate, f.NameRange, msgUselessField,
			[]string{detailSelfAssign}, []tt.Edit{tt.Remove(span)})
	}
	return nil
}

// assignsOwnValue recognizes `f = base.f` and `f = .f base`.
func assignsOwnValue(base string, f *ast.RecordField) bool {
	if acc, ok := ast.UnwrapParens(f.Value).(*ast.FieldAccess); ok {
		ref, isRef := ast.UnwrapParens(acc.Target).(*ast.VarRef)
		return isRef && len(ref.Module) == 0 && ref.Name == base && acc.Field == f.Name
	}
	fn, args := ast.FlattenApp(f.Value)
	if fn == nil || len(args) != 1 {
		return false
	}
	accFn, ok := ast.UnwrapParens(fn).(*ast.AccessFunc)
	if !ok || accFn.Field != f.Name {
		return false
	}
	ref, ok := ast.UnwrapParens(args[0]).(*ast.VarRef)
	return ok && len(ref.Module) == 0 && ref.Name == base
}
