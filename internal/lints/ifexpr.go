package lints

import (
	"github.com/elmlint/elin/internal/ast"
	tt "github.com/elmlint/elin/internal/types"
)

const (
	ruleIf = "simplify-if"

	msgCondAlwaysTrue  = "The condition will always evaluate to True"
	msgCondAlwaysFalse = "The condition will always evaluate to False"
	msgIfToCondition   = "The if expression can be replaced by the condition"
	msgIfToNegation    = "The if expression can be replaced by the negated condition"
	msgSameBranches    = "Both branches evaluate to the same value"

	detailCondKnown = "An enclosing branch already decides this condition, so only one branch is reachable."
)

// DetectIf reduces if expressions with a decided condition, boolean
// branches, or identical branches.
func DetectIf(e ast.Expr, ctx *Context) *tt.Issue {
	ifx, ok := e.(*ast.If)
	if !ok {
		return nil
	}

	if v, isBool := ctx.BoolValue(ifx.Cond); isBool {
		msg, branch := msgCondAlwaysFalse, ifx.Else
		if v {
			msg, branch = msgCondAlwaysTrue, ifx.Then
		}
		return newIssue(ctx, ruleIf, ifx.Rng, msg, nil, replaceWith(ctx, ifx.Rng, branch))
	}

	// a condition decided by an enclosing branch is rewritten to the
	// boolean it must hold; the now-trivial if collapses on a later pass
	if v, known := ctx.Truths.Known(ifx.Cond); known {
		msg, text := msgCondAlwaysFalse, "False"
		if v {
			msg, text = msgCondAlwaysTrue, "True"
		}
		return newIssue(ctx, ruleIf, ifx.Cond.Range(), msg,
			[]string{detailCondKnown}, replaceWithText(ifx.Cond.Range(), text))
	}

	tv, tok := ctx.BoolValue(ifx.Then)
	ev, eok := ctx.BoolValue(ifx.Else)
	if tok && eok && tv != ev {
		if tv {
			return newIssue(ctx, ruleIf, ifx.Rng, msgIfToCondition, nil,
				replaceWith(ctx, ifx.Rng, ifx.Cond))
		}
		text := "not " + keepText(ctx, ifx.Cond, true)
		return newIssue(ctx, ruleIf, ifx.Rng, msgIfToNegation, nil,
			replaceWithText(ifx.Rng, text))
	}

	if ctx.Eq.SameValue(ifx.Then, ifx.Else) {
		return newIssue(ctx, ruleIf, ifx.Rng, msgSameBranches,
			[]string{"The condition does not change the result."},
			replaceWith(ctx, ifx.Rng, ifx.Then))
	}
	return nil
}
