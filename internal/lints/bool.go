package lints

import (
	"github.com/elmlint/elin/internal/ast"
	tt "github.com/elmlint/elin/internal/types"
)

const (
	ruleBool = "simplify-boolean"

	msgUnnecessary = "Part of the expression is unnecessary"

	detailBoolConst = "The expression can be replaced by the value it always evaluates to."
	detailBoolDrop  = "This operand does not change the result of the expression and can be removed."
)

// DetectBooleanOperator simplifies `||` and `&&` expressions whose result
// is decided by a True/False operand, and drops operands repeated within
// a chain of the same operator.
// Examples: `True || x` -> `True`, `x && True` -> `x`, `x || x` -> `x`.
func DetectBooleanOperator(e ast.Expr, ctx *Context) *tt.Issue {
	bin, ok := e.(*ast.BinOp)
	if !ok || (bin.Op != "||" && bin.Op != "&&") {
		return nil
	}

	lv, lok := ctx.BoolValue(bin.Left)
	rv, rok := ctx.BoolValue(bin.Right)

	keep := func(side ast.Expr) *tt.Issue {
		return newIssue(ctx, ruleBool, bin.Rng, msgUnnecessary,
			[]string{detailBoolConst}, replaceWith(ctx, bin.Rng, side))
	}

	if bin.Op == "||" {
		switch {
		case lok && lv: // True || x
			return keep(bin.Left)
		case rok && rv: // x || True
			return keep(bin.Right)
		case lok && !lv: // False || x
			return keep(bin.Right)
		case rok && !rv: // x || False
			return keep(bin.Left)
		}
	} else {
		switch {
		case lok && !lv: // False && x
			return keep(bin.Left)
		case rok && !rv: // x && False
			return keep(bin.Right)
		case lok && lv: // True && x
			return keep(bin.Right)
		case rok && rv: // x && True
			return keep(bin.Left)
		}
	}

	return detectRepeatedOperand(bin, ctx)
}

// detectRepeatedOperand removes a duplicate occurrence within a chain of
// the same boolean operator, keeping the first.
func detectRepeatedOperand(bin *ast.BinOp, ctx *Context) *tt.Issue {
	operands := operatorChain(bin, bin.Op)
	for i := 1; i < len(operands); i++ {
		for j := 0; j < i; j++ {
			if ctx.Eq.SameValue(operands[j], operands[i]) {
				fix := []tt.Edit{tt.Remove(tt.Range{
					Start: operands[i-1].Range().End,
					End:   operands[i].Range().End,
				})}
				return newIssue(ctx, ruleBool, operands[i].Range(), msgUnnecessary,
					[]string{detailBoolDrop}, fix)
			}
		}
	}
	return nil
}

// operatorChain flattens a left-leaning chain of the same operator into
// its operand list, in source order.
func operatorChain(e ast.Expr, op string) []ast.Expr {
	if bin, ok := ast.UnwrapParens(e).(*ast.BinOp); ok && bin.Op == op {
		return append(operatorChain(bin.Left, op), operatorChain(bin.Right, op)...)
	}
	return []ast.Expr{e}
}

const (
	ruleNot = "simplify-not"

	msgNotOnBool    = "Expression is equal to the inverted boolean value"
	msgDoubleNot    = "Unnecessary double negation"
	detailDoubleNot = "Applying `not` twice returns the original value."
)

// DetectNot simplifies applications of Basics.not: `not True` -> `False`,
// `not False` -> `True`, and `not (not x)` -> `x` through any pipe sugar.
func DetectNot(e ast.Expr, ctx *Context) *tt.Issue {
	rng := e.Range()
	arg, ok := ctx.NotArg(e)
	if !ok {
		return nil
	}

	if v, isBool := ctx.BoolValue(arg); isBool {
		text := "False"
		if !v {
			text = "True"
		}
		return newIssue(ctx, ruleNot, rng, msgNotOnBool, nil, replaceWithText(rng, text))
	}

	if inner, isNot := ctx.NotArg(arg); isNot {
		return newIssue(ctx, ruleNot, rng, msgDoubleNot,
			[]string{detailDoubleNot}, replaceWith(ctx, rng, inner))
	}
	return nil
}

// DetectNotComposition collapses `not >> not` and `not << not` to
// `identity`.
func DetectNotComposition(e ast.Expr, ctx *Context) *tt.Issue {
	bin, ok := e.(*ast.BinOp)
	if !ok || (bin.Op != ">>" && bin.Op != "<<") {
		return nil
	}
	if ctx.Resolves(bin.Left, "Basics", "not") && ctx.Resolves(bin.Right, "Basics", "not") {
		return newIssue(ctx, ruleNot, bin.Rng, msgDoubleNot,
			[]string{detailDoubleNot}, replaceWithText(bin.Rng, "identity"))
	}
	return nil
}
