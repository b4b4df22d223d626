package lints

import (
	"github.com/elmlint/elin/internal/ast"
	tt "github.com/elmlint/elin/internal/types"
)

const (
	ruleEquality = "simplify-equality"

	msgAlwaysTrue    = "The comparison will always evaluate to True"
	msgAlwaysFalse   = "The comparison will always evaluate to False"
	msgRedundantBool = "Unnecessary comparison with a boolean literal"
	msgNotOnBothSide = "Negating both sides of a comparison is unnecessary"

	detailSameOperands     = "Both sides of the comparison always evaluate to the same value."
	detailDistinctOperands = "Both sides are literals with different values."
	detailRedundantBool    = "The comparison evaluates to the other operand itself."
)

// DetectEquality simplifies `==` and `/=` expressions:
//
//	x == True  -> x        x /= False -> x
//	not a == not b -> a == b
//	a == a -> True         a /= a -> False
//	1 == 2 -> False        1 /= 2 -> True
//
// The opposite-polarity forms `x == False` and `x /= True` are left
// alone: removing them would require negating x.
func DetectEquality(e ast.Expr, ctx *Context) *tt.Issue {
	bin, ok := e.(*ast.BinOp)
	if !ok || (bin.Op != "==" && bin.Op != "/=") {
		return nil
	}

	if is := detectDoubleNegatedComparison(bin, ctx); is != nil {
		return is
	}

	// comparison against the boolean literal of matching polarity
	wanted := bin.Op == "=="
	if v, isBool := ctx.BoolValue(bin.Left); isBool && v == wanted {
		return newIssue(ctx, ruleEquality, bin.Rng, msgRedundantBool,
			[]string{detailRedundantBool}, replaceWith(ctx, bin.Rng, bin.Right))
	}
	if v, isBool := ctx.BoolValue(bin.Right); isBool && v == wanted {
		return newIssue(ctx, ruleEquality, bin.Rng, msgRedundantBool,
			[]string{detailRedundantBool}, replaceWith(ctx, bin.Rng, bin.Left))
	}

	if ctx.Eq.SameValue(bin.Left, bin.Right) {
		return comparisonResult(ctx, bin.Rng, bin.Op == "==", detailSameOperands)
	}
	if ctx.Eq.KnownDistinct(bin.Left, bin.Right) {
		return comparisonResult(ctx, bin.Rng, bin.Op == "/=", detailDistinctOperands)
	}
	return nil
}

func detectDoubleNegatedComparison(bin *ast.BinOp, ctx *Context) *tt.Issue {
	la, lok := ctx.NotArg(bin.Left)
	ra, rok := ctx.NotArg(bin.Right)
	if !lok || !rok {
		return nil
	}
	text := keepText(ctx, la, false) + " " + bin.Op + " " + keepText(ctx, ra, false)
	return newIssue(ctx, ruleEquality, bin.Rng, msgNotOnBothSide,
		[]string{"Comparing the operands directly gives the same result."},
		replaceWithText(bin.Rng, text))
}

func comparisonResult(ctx *Context, rng tt.Range, value bool, detail string) *tt.Issue {
	msg, text := msgAlwaysFalse, "False"
	if value {
		msg, text = msgAlwaysTrue, "True"
	}
	return newIssue(ctx, ruleEquality, rng, msg, []string{detail}, replaceWithText(rng, text))
}

// DetectLiteralComparison folds `<`, `>`, `<=`, `>=` between two numeric
// literals into the boolean they evaluate to.
func DetectLiteralComparison(e ast.Expr, ctx *Context) *tt.Issue {
	bin, ok := e.(*ast.BinOp)
	if !ok {
		return nil
	}
	lv, lok := ast.NumericValue(bin.Left)
	rv, rok := ast.NumericValue(bin.Right)
	if !lok || !rok {
		return nil
	}

	var value bool
	switch bin.Op {
	case "<":
		value = lv < rv
	case ">":
		value = lv > rv
	case "<=":
		value = lv <= rv
	case ">=":
		value = lv >= rv
	default:
		return nil
	}
	return comparisonResult(ctx, bin.Rng, value,
		"Both operands are numeric literals, so the result is fixed.")
}
