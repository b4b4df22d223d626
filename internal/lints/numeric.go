package lints

import (
	"github.com/elmlint/elin/internal/ast"
	tt "github.com/elmlint/elin/internal/types"
)

const (
	ruleNumeric = "simplify-arithmetic"

	msgAdditiveIdentity       = "Adding zero does not change the value"
	msgSubtractiveIdentity    = "Subtracting zero does not change the value"
	msgSubtractionFromZero    = "Subtracting from zero is the same as negating"
	msgMultiplicativeIdentity = "Multiplying by one does not change the value"
	msgMultiplicationByZero   = "Multiplying by zero always gives zero"
	msgDivisionByOne          = "Dividing by one does not change the value"
	msgDoubleNegation         = "Unnecessary double number negation"
)

// DetectArithmetic simplifies the arithmetic identities: `n + 0`,
// `0 + n`, `n - 0`, `0 - n`, `n * 1`, `1 * n`, `n * 0`, `0 * n`, `n / 1`.
func DetectArithmetic(e ast.Expr, ctx *Context) *tt.Issue {
	bin, ok := e.(*ast.BinOp)
	if !ok {
		return nil
	}

	keep := func(msg string, side ast.Expr) *tt.Issue {
		return newIssue(ctx, ruleNumeric, bin.Rng, msg, nil, replaceWith(ctx, bin.Rng, side))
	}

	switch bin.Op {
	case "+":
		if ast.IsNumericLiteral(bin.Left, 0) {
			return keep(msgAdditiveIdentity, bin.Right)
		}
		if ast.IsNumericLiteral(bin.Right, 0) {
			return keep(msgAdditiveIdentity, bin.Left)
		}
	case "-":
		if ast.IsNumericLiteral(bin.Right, 0) {
			return keep(msgSubtractiveIdentity, bin.Left)
		}
		if ast.IsNumericLiteral(bin.Left, 0) {
			text := "-" + keepText(ctx, bin.Right, true)
			return newIssue(ctx, ruleNumeric, bin.Rng, msgSubtractionFromZero, nil,
				replaceWithText(bin.Rng, text))
		}
	case "*":
		if ast.IsNumericLiteral(bin.Left, 1) {
			return keep(msgMultiplicativeIdentity, bin.Right)
		}
		if ast.IsNumericLiteral(bin.Right, 1) {
			return keep(msgMultiplicativeIdentity, bin.Left)
		}
		// keeping the zero operand's own text preserves its 0 / 0.0
		// spelling, so the replacement stays well-typed
		if ast.IsNumericLiteral(bin.Left, 0) {
			return keep(msgMultiplicationByZero, bin.Left)
		}
		if ast.IsNumericLiteral(bin.Right, 0) {
			return keep(msgMultiplicationByZero, bin.Right)
		}
	case "/":
		if ast.IsNumericLiteral(bin.Right, 1) {
			return keep(msgDivisionByOne, bin.Left)
		}
	}
	return nil
}

// DetectDoubleNegate cancels `-(-n)` and `negate (negate n)` in any
// sugar to the inner value.
func DetectDoubleNegate(e ast.Expr, ctx *Context) *tt.Issue {
	rng := e.Range()
	arg, ok := negateArg(e, ctx)
	if !ok {
		return nil
	}
	inner, ok := negateArg(arg, ctx)
	if !ok {
		return nil
	}
	return newIssue(ctx, ruleNumeric, rng, msgDoubleNegation, nil,
		replaceWith(ctx, rng, inner))
}

func negateArg(e ast.Expr, ctx *Context) (ast.Expr, bool) {
	if neg, ok := ast.UnwrapParens(e).(*ast.Negate); ok {
		return neg.Operand, true
	}
	args, ok := ctx.Call(e, "Basics", "negate")
	if !ok || len(args) != 1 {
		return nil, false
	}
	return args[0], true
}

// DetectNegateComposition collapses `negate >> negate` and
// `negate << negate` to `identity`.
func DetectNegateComposition(e ast.Expr, ctx *Context) *tt.Issue {
	bin, ok := e.(*ast.BinOp)
	if !ok || (bin.Op != ">>" && bin.Op != "<<") {
		return nil
	}
	if ctx.Resolves(bin.Left, "Basics", "negate") && ctx.Resolves(bin.Right, "Basics", "negate") {
		return newIssue(ctx, ruleNumeric, bin.Rng, msgDoubleNegation, nil,
			replaceWithText(bin.Rng, "identity"))
	}
	return nil
}
