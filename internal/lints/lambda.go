package lints

import (
	"github.com/elmlint/elin/internal/ast"
	tt "github.com/elmlint/elin/internal/types"
)

const (
	ruleLambda = "simplify-lambda"

	msgUnitLambda     = "Unnecessary unit argument"
	msgWildcardLambda = "The lambda discards this argument"
	msgPrefixOperator = "The operator can be used in its infix form"

	detailWildcard = "The parameter is a wildcard, so the argument is never used and both can be removed."
)

// DetectAppliedLambda removes redundant parameter/argument pairs from a
// directly applied lambda: `(\() -> body) ()` drops the unit pair and
// `(\_ y -> body) arg` drops the discarded wildcard pair, keeping the
// smaller lambda.
func DetectAppliedLambda(e ast.Expr, ctx *Context) *tt.Issue {
	rng := e.Range()
	fn, args := ast.FlattenApp(e)
	if fn == nil || len(args) == 0 {
		return nil
	}
	lam, ok := ast.UnwrapParens(fn).(*ast.Lambda)
	if !ok || len(lam.Params) == 0 {
		return nil
	}

	var msg string
	var details []string
	switch ast.UnwrapPatternParens(lam.Params[0]).(type) {
	case *ast.PUnit:
		if _, isUnit := ast.UnwrapParens(args[0]).(*ast.UnitLit); !isUnit {
			return nil
		}
		msg = msgUnitLambda
	case *ast.PWildcard:
		msg, details = msgWildcardLambda, []string{detailWildcard}
	default:
		return nil
	}

	if len(lam.Params) == 1 && len(args) == 1 {
		return newIssue(ctx, ruleLambda, rng, msg, details,
			replaceWithText(rng, keepText(ctx, lam.Body, operandPosition(ctx))))
	}

	// partial drop: only attempted on the plain `(\_ y -> body) a ...`
	// spelling, where the parenthesized lambda and its first argument
	// are adjacent in the source
	app, ok := e.(*ast.Apply)
	if !ok || len(lam.Params) < 2 || len(app.Args) == 0 {
		return nil
	}
	fix := []tt.Edit{
		tt.Remove(tt.Range{
			Start: lam.Params[0].Range().Start,
			End:   lam.Params[1].Range().Start,
		}),
		tt.Remove(tt.Range{
			Start: app.Fn.Range().End,
			End:   app.Args[0].Range().End,
		}),
	}
	return newIssue(ctx, ruleLambda, rng, msg, details, fix)
}

// DetectPrefixOperator rewrites a fully applied operator section,
// `(++) a b` in any sugar, to the infix `a ++ b`.
func DetectPrefixOperator(e ast.Expr, ctx *Context) *tt.Issue {
	rng := e.Range()
	fn, args := ast.FlattenApp(e)
	if fn == nil || len(args) != 2 {
		return nil
	}
	op, ok := ast.UnwrapParens(fn).(*ast.OpFunc)
	if !ok {
		return nil
	}
	text := keepText(ctx, args[0], false) + " " + op.Op + " " + keepText(ctx, args[1], false)
	if operandPosition(ctx) {
		text = "(" + text + ")"
	}
	return newIssue(ctx, ruleLambda, rng, msgPrefixOperator, nil,
		replaceWithText(rng, text))
}
