package lints

import (
	"github.com/elmlint/elin/internal/ast"
	tt "github.com/elmlint/elin/internal/types"
)

const (
	ruleMaybe  = "simplify-maybe"
	ruleResult = "simplify-result"

	detailKnownCtor = "The argument's constructor is statically known, so the call can be resolved."
)

// DetectMaybe covers the Maybe module catalogue:
//
//	Maybe.map f Nothing       -> Nothing
//	Maybe.map f (Just x)      -> Just (f x)
//	Maybe.andThen f Nothing   -> Nothing
//	Maybe.andThen (\b -> Just b) x -> Maybe.map (\b -> b) x
//	Maybe.withDefault d Nothing  -> d
//	Maybe.withDefault d (Just x) -> x
func DetectMaybe(e ast.Expr, ctx *Context) *tt.Issue {
	rng := e.Range()
	ref, args := ast.CallOf(e)
	if ref == nil || len(args) != 2 {
		return nil
	}

	isNothing := func(e ast.Expr) bool { return ctx.Resolves(e, "Maybe", "Nothing") }
	justArg := func(e ast.Expr) (ast.Expr, bool) {
		inner, ok := ctx.Call(e, "Maybe", "Just")
		if !ok || len(inner) != 1 {
			return nil, false
		}
		return inner[0], true
	}

	switch {
	case ctx.resolvesRef(ref, "Maybe", "map"):
		if isNothing(args[1]) {
			return newIssue(ctx, ruleMaybe, rng, resultMsg(calleeName(ref, "Maybe"), "Nothing"),
				[]string{detailKnownCtor}, replaceWith(ctx, rng, args[1]))
		}
		if x, ok := justArg(args[1]); ok {
			text := "Just (" + keepText(ctx, args[0], false) + " " + keepText(ctx, x, true) + ")"
			return newIssue(ctx, ruleMaybe, rng,
				"Maybe.map on a known Just can apply the function directly",
				[]string{detailKnownCtor}, replaceWithText(rng, text))
		}

	case ctx.resolvesRef(ref, "Maybe", "andThen"):
		if isNothing(args[1]) {
			return newIssue(ctx, ruleMaybe, rng, resultMsg(calleeName(ref, "Maybe"), "Nothing"),
				[]string{detailKnownCtor}, replaceWith(ctx, rng, args[1]))
		}
		return detectWrapperLambda(ctx, rng, ref, args[0], "Maybe", "Maybe", "Just")

	case ctx.resolvesRef(ref, "Maybe", "withDefault"):
		if isNothing(args[1]) {
			return newIssue(ctx, ruleMaybe, rng,
				"Maybe.withDefault on Nothing is the default itself",
				[]string{detailKnownCtor}, replaceWith(ctx, rng, args[0]))
		}
		if x, ok := justArg(args[1]); ok {
			return newIssue(ctx, ruleMaybe, rng,
				"Maybe.withDefault on a known Just is the wrapped value",
				[]string{detailKnownCtor}, replaceWith(ctx, rng, x))
		}
	}
	return nil
}

// DetectResult mirrors DetectMaybe for the Result module, with Ok as the
// success constructor and Err short-circuiting.
func DetectResult(e ast.Expr, ctx *Context) *tt.Issue {
	rng := e.Range()
	ref, args := ast.CallOf(e)
	if ref == nil || len(args) != 2 {
		return nil
	}

	errExpr := func(e ast.Expr) (ast.Expr, bool) {
		inner, ok := ctx.Call(e, "Result", "Err")
		if !ok || len(inner) != 1 {
			return nil, false
		}
		return e, true
	}
	okArg := func(e ast.Expr) (ast.Expr, bool) {
		inner, ok := ctx.Call(e, "Result", "Ok")
		if !ok || len(inner) != 1 {
			return nil, false
		}
		return inner[0], true
	}

	switch {
	case ctx.resolvesRef(ref, "Result", "map"):
		if whole, ok := errExpr(args[1]); ok {
			return newIssue(ctx, ruleResult, rng,
				"Result.map on a known Err leaves the error unchanged",
				[]string{detailKnownCtor}, replaceWith(ctx, rng, whole))
		}
		if x, ok := okArg(args[1]); ok {
			text := "Ok (" + keepText(ctx, args[0], false) + " " + keepText(ctx, x, true) + ")"
			return newIssue(ctx, ruleResult, rng,
				"Result.map on a known Ok can apply the function directly",
				[]string{detailKnownCtor}, replaceWithText(rng, text))
		}

	case ctx.resolvesRef(ref, "Result", "andThen"):
		if whole, ok := errExpr(args[1]); ok {
			return newIssue(ctx, ruleResult, rng,
				"Result.andThen on a known Err leaves the error unchanged",
				[]string{detailKnownCtor}, replaceWith(ctx, rng, whole))
		}
		return detectWrapperLambda(ctx, rng, ref, args[0], "Result", "Result", "Ok")

	case ctx.resolvesRef(ref, "Result", "withDefault"):
		if _, ok := errExpr(args[1]); ok {
			return newIssue(ctx, ruleResult, rng,
				"Result.withDefault on a known Err is the default itself",
				[]string{detailKnownCtor}, replaceWith(ctx, rng, args[0]))
		}
		if x, ok := okArg(args[1]); ok {
			return newIssue(ctx, ruleResult, rng,
				"Result.withDefault on a known Ok is the wrapped value",
				[]string{detailKnownCtor}, replaceWith(ctx, rng, x))
		}
	}
	return nil
}
