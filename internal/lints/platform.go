package lints

import (
	"github.com/elmlint/elin/internal/ast"
	tt "github.com/elmlint/elin/internal/types"
)

const (
	rulePlatform = "simplify-platform"

	detailNoEffect = "Batching nothing produces no effect."
)

// DetectCmd reduces the Platform.Cmd idioms: `Cmd.batch []` ->
// `Cmd.none`, `Cmd.batch [x]` -> `x`, `Cmd.map f Cmd.none` ->
// `Cmd.none`.
func DetectCmd(e ast.Expr, ctx *Context) *tt.Issue {
	return detectEffectModule(e, ctx, "Platform.Cmd", "Cmd")
}

// DetectSub mirrors DetectCmd for Platform.Sub.
func DetectSub(e ast.Expr, ctx *Context) *tt.Issue {
	return detectEffectModule(e, ctx, "Platform.Sub", "Sub")
}

func detectEffectModule(e ast.Expr, ctx *Context, canonical, display string) *tt.Issue {
	rng := e.Range()
	ref, args := ast.CallOf(e)
	if ref == nil {
		return nil
	}

	switch {
	case len(args) == 1 && ctx.resolvesRef(ref, canonical, "batch"):
		lit, ok := ast.IsListLiteral(args[0])
		if !ok {
			return nil
		}
		switch len(lit.Elements) {
		case 0:
			text := modulePrefix(ref, display) + ".none"
			return newIssue(ctx, rulePlatform, rng,
				resultMsg(calleeName(ref, display), text),
				[]string{detailNoEffect}, replaceWithText(rng, text))
		case 1:
			return newIssue(ctx, rulePlatform, rng,
				display+".batch with a single element is that element itself",
				nil, replaceWith(ctx, rng, lit.Elements[0]))
		}

	case len(args) == 2 && ctx.resolvesRef(ref, canonical, "map"):
		if ctx.Resolves(args[1], canonical, "none") {
			return newIssue(ctx, rulePlatform, rng,
				resultMsg(calleeName(ref, display), modulePrefix(ref, display)+".none"),
				nil, replaceWith(ctx, rng, args[1]))
		}
	}
	return nil
}

// DetectParserOneOf reduces `Parser.oneOf [x]` to `x`.
func DetectParserOneOf(e ast.Expr, ctx *Context) *tt.Issue {
	rng := e.Range()
	ref, args := ast.CallOf(e)
	if ref == nil || len(args) != 1 || !ctx.resolvesRef(ref, "Parser", "oneOf") {
		return nil
	}
	lit, ok := ast.IsListLiteral(args[0])
	if !ok || len(lit.Elements) != 1 {
		return nil
	}
	return newIssue(ctx, rulePlatform, rng,
		"Parser.oneOf with a single alternative is that parser itself", nil,
		replaceWith(ctx, rng, lit.Elements[0]))
}
