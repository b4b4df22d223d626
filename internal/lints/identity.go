package lints

import (
	"github.com/elmlint/elin/internal/ast"
	tt "github.com/elmlint/elin/internal/types"
)

const (
	ruleIdentity = "simplify-identity"

	msgIdentityCall       = "`identity` does not change the value"
	msgIdentityComposed   = "Composing with `identity` is the same as the other function"
	msgAlwaysApplied      = "`always` discards its second argument"
	msgComposeIntoAlways  = "Composing into a constant function discards the first function"
	detailComposeConstant = "A constant function ignores its argument, so the composed function never runs."
)

// DetectIdentityApplication reduces `identity x` to `x` in any pipe
// sugar.
func DetectIdentityApplication(e ast.Expr, ctx *Context) *tt.Issue {
	args, ok := ctx.Call(e, "Basics", "identity")
	if !ok || len(args) != 1 {
		return nil
	}
	rng := e.Range()
	return newIssue(ctx, ruleIdentity, rng, msgIdentityCall, nil,
		replaceWith(ctx, rng, args[0]))
}

// DetectIdentityComposition collapses `identity >> f`, `f >> identity`
// and the `<<` spellings to the other side.
func DetectIdentityComposition(e ast.Expr, ctx *Context) *tt.Issue {
	bin, ok := e.(*ast.BinOp)
	if !ok || (bin.Op != ">>" && bin.Op != "<<") {
		return nil
	}
	var keep ast.Expr
	switch {
	case ctx.IsIdentity(bin.Left):
		keep = bin.Right
	case ctx.IsIdentity(bin.Right):
		keep = bin.Left
	default:
		return nil
	}
	return newIssue(ctx, ruleIdentity, bin.Rng, msgIdentityComposed, nil,
		replaceWith(ctx, bin.Rng, keep))
}

// DetectAlwaysApplication reduces `always x y` to `x`.
func DetectAlwaysApplication(e ast.Expr, ctx *Context) *tt.Issue {
	args, ok := ctx.Call(e, "Basics", "always")
	if !ok || len(args) != 2 {
		return nil
	}
	rng := e.Range()
	return newIssue(ctx, ruleIdentity, rng, msgAlwaysApplied, nil,
		replaceWith(ctx, rng, args[0]))
}

// DetectComposeIntoAlways drops the first function of `f >> always g`
// and `always g << f`: the constant function never looks at f's result.
func DetectComposeIntoAlways(e ast.Expr, ctx *Context) *tt.Issue {
	bin, ok := e.(*ast.BinOp)
	if !ok || (bin.Op != ">>" && bin.Op != "<<") {
		return nil
	}
	last := bin.Right
	if bin.Op == "<<" {
		last = bin.Left
	}
	if _, isConst := ctx.AlwaysBody(last); !isConst {
		return nil
	}
	return newIssue(ctx, ruleIdentity, bin.Rng, msgComposeIntoAlways,
		[]string{detailComposeConstant}, replaceWith(ctx, bin.Rng, last))
}
