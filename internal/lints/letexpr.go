package lints

import (
	"strings"

	"github.com/elmlint/elin/internal/ast"
	tt "github.com/elmlint/elin/internal/types"
)

const (
	ruleLet = "simplify-let"

	msgJoinLets = "Let blocks can be joined together"
)

// DetectNestedLet merges `let a = .. in let b = .. in body` into a
// single let with both binding lists. The rewrite splices the inner
// bindings onto the outer binding column, so it is only offered when the
// columns already line up or the inner block has a single binding to
// move.
func DetectNestedLet(e ast.Expr, ctx *Context) *tt.Issue {
	outer, ok := e.(*ast.Let)
	if !ok {
		return nil
	}
	inner, ok := ast.UnwrapParens(outer.Body).(*ast.Let)
	if !ok || len(outer.Bindings) == 0 || len(inner.Bindings) == 0 {
		return nil
	}

	var fix []tt.Edit
	outerCol := outer.Bindings[0].Rng.Start.Column
	innerCol := inner.Bindings[0].Rng.Start.Column
	if innerCol == outerCol || len(inner.Bindings) == 1 {
		span := tt.Range{
			Start: outer.Bindings[len(outer.Bindings)-1].Rng.End,
			End:   inner.Bindings[0].Rng.Start,
		}
		fix = []tt.Edit{tt.ReplaceWith(span, "\n\n"+strings.Repeat(" ", outerCol-1))}
	}
	return newIssue(ctx, ruleLet, inner.Rng, msgJoinLets,
		[]string{"Nesting a let directly in a let body adds no scope."}, fix)
}
