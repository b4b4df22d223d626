package lints

import (
	"github.com/elmlint/elin/internal/ast"
	tt "github.com/elmlint/elin/internal/types"
)

// newIssue assembles a finding in the shape every rule emits.
func newIssue(ctx *Context, rule string, rng tt.Range, msg string, details []string, fix []tt.Edit) *tt.Issue {
	return &tt.Issue{
		Rule:     rule,
		Filename: ctx.Filename,
		Message:  msg,
		Details:  details,
		Range:    rng,
		Fix:      fix,
	}
}

// isAtomic reports whether e can stand in argument position without
// parentheses.
func isAtomic(e ast.Expr) bool {
	switch ast.UnwrapParens(e).(type) {
	case *ast.IntLit, *ast.FloatLit, *ast.StringLit, *ast.CharLit,
		*ast.UnitLit, *ast.VarRef, *ast.ListLit, *ast.TupleLit,
		*ast.RecordLit, *ast.RecordUpdate, *ast.AccessFunc, *ast.OpFunc:
		return true
	case *ast.FieldAccess:
		return true
	}
	return false
}

// keepText extracts the original text of keep, parenthesizing it when the
// surrounding context requires an atomic expression and the kept subtree
// is not one. Existing parens in the snippet are reused: if keep was
// already wrapped, the wrapper's text is taken as-is.
func keepText(ctx *Context, keep ast.Expr, needAtomic bool) string {
	text := ctx.Snippet(keep.Range())
	if needAtomic && !isAtomic(keep) {
		if _, wrapped := keep.(*ast.Paren); !wrapped {
			return "(" + text + ")"
		}
	}
	return text
}

// operandPosition reports whether the node being visited sits directly
// under an operator, an application, a negation, or a field access.
// Splicing non-atomic replacement text there would rebind, so it must be
// parenthesized.
func operandPosition(ctx *Context) bool {
	switch ctx.Parent().(type) {
	case *ast.BinOp, *ast.Apply, *ast.Negate, *ast.FieldAccess:
		return true
	}
	return false
}

// replaceWith rewrites the whole matched range by the kept subtree's
// original text.
func replaceWith(ctx *Context, whole tt.Range, keep ast.Expr) []tt.Edit {
	return []tt.Edit{tt.ReplaceWith(whole, keepText(ctx, keep, false))}
}

// replaceWithText rewrites the whole matched range by literal text.
func replaceWithText(whole tt.Range, text string) []tt.Edit {
	return []tt.Edit{tt.ReplaceWith(whole, text)}
}

// dropRightOperand deletes an operand together with the operator joining
// it, from the end of the left operand through the end of the right one,
// so no dangling operator remains.
func dropRightOperand(bin *ast.BinOp) []tt.Edit {
	return []tt.Edit{tt.Remove(tt.Range{Start: bin.Left.Range().End, End: bin.Right.Range().End})}
}

// dropLeftOperand deletes the left operand and the operator.
func dropLeftOperand(bin *ast.BinOp) []tt.Edit {
	return []tt.Edit{tt.Remove(tt.Range{Start: bin.Left.Range().Start, End: bin.Right.Range().Start})}
}
