package lints

import (
	"fmt"
	"strconv"

	"github.com/elmlint/elin/internal/ast"
	tt "github.com/elmlint/elin/internal/types"
)

const (
	ruleList = "simplify-list"

	msgConcatMerge  = "Adjacent list literals can be merged"
	msgConsLiteral  = "Consing onto a list literal can be written inside the literal"
	msgAppendEmpty  = "Appending an empty value does not change the result"
	msgDoubleRev    = "Unnecessary double List.reverse"
	detailOnEmpty   = "The list is empty, so the call does nothing."
	detailConstFunc = "The function is constant, so the elements are never inspected."
)

// identityMapTargets lists the map-shaped functions where mapping with
// identity is a no-op.
var identityMapTargets = []struct {
	module, name string
}{
	{"List", "map"},
	{"Maybe", "map"},
	{"Result", "map"},
	{"Set", "map"},
	{"Json.Decode", "map"},
	{"Platform.Cmd", "map"},
	{"Platform.Sub", "map"},
}

// DetectIdentityMap reduces `List.map identity x` (and the other map
// functions) to `x`.
func DetectIdentityMap(e ast.Expr, ctx *Context) *tt.Issue {
	rng := e.Range()
	ref, args := ast.CallOf(e)
	if ref == nil || len(args) != 2 || !ctx.IsIdentity(args[0]) {
		return nil
	}
	for _, t := range identityMapTargets {
		if !ctx.resolvesRef(ref, t.module, t.name) {
			continue
		}
		display := t.module + "." + t.name
		switch t.module {
		case "Platform.Cmd":
			display = "Cmd.map"
		case "Platform.Sub":
			display = "Sub.map"
		}
		msg := fmt.Sprintf("Using %s with an identity function is the same as not using %s",
			display, display)
		return newIssue(ctx, ruleList, rng, msg, nil, replaceWith(ctx, rng, args[1]))
	}
	return nil
}

// DetectListCall covers the List module catalogue over statically known
// arguments.
func DetectListCall(e ast.Expr, ctx *Context) *tt.Issue {
	rng := e.Range()
	ref, args := ast.CallOf(e)
	if ref == nil {
		return nil
	}
	isList := func(name string, arity int) bool {
		return len(args) == arity && ctx.resolvesRef(ref, "List", name)
	}
	callee := func() string { return calleeName(ref, "List") }

	switch {
	case isList("map", 2) || isList("filter", 2) || isList("filterMap", 2) ||
		isList("concatMap", 2) || isList("indexedMap", 2):
		if lit, ok := ast.IsListLiteral(args[1]); ok && len(lit.Elements) == 0 {
			return newIssue(ctx, ruleList, rng, resultMsg(callee(), "[]"),
				[]string{detailOnEmpty}, replaceWithText(rng, "[]"))
		}
		return detectListHigherOrder(e, ctx, ref, args)

	case isList("isEmpty", 1):
		if lit, ok := ast.IsListLiteral(args[0]); ok {
			text := "False"
			if len(lit.Elements) == 0 {
				text = "True"
			}
			return newIssue(ctx, ruleList, rng, resultMsg(callee(), text), nil,
				replaceWithText(rng, text))
		}

	case isList("length", 1):
		if lit, ok := ast.IsListLiteral(args[0]); ok {
			text := strconv.Itoa(len(lit.Elements))
			return newIssue(ctx, ruleList, rng, resultMsg(callee(), text), nil,
				replaceWithText(rng, text))
		}

	case isList("concat", 1):
		return detectListConcat(ctx, rng, ref, args[0])

	case isList("reverse", 1):
		if lit, ok := ast.IsListLiteral(args[0]); ok && len(lit.Elements) == 0 {
			return newIssue(ctx, ruleList, rng, resultMsg(callee(), "[]"),
				[]string{detailOnEmpty}, replaceWithText(rng, "[]"))
		}
		if inner, ok := ctx.Call(args[0], "List", "reverse"); ok && len(inner) == 1 {
			return newIssue(ctx, ruleList, rng, msgDoubleRev, nil,
				replaceWith(ctx, rng, inner[0]))
		}

	case isList("repeat", 2):
		if ast.IsIntLiteral(args[0], 0) {
			return newIssue(ctx, ruleList, rng, resultMsg(callee(), "[]"), nil,
				replaceWithText(rng, "[]"))
		}

	case isList("take", 2):
		if ast.IsIntLiteral(args[0], 0) {
			return newIssue(ctx, ruleList, rng, resultMsg(callee(), "[]"), nil,
				replaceWithText(rng, "[]"))
		}

	case isList("drop", 2):
		if ast.IsIntLiteral(args[0], 0) {
			return newIssue(ctx, ruleList, rng,
				"List.drop 0 returns the list unchanged", nil,
				replaceWith(ctx, rng, args[1]))
		}

	case isList("partition", 2):
		body, isConst := ctx.AlwaysBody(args[0])
		if !isConst {
			return nil
		}
		v, isBool := ctx.BoolValue(body)
		if !isBool {
			return nil
		}
		listText := keepText(ctx, args[1], false)
		text := "( [], " + listText + " )"
		if v {
			text = "( " + listText + ", [] )"
		}
		return newIssue(ctx, ruleList, rng, resultMsg(callee(), text),
			[]string{detailConstFunc}, replaceWithText(rng, text))
	}
	return nil
}

// detectListHigherOrder handles the function-argument shapes of the
// higher-order List calls: constant filters, identity-like filterMap,
// and concatMap with identity.
func detectListHigherOrder(e ast.Expr, ctx *Context, ref *ast.VarRef, args []ast.Expr) *tt.Issue {
	rng := e.Range()

	switch {
	case ctx.resolvesRef(ref, "List", "filter"):
		body, isConst := ctx.AlwaysBody(args[0])
		if !isConst {
			return nil
		}
		if v, isBool := ctx.BoolValue(body); isBool {
			if v {
				return newIssue(ctx, ruleList, rng,
					"List.filter with a condition that is always True keeps every element",
					[]string{detailConstFunc}, replaceWith(ctx, rng, args[1]))
			}
			return newIssue(ctx, ruleList, rng, resultMsg(calleeName(ref, "List"), "[]"),
				[]string{detailConstFunc}, replaceWithText(rng, "[]"))
		}

	case ctx.resolvesRef(ref, "List", "filterMap"):
		return detectWrapperLambda(ctx, rng, ref, args[0], "List", "Maybe", "Just")

	case ctx.resolvesRef(ref, "List", "concatMap"):
		if !ctx.IsIdentity(args[0]) {
			return nil
		}
		if !ref.Rng.End.Before(args[0].Range().Start) {
			return nil
		}
		fix := []tt.Edit{
			tt.ReplaceWith(ref.Rng, siblingName(ref, "List", "concat")),
			tt.Remove(tt.Range{Start: ref.Rng.End, End: args[0].Range().End}),
		}
		return newIssue(ctx, ruleList, rng,
			"List.concatMap with an identity function is the same as List.concat",
			nil, fix)
	}
	return nil
}

// detectWrapperLambda recognizes `filterMap (\a -> Just a)` and the
// Result/Maybe andThen analogues: a lambda that only rewraps its
// argument in the success constructor turns the call into the plain map
// of the unwrapped lambda.
func detectWrapperLambda(ctx *Context, rng tt.Range, ref *ast.VarRef, fnArg ast.Expr, homeModule, ctorModule, ctor string) *tt.Issue {
	lam, ok := ast.UnwrapParens(fnArg).(*ast.Lambda)
	if !ok || len(lam.Params) != 1 {
		return nil
	}
	pv, ok := ast.UnwrapPatternParens(lam.Params[0]).(*ast.PVar)
	if !ok {
		return nil
	}
	wrapped, ok := ctx.Call(lam.Body, ctorModule, ctor)
	if !ok || len(wrapped) != 1 {
		return nil
	}
	inner, ok := ast.UnwrapParens(wrapped[0]).(*ast.VarRef)
	if !ok || len(inner.Module) != 0 || inner.Name != pv.Name {
		return nil
	}
	fix := []tt.Edit{
		tt.ReplaceWith(ref.Rng, siblingName(ref, homeModule, "map")),
		tt.ReplaceWith(lam.Body.Range(), pv.Name),
	}
	msg := fmt.Sprintf("%s with a function that only wraps in %s is the same as %s",
		calleeName(ref, homeModule), ctor, siblingName(ref, homeModule, "map"))
	return newIssue(ctx, ruleList, rng, msg, nil, fix)
}

// detectListConcat reduces List.concat over a list literal: empty to
// `[]`, a single element to that element, and otherwise merges the first
// pair of adjacent list literals.
func detectListConcat(ctx *Context, rng tt.Range, ref *ast.VarRef, arg ast.Expr) *tt.Issue {
	lit, ok := ast.IsListLiteral(arg)
	if !ok {
		return nil
	}
	switch len(lit.Elements) {
	case 0:
		return newIssue(ctx, ruleList, rng, resultMsg(calleeName(ref, "List"), "[]"),
			nil, replaceWithText(rng, "[]"))
	case 1:
		return newIssue(ctx, ruleList, rng,
			"List.concat with a single element is that element itself", nil,
			replaceWith(ctx, rng, lit.Elements[0]))
	}
	for i := 0; i+1 < len(lit.Elements); i++ {
		a, aok := ast.IsListLiteral(lit.Elements[i])
		b, bok := ast.IsListLiteral(lit.Elements[i+1])
		if !aok || !bok {
			continue
		}
		fix := mergeLiterals(a, b)
		return newIssue(ctx, ruleList, tt.Range{Start: a.Rng.Start, End: b.Rng.End},
			msgConcatMerge, nil, fix)
	}
	return nil
}

// mergeLiterals joins two adjacent list literals by replacing the text
// between the first one's closing bracket and the second one's opening
// bracket.
func mergeLiterals(a, b *ast.ListLit) []tt.Edit {
	span := tt.Range{
		Start: tt.Position{Line: a.Rng.End.Line, Column: a.Rng.End.Column - 1},
		End:   tt.Position{Line: b.Rng.Start.Line, Column: b.Rng.Start.Column + 1},
	}
	if len(a.Elements) == 0 || len(b.Elements) == 0 {
		return []tt.Edit{tt.ReplaceWith(span, "")}
	}
	return []tt.Edit{tt.ReplaceWith(span, ", ")}
}

// DetectAppend reduces `x ++ []`, `[] ++ x`, `x ++ ""`, `"" ++ x`, and
// merges `[a] ++ [b]` into one literal.
func DetectAppend(e ast.Expr, ctx *Context) *tt.Issue {
	bin, ok := e.(*ast.BinOp)
	if !ok || bin.Op != "++" {
		return nil
	}

	if la, lok := ast.IsListLiteral(bin.Left); lok {
		if ra, rok := ast.IsListLiteral(bin.Right); rok {
			return newIssue(ctx, ruleList, bin.Rng, msgConcatMerge, nil,
				mergeLiterals(la, ra))
		}
		if len(la.Elements) == 0 {
			return newIssue(ctx, ruleList, bin.Rng, msgAppendEmpty, nil,
				replaceWith(ctx, bin.Rng, bin.Right))
		}
	}
	if ra, rok := ast.IsListLiteral(bin.Right); rok && len(ra.Elements) == 0 {
		return newIssue(ctx, ruleList, bin.Rng, msgAppendEmpty, nil,
			replaceWith(ctx, bin.Rng, bin.Left))
	}

	if ls, lok := ast.UnwrapParens(bin.Left).(*ast.StringLit); lok && ls.Value == "" {
		return newIssue(ctx, ruleList, bin.Rng, msgAppendEmpty, nil,
			replaceWith(ctx, bin.Rng, bin.Right))
	}
	if rs, rok := ast.UnwrapParens(bin.Right).(*ast.StringLit); rok && rs.Value == "" {
		return newIssue(ctx, ruleList, bin.Rng, msgAppendEmpty, nil,
			replaceWith(ctx, bin.Rng, bin.Left))
	}
	return nil
}

// DetectCons folds `a :: [b, c]` into `[a, b, c]`.
func DetectCons(e ast.Expr, ctx *Context) *tt.Issue {
	bin, ok := e.(*ast.BinOp)
	if !ok || bin.Op != "::" {
		return nil
	}
	lit, ok := ast.IsListLiteral(bin.Right)
	if !ok {
		return nil
	}
	head := keepText(ctx, bin.Left, false)
	text := "[ " + head + " ]"
	if len(lit.Elements) > 0 {
		inner := ctx.Snippet(tt.Range{
			Start: lit.Elements[0].Range().Start,
			End:   lit.Elements[len(lit.Elements)-1].Range().End,
		})
		text = "[ " + head + ", " + inner + " ]"
	}
	return newIssue(ctx, ruleList, bin.Rng, msgConsLiteral, nil,
		replaceWithText(bin.Rng, text))
}
