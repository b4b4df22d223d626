package lints

import (
	"fmt"
	"strconv"
	"unicode/utf8"

	"github.com/elmlint/elin/internal/ast"
	tt "github.com/elmlint/elin/internal/types"
)

const (
	ruleString = "simplify-string"

	msgJoinEmptySep = "String.join with an empty separator is the same as String.concat"
)

// resultMsg phrases the catalogue's standard "this call has a fixed
// result" finding.
func resultMsg(callee, result string) string {
	return fmt.Sprintf("The call to %s will result in %s", callee, result)
}

// calleeName spells a reference the way the source qualifies it, used in
// messages and synthesized replacements.
func calleeName(ref *ast.VarRef, canonicalModule string) string {
	prefix := canonicalModule
	if len(ref.Module) > 0 {
		prefix = ref.Module[0]
		for _, seg := range ref.Module[1:] {
			prefix += "." + seg
		}
	}
	return prefix + "." + ref.Name
}

// siblingName spells another function of the same module with the same
// qualification as ref, e.g. `List.filterMap` -> `List.map`.
func siblingName(ref *ast.VarRef, canonicalModule, name string) string {
	if len(ref.Module) == 0 {
		// an unqualified callee: qualify the sibling canonically, since
		// the sibling itself may not be exposed
		return canonicalModule + "." + name
	}
	prefix := ref.Module[0]
	for _, seg := range ref.Module[1:] {
		prefix += "." + seg
	}
	return prefix + "." + name
}

// DetectString covers the String module catalogue:
//
//	String.isEmpty "lit"  -> True / False
//	String.length "lit"   -> its length
//	String.reverse ""     -> ""
//	String.concat []      -> ""
//	String.join "" xs     -> String.concat xs
func DetectString(e ast.Expr, ctx *Context) *tt.Issue {
	rng := e.Range()
	ref, args := ast.CallOf(e)
	if ref == nil {
		return nil
	}

	switch {
	case len(args) == 1 && ctx.resolvesRef(ref, "String", "isEmpty"):
		lit, ok := ast.UnwrapParens(args[0]).(*ast.StringLit)
		if !ok {
			return nil
		}
		text := "False"
		if lit.Value == "" {
			text = "True"
		}
		return newIssue(ctx, ruleString, rng, resultMsg(calleeName(ref, "String"), text),
			nil, replaceWithText(rng, text))

	case len(args) == 1 && ctx.resolvesRef(ref, "String", "length"):
		lit, ok := ast.UnwrapParens(args[0]).(*ast.StringLit)
		if !ok {
			return nil
		}
		text := strconv.Itoa(utf8.RuneCountInString(lit.Value))
		return newIssue(ctx, ruleString, rng, resultMsg(calleeName(ref, "String"), text),
			nil, replaceWithText(rng, text))

	case len(args) == 1 && ctx.resolvesRef(ref, "String", "reverse"):
		lit, ok := ast.UnwrapParens(args[0]).(*ast.StringLit)
		if !ok || lit.Value != "" {
			return nil
		}
		return newIssue(ctx, ruleString, rng, resultMsg(calleeName(ref, "String"), `""`),
			nil, replaceWith(ctx, rng, args[0]))

	case len(args) == 1 && ctx.resolvesRef(ref, "String", "concat"):
		lit, ok := ast.IsListLiteral(args[0])
		if !ok || len(lit.Elements) != 0 {
			return nil
		}
		return newIssue(ctx, ruleString, rng, resultMsg(calleeName(ref, "String"), `""`),
			nil, replaceWithText(rng, `""`))

	case len(args) == 2 && ctx.resolvesRef(ref, "String", "join"):
		sep, ok := ast.UnwrapParens(args[0]).(*ast.StringLit)
		if !ok || sep.Value != "" {
			return nil
		}
		fix := []tt.Edit{
			tt.ReplaceWith(ref.Rng, siblingName(ref, "String", "concat")),
			tt.Remove(tt.Range{Start: ref.Rng.End, End: args[0].Range().End}),
		}
		if !ref.Rng.End.Before(args[0].Range().Start) {
			fix = nil // separator written before the callee via pipe sugar
		}
		return newIssue(ctx, ruleString, rng, msgJoinEmptySep, nil, fix)
	}
	return nil
}
