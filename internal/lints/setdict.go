package lints

import (
	"fmt"
	"strconv"

	"github.com/elmlint/elin/internal/ast"
	tt "github.com/elmlint/elin/internal/types"
)

const (
	ruleSet  = "simplify-set"
	ruleDict = "simplify-dict"

	msgSetSizeFmt  = "The size of the set is %d"
	detailEmptySet = "The set is empty, so the result is fixed."
)

// modulePrefix spells the module the way the usage site qualifies it,
// falling back to the canonical name for unqualified references.
func modulePrefix(ref *ast.VarRef, canonical string) string {
	if len(ref.Module) == 0 {
		return canonical
	}
	prefix := ref.Module[0]
	for _, seg := range ref.Module[1:] {
		prefix += "." + seg
	}
	return prefix
}

// DetectSet covers the Set module catalogue:
//
//	Set.fromList []        -> Set.empty
//	Set.fromList [x]       -> Set.singleton x
//	Set.insert x Set.empty -> Set.singleton x
//	Set.isEmpty Set.empty  -> True
//	Set.member x Set.empty -> False
//	Set.map f Set.empty    -> Set.empty
//	Set.toList Set.empty   -> []
//	Set.size (Set.fromList [literals]) -> the distinct element count
func DetectSet(e ast.Expr, ctx *Context) *tt.Issue {
	rng := e.Range()
	ref, args := ast.CallOf(e)
	if ref == nil {
		return nil
	}
	isSet := func(name string, arity int) bool {
		return len(args) == arity && ctx.resolvesRef(ref, "Set", name)
	}
	isEmptySet := func(e ast.Expr) bool { return ctx.Resolves(e, "Set", "empty") }
	prefix := func() string { return modulePrefix(ref, "Set") }

	switch {
	case isSet("fromList", 1):
		lit, ok := ast.IsListLiteral(args[0])
		if !ok {
			return nil
		}
		switch len(lit.Elements) {
		case 0:
			text := prefix() + ".empty"
			return newIssue(ctx, ruleSet, rng, resultMsg(calleeName(ref, "Set"), text),
				nil, replaceWithText(rng, text))
		case 1:
			text := prefix() + ".singleton " + keepText(ctx, lit.Elements[0], true)
			return newIssue(ctx, ruleSet, rng,
				"Set.fromList with a single element is Set.singleton", nil,
				replaceWithText(rng, text))
		}

	case isSet("insert", 2):
		if !isEmptySet(args[1]) {
			return nil
		}
		text := prefix() + ".singleton " + keepText(ctx, args[0], true)
		return newIssue(ctx, ruleSet, rng,
			"Set.insert into Set.empty is Set.singleton", nil,
			replaceWithText(rng, text))

	case isSet("isEmpty", 1):
		if isEmptySet(args[0]) {
			return newIssue(ctx, ruleSet, rng, resultMsg(calleeName(ref, "Set"), "True"),
				[]string{detailEmptySet}, replaceWithText(rng, "True"))
		}

	case isSet("member", 2):
		if isEmptySet(args[1]) {
			return newIssue(ctx, ruleSet, rng, resultMsg(calleeName(ref, "Set"), "False"),
				[]string{detailEmptySet}, replaceWithText(rng, "False"))
		}

	case isSet("map", 2) || isSet("filter", 2):
		if isEmptySet(args[1]) {
			return newIssue(ctx, ruleSet, rng,
				resultMsg(calleeName(ref, "Set"), prefix()+".empty"),
				[]string{detailEmptySet}, replaceWith(ctx, rng, args[1]))
		}

	case isSet("toList", 1):
		if isEmptySet(args[0]) {
			return newIssue(ctx, ruleSet, rng, resultMsg(calleeName(ref, "Set"), "[]"),
				[]string{detailEmptySet}, replaceWithText(rng, "[]"))
		}

	case isSet("size", 1):
		return detectSetSize(ctx, rng, args[0])
	}
	return nil
}

// detectSetSize counts the distinct elements of `Set.size (Set.fromList
// [...])` when every pairwise comparison is statically decided. A pair
// that is neither known-equal nor known-distinct leaves the rule silent.
func detectSetSize(ctx *Context, rng tt.Range, arg ast.Expr) *tt.Issue {
	inner, ok := ctx.Call(arg, "Set", "fromList")
	if !ok || len(inner) != 1 {
		return nil
	}
	lit, ok := ast.IsListLiteral(inner[0])
	if !ok {
		return nil
	}

	var distinct []ast.Expr
	for _, el := range lit.Elements {
		dup := false
		for _, seen := range distinct {
			if ctx.Eq.SameValue(el, seen) {
				dup = true
				break
			}
			if !ctx.Eq.KnownDistinct(el, seen) {
				return nil
			}
		}
		if !dup {
			distinct = append(distinct, el)
		}
	}
	n := len(distinct)
	return newIssue(ctx, ruleSet, rng, fmt.Sprintf(msgSetSizeFmt, n), nil,
		replaceWithText(rng, strconv.Itoa(n)))
}

// DetectDict covers the Dict module catalogue over the known-empty
// dictionary.
func DetectDict(e ast.Expr, ctx *Context) *tt.Issue {
	rng := e.Range()
	ref, args := ast.CallOf(e)
	if ref == nil {
		return nil
	}
	isDict := func(name string, arity int) bool {
		return len(args) == arity && ctx.resolvesRef(ref, "Dict", name)
	}
	isEmptyDict := func(e ast.Expr) bool { return ctx.Resolves(e, "Dict", "empty") }

	switch {
	case isDict("fromList", 1):
		lit, ok := ast.IsListLiteral(args[0])
		if !ok || len(lit.Elements) != 0 {
			return nil
		}
		text := modulePrefix(ref, "Dict") + ".empty"
		return newIssue(ctx, ruleDict, rng, resultMsg(calleeName(ref, "Dict"), text),
			nil, replaceWithText(rng, text))

	case isDict("isEmpty", 1):
		if isEmptyDict(args[0]) {
			return newIssue(ctx, ruleDict, rng, resultMsg(calleeName(ref, "Dict"), "True"),
				[]string{detailEmptySet}, replaceWithText(rng, "True"))
		}

	case isDict("size", 1):
		if isEmptyDict(args[0]) {
			return newIssue(ctx, ruleDict, rng, resultMsg(calleeName(ref, "Dict"), "0"),
				[]string{detailEmptySet}, replaceWithText(rng, "0"))
		}

	case isDict("toList", 1) || isDict("keys", 1) || isDict("values", 1):
		if isEmptyDict(args[0]) {
			return newIssue(ctx, ruleDict, rng, resultMsg(calleeName(ref, "Dict"), "[]"),
				[]string{detailEmptySet}, replaceWithText(rng, "[]"))
		}

	case isDict("get", 2):
		if isEmptyDict(args[1]) {
			return newIssue(ctx, ruleDict, rng, resultMsg(calleeName(ref, "Dict"), "Nothing"),
				[]string{detailEmptySet}, replaceWithText(rng, "Nothing"))
		}

	case isDict("member", 2):
		if isEmptyDict(args[1]) {
			return newIssue(ctx, ruleDict, rng, resultMsg(calleeName(ref, "Dict"), "False"),
				[]string{detailEmptySet}, replaceWithText(rng, "False"))
		}
	}
	return nil
}
