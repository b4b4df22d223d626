package lints

import (
	"strings"

	"github.com/elmlint/elin/internal/ast"
	tt "github.com/elmlint/elin/internal/types"
)

const (
	ruleCase = "simplify-case"

	msgSameArmBodies  = "All the arms of this case expression evaluate to the same value"
	msgCaseToLet      = "The case expression can be replaced by a let destructuring"
	msgBooleanCase    = "The case expression over a boolean can be written as an if expression"
	detailSameArms    = "The pattern match does not change the result."
	detailBooleanCase = "Matching on True and False is what if/then/else does."
)

// DetectCase reduces case expressions: identical arm bodies collapse to
// one body, a single destructuring arm becomes a let binding, and a
// two-arm match over True/False becomes an if expression. Cases whose
// scrutinee type is listed in the configuration's ignore set are left
// alone for the first two reductions.
func DetectCase(e ast.Expr, ctx *Context) *tt.Issue {
	cs, ok := e.(*ast.Case)
	if !ok || len(cs.Arms) == 0 {
		return nil
	}

	if is := detectBooleanCase(cs, ctx); is != nil {
		return is
	}
	if ctx.Config.IgnoredCaseTypes[caseType(cs, ctx)] {
		return nil
	}
	if is := detectSameArmBodies(cs, ctx); is != nil {
		return is
	}
	return detectSingleArmDestructure(cs, ctx)
}

// caseType determines the scrutinee's type from the arm constructor
// patterns, when any resolves.
func caseType(cs *ast.Case, ctx *Context) string {
	for _, arm := range cs.Arms {
		if ctor, ok := ast.UnwrapPatternParens(arm.Pattern).(*ast.PCtor); ok {
			if t, found := ctx.Resolver.ConstructorType(ctor.Module, ctor.Name); found {
				return t
			}
		}
	}
	return ""
}

// detectSameArmBodies fires when every arm body is the same value and no
// arm pattern binds a variable its body actually uses.
func detectSameArmBodies(cs *ast.Case, ctx *Context) *tt.Issue {
	if len(cs.Arms) < 2 {
		return nil
	}
	first := cs.Arms[0].Body
	for _, arm := range cs.Arms {
		for _, v := range ast.PatternVars(arm.Pattern) {
			if ast.UsesName(arm.Body, v) {
				return nil
			}
		}
		if !ctx.Eq.SameValue(first, arm.Body) {
			return nil
		}
	}
	return newIssue(ctx, ruleCase, cs.Rng, msgSameArmBodies,
		[]string{detailSameArms}, replaceWith(ctx, cs.Rng, first))
}

// detectSingleArmDestructure rewrites `case x of (a, b) -> body` to
// `let (a, b) = x in body`. Wildcards and partial constructor matches do
// not qualify. The rewrite is only attempted when all the spliced pieces
// are single-line, so the let keeps valid layout.
func detectSingleArmDestructure(cs *ast.Case, ctx *Context) *tt.Issue {
	if len(cs.Arms) != 1 {
		return nil
	}
	arm := cs.Arms[0]
	pat := ast.UnwrapPatternParens(arm.Pattern)

	switch p := pat.(type) {
	case *ast.PVar, *ast.PTuple, *ast.PRecord:
	case *ast.PCtor:
		t, ok := ctx.Resolver.ConstructorType(p.Module, p.Name)
		if !ok {
			return nil
		}
		ctors, ok := ctx.Resolver.TypeExists(t)
		if !ok || len(ctors) != 1 {
			return nil
		}
	default:
		return nil
	}

	var fix []tt.Edit
	subj := ctx.Snippet(cs.Subject.Range())
	patText := ctx.Snippet(arm.Pattern.Range())
	body := ctx.Snippet(arm.Body.Range())
	// a constructor pattern needs parens on the left of a let binding
	if ctor, isCtor := pat.(*ast.PCtor); isCtor && len(ctor.Args) > 0 {
		if _, wrapped := arm.Pattern.(*ast.PParen); !wrapped {
			patText = "(" + patText + ")"
		}
	}
	if !strings.ContainsRune(subj, '\n') && !strings.ContainsRune(patText, '\n') &&
		!strings.ContainsRune(body, '\n') {
		fix = replaceWithText(cs.Rng, "let "+patText+" = "+subj+" in "+body)
	}
	return newIssue(ctx, ruleCase, cs.Rng, msgCaseToLet, nil, fix)
}

// detectBooleanCase rewrites a two-arm case over True/False as an if
// expression; the second arm may be a wildcard. The condition is negated
// when the False arm comes first.
func detectBooleanCase(cs *ast.Case, ctx *Context) *tt.Issue {
	if len(cs.Arms) != 2 {
		return nil
	}
	// the first arm must name a constructor; a leading wildcard shadows
	// the second arm, so that shape is left alone
	first, fok := boolPattern(cs.Arms[0].Pattern, ctx)
	second, sok := boolPattern(cs.Arms[1].Pattern, ctx)
	_, secondWild := ast.UnwrapPatternParens(cs.Arms[1].Pattern).(*ast.PWildcard)
	if !fok || !(sok && second != first || secondWild) {
		return nil
	}
	trueFirst := first

	subj := ctx.Snippet(cs.Subject.Range())
	thenBody := ctx.Snippet(cs.Arms[0].Body.Range())
	elseBody := ctx.Snippet(cs.Arms[1].Body.Range())
	cond := subj
	if !trueFirst {
		cond = "not " + keepText(ctx, cs.Subject, true)
	}

	var fix []tt.Edit
	if !strings.ContainsRune(subj, '\n') && !strings.ContainsRune(thenBody, '\n') &&
		!strings.ContainsRune(elseBody, '\n') {
		fix = replaceWithText(cs.Rng, "if "+cond+" then "+thenBody+" else "+elseBody)
	}
	return newIssue(ctx, ruleCase, cs.Rng, msgBooleanCase,
		[]string{detailBooleanCase}, fix)
}

// boolPattern recognizes a True/False constructor pattern, in any
// qualification the resolver accepts.
func boolPattern(p ast.Pattern, ctx *Context) (bool, bool) {
	ctor, ok := ast.UnwrapPatternParens(p).(*ast.PCtor)
	if !ok || len(ctor.Args) != 0 {
		return false, false
	}
	if t, found := ctx.Resolver.ConstructorType(ctor.Module, ctor.Name); !found || t != "Basics.Bool" {
		return false, false
	}
	return ctor.Name == "True", true
}
