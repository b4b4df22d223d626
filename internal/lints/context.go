// Package lints holds the simplification rule catalogue. Every rule is a
// pure function from an expression node and a Context to an optional
// finding; when a side condition cannot be proven statically the rule
// declines to fire. Rules never mutate the tree, they only describe
// textual edits against the original source.
package lints

import (
	"github.com/elmlint/elin/internal/ast"
	"github.com/elmlint/elin/internal/eq"
	"github.com/elmlint/elin/internal/resolve"
	tt "github.com/elmlint/elin/internal/types"
)

// Config is the immutable per-run rule configuration. IgnoredCaseTypes
// holds canonical "Module.Type" names whose case expressions are exempt
// from the case-redundancy rules.
type Config struct {
	IgnoredCaseTypes map[string]bool
}

// Context bundles everything a rule may consult: the resolver, the
// equivalence engine, the original source, the configuration, and the
// per-branch condition-truth environment.
type Context struct {
	Filename string
	Src      *tt.SourceCode
	Resolver *resolve.Resolver
	Eq       *eq.Engine
	Config   *Config
	Truths   *TruthEnv
	Scope    *Scope

	parents []ast.Expr
}

// PushParent records that the visitor is descending into e's children.
func (c *Context) PushParent(e ast.Expr) {
	c.parents = append(c.parents, e)
}

// PopParent undoes the matching PushParent.
func (c *Context) PopParent() {
	if len(c.parents) > 0 {
		c.parents = c.parents[:len(c.parents)-1]
	}
}

// Parent returns the node directly enclosing the one being visited, or
// nil at the top of a declaration body.
func (c *Context) Parent() ast.Expr {
	if len(c.parents) == 0 {
		return nil
	}
	return c.parents[len(c.parents)-1]
}

// Snippet returns the original text of a range.
func (c *Context) Snippet(r tt.Range) string {
	return c.Src.Snippet(r)
}

// Resolves reports whether e is a reference to the given canonical
// standard-library name at this usage site, respecting lexical shadowing.
func (c *Context) Resolves(e ast.Expr, module, name string) bool {
	ref, ok := ast.UnwrapParens(e).(*ast.VarRef)
	if !ok {
		return false
	}
	return c.resolvesRef(ref, module, name)
}

func (c *Context) resolvesRef(ref *ast.VarRef, module, name string) bool {
	if len(ref.Module) == 0 && c.Scope.Has(ref.Name) {
		return false
	}
	return c.Resolver.Resolves(ref, module, name)
}

// Call flattens e into a resolved standard-library call: it returns the
// arguments when e is `module.name` applied through any pipe sugar.
func (c *Context) Call(e ast.Expr, module, name string) ([]ast.Expr, bool) {
	ref, args := ast.CallOf(e)
	if ref == nil || !c.resolvesRef(ref, module, name) {
		return nil, false
	}
	return args, true
}

// BoolValue recognizes the Basics.Bool constructors.
func (c *Context) BoolValue(e ast.Expr) (bool, bool) {
	ref, ok := ast.UnwrapParens(e).(*ast.VarRef)
	if !ok {
		return false, false
	}
	if c.resolvesRef(ref, "Basics", "True") {
		return true, true
	}
	if c.resolvesRef(ref, "Basics", "False") {
		return false, true
	}
	return false, false
}

// IsIdentity recognizes Basics.identity and `\x -> x`.
func (c *Context) IsIdentity(e ast.Expr) bool {
	return ast.IsIdentity(e, func(ref *ast.VarRef) bool {
		return c.resolvesRef(ref, "Basics", "identity")
	})
}

// AlwaysBody recognizes a constant function and returns its body.
func (c *Context) AlwaysBody(e ast.Expr) (ast.Expr, bool) {
	return ast.AlwaysBody(e, func(ref *ast.VarRef) bool {
		return c.resolvesRef(ref, "Basics", "always")
	})
}

// NotArg recognizes `not x` in any sugar and returns x.
func (c *Context) NotArg(e ast.Expr) (ast.Expr, bool) {
	args, ok := c.Call(e, "Basics", "not")
	if !ok || len(args) != 1 {
		return nil, false
	}
	return args[0], true
}

// ---------------------------------------------------------------------------
// Condition-truth environment

type truthFact struct {
	cond  ast.Expr
	value bool
}

// TruthEnv records which conditions are known true or false along the
// current root-to-leaf path of nested if branches. It is a stack: the
// engine pushes a frame when descending into a then/else branch and pops
// it on return, so facts never leak to sibling branches.
type TruthEnv struct {
	ctx   *Context
	facts []truthFact
	marks []int
}

// NewTruthEnv wires the environment to its owning context.
func NewTruthEnv(ctx *Context) *TruthEnv {
	t := &TruthEnv{ctx: ctx}
	ctx.Truths = t
	return t
}

// Assume records that cond evaluates to value within the branch about to
// be visited. It decomposes `&&` conjunctions on true, `||` disjunctions
// on false, and `not`.
func (t *TruthEnv) Assume(cond ast.Expr, value bool) {
	t.marks = append(t.marks, len(t.facts))
	t.record(cond, value)
}

func (t *TruthEnv) record(cond ast.Expr, value bool) {
	cond = ast.UnwrapParens(cond)
	t.facts = append(t.facts, truthFact{cond: cond, value: value})

	if bin, ok := cond.(*ast.BinOp); ok {
		switch {
		case bin.Op == "&&" && value:
			t.record(bin.Left, true)
			t.record(bin.Right, true)
		case bin.Op == "||" && !value:
			t.record(bin.Left, false)
			t.record(bin.Right, false)
		}
	}
	if inner, ok := t.ctx.NotArg(cond); ok {
		t.record(inner, !value)
	}
}

// Retract drops every fact recorded by the matching Assume.
func (t *TruthEnv) Retract() {
	if len(t.marks) == 0 {
		return
	}
	mark := t.marks[len(t.marks)-1]
	t.marks = t.marks[:len(t.marks)-1]
	t.facts = t.facts[:mark]
}

// Known reports whether cond's value is implied by the enclosing
// branches.
func (t *TruthEnv) Known(cond ast.Expr) (bool, bool) {
	cond = ast.UnwrapParens(cond)
	for i := len(t.facts) - 1; i >= 0; i-- {
		if t.ctx.Eq.SameValue(cond, t.facts[i].cond) {
			return t.facts[i].value, true
		}
	}
	if inner, ok := t.ctx.NotArg(cond); ok {
		if v, known := t.Known(inner); known {
			return !v, true
		}
	}
	return false, false
}

// ---------------------------------------------------------------------------
// Lexical scope

// Scope tracks locally bound names so that rules do not mistake a
// shadowing binding for a standard-library reference.
type Scope struct {
	frames [][]string
}

// Push enters a new binding frame.
func (s *Scope) Push(names []string) {
	s.frames = append(s.frames, names)
}

// Pop leaves the innermost frame.
func (s *Scope) Pop() {
	if len(s.frames) > 0 {
		s.frames = s.frames[:len(s.frames)-1]
	}
}

// Has reports whether name is bound in any enclosing frame.
func (s *Scope) Has(name string) bool {
	for _, frame := range s.frames {
		for _, n := range frame {
			if n == name {
				return true
			}
		}
	}
	return false
}
