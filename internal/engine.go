// Package internal wires the rule catalogue to parsed modules: it owns
// the dispatch table, the depth-first visitor with its scope and
// condition-truth bookkeeping, and the per-rule severity configuration.
package internal

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/elmlint/elin/internal/ast"
	"github.com/elmlint/elin/internal/elmparse"
	"github.com/elmlint/elin/internal/eq"
	"github.com/elmlint/elin/internal/lints"
	"github.com/elmlint/elin/internal/resolve"
	tt "github.com/elmlint/elin/internal/types"
)

// Engine manages the linting process.
type Engine struct {
	deps         *resolve.DependencyModel
	ruleConfig   *lints.Config
	severities   map[string]tt.Severity
	ignoredRules map[string]bool
}

// NewEngine creates a lint engine. The ignored case-type names are
// validated against the dependency model up front; a bad entry is a
// configuration error, reported once and before any finding.
func NewEngine(rules map[string]tt.ConfigRule, ignoredCaseTypes []string) (*Engine, error) {
	deps := resolve.NewDependencyModel()
	ignoredTypes, err := deps.ValidateIgnoredTypes(ignoredCaseTypes)
	if err != nil {
		return nil, err
	}

	e := &Engine{
		deps:         deps,
		ruleConfig:   &lints.Config{IgnoredCaseTypes: ignoredTypes},
		severities:   map[string]tt.Severity{},
		ignoredRules: map[string]bool{},
	}
	for name, sev := range defaultSeverities {
		e.severities[name] = sev
	}
	for name, rule := range rules {
		if _, known := e.severities[name]; !known {
			continue
		}
		if rule.Severity == tt.SeverityOff {
			e.IgnoreRule(name)
			continue
		}
		e.severities[name] = rule.Severity
	}
	return e, nil
}

// IgnoreRule disables a rule by name.
func (e *Engine) IgnoreRule(rule string) {
	e.ignoredRules[rule] = true
}

// Run applies all lint rules to the given file and returns its findings.
func (e *Engine) Run(filename string) ([]tt.Issue, error) {
	if !strings.HasSuffix(filename, ".elm") {
		return nil, fmt.Errorf("%s is not an elm source file", filename)
	}
	content, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("error reading file: %w", err)
	}
	return e.RunSource(filename, string(content))
}

// RunSource applies all lint rules to the given source.
func (e *Engine) RunSource(filename, source string) ([]tt.Issue, error) {
	file, err := elmparse.ParseSource(source)
	if err != nil {
		return nil, fmt.Errorf("error parsing %s: %w", filename, err)
	}

	resolver := resolve.NewResolver(file, e.deps)
	ctx := &lints.Context{
		Filename: filename,
		Src:      tt.NewSourceCode(source),
		Resolver: resolver,
		Eq:       eq.New(resolver),
		Config:   e.ruleConfig,
		Scope:    &lints.Scope{},
	}
	lints.NewTruthEnv(ctx)

	v := &visitor{engine: e, ctx: ctx}
	for _, decl := range file.Decls {
		var params []string
		for _, p := range decl.Params {
			params = append(params, ast.PatternVars(p)...)
		}
		ctx.Scope.Push(params)
		v.visit(decl.Body)
		ctx.Scope.Pop()
	}

	sort.Slice(v.issues, func(i, j int) bool {
		return v.issues[i].Range.Start.Before(v.issues[j].Range.Start)
	})
	return v.issues, nil
}

// visitor drives the depth-first walk, pushing scope frames for binding
// constructs and condition-truth facts around if branches.
type visitor struct {
	engine *Engine
	ctx    *lints.Context
	issues []tt.Issue
}

func (v *visitor) visit(e ast.Expr) {
	if e == nil {
		return
	}
	// first matching rule wins the node for this pass
	for _, d := range registry[ast.KindOf(e)] {
		is := d(e, v.ctx)
		if is == nil {
			continue
		}
		if v.record(is) {
			break
		}
	}

	v.ctx.PushParent(e)
	switch n := e.(type) {
	case *ast.If:
		v.visit(n.Cond)
		v.ctx.Truths.Assume(n.Cond, true)
		v.visit(n.Then)
		v.ctx.Truths.Retract()
		v.ctx.Truths.Assume(n.Cond, false)
		v.visit(n.Else)
		v.ctx.Truths.Retract()

	case *ast.Lambda:
		var names []string
		for _, p := range n.Params {
			names = append(names, ast.PatternVars(p)...)
		}
		v.ctx.Scope.Push(names)
		v.visit(n.Body)
		v.ctx.Scope.Pop()

	case *ast.Let:
		var names []string
		for _, b := range n.Bindings {
			if b.Pat != nil {
				names = append(names, ast.PatternVars(b.Pat)...)
			} else {
				names = append(names, b.Name)
			}
		}
		v.ctx.Scope.Push(names)
		for _, b := range n.Bindings {
			var params []string
			for _, p := range b.Params {
				params = append(params, ast.PatternVars(p)...)
			}
			v.ctx.Scope.Push(params)
			v.visit(b.Body)
			v.ctx.Scope.Pop()
		}
		v.visit(n.Body)
		v.ctx.Scope.Pop()

	case *ast.Case:
		v.visit(n.Subject)
		for _, arm := range n.Arms {
			v.ctx.Scope.Push(ast.PatternVars(arm.Pattern))
			v.visit(arm.Body)
			v.ctx.Scope.Pop()
		}

	default:
		for _, child := range ast.Children(e) {
			v.visit(child)
		}
	}
	v.ctx.PopParent()
}

// record filters a finding through the rule configuration and stamps its
// severity. It reports whether the finding was kept.
func (v *visitor) record(is *tt.Issue) bool {
	if v.engine.ignoredRules[is.Rule] {
		return false
	}
	sev, ok := v.engine.severities[is.Rule]
	if !ok || sev == tt.SeverityOff {
		return false
	}
	is.Severity = sev
	v.issues = append(v.issues, *is)
	return true
}
