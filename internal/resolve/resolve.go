// Package resolve answers "which standard-library entity does this
// reference denote", accounting for import aliasing, exposing lists, the
// implicit default imports, and module-local shadowing. Rules never
// compare module path strings directly; they go through a Resolver.
package resolve

import (
	"fmt"
	"sort"
	"strings"

	"github.com/elmlint/elin/internal/ast"
)

// DependencyModel is the project-level lookup of known modules and types.
// It is built once per run, validated, and then shared read-only.
type DependencyModel struct {
	// canonical type name ("Module.Type") -> constructor names
	types map[string][]string
	// constructor name -> canonical type name, per canonical module
	ctorType map[string]string
	// canonical module -> unqualified value/constructor names it can expose
	moduleValues map[string]map[string]bool
}

// NewDependencyModel builds the model preloaded with the elm/core types
// and values the rule catalogue cares about.
func NewDependencyModel() *DependencyModel {
	m := &DependencyModel{
		types:        map[string][]string{},
		ctorType:     map[string]string{},
		moduleValues: map[string]map[string]bool{},
	}

	m.RegisterType("Basics.Bool", []string{"True", "False"})
	m.RegisterType("Basics.Order", []string{"LT", "EQ", "GT"})
	m.RegisterType("Maybe.Maybe", []string{"Just", "Nothing"})
	m.RegisterType("Result.Result", []string{"Ok", "Err"})
	m.RegisterType("Basics.Int", nil)
	m.RegisterType("Basics.Float", nil)
	m.RegisterType("Basics.Never", nil)
	m.RegisterType("String.String", nil)
	m.RegisterType("Char.Char", nil)
	m.RegisterType("List.List", nil)
	m.RegisterType("Set.Set", nil)
	m.RegisterType("Dict.Dict", nil)

	basics := []string{
		"identity", "always", "not", "negate", "compare", "xor",
		"min", "max", "abs", "clamp", "sqrt", "modBy", "remainderBy",
		"toFloat", "round", "floor", "ceiling", "truncate", "never",
		"True", "False", "LT", "EQ", "GT",
	}
	m.registerModuleValues("Basics", basics)
	m.registerModuleValues("Maybe", []string{"Just", "Nothing"})
	m.registerModuleValues("Result", []string{"Ok", "Err"})
	m.registerModuleValues("List", []string{"::"})
	return m
}

// RegisterType adds a custom type with its constructors to the model.
func (m *DependencyModel) RegisterType(qualified string, ctors []string) {
	m.types[qualified] = ctors
	module := ""
	if i := strings.LastIndex(qualified, "."); i >= 0 {
		module = qualified[:i]
	}
	for _, c := range ctors {
		m.ctorType[module+"."+c] = qualified
	}
}

func (m *DependencyModel) registerModuleValues(module string, names []string) {
	set := m.moduleValues[module]
	if set == nil {
		set = map[string]bool{}
		m.moduleValues[module] = set
	}
	for _, n := range names {
		set[n] = true
	}
}

// TypeExists looks a canonical "Module.Type" name up, returning its
// constructor names.
func (m *DependencyModel) TypeExists(qualified string) ([]string, bool) {
	ctors, ok := m.types[qualified]
	return ctors, ok
}

// ValidateIgnoredTypes checks every configured type name against the
// model. Malformed or unknown entries produce a single aggregated error
// listing the bad names in order of appearance, deduplicated.
func (m *DependencyModel) ValidateIgnoredTypes(names []string) (map[string]bool, error) {
	valid := make(map[string]bool, len(names))
	var bad []string
	seen := map[string]bool{}
	for _, name := range names {
		ok := strings.Count(name, ".") >= 1 && !strings.HasPrefix(name, ".") && !strings.HasSuffix(name, ".")
		if ok {
			_, ok = m.TypeExists(name)
		}
		if !ok {
			if !seen[name] {
				seen[name] = true
				bad = append(bad, name)
			}
			continue
		}
		valid[name] = true
	}
	if len(bad) > 0 {
		quoted := make([]string, len(bad))
		for i, b := range bad {
			quoted[i] = "`" + b + "`"
		}
		return nil, fmt.Errorf("Could not find type names: %s", strings.Join(quoted, ", "))
	}
	return valid, nil
}

// defaultImports mirrors the imports every Elm module gets implicitly.
var defaultImports = []ast.Import{
	{Module: []string{"Basics"}, ExposeAll: true},
	{Module: []string{"List"}, Exposing: []string{"::"}},
	{Module: []string{"Maybe"}, Exposing: []string{"Just", "Nothing"}},
	{Module: []string{"Result"}, Exposing: []string{"Ok", "Err"}},
	{Module: []string{"String"}},
	{Module: []string{"Char"}},
	{Module: []string{"Tuple"}},
	{Module: []string{"Debug"}},
	{Module: []string{"Platform"}},
	{Module: []string{"Platform", "Cmd"}, Alias: "Cmd"},
	{Module: []string{"Platform", "Sub"}, Alias: "Sub"},
}

// Resolver resolves references inside one module.
type Resolver struct {
	deps *DependencyModel
	// qualifier as written ("Cmd", "Json.Decode") -> canonical module
	qualifiers map[string]string
	// unqualified name -> canonical module that exposes it
	exposed map[string]string
	// names defined at the top level of this module
	topLevel map[string]bool
	// this module's own canonical name
	moduleName string
	// types declared in this module; kept local so the shared
	// DependencyModel stays read-only across concurrent passes
	localTypes map[string][]string
	localCtors map[string]string
}

// NewResolver builds the symbol table for one parsed module.
func NewResolver(file *ast.File, deps *DependencyModel) *Resolver {
	r := &Resolver{
		deps:       deps,
		qualifiers: map[string]string{},
		exposed:    map[string]string{},
		topLevel:   map[string]bool{},
		moduleName: strings.Join(file.Name, "."),
		localTypes: map[string][]string{},
		localCtors: map[string]string{},
	}

	for i := range defaultImports {
		r.addImport(&defaultImports[i])
	}
	for _, imp := range file.Imports {
		r.addImport(imp)
	}
	for _, d := range file.Decls {
		r.topLevel[d.Name] = true
	}
	for _, td := range file.Types {
		qualified := td.Name
		if r.moduleName != "" {
			qualified = r.moduleName + "." + td.Name
		}
		ctors := make([]string, len(td.Ctors))
		for i, c := range td.Ctors {
			ctors[i] = c.Name
			r.topLevel[c.Name] = true
			r.localCtors[c.Name] = qualified
		}
		r.localTypes[qualified] = ctors
	}
	return r
}

func (r *Resolver) addImport(imp *ast.Import) {
	canonical := strings.Join(imp.Module, ".")
	if imp.Alias != "" {
		r.qualifiers[imp.Alias] = canonical
	} else {
		r.qualifiers[canonical] = canonical
	}
	if imp.ExposeAll {
		for name := range r.deps.moduleValues[canonical] {
			r.exposed[name] = canonical
		}
		return
	}
	for _, name := range imp.Exposing {
		r.exposed[name] = canonical
	}
}

// Resolves reports whether ref denotes the given canonical module's name.
// An unresolvable reference conservatively resolves to nothing, so rules
// simply do not fire on it.
func (r *Resolver) Resolves(ref *ast.VarRef, module, name string) bool {
	if ref == nil || ref.Name != name {
		return false
	}
	if len(ref.Module) > 0 {
		canonical, ok := r.qualifiers[strings.Join(ref.Module, ".")]
		return ok && canonical == module
	}
	if r.topLevel[ref.Name] {
		return false
	}
	return r.exposed[ref.Name] == module
}

// Canonical resolves a reference to its defining (module, name) pair.
// Unqualified names that resolve neither to a top-level declaration nor
// to an exposed import are local variables; those return ok == false and
// are compared by spelling alone.
func (r *Resolver) Canonical(ref *ast.VarRef) (string, string, bool) {
	if len(ref.Module) > 0 {
		canonical, ok := r.qualifiers[strings.Join(ref.Module, ".")]
		if !ok {
			return "", ref.Name, false
		}
		return canonical, ref.Name, true
	}
	if r.topLevel[ref.Name] {
		return r.moduleName, ref.Name, true
	}
	if home, ok := r.exposed[ref.Name]; ok {
		return home, ref.Name, true
	}
	return "", ref.Name, false
}

// ConstructorType resolves a constructor reference to its canonical type
// name, e.g. `True` -> "Basics.Bool".
func (r *Resolver) ConstructorType(module []string, name string) (string, bool) {
	if len(module) > 0 {
		canonical, ok := r.qualifiers[strings.Join(module, ".")]
		if !ok {
			return "", false
		}
		t, ok := r.deps.ctorType[canonical+"."+name]
		return t, ok
	}
	if home, ok := r.exposed[name]; ok && !r.topLevel[name] {
		t, ok := r.deps.ctorType[home+"."+name]
		return t, ok
	}
	// a constructor of this module's own types
	if t, ok := r.localCtors[name]; ok {
		return t, ok
	}
	return "", false
}

// TypeExists consults the dependency model, then this module's own
// type declarations.
func (r *Resolver) TypeExists(qualified string) ([]string, bool) {
	if ctors, ok := r.deps.TypeExists(qualified); ok {
		return ctors, ok
	}
	ctors, ok := r.localTypes[qualified]
	return ctors, ok
}

// TopLevelNames returns the module's own top-level names, sorted. Used in
// diagnostics and tests.
func (r *Resolver) TopLevelNames() []string {
	names := make([]string, 0, len(r.topLevel))
	for n := range r.topLevel {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
