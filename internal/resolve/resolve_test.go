package resolve

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elmlint/elin/internal/ast"
	"github.com/elmlint/elin/internal/elmparse"
)

func resolverFor(t *testing.T, src string) *Resolver {
	t.Helper()
	file, err := elmparse.ParseSource(src)
	require.NoError(t, err)
	return NewResolver(file, NewDependencyModel())
}

func qref(module, name string) *ast.VarRef {
	if module == "" {
		return &ast.VarRef{Name: name}
	}
	return &ast.VarRef{Module: []string{module}, Name: name}
}

func TestDefaultImports(t *testing.T) {
	t.Parallel()

	r := resolverFor(t, "module Test exposing (..)\n\nmain = 0\n")

	assert.True(t, r.Resolves(qref("List", "map"), "List", "map"))
	assert.True(t, r.Resolves(qref("Basics", "not"), "Basics", "not"))
	assert.True(t, r.Resolves(qref("String", "join"), "String", "join"))

	// Cmd and Sub are aliases for the Platform effect modules
	assert.True(t, r.Resolves(qref("Cmd", "none"), "Platform.Cmd", "none"))
	assert.True(t, r.Resolves(qref("Sub", "batch"), "Platform.Sub", "batch"))

	// Basics exposes everything, Maybe only its constructors
	assert.True(t, r.Resolves(qref("", "identity"), "Basics", "identity"))
	assert.True(t, r.Resolves(qref("", "Just"), "Maybe", "Just"))
	assert.False(t, r.Resolves(qref("", "map"), "List", "map"))

	// Set is not imported by default
	assert.False(t, r.Resolves(qref("Set", "empty"), "Set", "empty"))
}

func TestImportAliasAndExposing(t *testing.T) {
	t.Parallel()

	src := `module Test exposing (..)

import Json.Decode as D
import Set exposing (fromList)

main = 0
`
	r := resolverFor(t, src)

	assert.True(t, r.Resolves(qref("D", "map"), "Json.Decode", "map"))
	assert.False(t, r.Resolves(&ast.VarRef{Module: []string{"Json", "Decode"}, Name: "map"}, "Json.Decode", "map"))
	assert.True(t, r.Resolves(qref("Set", "size"), "Set", "size"))
	assert.True(t, r.Resolves(qref("", "fromList"), "Set", "fromList"))
}

func TestTopLevelShadowing(t *testing.T) {
	t.Parallel()

	src := `module Test exposing (..)

identity x = x

main = identity 1
`
	r := resolverFor(t, src)

	assert.False(t, r.Resolves(qref("", "identity"), "Basics", "identity"))
	assert.True(t, r.Resolves(qref("Basics", "identity"), "Basics", "identity"))

	module, name, ok := r.Canonical(qref("", "identity"))
	require.True(t, ok)
	assert.Equal(t, "Test", module)
	assert.Equal(t, "identity", name)
}

func TestCanonicalLocalVariable(t *testing.T) {
	t.Parallel()

	r := resolverFor(t, "module Test exposing (..)\n\nmain = 0\n")

	_, name, ok := r.Canonical(qref("", "someLocal"))
	assert.False(t, ok)
	assert.Equal(t, "someLocal", name)

	module, _, ok := r.Canonical(qref("", "always"))
	require.True(t, ok)
	assert.Equal(t, "Basics", module)
}

func TestConstructorType(t *testing.T) {
	t.Parallel()

	src := `module Test exposing (..)

type Wrap = Wrap Int

main = 0
`
	r := resolverFor(t, src)

	typ, ok := r.ConstructorType(nil, "True")
	require.True(t, ok)
	assert.Equal(t, "Basics.Bool", typ)

	typ, ok = r.ConstructorType([]string{"Maybe"}, "Just")
	require.True(t, ok)
	assert.Equal(t, "Maybe.Maybe", typ)

	typ, ok = r.ConstructorType(nil, "Wrap")
	require.True(t, ok)
	assert.Equal(t, "Test.Wrap", typ)

	ctors, ok := r.TypeExists("Test.Wrap")
	require.True(t, ok)
	assert.Equal(t, []string{"Wrap"}, ctors)

	_, ok = r.ConstructorType(nil, "Unknown")
	assert.False(t, ok)
}

func TestValidateIgnoredTypes(t *testing.T) {
	t.Parallel()

	m := NewDependencyModel()

	valid, err := m.ValidateIgnoredTypes([]string{"Maybe.Maybe", "Result.Result"})
	require.NoError(t, err)
	assert.True(t, valid["Maybe.Maybe"])
	assert.True(t, valid["Result.Result"])

	_, err = m.ValidateIgnoredTypes([]string{"Maybe.Maybe", "Bogus.Type", "NoDot", "Bogus.Type"})
	require.Error(t, err)
	assert.EqualError(t, err, "Could not find type names: `Bogus.Type`, `NoDot`")
}
