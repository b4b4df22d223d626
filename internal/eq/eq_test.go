package eq

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elmlint/elin/internal/ast"
	"github.com/elmlint/elin/internal/elmparse"
	"github.com/elmlint/elin/internal/resolve"
)

// exprPair parses a and b as the bodies of two declarations of the same
// module, so both sides resolve against one symbol table.
func exprPair(t *testing.T, a, b string) (*Engine, ast.Expr, ast.Expr) {
	t.Helper()
	src := "module Test exposing (..)\n\nfirst = " + a + "\n\nsecond = " + b + "\n"
	file, err := elmparse.ParseSource(src)
	require.NoError(t, err)
	require.Len(t, file.Decls, 2)
	r := resolve.NewResolver(file, resolve.NewDependencyModel())
	return New(r), file.Decls[0].Body, file.Decls[1].Body
}

func TestSameValue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a, b string
		want bool
	}{
		{"same local variable", "x", "x", true},
		{"different variables", "x", "y", false},
		{"int equals float spelling", "1", "1.0", true},
		{"hex equals decimal", "0x10", "16", true},
		{"different numbers", "1", "2", false},
		{"parens are transparent", "(x)", "x", true},
		{"same strings", `"a"`, `"a"`, true},
		{"different strings", `"a"`, `"b"`, false},
		{"pipe sugar normalizes", "f a <| b", "b |> f a", true},
		{"commutative addition", "x + y", "y + x", true},
		{"subtraction is not commutative", "x - y", "y - x", false},
		{"same comparison", "a < b", "a < b", true},
		{"swapped comparison", "a < b", "b < a", false},
		{"list literals elementwise", "[1, 2]", "[1, 2]", true},
		{"list literals differ", "[1, 2]", "[1, 3]", false},
		{"field access spellings", "r.f", ".f r", true},
		{"negation", "-x", "-x", true},
		{"same call", "not x", "not x", true},
		{"record fields order independent", "{ a = 1, b = 2 }", "{ b = 2, a = 1 }", true},
		{"stdlib versus local", "True", "x", false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			e, a, b := exprPair(t, tc.a, tc.b)
			assert.Equal(t, tc.want, e.SameValue(a, b))
		})
	}
}

func TestSameValueQualification(t *testing.T) {
	t.Parallel()

	// the qualified and exposed spellings of one stdlib name are equal
	e, a, b := exprPair(t, "Basics.identity", "identity")
	assert.True(t, e.SameValue(a, b))
}

func TestKnownDistinct(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a, b string
		want bool
	}{
		{"different numbers", "1", "2", true},
		{"equal across spellings", "1", "1.0", false},
		{"hex versus decimal", "0x3", "3", false},
		{"different strings", `"a"`, `"b"`, true},
		{"different chars", "'a'", "'b'", true},
		{"different list lengths", "[1]", "[1, 2]", true},
		{"distinct tuple element", "(1, x)", "(2, x)", true},
		{"unknown variables", "x", "y", false},
		{"unknown list elements", "[x]", "[y]", false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			e, a, b := exprPair(t, tc.a, tc.b)
			assert.Equal(t, tc.want, e.KnownDistinct(a, b))
		})
	}
}

func TestSamePattern(t *testing.T) {
	t.Parallel()

	src := `module Test exposing (..)

first =
    case x of
        Just ( a, 1 ) ->
            0

second =
    case y of
        Just ( a, 1 ) ->
            0

third =
    case z of
        Just ( b, 1 ) ->
            0
`
	file, err := elmparse.ParseSource(src)
	require.NoError(t, err)
	require.Len(t, file.Decls, 3)

	armPattern := func(i int) ast.Pattern {
		cs, ok := file.Decls[i].Body.(*ast.Case)
		require.True(t, ok)
		require.Len(t, cs.Arms, 1)
		return cs.Arms[0].Pattern
	}

	assert.True(t, SamePattern(armPattern(0), armPattern(1)))
	assert.False(t, SamePattern(armPattern(0), armPattern(2)))
}
