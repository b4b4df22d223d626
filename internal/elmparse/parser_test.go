package elmparse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elmlint/elin/internal/ast"
	tt "github.com/elmlint/elin/internal/types"
)

func parseFile(t *testing.T, src string) *ast.File {
	t.Helper()
	file, err := ParseSource(src)
	require.NoError(t, err)
	return file
}

func parseBody(t *testing.T, expr string) ast.Expr {
	t.Helper()
	file := parseFile(t, "module Test exposing (..)\n\na = "+expr+"\n")
	require.Len(t, file.Decls, 1)
	return file.Decls[0].Body
}

func TestLexerTokens(t *testing.T) {
	t.Parallel()

	lx := newLexer(`a = 0x1F ++ "s" 'c' 2.5`)
	toks := lx.tokenize()
	require.Empty(t, lx.perrs)

	kinds := make([]tokenKind, len(toks))
	for i, tok := range toks {
		kinds[i] = tok.Kind
	}
	assert.Equal(t, []tokenKind{
		tokLowerIdent, tokEquals, tokInt, tokOperator,
		tokString, tokChar, tokFloat, tokEOF,
	}, kinds)

	assert.Equal(t, int64(31), toks[2].IntVal)
	assert.Equal(t, "0x1F", toks[2].Text)
	assert.Equal(t, "++", toks[3].Text)
	assert.Equal(t, "s", toks[4].StrVal)
	assert.Equal(t, 'c', toks[5].CharVal)
	assert.Equal(t, 2.5, toks[6].FloatVal)
}

func TestLexerStringEscapes(t *testing.T) {
	t.Parallel()

	lx := newLexer(`x = "a\nb\u{1F600}"`)
	toks := lx.tokenize()
	require.Empty(t, lx.perrs)
	require.Equal(t, tokString, toks[2].Kind)
	assert.Equal(t, "a\nb\U0001F600", toks[2].StrVal)
}

func TestLexerTripleQuotedString(t *testing.T) {
	t.Parallel()

	lx := newLexer("x = \"\"\"one \"two\"\nthree\"\"\"")
	toks := lx.tokenize()
	require.Empty(t, lx.perrs)
	require.Equal(t, tokString, toks[2].Kind)
	assert.Equal(t, "one \"two\"\nthree", toks[2].StrVal)
	assert.Equal(t, 1, toks[2].Line)
	assert.Equal(t, 5, toks[2].Col)
	assert.Equal(t, 2, toks[2].endLine())
	assert.Equal(t, 9, toks[2].EndCol)
}

func TestParseTripleQuotedString(t *testing.T) {
	t.Parallel()

	file := parseFile(t, "module Test exposing (a)\n\na =\n    \"\"\"one\ntwo\"\"\"\n")
	require.Len(t, file.Decls, 1)
	lit, ok := file.Decls[0].Body.(*ast.StringLit)
	require.True(t, ok)
	assert.Equal(t, "one\ntwo", lit.Value)
	assert.Equal(t, tt.Range{
		Start: tt.Position{Line: 4, Column: 5},
		End:   tt.Position{Line: 5, Column: 7},
	}, lit.Rng)
}

func TestLexerComments(t *testing.T) {
	t.Parallel()

	lx := newLexer("-- line comment\n{- block {- nested -} -}\nx")
	toks := lx.tokenize()
	require.Len(t, toks, 2)
	assert.Equal(t, tokLowerIdent, toks[0].Kind)
	assert.Equal(t, 3, toks[0].Line)
	assert.Equal(t, 1, toks[0].Col)
}

func TestLexerQualifiedAndDotIdent(t *testing.T) {
	t.Parallel()

	lx := newLexer("Json.Decode.map r.field .field")
	toks := lx.tokenize()
	require.Len(t, toks, 5)
	assert.Equal(t, tokQualified, toks[0].Kind)
	assert.Equal(t, "Json.Decode.map", toks[0].Text)
	assert.Equal(t, tokLowerIdent, toks[1].Kind)
	assert.Equal(t, tokDotIdent, toks[2].Kind)
	assert.Equal(t, "field", toks[2].StrVal)
	assert.Equal(t, tokDotIdent, toks[3].Kind)
}

func TestParseFileStructure(t *testing.T) {
	t.Parallel()

	src := `module My.App exposing (..)

import Json.Decode as D
import Set exposing (fromList, Set)

type Shape = Circle Float | Square Float Float

area : Float
area = 1

main x y = x
`
	file := parseFile(t, src)

	assert.Equal(t, []string{"My", "App"}, file.Name)

	require.Len(t, file.Imports, 2)
	assert.Equal(t, []string{"Json", "Decode"}, file.Imports[0].Module)
	assert.Equal(t, "D", file.Imports[0].Alias)
	assert.Equal(t, []string{"Set"}, file.Imports[1].Module)
	assert.Equal(t, []string{"fromList", "Set"}, file.Imports[1].Exposing)

	require.Len(t, file.Types, 1)
	assert.Equal(t, "Shape", file.Types[0].Name)
	assert.Equal(t, []ast.CtorDef{{Name: "Circle", Arity: 1}, {Name: "Square", Arity: 2}}, file.Types[0].Ctors)

	require.Len(t, file.Decls, 2)
	assert.Equal(t, "area", file.Decls[0].Name)
	assert.Empty(t, file.Decls[0].Params)
	assert.Equal(t, "main", file.Decls[1].Name)
	assert.Len(t, file.Decls[1].Params, 2)
}

func TestParsePrecedence(t *testing.T) {
	t.Parallel()

	t.Run("multiplication binds tighter", func(t *testing.T) {
		bin, ok := parseBody(t, "1 + 2 * 3").(*ast.BinOp)
		require.True(t, ok)
		assert.Equal(t, "+", bin.Op)
		right, ok := bin.Right.(*ast.BinOp)
		require.True(t, ok)
		assert.Equal(t, "*", right.Op)
	})

	t.Run("pipe is left associative", func(t *testing.T) {
		bin, ok := parseBody(t, "x |> f |> g").(*ast.BinOp)
		require.True(t, ok)
		assert.Equal(t, "|>", bin.Op)
		left, ok := bin.Left.(*ast.BinOp)
		require.True(t, ok)
		assert.Equal(t, "|>", left.Op)
	})

	t.Run("reverse pipe is right associative", func(t *testing.T) {
		bin, ok := parseBody(t, "f <| g <| x").(*ast.BinOp)
		require.True(t, ok)
		assert.Equal(t, "<|", bin.Op)
		right, ok := bin.Right.(*ast.BinOp)
		require.True(t, ok)
		assert.Equal(t, "<|", right.Op)
	})

	t.Run("cons is right associative", func(t *testing.T) {
		bin, ok := parseBody(t, "a :: b :: []").(*ast.BinOp)
		require.True(t, ok)
		assert.Equal(t, "::", bin.Op)
		right, ok := bin.Right.(*ast.BinOp)
		require.True(t, ok)
		assert.Equal(t, "::", right.Op)
	})

	t.Run("application binds tighter than operators", func(t *testing.T) {
		bin, ok := parseBody(t, "f a ++ g b").(*ast.BinOp)
		require.True(t, ok)
		assert.Equal(t, "++", bin.Op)
		_, ok = bin.Left.(*ast.Apply)
		assert.True(t, ok)
		_, ok = bin.Right.(*ast.Apply)
		assert.True(t, ok)
	})
}

func TestParseAtoms(t *testing.T) {
	t.Parallel()

	t.Run("unit", func(t *testing.T) {
		_, ok := parseBody(t, "()").(*ast.UnitLit)
		assert.True(t, ok)
	})

	t.Run("tuple", func(t *testing.T) {
		tup, ok := parseBody(t, "(1, 2)").(*ast.TupleLit)
		require.True(t, ok)
		assert.Len(t, tup.Elements, 2)
	})

	t.Run("operator section", func(t *testing.T) {
		op, ok := parseBody(t, "(+)").(*ast.OpFunc)
		require.True(t, ok)
		assert.Equal(t, "+", op.Op)
	})

	t.Run("qualified reference", func(t *testing.T) {
		ref, ok := parseBody(t, "Json.Decode.map").(*ast.VarRef)
		require.True(t, ok)
		assert.Equal(t, []string{"Json", "Decode"}, ref.Module)
		assert.Equal(t, "map", ref.Name)
	})

	t.Run("negate versus subtraction", func(t *testing.T) {
		_, ok := parseBody(t, "-x").(*ast.Negate)
		assert.True(t, ok)
		bin, ok := parseBody(t, "x - 1").(*ast.BinOp)
		require.True(t, ok)
		assert.Equal(t, "-", bin.Op)
	})
}

func TestParseRecords(t *testing.T) {
	t.Parallel()

	rec, ok := parseBody(t, "{ x = 1, y = 2 }").(*ast.RecordLit)
	require.True(t, ok)
	require.Len(t, rec.Fields, 2)
	assert.Equal(t, "x", rec.Fields[0].Name)
	assert.Equal(t, "y", rec.Fields[1].Name)

	upd, ok := parseBody(t, "{ r | x = 1 }").(*ast.RecordUpdate)
	require.True(t, ok)
	assert.Equal(t, "r", upd.Base)
	require.Len(t, upd.Fields, 1)

	acc, ok := parseBody(t, "r.x.y").(*ast.FieldAccess)
	require.True(t, ok)
	assert.Equal(t, "y", acc.Field)
	inner, ok := acc.Target.(*ast.FieldAccess)
	require.True(t, ok)
	assert.Equal(t, "x", inner.Field)
}

func TestParseLambda(t *testing.T) {
	t.Parallel()

	lam, ok := parseBody(t, `\x _ -> x`).(*ast.Lambda)
	require.True(t, ok)
	require.Len(t, lam.Params, 2)
	_, ok = lam.Params[0].(*ast.PVar)
	assert.True(t, ok)
	_, ok = lam.Params[1].(*ast.PWildcard)
	assert.True(t, ok)
}

func TestParseIfChain(t *testing.T) {
	t.Parallel()

	ifx, ok := parseBody(t, "if p then 1 else if q then 2 else 3").(*ast.If)
	require.True(t, ok)
	chained, ok := ifx.Else.(*ast.If)
	require.True(t, ok)
	_, ok = chained.Else.(*ast.IntLit)
	assert.True(t, ok)
}

func TestParseCase(t *testing.T) {
	t.Parallel()

	src := `module Test exposing (..)

a =
    case xs of
        [] ->
            0

        y :: rest ->
            y

        _ ->
            1
`
	file := parseFile(t, src)
	require.Len(t, file.Decls, 1)
	cs, ok := file.Decls[0].Body.(*ast.Case)
	require.True(t, ok)
	require.Len(t, cs.Arms, 3)

	_, ok = cs.Arms[0].Pattern.(*ast.PList)
	assert.True(t, ok)
	cons, ok := cs.Arms[1].Pattern.(*ast.PCons)
	require.True(t, ok)
	_, ok = cons.Head.(*ast.PVar)
	assert.True(t, ok)
	_, ok = cs.Arms[2].Pattern.(*ast.PWildcard)
	assert.True(t, ok)
}

func TestParseLetWithAnnotation(t *testing.T) {
	t.Parallel()

	src := `module Test exposing (..)

a =
    let
        b : Int
        b =
            1
    in
    b
`
	file := parseFile(t, src)
	require.Len(t, file.Decls, 1)
	let, ok := file.Decls[0].Body.(*ast.Let)
	require.True(t, ok)
	require.Len(t, let.Bindings, 1)
	assert.Equal(t, "b", let.Bindings[0].Name)
	_, ok = let.Bindings[0].Body.(*ast.IntLit)
	assert.True(t, ok)
	_, ok = let.Body.(*ast.VarRef)
	assert.True(t, ok)
}

func TestRangesMapBackToSource(t *testing.T) {
	t.Parallel()

	src := "module Test exposing (..)\n\na = not (x + 1)\n"
	file := parseFile(t, src)
	require.Len(t, file.Decls, 1)
	code := tt.NewSourceCode(src)

	body := file.Decls[0].Body
	assert.Equal(t, "not (x + 1)", code.Snippet(body.Range()))

	app, ok := body.(*ast.Apply)
	require.True(t, ok)
	require.Len(t, app.Args, 1)
	assert.Equal(t, "(x + 1)", code.Snippet(app.Args[0].Range()))
}

func TestParseErrors(t *testing.T) {
	t.Parallel()

	_, err := ParseSource("module Test exposing (..)\n\na = (\n")
	assert.Error(t, err)

	_, err = ParseSource("module Test exposing (..)\n\n  a = 1\n")
	assert.Error(t, err)
}
