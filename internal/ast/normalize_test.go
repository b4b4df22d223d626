package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ref(name string) *VarRef { return &VarRef{Name: name} }

func call(fn Expr, args ...Expr) *Apply { return &Apply{Fn: fn, Args: args} }

func TestFlattenApp(t *testing.T) {
	t.Parallel()

	f, x, y := ref("f"), ref("x"), ref("y")

	t.Run("plain application", func(t *testing.T) {
		fn, args := FlattenApp(call(f, x, y))
		assert.Same(t, f, fn)
		assert.Equal(t, []Expr{x, y}, args)
	})

	t.Run("forward pipe", func(t *testing.T) {
		fn, args := FlattenApp(&BinOp{Op: "|>", Left: y, Right: call(f, x)})
		assert.Same(t, f, fn)
		assert.Equal(t, []Expr{x, y}, args)
	})

	t.Run("backward pipe", func(t *testing.T) {
		fn, args := FlattenApp(&BinOp{Op: "<|", Left: call(f, x), Right: y})
		assert.Same(t, f, fn)
		assert.Equal(t, []Expr{x, y}, args)
	})

	t.Run("parens are transparent", func(t *testing.T) {
		fn, args := FlattenApp(&Paren{Inner: call(f, x)})
		assert.Same(t, f, fn)
		assert.Len(t, args, 1)
	})

	t.Run("non-application", func(t *testing.T) {
		fn, args := FlattenApp(x)
		assert.Nil(t, fn)
		assert.Nil(t, args)
	})
}

func TestCallOf(t *testing.T) {
	t.Parallel()

	f, x := ref("f"), ref("x")

	got, args := CallOf(&BinOp{Op: "|>", Left: x, Right: f})
	assert.Same(t, f, got)
	assert.Equal(t, []Expr{x}, args)

	bare, args := CallOf(f)
	assert.Same(t, f, bare)
	assert.Nil(t, args)

	lam := &Lambda{Params: []Pattern{&PVar{Name: "a"}}, Body: ref("a")}
	got, _ = CallOf(call(lam, x))
	assert.Nil(t, got)
}

func TestComposeChain(t *testing.T) {
	t.Parallel()

	f, g, h := ref("f"), ref("g"), ref("h")

	chain := ComposeChain(&BinOp{Op: ">>", Left: &BinOp{Op: ">>", Left: f, Right: g}, Right: h})
	assert.Equal(t, []Expr{f, g, h}, chain)

	// g << f applies f first
	chain = ComposeChain(&BinOp{Op: "<<", Left: g, Right: f})
	assert.Equal(t, []Expr{f, g}, chain)

	assert.Nil(t, ComposeChain(f))
}

func TestAlwaysBody(t *testing.T) {
	t.Parallel()

	isAlways := func(r *VarRef) bool { return r.Name == "always" }
	x := ref("x")

	body, ok := AlwaysBody(call(ref("always"), x), isAlways)
	require.True(t, ok)
	assert.Same(t, x, body)

	body, ok = AlwaysBody(&Lambda{Params: []Pattern{&PWildcard{}}, Body: x}, isAlways)
	require.True(t, ok)
	assert.Same(t, x, body)

	_, ok = AlwaysBody(&Lambda{Params: []Pattern{&PVar{Name: "y"}}, Body: x}, isAlways)
	assert.False(t, ok)
}

func TestIsIdentity(t *testing.T) {
	t.Parallel()

	isIdentityRef := func(r *VarRef) bool { return r.Name == "identity" }

	assert.True(t, IsIdentity(ref("identity"), isIdentityRef))
	assert.True(t, IsIdentity(&Lambda{Params: []Pattern{&PVar{Name: "a"}}, Body: ref("a")}, isIdentityRef))
	assert.False(t, IsIdentity(&Lambda{Params: []Pattern{&PVar{Name: "a"}}, Body: ref("b")}, isIdentityRef))
	assert.False(t, IsIdentity(ref("f"), isIdentityRef))
}

func TestNumericValue(t *testing.T) {
	t.Parallel()

	v, ok := NumericValue(&IntLit{Value: 3})
	require.True(t, ok)
	assert.Equal(t, 3.0, v)

	v, ok = NumericValue(&Negate{Operand: &FloatLit{Value: 2.5}})
	require.True(t, ok)
	assert.Equal(t, -2.5, v)

	_, ok = NumericValue(ref("x"))
	assert.False(t, ok)
}

func TestPatternVars(t *testing.T) {
	t.Parallel()

	pat := &PAs{
		Inner: &PTuple{Elements: []Pattern{
			&PVar{Name: "a"},
			&PCtor{Name: "Just", Args: []Pattern{&PVar{Name: "b"}}},
			&PWildcard{},
		}},
		Name: "whole",
	}
	assert.Equal(t, []string{"a", "b", "whole"}, PatternVars(pat))
}

func TestUsesName(t *testing.T) {
	t.Parallel()

	body := &BinOp{Op: "+", Left: ref("a"), Right: call(ref("f"), ref("b"))}
	assert.True(t, UsesName(body, "b"))
	assert.False(t, UsesName(body, "c"))

	qualified := &VarRef{Module: []string{"List"}, Name: "map"}
	assert.False(t, UsesName(qualified, "map"))
}
