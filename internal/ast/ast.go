// Package ast defines the expression model for Elm modules: expressions,
// patterns, and declarations with precise source ranges. The tree is built
// once by the parser and is never mutated; rules only read it and propose
// textual edits.
package ast

import (
	tt "github.com/elmlint/elin/internal/types"
)

// Node is the base interface of every AST node.
type Node interface {
	Range() tt.Range
}

// Expr is a Node that represents an expression.
type Expr interface {
	Node
	exprNode()
}

// Pattern is a Node that represents a pattern.
type Pattern interface {
	Node
	patternNode()
}

// ---------------------------------------------------------------------------
// Literals

// IntLit is an integer literal. Value holds the decoded number, Raw the
// original spelling (decimal or 0x hex).
type IntLit struct {
	Rng   tt.Range
	Value int64
	Raw   string
}

func (e *IntLit) Range() tt.Range { return e.Rng }
func (e *IntLit) exprNode()       {}

// FloatLit is a floating point literal.
type FloatLit struct {
	Rng   tt.Range
	Value float64
	Raw   string
}

func (e *FloatLit) Range() tt.Range { return e.Rng }
func (e *FloatLit) exprNode()       {}

// StringLit is a string literal. Value is the unescaped content.
type StringLit struct {
	Rng   tt.Range
	Value string
}

func (e *StringLit) Range() tt.Range { return e.Rng }
func (e *StringLit) exprNode()       {}

// CharLit is a character literal.
type CharLit struct {
	Rng   tt.Range
	Value rune
}

func (e *CharLit) Range() tt.Range { return e.Rng }
func (e *CharLit) exprNode()       {}

// UnitLit is the unit value ().
type UnitLit struct {
	Rng tt.Range
}

func (e *UnitLit) Range() tt.Range { return e.Rng }
func (e *UnitLit) exprNode()       {}

// ---------------------------------------------------------------------------
// References and collections

// VarRef is a possibly module-qualified reference, e.g. `x` or `List.map`.
// Constructors (`Just`, `True`) are VarRefs too; capitalization decides.
type VarRef struct {
	Rng    tt.Range
	Module []string
	Name   string
}

func (e *VarRef) Range() tt.Range { return e.Rng }
func (e *VarRef) exprNode()       {}

// IsConstructorRef reports whether the referenced name starts with an
// upper-case letter.
func (e *VarRef) IsConstructorRef() bool {
	return e.Name != "" && e.Name[0] >= 'A' && e.Name[0] <= 'Z'
}

// ListLit is a list literal [a, b, c].
type ListLit struct {
	Rng      tt.Range
	Elements []Expr
}

func (e *ListLit) Range() tt.Range { return e.Rng }
func (e *ListLit) exprNode()       {}

// TupleLit is a tuple (a, b) or (a, b, c).
type TupleLit struct {
	Rng      tt.Range
	Elements []Expr
}

func (e *TupleLit) Range() tt.Range { return e.Rng }
func (e *TupleLit) exprNode()       {}

// RecordField is one `name = value` entry of a record literal or update.
type RecordField struct {
	Rng       tt.Range
	Name      string
	NameRange tt.Range
	Value     Expr
}

// RecordLit is a record literal { a = 1, b = 2 }.
type RecordLit struct {
	Rng    tt.Range
	Fields []*RecordField
}

func (e *RecordLit) Range() tt.Range { return e.Rng }
func (e *RecordLit) exprNode()       {}

// Field returns the entry assigning name, or nil.
func (e *RecordLit) Field(name string) *RecordField {
	for _, f := range e.Fields {
		if f.Name == name {
			return f
		}
	}
	return nil
}

// RecordUpdate is a record update { base | a = 1 }.
type RecordUpdate struct {
	Rng       tt.Range
	Base      string
	BaseRange tt.Range
	Fields    []*RecordField
}

func (e *RecordUpdate) Range() tt.Range { return e.Rng }
func (e *RecordUpdate) exprNode()       {}

// Field returns the entry assigning name, or nil.
func (e *RecordUpdate) Field(name string) *RecordField {
	for _, f := range e.Fields {
		if f.Name == name {
			return f
		}
	}
	return nil
}

// FieldAccess is `target.field`.
type FieldAccess struct {
	Rng        tt.Range
	Target     Expr
	Field      string
	FieldRange tt.Range
}

func (e *FieldAccess) Range() tt.Range { return e.Rng }
func (e *FieldAccess) exprNode()       {}

// AccessFunc is the field-access function `.field`.
type AccessFunc struct {
	Rng   tt.Range
	Field string
}

func (e *AccessFunc) Range() tt.Range { return e.Rng }
func (e *AccessFunc) exprNode()       {}

// OpFunc is an operator used as a value, e.g. `(+)`.
type OpFunc struct {
	Rng tt.Range
	Op  string
}

func (e *OpFunc) Range() tt.Range { return e.Rng }
func (e *OpFunc) exprNode()       {}

// ---------------------------------------------------------------------------
// Compound expressions

// Apply is a curried function application, flattened to n-ary form:
// `f a b` is Apply{Fn: f, Args: [a, b]}.
type Apply struct {
	Rng  tt.Range
	Fn   Expr
	Args []Expr
}

func (e *Apply) Range() tt.Range { return e.Rng }
func (e *Apply) exprNode()       {}

// Lambda is an anonymous function `\p1 p2 -> body`.
type Lambda struct {
	Rng    tt.Range
	Params []Pattern
	Body   Expr
}

func (e *Lambda) Range() tt.Range { return e.Rng }
func (e *Lambda) exprNode()       {}

// If is `if cond then a else b`.
type If struct {
	Rng  tt.Range
	Cond Expr
	Then Expr
	Else Expr
}

func (e *If) Range() tt.Range { return e.Rng }
func (e *If) exprNode()       {}

// CaseArm is one `pattern -> body` branch of a case expression.
type CaseArm struct {
	Rng     tt.Range
	Pattern Pattern
	Body    Expr
}

// Case is `case subject of` with ordered, first-match arms.
type Case struct {
	Rng     tt.Range
	Subject Expr
	Arms    []*CaseArm
}

func (e *Case) Range() tt.Range { return e.Rng }
func (e *Case) exprNode()       {}

// LetBinding is one binding of a let block. Either Name is set (a plain
// `name args = body` binding) or Pat is set (a destructuring binding).
type LetBinding struct {
	Rng    tt.Range
	Name   string
	Pat    Pattern
	Params []Pattern
	Body   Expr
}

// Let is `let bindings in body`.
type Let struct {
	Rng      tt.Range
	Bindings []*LetBinding
	Body     Expr
}

func (e *Let) Range() tt.Range { return e.Rng }
func (e *Let) exprNode()       {}

// BinOp is a binary operator application, including the pipeline operators
// `|>` and `<|`, composition `>>` and `<<`, and cons `::`.
type BinOp struct {
	Rng     tt.Range
	Op      string
	OpRange tt.Range
	Left    Expr
	Right   Expr
}

func (e *BinOp) Range() tt.Range { return e.Rng }
func (e *BinOp) exprNode()       {}

// Negate is unary minus.
type Negate struct {
	Rng     tt.Range
	Operand Expr
}

func (e *Negate) Range() tt.Range { return e.Rng }
func (e *Negate) exprNode()       {}

// Paren is a parenthesized expression. It exists only so that ranges map
// back to the source exactly; rules look through it with UnwrapParens.
type Paren struct {
	Rng   tt.Range
	Inner Expr
}

func (e *Paren) Range() tt.Range { return e.Rng }
func (e *Paren) exprNode()       {}

// ---------------------------------------------------------------------------
// Patterns

// PWildcard is `_`.
type PWildcard struct {
	Rng tt.Range
}

func (p *PWildcard) Range() tt.Range { return p.Rng }
func (p *PWildcard) patternNode()    {}

// PVar binds a variable.
type PVar struct {
	Rng  tt.Range
	Name string
}

func (p *PVar) Range() tt.Range { return p.Rng }
func (p *PVar) patternNode()    {}

// PLiteral matches a literal value. Value is one of the literal Expr kinds.
type PLiteral struct {
	Rng   tt.Range
	Value Expr
}

func (p *PLiteral) Range() tt.Range { return p.Rng }
func (p *PLiteral) patternNode()    {}

// PUnit matches ().
type PUnit struct {
	Rng tt.Range
}

func (p *PUnit) Range() tt.Range { return p.Rng }
func (p *PUnit) patternNode()    {}

// PCtor matches a constructor, e.g. `Just x` or `Maybe.Nothing`.
type PCtor struct {
	Rng    tt.Range
	Module []string
	Name   string
	Args   []Pattern
}

func (p *PCtor) Range() tt.Range { return p.Rng }
func (p *PCtor) patternNode()    {}

// PTuple destructures a tuple.
type PTuple struct {
	Rng      tt.Range
	Elements []Pattern
}

func (p *PTuple) Range() tt.Range { return p.Rng }
func (p *PTuple) patternNode()    {}

// PList matches a list literal pattern [a, b].
type PList struct {
	Rng      tt.Range
	Elements []Pattern
}

func (p *PList) Range() tt.Range { return p.Rng }
func (p *PList) patternNode()    {}

// PCons matches head :: tail.
type PCons struct {
	Rng  tt.Range
	Head Pattern
	Tail Pattern
}

func (p *PCons) Range() tt.Range { return p.Rng }
func (p *PCons) patternNode()    {}

// PRecord destructures record fields { a, b }.
type PRecord struct {
	Rng    tt.Range
	Fields []string
}

func (p *PRecord) Range() tt.Range { return p.Rng }
func (p *PRecord) patternNode()    {}

// PAs is an alias pattern `inner as name`.
type PAs struct {
	Rng   tt.Range
	Inner Pattern
	Name  string
}

func (p *PAs) Range() tt.Range { return p.Rng }
func (p *PAs) patternNode()    {}

// PParen is a parenthesized pattern.
type PParen struct {
	Rng   tt.Range
	Inner Pattern
}

func (p *PParen) Range() tt.Range { return p.Rng }
func (p *PParen) patternNode()    {}

// ---------------------------------------------------------------------------
// Declarations

// Import is one `import Module [as Alias] [exposing (...)]` line.
type Import struct {
	Rng       tt.Range
	Module    []string
	Alias     string
	Exposing  []string
	ExposeAll bool
}

// CtorDef is one constructor of a custom type declaration.
type CtorDef struct {
	Name  string
	Arity int
}

// CustomType is a `type Name = A | B Int` declaration.
type CustomType struct {
	Rng   tt.Range
	Name  string
	Ctors []CtorDef
}

// ValueDecl is a top-level `name args = body` declaration.
type ValueDecl struct {
	Rng       tt.Range
	Name      string
	NameRange tt.Range
	Params    []Pattern
	Body      Expr
}

// File is one parsed Elm module.
type File struct {
	Name    []string
	Imports []*Import
	Types   []*CustomType
	Decls   []*ValueDecl
}
