package ast

// Kind classifies an expression node by its constructor, keying the
// dispatch table that routes nodes to interested rules.
type Kind int

const (
	KindInvalid Kind = iota
	KindLiteral
	KindVarRef
	KindList
	KindTuple
	KindRecord
	KindRecordUpdate
	KindFieldAccess
	KindAccessFunc
	KindOpFunc
	KindApply
	KindLambda
	KindIf
	KindCase
	KindLet
	KindBinOp
	KindNegate
	KindParen
)

// KindOf returns e's constructor kind.
func KindOf(e Expr) Kind {
	switch e.(type) {
	case *IntLit, *FloatLit, *StringLit, *CharLit, *UnitLit:
		return KindLiteral
	case *VarRef:
		return KindVarRef
	case *ListLit:
		return KindList
	case *TupleLit:
		return KindTuple
	case *RecordLit:
		return KindRecord
	case *RecordUpdate:
		return KindRecordUpdate
	case *FieldAccess:
		return KindFieldAccess
	case *AccessFunc:
		return KindAccessFunc
	case *OpFunc:
		return KindOpFunc
	case *Apply:
		return KindApply
	case *Lambda:
		return KindLambda
	case *If:
		return KindIf
	case *Case:
		return KindCase
	case *Let:
		return KindLet
	case *BinOp:
		return KindBinOp
	case *Negate:
		return KindNegate
	case *Paren:
		return KindParen
	}
	return KindInvalid
}
