package ast

// Children returns the direct subexpressions of e in source order.
func Children(e Expr) []Expr {
	switch n := e.(type) {
	case *ListLit:
		return n.Elements
	case *TupleLit:
		return n.Elements
	case *RecordLit:
		out := make([]Expr, 0, len(n.Fields))
		for _, f := range n.Fields {
			out = append(out, f.Value)
		}
		return out
	case *RecordUpdate:
		out := make([]Expr, 0, len(n.Fields))
		for _, f := range n.Fields {
			out = append(out, f.Value)
		}
		return out
	case *FieldAccess:
		return []Expr{n.Target}
	case *Apply:
		return append([]Expr{n.Fn}, n.Args...)
	case *Lambda:
		return []Expr{n.Body}
	case *If:
		return []Expr{n.Cond, n.Then, n.Else}
	case *Case:
		out := []Expr{n.Subject}
		for _, arm := range n.Arms {
			out = append(out, arm.Body)
		}
		return out
	case *Let:
		out := make([]Expr, 0, len(n.Bindings)+1)
		for _, b := range n.Bindings {
			out = append(out, b.Body)
		}
		return append(out, n.Body)
	case *BinOp:
		return []Expr{n.Left, n.Right}
	case *Negate:
		return []Expr{n.Operand}
	case *Paren:
		return []Expr{n.Inner}
	}
	return nil
}

// Walk traverses e depth-first, pre-order. When fn returns false the
// subtree below the current node is skipped.
func Walk(e Expr, fn func(Expr) bool) {
	if e == nil {
		return
	}
	if !fn(e) {
		return
	}
	for _, c := range Children(e) {
		Walk(c, fn)
	}
}
