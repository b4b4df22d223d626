package ast

import "strconv"

// UnwrapParens strips any number of parenthesized wrappers.
func UnwrapParens(e Expr) Expr {
	for {
		p, ok := e.(*Paren)
		if !ok {
			return e
		}
		e = p.Inner
	}
}

// UnwrapPatternParens strips parenthesized pattern wrappers.
func UnwrapPatternParens(p Pattern) Pattern {
	for {
		pp, ok := p.(*PParen)
		if !ok {
			return p
		}
		p = pp.Inner
	}
}

// FlattenApp normalizes any application-shaped expression into a
// (function, arguments) pair, looking through parens and the pipeline
// operators: `f a b`, `f a <| b` and `b |> f a` all flatten to
// (f, [a, b]). The second return is nil when e is not an application.
func FlattenApp(e Expr) (Expr, []Expr) {
	e = UnwrapParens(e)
	switch n := e.(type) {
	case *Apply:
		fn, args := FlattenApp(n.Fn)
		if fn == nil {
			return UnwrapParens(n.Fn), n.Args
		}
		return fn, append(append([]Expr{}, args...), n.Args...)
	case *BinOp:
		switch n.Op {
		case "<|":
			fn, args := FlattenApp(n.Left)
			if fn == nil {
				return UnwrapParens(n.Left), []Expr{n.Right}
			}
			return fn, append(append([]Expr{}, args...), n.Right)
		case "|>":
			fn, args := FlattenApp(n.Right)
			if fn == nil {
				return UnwrapParens(n.Right), []Expr{n.Left}
			}
			return fn, append(append([]Expr{}, args...), n.Left)
		}
	}
	return nil, nil
}

// CallOf is FlattenApp restricted to calls whose function position is a
// plain reference; it additionally unwraps parens around every argument
// position's function part.
func CallOf(e Expr) (*VarRef, []Expr) {
	fn, args := FlattenApp(e)
	if fn == nil {
		if ref, ok := UnwrapParens(e).(*VarRef); ok {
			return ref, nil
		}
		return nil, nil
	}
	ref, ok := UnwrapParens(fn).(*VarRef)
	if !ok {
		return nil, nil
	}
	return ref, args
}

// ComposeChain flattens a `>>` / `<<` composition into the list of
// functions in application order: both `f >> g` and `g << f` yield
// [f, g]. A non-composition expression yields nil.
func ComposeChain(e Expr) []Expr {
	e = UnwrapParens(e)
	bin, ok := e.(*BinOp)
	if !ok {
		return nil
	}
	switch bin.Op {
	case ">>":
		left := ComposeChain(bin.Left)
		if left == nil {
			left = []Expr{UnwrapParens(bin.Left)}
		}
		right := ComposeChain(bin.Right)
		if right == nil {
			right = []Expr{UnwrapParens(bin.Right)}
		}
		return append(left, right...)
	case "<<":
		left := ComposeChain(bin.Left)
		if left == nil {
			left = []Expr{UnwrapParens(bin.Left)}
		}
		right := ComposeChain(bin.Right)
		if right == nil {
			right = []Expr{UnwrapParens(bin.Right)}
		}
		return append(right, left...)
	}
	return nil
}

// AlwaysBody recognizes a constant function: `always x`, `\_ -> x` (any
// number of wildcard-only parameters), and their pipe-sugared forms. It
// returns the constant body. isAlways decides whether a reference is the
// standard library's `always`, so import aliasing stays the resolver's
// business.
func AlwaysBody(e Expr, isAlways func(*VarRef) bool) (Expr, bool) {
	e = UnwrapParens(e)
	if lam, ok := e.(*Lambda); ok {
		for _, p := range lam.Params {
			if _, wild := UnwrapPatternParens(p).(*PWildcard); !wild {
				return nil, false
			}
		}
		if len(lam.Params) > 0 {
			return lam.Body, true
		}
		return nil, false
	}
	ref, args := CallOf(e)
	if ref != nil && len(args) == 1 && isAlways(ref) {
		return args[0], true
	}
	return nil, false
}

// IsIdentity recognizes the identity function: `identity` per the
// resolver, or `\x -> x`.
func IsIdentity(e Expr, isIdentityRef func(*VarRef) bool) bool {
	e = UnwrapParens(e)
	if ref, ok := e.(*VarRef); ok {
		return isIdentityRef(ref)
	}
	if lam, ok := e.(*Lambda); ok && len(lam.Params) == 1 {
		pv, ok := UnwrapPatternParens(lam.Params[0]).(*PVar)
		if !ok {
			return false
		}
		body, ok := UnwrapParens(lam.Body).(*VarRef)
		return ok && len(body.Module) == 0 && body.Name == pv.Name
	}
	return false
}

// IsListLiteral reports whether e is a list literal after unwrapping
// parens, returning it when so.
func IsListLiteral(e Expr) (*ListLit, bool) {
	l, ok := UnwrapParens(e).(*ListLit)
	return l, ok
}

// NumericValue computes the numeric value of an integer or float literal,
// looking through parens and unary negation. Hex integer literals are
// already decoded by the parser.
func NumericValue(e Expr) (float64, bool) {
	switch n := UnwrapParens(e).(type) {
	case *IntLit:
		return float64(n.Value), true
	case *FloatLit:
		return n.Value, true
	case *Negate:
		v, ok := NumericValue(n.Operand)
		return -v, ok
	}
	return 0, false
}

// IsIntLiteral reports whether e is an integer literal with the given
// value.
func IsIntLiteral(e Expr, value int64) bool {
	n, ok := UnwrapParens(e).(*IntLit)
	return ok && n.Value == value
}

// IsNumericLiteral reports whether e is an int or float literal with the
// given numeric value.
func IsNumericLiteral(e Expr, value float64) bool {
	v, ok := NumericValue(e)
	return ok && v == value
}

// PatternVars returns the variable names a pattern binds, in source order.
func PatternVars(p Pattern) []string {
	var names []string
	collectPatternVars(p, &names)
	return names
}

func collectPatternVars(p Pattern, names *[]string) {
	switch n := p.(type) {
	case *PVar:
		*names = append(*names, n.Name)
	case *PCtor:
		for _, a := range n.Args {
			collectPatternVars(a, names)
		}
	case *PTuple:
		for _, e := range n.Elements {
			collectPatternVars(e, names)
		}
	case *PList:
		for _, e := range n.Elements {
			collectPatternVars(e, names)
		}
	case *PCons:
		collectPatternVars(n.Head, names)
		collectPatternVars(n.Tail, names)
	case *PRecord:
		*names = append(*names, n.Fields...)
	case *PAs:
		collectPatternVars(n.Inner, names)
		*names = append(*names, n.Name)
	case *PParen:
		collectPatternVars(n.Inner, names)
	}
}

// UsesName reports whether an unqualified reference to name occurs
// anywhere in e. Shadowing is not analyzed; an occurrence under a
// rebinding still counts, which errs on the side of not firing rules.
func UsesName(e Expr, name string) bool {
	used := false
	Walk(e, func(n Expr) bool {
		if ref, ok := n.(*VarRef); ok && len(ref.Module) == 0 && ref.Name == name {
			used = true
		}
		return !used
	})
	return used
}

// RawInt formats an integer literal value the way source code would.
func RawInt(v int64) string {
	return strconv.FormatInt(v, 10)
}
