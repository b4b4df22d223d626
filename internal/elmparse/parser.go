package elmparse

import (
	"errors"
	"fmt"
	"strings"

	"github.com/elmlint/elin/internal/ast"
	tt "github.com/elmlint/elin/internal/types"
)

// binary operator table: precedence and associativity, per elm/core.
type opInfo struct {
	prec       int
	rightAssoc bool
}

var binOps = map[string]opInfo{
	"<|": {0, true},
	"|>": {0, false},
	"||": {2, true},
	"&&": {3, true},
	"==": {4, false},
	"/=": {4, false},
	"<":  {4, false},
	">":  {4, false},
	"<=": {4, false},
	">=": {4, false},
	"++": {5, true},
	"::": {5, true},
	"+":  {6, false},
	"-":  {6, false},
	"*":  {7, false},
	"/":  {7, false},
	"//": {7, false},
	"^":  {8, true},
	"<<": {9, true},
	">>": {9, false},
}

type parser struct {
	toks    []token
	pos     int
	indent  int // layout anchor: a token at Col <= indent ends the current expression
	lastEnd tt.Position
	errs    []error
}

// ParseSource parses Elm source text into a module tree.
func ParseSource(src string) (*ast.File, error) {
	lx := newLexer(src)
	toks := lx.tokenize()
	p := &parser{toks: toks, indent: 0, lastEnd: tt.Position{Line: 1, Column: 1}}
	p.errs = append(p.errs, lx.perrs...)
	file := p.parseFile()
	if len(p.errs) > 0 {
		return file, errors.Join(p.errs...)
	}
	return file, nil
}

func (p *parser) tok() token {
	return p.toks[p.pos]
}

func (p *parser) at(kind tokenKind) bool {
	return p.tok().Kind == kind
}

func (p *parser) advance() token {
	t := p.toks[p.pos]
	if t.Kind != tokEOF {
		p.pos++
		p.lastEnd = tt.Position{Line: t.endLine(), Column: t.EndCol}
	}
	return t
}

func (p *parser) errorf(t token, format string, args ...interface{}) {
	p.errs = append(p.errs, fmt.Errorf("%d:%d: %s", t.Line, t.Col, fmt.Sprintf(format, args...)))
}

func (p *parser) expect(kind tokenKind, what string) token {
	if p.at(kind) {
		return p.advance()
	}
	p.errorf(p.tok(), "expected %s, found %q", what, p.tok().Text)
	return p.tok()
}

// blocked reports whether the current token belongs to an enclosing
// layout context and must not be consumed by the expression in progress.
func (p *parser) blocked() bool {
	t := p.tok()
	return t.Kind == tokEOF || t.Col <= p.indent
}

func pos(t token) tt.Position {
	return tt.Position{Line: t.Line, Column: t.Col}
}

func (p *parser) spanFrom(start tt.Position) tt.Range {
	return tt.Range{Start: start, End: p.lastEnd}
}

func tokRange(t token) tt.Range {
	return tt.Range{
		Start: tt.Position{Line: t.Line, Column: t.Col},
		End:   tt.Position{Line: t.endLine(), Column: t.EndCol},
	}
}

// ---------------------------------------------------------------------------
// File structure

func (p *parser) parseFile() *ast.File {
	file := &ast.File{}

	if p.tok().isKeyword("module") || p.tok().isKeyword("port") {
		if p.tok().isKeyword("port") {
			p.advance()
		}
		p.advance() // module
		file.Name = p.parseModuleName()
		if p.tok().isKeyword("exposing") {
			p.advance()
			p.skipBalancedParens()
		}
	}

	for !p.at(tokEOF) {
		t := p.tok()
		if t.Col != 1 {
			p.errorf(t, "unexpected token %q; declarations must start at column 1", t.Text)
			p.skipToNextDecl()
			continue
		}
		switch {
		case t.isKeyword("import"):
			file.Imports = append(file.Imports, p.parseImport())
		case t.isKeyword("type"):
			if td := p.parseTypeDecl(); td != nil {
				file.Types = append(file.Types, td)
			}
		case t.Kind == tokLowerIdent:
			if d := p.parseValueDecl(); d != nil {
				file.Decls = append(file.Decls, d)
			}
		case t.isKeyword("port"):
			p.skipToNextDecl()
		default:
			p.errorf(t, "unexpected token %q at top level", t.Text)
			p.skipToNextDecl()
		}
	}
	return file
}

func (p *parser) parseModuleName() []string {
	t := p.tok()
	switch t.Kind {
	case tokUpperIdent:
		p.advance()
		return []string{t.Text}
	case tokQualified:
		p.advance()
		return strings.Split(t.Text, ".")
	}
	p.errorf(t, "expected module name, found %q", t.Text)
	return nil
}

func (p *parser) skipBalancedParens() {
	if !p.at(tokLParen) {
		return
	}
	depth := 0
	for !p.at(tokEOF) {
		switch p.tok().Kind {
		case tokLParen:
			depth++
		case tokRParen:
			depth--
		}
		p.advance()
		if depth == 0 {
			return
		}
	}
}

func (p *parser) skipToNextDecl() {
	if !p.at(tokEOF) {
		p.advance()
	}
	for !p.at(tokEOF) && p.tok().Col != 1 {
		p.advance()
	}
}

func (p *parser) parseImport() *ast.Import {
	start := pos(p.tok())
	p.advance() // import
	imp := &ast.Import{Module: p.parseModuleName()}
	if p.tok().isKeyword("as") {
		p.advance()
		imp.Alias = p.expect(tokUpperIdent, "import alias").Text
	}
	if p.tok().isKeyword("exposing") {
		p.advance()
		p.parseExposingList(imp)
	}
	imp.Rng = p.spanFrom(start)
	return imp
}

func (p *parser) parseExposingList(imp *ast.Import) {
	p.expect(tokLParen, "exposing list")
	for !p.at(tokEOF) && !p.at(tokRParen) {
		t := p.tok()
		switch {
		case t.Kind == tokOperator && (t.Text == ".." || t.Text == "."):
			// `..` lexes as one or two dot operators
			p.advance()
			if p.tok().Kind == tokOperator && p.tok().Text == "." {
				p.advance()
			}
			imp.ExposeAll = true
		case t.Kind == tokLowerIdent || t.Kind == tokUpperIdent:
			p.advance()
			imp.Exposing = append(imp.Exposing, t.Text)
			if p.at(tokLParen) {
				// constructor list after a type name, e.g. Maybe(..)
				p.skipBalancedParens()
			}
		case t.Kind == tokLParen:
			// exposed operator, e.g. (</>)
			p.advance()
			if p.at(tokOperator) || p.at(tokPipe) || p.at(tokEquals) {
				imp.Exposing = append(imp.Exposing, p.advance().Text)
			}
			p.expect(tokRParen, "closing paren of exposed operator")
		default:
			p.errorf(t, "unexpected token %q in exposing list", t.Text)
			p.advance()
		}
		if p.at(tokComma) {
			p.advance()
		}
	}
	p.expect(tokRParen, "closing paren of exposing list")
}

func (p *parser) parseTypeDecl() *ast.CustomType {
	start := pos(p.tok())
	p.advance() // type
	if p.tok().isKeyword("alias") {
		p.skipToNextDecl()
		return nil
	}
	name := p.expect(tokUpperIdent, "type name").Text
	for p.at(tokLowerIdent) { // type variables
		p.advance()
	}
	p.expect(tokEquals, "'=' in type declaration")
	td := &ast.CustomType{Name: name}
	for {
		ctorTok := p.expectCtorName()
		arity := 0
		for p.startsTypeAtom() {
			p.skipTypeAtom()
			arity++
		}
		td.Ctors = append(td.Ctors, ast.CtorDef{Name: ctorTok, Arity: arity})
		if p.at(tokPipe) {
			p.advance()
			continue
		}
		break
	}
	td.Rng = p.spanFrom(start)
	return td
}

func (p *parser) expectCtorName() string {
	if p.at(tokUpperIdent) {
		return p.advance().Text
	}
	p.errorf(p.tok(), "expected constructor name, found %q", p.tok().Text)
	p.advance()
	return "?"
}

func (p *parser) startsTypeAtom() bool {
	if p.tok().Col == 1 {
		return false
	}
	switch p.tok().Kind {
	case tokUpperIdent, tokLowerIdent, tokQualified, tokLParen, tokLBrace:
		return true
	}
	return false
}

func (p *parser) skipTypeAtom() {
	switch p.tok().Kind {
	case tokLParen, tokLBrace:
		open := p.tok().Kind
		closing := tokRParen
		if open == tokLBrace {
			closing = tokRBrace
		}
		depth := 0
		for !p.at(tokEOF) {
			if p.at(open) {
				depth++
			} else if p.at(closing) {
				depth--
			}
			p.advance()
			if depth == 0 {
				return
			}
		}
	default:
		p.advance()
	}
}

func (p *parser) parseValueDecl() *ast.ValueDecl {
	nameTok := p.advance()
	if p.at(tokColon) {
		// type annotation; skip to the definition line
		p.skipToNextDecl()
		return nil
	}
	decl := &ast.ValueDecl{
		Name:      nameTok.Text,
		NameRange: tokRange(nameTok),
	}
	for !p.at(tokEquals) && !p.at(tokEOF) && p.tok().Col > 1 {
		decl.Params = append(decl.Params, p.parsePatternAtom())
	}
	p.expect(tokEquals, "'=' in declaration")
	prev := p.indent
	p.indent = 1
	decl.Body = p.parseExpr()
	p.indent = prev
	decl.Rng = tt.Range{Start: pos(nameTok), End: p.lastEnd}
	return decl
}

// ---------------------------------------------------------------------------
// Expressions

func (p *parser) parseExpr() ast.Expr {
	return p.parseBinary(0)
}

func (p *parser) parseBinary(minPrec int) ast.Expr {
	left := p.parseApply()
	for {
		if p.blocked() {
			return left
		}
		t := p.tok()
		if t.Kind != tokOperator {
			return left
		}
		info, ok := binOps[t.Text]
		if !ok || info.prec < minPrec {
			return left
		}
		p.advance()
		nextMin := info.prec + 1
		if info.rightAssoc {
			nextMin = info.prec
		}
		right := p.parseBinary(nextMin)
		left = &ast.BinOp{
			Rng:     tt.Range{Start: left.Range().Start, End: right.Range().End},
			Op:      t.Text,
			OpRange: tokRange(t),
			Left:    left,
			Right:   right,
		}
	}
}

func (p *parser) parseApply() ast.Expr {
	fn := p.parseAtomPostfix(true)
	var args []ast.Expr
	for !p.blocked() && p.startsArgAtom() {
		args = append(args, p.parseAtomPostfix(false))
	}
	if len(args) == 0 {
		return fn
	}
	return &ast.Apply{
		Rng:  tt.Range{Start: fn.Range().Start, End: args[len(args)-1].Range().End},
		Fn:   fn,
		Args: args,
	}
}

// startsArgAtom reports whether the current token can begin a function
// argument. Block expressions (if, case, let, lambdas) need parens in
// argument position.
func (p *parser) startsArgAtom() bool {
	switch p.tok().Kind {
	case tokInt, tokFloat, tokString, tokChar,
		tokLowerIdent, tokUpperIdent, tokQualified, tokDotIdent,
		tokLParen, tokLBracket, tokLBrace:
		return true
	}
	return false
}

func (p *parser) parseAtomPostfix(allowBlock bool) ast.Expr {
	e := p.parseAtom(allowBlock)
	for p.at(tokDotIdent) && p.adjacent(e) {
		t := p.advance()
		e = &ast.FieldAccess{
			Rng:        tt.Range{Start: e.Range().Start, End: p.lastEnd},
			Target:     e,
			Field:      t.StrVal,
			FieldRange: tokRange(t),
		}
	}
	return e
}

// adjacent reports whether the current token touches the end of e with no
// whitespace, which distinguishes `r.field` from `r .field`.
func (p *parser) adjacent(e ast.Expr) bool {
	end := e.Range().End
	t := p.tok()
	return t.Line == end.Line && t.Col == end.Column
}

func (p *parser) parseAtom(allowBlock bool) ast.Expr {
	t := p.tok()
	switch t.Kind {
	case tokInt:
		p.advance()
		return &ast.IntLit{Rng: tokRange(t), Value: t.IntVal, Raw: t.Text}
	case tokFloat:
		p.advance()
		return &ast.FloatLit{Rng: tokRange(t), Value: t.FloatVal, Raw: t.Text}
	case tokString:
		p.advance()
		return &ast.StringLit{Rng: tokRange(t), Value: t.StrVal}
	case tokChar:
		p.advance()
		return &ast.CharLit{Rng: tokRange(t), Value: t.CharVal}
	case tokLowerIdent:
		p.advance()
		return &ast.VarRef{Rng: tokRange(t), Name: t.Text}
	case tokUpperIdent:
		p.advance()
		return &ast.VarRef{Rng: tokRange(t), Name: t.Text}
	case tokQualified:
		p.advance()
		segs := strings.Split(t.Text, ".")
		return &ast.VarRef{Rng: tokRange(t), Module: segs[:len(segs)-1], Name: segs[len(segs)-1]}
	case tokDotIdent:
		p.advance()
		return &ast.AccessFunc{Rng: tokRange(t), Field: t.StrVal}
	case tokOperator:
		if t.Text == "-" {
			return p.parseNegate()
		}
	case tokLParen:
		return p.parseParenExpr()
	case tokLBracket:
		return p.parseList()
	case tokLBrace:
		return p.parseRecord()
	case tokBackslash:
		if allowBlock {
			return p.parseLambda()
		}
	case tokKeyword:
		if allowBlock {
			switch t.Text {
			case "if":
				return p.parseIf()
			case "case":
				return p.parseCase()
			case "let":
				return p.parseLet()
			}
		}
	}
	p.errorf(t, "unexpected token %q in expression", t.Text)
	p.advance()
	return &ast.UnitLit{Rng: tokRange(t)}
}

func (p *parser) parseNegate() ast.Expr {
	t := p.advance() // '-'
	operand := p.parseAtomPostfix(false)
	return &ast.Negate{
		Rng:     tt.Range{Start: pos(t), End: operand.Range().End},
		Operand: operand,
	}
}

func (p *parser) parseParenExpr() ast.Expr {
	open := p.advance() // '('
	start := pos(open)

	if p.at(tokRParen) {
		p.advance()
		return &ast.UnitLit{Rng: p.spanFrom(start)}
	}

	// operator section `(+)`
	if (p.at(tokOperator) || p.at(tokPipe)) && p.toks[p.pos+1].Kind == tokRParen {
		opTok := p.advance()
		p.advance() // ')'
		return &ast.OpFunc{Rng: p.spanFrom(start), Op: opTok.Text}
	}

	prev := p.indent
	p.indent = 0
	first := p.parseExpr()
	if p.at(tokComma) {
		elems := []ast.Expr{first}
		for p.at(tokComma) {
			p.advance()
			elems = append(elems, p.parseExpr())
		}
		p.expect(tokRParen, "closing paren of tuple")
		p.indent = prev
		return &ast.TupleLit{Rng: p.spanFrom(start), Elements: elems}
	}
	p.expect(tokRParen, "closing paren")
	p.indent = prev
	return &ast.Paren{Rng: p.spanFrom(start), Inner: first}
}

func (p *parser) parseList() ast.Expr {
	open := p.advance() // '['
	start := pos(open)
	prev := p.indent
	p.indent = 0
	var elems []ast.Expr
	for !p.at(tokRBracket) && !p.at(tokEOF) {
		elems = append(elems, p.parseExpr())
		if p.at(tokComma) {
			p.advance()
			continue
		}
		break
	}
	p.expect(tokRBracket, "closing bracket of list")
	p.indent = prev
	return &ast.ListLit{Rng: p.spanFrom(start), Elements: elems}
}

func (p *parser) parseRecord() ast.Expr {
	open := p.advance() // '{'
	start := pos(open)
	prev := p.indent
	p.indent = 0
	defer func() { p.indent = prev }()

	if p.at(tokRBrace) {
		p.advance()
		return &ast.RecordLit{Rng: p.spanFrom(start)}
	}

	// `{ base | ... }` is an update; `{ name = ... }` is a literal.
	if p.at(tokLowerIdent) && p.toks[p.pos+1].Kind == tokPipe {
		baseTok := p.advance()
		p.advance() // '|'
		upd := &ast.RecordUpdate{Base: baseTok.Text, BaseRange: tokRange(baseTok)}
		upd.Fields = p.parseRecordFields()
		p.expect(tokRBrace, "closing brace of record update")
		upd.Rng = p.spanFrom(start)
		return upd
	}

	rec := &ast.RecordLit{Fields: p.parseRecordFields()}
	p.expect(tokRBrace, "closing brace of record")
	rec.Rng = p.spanFrom(start)
	return rec
}

func (p *parser) parseRecordFields() []*ast.RecordField {
	var fields []*ast.RecordField
	for {
		nameTok := p.expect(tokLowerIdent, "record field name")
		p.expect(tokEquals, "'=' after record field name")
		value := p.parseExpr()
		fields = append(fields, &ast.RecordField{
			Rng:       tt.Range{Start: pos(nameTok), End: value.Range().End},
			Name:      nameTok.Text,
			NameRange: tokRange(nameTok),
			Value:     value,
		})
		if p.at(tokComma) {
			p.advance()
			continue
		}
		return fields
	}
}

func (p *parser) parseLambda() ast.Expr {
	t := p.advance() // '\'
	start := pos(t)
	var params []ast.Pattern
	for !p.at(tokArrow) && !p.at(tokEOF) {
		params = append(params, p.parsePatternAtom())
	}
	p.expect(tokArrow, "'->' in lambda")
	body := p.parseExpr()
	return &ast.Lambda{Rng: tt.Range{Start: start, End: body.Range().End}, Params: params, Body: body}
}

func (p *parser) parseIf() ast.Expr {
	t := p.advance() // 'if'
	start := pos(t)
	cond := p.parseExpr()
	if !p.tok().isKeyword("then") {
		p.errorf(p.tok(), "expected 'then', found %q", p.tok().Text)
	} else {
		p.advance()
	}
	thenExpr := p.parseExpr()
	if !p.tok().isKeyword("else") {
		p.errorf(p.tok(), "expected 'else', found %q", p.tok().Text)
	} else {
		p.advance()
	}
	var elseExpr ast.Expr
	if p.tok().isKeyword("if") {
		elseExpr = p.parseIf()
	} else {
		elseExpr = p.parseExpr()
	}
	return &ast.If{
		Rng:  tt.Range{Start: start, End: elseExpr.Range().End},
		Cond: cond,
		Then: thenExpr,
		Else: elseExpr,
	}
}

func (p *parser) parseCase() ast.Expr {
	t := p.advance() // 'case'
	start := pos(t)
	subject := p.parseExpr()
	if !p.tok().isKeyword("of") {
		p.errorf(p.tok(), "expected 'of', found %q", p.tok().Text)
	} else {
		p.advance()
	}

	caseExpr := &ast.Case{Subject: subject}
	if p.blocked() {
		p.errorf(p.tok(), "expected case arms")
		caseExpr.Rng = p.spanFrom(start)
		return caseExpr
	}
	armCol := p.tok().Col
	for !p.at(tokEOF) && p.tok().Col == armCol && !p.blocked() {
		armStart := pos(p.tok())
		pat := p.parsePattern()
		p.expect(tokArrow, "'->' in case arm")
		prev := p.indent
		p.indent = armCol
		body := p.parseExpr()
		p.indent = prev
		caseExpr.Arms = append(caseExpr.Arms, &ast.CaseArm{
			Rng:     tt.Range{Start: armStart, End: body.Range().End},
			Pattern: pat,
			Body:    body,
		})
	}
	if len(caseExpr.Arms) == 0 {
		p.errorf(p.tok(), "case expression has no arms")
		caseExpr.Rng = p.spanFrom(start)
		return caseExpr
	}
	caseExpr.Rng = tt.Range{Start: start, End: caseExpr.Arms[len(caseExpr.Arms)-1].Rng.End}
	return caseExpr
}

func (p *parser) parseLet() ast.Expr {
	t := p.advance() // 'let'
	start := pos(t)
	letExpr := &ast.Let{}

	if p.tok().isKeyword("in") || p.blocked() {
		p.errorf(p.tok(), "let expression has no bindings")
	} else {
		bindCol := p.tok().Col
		for !p.at(tokEOF) && p.tok().Col == bindCol && !p.tok().isKeyword("in") {
			letExpr.Bindings = append(letExpr.Bindings, p.parseLetBinding(bindCol))
		}
	}
	if p.tok().isKeyword("in") {
		p.advance()
	} else {
		p.errorf(p.tok(), "expected 'in', found %q", p.tok().Text)
	}
	body := p.parseExpr()
	letExpr.Body = body
	letExpr.Rng = tt.Range{Start: start, End: body.Range().End}
	return letExpr
}

func (p *parser) parseLetBinding(bindCol int) *ast.LetBinding {
	startTok := p.tok()
	start := pos(startTok)
	b := &ast.LetBinding{}

	if startTok.Kind == tokLowerIdent {
		nameTok := p.advance()
		if p.at(tokColon) {
			// annotation inside let; skip to the definition on the next
			// line at the same column
			for !p.at(tokEOF) && !(p.tok().Col == bindCol && p.tok().Kind == tokLowerIdent && p.tok().Line > nameTok.Line) {
				if p.tok().Col < bindCol {
					break
				}
				p.advance()
			}
			if p.at(tokLowerIdent) && p.tok().Col == bindCol {
				nameTok = p.advance()
				start = pos(nameTok)
			}
		}
		b.Name = nameTok.Text
		for !p.at(tokEquals) && !p.at(tokEOF) && p.tok().Col > bindCol {
			b.Params = append(b.Params, p.parsePatternAtom())
		}
	} else {
		b.Pat = p.parsePatternAtom()
	}
	p.expect(tokEquals, "'=' in let binding")
	prev := p.indent
	p.indent = bindCol
	b.Body = p.parseExpr()
	p.indent = prev
	b.Rng = tt.Range{Start: start, End: b.Body.Range().End}
	return b
}

// ---------------------------------------------------------------------------
// Patterns

func (p *parser) parsePattern() ast.Pattern {
	pat := p.parsePatternCons()
	if p.tok().isKeyword("as") {
		p.advance()
		nameTok := p.expect(tokLowerIdent, "alias name after 'as'")
		pat = &ast.PAs{
			Rng:   tt.Range{Start: pat.Range().Start, End: p.lastEnd},
			Inner: pat,
			Name:  nameTok.Text,
		}
	}
	return pat
}

func (p *parser) parsePatternCons() ast.Pattern {
	head := p.parsePatternApp()
	if p.at(tokOperator) && p.tok().Text == "::" {
		p.advance()
		tail := p.parsePatternCons()
		return &ast.PCons{
			Rng:  tt.Range{Start: head.Range().Start, End: tail.Range().End},
			Head: head,
			Tail: tail,
		}
	}
	return head
}

func (p *parser) parsePatternApp() ast.Pattern {
	t := p.tok()
	if t.Kind == tokUpperIdent || t.Kind == tokQualified {
		p.advance()
		ctor := &ast.PCtor{}
		if t.Kind == tokQualified {
			segs := strings.Split(t.Text, ".")
			ctor.Module = segs[:len(segs)-1]
			ctor.Name = segs[len(segs)-1]
		} else {
			ctor.Name = t.Text
		}
		start := pos(t)
		for p.startsPatternAtom() {
			ctor.Args = append(ctor.Args, p.parsePatternAtom())
		}
		ctor.Rng = tt.Range{Start: start, End: p.lastEnd}
		return ctor
	}
	return p.parsePatternAtom()
}

func (p *parser) startsPatternAtom() bool {
	switch p.tok().Kind {
	case tokUnderscore, tokLowerIdent, tokUpperIdent, tokQualified,
		tokInt, tokFloat, tokString, tokChar,
		tokLParen, tokLBracket, tokLBrace:
		return true
	}
	return false
}

func (p *parser) parsePatternAtom() ast.Pattern {
	t := p.tok()
	switch t.Kind {
	case tokUnderscore:
		p.advance()
		return &ast.PWildcard{Rng: tokRange(t)}
	case tokLowerIdent:
		p.advance()
		return &ast.PVar{Rng: tokRange(t), Name: t.Text}
	case tokInt:
		p.advance()
		return &ast.PLiteral{Rng: tokRange(t), Value: &ast.IntLit{Rng: tokRange(t), Value: t.IntVal, Raw: t.Text}}
	case tokFloat:
		p.advance()
		return &ast.PLiteral{Rng: tokRange(t), Value: &ast.FloatLit{Rng: tokRange(t), Value: t.FloatVal, Raw: t.Text}}
	case tokString:
		p.advance()
		return &ast.PLiteral{Rng: tokRange(t), Value: &ast.StringLit{Rng: tokRange(t), Value: t.StrVal}}
	case tokChar:
		p.advance()
		return &ast.PLiteral{Rng: tokRange(t), Value: &ast.CharLit{Rng: tokRange(t), Value: t.CharVal}}
	case tokUpperIdent, tokQualified:
		p.advance()
		ctor := &ast.PCtor{Rng: tokRange(t)}
		if t.Kind == tokQualified {
			segs := strings.Split(t.Text, ".")
			ctor.Module = segs[:len(segs)-1]
			ctor.Name = segs[len(segs)-1]
		} else {
			ctor.Name = t.Text
		}
		return ctor
	case tokLParen:
		return p.parseParenPattern()
	case tokLBracket:
		return p.parseListPattern()
	case tokLBrace:
		return p.parseRecordPattern()
	}
	p.errorf(t, "unexpected token %q in pattern", t.Text)
	p.advance()
	return &ast.PWildcard{Rng: tokRange(t)}
}

func (p *parser) parseParenPattern() ast.Pattern {
	open := p.advance() // '('
	start := pos(open)
	if p.at(tokRParen) {
		p.advance()
		return &ast.PUnit{Rng: p.spanFrom(start)}
	}
	first := p.parsePattern()
	if p.at(tokComma) {
		elems := []ast.Pattern{first}
		for p.at(tokComma) {
			p.advance()
			elems = append(elems, p.parsePattern())
		}
		p.expect(tokRParen, "closing paren of tuple pattern")
		return &ast.PTuple{Rng: p.spanFrom(start), Elements: elems}
	}
	p.expect(tokRParen, "closing paren of pattern")
	return &ast.PParen{Rng: p.spanFrom(start), Inner: first}
}

func (p *parser) parseListPattern() ast.Pattern {
	open := p.advance() // '['
	start := pos(open)
	var elems []ast.Pattern
	for !p.at(tokRBracket) && !p.at(tokEOF) {
		elems = append(elems, p.parsePattern())
		if p.at(tokComma) {
			p.advance()
			continue
		}
		break
	}
	p.expect(tokRBracket, "closing bracket of list pattern")
	return &ast.PList{Rng: p.spanFrom(start), Elements: elems}
}

func (p *parser) parseRecordPattern() ast.Pattern {
	open := p.advance() // '{'
	start := pos(open)
	var fields []string
	for !p.at(tokRBrace) && !p.at(tokEOF) {
		fields = append(fields, p.expect(tokLowerIdent, "record pattern field").Text)
		if p.at(tokComma) {
			p.advance()
			continue
		}
		break
	}
	p.expect(tokRBrace, "closing brace of record pattern")
	return &ast.PRecord{Rng: p.spanFrom(start), Fields: fields}
}
