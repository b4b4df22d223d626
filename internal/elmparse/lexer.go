// Package elmparse turns Elm source text into the expression model of
// internal/ast, with 1-based line/column ranges on every node. The
// simplification engine never looks at this package's internals; it
// consumes the finished tree only.
package elmparse

import (
	"fmt"
	"strconv"
	"strings"
)

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokLowerIdent
	tokUpperIdent
	tokQualified // Module.Path.name or Module.Path.Ctor
	tokDotIdent  // .field
	tokInt
	tokFloat
	tokString
	tokChar
	tokOperator
	tokLParen
	tokRParen
	tokLBracket
	tokRBracket
	tokLBrace
	tokRBrace
	tokComma
	tokEquals
	tokArrow
	tokBackslash
	tokPipe
	tokColon
	tokUnderscore
	tokKeyword
)

type token struct {
	Kind    tokenKind
	Text    string // raw text; for tokQualified the full dotted spelling
	Line    int
	Col     int
	EndCol  int
	EndLine int // set only for multi-line tokens; zero means Line

	IntVal   int64
	FloatVal float64
	StrVal   string
	CharVal  rune
}

func (t token) endLine() int {
	if t.EndLine != 0 {
		return t.EndLine
	}
	return t.Line
}

func (t token) isKeyword(kw string) bool {
	return t.Kind == tokKeyword && t.Text == kw
}

var keywords = map[string]bool{
	"module": true, "exposing": true, "import": true, "as": true,
	"type": true, "alias": true, "port": true,
	"if": true, "then": true, "else": true,
	"case": true, "of": true, "let": true, "in": true,
}

// operator characters; multi-character operators are matched greedily.
const opChars = "+-*/=<>|&^:."

var multiOps = []string{
	"++", "::", "//", "||", "&&", "==", "/=", "<=", ">=",
	"<|", "|>", "<<", ">>", "->",
}

type lexer struct {
	src   string
	pos   int
	line  int
	col   int
	perrs []error
}

func newLexer(src string) *lexer {
	return &lexer{src: src, line: 1, col: 1}
}

func (l *lexer) errorf(line, col int, format string, args ...interface{}) {
	l.perrs = append(l.perrs, fmt.Errorf("%d:%d: %s", line, col, fmt.Sprintf(format, args...)))
}

func (l *lexer) peekByte() byte {
	if l.pos >= len(l.src) {
		return 0
	}
	return l.src[l.pos]
}

func (l *lexer) peekByteAt(off int) byte {
	if l.pos+off >= len(l.src) {
		return 0
	}
	return l.src[l.pos+off]
}

func (l *lexer) advance() byte {
	c := l.src[l.pos]
	l.pos++
	if c == '\n' {
		l.line++
		l.col = 1
	} else {
		l.col++
	}
	return c
}

func (l *lexer) skipSpaceAndComments() {
	for l.pos < len(l.src) {
		c := l.peekByte()
		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			l.advance()
		case c == '-' && l.peekByteAt(1) == '-':
			for l.pos < len(l.src) && l.peekByte() != '\n' {
				l.advance()
			}
		case c == '{' && l.peekByteAt(1) == '-':
			depth := 0
			for l.pos < len(l.src) {
				if l.peekByte() == '{' && l.peekByteAt(1) == '-' {
					depth++
					l.advance()
					l.advance()
				} else if l.peekByte() == '-' && l.peekByteAt(1) == '}' {
					depth--
					l.advance()
					l.advance()
					if depth == 0 {
						break
					}
				} else {
					l.advance()
				}
			}
		default:
			return
		}
	}
}

func isLower(c byte) bool { return c >= 'a' && c <= 'z' }
func isUpper(c byte) bool { return c >= 'A' && c <= 'Z' }
func isDigit(c byte) bool { return c >= '0' && c <= '9' }
func isIdentChar(c byte) bool {
	return isLower(c) || isUpper(c) || isDigit(c) || c == '_'
}

// tokenize lexes the whole input. Lexing never aborts; malformed pieces
// are recorded and skipped so the parser sees as much as possible.
func (l *lexer) tokenize() []token {
	var toks []token
	for {
		l.skipSpaceAndComments()
		if l.pos >= len(l.src) {
			toks = append(toks, token{Kind: tokEOF, Line: l.line, Col: l.col})
			return toks
		}
		toks = append(toks, l.next())
	}
}

func (l *lexer) next() token {
	line, col := l.line, l.col
	c := l.peekByte()

	switch {
	case isLower(c) || c == '_':
		return l.lexLowerIdent(line, col)
	case isUpper(c):
		return l.lexUpperOrQualified(line, col)
	case isDigit(c):
		return l.lexNumber(line, col)
	case c == '"':
		return l.lexString(line, col)
	case c == '\'':
		return l.lexChar(line, col)
	}

	switch c {
	case '(':
		l.advance()
		return token{Kind: tokLParen, Text: "(", Line: line, Col: col, EndCol: col + 1}
	case ')':
		l.advance()
		return token{Kind: tokRParen, Text: ")", Line: line, Col: col, EndCol: col + 1}
	case '[':
		l.advance()
		return token{Kind: tokLBracket, Text: "[", Line: line, Col: col, EndCol: col + 1}
	case ']':
		l.advance()
		return token{Kind: tokRBracket, Text: "]", Line: line, Col: col, EndCol: col + 1}
	case '{':
		l.advance()
		return token{Kind: tokLBrace, Text: "{", Line: line, Col: col, EndCol: col + 1}
	case '}':
		l.advance()
		return token{Kind: tokRBrace, Text: "}", Line: line, Col: col, EndCol: col + 1}
	case ',':
		l.advance()
		return token{Kind: tokComma, Text: ",", Line: line, Col: col, EndCol: col + 1}
	case '\\':
		l.advance()
		return token{Kind: tokBackslash, Text: "\\", Line: line, Col: col, EndCol: col + 1}
	}

	if c == '.' && isLower(l.peekByteAt(1)) {
		l.advance()
		start := l.pos
		for l.pos < len(l.src) && isIdentChar(l.peekByte()) {
			l.advance()
		}
		name := l.src[start:l.pos]
		return token{Kind: tokDotIdent, Text: "." + name, StrVal: name, Line: line, Col: col, EndCol: l.col}
	}

	if strings.IndexByte(opChars, c) >= 0 {
		return l.lexOperator(line, col)
	}

	l.errorf(line, col, "unexpected character %q", string(c))
	l.advance()
	return l.emptyOperator(line, col)
}

func (l *lexer) emptyOperator(line, col int) token {
	return token{Kind: tokOperator, Text: "?", Line: line, Col: col, EndCol: col + 1}
}

func (l *lexer) lexLowerIdent(line, col int) token {
	start := l.pos
	for l.pos < len(l.src) && isIdentChar(l.peekByte()) {
		l.advance()
	}
	text := l.src[start:l.pos]
	if text == "_" {
		return token{Kind: tokUnderscore, Text: text, Line: line, Col: col, EndCol: l.col}
	}
	if keywords[text] {
		return token{Kind: tokKeyword, Text: text, Line: line, Col: col, EndCol: l.col}
	}
	return token{Kind: tokLowerIdent, Text: text, Line: line, Col: col, EndCol: l.col}
}

// lexUpperOrQualified lexes `Upper`, `Upper.Upper...`, and the qualified
// value forms `Upper.lower` / `Upper.Upper`. Qualification requires the
// dot to be immediately adjacent, as in source.
func (l *lexer) lexUpperOrQualified(line, col int) token {
	start := l.pos
	for l.pos < len(l.src) && isIdentChar(l.peekByte()) {
		l.advance()
	}
	for l.peekByte() == '.' && (isLower(l.peekByteAt(1)) || isUpper(l.peekByteAt(1))) {
		l.advance() // '.'
		for l.pos < len(l.src) && isIdentChar(l.peekByte()) {
			l.advance()
		}
	}
	text := l.src[start:l.pos]
	if !strings.Contains(text, ".") {
		return token{Kind: tokUpperIdent, Text: text, Line: line, Col: col, EndCol: l.col}
	}
	return token{Kind: tokQualified, Text: text, Line: line, Col: col, EndCol: l.col}
}

func (l *lexer) lexNumber(line, col int) token {
	start := l.pos
	if l.peekByte() == '0' && (l.peekByteAt(1) == 'x' || l.peekByteAt(1) == 'X') {
		l.advance()
		l.advance()
		for l.pos < len(l.src) && isHexDigit(l.peekByte()) {
			l.advance()
		}
		text := l.src[start:l.pos]
		v, err := strconv.ParseInt(text[2:], 16, 64)
		if err != nil {
			l.errorf(line, col, "bad hex literal %q", text)
		}
		return token{Kind: tokInt, Text: text, IntVal: v, Line: line, Col: col, EndCol: l.col}
	}

	for l.pos < len(l.src) && isDigit(l.peekByte()) {
		l.advance()
	}
	isFloat := false
	if l.peekByte() == '.' && isDigit(l.peekByteAt(1)) {
		isFloat = true
		l.advance()
		for l.pos < len(l.src) && isDigit(l.peekByte()) {
			l.advance()
		}
	}
	if l.peekByte() == 'e' || l.peekByte() == 'E' {
		off := 1
		if l.peekByteAt(1) == '+' || l.peekByteAt(1) == '-' {
			off = 2
		}
		if isDigit(l.peekByteAt(off)) {
			isFloat = true
			for i := 0; i < off; i++ {
				l.advance()
			}
			for l.pos < len(l.src) && isDigit(l.peekByte()) {
				l.advance()
			}
		}
	}
	text := l.src[start:l.pos]
	if isFloat {
		v, err := strconv.ParseFloat(text, 64)
		if err != nil {
			l.errorf(line, col, "bad float literal %q", text)
		}
		return token{Kind: tokFloat, Text: text, FloatVal: v, Line: line, Col: col, EndCol: l.col}
	}
	v, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		l.errorf(line, col, "bad int literal %q", text)
	}
	return token{Kind: tokInt, Text: text, IntVal: v, Line: line, Col: col, EndCol: l.col}
}

func isHexDigit(c byte) bool {
	return isDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

func (l *lexer) lexString(line, col int) token {
	if l.peekByteAt(1) == '"' && l.peekByteAt(2) == '"' {
		return l.lexTripleString(line, col)
	}
	l.advance() // opening quote
	var sb strings.Builder
	for l.pos < len(l.src) {
		c := l.peekByte()
		if c == '"' {
			l.advance()
			return token{Kind: tokString, Text: sb.String(), StrVal: sb.String(), Line: line, Col: col, EndCol: l.col}
		}
		if c == '\n' {
			break
		}
		if c == '\\' {
			l.advance()
			sb.WriteRune(l.unescape())
			continue
		}
		sb.WriteByte(l.advance())
	}
	l.errorf(line, col, "unterminated string literal")
	return token{Kind: tokString, Text: sb.String(), StrVal: sb.String(), Line: line, Col: col, EndCol: l.col}
}

// lexTripleString scans a `"""..."""` literal. Unlike the plain form it
// may span lines and hold unescaped quotes and newlines.
func (l *lexer) lexTripleString(line, col int) token {
	for i := 0; i < 3; i++ {
		l.advance()
	}
	var sb strings.Builder
	for l.pos < len(l.src) {
		if l.peekByte() == '"' && l.peekByteAt(1) == '"' && l.peekByteAt(2) == '"' {
			for i := 0; i < 3; i++ {
				l.advance()
			}
			return token{Kind: tokString, Text: sb.String(), StrVal: sb.String(),
				Line: line, Col: col, EndLine: l.line, EndCol: l.col}
		}
		if l.peekByte() == '\\' {
			l.advance()
			sb.WriteRune(l.unescape())
			continue
		}
		sb.WriteByte(l.advance())
	}
	l.errorf(line, col, "unterminated string literal")
	return token{Kind: tokString, Text: sb.String(), StrVal: sb.String(),
		Line: line, Col: col, EndLine: l.line, EndCol: l.col}
}

func (l *lexer) lexChar(line, col int) token {
	l.advance() // opening quote
	var v rune
	if l.peekByte() == '\\' {
		l.advance()
		v = l.unescape()
	} else if l.pos < len(l.src) {
		v = rune(l.advance())
	}
	if l.peekByte() == '\'' {
		l.advance()
	} else {
		l.errorf(line, col, "unterminated character literal")
	}
	return token{Kind: tokChar, CharVal: v, Text: string(v), Line: line, Col: col, EndCol: l.col}
}

func (l *lexer) unescape() rune {
	if l.pos >= len(l.src) {
		return 0
	}
	c := l.advance()
	switch c {
	case 'n':
		return '\n'
	case 't':
		return '\t'
	case 'r':
		return '\r'
	case '0':
		return 0
	case 'u':
		// \u{XXXX}
		if l.peekByte() == '{' {
			l.advance()
			start := l.pos
			for l.pos < len(l.src) && l.peekByte() != '}' {
				l.advance()
			}
			hex := l.src[start:l.pos]
			if l.peekByte() == '}' {
				l.advance()
			}
			v, err := strconv.ParseInt(hex, 16, 32)
			if err == nil {
				return rune(v)
			}
		}
		return 'u'
	default:
		return rune(c)
	}
}

func (l *lexer) lexOperator(line, col int) token {
	rest := l.src[l.pos:]
	for _, op := range multiOps {
		if strings.HasPrefix(rest, op) {
			l.advance()
			l.advance()
			return l.operatorToken(op, line, col)
		}
	}
	c := l.advance()
	return l.operatorToken(string(c), line, col)
}

func (l *lexer) operatorToken(op string, line, col int) token {
	kind := tokOperator
	switch op {
	case "=":
		kind = tokEquals
	case "->":
		kind = tokArrow
	case "|":
		kind = tokPipe
	case ":":
		kind = tokColon
	}
	return token{Kind: kind, Text: op, Line: line, Col: col, EndCol: col + len(op)}
}
