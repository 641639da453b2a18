// Package parser implements a handwritten scanner and recursive-descent,
// Pratt-style parser for the term language's concrete syntax, producing
// de-Bruijn-indexed terms directly -- name resolution against the lexical
// scope happens during parsing, with no separate AST pass.
package parser

import "fmcore/internal/term"

// Parser walks a flat token stream and builds terms.
type Parser struct {
	tokens  []Token
	current int
	errors  []ParseError
}

// NewParser builds a parser over an already-scanned token stream.
func NewParser(tokens []Token) *Parser {
	return &Parser{tokens: tokens}
}

// Def is one top-level `name : type body` declaration, parsed but not yet
// installed in a module.
type Def struct {
	Name string
	Type *term.Term
	Body *term.Term
}

// ParseModule parses a full source file: a sequence of definitions until
// EOF. It returns whatever definitions were parsed alongside a
// *NoParseError if any syntax error occurred.
func ParseModule(source string) ([]Def, error) {
	scanner := NewScanner(source)
	tokens := scanner.ScanTokens()

	p := NewParser(tokens)
	for _, se := range scanner.Errors() {
		p.errors = append(p.errors, ParseError{Message: se.Message, Position: se.Position})
	}

	var defs []Def
	for !p.isAtEnd() {
		defs = append(defs, p.parseDefinition())
	}

	if len(p.errors) > 0 {
		return defs, &NoParseError{Errors: p.errors}
	}
	return defs, nil
}

// ParseTerm parses a single standalone term (used by the REPL for bare
// expressions) and requires the whole input to be consumed.
func ParseTerm(source string) (*term.Term, error) {
	scanner := NewScanner(source)
	tokens := scanner.ScanTokens()

	p := NewParser(tokens)
	for _, se := range scanner.Errors() {
		p.errors = append(p.errors, ParseError{Message: se.Message, Position: se.Position})
	}

	t := p.parseTerm(nil)
	if len(p.errors) > 0 {
		return nil, &NoParseError{Errors: p.errors}
	}
	if !p.isAtEnd() {
		return nil, &ExpectedEOFError{At: p.peek().Position}
	}
	return t, nil
}

func (p *Parser) parseDefinition() Def {
	nameTok := p.consume(IDENTIFIER, "expected definition name")
	p.consume(COLON, "expected ':' after definition name")
	declType := p.parseDeclTerm(nil)
	body := p.parseTerm(nil)
	return Def{Name: nameTok.Lexeme, Type: declType, Body: body}
}

// parseDeclTerm parses a definition's declared type. The grammar gives a
// definition's type and body no delimiter between them, so the type is
// parsed only up to the first line break that falls outside every '('/')'
// and '<'/'>' pair, leaving the body's line free to start with '(' or '<'
// without being mistaken for an application of the type. Inside brackets
// the type may still span multiple lines.
func (p *Parser) parseDeclTerm(scope Scope) *term.Term {
	all, end, depth := p.tokens, p.current, 0
	for ; all[end].Type != EOF && (end == p.current || depth > 0 || !all[end].NewlineBefore); end++ {
		switch all[end].Type {
		case LEFT_PAREN, LESS:
			depth++
		case RIGHT_PAREN, GREATER:
			depth--
		}
	}
	p.tokens = append(all[:end:end], Token{Type: EOF, Position: all[end].Position})
	defer func() { p.tokens = all }()

	t := p.parseAtom(scope)

	for !p.peek().NewlineBefore && (p.check(LEFT_PAREN) || p.check(LESS) || p.check(PIPE)) {
		t = p.parseApplication(scope, t)
	}

	if !p.peek().NewlineBefore && p.match(ARROW) {
		bindType := term.Shift(1, 0, t)
		body := p.parseTerm(scope.push("", ""))
		t = term.NewAll(false, "", "", bindType, body)
	}

	if !p.peek().NewlineBefore && p.match(DOUBLE_COLON) {
		typ := p.parseTerm(scope)
		t = term.NewAnn(false, typ, t)
	}

	return t
}

// parseTerm implements `term ::= atom { application } ['->' term] ['::' term]`.
func (p *Parser) parseTerm(scope Scope) *term.Term {
	t := p.parseAtom(scope)

	for p.check(LEFT_PAREN) || p.check(LESS) || p.check(PIPE) {
		t = p.parseApplication(scope, t)
	}

	if p.match(ARROW) {
		// Non-dependent arrow desugars to a self-irrelevant All: the
		// bind-type is shifted by 1 so its indices still line up once an
		// (unused) self binder is notionally in scope around it.
		bindType := term.Shift(1, 0, t)
		body := p.parseTerm(scope.push("", ""))
		t = term.NewAll(false, "", "", bindType, body)
	}

	if p.match(DOUBLE_COLON) {
		typ := p.parseTerm(scope)
		t = term.NewAnn(false, typ, t)
	}

	return t
}

// parseApplication implements the three spellings of `application`: a
// relevant argument in parens, an erased argument in angle brackets, or a
// relevant argument introduced by a bar and closed with a semicolon.
func (p *Parser) parseApplication(scope Scope, fn *term.Term) *term.Term {
	switch {
	case p.match(LEFT_PAREN):
		arg := p.parseTerm(scope)
		p.consume(RIGHT_PAREN, "expected ')' to close application")
		return term.NewApp(false, fn, arg)
	case p.match(LESS):
		arg := p.parseTerm(scope)
		p.consume(GREATER, "expected '>' to close erased application")
		return term.NewApp(true, fn, arg)
	case p.match(PIPE):
		arg := p.parseTerm(scope)
		p.consume(SEMICOLON, "expected ';' to close application")
		return term.NewApp(false, fn, arg)
	default:
		return fn
	}
}

// parseAtom implements `atom ::= all | lam | let | 'Type' | var | '(' term ')'`.
func (p *Parser) parseAtom(scope Scope) *term.Term {
	if p.match(TYPE) {
		return term.NewTyp()
	}
	if p.match(LET) {
		return p.parseLet(scope)
	}
	if p.check(IDENTIFIER) {
		save := p.current
		name := p.advance().Lexeme
		if (p.check(LEFT_PAREN) || p.check(LESS)) && p.looksLikeBinder() {
			return p.parseAll(scope, name)
		}
		p.current = save
		p.advance()
		return resolve(scope, name)
	}
	if p.check(LEFT_PAREN) || p.check(LESS) {
		return p.parseParenOrLam(scope)
	}
	p.errorAtCurrent("expected term")
	p.advance()
	return term.NewTyp()
}

// looksLikeBinder peeks past the bracket at p.current (without consuming
// anything) to tell a self-named binder `name(bind : ...` / `name<bind : ...`
// apart from a plain application `name(arg)` / `name<arg>`: a binder always
// has a ':' immediately, or after one optional bind identifier.
func (p *Parser) looksLikeBinder() bool {
	i := p.current + 1
	if i < len(p.tokens) && p.tokens[i].Type == IDENTIFIER {
		i++
	}
	return i < len(p.tokens) && p.tokens[i].Type == COLON
}

// parseAll parses the self-named form `self(bind : bindType) -> body` (or
// its erased spelling with angle brackets), after the leading identifier
// has already been consumed as the self name.
func (p *Parser) parseAll(scope Scope, self string) *term.Term {
	erased := p.check(LESS)
	p.advance() // '(' or '<'

	bind := ""
	if p.check(IDENTIFIER) {
		bind = p.advance().Lexeme
	}
	p.consume(COLON, "expected ':' in dependent function type")
	bindType := p.parseTerm(scope.push(self))

	if erased {
		p.consume(GREATER, "expected '>' to close erased binder")
	} else {
		p.consume(RIGHT_PAREN, "expected ')' to close binder")
	}
	p.consume(ARROW, "expected '->' after binder")

	body := p.parseTerm(scope.push(bind, self))
	return term.NewAll(erased, self, bind, bindType, body)
}

// parseParenOrLam handles a bracket with no leading self-name: it may
// still be an All with an empty self-name (if a ':' follows), a Lam (if
// '=>' follows the close bracket), or a plain grouped term.
func (p *Parser) parseParenOrLam(scope Scope) *term.Term {
	erased := p.check(LESS)
	p.advance() // '(' or '<'
	save := p.current

	name := ""
	if p.check(IDENTIFIER) {
		name = p.advance().Lexeme
	}

	if p.check(COLON) {
		p.advance()
		bindType := p.parseTerm(scope.push(""))
		if erased {
			p.consume(GREATER, "expected '>' to close erased binder")
		} else {
			p.consume(RIGHT_PAREN, "expected ')' to close binder")
		}
		p.consume(ARROW, "expected '->' after binder")
		body := p.parseTerm(scope.push(name, ""))
		return term.NewAll(erased, "", name, bindType, body)
	}

	if p.check(RIGHT_PAREN) || p.check(GREATER) {
		if erased {
			p.consume(GREATER, "expected '>' to close binder")
		} else {
			p.consume(RIGHT_PAREN, "expected ')' to close binder")
		}
		if p.match(FAT_ARROW) {
			body := p.parseTerm(scope.push(name))
			return term.NewLam(erased, name, body)
		}
		if name == "" {
			p.errorAtCurrent("expected term")
			return term.NewTyp()
		}
		return resolve(scope, name)
	}

	p.current = save
	inner := p.parseTerm(scope)
	if erased {
		p.consume(GREATER, "expected '>' to close group")
	} else {
		p.consume(RIGHT_PAREN, "expected ')' to close group")
	}
	return inner
}

// parseLet implements `let ::= 'let' name '=' term [';'] term`.
func (p *Parser) parseLet(scope Scope) *term.Term {
	name := ""
	if tok := p.consume(IDENTIFIER, "expected name after 'let'"); tok.Type != ILLEGAL {
		name = tok.Lexeme
	}
	p.consume(EQUAL, "expected '=' in let binding")
	expr := p.parseTerm(scope)
	p.match(SEMICOLON)
	body := p.parseTerm(scope.push(name))
	return term.NewLet(name, expr, body)
}
