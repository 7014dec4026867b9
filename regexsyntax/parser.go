package regexsyntax

import "github.com/dsonic0912/automaton-fsm/automaton"

// Grammar (core spec §6):
//
//	expr   := concat ('|' concat)*
//	concat := atom+
//	atom   := '(' expr ')' | symbol | atom '*'
//
// '*' binds tighter than concatenation, which binds tighter than '|'.
// Recursive-descent structure follows that precedence directly, the way
// Toasa-regexp's tokenizer/generator pair (token.Tokenize feeding
// nfa.Generator.gen) walks a flat token stream one production at a time.
type parser struct {
	tokens   []token
	pos      int
	alphabet map[automaton.Symbol]bool
}

func (p *parser) peek() token { return p.tokens[p.pos] }

func (p *parser) next() token {
	t := p.tokens[p.pos]
	if t.kind != tokEOF {
		p.pos++
	}
	return t
}

// Parse parses expr against the grammar above, rejecting any symbol not a
// member of alphabet, and returns the Regex it denotes.
func Parse(alphabet []automaton.Symbol, expr string) (*automaton.Regex, error) {
	set := make(map[automaton.Symbol]bool, len(alphabet))
	for _, s := range alphabet {
		set[s] = true
	}
	p := &parser{tokens: tokenize(expr), alphabet: set}
	r, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if p.peek().kind != tokEOF {
		return nil, automaton.NewMalformedInputError("unexpected trailing input in regex")
	}
	return r, nil
}

func (p *parser) parseExpr() (*automaton.Regex, error) {
	left, err := p.parseConcat()
	if err != nil {
		return nil, err
	}
	for p.peek().kind == tokUnion {
		p.next()
		right, err := p.parseConcat()
		if err != nil {
			return nil, err
		}
		left = automaton.Union(left, right)
	}
	return left, nil
}

func startsAtom(t token) bool {
	return t.kind == tokSymbol || t.kind == tokLParen
}

func (p *parser) parseConcat() (*automaton.Regex, error) {
	if !startsAtom(p.peek()) {
		return nil, automaton.NewMalformedInputError("expected at least one atom in a concatenation")
	}
	result, err := p.parseAtom()
	if err != nil {
		return nil, err
	}
	for startsAtom(p.peek()) {
		next, err := p.parseAtom()
		if err != nil {
			return nil, err
		}
		result = automaton.Concat(result, next)
	}
	return result, nil
}

func (p *parser) parseAtom() (*automaton.Regex, error) {
	var base *automaton.Regex
	tok := p.next()
	switch tok.kind {
	case tokLParen:
		inner, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if p.peek().kind != tokRParen {
			return nil, automaton.NewMalformedInputError("unmatched '(' in regex")
		}
		p.next()
		base = inner
	case tokSymbol:
		if !p.alphabet[tok.value] {
			return nil, automaton.NewMalformedInputError("regex symbol outside alphabet").
				WithContext("symbol", string(tok.value))
		}
		base = automaton.Lit([]automaton.Symbol{tok.value})
	default:
		return nil, automaton.NewMalformedInputError("expected '(' or a symbol")
	}
	for p.peek().kind == tokStar {
		p.next()
		base = automaton.Star(base)
	}
	return base, nil
}
