// Package regexsyntax is the character-oriented surface parser for the
// regex grammar named in the core spec's external interfaces: a minimal
// parenthesized grammar over the same symbol alphabet the core automaton
// package works with. It is a thin wrapper around automaton.Regex's smart
// constructors, the way the core spec says the surface parser should be.
package regexsyntax

import "github.com/dsonic0912/automaton-fsm/automaton"

// tokenKind distinguishes the six token shapes this grammar's tokenizer
// produces, mirroring the shape of Toasa-regexp's token.TokenType
// (_examples/Toasa-regexp/token/token.go) but dropping its TK_CONCAT
// token: this grammar has no explicit concatenation operator (juxtaposition
// is concatenation), so there is nothing for the tokenizer to insert.
type tokenKind int

const (
	tokSymbol tokenKind = iota
	tokUnion
	tokStar
	tokLParen
	tokRParen
	tokEOF
)

type token struct {
	kind  tokenKind
	value automaton.Symbol
}

// tokenize turns expr into a token stream. Any rune that is not one of the
// grammar's punctuation marks is treated as a symbol token; the parser is
// responsible for rejecting symbols outside the caller's alphabet.
func tokenize(expr string) []token {
	var tokens []token
	for _, r := range expr {
		switch r {
		case '(':
			tokens = append(tokens, token{kind: tokLParen})
		case ')':
			tokens = append(tokens, token{kind: tokRParen})
		case '|':
			tokens = append(tokens, token{kind: tokUnion})
		case '*':
			tokens = append(tokens, token{kind: tokStar})
		default:
			tokens = append(tokens, token{kind: tokSymbol, value: r})
		}
	}
	tokens = append(tokens, token{kind: tokEOF})
	return tokens
}
