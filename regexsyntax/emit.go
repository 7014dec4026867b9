package regexsyntax

import (
	"strings"

	"github.com/dsonic0912/automaton-fsm/automaton"
)

// Emit renders r in the fully-parenthesized surface grammar: every subterm
// is wrapped in parentheses, so the result is unambiguous without relying
// on operator precedence (core spec §6, §9: "keep the emitter fully
// parenthesized").
//
// The grammar has no epsilon production, so a Literal with zero symbols
// (the empty word) has no representation in it; Emit renders that case as
// an empty parenthesized group, which Parse will not accept back. That
// asymmetry is a property of the external grammar itself, not of this
// emitter: callers building regexes that must round-trip through this
// surface syntax should avoid epsilon subterms.
func Emit(r *automaton.Regex) string {
	switch r.Kind {
	case automaton.RegexLiteral:
		return emitLiteral(r.Word)
	case automaton.RegexConcat:
		return "(" + Emit(r.Left) + Emit(r.Right) + ")"
	case automaton.RegexUnion:
		return "(" + Emit(r.Left) + "|" + Emit(r.Right) + ")"
	case automaton.RegexStar:
		return "(" + Emit(r.Left) + "*)"
	default:
		return ""
	}
}

func emitLiteral(word []automaton.Symbol) string {
	switch len(word) {
	case 0:
		return "()"
	case 1:
		return "(" + string(word[0]) + ")"
	default:
		var b strings.Builder
		b.WriteByte('(')
		for _, s := range word {
			b.WriteByte('(')
			b.WriteRune(s)
			b.WriteByte(')')
		}
		b.WriteByte(')')
		return b.String()
	}
}
