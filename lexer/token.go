// SPDX-License-Identifier: MIT
package lexer

type (
	// Kind identifies the lexical class of a Token.
	Kind uint8

	// Token is an atomic lexical unit cut from the source text.
	//
	// Val is only populated for KindIdent tokens realized by Consume; it is
	// a zero-copy slice of the original source string. Grammar matching
	// compares kinds only, never Val.
	Token struct {
		Val  string
		Kind Kind
	}
)

// Token kinds.
const (
	KindOpenTagStart  Kind = iota // '<'
	KindCloseTagStart             // "</"
	KindTagEnd                    // '>'
	KindQuote                     // '"'
	KindEquals                    // '='
	KindIdent                     // alphanumeric run, e.g. 'h1'
	KindEOF                       // end of input
)

// String describes a Kind for diagnostics.
func (k Kind) String() string {
	switch k {
	case KindOpenTagStart:
		return "'<'"
	case KindCloseTagStart:
		return "'</'"
	case KindTagEnd:
		return "'>'"
	case KindQuote:
		return `'"'`
	case KindEquals:
		return "'='"
	case KindIdent:
		return "identifier"
	case KindEOF:
		return "EOF"
	default:
		return "unknown"
	}
}
