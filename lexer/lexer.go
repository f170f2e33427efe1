// SPDX-License-Identifier: MIT

// Package lexer cuts a markup source string into Tokens on demand.
//
// The Lexer is pull-based: the caller peeks at the next token's kind and
// then consumes it, or extracts a raw text span with TextTill. All returned
// substrings are slices of the original source; nothing is copied.
package lexer

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/sirupsen/logrus"
)

type (
	// Lexer holds the unconsumed remainder of a source string.
	//
	// The remainder only ever shrinks: every successful consume-style
	// operation advances the cursor, and Peek permanently discards leading
	// whitespace even though it leaves the token itself unconsumed.
	Lexer struct {
		logger logrus.FieldLogger

		// src is the unconsumed remainder of the source.
		src string

		debug bool
	}

	// Option defines the Lexer functional option type.
	Option func(*Lexer)
)

// UnknownLexemeError reports a character that cannot start any token.
//
// Remainder is the unconsumed source beginning at the offending character.
type UnknownLexemeError struct {
	Remainder string
}

// Error implements the error interface.
func (e *UnknownLexemeError) Error() string {
	return fmt.Sprintf("unknown lexeme at: %q", e.Remainder)
}

// New creates a Lexer over the given source string.
func New(source string, opts ...Option) *Lexer {
	l := &Lexer{
		logger: logrus.New(),
		src:    source,
	}

	for _, opt := range opts {
		opt(l)
	}

	return l
}

// WithLogger configures the logger option.
func WithLogger(logger logrus.FieldLogger) Option { return func(l *Lexer) { l.logger = logger } }

// WithDebug configures the debug option.
func WithDebug(debug bool) Option { return func(l *Lexer) { l.debug = debug } }

// Peek classifies the next token without consuming it.
//
// Leading whitespace is trimmed as a side effect; repeated calls without an
// intervening Consume return the same kind. Identifier tokens carry an empty
// Val here, Consume realizes the actual text. End of input yields KindEOF,
// never an error.
func (l *Lexer) Peek() (Token, error) {
	l.src = strings.TrimLeftFunc(l.src, unicode.IsSpace)
	if l.src == "" {
		return Token{Kind: KindEOF}, nil
	}

	r, size := utf8.DecodeRuneInString(l.src)
	switch {
	case r == '<':
		if len(l.src) > size && l.src[size] == '/' {
			return Token{Kind: KindCloseTagStart}, nil
		}
		return Token{Kind: KindOpenTagStart}, nil
	case r == '>':
		return Token{Kind: KindTagEnd}, nil
	case r == '"':
		return Token{Kind: KindQuote}, nil
	case r == '=':
		return Token{Kind: KindEquals}, nil
	case unicode.IsLetter(r):
		return Token{Kind: KindIdent}, nil
	default:
		return Token{}, &UnknownLexemeError{Remainder: l.src}
	}
}

// Consume advances the cursor past a token previously obtained from Peek and
// returns it fully realized.
//
// Only t's kind is inspected: identifiers scan the maximal alphanumeric run
// at the cursor, close-tag-start advances two bytes, EOF advances nothing
// and every other kind advances one byte.
func (l *Lexer) Consume(t Token) Token {
	switch t.Kind {
	case KindEOF:
		return t
	case KindIdent:
		return Token{Kind: KindIdent, Val: l.ident()}
	case KindCloseTagStart:
		l.src = l.src[2:]
		return t
	default:
		l.src = l.src[1:]
		return t
	}
}

// Next returns the next token, consuming it: Peek followed by Consume.
func (l *Lexer) Next() (Token, error) {
	t, err := l.Peek()
	if err != nil {
		return Token{}, err
	}

	t = l.Consume(t)
	if l.debug {
		l.logger.Debugf("lexed token: %v %q", t.Kind, t.Val)
	}

	return t, nil
}

// TextTill trims leading whitespace then takes the raw span up to the first
// occurrence of delim (or end of input if absent). The cursor advances past
// the span but not past the delimiter; the span is returned with trailing
// whitespace trimmed.
//
// This covers content that is not representable as a token sequence: text
// runs between tags and quoted attribute values.
func (l *Lexer) TextTill(delim rune) string {
	l.src = strings.TrimLeftFunc(l.src, unicode.IsSpace)

	n := strings.IndexRune(l.src, delim)
	if n < 0 {
		n = len(l.src)
	}

	span := l.src[:n]
	l.src = l.src[n:]

	return strings.TrimRightFunc(span, unicode.IsSpace)
}

// Remainder returns the unconsumed source without side effects, for
// diagnostic capture on error paths.
func (l *Lexer) Remainder() string { return l.src }

// ident cuts the maximal alphanumeric run at the cursor. Peek has already
// trimmed whitespace and verified the first rune is alphabetic.
func (l *Lexer) ident() string {
	n := strings.IndexFunc(l.src, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	if n < 0 {
		n = len(l.src)
	}

	id := l.src[:n]
	l.src = l.src[n:]

	return id
}
