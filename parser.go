// SPDX-License-Identifier: MIT
package markup

import (
	"fmt"

	"github.com/davecgh/go-spew/spew"

	"gitlab.com/brackish/markup/lexer"
)

type (
	// UnexpectedTokenError reports a grammar rule that required one token
	// kind and got another. Src is the unconsumed source as it stood
	// immediately before the offending token was read.
	UnexpectedTokenError struct {
		Src      string
		Expected lexer.Token
		Got      lexer.Token
	}

	// TagMismatchError reports a closing tag whose name differs from the
	// opening tag's. It is raised only after the full closing-tag syntax has
	// been consumed, so the cursor is already past the mismatched tag.
	TagMismatchError struct {
		Opened string
		Closed string
	}
)

// Error implements the error interface.
func (e *UnexpectedTokenError) Error() string {
	return fmt.Sprintf("expected %v, got %v at: %q", e.Expected.Kind, e.Got.Kind, e.Src)
}

// Error implements the error interface.
func (e *TagMismatchError) Error() string {
	return fmt.Sprintf("closing tag (%s) does not match opening tag (%s)", e.Closed, e.Opened)
}

// Parse builds a document tree from source.
//
// Parsing is fail-fast: the first lexical or grammatical error aborts and no
// partial tree is returned. Errors are one of *lexer.UnknownLexemeError,
// *UnexpectedTokenError or *TagMismatchError. Recursion depth is bounded by
// the nesting depth of the input.
func Parse(source string) (*Node, error) {
	p := parser{lx: lexer.New(source, lexer.WithLogger(fLogger))}

	root, err := p.node()
	if err != nil {
		fLogger.Debugf("parse aborted: %s\nremainder: %q", spew.Sprint(err), p.lx.Remainder())
		return nil, err
	}

	return root, nil
}

// parser drives a Lexer through the grammar:
//
//	document  := node
//	nodes     := node* (until peek == close-tag-start or EOF)
//	node      := element | text-run
//	element   := '<' IDENT attribute* '>' nodes '</' IDENT '>'
//	attribute := IDENT ['=' '"' attr-text '"']
//	text-run  := raw text up to next '<' or EOF
type parser struct {
	lx *lexer.Lexer
}

// nodes parses a sibling sequence until a closing tag or end of input is
// next.
func (p *parser) nodes() (ns []*Node, err error) {
	for {
		if t, peekErr := p.lx.Peek(); peekErr == nil &&
			(t.Kind == lexer.KindCloseTagStart || t.Kind == lexer.KindEOF) {
			return
		}

		var n *Node
		if n, err = p.node(); err != nil {
			return nil, err
		}
		ns = append(ns, n)
	}
}

// node dispatches on the next token: an unambiguous tag opener starts an
// element, anything else is absorbed as a raw text run. Unknown lexemes in
// running text thus never surface as errors; they only do where a specific
// token kind is demanded.
func (p *parser) node() (*Node, error) {
	if t, err := p.lx.Peek(); err == nil && t.Kind == lexer.KindOpenTagStart {
		return p.element()
	}

	return Text(p.lx.TextTill('<')), nil
}

func (p *parser) element() (*Node, error) {
	if _, err := p.expect(lexer.KindOpenTagStart); err != nil {
		return nil, err
	}
	opened, err := p.ident()
	if err != nil {
		return nil, err
	}
	attrs, err := p.attributes()
	if err != nil {
		return nil, err
	}
	if _, err = p.expect(lexer.KindTagEnd); err != nil {
		return nil, err
	}

	children, err := p.nodes()
	if err != nil {
		return nil, err
	}

	if _, err = p.expect(lexer.KindCloseTagStart); err != nil {
		return nil, err
	}
	closed, err := p.ident()
	if err != nil {
		return nil, err
	}
	if _, err = p.expect(lexer.KindTagEnd); err != nil {
		return nil, err
	}

	if opened != closed {
		return nil, &TagMismatchError{Opened: opened, Closed: closed}
	}

	return Elem(opened, attrs, children), nil
}

// attributes parses zero or more attributes up to the tag end. The loop also
// stops at EOF so that a missing '>' fails on the expect that follows.
func (p *parser) attributes() (AttrMap, error) {
	attrs := AttrMap{}
	for {
		t, err := p.lx.Peek()
		if err != nil {
			return nil, err
		}
		if t.Kind == lexer.KindTagEnd || t.Kind == lexer.KindEOF {
			return attrs, nil
		}

		k, v, err := p.attribute()
		if err != nil {
			return nil, err
		}
		attrs[k] = v
	}
}

// attribute parses a single name or name="value" pair. A bare name is the
// boolean-attribute shorthand and defaults to the empty string.
func (p *parser) attribute() (name, value string, err error) {
	if name, err = p.ident(); err != nil {
		return
	}

	var t lexer.Token
	if t, err = p.lx.Peek(); err != nil || t.Kind != lexer.KindEquals {
		return
	}

	if _, err = p.expect(lexer.KindEquals); err != nil {
		return
	}
	if _, err = p.expect(lexer.KindQuote); err != nil {
		return
	}
	value = p.lx.TextTill('"')
	if _, err = p.expect(lexer.KindQuote); err != nil {
		return
	}

	return
}

// expect consumes the next token and requires it to be of the wanted kind.
// The remainder is snapshotted beforehand for diagnostics.
func (p *parser) expect(want lexer.Kind) (lexer.Token, error) {
	src := p.lx.Remainder()

	got, err := p.lx.Next()
	if err != nil {
		return lexer.Token{}, err
	}
	if got.Kind != want {
		return lexer.Token{}, &UnexpectedTokenError{
			Expected: lexer.Token{Kind: want},
			Got:      got,
			Src:      src,
		}
	}

	return got, nil
}

func (p *parser) ident() (string, error) {
	t, err := p.expect(lexer.KindIdent)
	if err != nil {
		return "", err
	}

	return t.Val, nil
}
