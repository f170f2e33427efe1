// SPDX-License-Identifier: MIT

// Package markup parses an HTML-like markup subset (tags, attributes, text,
// nesting) into a document tree.
//
// The pipeline is single-pass and fully synchronous: a pull-based lexer cuts
// the source string into tokens and a recursive-descent parser assembles
// them into a tree of Nodes, validating tag balance along the way. All node
// and attribute strings are zero-copy slices of the source.
//
// Out of scope: entity decoding, self-closing elements, comments, CDATA,
// raw-text modes, DOCTYPE, namespaces and error recovery. Parsing is
// fail-fast; the first error aborts with no partial tree.
package markup

import (
	"github.com/sirupsen/logrus"
)

var fLogger logrus.FieldLogger = logrus.NewEntry(logrus.New())

// SetLogger configures a logrus.FieldLogger for the package.
func SetLogger(l logrus.FieldLogger) { fLogger = l }
