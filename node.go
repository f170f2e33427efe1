// SPDX-License-Identifier: MIT
package markup

import (
	"errors"
	"fmt"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

type (
	// NodeKind identifies a Node variant.
	NodeKind uint8

	// AttrMap maps attribute names to attribute values. Keys are unique;
	// a duplicate declaration overwrites the earlier value.
	AttrMap map[string]string

	// Node is one node of a parsed document tree.
	//
	// Text nodes populate Data and have no children; element nodes populate
	// Tag, Attr and Children (in document order). The tree is immutable once
	// built and every node is exclusively owned by its parent. All strings
	// are slices of the source the tree was parsed from.
	Node struct {
		Attr     AttrMap
		Data     string
		Tag      string
		Children []*Node
		Kind     NodeKind
	}

	// VisitFunc is invoked by Walk for every visited Node. Returning
	// descend=false skips the node's children; a non-nil error stops the
	// walk and is returned to the caller.
	VisitFunc func(n *Node) (descend bool, err error)
)

// Node variants.
const (
	KindText NodeKind = iota
	KindElement
)

// ErrNotFound reports a failed Locate.
var ErrNotFound = errors.New("not found")

// Text wraps a string into a text Node.
func Text(data string) *Node {
	return &Node{
		Kind: KindText,
		Data: data,
	}
}

// Elem wraps a tag name, attribute map and child sequence into an element
// Node.
func Elem(tag string, attr AttrMap, children []*Node) *Node {
	return &Node{
		Kind:     KindElement,
		Tag:      tag,
		Attr:     attr,
		Children: children,
	}
}

// Walk visits nodes and their subtrees in pre-order.
func Walk(visit VisitFunc, nodes ...*Node) error {
	for _, node := range nodes {
		descend, err := visit(node)
		if err != nil {
			return err
		}
		if !descend {
			continue
		}

		if err = Walk(visit, node.Children...); err != nil {
			return err
		}
	}

	return nil
}

// Flatten lists the node and its subtree in pre-order.
func (n *Node) Flatten() []*Node {
	list := []*Node{n}
	for _, child := range n.Children {
		list = append(list, child.Flatten()...)
	}

	return list
}

// Locate retrieves the first element with the given tag name, depth-first.
func (n *Node) Locate(tag string) (*Node, error) {
	if n.Kind == KindElement && n.Tag == tag {
		return n, nil
	}

	for _, child := range n.Children {
		if found, err := child.Locate(tag); err == nil {
			return found, nil
		}
	}

	return nil, fmt.Errorf("element (%s): %w", tag, ErrNotFound)
}

// AttrNames lists the node's attribute names in sorted order.
//
// AttrMap iteration order is not deterministic; sorting keeps inspection
// output stable.
func (n *Node) AttrNames() []string {
	names := maps.Keys(n.Attr)
	slices.Sort(names)

	return names
}
