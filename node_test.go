// SPDX-License-Identifier: MIT
package markup

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func sampleTree() *Node {
	return Elem("html", AttrMap{}, []*Node{
		Elem("body", AttrMap{}, []*Node{
			Elem("h1", AttrMap{}, []*Node{Text("Title")}),
			Elem("div", AttrMap{"id": "main", "class": "test"}, nil),
		}),
	})
}

func TestConstructors(t *testing.T) {
	txt := Text("hi")
	assert.Equal(t, KindText, txt.Kind)
	assert.Equal(t, "hi", txt.Data)
	assert.Empty(t, txt.Children)

	el := Elem("div", AttrMap{"id": "x"}, []*Node{txt})
	assert.Equal(t, KindElement, el.Kind)
	assert.Equal(t, "div", el.Tag)
	assert.Equal(t, AttrMap{"id": "x"}, el.Attr)
	assert.Equal(t, []*Node{txt}, el.Children)
}

func TestWalkPreOrder(t *testing.T) {
	var tags []string
	err := Walk(func(n *Node) (bool, error) {
		if n.Kind == KindElement {
			tags = append(tags, n.Tag)
		}
		return true, nil
	}, sampleTree())

	assert.Nil(t, err)
	assert.Equal(t, []string{"html", "body", "h1", "div"}, tags)
}

func TestWalkSkipsSubtree(t *testing.T) {
	var tags []string
	err := Walk(func(n *Node) (bool, error) {
		if n.Kind != KindElement {
			return true, nil
		}
		tags = append(tags, n.Tag)
		// Don't descend past body.
		return n.Tag != "body", nil
	}, sampleTree())

	assert.Nil(t, err)
	assert.Equal(t, []string{"html", "body"}, tags)
}

func TestWalkStopsOnError(t *testing.T) {
	boom := errors.New("boom")
	visited := 0

	err := Walk(func(n *Node) (bool, error) {
		visited++
		if n.Tag == "body" {
			return false, boom
		}
		return true, nil
	}, sampleTree())

	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 2, visited)
}

func TestFlatten(t *testing.T) {
	list := sampleTree().Flatten()

	assert.Len(t, list, 5)
	assert.Equal(t, "html", list[0].Tag)
	assert.Equal(t, "Title", list[3].Data)
}

func TestLocate(t *testing.T) {
	tree := sampleTree()

	div, err := tree.Locate("div")
	assert.Nil(t, err)
	assert.Equal(t, "main", div.Attr["id"])

	_, err = tree.Locate("nav")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAttrNamesSorted(t *testing.T) {
	div, err := sampleTree().Locate("div")

	assert.Nil(t, err)
	assert.Equal(t, []string{"class", "id"}, div.AttrNames())
}
