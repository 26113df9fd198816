// Package node holds the ordered attribute tree that every decoder writes into
// and every renderer reads from.
package node

import (
	"fmt"
)

type Kind uint8

const (
	Plain Kind = iota
	Table
	Row
)

func (k Kind) String() string {
	switch k {
	case Table:
		return "table"
	case Row:
		return "row"
	default:
		return "plain"
	}
}

// Flag hints how a renderer should treat an attribute value.
type Flag uint8

const (
	FmtNumeric Flag = 1 << iota
	FmtHumanSize
	FmtGUID
	FmtBool
)

type Attr struct {
	Key   string
	Value string
	Flags Flag
}

type Node struct {
	Name     string
	Kind     Kind
	Attrs    []Attr
	Children []*Node
}

func New(name string, kind Kind) *Node {
	return &Node{Name: name, Kind: kind}
}

// AppendNew creates a child node and returns it.
func (n *Node) AppendNew(name string, kind Kind) *Node {
	c := New(name, kind)
	n.Children = append(n.Children, c)
	return c
}

// Append attaches an existing tree as the last child. Nil children are dropped.
func (n *Node) Append(child *Node) *Node {
	if child != nil {
		n.Children = append(n.Children, child)
	}
	return child
}

// Set adds an attribute, or replaces the value of an existing key in place
// so the original position is kept.
func (n *Node) Set(key, value string, flags Flag) {
	for i := range n.Attrs {
		if n.Attrs[i].Key == key {
			n.Attrs[i].Value = value
			n.Attrs[i].Flags = flags
			return
		}
	}
	n.Attrs = append(n.Attrs, Attr{Key: key, Value: value, Flags: flags})
}

func (n *Node) Setf(key string, flags Flag, format string, args ...any) {
	n.Set(key, fmt.Sprintf(format, args...), flags)
}

func (n *Node) SetBool(key string, v bool) {
	if v {
		n.Set(key, "Yes", FmtBool)
		return
	}
	n.Set(key, "No", FmtBool)
}

func (n *Node) Get(key string) (string, bool) {
	a, ok := n.Attr(key)
	return a.Value, ok
}

func (n *Node) Attr(key string) (Attr, bool) {
	for _, a := range n.Attrs {
		if a.Key == key {
			return a, true
		}
	}
	return Attr{}, false
}

// Child returns the first direct child with the given name.
func (n *Node) Child(name string) *Node {
	for _, c := range n.Children {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func (n *Node) ChildrenNamed(name string) []*Node {
	var res []*Node
	for _, c := range n.Children {
		if c.Name == name {
			res = append(res, c)
		}
	}
	return res
}

// Walk visits the tree depth first. Returning false from fn skips the
// children of the visited node.
func (n *Node) Walk(fn func(n *Node, depth int) bool) {
	n.walk(fn, 0)
}

func (n *Node) walk(fn func(*Node, int) bool, depth int) {
	if !fn(n, depth) {
		return
	}
	for _, c := range n.Children {
		c.walk(fn, depth+1)
	}
}
