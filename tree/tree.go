package tree

import (
	"fmt"
	"strings"
)

// Tree is a node in a rooted tree. Every node knows its parent, so the path from the root can be recovered from any node.
type Tree[T any] struct {
	payload  T
	parent   *Tree[T]
	children []*Tree[T]
	depth    int
}

func New[T any](payload T) *Tree[T] {
	return &Tree[T]{
		payload:  payload,
		parent:   nil,
		children: []*Tree[T]{},
		depth:    0,
	}
}

// Returns the total number of elements in the tree
func (t *Tree[T]) Len() int {
	len := 1
	for _, child := range t.children {
		len += child.Len()
	}
	return len
}

// Adds a new child with the provided payload as a child of the current Tree
// Returns the child when done
func (t *Tree[T]) AddChild(payload T) *Tree[T] {
	treeNode := &Tree[T]{
		payload:  payload,
		parent:   t,
		children: []*Tree[T]{},
		depth:    t.depth + 1,
	}
	t.children = append(t.children, treeNode)
	return treeNode
}

// Returns the payloads on the path from the root to this node.
// The payload of the root is not included, so the length of the path equals the depth of the node.
func (t *Tree[T]) Path() []T {
	path := make([]T, t.depth)
	for node := t; !node.IsRoot(); node = node.parent {
		path[node.depth-1] = node.payload
	}
	return path
}

// String representation of a TreeNode
func (t *Tree[T]) String() string {
	out := strings.Builder{}
	for i := 0; i < t.Depth(); i++ {
		out.WriteString("-")
	}
	out.WriteString(fmt.Sprintf("%v\n", t.Payload()))
	for _, child := range t.Children() {
		out.WriteString(fmt.Sprintf("%v", child))
	}
	return out.String()
}

func (t *Tree[T]) IsRoot() bool {
	return t.Parent() == nil
}

func (t *Tree[T]) IsLeafNode() bool {
	return len(t.Children()) == 0
}

func (t *Tree[T]) Payload() T {
	return t.payload
}

func (t *Tree[T]) Parent() *Tree[T] {
	return t.parent
}

func (t *Tree[T]) Depth() int {
	return t.depth
}

func (t *Tree[T]) Children() []*Tree[T] {
	return t.children
}

// Newick representation of the tree, terminated by a semicolon at the root
func (t *Tree[T]) Newick() string {
	out := strings.Builder{}
	if len(t.Children()) > 0 {
		out.WriteString("(")
		for i, child := range t.Children() {
			if i > 0 {
				out.WriteString(",")
			}
			out.WriteString(child.Newick())
		}
		out.WriteString(")")
	}
	out.WriteString(fmt.Sprintf("\"%v\"", t.Payload()))
	if t.IsRoot() {
		out.WriteString(";")
	}
	return out.String()
}
