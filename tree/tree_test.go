package tree

import "testing"

func TestTreeAddChild(t *testing.T) {
	// Basic test to make sure that it works. Add some nodes and check some basic properties to ensure that they have been added correctly
	tree := New("Tree 1")
	tree.AddChild("Tree 1-1")
	child := tree.AddChild("Tree 1-2")
	grandChild := child.AddChild("Tree 1-2-1")

	if !tree.IsRoot() {
		t.Fatalf("Tree should be root node")
	}
	if tree.Len() != 4 {
		t.Fatalf("Added four elements to the tree. Has length: %v", tree.Len())
	}
	if len(tree.Children()) != 2 {
		t.Fatalf("Added two children to the tree. Got: %v", len(tree.Children()))
	}
	if child.IsRoot() {
		t.Fatalf("This should be a child node. IsRoot(): %v", child.IsRoot())
	}
	if !grandChild.IsLeafNode() || child.IsLeafNode() {
		t.Fatalf("Only the node without children should be a leaf node")
	}
	if grandChild.Depth() != 2 {
		t.Fatalf("Expected depth 2. Got %v", grandChild.Depth())
	}
}

func TestTreePath(t *testing.T) {
	tree := New(0)
	a := tree.AddChild(1)
	tree.AddChild(2)
	b := a.AddChild(3).AddChild(4)

	path := b.Path()
	expected := []int{1, 3, 4}
	if len(path) != len(expected) {
		t.Fatalf("Expected path of length %v. Got %v", len(expected), path)
	}
	for i := range expected {
		if path[i] != expected[i] {
			t.Errorf("Expected %v at index %v. Got %v", expected[i], i, path[i])
		}
	}
	if len(tree.Path()) != 0 {
		t.Errorf("The root should have an empty path. Got %v", tree.Path())
	}
}

func TestTreeNewick(t *testing.T) {
	tree := New("r")
	a := tree.AddChild("a")
	tree.AddChild("b")
	a.AddChild("c")

	expected := `(("c")"a","b")"r";`
	if out := tree.Newick(); out != expected {
		t.Errorf("Expected %v. Got %v", expected, out)
	}
}
