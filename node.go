package slippable

// nodeIDCounter is a plain counter (no atomic: a list is driven from one goroutine).
var nodeIDCounter uint32

func nextNodeID() uint32 {
	nodeIDCounter++
	return nodeIDCounter
}

// Node is an element of the list tree. The list root owns one node per row,
// in display order, and every row node owns its part nodes (content and the
// optional swipe panels). Hosts may hang their own nodes under a part to get
// finer hit testing; pointer-down on any of them resolves to the row.
type Node struct {
	ID   uint32
	Name string

	Parent   *Node
	children []*Node

	// HitShape is in row-local coordinates. Nodes without one are not hit.
	HitShape HitShape

	UserData any

	// Exactly one of these is set on the structural nodes created by the
	// package; host-created nodes leave both nil.
	row  *Row
	list *List

	disposed bool
}

// NewNode creates a detached node with no hit shape.
func NewNode(name string) *Node {
	return &Node{ID: nextNodeID(), Name: name}
}

// Row returns the row this node is the root of, or nil.
func (n *Node) Row() *Row {
	return n.row
}

// --- Tree manipulation ---

// AddChild appends child to this node's children.
// If child already has a parent, it is removed from that parent first.
// Panics if child is nil or child is an ancestor of this node (cycle).
func (n *Node) AddChild(child *Node) {
	n.adopt(child)
	n.insert(child, len(n.children))
}

// AddChildAt inserts child so that it ends up at the given index. An index
// equal to the number of children appends. If child already has a parent it
// is detached first, so the range check applies to the list without it.
// Same checks as AddChild.
func (n *Node) AddChildAt(child *Node, index int) {
	n.adopt(child)
	if index < 0 || index > len(n.children) {
		panic("slippable: child index out of range")
	}
	n.insert(child, index)
}

// adopt validates child and detaches it from its current parent.
func (n *Node) adopt(child *Node) {
	if child == nil {
		panic("slippable: cannot add nil child")
	}
	if globalDebug {
		debugCheckDisposed(n, "AddChild (parent)")
		debugCheckDisposed(child, "AddChild (child)")
	}
	if isAncestor(child, n) {
		panic("slippable: adding child would create a cycle")
	}
	if child.Parent != nil {
		child.Parent.removeChildByPtr(child)
		child.Parent = nil
	}
}

func (n *Node) insert(child *Node, index int) {
	child.Parent = n
	n.children = append(n.children, nil)
	copy(n.children[index+1:], n.children[index:])
	n.children[index] = child
}

// RemoveChild detaches child from this node.
// Panics if child.Parent != n.
func (n *Node) RemoveChild(child *Node) {
	if child.Parent != n {
		panic("slippable: child's parent is not this node")
	}
	n.removeChildByPtr(child)
	child.Parent = nil
}

// RemoveChildAt removes and returns the child at the given index.
func (n *Node) RemoveChildAt(index int) *Node {
	if index < 0 || index >= len(n.children) {
		panic("slippable: child index out of range")
	}
	child := n.children[index]
	copy(n.children[index:], n.children[index+1:])
	n.children[len(n.children)-1] = nil
	n.children = n.children[:len(n.children)-1]
	child.Parent = nil
	return child
}

// RemoveFromParent detaches this node from its parent.
// No-op if this node has no parent.
func (n *Node) RemoveFromParent() {
	if n.Parent == nil {
		return
	}
	n.Parent.RemoveChild(n)
}

// Children returns the child list. The returned slice MUST NOT be mutated by the caller.
func (n *Node) Children() []*Node {
	return n.children
}

// NumChildren returns the number of children.
func (n *Node) NumChildren() int {
	return len(n.children)
}

// ChildAt returns the child at the given index.
func (n *Node) ChildAt(index int) *Node {
	return n.children[index]
}

// IndexOf returns the position of child among n's children, or -1.
func (n *Node) IndexOf(child *Node) int {
	for i, c := range n.children {
		if c == child {
			return i
		}
	}
	return -1
}

// moveChild removes the child at from and reinserts it so that it ends up at
// to. When to equals the number of remaining children the child is appended.
func (n *Node) moveChild(from, to int) {
	child := n.RemoveChildAt(from)
	if to >= len(n.children) {
		n.AddChild(child)
		return
	}
	n.AddChildAt(child, to)
}

// --- Disposal ---

// Dispose removes this node from its parent, marks it as disposed,
// and recursively disposes all descendants.
func (n *Node) Dispose() {
	if n.disposed {
		return
	}
	n.RemoveFromParent()
	n.dispose()
}

func (n *Node) dispose() {
	n.disposed = true
	n.ID = 0
	for _, child := range n.children {
		child.Parent = nil
		child.dispose()
	}
	n.children = nil
	n.Parent = nil
	n.HitShape = nil
	n.UserData = nil
	n.row = nil
	n.list = nil
}

// IsDisposed returns true if this node has been disposed.
func (n *Node) IsDisposed() bool {
	return n.disposed
}

// --- Helpers ---

// enclosingRow walks up from target until it reaches a row root. Reaching the
// list root or running out of parents is a structure error.
func enclosingRow(target *Node) (*Row, error) {
	for p := target; p != nil; p = p.Parent {
		if p.row != nil {
			return p.row, nil
		}
		if p.list != nil {
			break
		}
	}
	return nil, &StructureError{Target: target}
}

// isAncestor reports whether candidate is an ancestor of node.
func isAncestor(candidate, node *Node) bool {
	for p := node; p != nil; p = p.Parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// removeChildByPtr removes child from n.children without clearing child.Parent.
// Uses copy+nil to avoid retaining a dangling pointer in the backing array.
func (n *Node) removeChildByPtr(child *Node) {
	for i, c := range n.children {
		if c == child {
			copy(n.children[i:], n.children[i+1:])
			n.children[len(n.children)-1] = nil
			n.children = n.children[:len(n.children)-1]
			return
		}
	}
}
