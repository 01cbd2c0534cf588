package slippable

import (
	"errors"
	"testing"
)

// --- Tree manipulation ---

func TestAddChild(t *testing.T) {
	parent := NewNode("parent")
	a := NewNode("a")
	b := NewNode("b")
	parent.AddChild(a)
	parent.AddChild(b)

	if parent.NumChildren() != 2 {
		t.Fatalf("NumChildren = %d, want 2", parent.NumChildren())
	}
	if a.Parent != parent || b.Parent != parent {
		t.Error("Parent not set")
	}
	if parent.ChildAt(1) != b {
		t.Error("ChildAt(1) should be b")
	}
}

func TestAddChildReparents(t *testing.T) {
	p1 := NewNode("p1")
	p2 := NewNode("p2")
	c := NewNode("c")
	p1.AddChild(c)
	p2.AddChild(c)

	if p1.NumChildren() != 0 {
		t.Errorf("old parent NumChildren = %d, want 0", p1.NumChildren())
	}
	if c.Parent != p2 {
		t.Error("child should belong to new parent")
	}
}

func TestAddChildSameParentMovesToEnd(t *testing.T) {
	p := NewNode("p")
	a, b, c := NewNode("a"), NewNode("b"), NewNode("c")
	p.AddChild(a)
	p.AddChild(b)
	p.AddChild(c)
	p.AddChild(a)

	assertOrder(t, p, "b", "c", "a")
}

func TestAddChildAt(t *testing.T) {
	p := NewNode("p")
	a, b, c := NewNode("a"), NewNode("b"), NewNode("c")
	p.AddChild(a)
	p.AddChild(c)
	p.AddChildAt(b, 1)
	assertOrder(t, p, "a", "b", "c")

	d := NewNode("d")
	p.AddChildAt(d, 3)
	assertOrder(t, p, "a", "b", "c", "d")
}

func TestAddChildAtOutOfRangePanics(t *testing.T) {
	p := NewNode("p")
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic")
		}
	}()
	p.AddChildAt(NewNode("x"), 1)
}

func TestAddChildCyclePanics(t *testing.T) {
	a := NewNode("a")
	b := NewNode("b")
	a.AddChild(b)
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic")
		}
	}()
	b.AddChild(a)
}

func TestAddChildNilPanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic")
		}
	}()
	NewNode("p").AddChild(nil)
}

func TestRemoveChildAt(t *testing.T) {
	p := NewNode("p")
	a, b := NewNode("a"), NewNode("b")
	p.AddChild(a)
	p.AddChild(b)

	got := p.RemoveChildAt(0)
	if got != a {
		t.Errorf("RemoveChildAt(0) = %q, want a", got.Name)
	}
	if a.Parent != nil {
		t.Error("removed child should have nil parent")
	}
	assertOrder(t, p, "b")
}

func TestRemoveChildWrongParentPanics(t *testing.T) {
	p := NewNode("p")
	other := NewNode("other")
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic")
		}
	}()
	p.RemoveChild(other)
}

func TestIndexOf(t *testing.T) {
	p := NewNode("p")
	a, b := NewNode("a"), NewNode("b")
	p.AddChild(a)
	p.AddChild(b)
	if got := p.IndexOf(b); got != 1 {
		t.Errorf("IndexOf(b) = %d, want 1", got)
	}
	if got := p.IndexOf(NewNode("x")); got != -1 {
		t.Errorf("IndexOf(x) = %d, want -1", got)
	}
}

func TestMoveChild(t *testing.T) {
	tests := []struct {
		name     string
		from, to int
		want     []string
	}{
		{"forward one", 2, 3, []string{"0", "1", "3", "2", "4"}},
		{"to end appends", 2, 4, []string{"0", "1", "3", "4", "2"}},
		{"backward", 3, 0, []string{"3", "0", "1", "2", "4"}},
		{"same index", 1, 1, []string{"0", "1", "2", "3", "4"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewNode("p")
			for _, name := range []string{"0", "1", "2", "3", "4"} {
				p.AddChild(NewNode(name))
			}
			p.moveChild(tt.from, tt.to)
			assertOrder(t, p, tt.want...)
		})
	}
}

// --- Disposal ---

func TestDispose(t *testing.T) {
	p := NewNode("p")
	c := NewNode("c")
	gc := NewNode("gc")
	p.AddChild(c)
	c.AddChild(gc)

	c.Dispose()
	if !c.IsDisposed() || !gc.IsDisposed() {
		t.Error("node and descendants should be disposed")
	}
	if p.NumChildren() != 0 {
		t.Error("disposed node should be detached")
	}
	if c.ID != 0 {
		t.Errorf("ID = %d, want 0", c.ID)
	}
	c.Dispose() // no-op
}

// --- Row resolution ---

func TestEnclosingRow(t *testing.T) {
	l := NewList(Rect{Width: 100, Height: 100}, DefaultGestureConfig())
	r, err := l.AddRow("r", 20)
	if err != nil {
		t.Fatal(err)
	}
	leaf := NewNode("leaf")
	r.Content().AddChild(leaf)

	for _, n := range []*Node{r.Node(), r.Content(), leaf, r.LeftPanel.Node()} {
		got, err := enclosingRow(n)
		if err != nil {
			t.Fatalf("enclosingRow(%q): %v", n.Name, err)
		}
		if got != r {
			t.Errorf("enclosingRow(%q) = %q, want r", n.Name, got.Name())
		}
	}
}

func TestEnclosingRowStructureError(t *testing.T) {
	l := NewList(Rect{Width: 100, Height: 100}, DefaultGestureConfig())
	for _, n := range []*Node{l.Root(), NewNode("orphan"), nil} {
		_, err := enclosingRow(n)
		var se *StructureError
		if !errors.As(err, &se) {
			t.Fatalf("err = %v, want *StructureError", err)
		}
		if se.Target != n {
			t.Error("Target should be the pointer target")
		}
	}
}

func assertOrder(t *testing.T, p *Node, names ...string) {
	t.Helper()
	if p.NumChildren() != len(names) {
		t.Fatalf("NumChildren = %d, want %d", p.NumChildren(), len(names))
	}
	for i, name := range names {
		if got := p.ChildAt(i).Name; got != name {
			t.Errorf("child %d = %q, want %q", i, got, name)
		}
	}
}
