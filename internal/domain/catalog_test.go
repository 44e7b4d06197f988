package domain

import (
	"reflect"
	"testing"
)

func sampleForest() []*CategoryNode {
	return []*CategoryNode{
		{
			Name: "Weapons",
			Children: []*CategoryNode{
				{Name: "Rifles", Path: "weapons/rifles", Leaf: true},
				{Name: "Pistols", Path: "weapons/pistols", Leaf: true},
			},
		},
		{Name: "Armor", Path: "armor", Leaf: true},
	}
}

func names(nodes []*CategoryNode) []string {
	out := make([]string, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, n.Name)
	}
	return out
}

func TestFlattenTree_CollapsedShowsRootsOnly(t *testing.T) {
	roots := sampleForest()
	got := names(FlattenTree(roots))
	want := []string{"Weapons", "Armor"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestFlattenTree_Idempotent(t *testing.T) {
	roots := sampleForest()
	roots[0].Expand()

	first := names(FlattenTree(roots))
	second := names(FlattenTree(roots))
	if !reflect.DeepEqual(first, second) {
		t.Errorf("flatten not idempotent: %v then %v", first, second)
	}
	want := []string{"Weapons", "Rifles", "Pistols", "Armor"}
	if !reflect.DeepEqual(first, want) {
		t.Errorf("got %v, want %v", first, want)
	}
}

func TestToggle_TwiceRestoresVisibility(t *testing.T) {
	roots := sampleForest()
	before := names(FlattenTree(roots))

	roots[0].Toggle()
	roots[0].Toggle()

	after := names(FlattenTree(roots))
	if !reflect.DeepEqual(before, after) {
		t.Errorf("visibility not restored: %v then %v", before, after)
	}
}

func TestExpand_MaterializesOnce(t *testing.T) {
	roots := sampleForest()
	parent := roots[0]

	parent.Expand()
	if !parent.Materialized() {
		t.Fatal("first expand should materialize children")
	}
	if parent.Children[0].Parent != parent {
		t.Fatal("materialization should link children to parent")
	}

	// Re-pointing a child's Parent would be visible if a second toggle
	// re-materialized; it must not.
	sentinel := &CategoryNode{Name: "sentinel"}
	parent.Children[0].Parent = sentinel
	parent.Toggle()
	parent.Toggle()
	if parent.Children[0].Parent != sentinel {
		t.Error("toggle re-materialized already-built children")
	}
}

func TestDepth(t *testing.T) {
	roots := sampleForest()
	roots[0].Expand()
	if d := roots[0].Depth(); d != 0 {
		t.Errorf("root depth = %d, want 0", d)
	}
	if d := roots[0].Children[0].Depth(); d != 1 {
		t.Errorf("child depth = %d, want 1", d)
	}
}

func TestIsLeaf(t *testing.T) {
	tests := []struct {
		name string
		node CategoryNode
		want bool
	}{
		{"leaf with path", CategoryNode{Leaf: true, Path: "x"}, true},
		{"leaf without path", CategoryNode{Leaf: true}, false},
		{"branch", CategoryNode{Children: []*CategoryNode{{}}}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.node.IsLeaf(); got != tt.want {
				t.Errorf("IsLeaf() = %v, want %v", got, tt.want)
			}
		})
	}
}
