package layout

import (
	"fmt"
	"reflect"
	"testing"
)

func hashN(i int) string {
	return fmt.Sprintf("c%06d", i)
}

func lanesOf(t *testing.T, commits []Commit) map[string]int {
	t.Helper()
	g := BuildGraph(commits)
	a := AssignLanes(g, g.TopoOrder())
	if len(a.Lanes) != g.Len() {
		t.Fatalf("lanes = %d, expected %d", len(a.Lanes), g.Len())
	}
	out := make(map[string]int, g.Len())
	for i, n := range g.nodes {
		out[n.Hash] = a.Lanes[i]
	}
	return out
}

func TestAssignLanes(t *testing.T) {
	tests := []struct {
		name    string
		commits []Commit
		want    map[string]int
	}{
		{
			name: "LinearChainEndingAtMain",
			commits: []Commit{
				{Hash: "c3", Parents: []string{"c2"}, Refs: []string{"HEAD -> main"}},
				{Hash: "c2", Parents: []string{"c1"}},
				{Hash: "c1"},
			},
			want: map[string]int{"c1": 0, "c2": 0, "c3": 0},
		},
		{
			name: "MergeFollowsFirstParent",
			commits: []Commit{
				{Hash: "c4", Parents: []string{"c2", "c3"}},
				{Hash: "c3", Parents: []string{"c1"}, Refs: []string{"feature"}},
				{Hash: "c2", Parents: []string{"c1"}},
				{Hash: "c1", Refs: []string{"main"}},
			},
			want: map[string]int{"c1": 0, "c2": 0, "c3": 1, "c4": 0},
		},
		{
			name: "MergeIntoFeatureStaysOnFeature",
			commits: []Commit{
				{Hash: "c4", Parents: []string{"c3", "c2"}},
				{Hash: "c3", Parents: []string{"c1"}, Refs: []string{"feature"}},
				{Hash: "c2", Parents: []string{"c1"}},
				{Hash: "c1", Refs: []string{"main"}},
			},
			want: map[string]int{"c1": 0, "c2": 0, "c3": 1, "c4": 1},
		},
		{
			name: "MasterAndMainShareLaneZero",
			commits: []Commit{
				{Hash: "c3", Parents: []string{"c2"}, Refs: []string{"origin/master"}},
				{Hash: "c2", Parents: []string{"c1"}, Refs: []string{"topic"}},
				{Hash: "c1", Refs: []string{"main"}},
			},
			want: map[string]int{"c1": 0, "c2": 1, "c3": 0},
		},
		{
			name: "BranchNameReusesLane",
			commits: []Commit{
				{Hash: "f2", Parents: []string{"f1"}, Refs: []string{"origin/feature"}},
				{Hash: "f1", Parents: []string{"r"}, Refs: []string{"feature"}},
				{Hash: "x", Parents: []string{"r"}, Refs: []string{"other"}},
				{Hash: "r", Refs: []string{"main"}},
			},
			want: map[string]int{"r": 0, "f1": 1, "f2": 1, "x": 2},
		},
		{
			name: "NamedBranchBeforeMainSkipsLaneZero",
			commits: []Commit{
				{Hash: "m", Parents: []string{"f"}, Refs: []string{"main"}},
				{Hash: "f", Refs: []string{"feature"}},
			},
			want: map[string]int{"f": 1, "m": 0},
		},
		{
			name: "NoPrimaryFirstLaneIsZero",
			commits: []Commit{
				{Hash: "b", Parents: []string{"a"}, Refs: []string{"develop"}},
				{Hash: "a", Refs: []string{"trunk"}},
			},
			want: map[string]int{"a": 0, "b": 1},
		},
		{
			name: "OrphansOpenNewLanes",
			commits: []Commit{
				{Hash: "a"},
				{Hash: "b"},
				{Hash: "c"},
			},
			want: map[string]int{"a": 0, "b": 1, "c": 2},
		},
		{
			name: "DanglingParentOpensLane",
			commits: []Commit{
				{Hash: "b", Parents: []string{"gone"}},
				{Hash: "a", Refs: []string{"main"}},
			},
			want: map[string]int{"b": 0, "a": 0},
		},
		{
			name: "TagOpensLane",
			commits: []Commit{
				{Hash: "c3", Parents: []string{"c2"}, Message: "tip"},
				{Hash: "c2", Parents: []string{"c1"}, Refs: []string{"tag: v1.0"}},
				{Hash: "c1"},
			},
			want: map[string]int{"c1": 0, "c2": 1, "c3": 1},
		},
		{
			name: "TagBesidePrimaryBranch",
			commits: []Commit{
				{Hash: "c3", Parents: []string{"c2"}, Refs: []string{"HEAD -> main"}},
				{Hash: "c2", Parents: []string{"c1"}, Refs: []string{"tag: v1.0"}},
				{Hash: "c1"},
			},
			want: map[string]int{"c1": 0, "c2": 1, "c3": 0},
		},
		{
			name: "BranchNameBeforeTag",
			commits: []Commit{
				{Hash: "c2", Parents: []string{"c1"}, Refs: []string{"HEAD -> main, tag: v1.0"}},
				{Hash: "c1", Refs: []string{"feature"}},
			},
			want: map[string]int{"c1": 1, "c2": 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := lanesOf(t, tt.commits)
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("lanes = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAssignLanes_RegistersPrimaryNames(t *testing.T) {
	g := BuildGraph([]Commit{{Hash: "a", Refs: []string{"HEAD -> master"}}})
	a := AssignLanes(g, g.TopoOrder())

	for _, name := range []string{BranchMain, BranchMaster} {
		if l, ok := a.Branches[name]; !ok || l != 0 {
			t.Errorf("Branches[%q] = %d, %v; want 0, true", name, l, ok)
		}
	}
}

func TestAssignLanes_TotalForPartialOrder(t *testing.T) {
	g := BuildGraph([]Commit{{Hash: "a"}, {Hash: "b"}})
	a := AssignLanes(g, []int{1})

	if a.Lanes[0] < 0 || a.Lanes[1] < 0 {
		t.Fatalf("lanes = %v, expected every node assigned", a.Lanes)
	}
	if a.Lanes[0] == a.Lanes[1] {
		t.Fatalf("lanes = %v, expected distinct lanes for unrelated roots", a.Lanes)
	}
}

func TestLaneAssignment_MaxAndDistinct(t *testing.T) {
	a := LaneAssignment{Lanes: []int{2, 0, 2, 5}}
	if a.Max() != 5 {
		t.Fatalf("Max = %d, expected 5", a.Max())
	}
	if got := a.Distinct(); !reflect.DeepEqual(got, []int{0, 2, 5}) {
		t.Fatalf("Distinct = %v", got)
	}

	empty := LaneAssignment{}
	if empty.Max() != -1 {
		t.Fatalf("Max of empty = %d, expected -1", empty.Max())
	}
	if got := empty.Distinct(); len(got) != 0 {
		t.Fatalf("Distinct of empty = %v", got)
	}
}
