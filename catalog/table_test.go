package catalog

import (
	"reflect"
	"strings"
	"testing"
)

func TestLookupDottedKeys(t *testing.T) {
	table := New(map[string]any{
		"entities/user": map[string]any{
			"state": map[string]any{
				"role": map[string]any{
					"member": "Member",
					"admin":  "Administrator",
				},
			},
		},
		"flat.key": "Flat",
	})

	cases := map[string]any{
		"entities/user.state.role.admin": "Administrator",
		"flat.key":                       "Flat",
	}
	for key, want := range cases {
		got, ok := table.Lookup(key)
		if !ok || got != want {
			t.Fatalf("Lookup(%q): want %v got %v (%v)", key, want, got, ok)
		}
	}

	branch, ok := table.Lookup("entities/user.state.role")
	if !ok {
		t.Fatalf("expected branch")
	}
	want := map[string]any{"member": "Member", "admin": "Administrator"}
	if !reflect.DeepEqual(want, branch) {
		t.Fatalf("want %v got %v", want, branch)
	}

	for _, key := range []string{"", "entities/user.state.status", "entities/user.state.role.admin.short", "flat"} {
		if _, ok := table.Lookup(key); ok {
			t.Fatalf("Lookup(%q): expected miss", key)
		}
	}
}

func TestLookupPrefersLongestLiteralKey(t *testing.T) {
	table := New(map[string]any{
		"a.b": map[string]any{"c": "long"},
		"a":   map[string]any{"b": map[string]any{"c": "short"}},
	})
	got, ok := table.Lookup("a.b.c")
	if !ok || got != "long" {
		t.Fatalf("expected long, got %v", got)
	}
}

func TestLookupFallsBackToShorterPrefix(t *testing.T) {
	table := New(map[string]any{
		"a.b": map[string]any{"x": "long"},
		"a":   map[string]any{"b": map[string]any{"c": "short"}},
	})
	got, ok := table.Lookup("a.b.c")
	if !ok || got != "short" {
		t.Fatalf("expected short, got %v (%v)", got, ok)
	}
}

func TestLookupDeepMissOnlyFollowsExistingBranches(t *testing.T) {
	root := map[string]any{"leaf": "x"}
	for i := 0; i < 30; i++ {
		root = map[string]any{"a": root, "a.a": map[string]any{"leaf": "y"}}
	}
	table := New(root)

	key := strings.Repeat("a.", 200) + "missing"
	if _, ok := table.Lookup(key); ok {
		t.Fatalf("expected miss for %q", key)
	}
	// With two segments left the literal "a.a" branch is longer than "a".
	if got, ok := table.Lookup(strings.Repeat("a.", 30) + "leaf"); !ok || got != "y" {
		t.Fatalf("expected leaf below the a.a branch, got %v (%v)", got, ok)
	}
}

func TestLookupReturnsCopies(t *testing.T) {
	table := New(map[string]any{"role": map[string]any{"admin": "Administrator"}})

	branch, _ := table.Lookup("role")
	branch.(map[string]any)["admin"] = "changed"

	got, _ := table.Lookup("role.admin")
	if got != "Administrator" {
		t.Fatalf("table mutated through lookup result: %v", got)
	}
}

func TestNewNormalizesNestedValues(t *testing.T) {
	source := map[string]any{
		"status": map[any]any{1: "Active", 0: "Suspended"},
		"levels": []any{"low", "high"},
		"plain":  map[string]string{"a": "A"},
	}
	table := New(source)

	for key, want := range map[string]string{
		"status.1": "Active",
		"status.0": "Suspended",
		"levels.1": "high",
		"plain.a":  "A",
	} {
		got, ok := table.Lookup(key)
		if !ok || got != want {
			t.Fatalf("Lookup(%q): want %q got %v", key, want, got)
		}
	}

	source["levels"] = "changed"
	if got, _ := table.Lookup("levels.0"); got != "low" {
		t.Fatalf("table should not alias its input")
	}
}

func TestNilTable(t *testing.T) {
	var table *Table
	if _, ok := table.Lookup("a"); ok {
		t.Fatalf("nil table should miss")
	}
	if table.Len() != 0 || len(table.Map()) != 0 || table.Keys() != nil {
		t.Fatalf("nil table should be empty")
	}
	if New(nil).Len() != 0 {
		t.Fatalf("expected empty table")
	}
}

func TestKeys(t *testing.T) {
	table := New(map[string]any{
		"entities/user": map[string]any{
			"state": map[string]any{
				"role":  map[string]any{"member": "Member", "admin": "Administrator"},
				"empty": map[string]any{},
			},
		},
		"title": "Users",
	})
	want := []string{
		"entities/user.state.empty",
		"entities/user.state.role.admin",
		"entities/user.state.role.member",
		"title",
	}
	if got := table.Keys(); !reflect.DeepEqual(want, got) {
		t.Fatalf("want %v got %v", want, got)
	}
}

func TestMergeStrongestFirst(t *testing.T) {
	overrides := New(map[string]any{
		"role": map[string]any{"admin": "Admin"},
	})
	defaults := New(map[string]any{
		"role":  map[string]any{"admin": "Administrator", "member": "Member"},
		"title": "Users",
	})

	merged := Merge(overrides, nil, defaults)
	for key, want := range map[string]string{
		"role.admin":  "Admin",
		"role.member": "Member",
		"title":       "Users",
	} {
		got, ok := merged.Lookup(key)
		if !ok || got != want {
			t.Fatalf("Lookup(%q): want %q got %v", key, want, got)
		}
	}

	if got, _ := defaults.Lookup("role.admin"); got != "Administrator" {
		t.Fatalf("merge must not mutate inputs, got %v", got)
	}
	if Merge().Len() != 0 {
		t.Fatalf("empty merge should yield an empty table")
	}
}
