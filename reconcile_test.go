package states

import (
	"errors"
	"reflect"
	"testing"
)

type reconcileFixture struct {
	Description string          `json:"description"`
	Cases       []reconcileCase `json:"cases"`
}

type reconcileCase struct {
	Name    string            `json:"name"`
	Values  []any             `json:"values"`
	Locales map[string]string `json:"locales"`
	Expect  struct {
		Labels  map[string]string `json:"labels"`
		Err     string            `json:"err"`
		Missing []string          `json:"missing"`
		Extra   []string          `json:"extra"`
	} `json:"expect"`
}

func TestReconcileFromFixture(t *testing.T) {
	fx := loadFixture[reconcileFixture](t, "reconcile.json")

	for _, tc := range fx.Cases {
		tc := tc
		t.Run(tc.Name, func(t *testing.T) {
			got, err := Reconcile(tc.Values, tc.Locales)

			switch tc.Expect.Err {
			case "":
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if !reflect.DeepEqual(tc.Expect.Labels, got) {
					t.Fatalf("labels mismatch\nwant: %#v\n got: %#v", tc.Expect.Labels, got)
				}
			case "count":
				if !errors.Is(err, ErrCountMismatch) {
					t.Fatalf("expected ErrCountMismatch, got %v", err)
				}
				if errors.Is(err, ErrKeyMismatch) {
					t.Fatalf("count mismatch must not report a key mismatch")
				}
			case "key":
				if !errors.Is(err, ErrKeyMismatch) {
					t.Fatalf("expected ErrKeyMismatch, got %v", err)
				}
				var stateErr *StateError
				if !errors.As(err, &stateErr) {
					t.Fatalf("expected StateError, got %T", err)
				}
				if !reflect.DeepEqual(tc.Expect.Missing, stateErr.Missing) {
					t.Fatalf("missing keys: want %v got %v", tc.Expect.Missing, stateErr.Missing)
				}
				if !reflect.DeepEqual(tc.Expect.Extra, stateErr.Extra) {
					t.Fatalf("extra keys: want %v got %v", tc.Expect.Extra, stateErr.Extra)
				}
			default:
				t.Fatalf("unknown expectation %q", tc.Expect.Err)
			}
		})
	}
}

func TestReconcileReturnsCopy(t *testing.T) {
	locales := map[string]string{"member": "Member"}
	got, err := Reconcile([]any{"member"}, locales)
	if err != nil {
		t.Fatalf("reconcile: %v", err)
	}
	got["member"] = "changed"
	if locales["member"] != "Member" {
		t.Fatalf("expected input map untouched, got %q", locales["member"])
	}
}

func TestLabelMapRejectsNonStringLabels(t *testing.T) {
	_, err := labelMap("entities/user.state.role", map[string]any{"member": "Member", "admin": 3})
	if !errors.Is(err, ErrTranslationType) {
		t.Fatalf("expected ErrTranslationType, got %v", err)
	}
	_, err = labelMap("entities/user.state.role", "Role")
	if !errors.Is(err, ErrTranslationType) {
		t.Fatalf("expected ErrTranslationType for leaf, got %v", err)
	}
	got, err := labelMap("k", map[string]string{"a": "A"})
	if err != nil || got["a"] != "A" {
		t.Fatalf("expected string map to pass through, got %v %v", got, err)
	}
}
