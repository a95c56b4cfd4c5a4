// Where: internal/registry/registry_test.go
// What: Tests for the template registry.
package registry

import "testing"

func TestLookup(t *testing.T) {
	tpl, ok := Lookup("vanilla")
	if !ok {
		t.Fatal("expected vanilla to be registered")
	}
	if tpl.Label != "Vanilla" {
		t.Fatalf("unexpected label: %s", tpl.Label)
	}

	if _, ok := Lookup("Vanilla"); ok {
		t.Fatal("lookup must be case-sensitive")
	}
	if _, ok := Lookup("missing"); ok {
		t.Fatal("expected missing template to not resolve")
	}
}

func TestAllPreservesRegistrationOrder(t *testing.T) {
	all := All()
	if len(all) == 0 {
		t.Fatal("registry is empty")
	}
	if all[0].ID != "vanilla" {
		t.Fatalf("expected vanilla first, got %s", all[0].ID)
	}

	// All returns a copy; mutating it must not leak into the registry.
	all[0].ID = "mutated"
	if fresh := All(); fresh[0].ID != "vanilla" {
		t.Fatal("All leaked internal state")
	}
}

func TestIDsMatchAll(t *testing.T) {
	ids := IDs()
	all := All()
	if len(ids) != len(all) {
		t.Fatalf("ids/all length mismatch: %d != %d", len(ids), len(all))
	}
	for i, tpl := range all {
		if ids[i] != tpl.ID {
			t.Fatalf("order mismatch at %d: %s != %s", i, ids[i], tpl.ID)
		}
	}
}
