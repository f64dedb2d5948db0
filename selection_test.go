package datagrid

import "testing"

func TestSelectAllKeys_CollectsEveryRowKey(t *testing.T) {
	rows := []Row{
		{"id": "a"},
		{"id": "b"},
		{"id": "c"},
	}

	set := SelectAllKeys(len(rows), func(i int) Row { return rows[i] }, "id")

	if set.Len() != 3 {
		t.Fatalf("Expected 3 keys, got %d", set.Len())
	}
	for _, id := range []string{"a", "b", "c"} {
		if !set.Contains(id) {
			t.Errorf("Expected key %q in set", id)
		}
	}
}

func TestSelectAllKeys_SkipsRowsMissingKeyField(t *testing.T) {
	rows := []Row{
		{"id": 1},
		{"name": "no id"},
		nil,
	}

	set := SelectAllKeys(len(rows), func(i int) Row { return rows[i] }, "id")

	if set.Len() != 1 || !set.Contains(1) {
		t.Errorf("Expected only key 1, got %d keys", set.Len())
	}
}

func TestSelectAllKeys_NilGetter(t *testing.T) {
	set := SelectAllKeys(5, nil, "id")
	if set.Len() != 0 {
		t.Errorf("Expected empty set with nil getter, got %d keys", set.Len())
	}
}

func TestKeySet_Basics(t *testing.T) {
	set := NewKeySet()
	if set.Contains(1) {
		t.Error("Expected empty set to contain nothing")
	}

	set.Add(1)
	set.Add(1) // Duplicate add is idempotent
	if set.Len() != 1 || !set.Contains(1) {
		t.Errorf("Expected set {1}, got %d keys", set.Len())
	}
}
