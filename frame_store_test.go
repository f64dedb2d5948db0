package datagrid

import "testing"

func TestFrameStore_GetCreatesDefault(t *testing.T) {
	store := NewFrameStore[int]()
	id := stableID("test-entry")

	v := store.Get(id, 7)
	if *v != 7 {
		t.Errorf("Expected default value 7, got %d", *v)
	}

	*v = 42
	if *store.Get(id, 7) != 42 {
		t.Error("Expected modification through pointer to persist")
	}
}

func TestFrameStore_StaleEntriesCleanedUp(t *testing.T) {
	store := NewFrameStore[string]()
	id := stableID("stale-entry")

	store.Set(id, "hello")
	if store.Len() != 1 {
		t.Fatalf("Expected 1 entry, got %d", store.Len())
	}

	// Not accessed across two frame advances: entry is stale
	NextFrame()
	NextFrame()

	if store.Len() != 0 {
		t.Errorf("Expected stale entry removed, got %d entries", store.Len())
	}
}

func TestFrameStore_AccessedEntriesSurviveFrames(t *testing.T) {
	store := NewFrameStore[string]()
	id := stableID("live-entry")

	store.Set(id, "hello")
	for i := 0; i < 5; i++ {
		NextFrame()
		store.Get(id, "") // Touch every frame, like a rendering widget
	}

	if got := store.GetIfExists(id); got == nil || *got != "hello" {
		t.Error("Expected touched entry to survive frame cleanup")
	}
}

func TestFrameStore_GetIfExists(t *testing.T) {
	store := NewFrameStore[int]()

	if store.GetIfExists(stableID("missing")) != nil {
		t.Error("Expected nil for missing entry")
	}
}

func TestFilterText_RoundTrip(t *testing.T) {
	SetFilterText("col-x", "abc")
	if got := FilterText("col-x"); got != "abc" {
		t.Errorf("Expected filter text abc, got %q", got)
	}
	if got := FilterText("never-set"); got != "" {
		t.Errorf("Expected empty filter for unknown column, got %q", got)
	}
}
