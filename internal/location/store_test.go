package location

import "testing"

func TestStore_GetAbsentWhenUnset(t *testing.T) {
	s := NewStore(NewMemStorage())
	if slug, ok := s.Get(); ok {
		t.Errorf("Get on fresh store = (%q, true), want absent", slug)
	}
}

func TestStore_GetAbsentWithoutStorage(t *testing.T) {
	s := NewStore(nil)
	if _, ok := s.Get(); ok {
		t.Error("Get with nil storage should report absent")
	}
	// Set must not panic without storage.
	s.Set("encinitas")
}

func TestStore_SetPersistsAcrossStores(t *testing.T) {
	storage := NewMemStorage()

	NewStore(storage).Set("encinitas")

	// An independently created store over the same storage sees the value.
	other := NewStore(storage)
	slug, ok := other.Get()
	if !ok || slug != "encinitas" {
		t.Errorf("Get = (%q, %v), want (%q, true)", slug, ok, "encinitas")
	}
}

func TestStore_SetNotifiesSubscribersOnce(t *testing.T) {
	s := NewStore(NewMemStorage())

	var got []string
	s.Subscribe(func(slug string) { got = append(got, slug) })

	s.Set("encinitas")

	if len(got) != 1 || got[0] != "encinitas" {
		t.Errorf("subscriber calls = %v, want exactly one %q", got, "encinitas")
	}
}

func TestStore_MultipleSubscribers(t *testing.T) {
	s := NewStore(NewMemStorage())

	var a, b int
	s.Subscribe(func(string) { a++ })
	s.Subscribe(func(string) { b++ })

	s.Set("coronado")
	s.Set("encinitas")

	if a != 2 || b != 2 {
		t.Errorf("subscriber counts = (%d, %d), want (2, 2)", a, b)
	}
}

func TestStore_Unsubscribe(t *testing.T) {
	s := NewStore(NewMemStorage())

	var calls int
	unsubscribe := s.Subscribe(func(string) { calls++ })

	s.Set("coronado")
	unsubscribe()
	s.Set("encinitas")

	if calls != 1 {
		t.Errorf("calls after unsubscribe = %d, want 1", calls)
	}
}

func TestStore_SetAcceptsUncataloguedSlug(t *testing.T) {
	// Writes are permissive; validation happens at read sites.
	s := NewStore(NewMemStorage())
	s.Set("no-such-store")

	slug, ok := s.Get()
	if !ok || slug != "no-such-store" {
		t.Errorf("Get = (%q, %v), want raw persisted value", slug, ok)
	}
}

func TestStore_SelectedFallsBackToDefault(t *testing.T) {
	tests := []struct {
		name string
		set  string
		want string
	}{
		{"unset", "", Default().Slug},
		{"valid slug", "encinitas", "encinitas"},
		{"unknown slug", "not-a-store", Default().Slug},
	}

	for _, tt := range tests {
		s := NewStore(NewMemStorage())
		if tt.set != "" {
			s.Set(tt.set)
		}
		if got := s.Selected().Slug; got != tt.want {
			t.Errorf("%s: Selected = %q, want %q", tt.name, got, tt.want)
		}
	}
}
