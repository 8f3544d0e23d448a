package location

import "sync"

// StorageKey is the fixed key under which the selected slug is persisted.
const StorageKey = "cts-shopping-location-slug"

// Storage persists a single string value under a key. A Store tolerates a
// nil Storage: Get reports no selection and Set still notifies subscribers.
type Storage interface {
	Get(key string) (string, bool)
	Set(key, value string)
}

// MemStorage is an in-memory Storage, safe for concurrent use.
type MemStorage struct {
	mu     sync.Mutex
	values map[string]string
}

// NewMemStorage returns an empty MemStorage.
func NewMemStorage() *MemStorage {
	return &MemStorage{values: make(map[string]string)}
}

func (m *MemStorage) Get(key string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.values[key]
	return v, ok
}

func (m *MemStorage) Set(key, value string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
}

// Store is the single source of truth for one session's chosen location.
//
// Set accepts any string without checking catalog membership; several callers
// pass a slug they already validated. Consumers validate at read time and
// fall back to Default when the persisted slug is not in the catalog.
type Store struct {
	mu      sync.Mutex
	storage Storage
	subs    map[int]func(slug string)
	nextID  int
}

// NewStore creates a Store backed by storage, which may be nil when no
// persistent storage is available.
func NewStore(storage Storage) *Store {
	return &Store{
		storage: storage,
		subs:    make(map[int]func(slug string)),
	}
}

// Get returns the last persisted slug, or ok=false when nothing has been
// selected or storage is unavailable.
func (s *Store) Get() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.storage == nil {
		return "", false
	}
	return s.storage.Get(StorageKey)
}

// Set persists slug as the new selection and synchronously notifies every
// active subscriber with the new value. Writes are last-write-wins.
func (s *Store) Set(slug string) {
	s.mu.Lock()
	if s.storage != nil {
		s.storage.Set(StorageKey, slug)
	}
	subs := make([]func(string), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	s.mu.Unlock()

	for _, fn := range subs {
		fn(slug)
	}
}

// Subscribe registers fn to be invoked on every Set and returns a function
// that deregisters it. Multiple independent subscribers are supported.
func (s *Store) Subscribe(fn func(slug string)) func() {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

// Selected resolves the session's effective location: the persisted slug when
// it names a catalog entry, otherwise the default. Set accepts any slug;
// resolution against the catalog happens only here, at read time.
func (s *Store) Selected() Location {
	if slug, ok := s.Get(); ok {
		if loc, ok := BySlug(slug); ok {
			return loc
		}
	}
	return Default()
}
