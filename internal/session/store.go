package session

import "sync"

// Snapshot is an immutable view of the session at one point in time.
// Loading is true exactly while a decode-and-enrichment cycle is in flight.
type Snapshot struct {
	Identity Identity
	Loading  bool
}

// Store is the explicit session state container.
//
// One Store is created at bootstrap and lives for the process. It replaces
// the ambient global the portal frontend kept; everything that needs the
// session receives the store (or the provider wrapping it) as a dependency.
type Store struct {
	mu       sync.Mutex
	identity Identity
	loading  bool

	nextSub int
	subs    map[int]func(Snapshot)
}

func NewStore() *Store {
	return &Store{
		identity: GuestIdentity(),
		subs:     map[int]func(Snapshot){},
	}
}

// Get returns the current snapshot.
func (s *Store) Get() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Snapshot{Identity: s.identity, Loading: s.loading}
}

// Set replaces the identity wholesale and notifies subscribers.
func (s *Store) Set(id Identity) {
	s.mu.Lock()
	s.identity = id
	snap := Snapshot{Identity: s.identity, Loading: s.loading}
	subs := s.snapshotSubs()
	s.mu.Unlock()

	notify(subs, snap)
}

// SetLoading flips the in-flight flag and notifies subscribers.
func (s *Store) SetLoading(loading bool) {
	s.mu.Lock()
	s.loading = loading
	snap := Snapshot{Identity: s.identity, Loading: s.loading}
	subs := s.snapshotSubs()
	s.mu.Unlock()

	notify(subs, snap)
}

// Subscribe registers a callback invoked after every state change.
// The returned function removes the subscription.
func (s *Store) Subscribe(fn func(Snapshot)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subs, id)
	}
}

func (s *Store) snapshotSubs() []func(Snapshot) {
	out := make([]func(Snapshot), 0, len(s.subs))
	for _, fn := range s.subs {
		out = append(out, fn)
	}
	return out
}

// notify runs outside the store lock so subscribers may read the store.
func notify(subs []func(Snapshot), snap Snapshot) {
	for _, fn := range subs {
		fn(snap)
	}
}
