package viewstate

// Store owns the single mutable snapshot. It is driven from one event loop
// at a time and is not safe for concurrent Dispatch.
type Store struct {
	state     State
	listeners []func(prev, next State, a Action)
}

func NewStore(initial State) *Store {
	return &Store{state: initial}
}

// State returns a copy of the current snapshot.
func (s *Store) State() State {
	return s.state
}

// Dispatch applies a and notifies listeners with the before and after
// snapshots. It returns the new state.
func (s *Store) Dispatch(a Action) State {
	prev := s.state
	s.state = Reduce(prev, a)
	for _, fn := range s.listeners {
		fn(prev, s.state, a)
	}
	return s.state
}

// Subscribe registers fn to run after every Dispatch.
func (s *Store) Subscribe(fn func(prev, next State, a Action)) {
	s.listeners = append(s.listeners, fn)
}
