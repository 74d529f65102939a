package idle

import (
	"sync"
	"time"
)

// ActivityStore is the shared last-activity clock for every watcher of one
// admin session. Writes are last-writer-wins, and accepted writes are
// broadcast to subscribers so activity observed by one watcher suppresses
// an imminent logout in all of them.
type ActivityStore interface {
	// Touch records activity and reports whether the clock advanced. A
	// timestamp older than the recorded one is ignored.
	Touch(at time.Time) bool
	// Last returns the newest recorded activity instant.
	Last() time.Time
	// Subscribe registers a callback invoked for every accepted write. The
	// returned function cancels the subscription.
	Subscribe(fn func(at time.Time)) (cancel func())
}

// NewActivityStore returns an in-memory ActivityStore shared by reference.
func NewActivityStore() ActivityStore {
	return &activityStore{subscribers: make(map[int]func(time.Time))}
}

type activityStore struct {
	mu          sync.Mutex
	last        time.Time
	subscribers map[int]func(time.Time)
	nextID      int
}

func (s *activityStore) Touch(at time.Time) bool {
	s.mu.Lock()
	if at.Before(s.last) {
		s.mu.Unlock()
		return false
	}
	s.last = at
	notify := make([]func(time.Time), 0, len(s.subscribers))
	for _, fn := range s.subscribers {
		notify = append(notify, fn)
	}
	s.mu.Unlock()

	// Subscribers run outside the lock so they may touch the store again.
	for _, fn := range notify {
		fn(at)
	}
	return true
}

func (s *activityStore) Last() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.last
}

func (s *activityStore) Subscribe(fn func(at time.Time)) func() {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.subscribers[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subscribers, id)
		s.mu.Unlock()
	}
}
