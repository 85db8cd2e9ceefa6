package workflow

import "sync"

// Subscription is one registered listener. Release detaches it; releasing
// twice is harmless.
type Subscription struct {
	set  *SubscriptionSet
	id   int
	once sync.Once
}

// Release detaches the listener from its set.
func (s *Subscription) Release() {
	if s == nil {
		return
	}
	s.once.Do(func() {
		s.set.remove(s.id)
	})
}

// SubscriptionSet holds change listeners. Each consumer subscribes itself
// and releases its own subscription when it goes away, so one consumer
// closing never silences the others.
type SubscriptionSet struct {
	mu        sync.Mutex
	nextID    int
	listeners map[int]func()
}

// NewSubscriptionSet creates an empty set.
func NewSubscriptionSet() *SubscriptionSet {
	return &SubscriptionSet{listeners: make(map[int]func())}
}

// Subscribe registers a listener and hands back its subscription.
func (s *SubscriptionSet) Subscribe(fn func()) *Subscription {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	id := s.nextID
	s.listeners[id] = fn
	return &Subscription{set: s, id: id}
}

// Notify invokes every live listener.
func (s *SubscriptionSet) Notify() {
	s.mu.Lock()
	fns := make([]func(), 0, len(s.listeners))
	for _, fn := range s.listeners {
		fns = append(fns, fn)
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}

// Len reports how many listeners are attached.
func (s *SubscriptionSet) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.listeners)
}

// Clear drops every listener at once. Held Subscription handles stay valid;
// releasing them afterwards is a no-op.
func (s *SubscriptionSet) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = make(map[int]func())
}

func (s *SubscriptionSet) remove(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.listeners, id)
}
