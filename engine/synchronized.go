package engine

import "sync"

// SynchronizedEngine wraps an Engine with a mutex so hosts that call
// Subscribe/Publish/Drain from more than one goroutine — for example
// one per accepted connection — can still use the single engine
// instance safely. The wrapped Engine itself carries no locks, per
// the design's single-threaded-cooperative core; locking lives here,
// one layer up, the way the teacher's Router layers its own
// sync.RWMutex on top of the lock-free-in-spirit Trie.
type SynchronizedEngine struct {
	mu sync.Mutex
	e  *Engine
}

// NewSynchronized wraps e for concurrent use.
func NewSynchronized(e *Engine) *SynchronizedEngine {
	return &SynchronizedEngine{e: e}
}

func (s *SynchronizedEngine) NewSubscriber(handle any) *Subscriber {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.e.NewSubscriber(handle)
}

func (s *SynchronizedEngine) Subscribe(filter string, sub *Subscriber) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.e.Subscribe(filter, sub)
}

func (s *SynchronizedEngine) Unsubscribe(filter string, sub *Subscriber) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.e.Unsubscribe(filter, sub)
}

func (s *SynchronizedEngine) UnsubscribeAll(sub *Subscriber) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.e.UnsubscribeAll(sub)
}

func (s *SynchronizedEngine) Publish(topic string, message []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.e.Publish(topic, message)
}

func (s *SynchronizedEngine) Drain() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.e.Drain()
}
