package engine

import "sync/atomic"

// Subscriber is an opaque handle into the host's connection table plus
// the ordered list of trie leaves it is currently registered at. The
// leaf list exists solely so unsubscribeAll can tear down in O(subs)
// instead of walking the whole trie.
//
// Subscribers are totally ordered by Id, which is assigned once at
// creation and never reused — an injected integer identity, per the
// design notes, rather than Go's non-deterministic map/pointer order.
type Subscriber struct {
	Id     uint64
	Handle any

	leaves []*node
}

// idGenerator hands out strictly increasing subscriber identities.
// Kept on the Engine (not a package global) so independent engines in
// the same process don't contend on one counter.
type idGenerator struct {
	next atomic.Uint64
}

func (g *idGenerator) nextID() uint64 {
	return g.next.Add(1)
}

// NewSubscriber registers handle as a new subscriber with a freshly
// assigned identity. The returned Subscriber has no subscriptions yet;
// pass it to Subscribe to add one.
func (e *Engine) NewSubscriber(handle any) *Subscriber {
	return &Subscriber{
		Id:     e.ids.nextID(),
		Handle: handle,
	}
}

// subscriberSet is a node's subscriber list, kept sorted ascending by
// Id so drain's multi-way merge can walk it as an ordered cursor
// without a separate sort step.
type subscriberSet struct {
	members []*Subscriber
}

func (s *subscriberSet) len() int {
	return len(s.members)
}

func (s *subscriberSet) first() (*Subscriber, bool) {
	if len(s.members) == 0 {
		return nil, false
	}
	return s.members[0], true
}

// insert adds sub in sorted position. Re-subscribing the same
// subscriber to the same node is idempotent: the set already contains
// it, so nothing is added (the per-subscriber leaf list tolerates
// duplicates — see Subscriber.leaves).
func (s *subscriberSet) insert(sub *Subscriber) {
	i := s.search(sub.Id)
	if i < len(s.members) && s.members[i].Id == sub.Id {
		return
	}
	s.members = append(s.members, nil)
	copy(s.members[i+1:], s.members[i:])
	s.members[i] = sub
}

// remove deletes sub by Id, reporting whether it was present.
func (s *subscriberSet) remove(sub *Subscriber) bool {
	i := s.search(sub.Id)
	if i >= len(s.members) || s.members[i].Id != sub.Id {
		return false
	}
	s.members = append(s.members[:i], s.members[i+1:]...)
	return true
}

// search returns the index of the first member with Id >= id (binary
// search over the sorted slice).
func (s *subscriberSet) search(id uint64) int {
	lo, hi := 0, len(s.members)
	for lo < hi {
		mid := (lo + hi) / 2
		if s.members[mid].Id < id {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo
}
