package engine

// Publish walks the trie from the root and buffers message at every
// node whose filter matches topic, under the engine's current
// messageID. Matching nodes not already triggered this tick are
// appended to the triggered list; the messageID is incremented once
// publish returns, regardless of how many nodes matched.
//
// Returns ErrInvalidTopic if topic is empty or contains a wildcard
// byte, and ErrTriggeredCapacityExceeded if a match would trigger more
// than the engine's configured capacity of distinct topics — in that
// case every match within capacity is still recorded, only the
// overflowing ones are dropped.
func (e *Engine) Publish(topic string, message []byte) error {
	if err := validateTopic(topic); err != nil {
		return err
	}
	e.metrics.Publish()

	segments := splitTopicLevels(topic)
	overflowed := false
	e.publishWalk(e.root, segments, 0, e.messageID, message, &overflowed)
	e.messageID++

	if overflowed {
		e.log.Warn("triggered topic capacity exceeded", "topic", topic, "capacity", e.capacity)
		e.metrics.TriggeredOverflow()
		return ErrTriggeredCapacityExceeded
	}
	return nil
}

// publishWalk implements spec §4.2's three-step match at each
// position: the terminating wildcard child always matches (even the
// empty tail, which is why this check runs before anything else), the
// single-level wildcard child recurses consuming exactly one segment,
// and the exact child continues the walk or stops it.
func (e *Engine) publishWalk(cur *node, segments []string, idx int, messageID uint64, message []byte, overflowed *bool) {
	if cur.terminatingWildcardChild != nil {
		if !e.recordTrigger(cur.terminatingWildcardChild, messageID, message) {
			*overflowed = true
		}
	}

	if cur.wildcardChild != nil && idx < len(segments) {
		e.publishWalk(cur.wildcardChild, segments, idx+1, messageID, message, overflowed)
	}

	if idx == len(segments) {
		if !e.recordTrigger(cur, messageID, message) {
			*overflowed = true
		}
		return
	}

	child, ok := cur.children[segments[idx]]
	if !ok {
		return
	}
	e.publishWalk(child, segments, idx+1, messageID, message, overflowed)
}

// recordTrigger buffers message at n under messageID, marking n
// triggered and appending it to the triggered list on its first match
// this tick. Reports false (and records nothing) if n is not already
// triggered and the triggered list is already at capacity — the
// message is dropped for this node rather than corrupting the fixed
// triggered array or violating the "triggered implies buffered"
// invariant for an untracked node.
func (e *Engine) recordTrigger(n *node, messageID uint64, message []byte) bool {
	if !n.triggered {
		if e.numTriggered >= e.capacity {
			return false
		}
		e.triggered[e.numTriggered] = n
		e.numTriggered++
		n.triggered = true

		if first, ok := n.subs.first(); ok && first.Id < e.min {
			e.min = first.Id
		}
	}

	payload := make([]byte, len(message))
	copy(payload, message)
	n.messages = append(n.messages, messageEntry{id: messageID, payload: payload})
	return true
}
