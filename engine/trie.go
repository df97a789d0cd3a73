package engine

// Subscribe registers sub at the node addressed by filter, creating
// any missing segments along the way. Re-subscribing the same
// subscriber to the same filter is idempotent at the subscriber-set
// level (subscriberSet.insert no-ops on a duplicate Id) but still
// appends a leaf reference to sub.leaves — tolerated duplication whose
// only cost is a harmless extra no-op during unsubscribeAll.
func (e *Engine) Subscribe(filter string, sub *Subscriber) error {
	if err := validateFilter(filter); err != nil {
		return err
	}

	leaf := e.navigateToNode(filter)
	leaf.subs.insert(sub)
	sub.leaves = append(sub.leaves, leaf)

	e.log.Debug("subscribed", "filter", filter, "subscriberId", sub.Id)
	return nil
}

// navigateToNode walks filter's segments from the root, creating
// nodes lazily, and wires the parent's wildcard shortcut whenever a
// segment is exactly "+" or "#" (invariant 2).
func (e *Engine) navigateToNode(filter string) *node {
	cur := e.root
	for _, level := range splitTopicLevels(filter) {
		child, ok := cur.children[level]
		if !ok {
			child = newNode(level, cur)
			cur.children[level] = child
			switch level {
			case "+":
				cur.wildcardChild = child
			case "#":
				cur.terminatingWildcardChild = child
			}
		}
		cur = child
	}
	return cur
}

// Unsubscribe removes sub from the single leaf addressed by filter,
// trimming the path back toward the root if that leaf becomes empty.
// Declared by the external interface as optional (spec §4.1); provided
// here since unsubscribeAll already needs trimTree.
func (e *Engine) Unsubscribe(filter string, sub *Subscriber) bool {
	leaf := e.findNode(filter)
	if leaf == nil {
		return false
	}
	if !leaf.subs.remove(sub) {
		return false
	}

	sub.leaves = removeLeafRef(sub.leaves, leaf)
	e.trimTree(leaf)
	return true
}

// findNode returns the node addressed by filter without creating
// anything, or nil if any segment along the path is absent.
func (e *Engine) findNode(filter string) *node {
	cur := e.root
	for _, level := range splitTopicLevels(filter) {
		child, ok := cur.children[level]
		if !ok {
			return nil
		}
		cur = child
	}
	return cur
}

// UnsubscribeAll detaches sub from every leaf it is registered at and
// trims each path. A nil subscriber is a no-op.
func (e *Engine) UnsubscribeAll(sub *Subscriber) {
	if sub == nil {
		return
	}
	leaves := sub.leaves
	sub.leaves = nil
	for _, leaf := range leaves {
		leaf.subs.remove(sub)
		e.trimTree(leaf)
	}
	e.log.Debug("unsubscribed all", "subscriberId", sub.Id, "leaves", len(leaves))
}

// trimTree removes n from its parent's children (and wildcard
// shortcut, if applicable) when n has become a dead leaf, and recurses
// toward the root. The root is never pruned.
func (e *Engine) trimTree(n *node) {
	for n != e.root && n.isLeafCandidate() {
		parent := n.parent
		switch n.name {
		case "+":
			parent.wildcardChild = nil
		case "#":
			parent.terminatingWildcardChild = nil
		}
		delete(parent.children, n.name)
		n = parent
	}
}

func removeLeafRef(leaves []*node, target *node) []*node {
	for i, l := range leaves {
		if l == target {
			return append(leaves[:i], leaves[i+1:]...)
		}
	}
	return leaves
}
