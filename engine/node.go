package engine

// node is one segment of the topic trie. Children are owned by the
// node; parent is a non-owning back-reference used only for pruning.
// wildcardChild and terminatingWildcardChild alias entries already
// present in children, giving O(1) access to the "+" and "#" branches
// during publish without a map lookup.
type node struct {
	name   string
	parent *node

	children                 map[string]*node
	wildcardChild            *node
	terminatingWildcardChild *node

	subs subscriberSet

	messages  []messageEntry
	triggered bool
}

// messageEntry is one published payload buffered at a node, tagged
// with the message id that ordered and deduplicates it during drain.
type messageEntry struct {
	id      uint64
	payload []byte
}

func newNode(name string, parent *node) *node {
	return &node{
		name:     name,
		parent:   parent,
		children: make(map[string]*node),
	}
}

// isLeafCandidate reports whether node has nothing left keeping it
// alive: no subscribers, no children, no wildcard shortcuts.
func (n *node) isLeafCandidate() bool {
	return n.subs.len() == 0 && len(n.children) == 0 &&
		n.wildcardChild == nil && n.terminatingWildcardChild == nil
}

// resetTick clears everything a drain must re-establish per tick,
// per the invariant that triggered implies (and is implied by) a
// non-empty buffer only during the interval between publish and drain.
func (n *node) resetTick() {
	n.messages = n.messages[:0]
	n.triggered = false
}
