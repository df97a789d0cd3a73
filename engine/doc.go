// Package engine implements a hierarchical topic-routing core for a
// publish/subscribe server: a trie keyed on '/'-separated topic
// segments, MQTT-style "+" and "#" wildcard matching, and a tick-based
// drain that coalesces every message published since the last drain
// into one deduplicated, order-preserving payload per subscriber.
//
// The engine itself owns no transport and no subscriber lifecycle —
// callers allocate a Subscriber, Subscribe it to one or more filters,
// Publish messages, and call Drain once per tick to flush. Drain
// invokes a caller-supplied DeliveryFunc once per subscriber that
// matched anything published since the previous Drain.
package engine
