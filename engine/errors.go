package engine

import "errors"

var (
	// ErrInvalidTopic is returned by Publish when the topic is empty,
	// too long, or contains a wildcard byte ('+' or '#') — publishing
	// is defined only for concrete topics, never filters.
	ErrInvalidTopic = errors.New("engine: invalid topic")

	// ErrInvalidFilter is returned by Subscribe when the filter violates
	// wildcard placement rules: '#' must be the whole final segment, '+'
	// must be the whole segment it occupies. Unsubscribe does not
	// validate its filter; it reports false for a filter it cannot find.
	ErrInvalidFilter = errors.New("engine: invalid topic filter")

	// ErrTriggeredCapacityExceeded is returned by Publish when a
	// message would trigger more distinct topics than the engine's
	// configured capacity in a single tick. Already-triggered topics
	// still receive the message; only the newly-matching topic that
	// would overflow the triggered set is dropped. The host's
	// contract is to Drain before this can happen.
	ErrTriggeredCapacityExceeded = errors.New("engine: triggered topic capacity exceeded")
)
