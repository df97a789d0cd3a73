package engine

import (
	"log/slog"
	"math"

	"github.com/nexusmq/core/engine/metrics"
	"github.com/nexusmq/core/pkg/logger"
)

// defaultTriggeredCapacity is the triggered-array width from the
// design notes: the intersection bitmap is 64 bits wide, so the
// number of distinct topics a single drain can handle is bounded at
// 64 unless the bitmap width is widened to match a larger capacity.
const defaultTriggeredCapacity = 64

// maxTriggeredCapacity is the largest TriggeredCapacity New accepts.
// drain.go keys its intersection cache on a uint64 bitmap (one bit per
// triggered topic); a capacity above 64 would let two distinct
// triggered-topic indices collide on the same bit and corrupt the
// cache, so New clamps rather than widening the key type.
const maxTriggeredCapacity = 64

// sentinelMin is the "no topics triggered yet" value for Engine.min:
// larger than any real subscriber Id, so the first triggered topic's
// smallest subscriber always replaces it.
const sentinelMin = math.MaxUint64

// DeliveryFunc is the host-supplied callback invoked once per
// subscriber per drain. Its return value is discarded by the engine;
// a callback that wants to apply backpressure must buffer internally.
// The callback must not call Subscribe, Unsubscribe, or Publish on the
// same engine re-entrantly — doing so is undefined.
type DeliveryFunc func(sub *Subscriber, payload []byte) int

// Config configures a new Engine.
type Config struct {
	// Deliver is invoked once per subscriber per Drain. Required;
	// New substitutes a no-op if left nil so construction never
	// panics, but a real host always supplies one.
	Deliver DeliveryFunc

	// TriggeredCapacity bounds the number of distinct topics a single
	// tick may trigger. Zero means defaultTriggeredCapacity (64); New
	// clamps any value above maxTriggeredCapacity (64) down to it,
	// since the intersection cache key is a 64-bit bitmap.
	TriggeredCapacity int

	// Logger receives structured subscribe/trim/publish/drain events.
	// Nil means a SlogLogger at Info level writing to stdout.
	Logger *logger.SlogLogger

	// Metrics receives publish/drain instrumentation. Nil means no
	// instrumentation (metrics.NewNoop()).
	Metrics *metrics.Set
}

// DefaultConfig returns a Config with every field at its documented
// zero-value default except Deliver, which the caller must still set.
func DefaultConfig() Config {
	return Config{
		TriggeredCapacity: defaultTriggeredCapacity,
		Logger:            logger.NewSlogLogger(slog.LevelInfo, nil),
		Metrics:           metrics.NewNoop(),
	}
}

// Engine owns a topic trie, routes publishes through it, and drains
// coalesced payloads to subscribers once per tick. It is not safe for
// concurrent use by multiple goroutines — see SynchronizedEngine for
// a locking wrapper.
type Engine struct {
	root *node
	ids  idGenerator

	deliver  DeliveryFunc
	log      *logger.SlogLogger
	metrics  *metrics.Set
	capacity int

	messageID uint64

	triggered    []*node
	numTriggered int
	min          uint64
}

// New constructs an empty Engine with a lone root node.
func New(cfg Config) *Engine {
	if cfg.TriggeredCapacity <= 0 {
		cfg.TriggeredCapacity = defaultTriggeredCapacity
	}
	if cfg.TriggeredCapacity > maxTriggeredCapacity {
		cfg.TriggeredCapacity = maxTriggeredCapacity
	}
	if cfg.Deliver == nil {
		cfg.Deliver = func(*Subscriber, []byte) int { return 0 }
	}
	if cfg.Logger == nil {
		cfg.Logger = logger.NewSlogLogger(slog.LevelInfo, nil)
	}
	if cfg.Metrics == nil {
		cfg.Metrics = metrics.NewNoop()
	}

	e := &Engine{
		root:      newNode("", nil),
		deliver:   cfg.Deliver,
		log:       cfg.Logger,
		metrics:   cfg.Metrics,
		capacity:  cfg.TriggeredCapacity,
		triggered: make([]*node, cfg.TriggeredCapacity),
		min:       sentinelMin,
	}
	e.log.Info("engine constructed", "triggeredCapacity", cfg.TriggeredCapacity)
	return e
}
