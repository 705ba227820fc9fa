package pure

import (
	"time"

	"github.com/google/uuid"
	"github.com/rickb777/date/v2/timespan"
	"go.uber.org/zap"
)

// Stats reports how a cacher has been used so far.
type Stats struct {
	Hits     uint64
	Misses   uint64
	Failures uint64

	// LastCompute is the time span of the most recent call into the calculation.
	LastCompute timespan.TimeSpan
}

// memo is the storage shared by every cacher kind. It only ever grows.
type memo[K comparable, O any] struct {
	values map[K]O
	id     string
	logger *zap.Logger
	stats  Stats
}

func newMemo[K comparable, O any](opts []Option) memo[K, O] {
	o := collectOptions(opts)
	id := uuid.New().String()
	logger := o.logger.With(zap.String("cacher", id))
	if o.name != "" {
		logger = logger.With(zap.String("name", o.name))
	}
	return memo[K, O]{
		values: make(map[K]O),
		id:     id,
		logger: logger,
	}
}

// Len returns the number of cached entries.
func (m *memo[K, O]) Len() int {
	return len(m.values)
}

// Stats returns a snapshot of the usage counters.
func (m *memo[K, O]) Stats() Stats {
	return m.stats
}

// ID returns the instance id carried by every log line of the cacher.
func (m *memo[K, O]) ID() string {
	return m.id
}

func (m *memo[K, O]) load(key K) (O, bool) {
	v, ok := m.values[key]
	if ok {
		m.stats.Hits++
		m.debug("cache hit", key)
	} else {
		m.stats.Misses++
		m.debug("cache miss", key)
	}
	return v, ok
}

// compute runs calculation and stores its output under key unless it fails.
// A panic inside calculation leaves the memo untouched.
func (m *memo[K, O]) compute(key K, calculation func() (O, error)) (O, error) {
	start := time.Now()
	v, err := calculation()
	span := timespan.BetweenTimes(start, time.Now())
	m.stats.LastCompute = span

	if err != nil {
		m.stats.Failures++
		if ce := m.logger.Check(zap.WarnLevel, "computation failed"); ce != nil {
			ce.Write(zap.Uint64("key_digest", keyDigest(key)), zap.Error(err))
		}
		var zero O
		return zero, err
	}

	m.values[key] = v
	m.debug("value computed", key,
		zap.Time("started", span.Start()),
		zap.Duration("took", span.Duration()),
	)
	return v, nil
}

func (m *memo[K, O]) debug(msg string, key K, fields ...zap.Field) {
	if ce := m.logger.Check(zap.DebugLevel, msg); ce != nil {
		ce.Write(append(fields, zap.Uint64("key_digest", keyDigest(key)))...)
	}
}
