package objectid

import (
	"log/slog"
	"math/rand"
	"sync"
	"sync/atomic"
	"time"
)

// Generator mints fresh ObjectIDs from a wall clock, a process fingerprint
// and an atomic counter. All methods are safe for concurrent use.
//
// Most callers want the process-wide generator reached through Generate or
// Default; NewGenerator exists so tests and multi-tenant hosts can inject
// deterministic clock, fingerprint and counter sources.
type Generator struct {
	now         func() time.Time
	fingerprint uint32
	counter     atomic.Uint32
	logger      *slog.Logger
}

type generatorConfig struct {
	now         func() time.Time
	source      FingerprintSource
	fingerprint *uint32
	seed        *uint32
	logger      *slog.Logger
}

// Option configures a Generator.
type Option func(*generatorConfig)

// WithClock substitutes the wall clock used for the time field.
func WithClock(now func() time.Time) Option {
	return func(c *generatorConfig) { c.now = now }
}

// WithFingerprint pins the machine field to a fixed value, skipping
// derivation entirely.
func WithFingerprint(fp uint32) Option {
	return func(c *generatorConfig) { c.fingerprint = &fp }
}

// WithFingerprintSource substitutes the identity signals used to derive
// the fingerprint.
func WithFingerprintSource(src FingerprintSource) Option {
	return func(c *generatorConfig) { c.source = src }
}

// WithCounterSeed sets the initial counter value instead of a random seed.
func WithCounterSeed(seed uint32) Option {
	return func(c *generatorConfig) { c.seed = &seed }
}

// WithLogger routes derivation diagnostics to `l` instead of slog.Default.
func WithLogger(l *slog.Logger) Option {
	return func(c *generatorConfig) { c.logger = l }
}

// NewGenerator builds a Generator, deriving the process fingerprint unless
// one was pinned with WithFingerprint. A non-nil error is always a
// *FingerprintError and means the generator must not be used.
func NewGenerator(opts ...Option) (*Generator, error) {
	cfg := generatorConfig{now: time.Now, logger: slog.Default()}
	for _, opt := range opts {
		opt(&cfg)
	}

	var fp uint32
	if cfg.fingerprint != nil {
		fp = *cfg.fingerprint
	} else {
		derived, err := deriveFingerprint(cfg.source, cfg.logger)
		if err != nil {
			return nil, err
		}
		fp = derived
	}

	g := &Generator{now: cfg.now, fingerprint: fp, logger: cfg.logger}
	if cfg.seed != nil {
		g.counter.Store(*cfg.seed)
	} else {
		g.counter.Store(rand.Uint32())
	}
	return g, nil
}

// Generate mints a fresh ObjectID from the current wall-clock second, the
// generator's fingerprint and the next counter value. The counter is
// fetched-and-incremented atomically, so no two concurrent calls observe
// the same value; wraparound at the 32-bit boundary is allowed.
func (g *Generator) Generate() ObjectID {
	return ObjectID{
		time:    uint32(g.now().Unix()),
		machine: g.fingerprint,
		counter: g.counter.Add(1) - 1,
		fresh:   true,
	}
}

// GenerateAt builds an ObjectID with an explicit time and counter but the
// generator's own fingerprint, without touching the shared counter. The
// result is not marked fresh. Intended for deterministic construction in
// tests and backfills.
func (g *Generator) GenerateAt(t time.Time, counter uint32) ObjectID {
	return ObjectID{time: uint32(t.Unix()), machine: g.fingerprint, counter: counter}
}

// Fingerprint returns the machine field value stamped on every ObjectID
// this generator mints.
func (g *Generator) Fingerprint() uint32 { return g.fingerprint }

// CounterValue returns the counter value the next Generate call will
// consume. The snapshot may be stale immediately after reading when other
// goroutines are generating concurrently.
func (g *Generator) CounterValue() uint32 { return g.counter.Load() }

var (
	defaultOnce sync.Once
	defaultGen  *Generator
	defaultErr  error
)

// Default returns the process-wide Generator, deriving its fingerprint on
// first use. The derivation runs at most once per process; concurrent
// first callers block until it completes, and every later call is
// lock-free. The error, if any, is the same *FingerprintError for the
// lifetime of the process.
func Default() (*Generator, error) {
	defaultOnce.Do(func() {
		defaultGen, defaultErr = NewGenerator()
	})
	return defaultGen, defaultErr
}

// Generate mints a fresh ObjectID from the process-wide Generator.
func Generate() (ObjectID, error) {
	g, err := Default()
	if err != nil {
		return ObjectID{}, err
	}
	return g.Generate(), nil
}
