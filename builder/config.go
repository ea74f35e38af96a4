// Package builder provides internal configuration types and functional options
// for graph constructors. It centralizes common settings such as random number
// generator, edge weight distribution, and bipartite partition prefixes to
// keep builder implementations DRY and consistent.
//
// The key type is BuilderOption, a function that mutates a builderConfig.
// builderConfig holds:
//   - rng:     *rand.Rand source for randomness (nil → deterministic).
//   - weightFn: WeightFn to produce edge weights given an RNG.
//   - leftPrefix, rightPrefix: label prefixes for bipartite constructors.
//
// Use newBuilderConfig to obtain a config with sensible defaults, then apply
// any number of BuilderOption in order. Later options override earlier ones.
// All option application happens here; the With* constructors themselves
// live in options.go and (for weight distributions) weight_fn.go.
//
// Complexity: newBuilderConfig applies N options in O(N) time, O(1) extra space.
package builder

import (
	"math/rand"
)

// defaultLeftPrefix and defaultRightPrefix label the two sides of a bipartite
// graph when WithPartitionPrefix is never called.
const (
	defaultLeftPrefix  = "L"
	defaultRightPrefix = "R"
)

// builderConfig holds the configurable parameters shared by every
// Constructor implementation.
//
// builderConfig is not safe for concurrent mutation; each builder invocation
// should create its own config via newBuilderConfig.
type builderConfig struct {
	rng      *rand.Rand // optional RNG; nil means deterministic behavior
	weightFn WeightFn   // function to generate edge weights

	leftPrefix  string // label prefix for the left partition (bipartite)
	rightPrefix string // label prefix for the right partition (bipartite)
}

// newBuilderConfig returns a builderConfig initialized with defaults, then
// applies each provided BuilderOption in order. If opts is empty, returns
// defaults: nil RNG, DefaultWeightFn, prefixes "L"/"R".
//
// Complexity: O(len(opts)) time, O(1) extra space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		rng:         nil,             // no RNG → deterministic weight function
		weightFn:    DefaultWeightFn, // constant DefaultEdgeWeight
		leftPrefix:  defaultLeftPrefix,
		rightPrefix: defaultRightPrefix,
	}

	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	// Empty prefixes mean "use defaults", never an empty label.
	if cfg.leftPrefix == "" {
		cfg.leftPrefix = defaultLeftPrefix
	}
	if cfg.rightPrefix == "" {
		cfg.rightPrefix = defaultRightPrefix
	}

	return cfg
}
