// Package builder contains unit tests for the configuration primitives
// (builderConfig and BuilderOption) to ensure correct application and override behavior.
package builder

import (
	"fmt"
	"math/rand"
	"strings"
	"testing"
)

// assertPanics runs f and asserts that it panics with a message containing wantSubstr.
func assertPanics(t *testing.T, f func(), wantSubstr string) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("expected panic containing %q, got none", wantSubstr)
			return
		}
		got := fmt.Sprint(r)
		if wantSubstr != "" && !strings.Contains(got, wantSubstr) {
			t.Fatalf("panic mismatch: want substring %q, got %q", wantSubstr, got)
		}
	}()
	f()
}

// TestRNGOptions verifies that RNG options configure the rng field correctly,
// including reproducibility with WithSeed and a fail-fast panic on WithRand(nil).
func TestRNGOptions(t *testing.T) {
	t.Parallel() // allow parallel execution

	// 1. By default, rng should be nil (deterministic behavior)
	cfgDefault := newBuilderConfig()
	if cfgDefault.rng != nil {
		t.Errorf("default rng: expected nil, got %v", cfgDefault.rng)
	}

	// 2. WithRand should set rng when non-nil
	expRNG := rand.New(rand.NewSource(123))
	cfgWithRand := newBuilderConfig(WithRand(expRNG))
	if cfgWithRand.rng != expRNG {
		t.Errorf("WithRand: expected rng %v, got %v", expRNG, cfgWithRand.rng)
	}

	// 3. WithRand(nil) MUST panic (fail-fast), not no-op
	assertPanics(t, func() { _ = newBuilderConfig(WithRand(nil)) }, "WithRand(nil)")

	// 4. WithSeed should produce reproducible RNG
	cfgSeed1 := newBuilderConfig(WithSeed(42))
	a1 := cfgSeed1.rng.Int63()
	b1 := cfgSeed1.rng.Int63()
	cfgSeed2 := newBuilderConfig(WithSeed(42))
	a2 := cfgSeed2.rng.Int63()
	b2 := cfgSeed2.rng.Int63()
	if a1 != a2 || b1 != b2 {
		t.Errorf("WithSeed reproducibility: got (%d,%d) vs (%d,%d)", a1, b1, a2, b2)
	}
}

// TestWeightFnOptions verifies that weight function options apply correctly,
// override in order, and panic on a nil WeightFn.
func TestWeightFnOptions(t *testing.T) {
	t.Parallel() // allow parallel execution

	const constVal = int64(9)
	const min, max = int64(2), int64(4)
	rng := rand.New(rand.NewSource(1))

	// 1. Default configuration: weightFn should be DefaultWeightFn
	cfgDefault := newBuilderConfig()
	if w := cfgDefault.weightFn(nil); w != DefaultEdgeWeight {
		t.Errorf("default weightFn(nil): expected %d, got %d", DefaultEdgeWeight, w)
	}

	// 2. WithConstantWeight should override to constant value
	cfgConst := newBuilderConfig(WithConstantWeight(constVal))
	if w := cfgConst.weightFn(nil); w != constVal {
		t.Errorf("WithConstantWeight(nil): expected %d, got %d", constVal, w)
	}
	if w := cfgConst.weightFn(rng); w != constVal {
		t.Errorf("WithConstantWeight(rng): expected %d, got %d", constVal, w)
	}

	// 3. WithUniformWeight should override to uniform sampler
	cfgUni := newBuilderConfig(WithUniformWeight(min, max))
	// nil rng yields default
	if w := cfgUni.weightFn(nil); w != DefaultEdgeWeight {
		t.Errorf("WithUniformWeight(nil rng): expected default %d, got %d", DefaultEdgeWeight, w)
	}
	// seeded rng yields value in [min,max]
	val := cfgUni.weightFn(rng)
	if val < min || val > max {
		t.Errorf("WithUniformWeight(rng): expected in [%d,%d], got %d", min, max, val)
	}

	// 4. Override order: last option wins
	cfgOverride := newBuilderConfig(WithConstantWeight(1), WithUniformWeight(min, max))
	val2 := cfgOverride.weightFn(rng)
	if val2 < min || val2 > max {
		t.Errorf("override order: expected uniform in [%d,%d], got %d", min, max, val2)
	}

	// 5. WithWeightFn(nil) MUST panic (fail-fast)
	assertPanics(t, func() { _ = newBuilderConfig(WithWeightFn(nil)) }, "WithWeightFn(nil)")
}
