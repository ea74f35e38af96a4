// Package builder provides reusable "functional-options"-style building
// blocks for constructing bipartite core.Graph fixtures consumed by kwok.Solve.
//
// The package offers the following key components:
//
//   - Configuration primitives:
//     – BuilderOption:     a function that mutates builderConfig before use.
//     – builderConfig:     holds RNG, weight function, partition prefixes.
//   - Edge-weight distributions (WeightFn implementations):
//     – DefaultWeightFn:   constant weight DefaultEdgeWeight.
//     – ConstantWeightFn:  fixed user-provided value.
//     – UniformWeightFn:   uniform ∼U[min,max].
//     – NormalWeightFn:    Gaussian ∼N(mean,stddev), clipped.
//     – ExponentialWeightFn: exponential ∼Exp(rate).
//   - Topology factories:
//     – CompleteBipartite(n1,n2): every cross-pair L_i—R_j present.
//     – RandomBipartite(n1,n2,p): each cross-pair present independently
//       with probability p (Erdős–Rényi-style); the result can feed
//       kwok.Solve via kwok.FromGraph.
//
// Guarantees:
//
//   - Idempotent configuration: re-running the same builder on g will not duplicate
//     vertices or edges.
//   - Fast-fail on invalid option parameters via panics in option-constructors.
//   - Sentinel errors (ErrTooFewVertices, ErrInvalidProbability, ErrNeedRandSource)
//     for invalid build parameters, checked via errors.Is.
//   - Documented algorithmic complexity per constructor.
//
// See individual function documentation for detailed contracts, panic conditions,
// parameter descriptions, and performance notes.
package builder
