// SPDX-License-Identifier: MIT
// Package: coursework/series
//
// Package series generates deterministic price series.
//
// Purpose:
//   - Fixtures for the loss package: property checks compare strategies on
//     thousands of generated series, so they must be reproducible.
//   - Input for the CLI ("coursework loss --random 20 --seed 7").
//
// Generators:
//   - Walk        — geometric random walk (discrete GBM), optional tick rounding
//   - Permutation — the values 1..n shuffled (distinct prices)
//
// Determinism policy:
//   - WithRand(r) wins; otherwise WithSeed(seed); seed 0 maps to a fixed
//     default seed. There is no time-based randomness anywhere.
//
// Error policy:
//   - Generators return sentinel errors (errors.go) and never panic.
//   - Option constructors panic on meaningless values (negative volatility,
//     non-positive start or tick, nil rng).
package series
