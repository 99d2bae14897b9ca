// Package coursework is a set of small, independent exercises implemented as
// pure Go packages, plus a CLI that runs them.
//
// 🚀 What is inside?
//
//	intervals/ — merge two positioned, labelled interval lists by overlap ratio
//	caesar/    — Caesar rotation cipher over ASCII letters
//	indian/    — Indian digit grouping (1,23,45,67,890.123)
//	loss/      — cheapest buy-then-sell-lower pair, brute force and O(n log n)
//	series/    — deterministic price-series generators for tests and demos
//
// ✨ Shared conventions:
//
//   - Pure, synchronous functions; no package keeps state between calls.
//   - Validation failures are sentinel errors, matched with errors.Is.
//   - Functional options (WithX) panic on meaningless values; algorithms never do.
//   - Deterministic: every random generator is seeded.
//
// The packages do not depend on each other. cmd/coursework wires them into a
// command-line tool:
//
//	go run ./cmd/coursework demo
//	go run ./cmd/coursework merge examples/intervals_a.yaml examples/intervals_b.json
package coursework
