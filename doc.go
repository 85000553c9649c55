// Package moora is a toolkit for multi-attribute decision making with the
// MOORA family of methods: given alternatives scored on several benefit and
// cost criteria, rank them from best to worst.
//
// 🚀 What is inside?
//
//	A small, deterministic, pure-Go library plus a CLI:
//		• Ratio system: weighted net sum of normalized ratios
//		• Reference point: Chebyshev distance to the ideal alternative
//		• Full multiplicative form (FMF): log product of benefits over costs
//		• MultiMOORA: pairwise dominance vote over the three methods above
//		• Pluggable normalization strategies (vector, sum)
//		• YAML / CSV decision-problem documents
//
// ✨ Why choose moora?
//
//   - Deterministic – ordinal ranks, ties broken by original index
//   - Fail-fast – every shape and direction checked before any arithmetic
//   - Pure functions – inputs are never mutated, safe from many goroutines
//   - Extensible – swap matrix or weight normalization via options
//
// Under the hood, everything is organized under these subpackages:
//
//	matrix/   — dense matrix, normalization kernels and axis reductions
//	criteria/ — optimization directions (max/min) and weight validation
//	rank/     — score-to-rank conversion and rank-vector dominance
//	moora/    — Ratio, RefPoint, FMF, MultiMOORA and the Solve dispatcher
//	problem/  — named, weighted decision problems from YAML or CSV
//	cmd/moora — command-line front-end (rank, methods, version)
//
// Quick example:
//
//	           cost   quality
//	  A0  →  [  2   ,   3   ]
//	  A1  →  [  1   ,   4   ]     moora.Ratio(...) → Rank [1 0]
//
//	go get github.com/katalvlaran/moora
package moora
