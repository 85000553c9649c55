// Package matrix provides the dense numeric storage and the normalization
// kernels used by the MOORA ranking engine.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with safe At/Set accessors and a
//     finite-only numeric policy (NaN/±Inf rejected on ingestion).
//   - Axis-aware normalizers: VectorNorm (Euclidean), SumNormMatrix and the
//     weight normalizers SumNorm / VectorNormVec.
//   - Corrective transforms applied before taking logarithms:
//     PushNegatives (shift a line to be non-negative) and AddOneToZero.
//   - Small reductions and products (AxisMax, AxisMin, MatVec, Log).
//
// Every operation is pure: inputs are never mutated, a new matrix of the same
// shape is returned. Degenerate lines (an all-zero column under VectorNorm, a
// non-positive entry under Log) are reported as ErrDegenerateColumn instead of
// silently producing NaN or -Inf.
//
// Normalization strategies are plain function values (MatrixNormFunc,
// VectorNormFunc) so callers can swap them without touching algorithm code.
package matrix
