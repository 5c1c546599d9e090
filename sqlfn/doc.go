// Package sqlfn implements the five SQL-callable spatial predicate
// functions over raw GeoPackage geometry blobs: ST_IsEmpty, ST_MinX,
// ST_MaxX, ST_MinY, and ST_MaxY. Every function swallows decode
// failures and returns SQL null rather than propagating an error, per
// the engine convention for scalar functions (spec.md §4.6, §7).
//
// The four bounding-box functions share a bounded, per-connection
// Cache keyed by blob identity so that invoking all four on the same
// row triggers at most one decode. The cache must not outlive the
// connection that owns it; package driver creates one Cache per
// registered connection.
package sqlfn
