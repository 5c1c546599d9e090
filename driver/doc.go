// Package driver is the GeoPackage adapter/converter bridge into
// Go's database/sql: encoding/decoding geometry values through
// driver.Valuer/sql.Scanner, and registering the five ST_* spatial
// predicates (package sqlfn) as SQLite scalar functions.
//
// Python's sqlite3 module selects a converter by a column's declared
// type name (register_adapter/register_converter); database/sql has
// no equivalent hook. This package's analogue is NamedGeometry: a
// Scanner/Valuer bound to one of the 24 standalone variant names at
// construction, so a caller declares which variant a column holds the
// same way a GeoPackage DDL script would, instead of the engine
// inferring it. Geometry (for callers that don't know the variant
// ahead of time) decodes by sniffing the WKB prefix, the same
// fallback path the ST_MinX/MaxX/MinY/MaxY predicates use internally.
package driver
