// Package geom implements the 28-variant GeoPackage geometry type
// taxonomy — Point, LineString, LinearRing, Polygon, MultiPoint,
// MultiLineString, and MultiPolygon, each in plain, Z, M, and ZM form —
// on top of the header/envelope/primitive codec in package wkb.
//
// Rather than 28 distinct Go types, each container kind is one struct
// parameterized by a hasZ/hasM pair carried as instance fields; the WKB
// type code, dimension, and registered SQL type name for a given
// (kind, hasZ, hasM) triple are looked up from a small variant table
// in kind.go. LinearRing is a container kind like any other, but it is
// never a standalone decodable/encodable blob on its own: it exists
// only as a Polygon's ring representation, so its 4 (hasZ, hasM)
// combinations are excluded from the 24 standalone variants
// (StandaloneVariants) that package driver decodes by name.
//
// # Lazy decoding
//
// Every aggregate kind (everything but Point) decodes eagerly only far
// enough to read the header, envelope, and WKB prefix; the coordinate
// payload is kept as a raw byte view (pending) and parsed on first call
// to an accessor such as Coords, Rings, or Lines. A truncated body or a
// coordinate count that does not fit the bytes present is reported by
// that accessor, not swallowed into an empty result, and the failure is
// cached so repeated calls return it without reparsing. Envelope and
// Encode call the accessor internally, so both propagate the same
// error for a geometry whose body turns out corrupt. Per the
// concurrency model, a geometry's first materialization is treated as
// a write: decoded aggregates are not safe to access concurrently from
// multiple goroutines until that first access has completed.
package geom
