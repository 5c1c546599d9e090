// Package geopkg implements the GeoPackage lifecycle and typed schema
// layer on top of database/sql: creating and opening .gpkg SQLite
// files, bootstrapping the required gpkg_* tables, and composing the
// DDL/DML for regular tables and spatial feature classes. Geometry
// columns are read and written through package driver; this package
// never decodes a blob itself.
package geopkg
