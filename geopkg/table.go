package geopkg

import (
	"database/sql"
	"fmt"
)

// BaseTable is the shared surface of Table and FeatureClass: a named
// handle onto one SQLite table living inside a GeoPackage.
type BaseTable struct {
	geopackage *GeoPackage
	name       string
}

// Name is the table's name as registered in gpkg_contents.
func (t *BaseTable) Name() string { return t.name }

// EscapedName is Name quoted as a SQL identifier, safe to interpolate
// into a statement.
func (t *BaseTable) EscapedName() string { return quoteIdent(t.name) }

// Count returns the number of rows currently in the table.
func (t *BaseTable) Count() (int, error) {
	row := t.geopackage.db.QueryRow(fmt.Sprintf("SELECT count(1) FROM %s", t.EscapedName()))
	var n int
	if err := row.Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

// Fields reports the table's columns via PRAGMA table_info.
func (t *BaseTable) Fields() ([]Field, error) {
	rows, err := t.geopackage.db.Query(fmt.Sprintf("PRAGMA table_info(%s)", t.EscapedName()))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var fields []Field
	for rows.Next() {
		var (
			cid     int
			name    string
			ftype   string
			notNull int
			dflt    sql.NullString
			pk      int
		)
		if err := rows.Scan(&cid, &name, &ftype, &notNull, &dflt, &pk); err != nil {
			return nil, err
		}
		fields = append(fields, Field{Name: name, Type: FieldType(ftype)})
	}
	return fields, rows.Err()
}

// Table is a non-spatial GeoPackage attribute table.
type Table struct {
	BaseTable
}

func (t *Table) String() string {
	return fmt.Sprintf("Table(name=%s)", t.name)
}

func createTable(g *GeoPackage, name string, fields []Field, description string, overwrite bool) (*Table, error) {
	if overwrite {
		if _, err := g.db.Exec(fmt.Sprintf(removeTable, name, quoteIdent(name))); err != nil {
			return nil, err
		}
	}
	ddl := fmt.Sprintf(createPlainTable, quoteIdent(name), columnList(fields))
	if _, err := g.db.Exec(ddl); err != nil {
		return nil, err
	}
	if _, err := g.db.Exec(insertGpkgContentsShort, name, string(DataTypeAttributes), name, description, nil); err != nil {
		return nil, err
	}
	return &Table{BaseTable{geopackage: g, name: name}}, nil
}
