package geopkg

import (
	"database/sql"
	"fmt"

	"github.com/geopkg-go/geopkg/wkb"
)

// FeatureClass is a spatial GeoPackage table: a Table plus one
// geometry column registered in gpkg_geometry_columns.
type FeatureClass struct {
	BaseTable
	geomName  string
	shapeType ShapeType
	srsID     int32
	hasZ      bool
	hasM      bool
}

func (f *FeatureClass) String() string {
	return fmt.Sprintf("FeatureClass(name=%s, shape=%s)", f.name, f.shapeType)
}

// GeometryColumn is the name of the column holding the geometry blob.
func (f *FeatureClass) GeometryColumn() string { return f.geomName }

// ShapeType is the geometry_type_name registered for this class.
func (f *FeatureClass) ShapeType() ShapeType { return f.shapeType }

// HasZ/HasM report the z/m dimensionality flags gpkg_geometry_columns
// was registered with.
func (f *FeatureClass) HasZ() bool { return f.hasZ }
func (f *FeatureClass) HasM() bool { return f.hasM }

// Extent reports gpkg_contents' cached min/max bounds for this table,
// and false if no extent has been recorded yet (min_x etc. are null
// until UpdateExtent is called).
func (f *FeatureClass) Extent() (wkb.Envelope, bool, error) {
	var minX, minY, maxX, maxY sql.NullFloat64
	row := f.geopackage.db.QueryRow(selectExtent, f.name)
	if err := row.Scan(&minX, &minY, &maxX, &maxY); err != nil {
		return wkb.Envelope{}, false, err
	}
	if !minX.Valid || !minY.Valid || !maxX.Valid || !maxY.Valid {
		return wkb.Envelope{}, false, nil
	}
	return wkb.Envelope{
		Code: wkb.EnvelopeXY,
		MinX: minX.Float64, MaxX: maxX.Float64,
		MinY: minY.Float64, MaxY: maxY.Float64,
	}, true, nil
}

// UpdateExtent writes env's XY bounds into gpkg_contents, the running
// summary readers use instead of scanning every row's geometry.
func (f *FeatureClass) UpdateExtent(env wkb.Envelope) error {
	_, err := f.geopackage.db.Exec(updateExtent, env.MinX, env.MinY, env.MaxX, env.MaxY, f.name)
	return err
}

func zmFlag(set bool) int {
	if set {
		return 1
	}
	return 0
}

func createFeatureClass(g *GeoPackage, name string, srs SpatialReferenceSystem, shape ShapeType,
	hasZ, hasM bool, fields []Field, description, geomName string, overwrite bool) (*FeatureClass, error) {
	if geomName == "" {
		geomName = "SHAPE"
	}
	if overwrite {
		if _, err := g.db.Exec(fmt.Sprintf(removeFeatureClass, name, quoteIdent(name))); err != nil {
			return nil, err
		}
	}

	ddl := fmt.Sprintf(createFeatureTable, quoteIdent(name), quoteIdent(geomName), string(shape), columnList(fields))
	if _, err := g.db.Exec(ddl); err != nil {
		return nil, err
	}
	if _, err := g.db.Exec(insertGpkgContentsShort, name, string(DataTypeFeatures), name, description, srs.ID); err != nil {
		return nil, err
	}
	if _, err := g.db.Exec(insertGpkgGeomCol, name, geomName, string(shape), srs.ID, zmFlag(hasZ), zmFlag(hasM)); err != nil {
		return nil, err
	}

	return &FeatureClass{
		BaseTable: BaseTable{geopackage: g, name: name},
		geomName:  geomName, shapeType: shape, srsID: srs.ID, hasZ: hasZ, hasM: hasM,
	}, nil
}
