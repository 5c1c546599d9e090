package geopkg

// GPKGFlavor selects which default SRS 4326 definition Create seeds
// the gpkg_spatial_ref_sys table with.
type GPKGFlavor string

const (
	FlavorESRI GPKGFlavor = "ESRI"
	FlavorEPSG GPKGFlavor = "EPSG"
)

// DataType is the gpkg_contents.data_type value for a table.
type DataType string

const (
	DataTypeFeatures   DataType = "features"
	DataTypeAttributes DataType = "attributes"
	DataTypeTiles      DataType = "tiles"
)

// ShapeType is a gpkg_geometry_columns.geometry_type_name value, one
// of the six standalone base container kinds without a Z/M suffix.
type ShapeType string

const (
	ShapePoint           ShapeType = "POINT"
	ShapeLineString      ShapeType = "LINESTRING"
	ShapePolygon         ShapeType = "POLYGON"
	ShapeMultiPoint      ShapeType = "MULTIPOINT"
	ShapeMultiLineString ShapeType = "MULTILINESTRING"
	ShapeMultiPolygon    ShapeType = "MULTIPOLYGON"
)

// FieldType is a column's declared SQLite type, including both the
// shape types (a geometry column's type) and the ordinary SQL types.
type FieldType string

const (
	FieldBoolean   FieldType = "BOOLEAN"
	FieldTinyInt   FieldType = "TINYINT"
	FieldSmallInt  FieldType = "SMALLINT"
	FieldMediumInt FieldType = "MEDIUMINT"
	FieldInteger   FieldType = "INTEGER"
	FieldFloat     FieldType = "FLOAT"
	FieldDouble    FieldType = "DOUBLE"
	FieldReal      FieldType = "REAL"
	FieldText      FieldType = "TEXT"
	FieldBlob      FieldType = "BLOB"
	FieldDate      FieldType = "DATE"
	FieldTimestamp FieldType = "TIMESTAMP"
	FieldDateTime  FieldType = "DATETIME"
)

// EnvelopeCode mirrors wkb.EnvelopeCode's five values for use in
// gpkg_geometry_columns' z/m flag bookkeeping and schema reporting,
// as a geopkg-level type separate from wkb.EnvelopeCode.
type EnvelopeCode int

const (
	EnvelopeEmpty EnvelopeCode = iota
	EnvelopeXY
	EnvelopeXYZ
	EnvelopeXYM
	EnvelopeXYZM
)
