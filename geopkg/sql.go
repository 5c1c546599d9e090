package geopkg

// SQL string constants the lifecycle and schema layers compose
// table/DDL statements from, carried over from the reference
// implementation's fixed bootstrap script rather than re-derived.

const bootstrapDDL = `
CREATE TABLE gpkg_spatial_ref_sys (
    srs_name                 TEXT    NOT NULL,
    srs_id                   INTEGER NOT NULL PRIMARY KEY,
    organization             TEXT    NOT NULL,
    organization_coordsys_id INTEGER NOT NULL,
    definition               TEXT    NOT NULL,
    description              TEXT
);

CREATE TABLE gpkg_contents (
    table_name  TEXT     NOT NULL PRIMARY KEY,
    data_type   TEXT     NOT NULL,
    identifier  TEXT     UNIQUE,
    description TEXT     DEFAULT '',
    last_change DATETIME NOT NULL DEFAULT (strftime('%Y-%m-%dT%H:%M:%fZ', 'now')),
    min_x       DOUBLE,
    min_y       DOUBLE,
    max_x       DOUBLE,
    max_y       DOUBLE,
    srs_id      INTEGER,
    CONSTRAINT fk_gc_r_srs_id FOREIGN KEY (srs_id) REFERENCES gpkg_spatial_ref_sys(srs_id)
);

CREATE TABLE gpkg_geometry_columns (
    table_name        TEXT    NOT NULL,
    column_name       TEXT    NOT NULL,
    geometry_type_name TEXT   NOT NULL,
    srs_id            INTEGER NOT NULL,
    z                 TINYINT NOT NULL,
    m                 TINYINT NOT NULL,
    CONSTRAINT pk_geom_cols PRIMARY KEY (table_name, column_name),
    CONSTRAINT uk_gc_table_name UNIQUE (table_name),
    CONSTRAINT fk_gc_tn FOREIGN KEY (table_name) REFERENCES gpkg_contents(table_name),
    CONSTRAINT fk_gc_srs FOREIGN KEY (srs_id) REFERENCES gpkg_spatial_ref_sys(srs_id)
);
`

const insertGpkgContentsShort = `
INSERT INTO gpkg_contents (table_name, data_type, identifier, description, srs_id)
VALUES (?, ?, ?, ?, ?)
`

const insertGpkgGeomCol = `
INSERT INTO gpkg_geometry_columns (table_name, column_name, geometry_type_name, srs_id, z, m)
VALUES (?, ?, ?, ?, ?, ?)
`

const insertGpkgSRS = `
INSERT INTO gpkg_spatial_ref_sys (srs_name, srs_id, organization, organization_coordsys_id, definition, description)
VALUES (?, ?, ?, ?, ?, ?)
`

const createFeatureTable = `CREATE TABLE %s (fid INTEGER NOT NULL PRIMARY KEY AUTOINCREMENT, %s %s%s)`

const createPlainTable = `CREATE TABLE %s (fid INTEGER NOT NULL PRIMARY KEY AUTOINCREMENT%s)`

const removeFeatureClass = `
DELETE FROM gpkg_contents WHERE lower(table_name) = lower('%[1]s');
DELETE FROM gpkg_geometry_columns WHERE lower(table_name) = lower('%[1]s');
DROP TABLE IF EXISTS %[2]s;
`

const removeTable = `
DELETE FROM gpkg_contents WHERE lower(table_name) = lower('%[1]s');
DROP TABLE IF EXISTS %[2]s;
`

const checkSRSExists = `SELECT srs_id FROM gpkg_spatial_ref_sys WHERE srs_id = ?`

const tableExists = `SELECT name FROM sqlite_master WHERE type = 'table' AND lower(name) = lower(?)`

const selectTablesByType = `SELECT table_name FROM gpkg_contents WHERE data_type = ?`

const selectExtent = `SELECT min_x, min_y, max_x, max_y FROM gpkg_contents WHERE lower(table_name) = lower(?)`

const updateExtent = `UPDATE gpkg_contents SET min_x = ?, min_y = ?, max_x = ?, max_y = ? WHERE lower(table_name) = lower(?)`

const hasMetadataExtensionTable = `
SELECT name FROM sqlite_master WHERE type = 'table' AND name = 'gpkg_metadata'
`

const createMetadataExtensionDDL = `
CREATE TABLE gpkg_metadata (
    id           INTEGER CONSTRAINT m_pk PRIMARY KEY ASC NOT NULL,
    md_scope     TEXT    NOT NULL DEFAULT 'dataset',
    md_standard_uri TEXT NOT NULL,
    mime_type    TEXT    NOT NULL DEFAULT 'text/xml',
    metadata     TEXT    NOT NULL DEFAULT ''
);
CREATE TABLE gpkg_metadata_reference (
    reference_scope TEXT     NOT NULL,
    table_name      TEXT,
    column_name     TEXT,
    row_id_value    INTEGER,
    timestamp       DATETIME NOT NULL DEFAULT (strftime('%Y-%m-%dT%H:%M:%fZ', 'now')),
    md_file_id      INTEGER  NOT NULL,
    md_parent_id    INTEGER,
    CONSTRAINT crmr_mfi_fk FOREIGN KEY (md_file_id) REFERENCES gpkg_metadata(id),
    CONSTRAINT crmr_mpi_fk FOREIGN KEY (md_parent_id) REFERENCES gpkg_metadata(id)
);
`

const hasSchemaExtensionTable = `
SELECT name FROM sqlite_master WHERE type = 'table' AND name = 'gpkg_data_columns'
`

const createSchemaExtensionDDL = `
CREATE TABLE gpkg_data_columns (
    table_name  TEXT    NOT NULL,
    column_name TEXT    NOT NULL,
    name        TEXT,
    title       TEXT,
    description TEXT,
    mime_type   TEXT,
    constraint_name TEXT,
    CONSTRAINT pk_gdc PRIMARY KEY (table_name, column_name)
);
`

const epsg4326WKT = `GEOGCS["WGS 84",DATUM["WGS_1984",SPHEROID["WGS 84",6378137,298.257223563,AUTHORITY["EPSG","7030"]],AUTHORITY["EPSG","6326"]],PRIMEM["Greenwich",0,AUTHORITY["EPSG","8901"]],UNIT["degree",0.01745329251994328,AUTHORITY["EPSG","9122"]],AUTHORITY["EPSG","4326"]]`

const esri4326WKT = `GEOGCS["GCS_WGS_1984",DATUM["D_WGS_1984",SPHEROID["WGS_1984",6378137,298.257223563]],PRIMEM["Greenwich",0],UNIT["Degree",0.017453292519943295]]`

// defaultSRSRecords is seeded into every new GeoPackage regardless of
// flavor: the undefined cartesian and geographic placeholder SRSes
// every gpkg_contents row may reference.
var defaultSRSRecords = []SpatialReferenceSystem{
	{
		Name: "Undefined Cartesian SRS", ID: -1, Organization: "NONE",
		OrganizationCoordSysID: -1, Definition: "undefined",
		Description: "undefined cartesian coordinate reference system",
	},
	{
		Name: "Undefined Geographic SRS", ID: 0, Organization: "NONE",
		OrganizationCoordSysID: 0, Definition: "undefined",
		Description: "undefined geographic coordinate reference system",
	},
}

func wgs84Record(flavor GPKGFlavor) SpatialReferenceSystem {
	def := epsg4326WKT
	name := "WGS 84"
	if flavor == FlavorESRI {
		def = esri4326WKT
		name = "GCS_WGS_1984"
	}
	return SpatialReferenceSystem{
		Name: name, ID: 4326, Organization: "EPSG",
		OrganizationCoordSysID: 4326, Definition: def,
	}
}
