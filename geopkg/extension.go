package geopkg

import "database/sql"

// HasMetadataExtension reports whether the gpkg_metadata extension
// tables already exist.
func HasMetadataExtension(db *sql.DB) (bool, error) {
	return tableExistsInMaster(db, hasMetadataExtensionTable)
}

// EnableMetadataExtension creates the gpkg_metadata/
// gpkg_metadata_reference tables if they are not already present.
// Full metadata-row CRUD is out of scope; this only establishes the
// tables so a caller can populate them directly.
func EnableMetadataExtension(db *sql.DB) error {
	enabled, err := HasMetadataExtension(db)
	if err != nil {
		return err
	}
	if enabled {
		return nil
	}
	_, err = db.Exec(createMetadataExtensionDDL)
	return err
}

// HasSchemaExtension reports whether the gpkg_data_columns table
// already exists.
func HasSchemaExtension(db *sql.DB) (bool, error) {
	return tableExistsInMaster(db, hasSchemaExtensionTable)
}

// EnableSchemaExtension creates the gpkg_data_columns table if it is
// not already present.
func EnableSchemaExtension(db *sql.DB) error {
	enabled, err := HasSchemaExtension(db)
	if err != nil {
		return err
	}
	if enabled {
		return nil
	}
	_, err = db.Exec(createSchemaExtensionDDL)
	return err
}

func tableExistsInMaster(db *sql.DB, query string) (bool, error) {
	rows, err := db.Query(query)
	if err != nil {
		return false, err
	}
	defer rows.Close()
	return rows.Next(), rows.Err()
}
