package geopkg

import (
	"database/sql"
	"fmt"
	"os"
	"time"

	"github.com/geopkg-go/geopkg/driver"
	"github.com/geopkg-go/geopkg/internal/options"
)

// Config gathers connection-level settings an Option may set before
// Create or Open dials the database. Mirrors the teacher's functional-
// option generic (internal/options) rather than a struct of booleans
// threaded through every call site.
type Config struct {
	readOnly    bool
	busyTimeout time.Duration
}

// Option configures a Config.
type Option = options.Option[*Config]

// WithReadOnly opens the GeoPackage in SQLite's read-only mode.
func WithReadOnly() Option {
	return options.NoError(func(c *Config) { c.readOnly = true })
}

// WithBusyTimeout sets SQLite's busy_timeout for the connection,
// bounding how long a writer waits on lock contention.
func WithBusyTimeout(d time.Duration) Option {
	return options.NoError(func(c *Config) { c.busyTimeout = d })
}

func buildConfig(opts ...Option) (*Config, error) {
	cfg := &Config{busyTimeout: 5 * time.Second}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) dsn(path string) string {
	dsn := "file:" + path
	if c.readOnly {
		dsn += "?mode=ro"
	} else {
		dsn += "?mode=rwc"
	}
	if c.busyTimeout > 0 {
		dsn += fmt.Sprintf("&_busy_timeout=%d", c.busyTimeout.Milliseconds())
	}
	return dsn
}

// GeoPackage is an open handle onto a .gpkg SQLite file: the
// gpkg_spatial_ref_sys/gpkg_contents/gpkg_geometry_columns bootstrap
// plus whatever tables and feature classes have been added to it.
type GeoPackage struct {
	path string
	db   *sql.DB
}

// Path is the filesystem path the GeoPackage was created or opened from.
func (g *GeoPackage) Path() string { return g.path }

// DB exposes the underlying *sql.DB for callers that need to run
// arbitrary queries (joins, aggregates) the schema layer doesn't wrap.
func (g *GeoPackage) DB() *sql.DB { return g.db }

// Close releases the underlying connection pool.
func (g *GeoPackage) Close() error { return g.db.Close() }

func (g *GeoPackage) String() string { return fmt.Sprintf("GeoPackage(path=%s)", g.path) }

// Create makes a new GeoPackage at path, running the fixed DDL
// bootstrap and seeding the default undefined SRS rows plus a WGS84
// row in the requested flavor. It is an error for path to already
// exist.
func Create(path string, flavor GPKGFlavor, opts ...Option) (*GeoPackage, error) {
	if _, err := os.Stat(path); err == nil {
		return nil, fmt.Errorf("geopkg: already exists: %s", path)
	}

	cfg, err := buildConfig(opts...)
	if err != nil {
		return nil, err
	}

	driver.Register()
	db, err := sql.Open(driver.DriverName, cfg.dsn(path))
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(bootstrapDDL); err != nil {
		db.Close()
		return nil, fmt.Errorf("geopkg: bootstrap: %w", err)
	}

	records := append(append([]SpatialReferenceSystem{}, defaultSRSRecords...), wgs84Record(flavor))
	for _, rec := range records {
		if _, err := db.Exec(insertGpkgSRS, rec.asRecord()...); err != nil {
			db.Close()
			return nil, fmt.Errorf("geopkg: seed srs: %w", err)
		}
	}

	return &GeoPackage{path: path, db: db}, nil
}

// Open opens an existing GeoPackage at path.
func Open(path string, opts ...Option) (*GeoPackage, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("geopkg: %w", err)
	}

	cfg, err := buildConfig(opts...)
	if err != nil {
		return nil, err
	}

	driver.Register()
	db, err := sql.Open(driver.DriverName, cfg.dsn(path))
	if err != nil {
		return nil, err
	}
	return &GeoPackage{path: path, db: db}, nil
}

// CheckSRSExists reports whether srsID already has a row in
// gpkg_spatial_ref_sys.
func (g *GeoPackage) CheckSRSExists(srsID int32) (bool, error) {
	rows, err := g.db.Query(checkSRSExists, srsID)
	if err != nil {
		return false, err
	}
	defer rows.Close()
	return rows.Next(), rows.Err()
}

// AddSpatialReference inserts srs if it is not already registered.
func (g *GeoPackage) AddSpatialReference(srs SpatialReferenceSystem) error {
	exists, err := g.CheckSRSExists(srs.ID)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	_, err = g.db.Exec(insertGpkgSRS, srs.asRecord()...)
	return err
}

func (g *GeoPackage) tableExists(name string) (bool, error) {
	rows, err := g.db.Query(tableExists, name)
	if err != nil {
		return false, err
	}
	defer rows.Close()
	return rows.Next(), rows.Err()
}

func (g *GeoPackage) validateCreate(name string, overwrite bool) error {
	if overwrite {
		return nil
	}
	exists, err := g.tableExists(name)
	if err != nil {
		return err
	}
	if exists {
		return fmt.Errorf("geopkg: table %s already exists in %s", name, g.path)
	}
	return nil
}

// CreateTable adds a non-spatial attribute table.
func (g *GeoPackage) CreateTable(name string, fields []Field, description string, overwrite bool) (*Table, error) {
	if err := g.validateCreate(name, overwrite); err != nil {
		return nil, err
	}
	return createTable(g, name, fields, description, overwrite)
}

// CreateFeatureClass adds a spatial feature table with one geometry
// column of shape at srs's coordinate system.
func (g *GeoPackage) CreateFeatureClass(name string, srs SpatialReferenceSystem, shape ShapeType,
	hasZ, hasM bool, fields []Field, description, geomName string, overwrite bool) (*FeatureClass, error) {
	if err := g.validateCreate(name, overwrite); err != nil {
		return nil, err
	}
	return createFeatureClass(g, name, srs, shape, hasZ, hasM, fields, description, geomName, overwrite)
}

// Tables returns every non-spatial attribute table registered in
// gpkg_contents, keyed by name.
func (g *GeoPackage) Tables() (map[string]*Table, error) {
	names, err := g.tablesByType(string(DataTypeAttributes))
	if err != nil {
		return nil, err
	}
	out := make(map[string]*Table, len(names))
	for _, name := range names {
		out[name] = &Table{BaseTable{geopackage: g, name: name}}
	}
	return out, nil
}

// FeatureClasses returns every spatial feature table registered in
// gpkg_contents, keyed by name.
func (g *GeoPackage) FeatureClasses() (map[string]*FeatureClass, error) {
	names, err := g.tablesByType(string(DataTypeFeatures))
	if err != nil {
		return nil, err
	}
	out := make(map[string]*FeatureClass, len(names))
	for _, name := range names {
		fc, err := g.loadFeatureClass(name)
		if err != nil {
			return nil, err
		}
		out[name] = fc
	}
	return out, nil
}

func (g *GeoPackage) tablesByType(dataType string) ([]string, error) {
	rows, err := g.db.Query(selectTablesByType, dataType)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

func (g *GeoPackage) loadFeatureClass(name string) (*FeatureClass, error) {
	const q = `
		SELECT column_name, geometry_type_name, z, m
		FROM gpkg_geometry_columns
		WHERE lower(table_name) = lower(?)
	`
	var geomName, shapeName string
	var z, m int
	if err := g.db.QueryRow(q, name).Scan(&geomName, &shapeName, &z, &m); err != nil {
		return nil, err
	}

	return &FeatureClass{
		BaseTable: BaseTable{geopackage: g, name: name},
		geomName:  geomName, shapeType: ShapeType(shapeName), hasZ: z == 1, hasM: m == 1,
	}, nil
}

// Validate reports the first problem found among the tables
// GeoPackage itself requires to be present and well-formed: the three
// bootstrap tables. It is not a full OGC conformance check.
func (g *GeoPackage) Validate() error {
	required := []string{"gpkg_spatial_ref_sys", "gpkg_contents", "gpkg_geometry_columns"}
	for _, name := range required {
		exists, err := g.tableExists(name)
		if err != nil {
			return err
		}
		if !exists {
			return fmt.Errorf("geopkg: missing required table %s", name)
		}
	}
	return nil
}
