package driver

import (
	"database/sql"
	"sync"

	"github.com/mattn/go-sqlite3"

	"github.com/geopkg-go/geopkg/sqlfn"
)

// DriverName is the name Register installs the driver under. Open a
// GeoPackage with sql.Open(DriverName, path).
const DriverName = "sqlite3_geopkg"

var registerOnce sync.Once

// Register installs DriverName with database/sql, wiring ST_IsEmpty,
// ST_MinX, ST_MaxX, ST_MinY, and ST_MaxY into every connection it
// opens. Safe to call more than once; only the first call takes
// effect, since sql.Register panics on a repeated name.
func Register() {
	registerOnce.Do(func() {
		sql.Register(DriverName, &sqlite3.SQLiteDriver{
			ConnectHook: registerPredicates,
		})
	})
}

// registerPredicates binds a fresh spatial predicate cache to conn and
// exposes it through the five ST_* scalar functions. The cache is
// connection-scoped (spec.md §5): two connections never share one.
func registerPredicates(conn *sqlite3.SQLiteConn) error {
	cache := sqlfn.NewCache(sqlfn.DefaultCacheCapacity)

	fns := map[string]any{
		"ST_IsEmpty": sqlfn.IsEmpty,
		"ST_MinX":    cache.MinX,
		"ST_MaxX":    cache.MaxX,
		"ST_MinY":    cache.MinY,
		"ST_MaxY":    cache.MaxY,
	}
	for name, fn := range fns {
		if err := conn.RegisterFunc(name, fn, true); err != nil {
			return err
		}
	}
	return nil
}
