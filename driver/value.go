package driver

import (
	"database/sql/driver"

	"github.com/geopkg-go/geopkg/errs"
	"github.com/geopkg-go/geopkg/geom"
)

// Geometry wraps a geom.Geometry for use as a database/sql column
// value when the caller does not know the variant ahead of time.
// Value encodes the wrapped geometry to its blob; Scan decodes by
// sniffing the WKB prefix (geom.DecodeAny), the same fallback the
// bounding-box predicates use.
type Geometry struct {
	Geometry geom.Geometry
}

// Value implements driver.Valuer.
func (g Geometry) Value() (driver.Value, error) {
	if g.Geometry == nil {
		return nil, nil
	}
	b, err := g.Geometry.Encode()
	if err != nil {
		return nil, err
	}
	return b, nil
}

// Scan implements sql.Scanner.
func (g *Geometry) Scan(src any) error {
	if src == nil {
		g.Geometry = nil
		return nil
	}
	b, ok := src.([]byte)
	if !ok {
		return errs.ErrInvalidInput
	}
	decoded, err := geom.DecodeAny(b)
	if err != nil {
		return err
	}
	g.Geometry = decoded
	return nil
}

// NamedGeometry is a Scanner/Valuer bound to one of the 24 standalone
// variant names (geom.StandaloneVariants), standing in for the
// declared-column-type dispatch Python's sqlite3 module does
// automatically. Construct one per column with ForVariant.
type NamedGeometry struct {
	variantName string
	Geometry    geom.Geometry
}

// ForVariant returns a NamedGeometry bound to name (e.g. "PointZ",
// "MultiPolygonZM"). name must be one of geom.StandaloneVariants's 24
// names; any other value makes every Scan of a non-NULL value on the
// result fail with errs.ErrWrongGeometryType.
func ForVariant(name string) *NamedGeometry {
	return &NamedGeometry{variantName: name}
}

// Value implements driver.Valuer.
func (v NamedGeometry) Value() (driver.Value, error) {
	if v.Geometry == nil {
		return nil, nil
	}
	b, err := v.Geometry.Encode()
	if err != nil {
		return nil, err
	}
	return b, nil
}

// Scan implements sql.Scanner, decoding strictly as v's bound variant
// rather than sniffing the blob (geom.Decode rejects a mismatched WKB
// type code with errs.ErrWrongGeometryType).
func (v *NamedGeometry) Scan(src any) error {
	if src == nil {
		v.Geometry = nil
		return nil
	}
	b, ok := src.([]byte)
	if !ok {
		return errs.ErrInvalidInput
	}
	decoded, err := geom.Decode(b, v.variantName)
	if err != nil {
		return err
	}
	v.Geometry = decoded
	return nil
}
