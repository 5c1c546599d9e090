package geom

import (
	"github.com/geopkg-go/geopkg/errs"
	"github.com/geopkg-go/geopkg/wkb"
)

// GeometryKind tags which of the seven container shapes a geometry is.
// Combined with HasZ/HasM it selects one of the 28 variants named in
// the data model.
type GeometryKind uint8

const (
	KindPoint GeometryKind = iota
	KindLineString
	KindLinearRing
	KindPolygon
	KindMultiPoint
	KindMultiLineString
	KindMultiPolygon
)

func (k GeometryKind) String() string {
	switch k {
	case KindPoint:
		return "Point"
	case KindLineString:
		return "LineString"
	case KindLinearRing:
		return "LinearRing"
	case KindPolygon:
		return "Polygon"
	case KindMultiPoint:
		return "MultiPoint"
	case KindMultiLineString:
		return "MultiLineString"
	case KindMultiPolygon:
		return "MultiPolygon"
	default:
		return "Unknown"
	}
}

// baseTypeCode is the WKB type code for a kind before the +1000/+2000/
// +3000 Z/M offset. LinearRing has none: ring bodies carry no WKB
// prefix of their own (spec.md §3, §4.3).
func (k GeometryKind) baseTypeCode() (uint32, bool) {
	switch k {
	case KindPoint:
		return 1, true
	case KindLineString:
		return 2, true
	case KindPolygon:
		return 3, true
	case KindMultiPoint:
		return 4, true
	case KindMultiLineString:
		return 5, true
	case KindMultiPolygon:
		return 6, true
	default:
		return 0, false
	}
}

// variant is one row of the 28-entry type table: a (kind, hasZ, hasM)
// triple plus its registered SQL type name.
type variant struct {
	Kind GeometryKind
	HasZ bool
	HasM bool
	Name string
}

func dimSuffix(hasZ, hasM bool) string {
	switch {
	case hasZ && hasM:
		return "ZM"
	case hasZ:
		return "Z"
	case hasM:
		return "M"
	default:
		return ""
	}
}

var allKinds = [...]GeometryKind{
	KindPoint, KindLineString, KindLinearRing, KindPolygon,
	KindMultiPoint, KindMultiLineString, KindMultiPolygon,
}

var dimPairs = [...][2]bool{{false, false}, {true, false}, {false, true}, {true, true}}

// variantTable enumerates all 28 (kind, hasZ, hasM) combinations, built
// once at init rather than hand-written 28 times over.
var variantTable = func() []variant {
	table := make([]variant, 0, 28)
	for _, k := range allKinds {
		for _, d := range dimPairs {
			table = append(table, variant{
				Kind: k, HasZ: d[0], HasM: d[1],
				Name: k.String() + dimSuffix(d[0], d[1]),
			})
		}
	}
	return table
}()

// StandaloneVariants returns the 24 variant names a
// driver.NamedGeometry can be bound to: every variant except the four
// LinearRing ones, which only ever appear nested inside a Polygon.
func StandaloneVariants() []variant {
	out := make([]variant, 0, 24)
	for _, v := range variantTable {
		if v.Kind != KindLinearRing {
			out = append(out, v)
		}
	}
	return out
}

// VariantName returns the registered SQL type name for (kind, hasZ, hasM).
func VariantName(kind GeometryKind, hasZ, hasM bool) string {
	return kind.String() + dimSuffix(hasZ, hasM)
}

// typeCodeFor returns the WKB type code for a variant of kind with the
// given dimensionality; it is only meaningful for kinds that carry
// their own WKB prefix (everything but LinearRing).
func typeCodeFor(kind GeometryKind, hasZ, hasM bool) (uint32, error) {
	base, ok := kind.baseTypeCode()
	if !ok {
		return 0, errs.ErrWrongGeometryType
	}
	return wkb.TypeCode(base, hasZ, hasM), nil
}

// KindForTypeCode reverses typeCodeFor: given a raw WKB type code found
// in a blob's prefix, it reports the container kind and dimensionality,
// or ok=false if the code is outside {1..6, 1001..1006, 2001..2006,
// 3001..3006} (spec.md §9's "reject codes outside" guidance).
func KindForTypeCode(code uint32) (kind GeometryKind, hasZ, hasM bool, ok bool) {
	base := code
	switch {
	case code >= 3001 && code <= 3006:
		base, hasZ, hasM = code-3000, true, true
	case code >= 2001 && code <= 2006:
		base, hasZ, hasM = code-2000, false, true
	case code >= 1001 && code <= 1006:
		base, hasZ, hasM = code-1000, true, false
	case code >= 1 && code <= 6:
		base = code
	default:
		return 0, false, false, false
	}

	for _, k := range allKinds {
		b, has := k.baseTypeCode()
		if has && b == base {
			return k, hasZ, hasM, true
		}
	}
	return 0, false, false, false
}
