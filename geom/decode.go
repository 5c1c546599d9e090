package geom

import (
	"github.com/geopkg-go/geopkg/errs"
	"github.com/geopkg-go/geopkg/wkb"
)

func lookupVariant(name string) (variant, bool) {
	for _, v := range variantTable {
		if v.Name == name {
			return v, true
		}
	}
	return variant{}, false
}

// decodeByKind dispatches to the variant-specific decoder. It is the
// single place that knows all seven container shapes, used both by
// Decode (expected-type path) and DecodeAny (prefix-sniffing path).
func decodeByKind(data []byte, kind GeometryKind, hasZ, hasM bool) (Geometry, error) {
	switch kind {
	case KindPoint:
		p, err := DecodePoint(data, hasZ, hasM)
		if err != nil {
			return nil, err
		}
		return p, nil
	case KindLineString:
		return DecodeLineString(data, hasZ, hasM)
	case KindPolygon:
		return DecodePolygon(data, hasZ, hasM)
	case KindMultiPoint:
		return DecodeMultiPoint(data, hasZ, hasM)
	case KindMultiLineString:
		return DecodeMultiLineString(data, hasZ, hasM)
	case KindMultiPolygon:
		return DecodeMultiPolygon(data, hasZ, hasM)
	default:
		return nil, errs.ErrWrongGeometryType
	}
}

// Decode parses data as a blob of the named variant (e.g. "PointZ",
// "MultiPolygonZM"), the from_blob entry point driver.NamedGeometry
// uses for the variant name it is bound to.
func Decode(data []byte, name string) (Geometry, error) {
	v, ok := lookupVariant(name)
	if !ok || v.Kind == KindLinearRing {
		return nil, errs.ErrWrongGeometryType
	}
	return decodeByKind(data, v.Kind, v.HasZ, v.HasM)
}

// DecodeAny parses data without an expected variant, determining the
// container kind and dimensionality from the WKB prefix itself. This
// is the fallback path spatial predicates use when a blob's variant
// isn't known ahead of time (spec.md §4.6 step 4).
func DecodeAny(data []byte) (Geometry, error) {
	_, _, _, bodyOffset, err := decodeHeaderAndEnvelope(data)
	if err != nil {
		return nil, err
	}
	if len(data) < bodyOffset+wkb.WKBPrefixSize {
		return nil, errs.ErrTruncated
	}
	typeCode, err := wkb.DecodeWKBPrefix(data[bodyOffset:])
	if err != nil {
		return nil, err
	}
	kind, hasZ, hasM, ok := KindForTypeCode(typeCode)
	if !ok {
		return nil, errs.ErrWrongGeometryType
	}
	return decodeByKind(data, kind, hasZ, hasM)
}
