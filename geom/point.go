package geom

import (
	"math"

	"github.com/geopkg-go/geopkg/internal/pool"
	"github.com/geopkg-go/geopkg/wkb"
)

// Point is the only eager variant: its body is a bare 2-4 doubles with
// no count, so there is nothing worth deferring. NaN in every in-use
// field marks it empty (spec.md §4.4).
type Point struct {
	srid       int32
	hasZ, hasM bool
	x, y, z, m float64
}

// NewPoint constructs a non-empty point. Z and M are ignored unless
// hasZ/hasM select them.
func NewPoint(srid int32, x, y, z, m float64, hasZ, hasM bool) Point {
	return Point{srid: srid, hasZ: hasZ, hasM: hasM, x: x, y: y, z: z, m: m}
}

// NewEmptyPoint constructs the empty point for (hasZ, hasM): all
// coordinates NaN.
func NewEmptyPoint(srid int32, hasZ, hasM bool) Point {
	nan := math.NaN()
	return Point{srid: srid, hasZ: hasZ, hasM: hasM, x: nan, y: nan, z: nan, m: nan}
}

func (p Point) SRID() int32       { return p.srid }
func (p Point) Kind() GeometryKind { return KindPoint }
func (p Point) HasZ() bool        { return p.hasZ }
func (p Point) HasM() bool        { return p.hasM }
func (p Point) X() float64        { return p.x }
func (p Point) Y() float64        { return p.y }
func (p Point) Z() float64        { return p.z }
func (p Point) M() float64        { return p.m }

// IsEmpty reports whether every in-use coordinate (X, Y, and Z/M when
// hasZ/hasM select them) is NaN.
func (p Point) IsEmpty() bool {
	if !math.IsNaN(p.x) || !math.IsNaN(p.y) {
		return false
	}
	if p.hasZ && !math.IsNaN(p.z) {
		return false
	}
	return !p.hasM || math.IsNaN(p.m)
}

// Envelope returns the point's own coordinates as a degenerate AABB,
// or EmptyEnvelope if the point is empty. Unlike aggregates, this is
// never the envelope actually written to the blob (Points always
// encode with envelope code 0); it exists so geom.Point still
// satisfies Geometry uniformly. Point is eager, so this never fails.
func (p Point) Envelope() (wkb.Envelope, error) {
	if p.IsEmpty() {
		return wkb.EmptyEnvelope, nil
	}
	return wkb.EnvelopeFromCoords([]wkb.Coord{{X: p.x, Y: p.y, Z: p.z, M: p.m}}, p.hasZ, p.hasM), nil
}

// Encode serializes the point to a GeoPackage geometry blob. Per
// spec.md §4.4, Points always omit the envelope (code 0): the point's
// coordinates are themselves the envelope. Point is eager, so this
// never fails.
func (p Point) Encode() ([]byte, error) {
	buf := pool.GetGeometryBuffer()
	defer pool.PutGeometryBuffer(buf)

	encodeHeaderAndEnvelope(buf, p.srid, p.IsEmpty(), wkb.EmptyEnvelope, true)
	code, _ := typeCodeFor(KindPoint, p.hasZ, p.hasM)
	buf.MustWrite(wkb.EncodeWKBPrefix(code))
	wkb.PackPointBody(buf, wkb.Coord{X: p.x, Y: p.y, Z: p.z, M: p.m}, p.hasZ, p.hasM)

	return cloneBytes(buf.Bytes()), nil
}

// DecodePoint parses data as a Point blob of the given dimensionality.
func DecodePoint(data []byte, hasZ, hasM bool) (Point, error) {
	srid, _, _, bodyOffset, err := decodeHeaderAndEnvelope(data)
	if err != nil {
		return Point{}, err
	}
	if err := checkPrefix(data[bodyOffset:], KindPoint, hasZ, hasM); err != nil {
		return Point{}, err
	}

	c, _, err := wkb.UnpackPointBody(data[bodyOffset+wkb.WKBPrefixSize:], hasZ, hasM)
	if err != nil {
		return Point{}, err
	}

	p := Point{srid: srid, hasZ: hasZ, hasM: hasM, x: c.X, y: c.Y, z: c.Z, m: c.M}
	return p, nil
}
