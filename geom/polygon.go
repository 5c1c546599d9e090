package geom

import (
	"github.com/geopkg-go/geopkg/internal/pool"
	"github.com/geopkg-go/geopkg/wkb"
)

// LinearRing is a closed coordinate sequence bounding one ring of a
// Polygon. It is never encoded or decoded as a standalone blob (rings
// carry no WKB prefix of their own); it exists only as Polygon's ring
// representation, and its equality is coordinate-only since rings
// never carry an independent SRS on the wire (spec.md §9 open
// question).
type LinearRing struct {
	HasZ, HasM bool
	Coords     []wkb.Coord
}

// IsEmpty reports whether the ring has no coordinates.
func (r LinearRing) IsEmpty() bool { return len(r.Coords) == 0 }

// Envelope returns the ring's own tight AABB.
func (r LinearRing) Envelope() wkb.Envelope {
	return wkb.EnvelopeFromCoords(r.Coords, r.HasZ, r.HasM)
}

// Polygon is an ordered sequence of rings; ring 0 is the exterior,
// any further rings are interior (holes). Decoded instances defer
// parsing the rings until Rings is first called.
type Polygon struct {
	srid       int32
	hasZ, hasM bool
	empty      bool

	pending   []byte // raw body bytes just past the WKB prefix; nil once materialized
	rings     []LinearRing
	err       error
	cachedEnv *wkb.Envelope
}

// NewPolygon constructs a Polygon from rings already in memory. rings[0]
// is the exterior ring.
func NewPolygon(srid int32, rings [][]wkb.Coord, hasZ, hasM bool) *Polygon {
	lr := make([]LinearRing, len(rings))
	for i, c := range rings {
		lr[i] = LinearRing{HasZ: hasZ, HasM: hasM, Coords: c}
	}
	return &Polygon{srid: srid, hasZ: hasZ, hasM: hasM, empty: len(rings) == 0, rings: lr}
}

func (p *Polygon) SRID() int32        { return p.srid }
func (p *Polygon) Kind() GeometryKind { return KindPolygon }
func (p *Polygon) HasZ() bool         { return p.hasZ }
func (p *Polygon) HasM() bool         { return p.hasM }
func (p *Polygon) IsEmpty() bool      { return p.empty }

// Rings materializes and returns the ring sequence, parsing the
// pending body on first call and caching either the result or the
// parse failure so later calls do not rescan.
func (p *Polygon) Rings() ([]LinearRing, error) {
	if p.pending != nil {
		raw, _, err := wkb.UnpackLines(p.pending, p.hasZ, p.hasM, true)
		p.pending = nil
		p.err = err
		if err == nil {
			rings := make([]LinearRing, len(raw))
			for i, c := range raw {
				rings[i] = LinearRing{HasZ: p.hasZ, HasM: p.hasM, Coords: c}
			}
			p.rings = rings
		}
	}
	return p.rings, p.err
}

// Envelope returns the polygon's cached header envelope, or computes
// it from the flattened ring coordinates on first access.
func (p *Polygon) Envelope() (wkb.Envelope, error) {
	if p.cachedEnv != nil {
		return *p.cachedEnv, nil
	}
	rings, err := p.Rings()
	if err != nil {
		return wkb.Envelope{}, err
	}
	var all []wkb.Coord
	for _, r := range rings {
		all = append(all, r.Coords...)
	}
	env := wkb.EnvelopeFromCoords(all, p.hasZ, p.hasM)
	p.cachedEnv = &env
	return env, nil
}

// Encode serializes the Polygon to a GeoPackage geometry blob.
func (p *Polygon) Encode() ([]byte, error) {
	rings, err := p.Rings()
	if err != nil {
		return nil, err
	}
	env, err := p.Envelope()
	if err != nil {
		return nil, err
	}

	buf := pool.GetGeometryBuffer()
	defer pool.PutGeometryBuffer(buf)

	encodeHeaderAndEnvelope(buf, p.srid, len(rings) == 0, env, false)
	code, _ := typeCodeFor(KindPolygon, p.hasZ, p.hasM)
	buf.MustWrite(wkb.EncodeWKBPrefix(code))

	wkb.PackCount(buf, len(rings))
	for _, r := range rings {
		wkb.PackCoords(buf, r.Coords, p.hasZ, p.hasM, false)
	}

	return cloneBytes(buf.Bytes()), nil
}

// DecodePolygon parses data as a Polygon blob, deferring the ring
// sequence until Rings is called.
func DecodePolygon(data []byte, hasZ, hasM bool) (*Polygon, error) {
	srid, empty, env, bodyOffset, err := decodeHeaderAndEnvelope(data)
	if err != nil {
		return nil, err
	}
	if err := checkPrefix(data[bodyOffset:], KindPolygon, hasZ, hasM); err != nil {
		return nil, err
	}

	p := &Polygon{srid: srid, hasZ: hasZ, hasM: hasM, empty: empty, cachedEnv: env}
	p.pending = cloneBytes(data[bodyOffset+wkb.WKBPrefixSize:])
	return p, nil
}
