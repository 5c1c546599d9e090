package geom

import (
	"github.com/geopkg-go/geopkg/internal/pool"
	"github.com/geopkg-go/geopkg/wkb"
)

// MultiPolygon is an ordered sequence of Polygons, each framed on the
// wire as a full WKB Polygon (its own 5-byte prefix included). Decoded
// instances defer parsing the members until Polygons is first called.
type MultiPolygon struct {
	srid       int32
	hasZ, hasM bool
	empty      bool

	pending   []byte // raw body bytes just past the WKB prefix; nil once materialized
	polygons  []*Polygon
	err       error
	cachedEnv *wkb.Envelope
}

// NewMultiPolygon constructs a MultiPolygon from member ring sets
// already in memory.
func NewMultiPolygon(srid int32, memberRings [][][]wkb.Coord, hasZ, hasM bool) *MultiPolygon {
	polys := make([]*Polygon, len(memberRings))
	for i, rings := range memberRings {
		polys[i] = NewPolygon(srid, rings, hasZ, hasM)
	}
	return &MultiPolygon{srid: srid, hasZ: hasZ, hasM: hasM, empty: len(polys) == 0, polygons: polys}
}

func (s *MultiPolygon) SRID() int32        { return s.srid }
func (s *MultiPolygon) Kind() GeometryKind { return KindMultiPolygon }
func (s *MultiPolygon) HasZ() bool         { return s.hasZ }
func (s *MultiPolygon) HasM() bool         { return s.hasM }
func (s *MultiPolygon) IsEmpty() bool      { return s.empty }

// Polygons materializes and returns the member Polygons, parsing the
// pending body on first call and caching either the result or the
// parse failure so later calls do not rescan.
func (s *MultiPolygon) Polygons() ([]*Polygon, error) {
	if s.pending != nil {
		raw, _, err := wkb.UnpackPolygons(s.pending, s.hasZ, s.hasM)
		s.pending = nil
		s.err = err
		if err == nil {
			polygons := make([]*Polygon, len(raw))
			for i, rings := range raw {
				polygons[i] = NewPolygon(s.srid, rings, s.hasZ, s.hasM)
			}
			s.polygons = polygons
		}
	}
	return s.polygons, s.err
}

// Envelope returns the cached header envelope, or merges the member
// Polygons' envelopes on first access.
func (s *MultiPolygon) Envelope() (wkb.Envelope, error) {
	if s.cachedEnv != nil {
		return *s.cachedEnv, nil
	}
	polys, err := s.Polygons()
	if err != nil {
		return wkb.Envelope{}, err
	}
	envs := make([]wkb.Envelope, len(polys))
	for i, p := range polys {
		env, err := p.Envelope()
		if err != nil {
			return wkb.Envelope{}, err
		}
		envs[i] = env
	}
	env := wkb.EnvelopeFromSub(envs)
	s.cachedEnv = &env
	return env, nil
}

// Encode serializes the MultiPolygon to a GeoPackage geometry blob.
func (s *MultiPolygon) Encode() ([]byte, error) {
	polys, err := s.Polygons()
	if err != nil {
		return nil, err
	}
	env, err := s.Envelope()
	if err != nil {
		return nil, err
	}

	buf := pool.GetGeometryBuffer()
	defer pool.PutGeometryBuffer(buf)

	encodeHeaderAndEnvelope(buf, s.srid, len(polys) == 0, env, false)
	code, _ := typeCodeFor(KindMultiPolygon, s.hasZ, s.hasM)
	buf.MustWrite(wkb.EncodeWKBPrefix(code))

	wkb.PackCount(buf, len(polys))
	memberCode, _ := typeCodeFor(KindPolygon, s.hasZ, s.hasM)
	for _, p := range polys {
		buf.MustWrite(wkb.EncodeWKBPrefix(memberCode))
		rings, err := p.Rings()
		if err != nil {
			return nil, err
		}
		wkb.PackCount(buf, len(rings))
		for _, r := range rings {
			wkb.PackCoords(buf, r.Coords, s.hasZ, s.hasM, false)
		}
	}

	return cloneBytes(buf.Bytes()), nil
}

// DecodeMultiPolygon parses data as a MultiPolygon blob, deferring the
// member Polygons until Polygons is called.
func DecodeMultiPolygon(data []byte, hasZ, hasM bool) (*MultiPolygon, error) {
	srid, empty, env, bodyOffset, err := decodeHeaderAndEnvelope(data)
	if err != nil {
		return nil, err
	}
	if err := checkPrefix(data[bodyOffset:], KindMultiPolygon, hasZ, hasM); err != nil {
		return nil, err
	}

	s := &MultiPolygon{srid: srid, hasZ: hasZ, hasM: hasM, empty: empty, cachedEnv: env}
	s.pending = cloneBytes(data[bodyOffset+wkb.WKBPrefixSize:])
	return s, nil
}
