package geom

import (
	"github.com/geopkg-go/geopkg/internal/pool"
	"github.com/geopkg-go/geopkg/wkb"
)

// MultiPoint is an ordered sequence of coordinate tuples, each framed
// on the wire as its own WKB Point. Decoded instances defer parsing
// the tuples until Coords is first called.
type MultiPoint struct {
	srid       int32
	hasZ, hasM bool
	empty      bool

	pending   []byte // raw body bytes just past the WKB prefix; nil once materialized
	coords    []wkb.Coord
	err       error
	cachedEnv *wkb.Envelope
}

// NewMultiPoint constructs a MultiPoint from coordinates already in memory.
func NewMultiPoint(srid int32, coords []wkb.Coord, hasZ, hasM bool) *MultiPoint {
	return &MultiPoint{srid: srid, hasZ: hasZ, hasM: hasM, empty: len(coords) == 0, coords: coords}
}

func (s *MultiPoint) SRID() int32        { return s.srid }
func (s *MultiPoint) Kind() GeometryKind { return KindMultiPoint }
func (s *MultiPoint) HasZ() bool         { return s.hasZ }
func (s *MultiPoint) HasM() bool         { return s.hasM }
func (s *MultiPoint) IsEmpty() bool      { return s.empty }

// Coords materializes and returns the member point coordinates,
// parsing the pending body on first call and caching either the
// result or the parse failure so later calls do not rescan.
func (s *MultiPoint) Coords() ([]wkb.Coord, error) {
	if s.pending != nil {
		coords, _, err := wkb.UnpackPoints(s.pending, s.hasZ, s.hasM)
		s.pending = nil
		s.err = err
		if err == nil {
			s.coords = coords
		}
	}
	return s.coords, s.err
}

// Envelope returns the cached header envelope, or computes and caches
// it from the member coordinates on first access.
func (s *MultiPoint) Envelope() (wkb.Envelope, error) {
	if s.cachedEnv != nil {
		return *s.cachedEnv, nil
	}
	coords, err := s.Coords()
	if err != nil {
		return wkb.Envelope{}, err
	}
	env := wkb.EnvelopeFromCoords(coords, s.hasZ, s.hasM)
	s.cachedEnv = &env
	return env, nil
}

// Encode serializes the MultiPoint to a GeoPackage geometry blob.
func (s *MultiPoint) Encode() ([]byte, error) {
	coords, err := s.Coords()
	if err != nil {
		return nil, err
	}
	env, err := s.Envelope()
	if err != nil {
		return nil, err
	}

	buf := pool.GetGeometryBuffer()
	defer pool.PutGeometryBuffer(buf)

	encodeHeaderAndEnvelope(buf, s.srid, len(coords) == 0, env, false)
	code, _ := typeCodeFor(KindMultiPoint, s.hasZ, s.hasM)
	buf.MustWrite(wkb.EncodeWKBPrefix(code))
	wkb.PackCoords(buf, coords, s.hasZ, s.hasM, true)

	return cloneBytes(buf.Bytes()), nil
}

// DecodeMultiPoint parses data as a MultiPoint blob, deferring the
// member coordinates until Coords is called.
func DecodeMultiPoint(data []byte, hasZ, hasM bool) (*MultiPoint, error) {
	srid, empty, env, bodyOffset, err := decodeHeaderAndEnvelope(data)
	if err != nil {
		return nil, err
	}
	if err := checkPrefix(data[bodyOffset:], KindMultiPoint, hasZ, hasM); err != nil {
		return nil, err
	}

	s := &MultiPoint{srid: srid, hasZ: hasZ, hasM: hasM, empty: empty, cachedEnv: env}
	s.pending = cloneBytes(data[bodyOffset+wkb.WKBPrefixSize:])
	return s, nil
}
