package geom

import (
	"github.com/geopkg-go/geopkg/internal/pool"
	"github.com/geopkg-go/geopkg/wkb"
)

// LineString is an ordered sequence of coordinate tuples. Decoded
// instances defer parsing the tuples until Coords is first called.
type LineString struct {
	srid       int32
	hasZ, hasM bool
	empty      bool

	pending   []byte // raw body bytes just past the WKB prefix; nil once materialized
	coords    []wkb.Coord
	err       error
	cachedEnv *wkb.Envelope
}

// NewLineString constructs a LineString from coordinates already in memory.
func NewLineString(srid int32, coords []wkb.Coord, hasZ, hasM bool) *LineString {
	return &LineString{srid: srid, hasZ: hasZ, hasM: hasM, empty: len(coords) == 0, coords: coords}
}

func (s *LineString) SRID() int32        { return s.srid }
func (s *LineString) Kind() GeometryKind { return KindLineString }
func (s *LineString) HasZ() bool         { return s.hasZ }
func (s *LineString) HasM() bool         { return s.hasM }
func (s *LineString) IsEmpty() bool      { return s.empty }

// Coords materializes and returns the coordinate sequence, parsing the
// pending body on first call and caching either the result or the
// parse failure so later calls do not rescan.
func (s *LineString) Coords() ([]wkb.Coord, error) {
	if s.pending != nil {
		// s.pending was stored past the WKB prefix (see DecodeLineString),
		// so it is framed like a ring body: count then flat doubles.
		coords, _, err := wkb.UnpackLine(s.pending, s.hasZ, s.hasM, true)
		s.pending = nil
		s.err = err
		if err == nil {
			s.coords = coords
		}
	}
	return s.coords, s.err
}

// Envelope returns the cached envelope from the blob header if the
// blob carried one; otherwise it materializes coordinates and computes
// it, caching the result.
func (s *LineString) Envelope() (wkb.Envelope, error) {
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

// Encode serializes the LineString to a GeoPackage geometry blob.
func (s *LineString) Encode() ([]byte, error) {
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
	code, _ := typeCodeFor(KindLineString, s.hasZ, s.hasM)
	buf.MustWrite(wkb.EncodeWKBPrefix(code))
	wkb.PackCoords(buf, coords, s.hasZ, s.hasM, false)

	return cloneBytes(buf.Bytes()), nil
}

// DecodeLineString parses data as a LineString blob, deferring the
// coordinate sequence until Coords is called.
func DecodeLineString(data []byte, hasZ, hasM bool) (*LineString, error) {
	srid, empty, env, bodyOffset, err := decodeHeaderAndEnvelope(data)
	if err != nil {
		return nil, err
	}
	if err := checkPrefix(data[bodyOffset:], KindLineString, hasZ, hasM); err != nil {
		return nil, err
	}

	s := &LineString{srid: srid, hasZ: hasZ, hasM: hasM, empty: empty, cachedEnv: env}
	s.pending = cloneBytes(data[bodyOffset+wkb.WKBPrefixSize:])
	return s, nil
}
