package geom

import (
	"github.com/geopkg-go/geopkg/internal/pool"
	"github.com/geopkg-go/geopkg/wkb"
)

// MultiLineString is an ordered sequence of LineStrings, each framed on
// the wire as a full WKB LineString (its own 5-byte prefix included).
// Decoded instances defer parsing the members until Lines is first
// called.
type MultiLineString struct {
	srid       int32
	hasZ, hasM bool
	empty      bool

	pending   []byte // raw body bytes just past the WKB prefix; nil once materialized
	lines     []*LineString
	err       error
	cachedEnv *wkb.Envelope
}

// NewMultiLineString constructs a MultiLineString from member coordinate
// sequences already in memory.
func NewMultiLineString(srid int32, memberCoords [][]wkb.Coord, hasZ, hasM bool) *MultiLineString {
	lines := make([]*LineString, len(memberCoords))
	for i, c := range memberCoords {
		lines[i] = NewLineString(srid, c, hasZ, hasM)
	}
	return &MultiLineString{srid: srid, hasZ: hasZ, hasM: hasM, empty: len(lines) == 0, lines: lines}
}

func (s *MultiLineString) SRID() int32        { return s.srid }
func (s *MultiLineString) Kind() GeometryKind { return KindMultiLineString }
func (s *MultiLineString) HasZ() bool         { return s.hasZ }
func (s *MultiLineString) HasM() bool         { return s.hasM }
func (s *MultiLineString) IsEmpty() bool      { return s.empty }

// Lines materializes and returns the member LineStrings, parsing the
// pending body on first call and caching either the result or the
// parse failure so later calls do not rescan.
func (s *MultiLineString) Lines() ([]*LineString, error) {
	if s.pending != nil {
		raw, _, err := wkb.UnpackLines(s.pending, s.hasZ, s.hasM, false)
		s.pending = nil
		s.err = err
		if err == nil {
			lines := make([]*LineString, len(raw))
			for i, c := range raw {
				lines[i] = NewLineString(s.srid, c, s.hasZ, s.hasM)
			}
			s.lines = lines
		}
	}
	return s.lines, s.err
}

// Envelope returns the cached header envelope, or merges the member
// LineStrings' envelopes on first access.
func (s *MultiLineString) Envelope() (wkb.Envelope, error) {
	if s.cachedEnv != nil {
		return *s.cachedEnv, nil
	}
	lines, err := s.Lines()
	if err != nil {
		return wkb.Envelope{}, err
	}
	envs := make([]wkb.Envelope, len(lines))
	for i, l := range lines {
		env, err := l.Envelope()
		if err != nil {
			return wkb.Envelope{}, err
		}
		envs[i] = env
	}
	env := wkb.EnvelopeFromSub(envs)
	s.cachedEnv = &env
	return env, nil
}

// Encode serializes the MultiLineString to a GeoPackage geometry blob.
func (s *MultiLineString) Encode() ([]byte, error) {
	lines, err := s.Lines()
	if err != nil {
		return nil, err
	}
	env, err := s.Envelope()
	if err != nil {
		return nil, err
	}

	buf := pool.GetGeometryBuffer()
	defer pool.PutGeometryBuffer(buf)

	encodeHeaderAndEnvelope(buf, s.srid, len(lines) == 0, env, false)
	code, _ := typeCodeFor(KindMultiLineString, s.hasZ, s.hasM)
	buf.MustWrite(wkb.EncodeWKBPrefix(code))

	wkb.PackCount(buf, len(lines))
	memberCode, _ := typeCodeFor(KindLineString, s.hasZ, s.hasM)
	for _, l := range lines {
		buf.MustWrite(wkb.EncodeWKBPrefix(memberCode))
		coords, err := l.Coords()
		if err != nil {
			return nil, err
		}
		wkb.PackCoords(buf, coords, s.hasZ, s.hasM, false)
	}

	return cloneBytes(buf.Bytes()), nil
}

// DecodeMultiLineString parses data as a MultiLineString blob,
// deferring the member LineStrings until Lines is called.
func DecodeMultiLineString(data []byte, hasZ, hasM bool) (*MultiLineString, error) {
	srid, empty, env, bodyOffset, err := decodeHeaderAndEnvelope(data)
	if err != nil {
		return nil, err
	}
	if err := checkPrefix(data[bodyOffset:], KindMultiLineString, hasZ, hasM); err != nil {
		return nil, err
	}

	s := &MultiLineString{srid: srid, hasZ: hasZ, hasM: hasM, empty: empty, cachedEnv: env}
	s.pending = cloneBytes(data[bodyOffset+wkb.WKBPrefixSize:])
	return s, nil
}
