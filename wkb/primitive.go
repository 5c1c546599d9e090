package wkb

import (
	"math"

	"github.com/geopkg-go/geopkg/errs"
	"github.com/geopkg-go/geopkg/internal/pool"
)

// WKBPrefixSize is the length of the endian byte + 4-byte type code
// that precedes every WKB geometry body except a ring body (rings
// carry no prefix of their own; they are framed entirely by their
// owning Polygon).
const WKBPrefixSize = 5

const wkbLittleEndian = 1

// TypeCode adds the Z/M dimensionality offset (+1000/+2000/+3000) onto
// a base WKB type code (1 Point .. 6 MultiPolygon), matching the WKB
// convention of stacking the offsets for Z-only, M-only, and ZM.
func TypeCode(base uint32, hasZ, hasM bool) uint32 {
	switch {
	case hasZ && hasM:
		return base + 3000
	case hasZ:
		return base + 1000
	case hasM:
		return base + 2000
	default:
		return base
	}
}

// EncodeWKBPrefix returns the 5-byte little-endian WKB prefix for typeCode.
func EncodeWKBPrefix(typeCode uint32) []byte {
	buf := make([]byte, WKBPrefixSize)
	buf[0] = wkbLittleEndian
	leEngine.PutUint32(buf[1:5], typeCode)
	return buf
}

// DecodeWKBPrefix reads the endian byte and type code at the start of
// data.
func DecodeWKBPrefix(data []byte) (typeCode uint32, err error) {
	if len(data) < WKBPrefixSize {
		return 0, errs.ErrTruncated
	}
	if data[0] != wkbLittleEndian {
		return 0, errs.ErrMalformedHeader
	}
	return leEngine.Uint32(data[1:5]), nil
}

// Dimension returns the coordinate tuple width (2, 3, or 4 doubles)
// implied by hasZ/hasM.
func Dimension(hasZ, hasM bool) int {
	switch {
	case hasZ && hasM:
		return 4
	case hasZ, hasM:
		return 3
	default:
		return 2
	}
}

func writeCoord(buf *pool.ByteBuffer, c Coord, hasZ, hasM bool) {
	var tmp [8]byte
	leEngine.PutUint64(tmp[:], math.Float64bits(c.X))
	buf.MustWrite(tmp[:])
	leEngine.PutUint64(tmp[:], math.Float64bits(c.Y))
	buf.MustWrite(tmp[:])
	if hasZ {
		leEngine.PutUint64(tmp[:], math.Float64bits(c.Z))
		buf.MustWrite(tmp[:])
	}
	if hasM {
		leEngine.PutUint64(tmp[:], math.Float64bits(c.M))
		buf.MustWrite(tmp[:])
	}
}

func readCoord(data []byte, hasZ, hasM bool) Coord {
	c := Coord{
		X: math.Float64frombits(leEngine.Uint64(data[0:8])),
		Y: math.Float64frombits(leEngine.Uint64(data[8:16])),
	}
	idx := 16
	if hasZ {
		c.Z = math.Float64frombits(leEngine.Uint64(data[idx : idx+8]))
		idx += 8
	}
	if hasM {
		c.M = math.Float64frombits(leEngine.Uint64(data[idx : idx+8]))
	}
	return c
}

// PackCount writes a 4-byte LE count into buf, the framing shared by
// every aggregate body (ring count, member count) ahead of its
// elements.
func PackCount(buf *pool.ByteBuffer, n int) {
	var countBuf [4]byte
	leEngine.PutUint32(countBuf[:], uint32(n))
	buf.MustWrite(countBuf[:])
}

// PackPointBody writes a single coordinate tuple into buf with no
// leading count, matching the Point WKB body (the only geometry kind
// whose body is not "count then tuples").
func PackPointBody(buf *pool.ByteBuffer, c Coord, hasZ, hasM bool) {
	writeCoord(buf, c, hasZ, hasM)
}

// UnpackPointBody reads a single coordinate tuple with no leading
// count from data, which callers pass starting just past the 5-byte
// WKB Point prefix.
func UnpackPointBody(data []byte, hasZ, hasM bool) (c Coord, consumed int, err error) {
	dim := Dimension(hasZ, hasM)
	need := dim * 8
	if len(data) < need {
		return Coord{}, 0, errs.ErrTruncated
	}
	return readCoord(data, hasZ, hasM), need, nil
}

// PackCoords writes a 4-byte LE count followed by len(coords) coordinate
// tuples into buf. When withPointPrefix is true (MultiPoint bodies),
// each tuple is preceded by its own 5-byte WKB Point prefix matching
// hasZ/hasM; otherwise the tuples are written bare, which is the format
// shared by LineString, LinearRing, and Polygon ring bodies.
func PackCoords(buf *pool.ByteBuffer, coords []Coord, hasZ, hasM, withPointPrefix bool) {
	var countBuf [4]byte
	leEngine.PutUint32(countBuf[:], uint32(len(coords)))
	buf.MustWrite(countBuf[:])

	var prefix []byte
	if withPointPrefix {
		prefix = EncodeWKBPrefix(TypeCode(1, hasZ, hasM))
	}

	for _, c := range coords {
		if prefix != nil {
			buf.MustWrite(prefix)
		}
		writeCoord(buf, c, hasZ, hasM)
	}
}

// UnpackLine reads a coordinate-tuple count and the tuples following
// it. When isRing is true the count has no preceding WKB prefix (ring
// body); otherwise a 5-byte prefix precedes the count (standalone
// LineString body) and is skipped without being re-validated, since
// the caller already knows the expected type from context.
func UnpackLine(data []byte, hasZ, hasM bool, isRing bool) (coords []Coord, consumed int, err error) {
	dim := Dimension(hasZ, hasM)

	countOffset := 0
	if !isRing {
		countOffset = WKBPrefixSize
	}
	headerLen := countOffset + 4
	if len(data) < headerLen {
		return nil, 0, errs.ErrTruncated
	}

	count := leEngine.Uint32(data[countOffset:headerLen])
	need := int(count) * dim * 8
	if headerLen+need > len(data) {
		return nil, 0, errs.ErrInvalidCount
	}

	coords = make([]Coord, count)
	off := headerLen
	for i := range coords {
		coords[i] = readCoord(data[off:], hasZ, hasM)
		off += dim * 8
	}
	return coords, off, nil
}

// UnpackPoints reads a MultiPoint body: a 4-byte count followed by that
// many (5-byte WKB Point prefix + coordinate tuple) entries. Per-point
// prefixes are skipped without being re-validated.
func UnpackPoints(data []byte, hasZ, hasM bool) (coords []Coord, consumed int, err error) {
	if len(data) < 4 {
		return nil, 0, errs.ErrTruncated
	}
	dim := Dimension(hasZ, hasM)
	count := leEngine.Uint32(data[0:4])

	perPoint := WKBPrefixSize + dim*8
	need := int(count) * perPoint
	if 4+need > len(data) {
		return nil, 0, errs.ErrInvalidCount
	}

	coords = make([]Coord, count)
	off := 4
	for i := range coords {
		off += WKBPrefixSize
		coords[i] = readCoord(data[off:], hasZ, hasM)
		off += dim * 8
	}
	return coords, off, nil
}

// UnpackLines reads a 4-byte count followed by that many line bodies.
// isRing selects UnpackLine's framing for each sub-body: true for a
// Polygon's rings (bare, no prefix), false for a MultiLineString's
// member LineStrings (each with its own WKB prefix).
func UnpackLines(data []byte, hasZ, hasM bool, isRing bool) (lines [][]Coord, consumed int, err error) {
	if len(data) < 4 {
		return nil, 0, errs.ErrTruncated
	}
	count := leEngine.Uint32(data[0:4])

	lines = make([][]Coord, count)
	off := 4
	for i := range lines {
		coords, n, err := UnpackLine(data[off:], hasZ, hasM, isRing)
		if err != nil {
			return nil, 0, err
		}
		lines[i] = coords
		off += n
	}
	return lines, off, nil
}

// UnpackPolygons reads a MultiPolygon body: a 4-byte count followed by
// that many full WKB Polygon sub-bodies (each with its own 5-byte
// prefix, skipped without re-validation, then a ring count and rings).
func UnpackPolygons(data []byte, hasZ, hasM bool) (polygons [][][]Coord, consumed int, err error) {
	if len(data) < 4 {
		return nil, 0, errs.ErrTruncated
	}
	count := leEngine.Uint32(data[0:4])

	polygons = make([][][]Coord, count)
	off := 4
	for i := range polygons {
		if len(data) < off+WKBPrefixSize {
			return nil, 0, errs.ErrTruncated
		}
		off += WKBPrefixSize

		rings, n, err := UnpackLines(data[off:], hasZ, hasM, true)
		if err != nil {
			return nil, 0, err
		}
		polygons[i] = rings
		off += n
	}
	return polygons, off, nil
}
