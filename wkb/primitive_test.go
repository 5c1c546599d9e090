package wkb

import (
	"math"
	"testing"

	"github.com/geopkg-go/geopkg/internal/pool"
	"github.com/stretchr/testify/require"
)

func TestTypeCode(t *testing.T) {
	require.Equal(t, uint32(1), TypeCode(1, false, false))
	require.Equal(t, uint32(1001), TypeCode(1, true, false))
	require.Equal(t, uint32(2001), TypeCode(1, false, true))
	require.Equal(t, uint32(3001), TypeCode(1, true, true))
}

func TestEncodeDecodeWKBPrefix(t *testing.T) {
	prefix := EncodeWKBPrefix(2)
	require.Equal(t, []byte{0x01, 0x02, 0x00, 0x00, 0x00}, prefix)

	code, err := DecodeWKBPrefix(prefix)
	require.NoError(t, err)
	require.Equal(t, uint32(2), code)
}

func TestPackPointBody_S2(t *testing.T) {
	// S2: Point (1.0, 2.0) body = prefix(01 01 000000) + doubles.
	buf := pool.NewByteBuffer(32)
	buf.MustWrite(EncodeWKBPrefix(TypeCode(1, false, false)))
	PackPointBody(buf, Coord{X: 1.0, Y: 2.0}, false, false)

	want := append([]byte{0x01, 0x01, 0x00, 0x00, 0x00}, packDoubles(1.0, 2.0)...)
	require.Equal(t, want, buf.Bytes())
	require.Len(t, buf.Bytes(), 29-HeaderSize)
}

func TestUnpackPointBody_S2(t *testing.T) {
	body := packDoubles(1.0, 2.0)
	c, n, err := UnpackPointBody(body, false, false)
	require.NoError(t, err)
	require.Equal(t, 16, n)
	require.Equal(t, 1.0, c.X)
	require.Equal(t, 2.0, c.Y)
}

func TestPackCoords_EmptyLineString_S1(t *testing.T) {
	// S1 body (past the header): 01 02 00 00 00 00 00 00 00.
	buf := pool.NewByteBuffer(32)
	buf.MustWrite(EncodeWKBPrefix(TypeCode(2, false, false)))
	PackCoords(buf, nil, false, false, false)

	require.Equal(t, []byte{0x01, 0x02, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, buf.Bytes())
}

func TestUnpackLine_EmptyLineString_S1(t *testing.T) {
	body := []byte{0x01, 0x02, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}
	coords, consumed, err := UnpackLine(body, false, false, false)
	require.NoError(t, err)
	require.Empty(t, coords)
	require.Equal(t, len(body), consumed)
}

func TestPackAndUnpackLine_S3(t *testing.T) {
	coords := []Coord{{X: 0, Y: 0}, {X: 10, Y: 11}}

	buf := pool.NewByteBuffer(64)
	buf.MustWrite(EncodeWKBPrefix(TypeCode(2, false, false)))
	PackCoords(buf, coords, false, false, false)

	require.Equal(t, []byte{0x01, 0x02, 0x00, 0x00, 0x00, 0x02, 0x00, 0x00, 0x00}, buf.Bytes()[:9])

	got, consumed, err := UnpackLine(buf.Bytes(), false, false, false)
	require.NoError(t, err)
	require.Equal(t, coords, got)
	require.Equal(t, buf.Len(), consumed)
}

func TestPackAndUnpackLine_Ring(t *testing.T) {
	// S4 ring: [(0,0),(0,1),(1,1),(1,0),(0,0)], no WKB prefix.
	coords := []Coord{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}, {X: 1, Y: 0}, {X: 0, Y: 0}}

	buf := pool.NewByteBuffer(128)
	PackCoords(buf, coords, false, false, false)

	got, consumed, err := UnpackLine(buf.Bytes(), false, false, true)
	require.NoError(t, err)
	require.Equal(t, coords, got)
	require.Equal(t, buf.Len(), consumed)
}

func TestPackAndUnpackPoints_MultiPointS6(t *testing.T) {
	coords := []Coord{{X: 1, Y: 2}, {X: 3, Y: 4}}

	buf := pool.NewByteBuffer(64)
	PackCoords(buf, coords, false, false, true)

	got, consumed, err := UnpackPoints(buf.Bytes(), false, false)
	require.NoError(t, err)
	require.Equal(t, coords, got)
	require.Equal(t, buf.Len(), consumed)
}

func TestUnpackLines_Polygon(t *testing.T) {
	ring := []Coord{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}, {X: 1, Y: 0}, {X: 0, Y: 0}}

	buf := pool.NewByteBuffer(256)
	var countBuf [4]byte
	leEngine.PutUint32(countBuf[:], 1)
	buf.MustWrite(countBuf[:])
	PackCoords(buf, ring, false, false, false)

	lines, consumed, err := UnpackLines(buf.Bytes(), false, false, true)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	require.Equal(t, ring, lines[0])
	require.Equal(t, buf.Len(), consumed)
}

func TestUnpackLine_Truncated(t *testing.T) {
	_, _, err := UnpackLine([]byte{0x01, 0x02}, false, false, false)
	require.Error(t, err)
}

func TestUnpackLine_InvalidCount(t *testing.T) {
	// Count says 100 coordinate pairs but the buffer holds none.
	body := []byte{0x01, 0x02, 0x00, 0x00, 0x00, 0x64, 0x00, 0x00, 0x00}
	_, _, err := UnpackLine(body, false, false, false)
	require.Error(t, err)
}

func TestDimension(t *testing.T) {
	require.Equal(t, 2, Dimension(false, false))
	require.Equal(t, 3, Dimension(true, false))
	require.Equal(t, 3, Dimension(false, true))
	require.Equal(t, 4, Dimension(true, true))
}

func TestPackCoords_ZM(t *testing.T) {
	coords := []Coord{{X: 1, Y: 2, Z: 3, M: 4}}
	buf := pool.NewByteBuffer(64)
	PackCoords(buf, coords, true, true, false)

	got, _, err := UnpackLine(buf.Bytes(), true, true, true)
	require.NoError(t, err)
	require.Equal(t, coords, got)
}

func TestUnpackPointBody_EmptyPointNaN_S5(t *testing.T) {
	body := packDoubles(math.NaN(), math.NaN())
	c, _, err := UnpackPointBody(body, false, false)
	require.NoError(t, err)
	require.True(t, math.IsNaN(c.X))
	require.True(t, math.IsNaN(c.Y))
}
