package geom

import (
	"testing"

	"github.com/geopkg-go/geopkg/errs"
	"github.com/geopkg-go/geopkg/wkb"
	"github.com/stretchr/testify/require"
)

func TestLineString_EncodeEmptyS1(t *testing.T) {
	s := NewLineString(4326, nil, false, false)
	got, err := s.Encode()
	require.NoError(t, err)

	want := []byte{0x47, 0x50, 0x00, 0x11, 0xE6, 0x10, 0x00, 0x00, 0x01, 0x02, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}
	require.Equal(t, want, got)
}

func TestLineString_DecodeEmptyS1(t *testing.T) {
	blob := []byte{0x47, 0x50, 0x00, 0x11, 0xE6, 0x10, 0x00, 0x00, 0x01, 0x02, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}
	s, err := DecodeLineString(blob, false, false)
	require.NoError(t, err)
	require.Equal(t, int32(4326), s.SRID())
	require.True(t, s.IsEmpty())

	coords, err := s.Coords()
	require.NoError(t, err)
	require.Empty(t, coords)
}

func TestLineString_RoundTripS3(t *testing.T) {
	coords := []wkb.Coord{{X: 0, Y: 0}, {X: 10, Y: 11}}
	s := NewLineString(-1, coords, false, false)
	blob, err := s.Encode()
	require.NoError(t, err)

	require.Equal(t, byte(0b0000_0011), blob[3])

	decoded, err := DecodeLineString(blob, false, false)
	require.NoError(t, err)
	gotCoords, err := decoded.Coords()
	require.NoError(t, err)
	require.Equal(t, coords, gotCoords)
	require.Equal(t, int32(-1), decoded.SRID())

	env, err := decoded.Envelope()
	require.NoError(t, err)
	require.Equal(t, 0.0, env.MinX)
	require.Equal(t, 10.0, env.MaxX)
	require.Equal(t, 0.0, env.MinY)
	require.Equal(t, 11.0, env.MaxY)

	reEncoded, err := decoded.Encode()
	require.NoError(t, err)
	require.Equal(t, blob, reEncoded, "re-encoding MUST yield the identical byte sequence")
}

func TestLineString_EnvelopeIsLazy(t *testing.T) {
	coords := []wkb.Coord{{X: 0, Y: 0}, {X: 10, Y: 11}}
	blob, err := NewLineString(4326, coords, false, false).Encode()
	require.NoError(t, err)

	s, err := DecodeLineString(blob, false, false)
	require.NoError(t, err)

	// Envelope was carried in the header; calling it must not require
	// materializing coordinates first.
	env, err := s.Envelope()
	require.NoError(t, err)
	require.Equal(t, 0.0, env.MinX)
	require.Equal(t, 11.0, env.MaxY)
}

func TestLineString_EnvelopeWithoutHeaderEnvelope(t *testing.T) {
	coords := []wkb.Coord{{X: 0, Y: 0}, {X: 10, Y: 11}}

	buf := make([]byte, 0, 64)
	buf = append(buf, wkb.EncodeHeader(wkb.Header{SRSID: 1, EnvelopeCode: wkb.EnvelopeNone})...)
	buf = append(buf, wkb.EncodeWKBPrefix(2)...)

	s, err := DecodeLineString(append(buf, encodeRingBodyForTest(coords)...), false, false)
	require.NoError(t, err)

	env, err := s.Envelope()
	require.NoError(t, err)
	require.Equal(t, 0.0, env.MinX)
	require.Equal(t, 10.0, env.MaxX)
}

func TestLineString_DecodeIsLazyOverOverCountBody(t *testing.T) {
	buf := make([]byte, 0, 64)
	buf = append(buf, wkb.EncodeHeader(wkb.Header{SRSID: 1, EnvelopeCode: wkb.EnvelopeNone})...)
	buf = append(buf, wkb.EncodeWKBPrefix(2)...)
	buf = append(buf, 0x05, 0x00, 0x00, 0x00) // count=5, no coordinate bytes follow

	s, err := DecodeLineString(buf, false, false)
	require.NoError(t, err, "from_blob must not walk the body")

	_, err = s.Coords()
	require.ErrorIs(t, err, errs.ErrInvalidCount)

	_, err = s.Envelope()
	require.ErrorIs(t, err, errs.ErrInvalidCount)

	_, err = s.Encode()
	require.ErrorIs(t, err, errs.ErrInvalidCount)
}

func TestLineString_DecodeIsLazyOverTruncatedBody(t *testing.T) {
	buf := make([]byte, 0, 64)
	buf = append(buf, wkb.EncodeHeader(wkb.Header{SRSID: 1, EnvelopeCode: wkb.EnvelopeNone})...)
	buf = append(buf, wkb.EncodeWKBPrefix(2)...)
	buf = append(buf, 0x01, 0x00) // count field itself is incomplete

	s, err := DecodeLineString(buf, false, false)
	require.NoError(t, err, "from_blob must not walk the body")

	_, err = s.Coords()
	require.ErrorIs(t, err, errs.ErrTruncated)
}

func encodeRingBodyForTest(coords []wkb.Coord) []byte {
	var out []byte
	count := uint32(len(coords))
	out = append(out, byte(count), byte(count>>8), byte(count>>16), byte(count>>24))
	for _, c := range coords {
		out = append(out, packDoublesForTest(c.X, c.Y)...)
	}
	return out
}
