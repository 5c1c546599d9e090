package geom

import (
	"testing"

	"github.com/geopkg-go/geopkg/errs"
	"github.com/geopkg-go/geopkg/wkb"
	"github.com/stretchr/testify/require"
)

func TestMultiPolygon_RoundTrip(t *testing.T) {
	ringA := []wkb.Coord{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}, {X: 1, Y: 0}, {X: 0, Y: 0}}
	ringB := []wkb.Coord{{X: 10, Y: 10}, {X: 10, Y: 11}, {X: 11, Y: 11}, {X: 11, Y: 10}, {X: 10, Y: 10}}
	mp := NewMultiPolygon(4326, [][][]wkb.Coord{{ringA}, {ringB}}, false, false)

	blob, err := mp.Encode()
	require.NoError(t, err)
	decoded, err := DecodeMultiPolygon(blob, false, false)
	require.NoError(t, err)

	polys, err := decoded.Polygons()
	require.NoError(t, err)
	require.Len(t, polys, 2)
	ringsA, err := polys[0].Rings()
	require.NoError(t, err)
	require.Equal(t, ringA, ringsA[0].Coords)
	ringsB, err := polys[1].Rings()
	require.NoError(t, err)
	require.Equal(t, ringB, ringsB[0].Coords)

	env, err := decoded.Envelope()
	require.NoError(t, err)
	require.Equal(t, 0.0, env.MinX)
	require.Equal(t, 11.0, env.MaxX)
}

func TestMultiPolygon_Empty(t *testing.T) {
	mp := NewMultiPolygon(4326, nil, false, false)
	blob, err := mp.Encode()
	require.NoError(t, err)
	decoded, err := DecodeMultiPolygon(blob, false, false)
	require.NoError(t, err)
	require.True(t, decoded.IsEmpty())
	polys, err := decoded.Polygons()
	require.NoError(t, err)
	require.Empty(t, polys)
}

func TestMultiPolygon_DecodeIsLazyOverOverCountMemberBody(t *testing.T) {
	buf := make([]byte, 0, 64)
	buf = append(buf, wkb.EncodeHeader(wkb.Header{SRSID: 1, EnvelopeCode: wkb.EnvelopeNone})...)
	buf = append(buf, wkb.EncodeWKBPrefix(6)...)
	buf = append(buf, 0x01, 0x00, 0x00, 0x00) // member count=1
	buf = append(buf, wkb.EncodeWKBPrefix(3)...)
	buf = append(buf, 0x01, 0x00, 0x00, 0x00) // member's ring count=1
	buf = append(buf, 0x05, 0x00, 0x00, 0x00) // ring's coordinate count=5, no coords follow

	decoded, err := DecodeMultiPolygon(buf, false, false)
	require.NoError(t, err, "from_blob must not walk the body")

	_, err = decoded.Polygons()
	require.ErrorIs(t, err, errs.ErrInvalidCount)
}
