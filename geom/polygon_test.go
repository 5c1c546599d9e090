package geom

import (
	"testing"

	"github.com/geopkg-go/geopkg/errs"
	"github.com/geopkg-go/geopkg/wkb"
	"github.com/stretchr/testify/require"
)

func TestPolygon_RoundTripS4(t *testing.T) {
	ring := []wkb.Coord{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}, {X: 1, Y: 0}, {X: 0, Y: 0}}
	p := NewPolygon(4326, [][]wkb.Coord{ring}, false, false)

	blob, err := p.Encode()
	require.NoError(t, err)
	decoded, err := DecodePolygon(blob, false, false)
	require.NoError(t, err)

	rings, err := decoded.Rings()
	require.NoError(t, err)
	require.Len(t, rings, 1)
	require.Len(t, rings[0].Coords, 5)
	require.Equal(t, ring, rings[0].Coords)

	env, err := decoded.Envelope()
	require.NoError(t, err)
	require.Equal(t, wkb.EnvelopeXY, env.Code)
	require.Equal(t, 0.0, env.MinX)
	require.Equal(t, 1.0, env.MaxX)
	require.Equal(t, 0.0, env.MinY)
	require.Equal(t, 1.0, env.MaxY)
}

func TestPolygon_EmptyHasZeroRings(t *testing.T) {
	p := NewPolygon(4326, nil, false, false)
	blob, err := p.Encode()
	require.NoError(t, err)

	require.Equal(t, byte(0b0001_0001), blob[3])

	decoded, err := DecodePolygon(blob, false, false)
	require.NoError(t, err)
	require.True(t, decoded.IsEmpty())
	rings, err := decoded.Rings()
	require.NoError(t, err)
	require.Empty(t, rings)
}

func TestPolygon_MultipleRings(t *testing.T) {
	exterior := []wkb.Coord{{X: 0, Y: 0}, {X: 0, Y: 10}, {X: 10, Y: 10}, {X: 10, Y: 0}, {X: 0, Y: 0}}
	hole := []wkb.Coord{{X: 2, Y: 2}, {X: 2, Y: 4}, {X: 4, Y: 4}, {X: 4, Y: 2}, {X: 2, Y: 2}}
	p := NewPolygon(4326, [][]wkb.Coord{exterior, hole}, false, false)

	blob, err := p.Encode()
	require.NoError(t, err)
	decoded, err := DecodePolygon(blob, false, false)
	require.NoError(t, err)

	rings, err := decoded.Rings()
	require.NoError(t, err)
	require.Len(t, rings, 2)
	require.Equal(t, exterior, rings[0].Coords)
	require.Equal(t, hole, rings[1].Coords)

	// Envelope must reflect the exterior bounds (the hole sits inside it).
	env, err := decoded.Envelope()
	require.NoError(t, err)
	require.Equal(t, 0.0, env.MinX)
	require.Equal(t, 10.0, env.MaxX)
}

func TestPolygon_DecodeIsLazyOverOverCountRingBody(t *testing.T) {
	buf := make([]byte, 0, 64)
	buf = append(buf, wkb.EncodeHeader(wkb.Header{SRSID: 1, EnvelopeCode: wkb.EnvelopeNone})...)
	buf = append(buf, wkb.EncodeWKBPrefix(3)...)
	buf = append(buf, 0x01, 0x00, 0x00, 0x00) // ring count=1
	buf = append(buf, 0x05, 0x00, 0x00, 0x00) // ring's coordinate count=5, no bytes follow

	decoded, err := DecodePolygon(buf, false, false)
	require.NoError(t, err, "from_blob must not walk the body")

	_, err = decoded.Rings()
	require.ErrorIs(t, err, errs.ErrInvalidCount)
}
