package geom

import (
	"testing"

	"github.com/geopkg-go/geopkg/errs"
	"github.com/geopkg-go/geopkg/wkb"
	"github.com/stretchr/testify/require"
)

func TestMultiLineString_RoundTrip(t *testing.T) {
	lineA := []wkb.Coord{{X: 0, Y: 0}, {X: 1, Y: 1}}
	lineB := []wkb.Coord{{X: 5, Y: 5}, {X: 6, Y: 7}}
	ml := NewMultiLineString(4326, [][]wkb.Coord{lineA, lineB}, false, false)

	blob, err := ml.Encode()
	require.NoError(t, err)
	decoded, err := DecodeMultiLineString(blob, false, false)
	require.NoError(t, err)

	lines, err := decoded.Lines()
	require.NoError(t, err)
	require.Len(t, lines, 2)
	gotA, err := lines[0].Coords()
	require.NoError(t, err)
	require.Equal(t, lineA, gotA)
	gotB, err := lines[1].Coords()
	require.NoError(t, err)
	require.Equal(t, lineB, gotB)

	env, err := decoded.Envelope()
	require.NoError(t, err)
	require.Equal(t, 0.0, env.MinX)
	require.Equal(t, 6.0, env.MaxX)
	require.Equal(t, 0.0, env.MinY)
	require.Equal(t, 7.0, env.MaxY)
}

func TestMultiLineString_SkipsEmptyMemberEnvelope(t *testing.T) {
	lineA := []wkb.Coord{{X: 0, Y: 0}, {X: 1, Y: 1}}
	ml := NewMultiLineString(4326, [][]wkb.Coord{lineA, nil}, false, false)

	blob, err := ml.Encode()
	require.NoError(t, err)
	decoded, err := DecodeMultiLineString(blob, false, false)
	require.NoError(t, err)

	env, err := decoded.Envelope()
	require.NoError(t, err)
	require.Equal(t, 0.0, env.MinX)
	require.Equal(t, 1.0, env.MaxX)
}

func TestMultiLineString_Empty(t *testing.T) {
	ml := NewMultiLineString(4326, nil, false, false)
	blob, err := ml.Encode()
	require.NoError(t, err)
	decoded, err := DecodeMultiLineString(blob, false, false)
	require.NoError(t, err)
	require.True(t, decoded.IsEmpty())
	lines, err := decoded.Lines()
	require.NoError(t, err)
	require.Empty(t, lines)
}

func TestMultiLineString_DecodeIsLazyOverOverCountMemberBody(t *testing.T) {
	buf := make([]byte, 0, 64)
	buf = append(buf, wkb.EncodeHeader(wkb.Header{SRSID: 1, EnvelopeCode: wkb.EnvelopeNone})...)
	buf = append(buf, wkb.EncodeWKBPrefix(5)...)
	buf = append(buf, 0x01, 0x00, 0x00, 0x00) // member count=1
	buf = append(buf, wkb.EncodeWKBPrefix(2)...)
	buf = append(buf, 0x05, 0x00, 0x00, 0x00) // member's coordinate count=5, no bytes follow

	decoded, err := DecodeMultiLineString(buf, false, false)
	require.NoError(t, err, "from_blob must not walk the body")

	_, err = decoded.Lines()
	require.ErrorIs(t, err, errs.ErrInvalidCount)
}
