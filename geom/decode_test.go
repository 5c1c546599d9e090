package geom

import (
	"testing"

	"github.com/geopkg-go/geopkg/wkb"
	"github.com/stretchr/testify/require"
)

func TestDecode_ByName(t *testing.T) {
	blob, err := NewPoint(4326, 1, 2, 0, 0, false, false).Encode()
	require.NoError(t, err)
	g, err := Decode(blob, "Point")
	require.NoError(t, err)
	require.Equal(t, KindPoint, g.Kind())
}

func TestDecode_UnknownName(t *testing.T) {
	_, err := Decode([]byte{}, "NotAType")
	require.Error(t, err)
}

func TestDecode_RejectsLinearRingName(t *testing.T) {
	_, err := Decode([]byte{}, "LinearRing")
	require.Error(t, err)
}

func TestDecodeAny_SniffsVariant(t *testing.T) {
	coords := []wkb.Coord{{X: 0, Y: 0}, {X: 1, Y: 1}}
	blob, err := NewLineString(4326, coords, true, false).Encode()
	require.NoError(t, err)

	g, err := DecodeAny(blob)
	require.NoError(t, err)
	require.Equal(t, KindLineString, g.Kind())
	require.True(t, g.HasZ())
	require.False(t, g.HasM())
}

func TestDecodeAny_Truncated(t *testing.T) {
	_, err := DecodeAny([]byte{0x47, 0x50})
	require.Error(t, err)
}
