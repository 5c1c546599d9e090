package geom

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVariantTable_Has28Entries(t *testing.T) {
	require.Len(t, variantTable, 28)
}

func TestStandaloneVariants_Excludes4LinearRings(t *testing.T) {
	standalone := StandaloneVariants()
	require.Len(t, standalone, 24)
	for _, v := range standalone {
		require.NotEqual(t, KindLinearRing, v.Kind)
	}
}

func TestVariantName(t *testing.T) {
	require.Equal(t, "Point", VariantName(KindPoint, false, false))
	require.Equal(t, "PointZ", VariantName(KindPoint, true, false))
	require.Equal(t, "MultiPolygonZM", VariantName(KindMultiPolygon, true, true))
	require.Equal(t, "LineStringM", VariantName(KindLineString, false, true))
}

func TestTypeCodeFor(t *testing.T) {
	tests := []struct {
		kind       GeometryKind
		hasZ, hasM bool
		want       uint32
	}{
		{KindPoint, false, false, 1},
		{KindLineString, true, false, 1002},
		{KindPolygon, false, true, 2003},
		{KindMultiPolygon, true, true, 3006},
	}
	for _, tt := range tests {
		code, err := typeCodeFor(tt.kind, tt.hasZ, tt.hasM)
		require.NoError(t, err)
		require.Equal(t, tt.want, code)
	}
}

func TestTypeCodeFor_LinearRingUnsupported(t *testing.T) {
	_, err := typeCodeFor(KindLinearRing, false, false)
	require.Error(t, err)
}

func TestKindForTypeCode_RoundTripsEveryStandaloneVariant(t *testing.T) {
	for _, v := range StandaloneVariants() {
		code, err := typeCodeFor(v.Kind, v.HasZ, v.HasM)
		require.NoError(t, err)

		kind, hasZ, hasM, ok := KindForTypeCode(code)
		require.True(t, ok, "type code %d for %s", code, v.Name)
		require.Equal(t, v.Kind, kind)
		require.Equal(t, v.HasZ, hasZ)
		require.Equal(t, v.HasM, hasM)
	}
}

func TestKindForTypeCode_RejectsOutOfRange(t *testing.T) {
	_, _, _, ok := KindForTypeCode(0)
	require.False(t, ok)

	_, _, _, ok = KindForTypeCode(7)
	require.False(t, ok)

	_, _, _, ok = KindForTypeCode(4007)
	require.False(t, ok)
}
