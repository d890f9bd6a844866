package ome

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlaneIndexAllOrders(t *testing.T) {
	// Sizes Z=2, C=3, T=4; selection z=1, c=0, t=2. Expected indices are
	// hand-computed from i1 + n1*i2 + n1*n2*i3 with the axes taken
	// fastest-to-slowest per order.
	tests := []struct {
		order DimensionOrder
		want  int
	}{
		{OrderXYZCT, 1 + 2*0 + 2*3*2}, // 13
		{OrderXYZTC, 1 + 2*2 + 2*4*0}, // 5
		{OrderXYCTZ, 0 + 3*2 + 3*4*1}, // 18
		{OrderXYCZT, 0 + 3*1 + 3*2*2}, // 15
		{OrderXYTCZ, 2 + 4*0 + 4*3*1}, // 14
		{OrderXYTZC, 2 + 4*1 + 4*2*0}, // 6
	}
	for _, tt := range tests {
		t.Run(string(tt.order), func(t *testing.T) {
			px := &Pixels{SizeZ: 2, SizeC: 3, SizeT: 4, DimensionOrder: tt.order}
			got, err := px.PlaneIndex(Selection{Z: 1, C: 0, T: 2})
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPlaneIndexWorkedExample(t *testing.T) {
	// Order XYZCT, sizes Z=2 C=3 T=1, selection z=1 c=2 t=0:
	// 1 + 2*2 + 2*3*0 = 5.
	px := &Pixels{SizeZ: 2, SizeC: 3, SizeT: 1, DimensionOrder: OrderXYZCT}
	got, err := px.PlaneIndex(Selection{Z: 1, C: 2, T: 0})
	require.NoError(t, err)
	assert.Equal(t, 5, got)
}

func TestPlaneIndexUnitSizes(t *testing.T) {
	// A 1x1x1 selection space has a single plane at index 0 in every order.
	for _, order := range []DimensionOrder{
		OrderXYZCT, OrderXYZTC, OrderXYCTZ, OrderXYCZT, OrderXYTCZ, OrderXYTZC,
	} {
		px := &Pixels{SizeZ: 1, SizeC: 1, SizeT: 1, DimensionOrder: order}
		got, err := px.PlaneIndex(Selection{})
		require.NoError(t, err)
		assert.Equal(t, 0, got, "order %s", order)
	}
}

func TestPlaneIndexSizeOneAxisStillMultiplies(t *testing.T) {
	// With order XYZCT and SizeZ=1, the C term keeps its coefficient of
	// SizeZ=1 and the T term SizeZ*SizeC.
	px := &Pixels{SizeZ: 1, SizeC: 2, SizeT: 3, DimensionOrder: OrderXYZCT}
	got, err := px.PlaneIndex(Selection{Z: 0, C: 1, T: 2})
	require.NoError(t, err)
	assert.Equal(t, 0+1*1+1*2*2, got)
}

func TestPlaneIndexInvalidOrder(t *testing.T) {
	for _, bad := range []DimensionOrder{"", "XYZC", "xyzct", "XYXYZ", "ZCTXY"} {
		px := &Pixels{SizeZ: 2, SizeC: 2, SizeT: 2, DimensionOrder: bad}
		_, err := px.PlaneIndex(Selection{Z: 1, C: 1, T: 1})
		assert.Error(t, err, "order %q must be rejected", bad)
		assert.False(t, bad.Valid())
	}
}
