package radial

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eps = 1e-9

func TestPlace_CardinalAngles(t *testing.T) {
	cases := []struct {
		angle  float64
		wantX  float64
		wantY  float64
	}{
		{0, 100, 0},
		{90, 0, 100},
		{180, -100, 0},
		{270, 0, -100},
		{-90, 0, -100},
	}
	for _, tc := range cases {
		p := Place(100, tc.angle, "")
		assert.InDelta(t, tc.wantX, p.AnchorX, eps, "angle %v x", tc.angle)
		assert.InDelta(t, tc.wantY, p.AnchorY, eps, "angle %v y", tc.angle)
	}
}

func TestPlace_TwelveStepsCloseTheCircle(t *testing.T) {
	seen := make(map[[2]int]bool)
	for i := 0; i < 12; i++ {
		p := Place(100, float64(30*i), "")
		key := [2]int{int(math.Round(p.AnchorX)), int(math.Round(p.AnchorY))}
		assert.False(t, seen[key], "position %d collides with an earlier one", i)
		seen[key] = true
	}
	first := Place(100, 0, "")
	wrapped := Place(100, 360, "")
	assert.InDelta(t, first.AnchorX, wrapped.AnchorX, eps)
	assert.InDelta(t, first.AnchorY, wrapped.AnchorY, eps)
}

func TestPlace_CentresLabel(t *testing.T) {
	p := Place(50, 0, "F#/Gb")
	assert.InDelta(t, 50-2.5, p.X, eps)
	assert.InDelta(t, 0, p.Y, eps)
	assert.Equal(t, "F#/Gb", p.Label)

	scaled := PlaceScaled(50, 0, "Am", 8)
	assert.InDelta(t, 50-8, scaled.X, eps)
	assert.InDelta(t, scaled.AnchorX, Place(50, 0, "Am").AnchorX, eps, "scale must not move the anchor")
}

func TestLayout_SameAngleDifferentRings(t *testing.T) {
	rings := []Ring{{Name: "outer", Radius: 170}, {Name: "inner", Radius: 70}}
	for _, angle := range []float64{0, 17, 30, 135, 200, 330} {
		placed := Layout(rings, []Point{
			{Ring: "outer", Angle: angle, Label: "C"},
			{Ring: "inner", Angle: angle, Label: "0"},
		}, 1)
		require.Len(t, placed, 2)
		outer, inner := placed[0], placed[1]

		dOuter := math.Hypot(outer.AnchorX, outer.AnchorY)
		dInner := math.Hypot(inner.AnchorX, inner.AnchorY)
		assert.InDelta(t, 170.0/70.0, dOuter/dInner, 1e-9, "distance ratio at %v°", angle)
		assert.InDelta(t, math.Atan2(outer.AnchorY, outer.AnchorX), math.Atan2(inner.AnchorY, inner.AnchorX), 1e-9,
			"bearing at %v°", angle)
	}
}

func TestLayout_Deterministic(t *testing.T) {
	d := CircleOfFifths()
	a := d.Place(1)
	b := d.Place(1)
	assert.Equal(t, a, b)
}

func TestLayout_UnknownRingPanics(t *testing.T) {
	assert.PanicsWithValue(t, `radial: point "X" references unknown ring "nope"`, func() {
		Layout([]Ring{{Name: "a", Radius: 1}}, []Point{{Ring: "nope", Label: "X"}}, 1)
	})
}

func TestCircleOfFifths_AlignedRings(t *testing.T) {
	d := CircleOfFifths()
	require.Len(t, d.Points, 36)
	require.Len(t, d.Rings, 3)

	byRing := make(map[string][]Point)
	for _, p := range d.Points {
		byRing[p.Ring] = append(byRing[p.Ring], p)
	}
	for hour := 0; hour < 12; hour++ {
		want := byRing[RingMajor][hour].Angle
		assert.Equal(t, want, byRing[RingMinor][hour].Angle, "minor at hour %d", hour)
		assert.Equal(t, want, byRing[RingSignature][hour].Angle, "signature at hour %d", hour)
	}
	assert.Equal(t, "C", byRing[RingMajor][0].Label)
	assert.Equal(t, 90.0, byRing[RingMajor][0].Angle)
	assert.Equal(t, "Am", byRing[RingMinor][0].Label)
	assert.Equal(t, "G", byRing[RingMajor][1].Label)
	assert.Equal(t, 60.0, byRing[RingMajor][1].Angle)
}

func TestClockAngle(t *testing.T) {
	assert.Equal(t, 90.0, ClockAngle(0))
	assert.Equal(t, 0.0, ClockAngle(3))
	assert.Equal(t, -90.0, ClockAngle(6))
	assert.Equal(t, 90.0, ClockAngle(12))
}
