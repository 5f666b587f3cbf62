package sim

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAngleNormalize(t *testing.T) {
	require.InDelta(t, -90, AngleFromDegrees(270).Degrees(), 1e-9)
	require.InDelta(t, 90, AngleFromDegrees(-270).Degrees(), 1e-9)
	require.InDelta(t, 10, AngleFromDegrees(370).Degrees(), 1e-9)
	require.InDelta(t, -170, AngleFromDegrees(170).Sub(AngleFromDegrees(-20)).Degrees(), 1e-9)
}

func TestAngleQ97(t *testing.T) {
	require.Equal(t, int16(0), Angle(0).Q97())
	require.Equal(t, int16(45*128), AngleFromDegrees(45).Q97())
	require.Equal(t, int16(-90*128), AngleFromDegrees(-90).Q97())
}

func TestPoseObserve(t *testing.T) {
	testCases := []struct {
		name   string
		pose   Pose
		target Pos
		dist   float64
		az     float64
		el     float64
	}{
		{"ahead", Pose{}, Pos{X: 2}, 2, 0, 0},
		{"left", Pose{}, Pos{Y: 3}, 3, 90, 0},
		{"rotated", Pose{Orientation: AngleFromDegrees(90)}, Pos{Y: 3}, 3, 0, 0},
		{"above", Pose{}, Pos{X: 1, Z: 1}, math.Sqrt2, 0, 45},
		{"offset", Pose{Pos: Pos{X: 1, Y: 1}}, Pos{X: 1, Y: 1}, 0, 0, 0},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			dist, az, el := tc.pose.Observe(tc.target)
			require.InDelta(t, tc.dist, dist, 1e-9)
			require.InDelta(t, tc.az, az.Degrees(), 1e-9)
			require.InDelta(t, tc.el, el.Degrees(), 1e-9)
		})
	}
}
