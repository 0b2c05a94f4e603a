package orbit

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// constant speed circle so step = 5 * dt everywhere
var circleConfig = CurveConfig{
	RadiusX:       10,
	RadiusZ:       10,
	Roundness:     0,
	Resolution:    360,
	StraightSpeed: 5,
	CornerSpeed:   5,
}

type recordingSink struct {
	poses []Pose
}

func (r *recordingSink) SetPose(p Pose) {
	r.poses = append(r.poses, p)
}

func newPlaying(t *testing.T, s Settings) (*Driver, *int) {
	t.Helper()
	d := NewDriver(circleConfig, s)
	events := new(int)
	d.OnRangeCompleted(func(Completion) { *events++ })
	d.Play()
	require.Equal(t, Playing, d.State())
	return d, events
}

func TestDriver_StartsIdleAtInitialAngle(t *testing.T) {
	d := NewDriver(circleConfig, Settings{InitialAngle: 45, StartAngle: 0, EndAngle: 360})

	assert.Equal(t, Idle, d.State())
	assert.Equal(t, d.Curve().Points[45].Position, d.Pose().Position)

	before := d.Motion()
	d.Tick(0.5)
	assert.Equal(t, before, d.Motion(), "tick before Play must not advance")
}

func TestDriver_OnceTerminatesExactlyOnce(t *testing.T) {
	d, events := newPlaying(t, Settings{StartAngle: 0, EndAngle: 90, Mode: Once})
	length := d.Range().RangeLength
	require.InDelta(t, d.Curve().Points[90].DistanceFromStart, length, 1e-12)

	finishedTransitions := 0
	prev := d.State()
	for i := 0; i < 200; i++ {
		d.Tick(0.1)
		assert.LessOrEqual(t, d.Motion().CurrentProgress, length)
		if d.State() == Finished && prev != Finished {
			finishedTransitions++
			assert.Equal(t, 1, *events, "completion fires in the finishing tick")
		}
		prev = d.State()
	}

	assert.Equal(t, 1, finishedTransitions)
	assert.Equal(t, 1, *events)
	assert.Equal(t, Finished, d.State())
	assert.Equal(t, length, d.Motion().CurrentProgress)
	assert.InDelta(t, 1.0, d.ProgressRatio(), 1e-12)
	assertVecNear(t, d.Curve().Points[90].Position, d.Pose().Position, 1e-9)
}

func TestDriver_OnceStaysFinishedUntilReset(t *testing.T) {
	d, events := newPlaying(t, Settings{StartAngle: 0, EndAngle: 10, Mode: Once})
	for i := 0; i < 50; i++ {
		d.Tick(0.1)
	}
	require.Equal(t, Finished, d.State())

	d.Play()
	assert.Equal(t, Finished, d.State())
	d.Tick(0.1)
	assert.Equal(t, 1, *events)

	d.ResetToInitialPosition(0)
	assert.Equal(t, Idle, d.State())
	d.Play()
	assert.Equal(t, Playing, d.State())
}

func TestDriver_PingPongOscillates(t *testing.T) {
	d, events := newPlaying(t, Settings{StartAngle: 0, EndAngle: 90, Mode: PingPong})
	length := d.Range().RangeLength

	flips := 0
	prev := d.State()
	var travelled float64
	for travelled < 2.5*length {
		d.Tick(0.1)
		travelled += 0.5
		p := d.Motion().CurrentProgress
		assert.GreaterOrEqual(t, p, 0.0)
		assert.LessOrEqual(t, p, length)
		if s := d.State(); s != prev {
			flips++
			prev = s
		}
	}

	assert.GreaterOrEqual(t, flips, 2)
	assert.GreaterOrEqual(t, *events, 1)
	assert.Equal(t, Playing, d.State())
}

func TestDriver_PingPongEventOnlyAtForwardClamp(t *testing.T) {
	d, events := newPlaying(t, Settings{StartAngle: 0, EndAngle: 90, Mode: PingPong})

	for d.State() != Reversing {
		d.Tick(0.1)
	}
	assert.Equal(t, 1, *events)
	assert.Equal(t, d.Range().RangeLength, d.Motion().CurrentProgress)

	for d.State() != Playing {
		d.Tick(0.1)
	}
	assert.Equal(t, 1, *events, "reaching 0 on the way back does not complete")
	assert.Equal(t, 0.0, d.Motion().CurrentProgress)
}

func TestDriver_BoundedRepeatSubtractsRangeLength(t *testing.T) {
	d, events := newPlaying(t, Settings{StartAngle: 0, EndAngle: 90, Mode: Repeat})
	length := d.Range().RangeLength
	require.False(t, d.Range().IsFullLoop)

	const step = 0.5
	var travelled float64
	for i := 0; i < 100; i++ {
		before := d.Motion().CurrentProgress
		d.Tick(0.1)
		travelled += step
		after := d.Motion().CurrentProgress
		if before+step >= length {
			assert.InDelta(t, before+step-length, after, 1e-9, "overshoot carries over")
		} else {
			assert.InDelta(t, before+step, after, 1e-9)
		}
		assert.Less(t, after, length)
	}
	assert.Equal(t, int(math.Floor(travelled/length)), *events)
}

func TestDriver_FullLoopRepeatIsDriftFree(t *testing.T) {
	d, events := newPlaying(t, Settings{InitialAngle: 90, StartAngle: 0, EndAngle: 360, Mode: Repeat})
	curve := d.Curve()
	start := curve.Points[90].DistanceFromStart
	require.Equal(t, start, d.Motion().CurrentProgress)

	const ticks = 5000
	for i := 0; i < ticks; i++ {
		d.Tick(0.1)
		p := d.Motion().CurrentProgress
		require.GreaterOrEqual(t, p, 0.0)
		require.Less(t, p, curve.TotalPerimeter)
	}

	travelled := ticks * 0.5
	require.Greater(t, travelled, 10*curve.TotalPerimeter)
	assertVecNear(t, curve.PositionAt(start+travelled), d.Pose().Position, 1e-6)
	assert.Equal(t, 0, *events, "full loop repeat has no range end")

	p := d.Motion().CurrentProgress
	for k := 1; k <= 5; k++ {
		assertVecNear(t, curve.PositionAt(p), curve.PositionAt(p+float64(k)*curve.TotalPerimeter), 1e-9, "k=%d", k)
	}
}

func TestDriver_FullLoopClockwiseDecreases(t *testing.T) {
	d, _ := newPlaying(t, Settings{InitialAngle: 90, StartAngle: 0, EndAngle: 360, Direction: CW, Mode: Repeat})
	start := d.Motion().CurrentProgress

	d.Tick(0.1)
	assert.InDelta(t, start-0.5, d.Motion().CurrentProgress, 1e-9)

	d.ResetToInitialPosition(0)
	d.Tick(0.1)
	assert.InDelta(t, d.Curve().TotalPerimeter-0.5, d.Motion().CurrentProgress, 1e-9)
}

func TestDriver_StopFreezesProgress(t *testing.T) {
	d, _ := newPlaying(t, Settings{StartAngle: 0, EndAngle: 180, Mode: Repeat})
	d.Tick(0.1)
	d.Stop()
	frozen := d.Motion()
	pose := d.Pose()

	d.Tick(0.1)
	d.Tick(0.1)
	assert.Equal(t, frozen, d.Motion())
	assert.Equal(t, pose, d.Pose())
	assert.Equal(t, Idle, d.State())

	d.Tick(-1)
	assert.Equal(t, frozen, d.Motion())
}

func TestDriver_ResetToInitialPosition(t *testing.T) {
	t.Run("inside bounded range", func(t *testing.T) {
		d := NewDriver(circleConfig, Settings{StartAngle: 0, EndAngle: 180, Mode: PingPong})
		d.ResetToInitialPosition(45)
		assert.InDelta(t, d.Curve().Points[45].DistanceFromStart, d.Motion().CurrentProgress, 1e-12)
		assertVecNear(t, d.Curve().Points[45].Position, d.Pose().Position, 1e-9)
	})

	t.Run("clockwise range", func(t *testing.T) {
		d := NewDriver(circleConfig, Settings{StartAngle: 90, EndAngle: 0, Direction: CW, Mode: Once})
		d.ResetToInitialPosition(45)
		pts := d.Curve().Points
		assert.InDelta(t, pts[90].DistanceFromStart-pts[45].DistanceFromStart, d.Motion().CurrentProgress, 1e-12)
		assertVecNear(t, pts[45].Position, d.Pose().Position, 1e-9)
	})

	t.Run("outside range clamps to length", func(t *testing.T) {
		d := NewDriver(circleConfig, Settings{StartAngle: 0, EndAngle: 90, Mode: Once})
		d.ResetToInitialPosition(270)
		assert.Equal(t, d.Range().RangeLength, d.Motion().CurrentProgress)
	})

	t.Run("angle outside domain is wrapped", func(t *testing.T) {
		d := NewDriver(circleConfig, Settings{StartAngle: 0, EndAngle: 360})
		d.ResetToInitialPosition(-270)
		assert.Equal(t, d.Curve().Points[90].Position, d.Pose().Position)
	})

	t.Run("clears reversing", func(t *testing.T) {
		d, _ := newPlaying(t, Settings{StartAngle: 0, EndAngle: 30, Mode: PingPong})
		for d.State() != Reversing {
			d.Tick(0.1)
		}
		d.ResetToInitialPosition(0)
		assert.Equal(t, Playing, d.State())
		assert.Equal(t, 0.0, d.Motion().CurrentProgress)
	})
}

func TestDriver_DegenerateRange(t *testing.T) {
	cfg := circleConfig
	cfg.Resolution = 100
	d := NewDriver(cfg, Settings{StartAngle: 0, EndAngle: 0.5, Mode: Once})
	events := 0
	d.OnRangeCompleted(func(Completion) { events++ })
	d.Play()

	assert.Equal(t, MinRangeLength, d.Range().RangeLength)
	d.Tick(0.1)
	assert.Equal(t, Finished, d.State())
	assert.Equal(t, 1, events)
	assert.False(t, math.IsNaN(d.ProgressRatio()))
}

func TestDriver_CompletionPayload(t *testing.T) {
	d := NewDriver(circleConfig, Settings{StartAngle: 30, EndAngle: 60, Direction: CCW, Mode: Once})
	var got []Completion
	d.OnRangeCompleted(func(c Completion) { got = append(got, c) })
	d.OnRangeCompleted(nil)
	d.Play()
	for i := 0; i < 100; i++ {
		d.Tick(0.1)
	}
	require.Len(t, got, 1)
	assert.Equal(t, Completion{Mode: Once, StartAngle: 30, EndAngle: 60, Direction: CCW}, got[0])
}

func TestDriver_SpinDoesNotAffectPath(t *testing.T) {
	plain, _ := newPlaying(t, Settings{StartAngle: 0, EndAngle: 360})
	spinning, _ := newPlaying(t, Settings{StartAngle: 0, EndAngle: 360, SelfSpinSpeed: 90})
	reverse, _ := newPlaying(t, Settings{StartAngle: 0, EndAngle: 360, SelfSpinSpeed: 90, SelfSpinDirection: CW})

	a := plain.Tick(0.5)
	b := spinning.Tick(0.5)
	c := reverse.Tick(0.5)

	assert.Equal(t, a.Position, b.Position)
	assert.Equal(t, a.Position, c.Position)
	assert.Equal(t, 0.0, a.Yaw)
	assert.InDelta(t, 45.0, b.Yaw, 1e-9)
	assert.InDelta(t, 315.0, c.Yaw, 1e-9)

	rotated := b.Rotation.Rotate(up)
	assertVecNear(t, up, rotated, 1e-12, "spin is about the vertical axis")
}

func TestDriver_SpinRampEasesIn(t *testing.T) {
	d, _ := newPlaying(t, Settings{StartAngle: 0, EndAngle: 360, SelfSpinSpeed: 90, SpinRamp: 1})

	first := d.Tick(0.5).Yaw
	assert.Greater(t, first, 0.0)
	assert.Less(t, first, 45.0)

	d.Tick(1)
	before := d.Pose().Yaw
	after := d.Tick(0.5).Yaw
	assert.InDelta(t, 45.0, after-before, 1e-4, "full rate once the ramp is done")
}

func TestDriver_PoseSink(t *testing.T) {
	d := NewDriver(circleConfig, Settings{StartAngle: 0, EndAngle: 360})
	sink := &recordingSink{}
	d.SetPoseSink(sink)
	d.Play()
	d.Tick(0.1)
	d.ResetToInitialPosition(180)

	require.Len(t, sink.poses, 2)
	assert.Equal(t, d.Pose(), sink.poses[1])
	assert.Equal(t, d.Curve().Points[180].Position, sink.poses[1].Position)
}

func TestDriver_RebakeResetsAndKeepsPlaying(t *testing.T) {
	d, _ := newPlaying(t, Settings{InitialAngle: 0, StartAngle: 0, EndAngle: 90, Mode: PingPong})
	for i := 0; i < 10; i++ {
		d.Tick(0.1)
	}
	oldPerimeter := d.Curve().TotalPerimeter

	bigger := circleConfig
	bigger.RadiusX, bigger.RadiusZ = 20, 20
	d.Bake(bigger)

	assert.InDelta(t, 2*oldPerimeter, d.Curve().TotalPerimeter, 1e-9)
	assert.Equal(t, 0.0, d.Motion().CurrentProgress)
	assert.InDelta(t, d.Curve().Points[90].DistanceFromStart, d.Range().RangeLength, 1e-12)
	assert.Equal(t, Playing, d.State())
}

func TestDriver_ProgressRatio(t *testing.T) {
	d, _ := newPlaying(t, Settings{StartAngle: 0, EndAngle: 180, Mode: Once})
	d.Tick(1)
	assert.InDelta(t, 5/d.Range().RangeLength, d.ProgressRatio(), 1e-12)

	loop, _ := newPlaying(t, Settings{InitialAngle: 0, StartAngle: 0, EndAngle: 360})
	loop.Tick(1)
	assert.InDelta(t, 5/loop.Curve().TotalPerimeter, loop.ProgressRatio(), 1e-12)
}

func TestParseMode(t *testing.T) {
	for in, want := range map[string]Mode{"": Repeat, "loop": Repeat, "PingPong": PingPong, "ping-pong": PingPong, "once": Once} {
		got, err := ParseMode(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseMode("bounce")
	assert.True(t, errors.Is(err, ErrUnknownMode))
	assert.Equal(t, "pingpong", PingPong.String())
	assert.Equal(t, "reversing", Reversing.String())
}
