package orbit

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/automoto/doomerang-orbit/shared/gamemath"
	"github.com/go-gl/mathgl/mgl64"
)

var ErrUnknownMode = errors.New("unknown orbit mode")

// Mode selects the playback semantics of a Driver.
type Mode int

const (
	Repeat Mode = iota
	PingPong
	Once
)

func (m Mode) String() string {
	switch m {
	case Repeat:
		return "repeat"
	case PingPong:
		return "pingpong"
	case Once:
		return "once"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// ParseMode accepts "repeat", "pingpong" (or "ping-pong"/"ping_pong") and
// "once". An empty string means Repeat.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "repeat", "loop":
		return Repeat, nil
	case "pingpong", "ping-pong", "ping_pong":
		return PingPong, nil
	case "once":
		return Once, nil
	}
	return Repeat, fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

// State is the playback state derived from MotionState.
type State int

const (
	Idle State = iota
	Playing
	Reversing
	Finished
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Playing:
		return "playing"
	case Reversing:
		return "reversing"
	case Finished:
		return "finished"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// MotionState is the mutable playback state owned by a Driver.
type MotionState struct {
	CurrentProgress float64
	Mode            Mode
	IsReversing     bool
	IsPlaying       bool
	IsFinished      bool
}

// State folds the flags into a single state value.
func (m MotionState) State() State {
	switch {
	case m.IsFinished:
		return Finished
	case !m.IsPlaying:
		return Idle
	case m.IsReversing:
		return Reversing
	}
	return Playing
}

// Settings are the traversal parameters of a Driver. Angles are in degrees.
type Settings struct {
	InitialAngle      float64
	StartAngle        float64
	EndAngle          float64
	Direction         Direction
	Mode              Mode
	SelfSpinSpeed     float64 // degrees/second
	SelfSpinDirection Direction
	SpinRamp          float64 // seconds to reach full spin after Play, 0 = instant
}

// Pose is the per-tick output of a Driver.
type Pose struct {
	Position mgl64.Vec3
	Yaw      float64 // degrees about +Y
	Rotation mgl64.Quat
}

// Completion identifies the traversal that just completed.
type Completion struct {
	Mode       Mode
	StartAngle float64
	EndAngle   float64
	Direction  Direction
}

// RangeCompletedFunc observes completion transitions.
type RangeCompletedFunc func(Completion)

// PoseSink receives the pose whenever the Driver recomputes it.
type PoseSink interface {
	SetPose(Pose)
}

// Driver advances one entity along a baked orbit. It is not safe for
// concurrent use; the host calls Tick once per frame.
type Driver struct {
	curve     *BakedCurve
	settings  Settings
	rng       TraversalRange
	motion    MotionState
	spin      spinner
	pose      Pose
	sink      PoseSink
	listeners []RangeCompletedFunc
}

// NewDriver bakes cfg and places the entity at s.InitialAngle. The driver
// starts Idle.
func NewDriver(cfg CurveConfig, s Settings) *Driver {
	d := &Driver{curve: Bake(cfg)}
	d.SetTraversal(s)
	return d
}

// Bake rebuilds the curve and resets all derived state to the initial angle.
// The play flag survives a rebake.
func (d *Driver) Bake(cfg CurveConfig) {
	d.curve = Bake(cfg)
	d.rng = d.curve.ComputeRange(d.settings.StartAngle, d.settings.EndAngle, d.settings.Direction)
	d.ResetToInitialPosition(d.settings.InitialAngle)
}

// SetTraversal replaces the traversal settings, recomputes the range and
// resets to s.InitialAngle.
func (d *Driver) SetTraversal(s Settings) {
	d.settings = s
	d.motion.Mode = s.Mode
	d.spin = newSpinner(s.SelfSpinSpeed, s.SelfSpinDirection, s.SpinRamp)
	d.rng = d.curve.ComputeRange(s.StartAngle, s.EndAngle, s.Direction)
	d.ResetToInitialPosition(s.InitialAngle)
}

// ResetToInitialPosition places the entity on the sample nearest angle and
// clears Finished and Reversing.
func (d *Driver) ResetToInitialPosition(angle float64) {
	d.motion.IsFinished = false
	d.motion.IsReversing = false

	target := d.curve.AngleToDistance(angle)
	if d.fullLoopRepeat() {
		d.motion.CurrentProgress = target
	} else {
		diff := d.curve.DirectionalDistance(d.rng.RangeStartOffset, target, d.rng.Direction)
		d.motion.CurrentProgress = gamemath.Clamp(diff, 0, d.rng.RangeLength)
	}
	d.updatePose()
}

// Play resumes advancing. A Finished driver stays finished until reset.
func (d *Driver) Play() {
	if d.motion.IsFinished || d.motion.IsPlaying {
		return
	}
	d.motion.IsPlaying = true
	d.spin.restart()
}

// Stop freezes progress; Tick becomes a no-op.
func (d *Driver) Stop() {
	d.motion.IsPlaying = false
}

// OnRangeCompleted registers fn to be called synchronously from Tick.
func (d *Driver) OnRangeCompleted(fn RangeCompletedFunc) {
	if fn != nil {
		d.listeners = append(d.listeners, fn)
	}
}

// SetPoseSink sets where poses are written after each update. nil disables it.
func (d *Driver) SetPoseSink(sink PoseSink) {
	d.sink = sink
}

// Tick advances the traversal by dt seconds and returns the new pose.
func (d *Driver) Tick(dt float64) Pose {
	if !d.motion.IsPlaying || d.motion.IsFinished || !(dt > 0) || math.IsInf(dt, 1) {
		return d.pose
	}

	step := d.curve.SpeedAt(d.globalDistance()) * dt
	length := d.rangeLength()
	m := &d.motion

	switch m.Mode {
	case Repeat:
		if d.rng.IsFullLoop {
			m.CurrentProgress = gamemath.WrapDistance(
				m.CurrentProgress+d.rng.Direction.Sign()*step, d.curve.TotalPerimeter)
			break
		}
		m.CurrentProgress += step
		if m.CurrentProgress >= length {
			m.CurrentProgress = math.Mod(m.CurrentProgress, length)
			d.complete()
		}
	case PingPong:
		if m.IsReversing {
			m.CurrentProgress -= step
			if m.CurrentProgress <= 0 {
				m.CurrentProgress = 0
				m.IsReversing = false
			}
			break
		}
		m.CurrentProgress += step
		if m.CurrentProgress >= length {
			m.CurrentProgress = length
			m.IsReversing = true
			d.complete()
		}
	case Once:
		m.CurrentProgress += step
		if m.CurrentProgress >= length {
			m.CurrentProgress = length
			m.IsFinished = true
			m.IsPlaying = false
			d.complete()
		}
	}

	d.spin.advance(dt)
	d.updatePose()
	return d.pose
}

func (d *Driver) fullLoopRepeat() bool {
	return d.motion.Mode == Repeat && d.rng.IsFullLoop
}

func (d *Driver) rangeLength() float64 {
	return math.Max(d.rng.RangeLength, MinRangeLength)
}

// globalDistance is the arc length on the whole curve the entity sits at.
func (d *Driver) globalDistance() float64 {
	p := d.curve.TotalPerimeter
	if d.fullLoopRepeat() {
		return gamemath.WrapDistance(d.motion.CurrentProgress, p)
	}
	return gamemath.WrapDistance(d.rng.RangeStartOffset+d.rng.Direction.Sign()*d.motion.CurrentProgress, p)
}

func (d *Driver) complete() {
	c := Completion{
		Mode:       d.motion.Mode,
		StartAngle: d.rng.StartAngle,
		EndAngle:   d.rng.EndAngle,
		Direction:  d.rng.Direction,
	}
	for _, fn := range d.listeners {
		fn(c)
	}
}

func (d *Driver) updatePose() {
	d.pose = Pose{
		Position: d.curve.PositionAt(d.globalDistance()),
		Yaw:      d.spin.yaw,
		Rotation: d.spin.rotation(),
	}
	if d.sink != nil {
		d.sink.SetPose(d.pose)
	}
}

// ProgressRatio is how far along the active range the entity is, in [0,1].
func (d *Driver) ProgressRatio() float64 {
	if d.fullLoopRepeat() {
		travelled := d.curve.DirectionalDistance(d.rng.RangeStartOffset, d.globalDistance(), d.rng.Direction)
		return travelled / math.Max(d.curve.TotalPerimeter, MinRangeLength)
	}
	return d.motion.CurrentProgress / d.rangeLength()
}

func (d *Driver) Curve() *BakedCurve    { return d.curve }
func (d *Driver) Range() TraversalRange { return d.rng }
func (d *Driver) Motion() MotionState   { return d.motion }
func (d *Driver) State() State          { return d.motion.State() }
func (d *Driver) Pose() Pose            { return d.pose }
func (d *Driver) Settings() Settings    { return d.settings }
