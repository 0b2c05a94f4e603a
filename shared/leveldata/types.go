// Package leveldata provides TMX parsing for orbit layouts.
// It has no dependencies on ebitengine, donburi, or resolv, pure data only.
package leveldata

// OrbitMap holds everything parsed from one TMX orbit layout.
type OrbitMap struct {
	Name      string
	Paths     []OrbitPath
	MapWidth  int
	MapHeight int
}

// OrbitPath is one rectangle object from the OrbitPaths group. The rectangle
// bounds the curve: its center is the orbit center and its half extents are
// the radii.
type OrbitPath struct {
	Name   string
	Preset string

	CenterX, CenterY float64
	RadiusX, RadiusZ float64

	// Raw custom properties; Has reports which ones were set in the map.
	Floats  map[string]float64
	Ints    map[string]int
	Strings map[string]string
	Bools   map[string]bool
}

// Has reports whether the map set the named property.
func (p OrbitPath) Has(name string) bool {
	if _, ok := p.Floats[name]; ok {
		return true
	}
	if _, ok := p.Ints[name]; ok {
		return true
	}
	if _, ok := p.Strings[name]; ok {
		return true
	}
	_, ok := p.Bools[name]
	return ok
}

// Property names read from OrbitPaths objects.
const (
	PropPreset        = "preset"
	PropRoundness     = "roundness"
	PropResolution    = "resolution"
	PropStraightSpeed = "straightSpeed"
	PropCornerSpeed   = "cornerSpeed"
	PropHeight        = "height"
	PropInitialAngle  = "initialAngle"
	PropStartAngle    = "startAngle"
	PropEndAngle      = "endAngle"
	PropDirection     = "direction"
	PropMode          = "mode"
	PropSpinSpeed     = "spinSpeed"
	PropSpinDirection = "spinDirection"
	PropSpinRamp      = "spinRamp"
	PropAutoPlay      = "autoplay"
)

var floatProps = []string{
	PropRoundness, PropStraightSpeed, PropCornerSpeed, PropHeight,
	PropInitialAngle, PropStartAngle, PropEndAngle, PropSpinSpeed, PropSpinRamp,
}

var intProps = []string{PropResolution}

var stringProps = []string{PropPreset, PropDirection, PropMode, PropSpinDirection}

var boolProps = []string{PropAutoPlay}
