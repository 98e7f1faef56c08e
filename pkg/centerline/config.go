package centerline

// Config holds the tolerances, catalogs, and feature switches of the engine.
// All lengths are in the same planar unit as the input coordinates,
// millimeters in typical use. Angles are in degrees.
//
// Values are assumed valid (non-negative tolerances and thicknesses);
// validating caller input is the caller's responsibility.
type Config struct {
	// WallThicknesses lists the nominal wall thicknesses to try when pairing
	// wall faces. Pairing runs largest-first regardless of the order given.
	WallThicknesses []float64 `yaml:"wallThicknesses"`

	// DoorWidths and ColumnWidths are the opening widths the gap-recovery
	// stage may bridge across.
	DoorWidths   []float64 `yaml:"doorWidths"`
	ColumnWidths []float64 `yaml:"columnWidths"`

	// AngleTolerance governs cardinal snapping, collinearity, and
	// parallel/perpendicular tests.
	AngleTolerance float64 `yaml:"angleTolerance"`

	// DistanceTolerance governs collinearity and segment merging.
	DistanceTolerance float64 `yaml:"distanceTolerance"`

	// AxisSnapDistance is the farthest a centerline may be moved onto a
	// parallel reference axis.
	AxisSnapDistance float64 `yaml:"axisSnapDistance"`

	// AutoJoinDistance is the largest gap bridged between collinear
	// centerlines without a matching opening width.
	AutoJoinDistance float64 `yaml:"autoJoinDistance"`

	// ExtendDistance is the farthest an endpoint may be moved to meet a
	// perpendicular centerline (auto-extend) or reference axis (grid extend).
	ExtendDistance float64 `yaml:"extendDistance"`

	// DefaultThickness is substituted for single-line walls without a
	// nominal thickness.
	DefaultThickness float64 `yaml:"defaultThickness"`

	// MinLength is the shortest centerline kept by the final cleanup.
	MinLength float64 `yaml:"minLength"`

	// AutoExtend joins endpoints of perpendicular centerlines that nearly
	// meet.
	AutoExtend bool `yaml:"autoExtend"`

	// BreakAtAxes splits centerlines at interior intersections with
	// perpendicular reference axes.
	BreakAtAxes bool `yaml:"breakAtAxes"`

	// ExtendToAxes stretches centerline endpoints onto nearby perpendicular
	// reference axes.
	ExtendToAxes bool `yaml:"extendToAxes"`
}

// DefaultConfig returns the engine defaults for millimeter-unit plans
func DefaultConfig() Config {
	return Config{
		WallThicknesses:   []float64{300, 240, 200, 150, 100},
		DoorWidths:        []float64{700, 800, 900, 1000},
		ColumnWidths:      []float64{400, 500, 600},
		AngleTolerance:    5,
		DistanceTolerance: 10,
		AxisSnapDistance:  150,
		AutoJoinDistance:  300,
		ExtendDistance:    500,
		DefaultThickness:  200,
		MinLength:         50,
		AutoExtend:        true,
		BreakAtAxes:       false,
		ExtendToAxes:      false,
	}
}
