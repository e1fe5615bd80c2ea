package percept

import(
	"fmt"
	"log"

	"gopkg.in/yaml.v2"
)

// GazeMode says where the observer's fovea is pointed.
type GazeMode string

const(
	// GazeDirect - the observer fixates the display itself, so acuity
	// is foveal at the display center and falls off toward the edges.
	GazeDirect GazeMode = "direct"

	// GazePeripheral - the observer looks straight ahead and the
	// display sits off to the side, entirely in peripheral vision.
	GazePeripheral GazeMode = "peripheral"
)

const(
	// Resolution tested for with a Snellen chart to determine 20/20
	// vision, in cycles per degree. Subject to inter-individual
	// differences in eye-sight, lighting, and stimulus properties.
	DefaultPeakAcuityCPD = 60.0

	// Residual peripheral pattern vision never quite reaches zero, so
	// cutoffs are floored here (cycles per degree).
	MinAcuityCPD = 2.0
)

// Config fully determines one filtering run. Value semantics; nothing
// mutates it after creation.
type Config struct {
	Verbosity            int

	DistanceMeters       float64  // observer to display center
	DisplayWidthMeters   float64
	DisplayHeightMeters  float64
	ResolutionX          int      // display pixels across
	ResolutionY          int
	HorizontalAngleDeg   float64  // display offset from straight ahead, positive = observer's right
	VerticalAngleDeg     float64  // positive = up
	Gaze                 GazeMode

	PeakAcuityCPD        float64  // observer acuity override
	Bands                int      // how many discrete cutoff bands to filter with
	Workers              int      // concurrent band filter goroutines
	DumpMaps             bool     // write ecc-map.png / cutoff-map.png
}

func NewConfig() Config {
	return Config{
		Gaze:          GazeDirect,
		PeakAcuityCPD: DefaultPeakAcuityCPD,
		Bands:         6,
		Workers:       4,
	}
}

func NewConfigFromYaml(b []byte) (Config, error) {
	c := NewConfig()
	err := yaml.Unmarshal(b, &c)
	return c, err
}

func (c Config)AsYaml() string {
	b, err := yaml.Marshal(c)
	if err != nil {
		log.Fatalf("Can't marshal config yaml: %v\n", err)
	}
	return string(b)
}

// Validate checks the geometric parameters before any work is done.
// Tilt at or past 90 degrees would put the display edge-on or behind
// its own plane, which the projection can't represent, so it is
// rejected rather than guessed at.
func (c Config)Validate() error {
	if c.DistanceMeters <= 0 {
		return fmt.Errorf("distance %f m: %w", c.DistanceMeters, ErrInvalidGeometry)
	}
	if c.DisplayWidthMeters <= 0 || c.DisplayHeightMeters <= 0 {
		return fmt.Errorf("display size %fx%f m: %w", c.DisplayWidthMeters, c.DisplayHeightMeters, ErrInvalidGeometry)
	}
	if c.ResolutionX < 1 || c.ResolutionY < 1 {
		return fmt.Errorf("display resolution %dx%d px: %w", c.ResolutionX, c.ResolutionY, ErrInvalidGeometry)
	}
	if abs(c.HorizontalAngleDeg) >= 90 || abs(c.VerticalAngleDeg) >= 90 {
		return fmt.Errorf("tilt angles (%f,%f) deg: %w", c.HorizontalAngleDeg, c.VerticalAngleDeg, ErrInvalidGeometry)
	}
	switch c.Gaze {
	case GazeDirect, GazePeripheral:
	default:
		return fmt.Errorf("gaze mode %q: %w", c.Gaze, ErrInvalidGeometry)
	}
	if c.PeakAcuityCPD <= 0 {
		return fmt.Errorf("peak acuity %f cpd: %w", c.PeakAcuityCPD, ErrInvalidGeometry)
	}
	if c.Bands < 1 {
		return fmt.Errorf("band count %d: %w", c.Bands, ErrInvalidGeometry)
	}
	return nil
}

func abs(f float64) float64 {
	if f < 0 { return -f }
	return f
}
