package main

import(
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"percept-filter/pkg/imgio"
	"percept-filter/pkg/percept"
)

var(
	fVerbosity int
	fDistance float64
	fDisplaySize string
	fDisplayRes string
	fHAngle float64
	fVAngle float64
	fGaze string
	fAcuity float64
	fBands int
	fWorkers int
	fConfig string
	fOverwrite bool
	fDumpMaps bool
)

func init() {
	flag.IntVar(&fVerbosity, "v", 0, "how verbose to get")
	flag.Float64Var(&fDistance, "d", 0.6, "distance from observer to display (m)")
	flag.StringVar(&fDisplaySize, "s", "", "display width,height (m), e.g. 0.53,0.30")
	flag.StringVar(&fDisplayRes, "r", "", "display resolution width,height (px), e.g. 1920,1080")
	flag.Float64Var(&fHAngle, "ha", 0, "horizontal angle of display off straight-ahead (deg)")
	flag.Float64Var(&fVAngle, "va", 0, "vertical angle of display off straight-ahead (deg)")
	flag.StringVar(&fGaze, "gaze", "direct", "gaze mode: direct (looking at the display) or peripheral (looking straight ahead)")
	flag.Float64Var(&fAcuity, "acuity", percept.DefaultPeakAcuityCPD, "observer's peak acuity (cycles per degree)")
	flag.IntVar(&fBands, "bands", 6, "how many cutoff bands to filter with")
	flag.IntVar(&fWorkers, "workers", 4, "concurrent band filter workers")
	flag.StringVar(&fConfig, "config", "", "base config YAML file; flags override it")
	flag.BoolVar(&fOverwrite, "overwrite", false, "overwrite the output file if it exists")
	flag.BoolVar(&fDumpMaps, "dumpmaps", false, "also write ecc-map.png and cutoff-map.png")
	flag.Parse()

	log.Printf("percept-filter starting\n")
}

// parsePair splits "a,b" into two floats.
func parsePair(s, name string) (float64, float64) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		log.Fatalf("-%s needs two comma-separated values, got %q", name, s)
	}
	a, err1 := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	b, err2 := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err1 != nil || err2 != nil {
		log.Fatalf("-%s: can't parse %q as numbers", name, s)
	}
	return a, b
}

func main() {
	if flag.NArg() != 2 {
		fmt.Fprintf(os.Stderr, "usage: percept-filter [flags] input-image output.png\n")
		flag.PrintDefaults()
		os.Exit(1)
	}
	inPath, outPath := flag.Arg(0), flag.Arg(1)

	cfg := percept.NewConfig()
	if fConfig != "" {
		contents, err := os.ReadFile(fConfig)
		if err != nil {
			log.Fatalf("config read %s: %v", fConfig, err)
		}
		if cfg, err = percept.NewConfigFromYaml(contents); err != nil {
			log.Fatalf("config parse %s: %v", fConfig, err)
		}
		log.Printf("Loaded base configuration from %s\n", fConfig)
	}

	cfg.Verbosity = fVerbosity
	cfg.DistanceMeters = fDistance
	if fDisplaySize != "" {
		cfg.DisplayWidthMeters, cfg.DisplayHeightMeters = parsePair(fDisplaySize, "s")
	}
	if fDisplayRes != "" {
		rw, rh := parsePair(fDisplayRes, "r")
		cfg.ResolutionX, cfg.ResolutionY = int(rw), int(rh)
	}
	cfg.HorizontalAngleDeg = fHAngle
	cfg.VerticalAngleDeg = fVAngle
	cfg.Gaze = percept.GazeMode(fGaze)
	cfg.PeakAcuityCPD = fAcuity
	cfg.Bands = fBands
	cfg.Workers = fWorkers
	cfg.DumpMaps = fDumpMaps

	if cfg.Verbosity > 0 {
		log.Printf("Final configuration:-\n\n%s\n", cfg.AsYaml())
	}

	if !fOverwrite {
		if _, err := os.Stat(outPath); err == nil {
			log.Fatalf("%s already exists (use -overwrite)", outPath)
		}
	}

	img, err := imgio.LoadImage(inPath)
	if err != nil {
		log.Fatal(err)
	}

	// If no display resolution given, assume the image maps 1:1 onto
	// the panel.
	if cfg.ResolutionX == 0 || cfg.ResolutionY == 0 {
		cfg.ResolutionX = img.Bounds().Dx()
		cfg.ResolutionY = img.Bounds().Dy()
	}

	out, err := percept.RenderPerceivedImage(img, cfg)
	if err != nil {
		log.Fatal(err)
	}

	if err := imgio.WritePNG(out, outPath); err != nil {
		log.Fatal(err)
	}
	log.Printf("Saved image %s", outPath)
}
