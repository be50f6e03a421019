package config

import "flag"

var (
	flagConfig     = flag.String("config", "", "Path to config file")
	flagDebug      = flag.Bool("debug", false, "Enable debug logging")
	flagPower      = flag.Int("power", -1, "Laser power for cuts (0-255)")
	flagCutFeed    = flag.Int("cut-feed", 0, "Feed rate while cutting")
	flagTravelFeed = flag.Int("travel-feed", 0, "Feed rate while travelling")
	flagDPI        = flag.Float64("dpi", 0, "Raster resolution in dots per inch")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagPower >= 0 {
		cfg.GCode.Power = *flagPower
	}
	if *flagCutFeed > 0 {
		cfg.GCode.CutFeed = *flagCutFeed
	}
	if *flagTravelFeed > 0 {
		cfg.GCode.TravelFeed = *flagTravelFeed
	}
	if *flagDPI > 0 {
		cfg.Raster.DPI = *flagDPI
	}
}
