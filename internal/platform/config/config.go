package config

import (
	"os"
	"strconv"
)

// Server captures HTTP server level configuration.
type Server struct {
	Addr               string
	ScreeningThreshold float64
}

// FromEnv builds a Server config from environment variables so main stays lean.
func FromEnv() Server {
	addr := os.Getenv("VIGIL_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	threshold := 0.80
	if raw := os.Getenv("SCREENING_THRESHOLD"); raw != "" {
		if parsed, err := strconv.ParseFloat(raw, 64); err == nil && parsed > 0 && parsed <= 1 {
			threshold = parsed
		}
	}

	return Server{
		Addr:               addr,
		ScreeningThreshold: threshold,
	}
}
