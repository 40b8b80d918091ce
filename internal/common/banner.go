package common

import (
	"github.com/ternarybob/arbor"
	"github.com/ternarybob/banner"
)

// PrintBanner displays the application banner
func PrintBanner(version string) {
	banner.PrintSimple("PlacesBridge", version)
}

// LogStartup records the effective settings once the logger is configured
func LogStartup(config *Config, logger arbor.ILogger) {
	logger.Info().
		Str("version", GetFullVersion()).
		Str("environment", config.Environment).
		Str("host", config.Server.Host).
		Int("port", config.Server.Port).
		Str("places_base_url", config.PlacesAPI.BaseURL).
		Bool("auto_initialize", config.Bridge.AutoInitialize).
		Bool("key_store_in_memory", config.Storage.Badger.InMemory).
		Msg("PlacesBridge starting")
}
