package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/mark3labs/mcp-go/server"
	"github.com/ternarybob/arbor"
	arbor_models "github.com/ternarybob/arbor/models"

	"github.com/ternarybob/placesbridge/internal/app"
	"github.com/ternarybob/placesbridge/internal/bridge"
	"github.com/ternarybob/placesbridge/internal/common"
	"github.com/ternarybob/placesbridge/internal/interfaces"
	"github.com/ternarybob/placesbridge/internal/services/places"
	"github.com/ternarybob/placesbridge/internal/storage/badger"
)

func main() {
	_ = godotenv.Load()

	var configFiles []string
	if configPath := os.Getenv("PLACESBRIDGE_CONFIG"); configPath != "" {
		configFiles = append(configFiles, configPath)
	} else if _, err := os.Stat("placesbridge.toml"); err == nil {
		configFiles = append(configFiles, "placesbridge.toml")
	}

	config, err := common.LoadFromFiles(configFiles...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Minimal logging to avoid cluttering MCP stdio
	logger := arbor.NewLogger().WithConsoleWriter(arbor_models.WriterConfiguration{
		Type:             arbor_models.LogWriterTypeConsole,
		TimeFormat:       "15:04:05",
		DisableTimestamp: false,
	}).WithLevelFromString("warn")

	// The key store is optional here; the HTTP server may already hold the lock
	var kvStorage interfaces.KeyValueStorage
	if db, err := badger.NewBadgerDB(logger, &config.Storage.Badger); err != nil {
		logger.Warn().Err(err).Msg("Key store unavailable, using environment and config only")
	} else {
		defer db.Close()
		kvStorage = badger.NewKVStorage(db, logger)
	}

	dispatcher := bridge.NewDispatcher(app.PlacesClientFactory(&config.PlacesAPI, logger), places.NewSessionToken, logger)

	apiKey, err := common.ResolveAPIKey(context.Background(), kvStorage, common.PlacesAPIKeyName, config.PlacesAPI.APIKey)
	if err != nil {
		logger.Fatal().Err(err).Msg("Places API key not configured")
	}
	dispatcher.Initialize(&bridge.InitializeArgs{APIKey: apiKey, Locale: config.PlacesAPI.DefaultLocale()})

	mcpServer := server.NewMCPServer(
		"placesbridge",
		common.GetVersion(),
		server.WithToolCapabilities(true),
	)

	mcpServer.AddTool(createFindAutocompletePredictionsTool(), handleFindAutocompletePredictions(dispatcher, logger))
	mcpServer.AddTool(createFetchPlaceTool(), handleFetchPlace(dispatcher, logger))

	// Start server (blocks on stdio)
	if err := server.ServeStdio(mcpServer); err != nil {
		logger.Fatal().Err(err).Msg("MCP server failed")
	}
}
