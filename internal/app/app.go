package app

import (
	"context"
	"fmt"

	"github.com/ternarybob/arbor"

	"github.com/ternarybob/placesbridge/internal/bridge"
	"github.com/ternarybob/placesbridge/internal/common"
	"github.com/ternarybob/placesbridge/internal/handlers"
	"github.com/ternarybob/placesbridge/internal/interfaces"
	"github.com/ternarybob/placesbridge/internal/models"
	"github.com/ternarybob/placesbridge/internal/services/places"
	"github.com/ternarybob/placesbridge/internal/storage/badger"
)

// App holds all application components and dependencies
type App struct {
	Config *common.Config
	Logger arbor.ILogger

	// Storage
	DB        *badger.BadgerDB
	KVStorage interfaces.KeyValueStorage

	// Bridge
	Dispatcher *bridge.Dispatcher

	// HTTP handlers
	ChannelHandler *handlers.ChannelHandler
	ChannelSocket  *handlers.ChannelSocket
	StatusHandler  *handlers.StatusHandler
	KVHandler      *handlers.KVHandler
}

// New initializes the application with all dependencies
func New(cfg *common.Config, logger arbor.ILogger) (*App, error) {
	app := &App{
		Config: cfg,
		Logger: logger,
	}

	if err := app.initDatabase(); err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	app.initServices()
	app.initHandlers()

	if cfg.Bridge.AutoInitialize {
		if err := app.AutoInitialize(context.Background()); err != nil {
			// Not fatal: clients can still call initialize with their own key
			logger.Warn().Err(err).Msg("Auto-initialize skipped")
		}
	}

	logger.Info().
		Bool("auto_initialize", cfg.Bridge.AutoInitialize).
		Bool("initialized", app.Dispatcher.IsInitialized()).
		Msg("Application initialization complete")

	return app, nil
}

func (a *App) initDatabase() error {
	db, err := badger.NewBadgerDB(a.Logger, &a.Config.Storage.Badger)
	if err != nil {
		return err
	}
	a.DB = db
	a.KVStorage = badger.NewKVStorage(db, a.Logger)
	return nil
}

func (a *App) initServices() {
	a.Dispatcher = bridge.NewDispatcher(PlacesClientFactory(&a.Config.PlacesAPI, a.Logger), places.NewSessionToken, a.Logger)
}

func (a *App) initHandlers() {
	a.ChannelHandler = handlers.NewChannelHandler(a.Dispatcher, a.Logger)
	a.ChannelSocket = handlers.NewChannelSocket(a.Dispatcher, a.Logger, &a.Config.WebSocket)
	a.StatusHandler = handlers.NewStatusHandler(a.Dispatcher, a.Logger)
	a.KVHandler = handlers.NewKVHandler(a.KVStorage, a.Logger)
}

// PlacesClientFactory returns the dispatcher's client factory. A locale
// passed to initialize overrides the configured default.
func PlacesClientFactory(placesConfig *common.PlacesAPIConfig, logger arbor.ILogger) bridge.ClientFactory {
	return func(apiKey string, locale *models.Locale) interfaces.PlacesClient {
		opts := []places.ClientOption{
			places.WithBaseURL(placesConfig.BaseURL),
			places.WithTimeout(placesConfig.Timeout()),
			places.WithRateLimit(placesConfig.RateLimitInterval()),
			places.WithLogger(logger),
			places.WithLocale(placesConfig.DefaultLocale()),
		}
		if locale != nil {
			opts = append(opts, places.WithLocale(locale))
		}
		return places.NewClient(apiKey, opts...)
	}
}

// AutoInitialize initializes the dispatcher with the resolved places API key
func (a *App) AutoInitialize(ctx context.Context) error {
	apiKey, err := common.ResolveAPIKey(ctx, a.KVStorage, common.PlacesAPIKeyName, a.Config.PlacesAPI.APIKey)
	if err != nil {
		return err
	}
	a.Dispatcher.Initialize(&bridge.InitializeArgs{APIKey: apiKey})
	return nil
}

// Close closes all application resources
func (a *App) Close() error {
	if a.DB != nil {
		if err := a.DB.Close(); err != nil {
			return fmt.Errorf("failed to close storage: %w", err)
		}
		a.Logger.Info().Msg("Storage closed")
	}
	return nil
}
