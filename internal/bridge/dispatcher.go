// Package bridge implements the places method channel: argument decoding,
// session token tracking and dispatch of method calls to the places client.
package bridge

import (
	"context"
	"sync"
	"time"

	"github.com/ternarybob/arbor"

	"github.com/ternarybob/placesbridge/internal/codec"
	"github.com/ternarybob/placesbridge/internal/interfaces"
	"github.com/ternarybob/placesbridge/internal/models"
)

// Method names accepted by the channel
const (
	MethodInitialize                  = "initialize"
	MethodDeinitialize                = "deinitialize"
	MethodIsInitialized               = "isInitialized"
	MethodFindAutocompletePredictions = "findAutocompletePredictions"
	MethodFetchPlace                  = "fetchPlace"
)

// ClientFactory constructs a places client for an API key. locale is nil
// when the caller did not supply one.
type ClientFactory func(apiKey string, locale *models.Locale) interfaces.PlacesClient

// placesContext is everything created by one initialize call
type placesContext struct {
	client interfaces.PlacesClient
	tokens *SessionTokens
}

// Dispatcher routes method calls to the places client. It is safe for
// concurrent use; each call produces exactly one response.
type Dispatcher struct {
	mu        sync.RWMutex
	current   *placesContext
	newClient ClientFactory
	newToken  func() models.SessionToken
	logger    arbor.ILogger
}

// NewDispatcher creates an uninitialized dispatcher
func NewDispatcher(newClient ClientFactory, newToken func() models.SessionToken, logger arbor.ILogger) *Dispatcher {
	return &Dispatcher{
		newClient: newClient,
		newToken:  newToken,
		logger:    logger,
	}
}

// Invoke handles call on its own goroutine. The returned channel yields
// exactly one response and is then closed.
func (d *Dispatcher) Invoke(ctx context.Context, call models.MethodCall) <-chan models.MethodResponse {
	out := make(chan models.MethodResponse, 1)
	go func() {
		defer close(out)
		out <- d.Handle(ctx, call)
	}()
	return out
}

// Handle executes call and shapes the outcome into a response
func (d *Dispatcher) Handle(ctx context.Context, call models.MethodCall) models.MethodResponse {
	start := time.Now()

	var result interface{}
	var err error

	switch call.Method {
	case MethodInitialize:
		var args *InitializeArgs
		if args, err = DecodeInitializeArgs(call.Arguments); err == nil {
			d.Initialize(args)
		}

	case MethodDeinitialize:
		d.Deinitialize()

	case MethodIsInitialized:
		result = d.IsInitialized()

	case MethodFindAutocompletePredictions:
		result, err = d.handleFind(ctx, call.Arguments)

	case MethodFetchPlace:
		result, err = d.handleFetch(ctx, call.Arguments)

	default:
		d.logger.Warn().Str("method", call.Method).Str("id", call.ID).Msg("Method not implemented")
		return models.MethodResponse{ID: call.ID, NotImplemented: true}
	}

	if err != nil {
		methodErr := classify(err)
		d.logger.Warn().
			Str("method", call.Method).
			Str("id", call.ID).
			Str("code", methodErr.Code).
			Err(err).
			Msg("Method call failed")
		return models.MethodResponse{ID: call.ID, Error: methodErr.Wire()}
	}

	d.logger.Debug().
		Str("method", call.Method).
		Str("id", call.ID).
		Dur("duration", time.Since(start)).
		Msg("Method call completed")

	return models.MethodResponse{ID: call.ID, Result: result}
}

func (d *Dispatcher) handleFind(ctx context.Context, raw map[string]interface{}) (interface{}, error) {
	if !d.IsInitialized() {
		return nil, ErrNotInitialized
	}
	args, err := DecodeFindAutocompletePredictionsArgs(raw)
	if err != nil {
		return nil, err
	}
	predictions, err := d.FindAutocompletePredictions(ctx, args)
	if err != nil {
		return nil, err
	}
	return codec.PredictionsToList(predictions), nil
}

func (d *Dispatcher) handleFetch(ctx context.Context, raw map[string]interface{}) (interface{}, error) {
	if !d.IsInitialized() {
		return nil, ErrNotInitialized
	}
	args, err := DecodeFetchPlaceArgs(raw)
	if err != nil {
		return nil, err
	}
	place, err := d.FetchPlace(ctx, args)
	if err != nil {
		return nil, err
	}
	return codec.PlaceToMap(place), nil
}

// Initialize replaces any previous client and session state, even with an empty key
func (d *Dispatcher) Initialize(args *InitializeArgs) {
	pc := &placesContext{
		client: d.newClient(args.APIKey, args.Locale),
		tokens: NewSessionTokens(d.newToken),
	}

	d.mu.Lock()
	replaced := d.current != nil
	d.current = pc
	d.mu.Unlock()

	d.logger.Info().
		Bool("has_api_key", args.APIKey != "").
		Bool("has_locale", args.Locale != nil).
		Bool("replaced", replaced).
		Msg("Places client initialized")
}

// Deinitialize releases nothing; the client stays usable
func (d *Dispatcher) Deinitialize() {
	d.logger.Debug().Msg("Deinitialize requested")
}

// IsInitialized reports whether a client has been constructed
func (d *Dispatcher) IsInitialized() bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.current != nil
}

// FindAutocompletePredictions runs one search. The session token used is
// stored only when the search succeeds.
func (d *Dispatcher) FindAutocompletePredictions(ctx context.Context, args *FindAutocompletePredictionsArgs) ([]*models.AutocompletePrediction, error) {
	pc, err := d.active()
	if err != nil {
		return nil, err
	}

	token := pc.tokens.ForSearch(args.NewSessionToken)
	predictions, err := pc.client.FindAutocompletePredictions(ctx, &models.AutocompleteRequest{
		Query: args.Query,
		Filter: models.AutocompleteFilter{
			Type:      args.TypeFilter,
			Countries: args.Countries,
			Origin:    args.Origin,
		},
		SessionToken: token,
	})
	if err != nil {
		return nil, err
	}

	pc.tokens.Commit(token)
	return predictions, nil
}

// FetchPlace fetches one place using the token stored by the last successful search
func (d *Dispatcher) FetchPlace(ctx context.Context, args *FetchPlaceArgs) (*models.Place, error) {
	pc, err := d.active()
	if err != nil {
		return nil, err
	}

	return pc.client.FetchPlace(ctx, &models.FetchPlaceRequest{
		PlaceID:      args.PlaceID,
		Fields:       args.Fields,
		SessionToken: pc.tokens.ForFetch(args.NewSessionToken),
	})
}

func (d *Dispatcher) active() (*placesContext, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.current == nil {
		return nil, ErrNotInitialized
	}
	return d.current, nil
}
