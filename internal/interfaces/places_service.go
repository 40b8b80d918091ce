package interfaces

import (
	"context"

	"github.com/ternarybob/placesbridge/internal/models"
)

// PlacesClient defines the places backend the bridge dispatches to
type PlacesClient interface {
	// FindAutocompletePredictions runs one autocomplete search.
	//
	// Parameters:
	//   - ctx: Context for cancellation and timeout control
	//   - req: Query, filter and session token
	//
	// Returns:
	//   - []*models.AutocompletePrediction: Predictions in service order
	//   - error: Error if the search fails
	FindAutocompletePredictions(ctx context.Context, req *models.AutocompleteRequest) ([]*models.AutocompletePrediction, error)

	// FetchPlace retrieves the fields selected in req.Fields for one place.
	FetchPlace(ctx context.Context, req *models.FetchPlaceRequest) (*models.Place, error)
}
