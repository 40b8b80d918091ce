package handlers

import (
	"context"

	"github.com/ternarybob/placesbridge/internal/models"
)

// MethodDispatcher executes method channel calls
type MethodDispatcher interface {
	Handle(ctx context.Context, call models.MethodCall) models.MethodResponse
	Invoke(ctx context.Context, call models.MethodCall) <-chan models.MethodResponse
	IsInitialized() bool
}
