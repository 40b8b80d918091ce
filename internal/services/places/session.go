package places

import (
	"github.com/google/uuid"

	"github.com/ternarybob/placesbridge/internal/models"
)

// NewSessionToken mints a fresh autocomplete session token
func NewSessionToken() models.SessionToken {
	return models.SessionToken(uuid.NewString())
}
