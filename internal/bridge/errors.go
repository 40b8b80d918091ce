package bridge

import (
	"errors"
	"fmt"

	"github.com/ternarybob/placesbridge/internal/codec"
	"github.com/ternarybob/placesbridge/internal/models"
)

// Error codes carried in MethodError.Code
const (
	CodeAPIError        = "API_ERROR"
	CodeNotInitialized  = "NOT_INITIALIZED"
	CodeInvalidField    = "INVALID_FIELD"
	CodeInvalidArgument = "INVALID_ARGUMENT"
)

var (
	// ErrNotInitialized is returned for places calls made before initialize
	ErrNotInitialized = errors.New("places client is not initialized")

	// ErrInvalidArgument wraps argument decoding and validation failures
	ErrInvalidArgument = errors.New("invalid argument")
)

// MethodError is a failure that has already been classified into a wire code
type MethodError struct {
	Code    string
	Message string
	Details interface{}
	Err     error
}

func (e *MethodError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *MethodError) Unwrap() error {
	return e.Err
}

// Wire returns the response form of the error
func (e *MethodError) Wire() *models.MethodError {
	return &models.MethodError{
		Code:    e.Code,
		Message: e.Message,
		Details: e.Details,
	}
}

// describer is implemented by upstream errors that carry a service message
type describer interface {
	Description() string
}

// classify maps any dispatcher failure onto a MethodError
func classify(err error) *MethodError {
	var methodErr *MethodError
	if errors.As(err, &methodErr) {
		return methodErr
	}

	if errors.Is(err, ErrNotInitialized) {
		return &MethodError{Code: CodeNotInitialized, Message: err.Error(), Err: err}
	}

	var fieldErr *codec.InvalidFieldNameError
	if errors.As(err, &fieldErr) {
		return &MethodError{
			Code:    CodeInvalidField,
			Message: fieldErr.Error(),
			Details: map[string]interface{}{"field": fieldErr.Name},
			Err:     err,
		}
	}

	if errors.Is(err, ErrInvalidArgument) {
		return &MethodError{Code: CodeInvalidArgument, Message: err.Error(), Err: err}
	}

	// Anything else came from the places client
	var upstream describer
	if errors.As(err, &upstream) {
		return &MethodError{Code: CodeAPIError, Message: upstream.Description(), Err: err}
	}
	return &MethodError{Code: CodeAPIError, Message: err.Error(), Err: err}
}
