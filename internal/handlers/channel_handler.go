package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/ternarybob/arbor"

	"github.com/ternarybob/placesbridge/internal/bridge"
	"github.com/ternarybob/placesbridge/internal/models"
)

const channelPrefix = "/api/channel/"

// ChannelHandler exposes the method channel over plain HTTP
type ChannelHandler struct {
	dispatcher MethodDispatcher
	logger     arbor.ILogger
}

// NewChannelHandler creates a new ChannelHandler
func NewChannelHandler(dispatcher MethodDispatcher, logger arbor.ILogger) *ChannelHandler {
	return &ChannelHandler{
		dispatcher: dispatcher,
		logger:     logger,
	}
}

// CallHandler handles POST /api/channel/{method}. The body is the argument
// map; an empty body means no arguments.
func (h *ChannelHandler) CallHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPost) {
		return
	}

	method, err := PathParam(r, channelPrefix)
	if err != nil || method == "" {
		WriteError(w, http.StatusBadRequest, "Missing method name")
		return
	}

	var arguments map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&arguments); err != nil && !errors.Is(err, io.EOF) {
		h.logger.Warn().Err(err).Str("method", method).Msg("Failed to parse channel arguments")
		WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	call := models.MethodCall{
		ID:        r.Header.Get("X-Request-ID"),
		Method:    method,
		Arguments: arguments,
	}

	resp := h.dispatcher.Handle(r.Context(), call)
	WriteJSON(w, statusFor(resp), resp)
}

// statusFor maps a method response onto an HTTP status. Places API errors
// are ordinary results of the call and stay 200.
func statusFor(resp models.MethodResponse) int {
	if resp.NotImplemented {
		return http.StatusNotFound
	}
	if resp.Error == nil {
		return http.StatusOK
	}
	switch resp.Error.Code {
	case bridge.CodeNotInitialized:
		return http.StatusConflict
	case bridge.CodeInvalidArgument, bridge.CodeInvalidField:
		return http.StatusBadRequest
	default:
		return http.StatusOK
	}
}
