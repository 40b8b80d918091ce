package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ternarybob/arbor"

	"github.com/ternarybob/placesbridge/internal/interfaces"
)

const keysPrefix = "/api/keys/"

// KVHandler handles API key storage HTTP requests
type KVHandler struct {
	kvStorage interfaces.KeyValueStorage
	logger    arbor.ILogger
}

// NewKVHandler creates a new KV handler for managing API keys
func NewKVHandler(kvStorage interfaces.KeyValueStorage, logger arbor.ILogger) *KVHandler {
	return &KVHandler{
		kvStorage: kvStorage,
		logger:    logger,
	}
}

// ListKVHandler handles GET /api/keys - lists all keys with masked values
func (h *KVHandler) ListKVHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	pairs, err := h.kvStorage.List(r.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("Failed to list keys")
		WriteError(w, http.StatusInternalServerError, "Failed to list keys")
		return
	}

	sanitized := make([]map[string]interface{}, len(pairs))
	for i, pair := range pairs {
		sanitized[i] = map[string]interface{}{
			"key":         pair.Key,
			"value":       maskValue(pair.Value),
			"description": pair.Description,
			"created_at":  pair.CreatedAt,
			"updated_at":  pair.UpdatedAt,
		}
	}

	h.logger.Debug().Int("count", len(pairs)).Msg("Listed keys")
	WriteJSON(w, http.StatusOK, sanitized)
}

// KeyHandler routes /api/keys/{key} by method
func (h *KVHandler) KeyHandler(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.GetKVHandler(w, r)
	case http.MethodPut:
		h.UpdateKVHandler(w, r)
	case http.MethodDelete:
		h.DeleteKVHandler(w, r)
	default:
		WriteError(w, http.StatusMethodNotAllowed, "Method not allowed")
	}
}

// GetKVHandler handles GET /api/keys/{key} - returns the full value
func (h *KVHandler) GetKVHandler(w http.ResponseWriter, r *http.Request) {
	key, ok := h.keyFromPath(w, r)
	if !ok {
		return
	}

	pair, err := h.kvStorage.GetPair(r.Context(), key)
	if err != nil {
		if errors.Is(err, interfaces.ErrKeyNotFound) {
			WriteError(w, http.StatusNotFound, "Key not found")
			return
		}
		h.logger.Error().Err(err).Str("key", key).Msg("Failed to get key")
		WriteError(w, http.StatusInternalServerError, "Failed to retrieve key")
		return
	}

	WriteJSON(w, http.StatusOK, pair)
}

// UpdateKVHandler handles PUT /api/keys/{key} - creates or replaces a key
func (h *KVHandler) UpdateKVHandler(w http.ResponseWriter, r *http.Request) {
	key, ok := h.keyFromPath(w, r)
	if !ok {
		return
	}

	var req struct {
		Value       string `json:"value"`
		Description string `json:"description"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn().Err(err).Msg("Failed to parse request body")
		WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Value == "" {
		WriteError(w, http.StatusBadRequest, "Value is required")
		return
	}

	isNewKey, err := h.kvStorage.Upsert(r.Context(), key, req.Value, req.Description)
	if err != nil {
		h.logger.Error().Err(err).Str("key", key).Msg("Failed to upsert key")
		WriteError(w, http.StatusInternalServerError, "Failed to store key")
		return
	}

	statusCode := http.StatusOK
	message := "Key updated successfully"
	if isNewKey {
		statusCode = http.StatusCreated
		message = "Key created successfully"
	}

	h.logger.Info().Str("key", key).Bool("created", isNewKey).Msg("Stored key")
	WriteJSON(w, statusCode, map[string]interface{}{
		"status":  "success",
		"message": message,
		"key":     key,
		"created": isNewKey,
	})
}

// DeleteKVHandler handles DELETE /api/keys/{key}
func (h *KVHandler) DeleteKVHandler(w http.ResponseWriter, r *http.Request) {
	key, ok := h.keyFromPath(w, r)
	if !ok {
		return
	}

	if err := h.kvStorage.Delete(r.Context(), key); err != nil {
		if errors.Is(err, interfaces.ErrKeyNotFound) {
			WriteError(w, http.StatusNotFound, "Key not found")
			return
		}
		h.logger.Error().Err(err).Str("key", key).Msg("Failed to delete key")
		WriteError(w, http.StatusInternalServerError, "Failed to delete key")
		return
	}

	h.logger.Info().Str("key", key).Msg("Deleted key")
	WriteSuccess(w, "Key deleted successfully")
}

func (h *KVHandler) keyFromPath(w http.ResponseWriter, r *http.Request) (string, bool) {
	key, err := PathParam(r, keysPrefix)
	if err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid key encoding")
		return "", false
	}
	if key == "" {
		WriteError(w, http.StatusBadRequest, "Missing key parameter")
		return "", false
	}
	return key, true
}

// maskValue masks secrets for list responses.
// Short values are fully masked; otherwise first 4 + "..." + last 4.
func maskValue(value string) string {
	if len(value) < 8 {
		return "••••••••"
	}
	return value[:4] + "..." + value[len(value)-4:]
}
