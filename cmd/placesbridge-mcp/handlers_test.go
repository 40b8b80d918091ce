package main

import (
	"context"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ternarybob/arbor"

	"github.com/ternarybob/placesbridge/internal/bridge"
	"github.com/ternarybob/placesbridge/internal/codec"
	"github.com/ternarybob/placesbridge/internal/models"
)

// recordingChannel captures the call and answers with a fixed response
type recordingChannel struct {
	call models.MethodCall
	resp models.MethodResponse
}

func (c *recordingChannel) Invoke(ctx context.Context, call models.MethodCall) <-chan models.MethodResponse {
	c.call = call
	out := make(chan models.MethodResponse, 1)
	out <- c.resp
	close(out)
	return out
}

// blockedChannel never answers
type blockedChannel struct{}

func (blockedChannel) Invoke(ctx context.Context, call models.MethodCall) <-chan models.MethodResponse {
	return make(chan models.MethodResponse)
}

func toolRequest(args map[string]interface{}) mcp.CallToolRequest {
	var req mcp.CallToolRequest
	req.Params.Arguments = args
	return req
}

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	require.Len(t, result.Content, 1)
	text, ok := result.Content[0].(mcp.TextContent)
	require.True(t, ok)
	return text.Text
}

func TestHandleFindAutocompletePredictions(t *testing.T) {
	prediction := &models.AutocompletePrediction{PlaceID: "P1", PrimaryText: "Cafe", FullText: "Cafe, Paris"}
	ch := &recordingChannel{resp: models.MethodResponse{
		Result: codec.PredictionsToList([]*models.AutocompletePrediction{prediction}),
	}}
	handler := handleFindAutocompletePredictions(ch, arbor.NewLogger())

	result, err := handler(context.Background(), toolRequest(map[string]interface{}{
		"query":       "caf",
		"countries":   []interface{}{"FR"},
		"type_filter": "ESTABLISHMENT",
		"origin_lat":  48.85,
		"origin_lng":  2.35,
	}))
	require.NoError(t, err)

	assert.Equal(t, bridge.MethodFindAutocompletePredictions, ch.call.Method)
	assert.Equal(t, "caf", ch.call.Arguments["query"])
	assert.Equal(t, []string{"FR"}, ch.call.Arguments["countries"])
	assert.Equal(t, "ESTABLISHMENT", ch.call.Arguments["typeFilter"])
	assert.Equal(t, map[string]interface{}{"lat": 48.85, "lng": 2.35}, ch.call.Arguments["origin"])
	assert.Equal(t, false, ch.call.Arguments["newSessionToken"])

	text := resultText(t, result)
	assert.Contains(t, text, "Predictions (1 results)")
	assert.Contains(t, text, "**Cafe, Paris**")
	assert.Contains(t, text, "`P1`")
}

func TestHandleFindAutocompletePredictions_OriginNeedsBothCoordinates(t *testing.T) {
	ch := &recordingChannel{resp: models.MethodResponse{Result: []*codec.Record{}}}
	handler := handleFindAutocompletePredictions(ch, arbor.NewLogger())

	result, err := handler(context.Background(), toolRequest(map[string]interface{}{
		"query":      "caf",
		"origin_lat": 48.85,
	}))
	require.NoError(t, err)

	_, hasOrigin := ch.call.Arguments["origin"]
	assert.False(t, hasOrigin)
	assert.Contains(t, resultText(t, result), "No results found.")
}

func TestHandleFetchPlace(t *testing.T) {
	ch := &recordingChannel{resp: models.MethodResponse{Result: codec.PlaceToMap(&models.Place{ID: "P1", Name: "Cafe", PriceLevel: -1})}}
	handler := handleFetchPlace(ch, arbor.NewLogger())

	result, err := handler(context.Background(), toolRequest(map[string]interface{}{"place_id": "P1"}))
	require.NoError(t, err)

	assert.Equal(t, bridge.MethodFetchPlace, ch.call.Method)
	assert.Equal(t, "P1", ch.call.Arguments["placeId"])
	_, hasFields := ch.call.Arguments["fields"]
	assert.False(t, hasFields, "absent fields must stay absent so every field is fetched")

	text := resultText(t, result)
	assert.Contains(t, text, `"name": "Cafe"`)
	assert.Contains(t, text, `"priceLevel": -1`)

	_, err = handler(context.Background(), toolRequest(map[string]interface{}{"place_id": "P1", "fields": []interface{}{}}))
	require.NoError(t, err)
	assert.Equal(t, []string{}, ch.call.Arguments["fields"])

	_, err = handler(context.Background(), toolRequest(map[string]interface{}{"place_id": "P1", "fields": nil}))
	require.NoError(t, err)
	_, hasFields = ch.call.Arguments["fields"]
	assert.False(t, hasFields, "null fields select every field")
}

func TestHandleFindAutocompletePredictions_EmptyQuery(t *testing.T) {
	ch := &recordingChannel{resp: models.MethodResponse{Result: []*codec.Record{}}}
	handler := handleFindAutocompletePredictions(ch, arbor.NewLogger())

	result, err := handler(context.Background(), toolRequest(map[string]interface{}{"query": ""}))
	require.NoError(t, err)

	assert.Equal(t, bridge.MethodFindAutocompletePredictions, ch.call.Method)
	assert.Equal(t, "", ch.call.Arguments["query"])
	assert.Contains(t, resultText(t, result), "No results found.")
}

func TestHandlers_Errors(t *testing.T) {
	t.Run("missing required argument", func(t *testing.T) {
		ch := &recordingChannel{}
		result, err := handleFetchPlace(ch, arbor.NewLogger())(context.Background(), toolRequest(map[string]interface{}{}))
		require.NoError(t, err)
		assert.Equal(t, "Error: place_id parameter is required", resultText(t, result))
		assert.Empty(t, ch.call.Method)
	})

	t.Run("method error", func(t *testing.T) {
		ch := &recordingChannel{resp: models.MethodResponse{Error: &models.MethodError{
			Code:    bridge.CodeAPIError,
			Message: "The provided API key is invalid.",
		}}}
		result, err := handleFetchPlace(ch, arbor.NewLogger())(context.Background(), toolRequest(map[string]interface{}{"place_id": "P1"}))
		require.NoError(t, err)
		assert.Equal(t, "Error [API_ERROR]: The provided API key is invalid.", resultText(t, result))
	})

	t.Run("cancelled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		result, err := handleFetchPlace(blockedChannel{}, arbor.NewLogger())(ctx, toolRequest(map[string]interface{}{"place_id": "P1"}))
		require.NoError(t, err)
		assert.Contains(t, resultText(t, result), "request cancelled")
	})
}
