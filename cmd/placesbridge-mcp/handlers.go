package main

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/ternarybob/arbor"

	"github.com/ternarybob/placesbridge/internal/bridge"
	"github.com/ternarybob/placesbridge/internal/models"
)

// channel is the part of the dispatcher the tools need
type channel interface {
	Invoke(ctx context.Context, call models.MethodCall) <-chan models.MethodResponse
}

// handleFindAutocompletePredictions implements the find_autocomplete_predictions tool
func handleFindAutocompletePredictions(dispatcher channel, logger arbor.ILogger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		// An empty query is valid and is passed through
		query, err := request.RequireString("query")
		if err != nil {
			return textResult("Error: query parameter is required"), nil
		}

		args := map[string]interface{}{
			"query":           query,
			"countries":       request.GetStringSlice("countries", nil),
			"newSessionToken": request.GetBool("new_session_token", false),
		}
		if typeFilter := request.GetString("type_filter", ""); typeFilter != "" {
			args["typeFilter"] = typeFilter
		}

		raw := request.GetArguments()
		lat, hasLat := raw["origin_lat"]
		lng, hasLng := raw["origin_lng"]
		if hasLat && hasLng {
			args["origin"] = map[string]interface{}{"lat": lat, "lng": lng}
		}

		return invoke(ctx, dispatcher, logger, bridge.MethodFindAutocompletePredictions, args), nil
	}
}

// handleFetchPlace implements the fetch_place tool
func handleFetchPlace(dispatcher channel, logger arbor.ILogger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		placeID, err := request.RequireString("place_id")
		if err != nil || placeID == "" {
			return textResult("Error: place_id parameter is required"), nil
		}

		args := map[string]interface{}{
			"placeId":         placeID,
			"newSessionToken": request.GetBool("new_session_token", false),
		}
		// Absent or null means all fields; an explicit empty list is passed through
		if raw := request.GetArguments()["fields"]; raw != nil {
			args["fields"] = request.GetStringSlice("fields", []string{})
		}

		return invoke(ctx, dispatcher, logger, bridge.MethodFetchPlace, args), nil
	}
}

// invoke sends one call through the channel and waits for its response or ctx
func invoke(ctx context.Context, dispatcher channel, logger arbor.ILogger, method string, args map[string]interface{}) *mcp.CallToolResult {
	select {
	case resp := <-dispatcher.Invoke(ctx, models.MethodCall{Method: method, Arguments: args}):
		if resp.Error != nil {
			logger.Warn().Str("method", method).Str("code", resp.Error.Code).Msg(resp.Error.Message)
		}
		return textResult(formatResponse(resp))
	case <-ctx.Done():
		return textResult("Error: request cancelled: " + ctx.Err().Error())
	}
}

func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.NewTextContent(text),
		},
	}
}
