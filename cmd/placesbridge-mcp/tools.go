package main

import (
	"github.com/mark3labs/mcp-go/mcp"
)

// createFindAutocompletePredictionsTool returns the find_autocomplete_predictions tool definition
func createFindAutocompletePredictionsTool() mcp.Tool {
	return mcp.NewTool("find_autocomplete_predictions",
		mcp.WithDescription("Suggest places matching a partial text query"),
		mcp.WithString("query",
			mcp.Required(),
			mcp.Description("Partial place name or address"),
		),
		mcp.WithArray("countries",
			mcp.WithStringItems(),
			mcp.Description("Restrict results to these ISO 3166-1 alpha-2 country codes"),
		),
		mcp.WithString("type_filter",
			mcp.Description("Restrict results by type: ADDRESS, CITIES, ESTABLISHMENT, GEOCODE, REGIONS"),
			mcp.Enum("ADDRESS", "CITIES", "ESTABLISHMENT", "GEOCODE", "REGIONS"),
		),
		mcp.WithNumber("origin_lat",
			mcp.Description("Latitude used to compute distanceMeters (requires origin_lng)"),
		),
		mcp.WithNumber("origin_lng",
			mcp.Description("Longitude used to compute distanceMeters (requires origin_lat)"),
		),
		mcp.WithBoolean("new_session_token",
			mcp.Description("Start a new autocomplete session"),
		),
	)
}

// createFetchPlaceTool returns the fetch_place tool definition
func createFetchPlaceTool() mcp.Tool {
	return mcp.NewTool("fetch_place",
		mcp.WithDescription("Fetch details for one place by id"),
		mcp.WithString("place_id",
			mcp.Required(),
			mcp.Description("Place id, usually taken from a prediction"),
		),
		mcp.WithArray("fields",
			mcp.WithStringItems(),
			mcp.Description("Fields to fetch, e.g. NAME, ADDRESS, RATING (default: all)"),
		),
		mcp.WithBoolean("new_session_token",
			mcp.Description("Fetch outside the current autocomplete session"),
		),
	)
}
