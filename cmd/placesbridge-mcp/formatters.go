package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ternarybob/placesbridge/internal/codec"
	"github.com/ternarybob/placesbridge/internal/models"
)

// formatResponse renders a channel response as tool text
func formatResponse(resp models.MethodResponse) string {
	switch {
	case resp.NotImplemented:
		return "Error: method not implemented"
	case resp.Error != nil:
		return fmt.Sprintf("Error [%s]: %s", resp.Error.Code, resp.Error.Message)
	}

	if predictions, ok := resp.Result.([]*codec.Record); ok {
		return formatPredictions(predictions)
	}
	return formatJSON(resp.Result)
}

// formatPredictions formats predictions as a markdown list
func formatPredictions(predictions []*codec.Record) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("## Predictions (%d results)\n\n", len(predictions)))

	if len(predictions) == 0 {
		sb.WriteString("No results found.\n")
		return sb.String()
	}

	for i, p := range predictions {
		fullText, _ := p.Get("fullText")
		placeID, _ := p.Get("placeId")
		sb.WriteString(fmt.Sprintf("%d. **%v**\n", i+1, fullText))
		sb.WriteString(fmt.Sprintf("   - placeId: `%v`\n", placeID))
		if distance, _ := p.Get("distanceMeters"); distance != nil {
			sb.WriteString(fmt.Sprintf("   - distance: %vm\n", distance))
		}
	}

	return sb.String()
}

func formatJSON(v interface{}) string {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Sprintf("Error: failed to encode result: %v", err)
	}
	return "```json\n" + string(data) + "\n```"
}
