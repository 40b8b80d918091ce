package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ternarybob/arbor"

	"github.com/ternarybob/placesbridge/internal/bridge"
	"github.com/ternarybob/placesbridge/internal/common"
	"github.com/ternarybob/placesbridge/internal/interfaces"
	"github.com/ternarybob/placesbridge/internal/models"
)

// stubPlacesClient answers every fetch with the same place
type stubPlacesClient struct {
	place *models.Place
}

func (s *stubPlacesClient) FindAutocompletePredictions(ctx context.Context, req *models.AutocompleteRequest) ([]*models.AutocompletePrediction, error) {
	return []*models.AutocompletePrediction{}, nil
}

func (s *stubPlacesClient) FetchPlace(ctx context.Context, req *models.FetchPlaceRequest) (*models.Place, error) {
	return s.place, nil
}

func dialChannel(t *testing.T, dispatcher MethodDispatcher) *websocket.Conn {
	t.Helper()
	socket := NewChannelSocket(dispatcher, arbor.NewLogger(), &common.WebSocketConfig{
		ReadLimit:    64 * 1024,
		WriteTimeout: "5s",
	})

	server := httptest.NewServer(http.HandlerFunc(socket.HandleWebSocket))
	t.Cleanup(server.Close)

	wsURL := "ws" + strings.TrimPrefix(server.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func readResponse(t *testing.T, conn *websocket.Conn) models.MethodResponse {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	var resp models.MethodResponse
	require.NoError(t, conn.ReadJSON(&resp))
	return resp
}

func TestChannelSocket_ResponsesCorrelateByID(t *testing.T) {
	release := make(chan struct{})
	d := &mockDispatcher{handleFunc: func(ctx context.Context, call models.MethodCall) models.MethodResponse {
		if call.Method == "slow" {
			<-release
		}
		return models.MethodResponse{ID: call.ID, Result: call.Method}
	}}
	conn := dialChannel(t, d)

	require.NoError(t, conn.WriteJSON(models.MethodCall{ID: "1", Method: "slow"}))
	require.NoError(t, conn.WriteJSON(models.MethodCall{ID: "2", Method: "fast"}))

	first := readResponse(t, conn)
	assert.Equal(t, "2", first.ID)
	assert.Equal(t, "fast", first.Result)

	close(release)

	second := readResponse(t, conn)
	assert.Equal(t, "1", second.ID)
	assert.Equal(t, "slow", second.Result)
}

func TestChannelSocket_MalformedFrame(t *testing.T) {
	conn := dialChannel(t, &mockDispatcher{})

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte("{oops")))

	resp := readResponse(t, conn)
	require.NotNil(t, resp.Error)
	assert.Equal(t, bridge.CodeInvalidArgument, resp.Error.Code)
	assert.Contains(t, resp.Error.Message, "malformed frame")

	// The connection survives a bad frame
	require.NoError(t, conn.WriteJSON(models.MethodCall{ID: "ok", Method: "isInitialized"}))
	assert.Equal(t, "ok", readResponse(t, conn).ID)
}

func TestChannelSocket_EndToEnd(t *testing.T) {
	rating := 4.5
	client := &stubPlacesClient{place: &models.Place{ID: "P1", Name: "Cafe", Rating: &rating, PriceLevel: -1}}
	factory := func(apiKey string, locale *models.Locale) interfaces.PlacesClient { return client }
	d := bridge.NewDispatcher(factory, func() models.SessionToken { return "tok" }, arbor.NewLogger())

	conn := dialChannel(t, d)

	require.NoError(t, conn.WriteJSON(models.MethodCall{ID: "a", Method: bridge.MethodFetchPlace,
		Arguments: map[string]interface{}{"placeId": "P1"}}))
	resp := readResponse(t, conn)
	require.NotNil(t, resp.Error)
	assert.Equal(t, bridge.CodeNotInitialized, resp.Error.Code)

	require.NoError(t, conn.WriteJSON(models.MethodCall{ID: "b", Method: bridge.MethodInitialize,
		Arguments: map[string]interface{}{"apiKey": "k"}}))
	resp = readResponse(t, conn)
	assert.True(t, resp.Succeeded())
	assert.Nil(t, resp.Result)

	require.NoError(t, conn.WriteJSON(models.MethodCall{ID: "c", Method: bridge.MethodFetchPlace,
		Arguments: map[string]interface{}{"placeId": "P1", "fields": []string{"NAME", "RATING"}}}))
	resp = readResponse(t, conn)
	require.True(t, resp.Succeeded())

	place, ok := resp.Result.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "Cafe", place["name"])
	assert.Equal(t, 4.5, place["rating"])
	assert.Equal(t, float64(-1), place["priceLevel"])
	assert.Nil(t, place["address"])
	assert.Len(t, place, 17)

	require.NoError(t, conn.WriteJSON(models.MethodCall{ID: "d", Method: "bogus"}))
	resp = readResponse(t, conn)
	assert.Equal(t, "d", resp.ID)
	assert.True(t, resp.NotImplemented)
}
