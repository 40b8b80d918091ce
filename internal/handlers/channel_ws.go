package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/ternarybob/arbor"

	"github.com/ternarybob/placesbridge/internal/bridge"
	"github.com/ternarybob/placesbridge/internal/common"
	"github.com/ternarybob/placesbridge/internal/models"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins for local development
	},
}

// ChannelSocket carries the method channel over a WebSocket. Each inbound
// frame is one MethodCall; responses are written as they complete, so they
// may arrive out of order and are correlated by id.
type ChannelSocket struct {
	dispatcher   MethodDispatcher
	logger       arbor.ILogger
	readLimit    int64
	writeTimeout time.Duration
}

// NewChannelSocket creates a new ChannelSocket
func NewChannelSocket(dispatcher MethodDispatcher, logger arbor.ILogger, config *common.WebSocketConfig) *ChannelSocket {
	return &ChannelSocket{
		dispatcher:   dispatcher,
		logger:       logger,
		readLimit:    config.ReadLimit,
		writeTimeout: config.WriteDeadline(),
	}
}

// channelConn serialises writes to one socket
type channelConn struct {
	conn         *websocket.Conn
	mu           sync.Mutex
	writeTimeout time.Duration
}

func (c *channelConn) send(resp models.MethodResponse) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.writeTimeout > 0 {
		_ = c.conn.SetWriteDeadline(time.Now().Add(c.writeTimeout))
	}
	return c.conn.WriteJSON(resp)
}

// HandleWebSocket handles GET /ws
func (h *ChannelSocket) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Error().Err(err).Msg("Failed to upgrade WebSocket connection")
		return
	}
	if h.readLimit > 0 {
		conn.SetReadLimit(h.readLimit)
	}
	// The server's ReadTimeout must not end an idle channel
	_ = conn.SetReadDeadline(time.Time{})

	client := &channelConn{conn: conn, writeTimeout: h.writeTimeout}
	ctx, cancel := context.WithCancel(r.Context())
	var inflight sync.WaitGroup

	h.logger.Debug().Str("remote", r.RemoteAddr).Msg("Channel client connected")

	defer func() {
		cancel()
		inflight.Wait()
		conn.Close()
		h.logger.Debug().Str("remote", r.RemoteAddr).Msg("Channel client disconnected")
	}()

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.logger.Warn().Err(err).Msg("WebSocket error")
			}
			return
		}

		var call models.MethodCall
		if err := json.Unmarshal(data, &call); err != nil {
			h.logger.Warn().Err(err).Msg("Malformed channel frame")
			resp := models.MethodResponse{Error: &models.MethodError{
				Code:    bridge.CodeInvalidArgument,
				Message: "malformed frame: " + err.Error(),
			}}
			if err := client.send(resp); err != nil {
				h.logger.Warn().Err(err).Msg("Failed to send channel response")
			}
			continue
		}

		inflight.Add(1)
		common.SafeGo(h.logger, "channel:"+call.Method, func() {
			defer inflight.Done()
			resp := h.dispatcher.Handle(ctx, call)
			if err := client.send(resp); err != nil {
				h.logger.Warn().Err(err).Str("id", call.ID).Str("method", call.Method).Msg("Failed to send channel response")
			}
		})
	}
}
