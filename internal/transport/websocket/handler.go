package websocket

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/iamasit07/4-in-a-row/brain/internal/config"
	"github.com/iamasit07/4-in-a-row/brain/internal/domain"
	"github.com/iamasit07/4-in-a-row/brain/internal/service/brain"
	"github.com/rs/zerolog/log"
)

// Handler answers hint requests over a websocket: the client sends the
// position it is looking at and gets back the column the engine would play.
type Handler struct {
	DefaultDepth int
	ReadTimeout  time.Duration
	Win          brain.WinPredicate
	Upgrader     websocket.Upgrader
}

const defaultReadTimeout = 60 * time.Second

func NewHandler(cfg *config.Config, win brain.WinPredicate) *Handler {
	readTimeout := cfg.WSReadTimeout
	if readTimeout <= 0 {
		readTimeout = defaultReadTimeout
	}

	return &Handler{
		DefaultDepth: cfg.DefaultDepth,
		ReadTimeout:  readTimeout,
		Win:          win,
		Upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				return origin == "" || cfg.IsOriginAllowed(origin)
			},
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
}

// HandleWebSocket is the gin handler that upgrades the connection
func (h *Handler) HandleWebSocket(c *gin.Context) {
	conn, err := h.Upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Warn().Err(err).Msg("[WS] upgrade error")
		return
	}

	h.handleConnection(NewClient(conn))
}

func (h *Handler) handleConnection(client *Client) {
	defer client.Close()

	done := make(chan struct{})
	defer close(done)

	// Set read deadline to detect stale connections
	client.conn.SetReadDeadline(time.Now().Add(h.ReadTimeout))
	client.conn.SetPongHandler(func(string) error {
		client.conn.SetReadDeadline(time.Now().Add(h.ReadTimeout))
		return nil
	})

	// Keep-alive pinger
	go func() {
		ticker := time.NewTicker(h.ReadTimeout / 2)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				if err := client.Ping(); err != nil {
					return
				}
			}
		}
	}()

	for {
		_, data, err := client.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Warn().Err(err).Msg("[WS] connection closed unexpectedly")
			}
			return
		}
		client.conn.SetReadDeadline(time.Now().Add(h.ReadTimeout))

		var msg domain.ClientMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			log.Debug().Err(err).Msg("[WS] bad message")
			if err := client.SendError("invalid message: " + err.Error()); err != nil {
				return
			}
			continue
		}

		if err := h.handleMessage(client, msg); err != nil {
			log.Warn().Err(err).Msg("[WS] write failed")
			return
		}
	}
}

func (h *Handler) handleMessage(client *Client, msg domain.ClientMessage) error {
	switch msg.Type {
	case domain.MessageHint:
		return h.handleHint(client, msg)
	default:
		return client.SendError("unknown message type: " + msg.Type)
	}
}

// handleHint is the "show me the way" helper: a column is only reported
// when the engine actually found one.
func (h *Handler) handleHint(client *Client, msg domain.ClientMessage) error {
	if msg.Board == nil {
		return client.SendError("board is required")
	}
	mark, err := domain.ResolveMark(msg.Mark, msg.Player)
	if err != nil {
		return client.SendError("mark must be 1 or -1")
	}

	depth := h.DefaultDepth
	if msg.Depth != nil {
		depth = *msg.Depth
	}

	column, err := brain.SelectMove(depth, msg.Board, mark, h.Win)
	if err != nil {
		return client.SendError(err.Error())
	}

	log.Debug().Int("column", column).Int("mark", int(mark)).Msg("[WS] hint computed")

	return client.SendMessage(domain.ServerMessage{
		Type:   domain.MessageHint,
		Column: column,
		Found:  column != brain.NoMove,
	})
}
