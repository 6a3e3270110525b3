package spectate

import (
	"bytes"
	"context"
	"encoding/gob"
	"errors"
	"log/slog"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/wvoliveira/pong-duel/game"
)

// ErrClosed indica que o hub (ou o feed) já foi encerrado.
var ErrClosed = errors.New("spectator feed closed")

const (
	sendQueue    = 4
	writeTimeout = time.Second
)

// Eventos que o loop do hub aceita.
type eventType int

const (
	eventJoin eventType = iota
	eventLeave
)

type hubEvent struct {
	typ    eventType
	client *client
}

type client struct {
	id   uuid.UUID
	conn *websocket.Conn
	send chan []byte
}

// Hub distribui o estado do jogo para espectadores. Só a goroutine de Run
// mexe no conjunto de clientes; o jogo apenas chama Publish.
type Hub struct {
	events   chan hubEvent
	frames   chan game.State
	done     chan struct{}
	clients  atomic.Int32
	upgrader websocket.Upgrader
}

func NewHub() *Hub {
	return &Hub{
		events: make(chan hubEvent),
		frames: make(chan game.State, 1),
		done:   make(chan struct{}),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// Clients é o número de espectadores conectados.
func (h *Hub) Clients() int { return int(h.clients.Load()) }

// Publish nunca bloqueia: se o hub ainda não pegou o quadro anterior,
// ele é trocado pelo mais novo.
func (h *Hub) Publish(s game.State) {
	select {
	case h.frames <- s:
		return
	default:
	}
	select {
	case <-h.frames:
	default:
	}
	select {
	case h.frames <- s:
	default:
	}
}

// Run processa entradas, saídas e quadros até ctx terminar.
func (h *Hub) Run(ctx context.Context) error {
	clients := make(map[*client]struct{})
	defer func() {
		close(h.done)
		for c := range clients {
			close(c.send)
		}
		h.clients.Store(0)
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case evt := <-h.events:
			switch evt.typ {
			case eventJoin:
				clients[evt.client] = struct{}{}
				h.clients.Store(int32(len(clients)))
				slog.Info("spectator joined", "id", evt.client.id, "total", len(clients))

			case eventLeave:
				if _, ok := clients[evt.client]; ok {
					delete(clients, evt.client)
					close(evt.client.send)
					h.clients.Store(int32(len(clients)))
					slog.Info("spectator left", "id", evt.client.id, "total", len(clients))
				}
			}

		case s := <-h.frames:
			if len(clients) == 0 {
				continue
			}
			msg, err := encode(s)
			if err != nil {
				slog.Error("error to encode frame", "error", err)
				continue
			}
			for c := range clients {
				select {
				case c.send <- msg:
				default:
					// Espectador lento perde o quadro; o jogo não espera.
					slog.Debug("spectator frame dropped", "id", c.id)
				}
			}
		}
	}
}

func encode(s game.State) ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(s); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	select {
	case <-h.done:
		http.Error(w, ErrClosed.Error(), http.StatusServiceUnavailable)
		return
	default:
	}

	ws, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Error("error to upgrade to websocket", "error", err)
		return
	}

	c := &client{id: uuid.New(), conn: ws, send: make(chan []byte, sendQueue)}
	if !h.emit(hubEvent{typ: eventJoin, client: c}) {
		ws.Close()
		return
	}

	go c.writeLoop()

	// Espectadores não mandam nada que importe; lemos só para notar a saída.
	for {
		if _, _, err := ws.ReadMessage(); err != nil {
			break
		}
	}
	h.emit(hubEvent{typ: eventLeave, client: c})
}

func (h *Hub) emit(evt hubEvent) bool {
	select {
	case h.events <- evt:
		return true
	case <-h.done:
		return false
	}
}

func (c *client) writeLoop() {
	defer c.conn.Close()

	for msg := range c.send {
		c.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
		if err := c.conn.WriteMessage(websocket.BinaryMessage, msg); err != nil {
			slog.Warn("error to write to spectator", "id", c.id, "error", err)
			return
		}
	}
	c.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
	c.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseGoingAway, ""))
}
