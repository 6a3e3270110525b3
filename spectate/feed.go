package spectate

import (
	"bytes"
	"context"
	"encoding/gob"
	"fmt"
	"log/slog"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/wvoliveira/pong-duel/game"
)

// Feed recebe quadros de um hub remoto e guarda só o mais recente.
type Feed struct {
	conn *websocket.Conn
	done chan struct{}

	mu     sync.Mutex
	state  game.State
	ok     bool
	frames int
	err    error
	closed bool
}

func Dial(ctx context.Context, url string) (*Feed, error) {
	ws, _, err := websocket.DefaultDialer.DialContext(ctx, url, nil)
	if err != nil {
		return nil, fmt.Errorf("connect to %s: %w", url, err)
	}

	f := &Feed{conn: ws, done: make(chan struct{})}
	go f.readLoop()
	return f, nil
}

func (f *Feed) readLoop() {
	defer close(f.done)

	for {
		msgType, msgData, err := f.conn.ReadMessage()
		if err != nil {
			f.mu.Lock()
			if f.closed {
				err = ErrClosed
			}
			f.err = err
			f.mu.Unlock()
			slog.Info("disconnected from game", "error", err)
			return
		}
		if msgType != websocket.BinaryMessage {
			continue
		}

		var s game.State
		if err := gob.NewDecoder(bytes.NewReader(msgData)).Decode(&s); err != nil {
			slog.Warn("error to decode frame", "error", err)
			continue
		}

		f.mu.Lock()
		f.state, f.ok = s, true
		f.frames++
		f.mu.Unlock()
	}
}

// Latest devolve o último estado recebido; ok é falso antes do primeiro quadro.
func (f *Feed) Latest() (game.State, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state, f.ok
}

// Frames conta os quadros decodificados.
func (f *Feed) Frames() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.frames
}

// Done fecha quando a conexão termina.
func (f *Feed) Done() <-chan struct{} { return f.done }

// Err explica o fim da conexão depois de Done.
func (f *Feed) Err() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.err
}

func (f *Feed) Close() error {
	f.mu.Lock()
	f.closed = true
	f.mu.Unlock()
	return f.conn.Close()
}
