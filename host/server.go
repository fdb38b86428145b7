// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package host

import (
	"context"
	_ "embed"
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"cogentcore.org/core/base/errors"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

//go:embed index.html
var indexHTML []byte

// Server serves the animation page and streams frames to its
// websocket clients. Client input is queued to the [Loop].
type Server struct {

	// Addr is the address to listen on.
	Addr string

	app      *App
	loop     *Loop
	upgrader websocket.Upgrader

	mu      sync.Mutex
	clients map[uuid.UUID]*client
}

// client is one connected websocket client.
type client struct {
	id     uuid.UUID
	conn   *websocket.Conn
	frames chan []byte
}

// NewServer returns a new [Server] for the given app and loop.
func NewServer(addr string, app *App, loop *Loop) *Server {
	return &Server{Addr: addr, app: app, loop: loop, clients: map[uuid.UUID]*client{}}
}

// Handler returns the HTTP handler of the server,
// serving the page at / and the websocket at /ws.
func (sv *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write(indexHTML)
	})
	mux.HandleFunc("/ws", sv.serveWS)
	return mux
}

// Run listens on Addr and serves until the context is done,
// then disconnects all clients.
func (sv *Server) Run(ctx context.Context) error {
	hs := &http.Server{Addr: sv.Addr, Handler: sv.Handler()}
	errc := make(chan error, 1)
	go func() {
		errc <- hs.ListenAndServe()
	}()
	slog.Info("serving", "url", "http://"+sv.Addr)
	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}
	sctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	errors.Log(hs.Shutdown(sctx))
	sv.CloseClients()
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// NumClients returns the number of connected clients.
func (sv *Server) NumClients() int {
	sv.mu.Lock()
	defer sv.mu.Unlock()
	return len(sv.clients)
}

// Broadcast sends the given encoded frame to all clients. A client
// that has not yet taken its previous frame gets only the newest one.
func (sv *Server) Broadcast(frame []byte) {
	sv.mu.Lock()
	defer sv.mu.Unlock()
	for _, cl := range sv.clients {
		select {
		case <-cl.frames:
		default:
		}
		cl.frames <- frame
	}
}

// CloseClients disconnects all clients.
func (sv *Server) CloseClients() {
	sv.mu.Lock()
	defer sv.mu.Unlock()
	for _, cl := range sv.clients {
		cl.conn.Close()
	}
}

func (sv *Server) serveWS(w http.ResponseWriter, r *http.Request) {
	conn, err := sv.upgrader.Upgrade(w, r, nil)
	if errors.Log(err) != nil {
		return
	}
	cl := &client{id: uuid.New(), conn: conn, frames: make(chan []byte, 1)}
	sv.mu.Lock()
	sv.clients[cl.id] = cl
	sv.mu.Unlock()
	slog.Info("client connected", "id", cl.id)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		sv.write(cl)
	}()
	sv.read(cl)

	sv.mu.Lock()
	delete(sv.clients, cl.id)
	close(cl.frames)
	sv.mu.Unlock()
	conn.Close()
	wg.Wait()
	slog.Info("client disconnected", "id", cl.id)
}

// read reads input messages from the client until its connection fails.
func (sv *Server) read(cl *client) {
	for {
		_, msg, err := cl.conn.ReadMessage()
		if err != nil {
			slog.Debug("client read", "id", cl.id, "err", err)
			return
		}
		var in Input
		if err := json.Unmarshal(msg, &in); err != nil {
			slog.Warn("invalid client message", "id", cl.id, "err", err)
			continue
		}
		if !sv.loop.Do(func() { sv.app.Handle(in) }) {
			return
		}
	}
}

// write sends frames to the client until its frame channel is closed.
func (sv *Server) write(cl *client) {
	for frame := range cl.frames {
		if err := cl.conn.WriteMessage(websocket.BinaryMessage, frame); err != nil {
			slog.Debug("client write", "id", cl.id, "err", err)
			cl.conn.Close()
			for range cl.frames {
			}
			return
		}
	}
}
