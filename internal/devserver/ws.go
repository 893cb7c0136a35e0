package devserver

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/session"
)

const writeWait = 5 * time.Second

// clientMessage is what the browser sends.
type clientMessage struct {
	Action string `json:"action"`
}

// wsGame is one browser's game. mu serializes engine calls and socket
// writes between the tick loop and the reader.
type wsGame struct {
	mu     sync.Mutex
	conn   *websocket.Conn
	game   *session.Session
	logger *log.Logger
}

// push sends the current snapshot. The caller holds mu.
func (g *wsGame) push() error {
	_ = g.conn.SetWriteDeadline(time.Now().Add(writeWait))
	return g.conn.WriteJSON(g.game.Snapshot())
}

func (g *wsGame) tick() error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.game.Tick()
	return g.push()
}

func (g *wsGame) apply(a core.Action) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.game.Apply(a)
	return g.push()
}

// tickLoop advances the game at the configured rate until ctx is done.
func (g *wsGame) tickLoop(ctx context.Context) {
	ticker := time.NewTicker(g.game.Config().Tick)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			g.mu.Lock()
			_ = g.conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseGoingAway, ""),
				time.Now().Add(writeWait))
			_ = g.conn.Close()
			g.mu.Unlock()
			return
		case <-ticker.C:
			if err := g.tick(); err != nil {
				g.logger.Debug("tick write failed", "err", err)
				_ = g.conn.Close()
				return
			}
		}
	}
}

// readLoop applies client actions until the connection fails or the
// client asks to quit.
func (g *wsGame) readLoop() {
	for {
		_, data, err := g.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				g.logger.Debug("read failed", "err", err)
			}
			return
		}

		var msg clientMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			g.logger.Debug("malformed message", "err", err)
			continue
		}
		action, ok := core.ParseAction(msg.Action)
		if !ok {
			g.logger.Debug("unknown action", "action", msg.Action)
			continue
		}
		if action == core.ActionQuit {
			return
		}
		if err := g.apply(action); err != nil {
			g.logger.Debug("write failed", "err", err)
			return
		}
	}
}

// handleWS upgrades the request and runs a game until the client leaves.
func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("websocket upgrade failed", "err", err)
		return
	}
	defer conn.Close()

	n := s.sessions.Add(1)
	g := &wsGame{
		conn:   conn,
		game:   session.New(s.config.Game, session.SeededRNG(s.config.Seed, n)),
		logger: s.logger.With("session", n),
	}

	start := time.Now()
	g.logger.Info("game started", "remote", r.RemoteAddr)

	g.mu.Lock()
	err = g.push()
	g.mu.Unlock()
	if err != nil {
		return
	}

	ctx, cancel := context.WithCancel(r.Context())
	done := make(chan struct{})
	go func() {
		defer close(done)
		g.tickLoop(ctx)
	}()

	g.readLoop()
	cancel()
	<-done

	st := g.game.State()
	g.logger.Info("game ended",
		"score", st.Score,
		"status", st.Status,
		"duration", time.Since(start).Round(time.Second),
	)
}
